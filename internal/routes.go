package internal

import (
	"net/http"

	"skillbot/internal/controllers"
	"skillbot/internal/providers"
)

func InitRoutes(apiController *controllers.ApiController, adminController *controllers.AdminController) providers.RouterProviderInterface {
	routers := providers.NewRouterProvider()

	routers.Get("/user", http.HandlerFunc(apiController.GetUser))
	routers.Get("/skills", http.HandlerFunc(apiController.ListSkills))
	routers.Post("/skills", http.HandlerFunc(apiController.AddSkill))
	routers.Get("/skill", http.HandlerFunc(apiController.GetSkill))
	routers.Post("/skills/delete", http.HandlerFunc(apiController.DeleteSkill))
	routers.Post("/sessions", http.HandlerFunc(apiController.AddSession))
	routers.Post("/goals", http.HandlerFunc(apiController.SetGoal))
	routers.Post("/tips", http.HandlerFunc(apiController.GetTip))
	routers.Post("/motivation", http.HandlerFunc(apiController.GetMotivation))
	routers.Get("/materials", http.HandlerFunc(apiController.GetMaterials))
	routers.Get("/categories", http.HandlerFunc(apiController.GetCategories))
	routers.Get("/achievements", http.HandlerFunc(apiController.GetAchievements))
	routers.Get("/achievements/progress", http.HandlerFunc(apiController.GetAchievementProgress))
	routers.Post("/achievements/check", http.HandlerFunc(apiController.CheckAchievements))
	routers.Get("/stats", http.HandlerFunc(apiController.GetStats))
	routers.Get("/stats/skill", http.HandlerFunc(apiController.GetSkillStats))

	routers.Get("/admin/stats", http.HandlerFunc(adminController.GetStats))
	routers.Get("/admin/activity", http.HandlerFunc(adminController.GetActivity))
	routers.Get("/admin/achievements", http.HandlerFunc(adminController.GetAchievements))
	routers.Get("/admin/top", http.HandlerFunc(adminController.GetTopUsers))
	routers.Post("/admin/broadcast", http.HandlerFunc(adminController.Broadcast))
	routers.Post("/admin/export", http.HandlerFunc(adminController.Export))
	return routers
}
