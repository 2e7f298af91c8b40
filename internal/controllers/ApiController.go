package controllers

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	json "github.com/goccy/go-json"

	"skillbot/internal/models"
	"skillbot/internal/providers"
	"skillbot/internal/services"
	"skillbot/internal/structures"
)

const IdempotencyKeyHeader = "Idempotency-Key"

type ApiController struct {
	logger       providers.Logger
	limits       structures.LimitsConfig
	skills       services.SkillServiceInterface
	achievements services.AchievementServiceInterface
	engagement   services.EngagementServiceInterface
	stats        services.StatisticServiceInterface
	cache        providers.CacheProviderInterface
}

func NewApiController(conf *structures.Config, logger providers.Logger, skills services.SkillServiceInterface, achievements services.AchievementServiceInterface, engagement services.EngagementServiceInterface, stats services.StatisticServiceInterface, cache providers.CacheProviderInterface) *ApiController {
	return &ApiController{
		logger:       logger,
		limits:       conf.Limits,
		skills:       skills,
		achievements: achievements,
		engagement:   engagement,
		stats:        stats,
		cache:        cache,
	}
}

type addSkillRequest struct {
	Name     string `json:"name"`
	Category string `json:"category"`
}

type keyRequest struct {
	Key string `json:"key"`
}

type sessionRequest struct {
	Key     string `json:"key"`
	Minutes int    `json:"minutes"`
	Note    string `json:"note"`
}

type goalRequest struct {
	Key     string `json:"key"`
	Minutes int    `json:"minutes"`
}

type skillResponse struct {
	Key             string                         `json:"key"`
	Skill           *models.Skill                  `json:"skill"`
	NewAchievements []models.AchievementDefinition `json:"new_achievements"`
}

type sessionResponse struct {
	Key             string                         `json:"key"`
	Streak          int                            `json:"streak"`
	Skill           *models.Skill                  `json:"skill"`
	NewAchievements []models.AchievementDefinition `json:"new_achievements"`
}

type goalResponse struct {
	Key          string  `json:"key"`
	GoalMinutes  int     `json:"goal_minutes"`
	GoalProgress float64 `json:"goal_progress"`
}

type materialsResponse struct {
	Key       string   `json:"key"`
	Materials []string `json:"materials"`
}

func (ac *ApiController) GetUser(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, ac.skills.GetUser(userID))
}

func (ac *ApiController) ListSkills(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, ac.skills.ListSkills(userID))
}

func (ac *ApiController) GetSkill(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}
	key := models.SkillKey(r.URL.Query().Get("k"))
	skill, ok := ac.skills.GetSkill(userID, key)
	if !ok {
		writeServiceError(w, r, ac.logger, services.ErrSkillNotFound)
		return
	}
	writeJSON(w, http.StatusOK, skill)
}

func (ac *ApiController) AddSkill(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}
	var req addSkillRequest
	if err := decodeBody(w, r, &req); err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}
	req.Name = strings.TrimSpace(req.Name)
	req.Category = strings.TrimSpace(req.Category)
	err := checkInput(map[string]any{"name": req.Name}, map[string]string{
		"name": fmt.Sprintf("required|minLen:%d|maxLen:%d", ac.limits.SkillNameMin, ac.limits.SkillNameMax),
	})
	if err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	if !ac.skills.AddSkill(userID, req.Name, req.Category) {
		writeError(w, r, http.StatusConflict, "skill already exists")
		return
	}
	key := models.SkillKey(req.Name)
	skill, _ := ac.skills.GetSkill(userID, key)
	writeJSON(w, http.StatusCreated, skillResponse{
		Key:             key,
		Skill:           skill,
		NewAchievements: ac.achievements.CheckAchievements(userID),
	})
}

func (ac *ApiController) DeleteSkill(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}
	var req keyRequest
	if err := decodeBody(w, r, &req); err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}
	if !ac.skills.DeleteSkill(userID, req.Key) {
		writeServiceError(w, r, ac.logger, services.ErrSkillNotFound)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// AddSession logs practice time. A repeated request with the same
// Idempotency-Key is answered from the cache without logging twice.
func (ac *ApiController) AddSession(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}
	cacheKey := ""
	if key := r.Header.Get(IdempotencyKeyHeader); key != "" {
		cacheKey = "session:" + userID + ":" + key
		if data, ok := ac.cache.Get(cacheKey); ok {
			writeRaw(w, http.StatusOK, data)
			return
		}
	}

	var req sessionRequest
	if err := decodeBody(w, r, &req); err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}
	if err := checkInput(map[string]any{"key": req.Key}, map[string]string{"key": "required"}); err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}
	if err := checkMinutes(req.Minutes, ac.limits.SessionMinMinutes, ac.limits.SessionMaxMinutes); err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	key := models.SkillKey(req.Key)
	streak := ac.skills.AddSession(userID, key, req.Minutes, strings.TrimSpace(req.Note))
	if streak == 0 {
		writeServiceError(w, r, ac.logger, services.ErrSkillNotFound)
		return
	}
	skill, _ := ac.skills.GetSkill(userID, key)

	gson, err := json.Marshal(sessionResponse{
		Key:             key,
		Streak:          streak,
		Skill:           skill,
		NewAchievements: ac.achievements.CheckAchievements(userID),
	})
	if err != nil {
		writeServiceError(w, r, ac.logger, err)
		return
	}
	if cacheKey != "" {
		ac.cache.Set(cacheKey, gson)
	}
	writeRaw(w, http.StatusOK, gson)
}

func (ac *ApiController) SetGoal(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}
	var req goalRequest
	if err := decodeBody(w, r, &req); err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}
	if err := checkInput(map[string]any{"key": req.Key}, map[string]string{"key": "required"}); err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}
	if err := checkMinutes(req.Minutes, ac.limits.GoalMinMinutes, ac.limits.GoalMaxMinutes); err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	skill, err := ac.skills.SetGoal(userID, req.Key, req.Minutes)
	if err != nil {
		writeServiceError(w, r, ac.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, goalResponse{
		Key:          models.SkillKey(req.Key),
		GoalMinutes:  skill.GoalMinutes,
		GoalProgress: skill.GoalProgress(),
	})
}

func (ac *ApiController) GetTip(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}
	var req keyRequest
	if err := decodeBody(w, r, &req); err != nil && !errors.Is(err, io.EOF) {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}
	tip, err := ac.engagement.GetTip(userID, req.Key)
	if err != nil {
		writeServiceError(w, r, ac.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, tip)
}

func (ac *ApiController) GetMotivation(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"motivation": ac.engagement.GetMotivation(userID)})
}

func (ac *ApiController) GetMaterials(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}
	key := models.SkillKey(r.URL.Query().Get("k"))
	materials, err := ac.engagement.GetMaterials(userID, key)
	if err != nil {
		writeServiceError(w, r, ac.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, materialsResponse{Key: key, Materials: materials})
}

func (ac *ApiController) GetCategories(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, ac.engagement.Categories())
}

func (ac *ApiController) GetAchievements(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, ac.achievements.GetUserAchievements(userID))
}

func (ac *ApiController) GetAchievementProgress(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, ac.achievements.GetAchievementProgress(userID))
}

func (ac *ApiController) CheckAchievements(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"new_achievements": ac.achievements.CheckAchievements(userID)})
}

func (ac *ApiController) GetStats(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, ac.stats.UserStatistics(userID))
}

func (ac *ApiController) GetSkillStats(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUser(w, r)
	if !ok {
		return
	}
	report, err := ac.stats.SkillStatistics(userID, r.URL.Query().Get("k"))
	if err != nil {
		writeServiceError(w, r, ac.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, report)
}
