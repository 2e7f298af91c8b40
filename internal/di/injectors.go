//go:build wireinject
// +build wireinject

package di

import (
	wire "github.com/google/wire"

	"skillbot/internal"
	"skillbot/internal/controllers"
	"skillbot/internal/notifier"
	"skillbot/internal/providers"
	"skillbot/internal/services"
	"skillbot/internal/storage"
	"skillbot/internal/structures"
)

var storageSet = wire.NewSet(
	storage.NewUserStore,
	storage.NewZstdCompressor,
	storage.NewExporter,
	storage.NewScheduler,
)

var serviceSet = wire.NewSet(
	services.NewUserLocks,
	services.NewSkillService,
	services.NewAchievementService,
	services.NewEngagementService,
	services.NewStatisticService,
	services.NewAdminService,
	notifier.NewSender,
)

func InitApp(cfg *structures.CliFlags) (*internal.App, func(), error) {

	wire.Build(
		providers.NewConfigProvider,
		providers.NewLogProvider,
		providers.NewMetricsProvider,
		providers.NewInstrumentedCacheProvider,

		storageSet,
		serviceSet,
		controllers.NewApiController,
		controllers.NewAdminController,
		controllers.NewHealthController,
		internal.InitRoutes,
		internal.NewApp,
	)

	return nil, nil, nil
}
