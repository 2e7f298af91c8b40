package storage

import (
	"fmt"

	"skillbot/internal/providers"
	"skillbot/internal/storage/interfaces"
	"skillbot/internal/structures"
)

// NewUserStore builds the store selected by storage.driver and prepares it for use.
func NewUserStore(conf *structures.Config, logger providers.Logger, metrics providers.MetricsProviderInterface) (interfaces.UserStoreInterface, func(), error) {
	switch conf.Storage.Driver {
	case "redis":
		store := NewRedisUserStore(conf, logger, metrics)
		if err := store.Init(); err != nil {
			store.Close()
			return nil, nil, fmt.Errorf("redis store at %s: %w", conf.Redis.Addr, err)
		}
		logger.Infof(providers.TypeStorage, "Using redis store at %s", conf.Redis.Addr)
		return store, store.Close, nil
	case "file", "":
		store := NewFileUserStore(conf.Storage.UsersFile, conf.Storage.AchievementsFile, logger, metrics)
		if err := store.Init(); err != nil {
			return nil, nil, fmt.Errorf("file store: %w", err)
		}
		logger.Infof(providers.TypeStorage, "Using file store %s", conf.Storage.UsersFile)
		return store, func() {}, nil
	default:
		return nil, nil, fmt.Errorf("unknown storage driver %q", conf.Storage.Driver)
	}
}
