package providers

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"

	"skillbot/internal/structures"
)

func setDefaults(v *viper.Viper) {
	v.SetDefault("webServer.host", "127.0.0.1")
	v.SetDefault("webServer.port", 8090)
	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.mode", 0644)
	v.SetDefault("logger.dir", "logs")
	v.SetDefault("storage.driver", "file")
	v.SetDefault("storage.usersFile", "data/users.json")
	v.SetDefault("storage.achievementsFile", "data/achievements.json")
	v.SetDefault("storage.exportDir", "data/exports")
	v.SetDefault("redis.prefix", "skillbot")
	v.SetDefault("redis.timeout", 3*time.Second)
	v.SetDefault("cache.ttl", 10*time.Minute)
	v.SetDefault("metrics.refreshInterval", time.Minute)
	v.SetDefault("backup.interval", 24*time.Hour)
	v.SetDefault("telegram.baseURL", "https://api.telegram.org")
	v.SetDefault("telegram.timeout", 10*time.Second)
	v.SetDefault("limits.sessionMinMinutes", 1)
	v.SetDefault("limits.sessionMaxMinutes", 600)
	v.SetDefault("limits.goalMinMinutes", 1)
	v.SetDefault("limits.goalMaxMinutes", 10000)
	v.SetDefault("limits.skillNameMin", 2)
	v.SetDefault("limits.skillNameMax", 50)
	v.SetDefault("limits.topUsers", 10)
}

func NewConfigProvider(flags *structures.CliFlags) (*structures.Config, error) {
	var conf structures.Config

	v := viper.New()
	filename := filepath.Base(flags.ConfigPath)
	v.AddConfigPath(filepath.Dir(flags.ConfigPath))
	v.SetConfigName(strings.TrimSuffix(filename, filepath.Ext(filename)))
	v.SetConfigType("yaml")
	setDefaults(v)

	v.BindEnv("logger.level", "SKILLBOT_LOG_LEVEL")
	v.BindEnv("storage.driver", "SKILLBOT_STORAGE_DRIVER")
	v.BindEnv("redis.addr", "SKILLBOT_REDIS_ADDR")
	v.BindEnv("telegram.token", "SKILLBOT_TELEGRAM_TOKEN")
	v.BindEnv("admin.ids", "SKILLBOT_ADMIN_IDS")
	v.BindEnv("cache.enabled", "SKILLBOT_CACHE_ENABLED")

	err := v.ReadInConfig()
	if err != nil {
		return nil, err
	}

	err = v.Unmarshal(&conf)
	if err != nil {
		return nil, fmt.Errorf("unable to decode into config struct: %w", err)
	}
	conf.Catalog = conf.Catalog.WithDefaults()

	cnfValidator := NewCnfValidator(&conf)
	err = cnfValidator.Validate()
	if err != nil {
		return nil, err
	}

	conf.AppName = "SkillBot"
	conf.Path = flags.ConfigPath
	conf.Debug = flags.DebugMode

	return &conf, nil
}
