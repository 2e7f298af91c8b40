package providers

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"skillbot/internal/models"
	"skillbot/internal/structures"
)

func validConfig() *structures.Config {
	return &structures.Config{
		WebServer: structures.Server{
			Host: "0.0.0.0",
			Port: 8080,
		},
		Logger: structures.LoggerConfig{
			Level: "info",
			Mode:  0644,
			Dir:   "/tmp/logs",
		},
		Storage: structures.StorageConfig{
			Driver:           "file",
			UsersFile:        "data/users.json",
			AchievementsFile: "data/achievements.json",
			ExportDir:        "data/exports",
		},
		Limits: structures.LimitsConfig{
			SessionMinMinutes: 1,
			SessionMaxMinutes: 600,
			GoalMinMinutes:    1,
			GoalMaxMinutes:    10000,
			SkillNameMin:      2,
			SkillNameMax:      50,
			TopUsers:          10,
		},
		Catalog: models.DefaultCatalog().WithDefaults(),
	}
}

func TestConfigValidator_ValidConfig(t *testing.T) {
	v := NewCnfValidator(validConfig())
	assert.NoError(t, v.Validate())
}

func TestConfigValidator_EmptyHost(t *testing.T) {
	c := validConfig()
	c.WebServer.Host = ""
	v := NewCnfValidator(c)
	assert.Error(t, v.Validate())
}

func TestConfigValidator_ZeroPort(t *testing.T) {
	c := validConfig()
	c.WebServer.Port = 0
	v := NewCnfValidator(c)
	assert.Error(t, v.Validate())
}

func TestConfigValidator_EmptyLogLevel(t *testing.T) {
	c := validConfig()
	c.Logger.Level = ""
	v := NewCnfValidator(c)
	assert.Error(t, v.Validate())
}

func TestConfigValidator_InvalidLogLevel(t *testing.T) {
	c := validConfig()
	c.Logger.Level = "verbose"
	v := NewCnfValidator(c)
	assert.Error(t, v.Validate())
}

func TestConfigValidator_UnknownDriver(t *testing.T) {
	c := validConfig()
	c.Storage.Driver = "postgres"
	assert.Error(t, NewCnfValidator(c).Validate())
}

func TestConfigValidator_RedisNeedsAddr(t *testing.T) {
	c := validConfig()
	c.Storage.Driver = "redis"
	assert.ErrorContains(t, NewCnfValidator(c).Validate(), "redis.addr")

	c.Redis.Addr = "localhost:6379"
	assert.NoError(t, NewCnfValidator(c).Validate())
}

func TestConfigValidator_InvertedRanges(t *testing.T) {
	c := validConfig()
	c.Limits.SessionMinMinutes = 700
	assert.ErrorContains(t, NewCnfValidator(c).Validate(), "session minutes")

	c = validConfig()
	c.Limits.GoalMinMinutes = 20000
	assert.ErrorContains(t, NewCnfValidator(c).Validate(), "goal minutes")

	c = validConfig()
	c.Limits.SkillNameMin = 60
	assert.ErrorContains(t, NewCnfValidator(c).Validate(), "skill name")
}

func TestConfigValidator_ZeroTopUsers(t *testing.T) {
	c := validConfig()
	c.Limits.TopUsers = 0
	assert.Error(t, NewCnfValidator(c).Validate())
}

func TestConfigValidator_BadCatalog(t *testing.T) {
	c := validConfig()
	c.Catalog.Achievements = append(c.Catalog.Achievements, models.AchievementDefinition{
		ID: "first_skill", Metric: models.MetricSkillCount, Threshold: 1,
	})
	assert.ErrorContains(t, NewCnfValidator(c).Validate(), "invalid catalog")
}
