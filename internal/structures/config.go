package structures

import (
	"net/http"
	"time"

	"skillbot/internal/models"
)

type CliFlags struct {
	ConfigPath string
	DebugMode  bool
}

type Route struct {
	Url     string
	Handler http.Handler
}

type Server struct {
	Host string `mapstructure:"host" validate:"required"`
	Port int    `mapstructure:"port" validate:"required|uint|min:1"`
}

type LoggerConfig struct {
	Level string `mapstructure:"level" validate:"required|in:trace,debug,info,warn,error,fatal,panic"`
	Mode  uint32 `mapstructure:"mode" validate:"required|uint"`
	Dir   string `mapstructure:"dir" validate:"required"`
}

type StorageConfig struct {
	Driver           string `mapstructure:"driver" validate:"required|in:file,redis"`
	UsersFile        string `mapstructure:"usersFile" validate:"required"`
	AchievementsFile string `mapstructure:"achievementsFile" validate:"required"`
	ExportDir        string `mapstructure:"exportDir" validate:"required"`
	CompressExport   bool   `mapstructure:"compressExport"`
	Timezone         string `mapstructure:"timezone"`
}

type RedisConfig struct {
	Addr     string        `mapstructure:"addr"`
	Password string        `mapstructure:"password"`
	DB       int           `mapstructure:"db"`
	Prefix   string        `mapstructure:"prefix"`
	Timeout  time.Duration `mapstructure:"timeout"`
}

type CacheConfig struct {
	Enabled bool          `mapstructure:"enabled"`
	Size    int           `mapstructure:"size"`
	TTL     time.Duration `mapstructure:"ttl"`
}

type MetricsConfig struct {
	Enabled         bool          `mapstructure:"enabled"`
	RefreshInterval time.Duration `mapstructure:"refreshInterval"`
}

type BackupConfig struct {
	Enabled  bool          `mapstructure:"enabled"`
	Interval time.Duration `mapstructure:"interval"`
}

type TelegramConfig struct {
	Token   string        `mapstructure:"token"`
	BaseURL string        `mapstructure:"baseURL"`
	Timeout time.Duration `mapstructure:"timeout"`
}

type AdminConfig struct {
	IDs []string `mapstructure:"ids"`
}

// LimitsConfig holds the caller-side bounds for interactive input.
type LimitsConfig struct {
	SessionMinMinutes int `mapstructure:"sessionMinMinutes" validate:"required|min:1"`
	SessionMaxMinutes int `mapstructure:"sessionMaxMinutes" validate:"required|min:1"`
	GoalMinMinutes    int `mapstructure:"goalMinMinutes" validate:"required|min:1"`
	GoalMaxMinutes    int `mapstructure:"goalMaxMinutes" validate:"required|min:1"`
	SkillNameMin      int `mapstructure:"skillNameMin" validate:"required|min:1"`
	SkillNameMax      int `mapstructure:"skillNameMax" validate:"required|min:1"`
	TopUsers          int `mapstructure:"topUsers" validate:"required|min:1"`
}

type Config struct {
	AppName   string
	Debug     bool
	Path      string
	WebServer Server         `mapstructure:"webServer"`
	Logger    LoggerConfig   `mapstructure:"logger"`
	Storage   StorageConfig  `mapstructure:"storage"`
	Redis     RedisConfig    `mapstructure:"redis"`
	Cache     CacheConfig    `mapstructure:"cache"`
	Metrics   MetricsConfig  `mapstructure:"metrics"`
	Backup    BackupConfig   `mapstructure:"backup"`
	Telegram  TelegramConfig `mapstructure:"telegram"`
	Admin     AdminConfig    `mapstructure:"admin"`
	Limits    LimitsConfig   `mapstructure:"limits"`
	Catalog   models.Catalog `mapstructure:"catalog"`
}

// Location resolves the storage timezone used for calendar-day streak math.
func (c *Config) Location() *time.Location {
	if c.Storage.Timezone == "" {
		return time.Local
	}
	loc, err := time.LoadLocation(c.Storage.Timezone)
	if err != nil {
		return time.Local
	}
	return loc
}
