package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	BackendMemory   = "memory"
	BackendSQLite   = "sqlite"
	BackendPostgres = "postgres"
)

type Config struct {
	App       AppConfig       `mapstructure:"app"`
	Server    ServerConfig    `mapstructure:"server"`
	Storage   StorageConfig   `mapstructure:"storage"`
	Log       LogConfig       `mapstructure:"log"`
	Standards StandardsConfig `mapstructure:"standards"`
	Profile   ProfileSeed     `mapstructure:"profile"`
}

type AppConfig struct {
	Name string `mapstructure:"name"`
}

type ServerConfig struct {
	Port         string        `mapstructure:"port"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
}

type StorageConfig struct {
	Backend     string `mapstructure:"backend"`
	SQLitePath  string `mapstructure:"sqlite_path"`
	PostgresDSN string `mapstructure:"postgres_dsn"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// StandardsConfig permite reemplazar la tabla OMS embebida por un YAML propio.
type StandardsConfig struct {
	Path string `mapstructure:"path"`
}

// ProfileSeed es el perfil inicial que se crea si todavía no hay uno guardado.
type ProfileSeed struct {
	Name        string  `mapstructure:"name"`
	LastName    string  `mapstructure:"last_name"`
	DateOfBirth string  `mapstructure:"date_of_birth"` // YYYY-MM-DD
	BirthWeight float64 `mapstructure:"birth_weight"`
	BirthHeight float64 `mapstructure:"birth_height"`
	Avatar      string  `mapstructure:"avatar"`
}

// Enabled indica si hay seed configurado.
func (p ProfileSeed) Enabled() bool {
	return strings.TrimSpace(p.DateOfBirth) != ""
}

// envBindings: clave de config -> variable de entorno.
var envBindings = map[string]string{
	"app.name":              "APP_NAME",
	"server.port":           "PORT",
	"server.read_timeout":   "SERVER_READ_TIMEOUT",
	"server.write_timeout":  "SERVER_WRITE_TIMEOUT",
	"storage.backend":       "STORAGE_BACKEND",
	"storage.sqlite_path":   "SQLITE_DB_PATH",
	"storage.postgres_dsn":  "DB_DSN",
	"log.level":             "LOG_LEVEL",
	"log.format":            "LOG_FORMAT",
	"standards.path":        "STANDARDS_PATH",
	"profile.name":          "PROFILE_NAME",
	"profile.last_name":     "PROFILE_LAST_NAME",
	"profile.date_of_birth": "PROFILE_DATE_OF_BIRTH",
	"profile.birth_weight":  "PROFILE_BIRTH_WEIGHT",
	"profile.birth_height":  "PROFILE_BIRTH_HEIGHT",
	"profile.avatar":        "PROFILE_AVATAR",
}

// Load arma la config con esta precedencia: env > archivo YAML (CONFIG_PATH o path) > defaults.
// Un .env en el directorio actual se carga primero si existe.
func Load(path string) (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	setDefaults(v)

	for key, env := range envBindings {
		if err := v.BindEnv(key, env); err != nil {
			return nil, fmt.Errorf("bind env %s: %w", env, err)
		}
	}

	if path == "" {
		path = os.Getenv("CONFIG_PATH")
	}
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	cfg.Storage.Backend = strings.ToLower(strings.TrimSpace(cfg.Storage.Backend))

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("app.name", "infant-growth")
	v.SetDefault("server.port", "8080")
	v.SetDefault("server.read_timeout", 5*time.Second)
	v.SetDefault("server.write_timeout", 10*time.Second)
	v.SetDefault("storage.backend", BackendMemory)
	v.SetDefault("storage.sqlite_path", "./data/growth.db")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")
}

// Validate junta todos los problemas en un solo error.
func (c *Config) Validate() error {
	var problems []string

	if port, err := strconv.Atoi(c.Server.Port); err != nil {
		problems = append(problems, fmt.Sprintf("invalid port %q: must be a number", c.Server.Port))
	} else if port < 1 || port > 65535 {
		problems = append(problems, fmt.Sprintf("invalid port %d: must be between 1 and 65535", port))
	}

	switch c.Storage.Backend {
	case BackendMemory:
	case BackendSQLite:
		if strings.TrimSpace(c.Storage.SQLitePath) == "" {
			problems = append(problems, "sqlite path cannot be empty when using sqlite backend")
		}
	case BackendPostgres:
		if strings.TrimSpace(c.Storage.PostgresDSN) == "" {
			problems = append(problems, "DB_DSN is required when using postgres backend")
		}
	default:
		problems = append(problems, fmt.Sprintf("invalid storage backend %q: must be one of memory, sqlite, postgres", c.Storage.Backend))
	}

	if c.Profile.Enabled() {
		if _, err := time.Parse("2006-01-02", strings.TrimSpace(c.Profile.DateOfBirth)); err != nil {
			problems = append(problems, fmt.Sprintf("invalid profile date_of_birth %q: must be YYYY-MM-DD", c.Profile.DateOfBirth))
		}
		if c.Profile.BirthWeight <= 0 || c.Profile.BirthHeight <= 0 {
			problems = append(problems, "profile birth_weight and birth_height must be positive")
		}
	}

	if len(problems) > 0 {
		return errors.New("config validation failed: " + strings.Join(problems, "; "))
	}
	return nil
}
