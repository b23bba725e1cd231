package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Datastore drivers.
const (
	DriverSupabase = "supabase"
	DriverPostgres = "postgres"
)

// Embedded datastore fallbacks, used when neither config.yaml nor the
// environment provides Supabase credentials. They point at a local Supabase
// stack and are not meant to protect anything.
const (
	DefaultSupabaseURL     = "http://127.0.0.1:54321"
	DefaultSupabaseAnonKey = "local-development-anon-key"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	// Daily task manager specifics
	App       AppConfig
	Datastore DatastoreConfig
	Supabase  SupabaseConfig
	Postgres  PostgresConfig
	OpenAI    OpenAIConfig
	Chat      ChatConfig
	CarryOver CarryOverConfig
	Cron      CronConfig

	// CLI
	API APIConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port int
	Mode string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

// AppConfig holds the timezone that defines "today" for the task list and
// routine generation.
type AppConfig struct {
	Timezone string
}

type DatastoreConfig struct {
	Driver  string
	UUIDIDs bool
}

type SupabaseConfig struct {
	URL     string
	AnonKey string

	// RoutineUniqueIndex declares that tasks(routine_id, due_date) has a unique
	// index (config/supabase/routine_unique_index.sql). Off by default since
	// the hosted schema does not ship one.
	RoutineUniqueIndex bool

	// UsingFallback is true when at least one value came from the embedded defaults.
	UsingFallback bool
}

type PostgresConfig struct {
	DSN             string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	AutoMigrate     bool
}

type OpenAIConfig struct {
	APIKey  string
	BaseURL string
	Model   string
	Timeout time.Duration
}

type ChatConfig struct {
	RateLimitPerMin int
}

// CarryOverConfig drives the daily carry-over job.
type CarryOverConfig struct {
	Timezone string
	Schedule string
}

type CronConfig struct {
	Secret string
}

type APIConfig struct {
	BaseURL string
}

// Load loads configuration using Viper.
// Config file name: config.yaml, searched in ./config, ., /etc/app/
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/app/")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")

	cfg.App.Timezone = viper.GetString("app.timezone")

	// Datastore
	cfg.Datastore.Driver = strings.ToLower(viper.GetString("datastore.driver"))
	cfg.Datastore.UUIDIDs = viper.GetBool("datastore.uuid_ids")

	cfg.Supabase.URL = viper.GetString("supabase.url")
	cfg.Supabase.AnonKey = viper.GetString("supabase.anon_key")
	cfg.Supabase.RoutineUniqueIndex = viper.GetBool("supabase.routine_unique_index")
	cfg.Supabase.URL = firstNonEmpty(viper.GetString("next_public_supabase_url"), viper.GetString("supabase_url"), cfg.Supabase.URL)
	cfg.Supabase.AnonKey = firstNonEmpty(viper.GetString("next_public_supabase_anon_key"), viper.GetString("supabase_anon_key"), cfg.Supabase.AnonKey)
	if cfg.Supabase.URL == "" {
		cfg.Supabase.URL = DefaultSupabaseURL
		cfg.Supabase.UsingFallback = true
	}
	if cfg.Supabase.AnonKey == "" {
		cfg.Supabase.AnonKey = DefaultSupabaseAnonKey
		cfg.Supabase.UsingFallback = true
	}

	cfg.Postgres.DSN = viper.GetString("postgres.dsn")
	if dsn := viper.GetString("database_url"); dsn != "" {
		cfg.Postgres.DSN = dsn
	}
	cfg.Postgres.MaxOpenConns = viper.GetInt("postgres.max_open_conns")
	cfg.Postgres.MaxIdleConns = viper.GetInt("postgres.max_idle_conns")
	cfg.Postgres.ConnMaxLifetime = viper.GetDuration("postgres.conn_max_lifetime")
	cfg.Postgres.AutoMigrate = viper.GetBool("postgres.auto_migrate")

	// Chat relay
	cfg.OpenAI.APIKey = viper.GetString("openai.api_key")
	if key := viper.GetString("openai_api_key"); key != "" {
		cfg.OpenAI.APIKey = key
	}
	cfg.OpenAI.BaseURL = viper.GetString("openai.base_url")
	cfg.OpenAI.Model = viper.GetString("openai.model")
	cfg.OpenAI.Timeout = viper.GetDuration("openai.timeout")
	cfg.Chat.RateLimitPerMin = viper.GetInt("chat.rate_limit_per_min")

	// Carry-over
	cfg.CarryOver.Timezone = viper.GetString("carry_over.timezone")
	cfg.CarryOver.Schedule = viper.GetString("carry_over.schedule")
	cfg.Cron.Secret = viper.GetString("cron.secret")
	if secret := viper.GetString("cron_secret"); secret != "" {
		cfg.Cron.Secret = secret
	}

	cfg.API.BaseURL = viper.GetString("api.base_url")

	if err := validate(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "debug")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)

	viper.SetDefault("app.timezone", "Asia/Tokyo")

	viper.SetDefault("datastore.driver", DriverSupabase)
	viper.SetDefault("datastore.uuid_ids", true)

	viper.SetDefault("supabase.routine_unique_index", false)

	viper.SetDefault("postgres.max_open_conns", 10)
	viper.SetDefault("postgres.max_idle_conns", 5)
	viper.SetDefault("postgres.conn_max_lifetime", "30m")
	viper.SetDefault("postgres.auto_migrate", false)

	viper.SetDefault("openai.base_url", "https://api.openai.com/v1")
	viper.SetDefault("openai.model", "gpt-4o-mini")
	viper.SetDefault("openai.timeout", "60s")
	viper.SetDefault("chat.rate_limit_per_min", 30)

	viper.SetDefault("carry_over.timezone", "Asia/Tokyo")
	viper.SetDefault("carry_over.schedule", "5 0 * * *")

	viper.SetDefault("api.base_url", "http://localhost:8080")
}

// validate rejects configurations the binaries cannot start with.
func validate(cfg *Config) error {
	switch cfg.Datastore.Driver {
	case DriverSupabase:
	case DriverPostgres:
		if cfg.Postgres.DSN == "" {
			return fmt.Errorf("datastore driver %q requires postgres.dsn or DATABASE_URL", DriverPostgres)
		}
	default:
		return fmt.Errorf("unknown datastore driver %q", cfg.Datastore.Driver)
	}

	if cfg.App.Timezone == "" {
		return fmt.Errorf("app.timezone is required")
	}
	if cfg.CarryOver.Timezone == "" {
		return fmt.Errorf("carry_over.timezone is required")
	}
	return nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
