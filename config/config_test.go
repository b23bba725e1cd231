package config_test

import (
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"daily-task-manager/config"
)

func TestLoadDefaults(t *testing.T) {
	viper.Reset()
	t.Setenv("NEXT_PUBLIC_SUPABASE_URL", "")
	t.Setenv("NEXT_PUBLIC_SUPABASE_ANON_KEY", "")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, config.DriverSupabase, cfg.Datastore.Driver)
	assert.Equal(t, config.DefaultSupabaseURL, cfg.Supabase.URL)
	assert.Equal(t, config.DefaultSupabaseAnonKey, cfg.Supabase.AnonKey)
	assert.True(t, cfg.Supabase.UsingFallback)
	assert.False(t, cfg.Supabase.RoutineUniqueIndex)
	assert.Equal(t, "Asia/Tokyo", cfg.CarryOver.Timezone)
	assert.Equal(t, "gpt-4o-mini", cfg.OpenAI.Model)
	assert.Equal(t, 60*time.Second, cfg.OpenAI.Timeout)
	assert.Equal(t, 8080, cfg.HTTPServer.Port)
}

func TestLoadEnvironmentOverrides(t *testing.T) {
	viper.Reset()
	t.Setenv("NEXT_PUBLIC_SUPABASE_URL", "https://example.supabase.co")
	t.Setenv("NEXT_PUBLIC_SUPABASE_ANON_KEY", "anon")
	t.Setenv("OPENAI_API_KEY", "sk-test")
	t.Setenv("CRON_SECRET", "s3cret")
	t.Setenv("SUPABASE_ROUTINE_UNIQUE_INDEX", "true")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "https://example.supabase.co", cfg.Supabase.URL)
	assert.Equal(t, "anon", cfg.Supabase.AnonKey)
	assert.False(t, cfg.Supabase.UsingFallback)
	assert.Equal(t, "sk-test", cfg.OpenAI.APIKey)
	assert.Equal(t, "s3cret", cfg.Cron.Secret)
	assert.True(t, cfg.Supabase.RoutineUniqueIndex)
}

func TestLoadPostgresRequiresDSN(t *testing.T) {
	viper.Reset()
	t.Setenv("DATASTORE_DRIVER", "postgres")
	t.Setenv("DATABASE_URL", "")

	_, err := config.Load()
	assert.Error(t, err)

	viper.Reset()
	t.Setenv("DATABASE_URL", "postgres://localhost/tasks?sslmode=disable")

	cfg, err := config.Load()
	require.NoError(t, err)
	assert.Equal(t, config.DriverPostgres, cfg.Datastore.Driver)
	assert.Equal(t, "postgres://localhost/tasks?sslmode=disable", cfg.Postgres.DSN)
}

func TestLoadUnknownDriver(t *testing.T) {
	viper.Reset()
	t.Setenv("DATASTORE_DRIVER", "mongo")

	_, err := config.Load()
	assert.Error(t, err)
}
