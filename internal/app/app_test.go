package app

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"daily-task-manager/config"
	"daily-task-manager/internal/chat"
	"daily-task-manager/pkg/log"
)

func supabaseConfig() *config.Config {
	return &config.Config{
		App:       config.AppConfig{Timezone: "Asia/Tokyo"},
		CarryOver: config.CarryOverConfig{Timezone: "Asia/Tokyo"},
		Datastore: config.DatastoreConfig{Driver: config.DriverSupabase},
		Supabase: config.SupabaseConfig{
			URL:           config.DefaultSupabaseURL,
			AnonKey:       config.DefaultSupabaseAnonKey,
			UsingFallback: true,
		},
	}
}

func TestNew_Supabase(t *testing.T) {
	a, err := New(context.Background(), supabaseConfig(), log.NewNop())

	require.NoError(t, err)
	assert.NotNil(t, a.Tasks)
	assert.NotNil(t, a.Routines)
	assert.NoError(t, a.Close(context.Background()))
}

func TestNew_ChatWithoutKeyReportsMissingCredential(t *testing.T) {
	a, err := New(context.Background(), supabaseConfig(), log.NewNop())
	require.NoError(t, err)

	_, err = a.Chat.Ask(context.Background(), chat.AskInput{Message: "hi"})

	assert.ErrorIs(t, err, chat.ErrMissingAPIKey)
}

func TestNew_BadTimezone(t *testing.T) {
	cfg := supabaseConfig()
	cfg.App.Timezone = "Mars/Olympus"

	_, err := New(context.Background(), cfg, log.NewNop())

	assert.Error(t, err)
}

func TestPing_Supabase(t *testing.T) {
	healthy := true
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/rest/v1/tasks", r.URL.Path)
		if !healthy {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	cfg := supabaseConfig()
	cfg.Supabase.URL = srv.URL
	a, err := New(context.Background(), cfg, log.NewNop())
	require.NoError(t, err)

	assert.NoError(t, a.Ping(context.Background()))

	healthy = false
	assert.Error(t, a.Ping(context.Background()))
}
