package cli

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAskRemote(t *testing.T) {
	var got chatReq
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/chat", r.URL.Path)
		assert.Equal(t, http.MethodPost, r.Method)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"answer":"Start with the urgent one."}`))
	}))
	defer srv.Close()

	answer, err := askRemote(context.Background(), srv.Client(), srv.URL+"/", "what first?")

	require.NoError(t, err)
	assert.Equal(t, "Start with the urgent one.", answer)
	assert.Equal(t, "what first?", got.Message)
}

func TestAskRemote_BlankMessageNotSent(t *testing.T) {
	called := false
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))
	defer srv.Close()

	_, err := askRemote(context.Background(), srv.Client(), srv.URL, "   ")

	assert.ErrorIs(t, err, errEmptyMessage)
	assert.False(t, called)
}

func TestAskRemote_ErrorBodies(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		wantErr string
	}{
		{"missing key", http.StatusInternalServerError, `{"error":"OPENAI_API_KEY is missing"}`, "chat: OPENAI_API_KEY is missing"},
		{"provider", http.StatusInternalServerError, `{"error":"OpenAI API error","detail":"quota"}`, "chat: OpenAI API error: quota"},
		{"rate limited", http.StatusTooManyRequests, `{"error_code":429,"message":"Too Many Requests"}`, "chat: Too Many Requests"},
		{"not json", http.StatusBadGateway, `bad gateway`, "chat: unexpected response (status 502): bad gateway"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			_, err := askRemote(context.Background(), srv.Client(), srv.URL, "hi")
			assert.EqualError(t, err, tt.wantErr)
		})
	}
}
