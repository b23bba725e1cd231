package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"daily-task-manager/config"
)

const chatTimeout = 90 * time.Second

var errEmptyMessage = errors.New("message is required")

var chatCmd = &cobra.Command{
	Use:   "chat <message>",
	Short: "Ask the assistant through the running API",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		answer, err := askRemote(cmd.Context(), &http.Client{Timeout: chatTimeout}, cfg.API.BaseURL, strings.Join(args, " "))
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), answer)
		return nil
	},
}

type chatReq struct {
	Message string `json:"message"`
}

type chatResp struct {
	Answer string `json:"answer"`
	Error  string `json:"error"`
	Detail string `json:"detail"`

	// Set by middleware rejections such as rate limiting.
	Message string `json:"message"`
}

// askRemote posts one message to the chat endpoint. Blank messages are
// refused before any request is made.
func askRemote(ctx context.Context, hc *http.Client, baseURL, message string) (string, error) {
	if strings.TrimSpace(message) == "" {
		return "", errEmptyMessage
	}

	body, err := json.Marshal(chatReq{Message: message})
	if err != nil {
		return "", err
	}
	url := strings.TrimRight(baseURL, "/") + "/api/chat"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := hc.Do(req)
	if err != nil {
		return "", fmt.Errorf("chat request failed: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}
	var out chatResp
	if err := json.Unmarshal(raw, &out); err != nil {
		return "", fmt.Errorf("chat: unexpected response (status %d): %s", resp.StatusCode, string(raw))
	}
	if resp.StatusCode != http.StatusOK {
		if out.Error == "" {
			out.Error = out.Message
		}
		if out.Detail != "" {
			return "", fmt.Errorf("chat: %s: %s", out.Error, out.Detail)
		}
		return "", fmt.Errorf("chat: %s", out.Error)
	}
	return out.Answer, nil
}
