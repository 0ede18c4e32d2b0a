// Package telegram delivers the priority brief through the Telegram
// Bot API.
package telegram

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"
	"unicode/utf8"

	"github.com/sony/gobreaker/v2"
)

const (
	defaultBaseURL = "https://api.telegram.org"

	// maxMessageLength is the Bot API limit for a single message.
	maxMessageLength = 4096

	truncationMarker = "\n\n_...truncated_"
)

// ErrMissingCredentials is returned when the bot token or chat ID is
// not configured.
var ErrMissingCredentials = errors.New("telegram: bot token or chat id not configured")

// Config holds Telegram delivery settings.
type Config struct {
	BotToken string
	ChatID   string
	BaseURL  string
	Timeout  time.Duration
}

// Notifier sends messages via the Bot API. Markdown formatting is
// attempted first; if Telegram rejects it (unbalanced markup in user
// content is common) the message is retried once as plain text.
type Notifier struct {
	config     Config
	httpClient *http.Client
	breaker    *gobreaker.CircuitBreaker[struct{}]
	logger     *slog.Logger
}

// NewNotifier creates a notifier.
func NewNotifier(cfg Config, logger *slog.Logger) *Notifier {
	if cfg.BaseURL == "" {
		cfg.BaseURL = defaultBaseURL
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = 10 * time.Second
	}
	if logger == nil {
		logger = slog.Default()
	}

	settings := gobreaker.Settings{
		Name: "telegram-notifier",
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 3
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Info("circuit breaker state changed",
				"breaker", name,
				"from", from.String(),
				"to", to.String(),
			)
		},
	}

	return &Notifier{
		config:     cfg,
		httpClient: &http.Client{Timeout: cfg.Timeout},
		breaker:    gobreaker.NewCircuitBreaker[struct{}](settings),
		logger:     logger,
	}
}

type sendMessageRequest struct {
	ChatID                string `json:"chat_id"`
	Text                  string `json:"text"`
	DisableWebPagePreview bool   `json:"disable_web_page_preview"`
	ParseMode             string `json:"parse_mode,omitempty"`
}

type sendMessageResponse struct {
	OK          bool   `json:"ok"`
	Description string `json:"description,omitempty"`
}

// Send delivers text to the configured chat, truncating to the API
// limit when needed.
func (n *Notifier) Send(ctx context.Context, text string) error {
	if n.config.BotToken == "" || n.config.ChatID == "" {
		return ErrMissingCredentials
	}

	if len(text) > maxMessageLength {
		// Back off to a rune boundary so the cut never leaves a
		// partial UTF-8 sequence before the marker.
		cut := maxMessageLength - len(truncationMarker)
		for cut > 0 && !utf8.RuneStart(text[cut]) {
			cut--
		}
		text = text[:cut] + truncationMarker
		n.logger.WarnContext(ctx, "message truncated to fit telegram limit")
	}

	_, err := n.breaker.Execute(func() (struct{}, error) {
		return struct{}{}, n.send(ctx, text)
	})
	return err
}

func (n *Notifier) send(ctx context.Context, text string) error {
	var lastErr error

	for _, parseMode := range []string{"Markdown", ""} {
		err := n.post(ctx, text, parseMode)
		if err == nil {
			n.logger.InfoContext(ctx, "telegram message sent", "parse_mode", parseMode)
			return nil
		}

		lastErr = err
		if parseMode == "Markdown" {
			n.logger.WarnContext(ctx, "markdown delivery failed, retrying as plain text", "error", err)
			continue
		}
	}

	return fmt.Errorf("telegram delivery failed: %w", lastErr)
}

func (n *Notifier) post(ctx context.Context, text, parseMode string) error {
	payload := sendMessageRequest{
		ChatID:                n.config.ChatID,
		Text:                  text,
		DisableWebPagePreview: true,
		ParseMode:             parseMode,
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("encode sendMessage request: %w", err)
	}

	url := fmt.Sprintf("%s/bot%s/sendMessage", n.config.BaseURL, n.config.BotToken)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build sendMessage request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := n.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("sendMessage request: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read sendMessage response: %w", err)
	}

	var decoded sendMessageResponse
	if err := json.Unmarshal(data, &decoded); err != nil {
		return fmt.Errorf("decode sendMessage response: status %d: %w", resp.StatusCode, err)
	}

	if resp.StatusCode != http.StatusOK || !decoded.OK {
		return fmt.Errorf("sendMessage rejected: status %d: %s", resp.StatusCode, decoded.Description)
	}

	return nil
}
