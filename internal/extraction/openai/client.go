// Package openai classifies note chunks through an OpenAI-compatible
// chat-completions endpoint, returning the strict-JSON extraction the
// deterministic scoring core consumes.
package openai

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

	notes "github.com/StrictHornet/keep-agent/internal/notes/domain"
	triage "github.com/StrictHornet/keep-agent/internal/triage/domain"
	"github.com/sony/gobreaker/v2"
)

const defaultBaseURL = "https://api.openai.com/v1"

// ErrMissingAPIKey is returned when no API key is configured.
var ErrMissingAPIKey = errors.New("openai: api key not configured")

// Config holds the classification endpoint settings.
type Config struct {
	APIKey      string
	Model       string
	BaseURL     string
	Timeout     time.Duration
	MaxTokens   int
	Temperature float64
}

// Client performs note classification via chat completions. All calls
// run through a circuit breaker so a failing endpoint degrades to
// skipped chunks instead of hammering the API.
type Client struct {
	config     Config
	httpClient *http.Client
	breaker    *gobreaker.CircuitBreaker[*triage.Extraction]
	logger     *slog.Logger
}

// NewClient creates a classification client.
func NewClient(cfg Config, logger *slog.Logger) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = defaultBaseURL
	}
	if cfg.Model == "" {
		cfg.Model = "gpt-4o-mini"
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = 60 * time.Second
	}
	if cfg.MaxTokens == 0 {
		cfg.MaxTokens = 4096
	}
	if cfg.Temperature == 0 {
		cfg.Temperature = 0.1
	}
	if logger == nil {
		logger = slog.Default()
	}

	settings := gobreaker.Settings{
		Name: "openai-classifier",
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

	return &Client{
		config:     cfg,
		httpClient: &http.Client{Timeout: cfg.Timeout},
		breaker:    gobreaker.NewCircuitBreaker[*triage.Extraction](settings),
		logger:     logger,
	}
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type responseFormat struct {
	Type string `json:"type"`
}

type chatRequest struct {
	Model          string         `json:"model"`
	Messages       []chatMessage  `json:"messages"`
	Temperature    float64        `json:"temperature"`
	MaxTokens      int            `json:"max_tokens"`
	ResponseFormat responseFormat `json:"response_format"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
		Type    string `json:"type"`
	} `json:"error"`
}

// Classify sends one chunk of notes for classification and returns the
// validated extraction. Structural defects in the model output are
// repaired where possible (missing categories become empty, malformed
// tasks are dropped); transport and decode failures are errors.
func (c *Client) Classify(ctx context.Context, batch []notes.Note) (*triage.Extraction, error) {
	if c.config.APIKey == "" {
		return nil, ErrMissingAPIKey
	}

	c.logger.InfoContext(ctx, "classifying notes", "count", len(batch), "model", c.config.Model)

	return c.breaker.Execute(func() (*triage.Extraction, error) {
		return c.classify(ctx, batch)
	})
}

func (c *Client) classify(ctx context.Context, batch []notes.Note) (*triage.Extraction, error) {
	payload := chatRequest{
		Model: c.config.Model,
		Messages: []chatMessage{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: userPrompt(batch)},
		},
		Temperature:    c.config.Temperature,
		MaxTokens:      c.config.MaxTokens,
		ResponseFormat: responseFormat{Type: "json_object"},
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("encode chat request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.config.BaseURL+"/chat/completions", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("build chat request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.config.APIKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("chat completion request: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read chat response: %w", err)
	}

	var decoded chatResponse
	if err := json.Unmarshal(data, &decoded); err != nil {
		return nil, fmt.Errorf("decode chat response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		if decoded.Error != nil {
			return nil, fmt.Errorf("chat completion failed: %s (%s)", decoded.Error.Message, decoded.Error.Type)
		}
		return nil, fmt.Errorf("chat completion failed: status %d", resp.StatusCode)
	}
	if len(decoded.Choices) == 0 {
		return nil, errors.New("chat completion returned no choices")
	}

	var extraction triage.Extraction
	if err := json.Unmarshal([]byte(decoded.Choices[0].Message.Content), &extraction); err != nil {
		return nil, fmt.Errorf("model returned invalid JSON: %w", err)
	}

	validated := validateExtraction(ctx, &extraction, c.logger)
	c.logger.InfoContext(ctx, "classification complete",
		"tasks", len(validated.Tasks),
		"ideas", len(validated.Ideas),
		"vague", len(validated.Vague),
	)
	return validated, nil
}
