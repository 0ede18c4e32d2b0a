// Package app wires the application dependencies together.
package app

import (
	"log/slog"

	"github.com/StrictHornet/keep-agent/internal/extraction/openai"
	"github.com/StrictHornet/keep-agent/internal/notes/infrastructure/takeout"
	"github.com/StrictHornet/keep-agent/internal/notify/telegram"
	"github.com/StrictHornet/keep-agent/internal/triage/application/commands"
	"github.com/StrictHornet/keep-agent/internal/triage/services"
	"github.com/StrictHornet/keep-agent/pkg/config"
)

// Container holds all application dependencies.
type Container struct {
	Config *config.Config
	Logger *slog.Logger

	// Infrastructure
	Loader     *takeout.Loader
	Classifier *openai.Client
	Notifier   *telegram.Notifier

	// Services
	Scorer   *services.Scorer
	Detector *services.ImbalanceDetector

	// Command Handlers
	ProcessNotesHandler *commands.ProcessNotesHandler
}

// NewContainer creates and wires all application dependencies.
func NewContainer(cfg *config.Config, logger *slog.Logger) *Container {
	loader := takeout.NewLoader(logger)

	classifier := openai.NewClient(openai.Config{
		APIKey:  cfg.OpenAIAPIKey,
		Model:   cfg.OpenAIModel,
		BaseURL: cfg.OpenAIBaseURL,
		Timeout: cfg.OpenAITimeout,
	}, logger)

	notifier := telegram.NewNotifier(telegram.Config{
		BotToken: cfg.TelegramBotToken,
		ChatID:   cfg.TelegramChatID,
		Timeout:  cfg.TelegramTimeout,
	}, logger)

	scorer := services.NewScorer(services.DefaultScoringConfig())
	detector := services.NewImbalanceDetector(services.DefaultScoringConfig())

	handler := commands.NewProcessNotesHandler(classifier, scorer, detector, logger)

	return &Container{
		Config:              cfg,
		Logger:              logger,
		Loader:              loader,
		Classifier:          classifier,
		Notifier:            notifier,
		Scorer:              scorer,
		Detector:            detector,
		ProcessNotesHandler: handler,
	}
}
