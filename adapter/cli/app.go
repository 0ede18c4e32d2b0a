package cli

import (
	"github.com/StrictHornet/keep-agent/internal/extraction/openai"
	"github.com/StrictHornet/keep-agent/internal/notes/infrastructure/takeout"
	"github.com/StrictHornet/keep-agent/internal/notify/telegram"
	"github.com/StrictHornet/keep-agent/internal/triage/application/commands"
	"github.com/StrictHornet/keep-agent/pkg/config"
)

// App holds the CLI application dependencies.
type App struct {
	Config *config.Config

	Loader              *takeout.Loader
	Classifier          *openai.Client
	Notifier            *telegram.Notifier
	ProcessNotesHandler *commands.ProcessNotesHandler
}

// NewApp creates a new CLI application with the provided dependencies.
func NewApp(
	cfg *config.Config,
	loader *takeout.Loader,
	classifier *openai.Client,
	notifier *telegram.Notifier,
	processNotesHandler *commands.ProcessNotesHandler,
) *App {
	return &App{
		Config:              cfg,
		Loader:              loader,
		Classifier:          classifier,
		Notifier:            notifier,
		ProcessNotesHandler: processNotesHandler,
	}
}

// app is the global CLI application instance
var app *App

// SetApp sets the global CLI application instance.
func SetApp(a *App) {
	app = a
}

// GetApp returns the global CLI application instance.
func GetApp() *App {
	return app
}
