// Package cli implements the keep-agent command line interface.
package cli

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/StrictHornet/keep-agent/pkg/observability"
)

var (
	verbose bool
	logger  *slog.Logger
)

type commandContext struct {
	startedAt time.Time
}

type commandContextKey struct{}

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "keep-agent",
	Short: "Keep Agent - personal note triage",
	Long: `Keep Agent turns a Google Keep export into a prioritised action list.

It classifies notes into tasks, ideas and references, scores every task
deterministically, flags neglected life domains, and can push a daily
brief to Telegram.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if logger == nil {
			logger = slog.Default()
		}
		ctx, _ := observability.EnsureCorrelationID(cmd.Context())
		ctx = context.WithValue(ctx, commandContextKey{}, commandContext{startedAt: time.Now()})
		cmd.SetContext(ctx)
		logger.InfoContext(ctx, "command start", "command", cmd.CommandPath())
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger == nil {
			logger = slog.Default()
		}
		ctx := cmd.Context()
		info, ok := ctx.Value(commandContextKey{}).(commandContext)
		if !ok {
			return
		}
		logger.InfoContext(ctx, "command end",
			"command", cmd.CommandPath(),
			"duration_ms", time.Since(info.startedAt).Milliseconds(),
		)
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute(ctx context.Context) {
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}

// AddCommand adds a command to the root command.
func AddCommand(cmd *cobra.Command) {
	rootCmd.AddCommand(cmd)
}

// SetLogger sets the CLI logger.
func SetLogger(l *slog.Logger) {
	logger = l
}
