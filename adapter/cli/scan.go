package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/StrictHornet/keep-agent/internal/report"
	"github.com/StrictHornet/keep-agent/internal/triage/application/commands"
	"github.com/StrictHornet/keep-agent/pkg/observability"
)

var (
	scanDataPath  string
	scanOutput    string
	scanChunkSize int
	scanNoNotify  bool
)

var scanCmd = &cobra.Command{
	Use:   "scan",
	Short: "Triage a Google Keep export",
	Long: `Scan a Google Keep Takeout export, classify every note, score the
extracted tasks and print an intelligence brief.

The full analysis is written as JSON next to the brief. With Telegram
credentials configured the brief is also pushed to your chat.

Examples:
  keep-agent scan
  keep-agent scan --data ~/Takeout/Keep --chunk-size 20
  keep-agent scan --no-notify`,
	RunE: func(cmd *cobra.Command, args []string) error {
		app := GetApp()
		if app == nil {
			return fmt.Errorf("application not initialized")
		}
		ctx := cmd.Context()
		start := time.Now()

		dataPath := scanDataPath
		if dataPath == "" {
			dataPath = app.Config.KeepDataPath
		}
		outputPath := scanOutput
		if outputPath == "" {
			outputPath = app.Config.OutputPath
		}
		chunkSize := scanChunkSize
		if chunkSize <= 0 {
			chunkSize = app.Config.ChunkSize
		}

		notes, err := app.Loader.Load(ctx, dataPath)
		if err != nil {
			return fmt.Errorf("failed to load notes: %w", err)
		}
		if len(notes) == 0 {
			fmt.Printf("No notes found in %s\n", dataPath)
			return nil
		}
		fmt.Printf("Loaded %d notes from %s\n", len(notes), dataPath)

		analysis, err := app.ProcessNotesHandler.Handle(ctx, commands.ProcessNotesCommand{
			Notes:     notes,
			ChunkSize: chunkSize,
		})
		if err != nil {
			return fmt.Errorf("failed to process notes: %w", err)
		}

		if err := report.WriteAnalysis(outputPath, analysis); err != nil {
			return fmt.Errorf("failed to write analysis: %w", err)
		}
		fmt.Printf("Analysis written to %s\n\n", outputPath)

		brief := report.Brief(analysis, time.Now())
		fmt.Println(brief)

		if !scanNoNotify && app.Config.TelegramEnabled() {
			if err := app.Notifier.Send(ctx, brief); err != nil {
				logger.WarnContext(ctx, "telegram notification failed", "error", err)
				fmt.Println("Telegram notification failed; brief printed above.")
			} else {
				fmt.Println("Brief sent to Telegram.")
			}
		}

		observability.LogDuration(ctx, logger, "scan", start)
		return nil
	},
}

func init() {
	scanCmd.Flags().StringVarP(&scanDataPath, "data", "d", "", "path to the Keep export (file or directory)")
	scanCmd.Flags().StringVarP(&scanOutput, "output", "o", "", "path for the JSON analysis file")
	scanCmd.Flags().IntVar(&scanChunkSize, "chunk-size", 0, "notes per classification request")
	scanCmd.Flags().BoolVar(&scanNoNotify, "no-notify", false, "skip the Telegram notification")
	rootCmd.AddCommand(scanCmd)
}
