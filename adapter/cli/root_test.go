package cli

import (
	"bytes"
	"context"
	"regexp"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/StrictHornet/keep-agent/pkg/observability"
)

func TestRootCommand_CorrelationIDReachesPipelineLogs(t *testing.T) {
	var buf bytes.Buffer
	SetLogger(observability.NewLogger(observability.LogConfig{
		Level:  observability.LogLevelInfo,
		Format: observability.LogFormatText,
		Output: &buf,
	}))
	t.Cleanup(func() { SetLogger(nil) })

	probeCmd := &cobra.Command{
		Use: "run-inner",
		RunE: func(cmd *cobra.Command, args []string) error {
			// Stands in for handler/loader/client logging: everything
			// downstream logs through the command context.
			logger.InfoContext(cmd.Context(), "inner work")
			return nil
		},
	}
	rootCmd.AddCommand(probeCmd)
	t.Cleanup(func() { rootCmd.RemoveCommand(probeCmd) })

	rootCmd.SetArgs([]string{"run-inner"})
	require.NoError(t, rootCmd.ExecuteContext(context.Background()))

	output := buf.String()
	assert.Contains(t, output, "command start")
	assert.Contains(t, output, "inner work")
	assert.Contains(t, output, "command end")

	ids := regexp.MustCompile(`correlation_id=(\S+)`).FindAllStringSubmatch(output, -1)
	require.Len(t, ids, 3, "start, inner, and end lines must all carry the run's correlation ID")
	assert.Equal(t, ids[0][1], ids[1][1])
	assert.Equal(t, ids[0][1], ids[2][1])
}
