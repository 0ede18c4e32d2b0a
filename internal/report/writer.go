package report

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/StrictHornet/keep-agent/internal/triage/domain"
)

// WriteAnalysis saves the full analysis as indented JSON, creating the
// parent directory if needed. The file is the audit trail for a run
// and the input for later review tooling.
func WriteAnalysis(path string, analysis *domain.Analysis) error {
	data, err := json.MarshalIndent(analysis, "", "  ")
	if err != nil {
		return fmt.Errorf("encode analysis: %w", err)
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create output dir: %w", err)
		}
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write analysis: %w", err)
	}

	return nil
}
