package services

import (
	"fmt"
	"strings"

	"github.com/StrictHornet/keep-agent/internal/triage/domain"
)

// NoTasksWarning is emitted when there is nothing to assess.
const NoTasksWarning = "no tasks extracted - cannot assess domain balance"

// ImbalanceDetector audits the distribution of scored tasks across
// life domains and reports the ones that look neglected.
type ImbalanceDetector struct {
	config ScoringConfig
}

// NewImbalanceDetector creates a detector with the given configuration.
func NewImbalanceDetector(cfg ScoringConfig) *ImbalanceDetector {
	return &ImbalanceDetector{config: cfg}
}

// Detect returns one human-readable warning per neglected domain, in
// the declaration order of the minimum-share table. A domain with zero
// tasks gets a distinct warning from one that is merely under its
// share. An empty task list yields exactly one "cannot assess" warning.
func (d *ImbalanceDetector) Detect(tasks []domain.Task) []string {
	if len(tasks) == 0 {
		return []string{NoTasksWarning}
	}

	counts := make(map[string]int, len(tasks))
	for _, t := range tasks {
		counts[t.NormalizedDomain()]++
	}

	total := len(tasks)
	var warnings []string

	for _, expected := range d.config.MinimumShares {
		count := counts[expected.Domain]
		share := float64(count) / float64(total)

		switch {
		case count == 0:
			warnings = append(warnings, fmt.Sprintf(
				"%s: zero tasks detected - this domain may be completely neglected",
				strings.ToUpper(expected.Domain),
			))
		case share < expected.MinShare:
			warnings = append(warnings, fmt.Sprintf(
				"%s: only %d task(s) (%.0f%%) - below %.0f%% threshold",
				strings.ToUpper(expected.Domain), count, share*100, expected.MinShare*100,
			))
		}
	}

	return warnings
}
