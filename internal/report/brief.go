// Package report turns a triage analysis into its two output
// artifacts: the Telegram-ready priority brief and the JSON analysis
// file kept for audit.
package report

import (
	"fmt"
	"strings"
	"time"

	"github.com/StrictHornet/keep-agent/internal/triage/domain"
)

const (
	// topTaskCount bounds how many priorities make the brief.
	topTaskCount = 5
	// vagueNoteCount bounds how many unclear notes are surfaced.
	vagueNoteCount = 5
	// snippetLength bounds each vague-note preview.
	snippetLength = 60
)

// Brief renders a decision-ready Markdown summary of the analysis:
// the top priorities, neglected domains, scan statistics, and notes
// that need human clarification.
func Brief(analysis *domain.Analysis, now time.Time) string {
	var lines []string

	lines = append(lines, "*KEEP INTELLIGENCE BRIEF*")
	lines = append(lines, fmt.Sprintf("_%s_", now.Format("Monday, 02 January 2006")))
	lines = append(lines, "")

	if len(analysis.Tasks) > 0 {
		lines = append(lines, "*TOP PRIORITIES*")
		top := analysis.Tasks
		if len(top) > topTaskCount {
			top = top[:topTaskCount]
		}
		for i, task := range top {
			lines = append(lines, fmt.Sprintf("  %d. %s  [%s]  %.0f",
				i+1, task.Description, task.NormalizedDomain(), task.PriorityScore))
		}
		lines = append(lines, "")
	}

	if len(analysis.DomainWarnings) > 0 {
		lines = append(lines, "*NEGLECTED DOMAINS*")
		for _, warning := range analysis.DomainWarnings {
			lines = append(lines, "  - "+warning)
		}
		lines = append(lines, "")
	}

	lines = append(lines, "*SCAN SUMMARY*")
	lines = append(lines, fmt.Sprintf("  Notes scanned: %d", analysis.Stats.TotalNotes))
	lines = append(lines, fmt.Sprintf("  Tasks extracted: %d", analysis.Stats.TasksExtracted))
	lines = append(lines, fmt.Sprintf("  Vague notes: %d", analysis.Stats.VagueCount))
	lines = append(lines, fmt.Sprintf("  Duplicate groups: %d", analysis.Stats.DuplicateGroups))

	if len(analysis.Vague) > 0 {
		lines = append(lines, "")
		lines = append(lines, "*VAGUE NOTES (need clarity)*")
		vague := analysis.Vague
		if len(vague) > vagueNoteCount {
			vague = vague[:vagueNoteCount]
		}
		for _, note := range vague {
			lines = append(lines, fmt.Sprintf("  - _%s_...", snippet(note)))
		}
	}

	return strings.Join(lines, "\n")
}

func snippet(note domain.VagueNote) string {
	text := note.Content
	if text == "" {
		text = note.Title
	}
	runes := []rune(text)
	if len(runes) > snippetLength {
		return string(runes[:snippetLength])
	}
	return text
}
