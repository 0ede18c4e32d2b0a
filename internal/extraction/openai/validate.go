package openai

import (
	"context"
	"log/slog"
	"strings"

	triage "github.com/StrictHornet/keep-agent/internal/triage/domain"
)

// validateExtraction repairs the structural defects models produce:
// missing category lists become empty, tasks without a description are
// dropped, and surviving tasks get their optional fields defaulted so
// downstream scoring never sees a nil slice or blank domain.
func validateExtraction(ctx context.Context, e *triage.Extraction, logger *slog.Logger) *triage.Extraction {
	if e.Tasks == nil {
		e.Tasks = []triage.Task{}
	}
	if e.Ideas == nil {
		e.Ideas = []triage.Idea{}
	}
	if e.References == nil {
		e.References = []triage.Reference{}
	}
	if e.Vague == nil {
		e.Vague = []triage.VagueNote{}
	}
	if e.Duplicates == nil {
		e.Duplicates = []triage.DuplicateGroup{}
	}

	valid := e.Tasks[:0]
	for _, task := range e.Tasks {
		if strings.TrimSpace(task.Description) == "" {
			logger.WarnContext(ctx, "dropping malformed task without description")
			continue
		}
		if strings.TrimSpace(task.Domain) == "" {
			task.Domain = triage.DomainUncategorised
		}
		if task.UrgencyWords == nil {
			task.UrgencyWords = []string{}
		}
		if task.SourceNoteIDs == nil {
			task.SourceNoteIDs = []string{}
		}
		if task.MergedFrom == nil {
			task.MergedFrom = []string{}
		}
		valid = append(valid, task)
	}
	e.Tasks = valid

	return e
}
