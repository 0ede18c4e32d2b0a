// Package commands holds the application-layer handlers that drive
// the triage pipeline.
package commands

import (
	"context"
	"log/slog"

	notes "github.com/StrictHornet/keep-agent/internal/notes/domain"
	"github.com/StrictHornet/keep-agent/internal/triage/domain"
	"github.com/StrictHornet/keep-agent/internal/triage/services"
)

// Classifier maps a chunk of notes to a categorized extraction. The
// OpenAI client is the production implementation.
type Classifier interface {
	Classify(ctx context.Context, batch []notes.Note) (*domain.Extraction, error)
}

// ProcessNotesCommand contains the data for one triage run.
type ProcessNotesCommand struct {
	Notes []notes.Note
	// ChunkSize bounds how many notes go into one classification
	// request. Non-positive means a single chunk.
	ChunkSize int
}

// ProcessNotesHandler runs the full pipeline: chunked classification,
// deterministic scoring, and domain balance detection. Classification
// controls meaning; the scorer controls ranking.
type ProcessNotesHandler struct {
	classifier Classifier
	scorer     *services.Scorer
	detector   *services.ImbalanceDetector
	logger     *slog.Logger
}

// NewProcessNotesHandler creates a handler. Nil scorer or detector
// fall back to the default configuration.
func NewProcessNotesHandler(
	classifier Classifier,
	scorer *services.Scorer,
	detector *services.ImbalanceDetector,
	logger *slog.Logger,
) *ProcessNotesHandler {
	if scorer == nil {
		scorer = services.NewScorer(services.DefaultScoringConfig())
	}
	if detector == nil {
		detector = services.NewImbalanceDetector(services.DefaultScoringConfig())
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &ProcessNotesHandler{
		classifier: classifier,
		scorer:     scorer,
		detector:   detector,
		logger:     logger,
	}
}

// Handle executes the run. Classification failures are per-chunk: a
// failed chunk is logged and skipped, and the rest of the pipeline
// proceeds with whatever was extracted. Only context cancellation
// aborts the run.
func (h *ProcessNotesHandler) Handle(ctx context.Context, cmd ProcessNotesCommand) (*domain.Analysis, error) {
	chunks := notes.Chunk(cmd.Notes, cmd.ChunkSize)
	h.logger.InfoContext(ctx, "processing notes", "notes", len(cmd.Notes), "chunks", len(chunks))

	merged := &domain.Extraction{}
	for i, chunk := range chunks {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		h.logger.InfoContext(ctx, "classifying chunk", "chunk", i+1, "of", len(chunks), "notes", len(chunk))
		extraction, err := h.classifier.Classify(ctx, chunk)
		if err != nil {
			h.logger.WarnContext(ctx, "chunk classification failed, skipping", "chunk", i+1, "error", err)
			continue
		}
		merged.Merge(extraction)
	}

	h.logger.InfoContext(ctx, "extraction complete",
		"tasks", len(merged.Tasks),
		"ideas", len(merged.Ideas),
		"references", len(merged.References),
		"vague", len(merged.Vague),
		"duplicate_groups", len(merged.Duplicates),
	)

	scored := h.scorer.Score(merged.Tasks)
	warnings := h.detector.Detect(scored)

	return &domain.Analysis{
		Tasks:          scored,
		Ideas:          merged.Ideas,
		References:     merged.References,
		Vague:          merged.Vague,
		Duplicates:     merged.Duplicates,
		DomainWarnings: warnings,
		Stats: domain.Stats{
			TotalNotes:       len(cmd.Notes),
			TasksExtracted:   len(scored),
			IdeasExtracted:   len(merged.Ideas),
			VagueCount:       len(merged.Vague),
			DuplicateGroups:  len(merged.Duplicates),
			DomainsNeglected: len(warnings),
		},
	}, nil
}
