// Package domain defines the records that flow through the triage
// pipeline: extracted tasks, the surrounding extraction categories,
// and the analysis produced by a full run.
package domain

import "strings"

// DomainUncategorised is the fallback life domain for tasks the
// classifier could not place.
const DomainUncategorised = "uncategorised"

// Task is a single actionable item extracted from the note export.
// The classifier populates the descriptive fields best-effort; any of
// them may be missing. The scorer fills in the numeric score fields.
type Task struct {
	// Description is the actionable task text.
	Description string `json:"task"`

	// Domain is the life-domain tag assigned by the classifier
	// (health, career, finance, learning, relationships, admin,
	// personal_projects, uncategorised).
	Domain string `json:"domain,omitempty"`

	// UrgencyDetected is set when the classifier saw any urgency signal.
	UrgencyDetected bool `json:"urgency_detected,omitempty"`

	// UrgencyWords are the raw words or phrases that triggered the
	// urgency flag, in the order the classifier reported them.
	UrgencyWords []string `json:"urgency_words,omitempty"`

	// DeadlineRaw is the verbatim deadline mention, empty when none.
	DeadlineRaw string `json:"deadline_raw,omitempty"`

	// NoteUpdatedAt and NoteCreatedAt carry the source note timestamps
	// (RFC 3339) so staleness can be scored. Either may be empty.
	NoteUpdatedAt string `json:"note_updated_at,omitempty"`
	NoteCreatedAt string `json:"created_at,omitempty"`

	// Provenance back to the source notes.
	SourceNoteIDs   []string `json:"source_note_ids,omitempty"`
	MergedFrom      []string `json:"merged_from,omitempty"`
	OriginalSnippet string   `json:"original_snippet,omitempty"`

	// Score fields, populated by the scorer. PriorityScore is always
	// the exact sum of the three sub-scores.
	ScoreUrgency   float64 `json:"score_urgency"`
	ScoreImpact    float64 `json:"score_impact"`
	ScoreStaleness float64 `json:"score_staleness"`
	PriorityScore  float64 `json:"priority_score"`
}

// NormalizedDomain returns the lowercase domain tag, falling back to
// the uncategorised bucket when the classifier left it empty.
func (t Task) NormalizedDomain() string {
	d := strings.ToLower(strings.TrimSpace(t.Domain))
	if d == "" {
		return DomainUncategorised
	}
	return d
}
