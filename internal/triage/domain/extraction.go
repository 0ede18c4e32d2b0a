package domain

// Idea is a creative thought or project concept that is not
// immediately actionable.
type Idea struct {
	Title        string `json:"title"`
	Content      string `json:"content"`
	Domain       string `json:"domain,omitempty"`
	SourceNoteID string `json:"source_note_id,omitempty"`
}

// Reference is information worth keeping: links, contacts, codes,
// recipes, addresses.
type Reference struct {
	Title        string `json:"title"`
	Content      string `json:"content"`
	SourceNoteID string `json:"source_note_id,omitempty"`
}

// VagueNote is a note too unclear to classify, kept for human review.
type VagueNote struct {
	Title        string `json:"title"`
	Content      string `json:"content"`
	SourceNoteID string `json:"source_note_id,omitempty"`
	Reason       string `json:"reason,omitempty"`
}

// DuplicateGroup is a set of notes the classifier considers to say
// essentially the same thing.
type DuplicateGroup struct {
	Canonical string   `json:"canonical"`
	NoteIDs   []string `json:"note_ids"`
	Action    string   `json:"action,omitempty"`
}

// Extraction is the classifier output for one chunk of notes.
type Extraction struct {
	Tasks      []Task           `json:"tasks"`
	Ideas      []Idea           `json:"ideas"`
	References []Reference      `json:"references"`
	Vague      []VagueNote      `json:"vague"`
	Duplicates []DuplicateGroup `json:"duplicates"`
}

// Merge appends another extraction's categories onto this one.
// Chunked classification merges per-chunk results this way.
func (e *Extraction) Merge(other *Extraction) {
	if other == nil {
		return
	}
	e.Tasks = append(e.Tasks, other.Tasks...)
	e.Ideas = append(e.Ideas, other.Ideas...)
	e.References = append(e.References, other.References...)
	e.Vague = append(e.Vague, other.Vague...)
	e.Duplicates = append(e.Duplicates, other.Duplicates...)
}

// Stats summarises one pipeline run.
type Stats struct {
	TotalNotes       int `json:"total_notes"`
	TasksExtracted   int `json:"tasks_extracted"`
	IdeasExtracted   int `json:"ideas_extracted"`
	VagueCount       int `json:"vague_count"`
	DuplicateGroups  int `json:"duplicate_groups"`
	DomainsNeglected int `json:"domains_neglected"`
}

// Analysis is the complete result of a triage run: scored tasks in
// priority order, the remaining extraction categories, the domain
// balance warnings, and run statistics.
type Analysis struct {
	Tasks          []Task           `json:"tasks"`
	Ideas          []Idea           `json:"ideas"`
	References     []Reference      `json:"references"`
	Vague          []VagueNote      `json:"vague"`
	Duplicates     []DuplicateGroup `json:"duplicates"`
	DomainWarnings []string         `json:"domain_warnings"`
	Stats          Stats            `json:"stats"`
}
