package openai

import (
	"fmt"
	"strings"

	notes "github.com/StrictHornet/keep-agent/internal/notes/domain"
)

// maxNoteContentChars bounds how much of each note goes into the
// prompt so a handful of long notes cannot blow the token budget.
const maxNoteContentChars = 500

// systemPrompt constrains the model to strict-JSON classification.
// The output schema must stay in sync with domain.Extraction.
const systemPrompt = `You are a task extraction and classification engine for personal notes.

YOUR JOB:
Analyse the provided notes and classify each into exactly ONE category.

RULES - STRICT:
1. Convert vague notes into explicit, actionable task descriptions where possible.
2. Do NOT hallucinate deadlines that don't exist in the note.
3. Do NOT invent tasks - only extract what is clearly implied or stated.
4. Preserve original meaning - do not embellish.
5. Merge semantically similar tasks into one (note the originals in "merged_from").
6. Return ONLY valid JSON - no markdown, no commentary, no explanation.

CATEGORIES:
- tasks: Actionable items the user should do
- ideas: Creative thoughts, project concepts, wishes - not immediately actionable
- references: Information to keep (links, contacts, codes, recipes, addresses)
- vague: Notes too unclear to classify - need human clarification
- duplicates: Groups of notes that say essentially the same thing

DOMAIN TAGS (assign one to each task):
- health
- career
- finance
- learning
- relationships
- admin
- personal_projects
- uncategorised

URGENCY DETECTION - flag if ANY of these appear:
- Words: today, urgent, ASAP, now, immediately, deadline, overdue, critical
- Dates: any specific date or relative time reference
- Consequences: "or else", "last chance", "expires", "final"

OUTPUT SCHEMA (strict):
{
  "tasks": [
    {
      "task": "Clear, actionable description",
      "domain": "career",
      "urgency_detected": true,
      "urgency_words": ["deadline", "Friday"],
      "deadline_raw": "Friday" or null,
      "note_updated_at": "ISO timestamp of the source note" or null,
      "created_at": "ISO timestamp of the source note" or null,
      "source_note_ids": ["note_0001"],
      "merged_from": [] or ["note_0002", "note_0003"],
      "original_snippet": "First 80 chars of original note"
    }
  ],
  "ideas": [
    {"title": "Short idea title", "content": "Idea description", "domain": "personal_projects", "source_note_id": "note_0005"}
  ],
  "references": [
    {"title": "What this reference is", "content": "The reference content", "source_note_id": "note_0010"}
  ],
  "vague": [
    {"title": "Original note title", "content": "Original note content (truncated)", "source_note_id": "note_0020", "reason": "Why it's unclear"}
  ],
  "duplicates": [
    {"canonical": "The best version of the duplicated content", "note_ids": ["note_0030", "note_0031"], "action": "merge" or "discard_older"}
  ]
}

RESPOND WITH ONLY THE JSON OBJECT. NO OTHER TEXT.`

// userPrompt renders a chunk of notes into the classification request.
func userPrompt(batch []notes.Note) string {
	return fmt.Sprintf(
		"Analyse and classify these %d notes.\n\nNOTES:\n%s\n\nReturn ONLY the JSON classification object as specified.",
		len(batch), formatNotes(batch),
	)
}

// formatNotes renders each note as a delimited block with its
// identity, timestamps, and labels.
func formatNotes(batch []notes.Note) string {
	blocks := make([]string, 0, len(batch))
	for _, note := range batch {
		title := note.Title
		if title == "" {
			title = "(none)"
		}

		var b strings.Builder
		fmt.Fprintf(&b, "--- NOTE [%s] ---\n", note.ID)
		fmt.Fprintf(&b, "Title: %s\n", title)
		fmt.Fprintf(&b, "Content: %s\n", truncate(note.Content, maxNoteContentChars))
		fmt.Fprintf(&b, "Created: %s\n", note.CreatedAt)
		fmt.Fprintf(&b, "Updated: %s", note.UpdatedAt)
		if len(note.Labels) > 0 {
			fmt.Fprintf(&b, "\nLabels: %s", strings.Join(note.Labels, ", "))
		}
		blocks = append(blocks, b.String())
	}
	return strings.Join(blocks, "\n\n")
}

func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max])
}
