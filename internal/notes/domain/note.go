// Package domain defines the uniform note record the pipeline consumes,
// regardless of which export format it was loaded from.
package domain

// Note is a normalized note from the user's export.
type Note struct {
	ID        string   `json:"id"`
	Title     string   `json:"title"`
	Content   string   `json:"content"`
	CreatedAt string   `json:"created_at"`
	UpdatedAt string   `json:"updated_at"`
	Labels    []string `json:"labels,omitempty"`
	Archived  bool     `json:"is_archived"`
}

// Chunk splits notes into batches of at most size elements, preserving
// order. Classification happens per chunk to bound prompt size. A
// non-positive size yields a single chunk.
func Chunk(notes []Note, size int) [][]Note {
	if len(notes) == 0 {
		return nil
	}
	if size <= 0 {
		return [][]Note{notes}
	}

	chunks := make([][]Note, 0, (len(notes)+size-1)/size)
	for start := 0; start < len(notes); start += size {
		end := start + size
		if end > len(notes) {
			end = len(notes)
		}
		chunks = append(chunks, notes[start:end])
	}
	return chunks
}
