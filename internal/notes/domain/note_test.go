package domain

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChunk(t *testing.T) {
	makeNotes := func(n int) []Note {
		notes := make([]Note, n)
		for i := range notes {
			notes[i] = Note{ID: fmt.Sprintf("n%d", i)}
		}
		return notes
	}

	t.Run("splits into even chunks with remainder", func(t *testing.T) {
		chunks := Chunk(makeNotes(7), 3)

		require.Len(t, chunks, 3)
		assert.Len(t, chunks[0], 3)
		assert.Len(t, chunks[1], 3)
		assert.Len(t, chunks[2], 1)
		assert.Equal(t, "n0", chunks[0][0].ID)
		assert.Equal(t, "n6", chunks[2][0].ID)
	})

	t.Run("empty input yields no chunks", func(t *testing.T) {
		assert.Nil(t, Chunk(nil, 30))
	})

	t.Run("non-positive size yields one chunk", func(t *testing.T) {
		chunks := Chunk(makeNotes(5), 0)

		require.Len(t, chunks, 1)
		assert.Len(t, chunks[0], 5)
	})
}
