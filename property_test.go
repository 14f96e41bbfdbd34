package fmindex

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/succinct-go/fmindex/random"
)

// TestPropertyLocateMatchesCountAndText is the core correctness
// property of the index: for many random texts and patterns, Count
// equals the number of positions Locate returns, and every position
// Locate returns really is followed by pattern in the original text.
func TestPropertyLocateMatchesCountAndText(t *testing.T) {
	for trial := 0; trial < 40; trial++ {
		text := random.Text(50+trial*7, 4, int64(trial))
		idx, err := Build(text, BuildOptions{Locate: true})
		require.NoError(t, err)

		pattern := random.Substring(text, 12, int64(trial*97+1))
		count, err := idx.Count(pattern)
		require.NoError(t, err)
		positions, err := idx.Locate(pattern)
		require.NoError(t, err)

		assert.Equal(t, count, len(positions), "trial %d: Count and len(Locate) disagree", trial)

		seen := make(map[int]bool)
		for _, pos := range positions {
			require.False(t, seen[pos], "trial %d: duplicate position %d", trial, pos)
			seen[pos] = true
			require.LessOrEqual(t, pos+len(pattern), len(text))
			assert.Equal(t, pattern, text[pos:pos+len(pattern)], "trial %d: position %d does not match pattern", trial, pos)
		}
	}
}

// TestPropertyAbsentPatternHasNoOccurrences checks the negative case:
// a pattern constructed not to occur in the text must report zero
// count and an empty locate set.
func TestPropertyAbsentPatternHasNoOccurrences(t *testing.T) {
	for trial := 0; trial < 20; trial++ {
		text := random.Text(80, 3, int64(trial)+1000)
		idx, err := Build(text, BuildOptions{Locate: true})
		require.NoError(t, err)

		pattern := random.NotPresent(text, 6, 3, int64(trial)+2000)
		count, err := idx.Count(pattern)
		require.NoError(t, err)
		assert.Equal(t, 0, count, "trial %d: pattern %v unexpectedly present", trial, pattern)

		positions, err := idx.Locate(pattern)
		require.NoError(t, err)
		assert.Empty(t, positions)
	}
}

// TestPropertyWholeTextOccursOnceAtZero checks full coverage: the
// pattern consisting of the whole text always has exactly one
// occurrence, at position 0, regardless of kernel variant.
func TestPropertyWholeTextOccursOnceAtZero(t *testing.T) {
	for trial := 0; trial < 10; trial++ {
		text := random.Text(30+trial, 4, int64(trial)+5000)
		for _, runLength := range []bool{false, true} {
			idx, err := Build(text, BuildOptions{Locate: true, RunLength: runLength})
			require.NoError(t, err)
			positions, err := idx.Locate(text)
			require.NoError(t, err)
			assert.Equal(t, []int{0}, positions, "trial %d runLength=%v", trial, runLength)
		}
	}
}

// TestPropertyMultiPieceRoundTrip builds a multi-piece index over six
// random pieces and checks that every piece is findable as an exact
// match against itself, and only against itself.
func TestPropertyMultiPieceRoundTrip(t *testing.T) {
	pieces := random.Pieces(6, 25, 3, 77)
	mp, err := BuildMultiPiece(pieces, BuildOptions{Locate: true})
	require.NoError(t, err)

	for id, piece := range pieces {
		ids, err := mp.SearchExact(piece)
		require.NoError(t, err)
		assert.Contains(t, ids, id, "piece %d should exact-match itself", id)
		assert.Len(t, ids, 1, "piece %d should exact-match only itself", id)
	}
}
