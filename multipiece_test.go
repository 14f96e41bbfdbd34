package fmindex

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildMultiPieceRejectsEmptyPieceList(t *testing.T) {
	_, err := BuildMultiPiece(nil, BuildOptions{})
	require.Error(t, err)
}

func TestBuildMultiPieceRejectsEmbeddedSentinel(t *testing.T) {
	_, err := BuildMultiPiece([][]int32{{1, 0, 2}}, BuildOptions{})
	require.Error(t, err)
}

func TestMultiPiecePieceID(t *testing.T) {
	pieces := [][]int32{
		toInt32s("apple"),
		toInt32s("banana"),
		toInt32s("cherry"),
	}
	mp, err := BuildMultiPiece(pieces, BuildOptions{Locate: true})
	require.NoError(t, err)

	for want, p := range pieces {
		positions, err := mp.Locate(p)
		require.NoError(t, err)
		require.NotEmpty(t, positions)
		for _, pos := range positions {
			assert.Equal(t, want, mp.PieceID(pos), "piece %d pattern %q at position %d", want, string(toBytes(p)), pos)
		}
	}
}

func TestMultiPieceSearchExactFindsWholePieceMatches(t *testing.T) {
	pieces := [][]int32{
		toInt32s("abc"),
		toInt32s("abcd"),
		toInt32s("xabcx"),
	}
	mp, err := BuildMultiPiece(pieces, BuildOptions{Locate: true})
	require.NoError(t, err)

	ids, err := mp.SearchExact(toInt32s("abc"))
	require.NoError(t, err)
	assert.ElementsMatch(t, []int{0}, ids)
}

func TestMultiPieceSearchPrefixAndSuffix(t *testing.T) {
	pieces := [][]int32{
		toInt32s("hello world"),
		toInt32s("world peace"),
		toInt32s("say hello"),
	}
	mp, err := BuildMultiPiece(pieces, BuildOptions{Locate: true})
	require.NoError(t, err)

	prefixIDs, err := mp.SearchPrefix(toInt32s("hello"))
	require.NoError(t, err)
	assert.ElementsMatch(t, []int{0}, prefixIDs)

	suffixIDs, err := mp.SearchSuffix(toInt32s("hello"))
	require.NoError(t, err)
	assert.ElementsMatch(t, []int{2}, suffixIDs)

	suffixPeace, err := mp.SearchSuffix(toInt32s("peace"))
	require.NoError(t, err)
	assert.ElementsMatch(t, []int{1}, suffixPeace)
}

// TestMultiPieceLocateWithSamplingRespectsPieceOrder builds with
// SampleLevel > 0 (so Locate's LF-walk actually lands on unsampled
// rows, unlike SampleLevel 0 where every row is sampled and lfMap is
// never called) and pieces whose content sorts in a different order
// than their piece index ("zebra" > "mango" > "apple" alphabetically,
// but the pieces are piece 0, 1, 2 in concatenation order). This is
// exactly the configuration where the unadjusted generic LF formula
// for symbol 0 would route an LF-walk through the wrong one of the P
// sentinel rows.
func TestMultiPieceLocateWithSamplingRespectsPieceOrder(t *testing.T) {
	pieces := [][]int32{
		toInt32s("zebra stripes run wide"),
		toInt32s("apple trees grow tall"),
		toInt32s("mango season starts soon"),
	}
	mp, err := BuildMultiPiece(pieces, BuildOptions{Locate: true, SampleLevel: 2})
	require.NoError(t, err)

	var flat []int32
	pieceOf := make(map[int]int)
	for id, p := range pieces {
		start := len(flat)
		flat = append(flat, p...)
		for pos := start; pos < len(flat); pos++ {
			pieceOf[pos] = id
		}
		flat = append(flat, 0)
	}

	for _, pattern := range []string{"a", "e", "s", "o", "tr"} {
		p := toInt32s(pattern)
		want := bruteForceLocate(flat, p)
		got, err := mp.Locate(p)
		require.NoError(t, err)
		assert.ElementsMatch(t, want, got, "pattern %q", pattern)
		for _, pos := range got {
			assert.Equal(t, pieceOf[pos], mp.PieceID(pos), "pattern %q position %d", pattern, pos)
		}
	}
}

func toBytes(symbols []int32) []byte {
	out := make([]byte, len(symbols))
	for i, s := range symbols {
		out[i] = byte(s)
	}
	return out
}
