package fmindex

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func buildTestFMKernel(t *testing.T, rawText string) (fmKernel, []int32, []int32) {
	t.Helper()
	text := toInt32s(rawText)
	text = append(text, 0)
	sa := buildSuffixArray(text)
	bwtSeq := deriveBWT(text, sa)
	return newFMKernel(bwtSeq, 256), sa, bwtSeq
}

func TestFMKernelGetLMatchesBWT(t *testing.T) {
	k, _, bwtSeq := buildTestFMKernel(t, "mississippi")
	for i, want := range bwtSeq {
		assert.Equal(t, want, k.getL(i), "getL(%d)", i)
	}
}

func TestFMKernelGetFSortedOrder(t *testing.T) {
	k, _, _ := buildTestFMKernel(t, "mississippi")
	prev := k.getF(0)
	for i := 1; i < k.len(); i++ {
		cur := k.getF(i)
		assert.True(t, cur >= prev, "F column must be non-decreasing: F[%d]=%d < F[%d]=%d", i, cur, i-1, prev)
		prev = cur
	}
}

func TestFMKernelLFAndFLAreInverses(t *testing.T) {
	k, _, _ := buildTestFMKernel(t, "abracadabra")
	for i := 0; i < k.len(); i++ {
		lf := k.lfMap(i)
		assert.Equal(t, i, k.flMap(lf), "flMap(lfMap(%d)) should round-trip", i)
	}
}

func TestFMKernelLFPreservesTextOrder(t *testing.T) {
	// Walking LF from any row must, after n steps, cycle back to the
	// starting row (LF is a single permutation decomposing the text's
	// cyclic rotations).
	k, _, _ := buildTestFMKernel(t, "banana")
	for start := 0; start < k.len(); start++ {
		row := start
		for step := 0; step < k.len(); step++ {
			row = k.lfMap(row)
		}
		assert.Equal(t, start, row, "LF^n should be identity, starting row %d", start)
	}
}

func TestFMKernelLFMap2MatchesPerCharacterRank(t *testing.T) {
	k, _, _ := buildTestFMKernel(t, "mississippi")
	for c := int32(0); c < k.alphabetSize(); c++ {
		for s := 0; s <= k.len(); s++ {
			for e := s; e <= k.len(); e++ {
				gotS, gotE := k.lfMap2(c, s, e)
				wantS := int(k.cTab[c]) + k.bwt.rank(c, s)
				wantE := int(k.cTab[c]) + k.bwt.rank(c, e)
				assert.Equal(t, wantS, gotS)
				assert.Equal(t, wantE, gotE)
			}
		}
	}
}
