package fmindex

import "sort"

// fmKernel is the plain FM-Index kernel (C6): the Burrows-Wheeler
// transform stored as a wavelet matrix over L, plus the cumulative
// occurrence table C. C[c] is the number of text positions whose
// symbol is strictly less than c, so the F column (L sorted) is
// implicitly c repeated count(c) times starting at row C[c].
//
// Grounded on bebop-poly's bwt.go FMIndex/count table, reshaped to
// satisfy the kernel interface shared with rlfmKernel.
type fmKernel struct {
	bwt   waveletMatrix
	cTab  []int32 // length sigma+1; cTab[sigma] == n
	sigma int32
}

func newFMKernel(bwtSeq []int32, sigma int32) fmKernel {
	width := bitWidth(sigma - 1)
	bwt := newWaveletMatrix(bwtSeq, width)
	cTab := buildOccurrenceTable(bwtSeq, sigma)
	return fmKernel{bwt: bwt, cTab: cTab, sigma: sigma}
}

// buildOccurrenceTable returns a length-(sigma+1) table where entry c
// is the number of symbols in seq strictly less than c.
func buildOccurrenceTable(seq []int32, sigma int32) []int32 {
	counts := make([]int32, sigma+1)
	for _, v := range seq {
		counts[v+1]++
	}
	for c := int32(1); c <= sigma; c++ {
		counts[c] += counts[c-1]
	}
	return counts
}

func (k fmKernel) len() int { return k.bwt.len() }

func (k fmKernel) alphabetSize() int32 { return k.sigma }

func (k fmKernel) getL(i int) int32 { return k.bwt.access(i) }

// getF finds the symbol owning F-row i via binary search over the
// cumulative occurrence table: the unique c such that cTab[c] <= i <
// cTab[c+1].
func (k fmKernel) getF(i int) int32 {
	c := sort.Search(len(k.cTab), func(c int) bool { return k.cTab[c] > int32(i) }) - 1
	return int32(c)
}

func (k fmKernel) lfMap(i int) int {
	c := k.bwt.access(i)
	return int(k.cTab[c]) + k.bwt.rank(c, i)
}

func (k fmKernel) lfMap2(c int32, s, e int) (int, int) {
	rs, re := k.bwt.rankRange(c, s, e)
	base := int(k.cTab[c])
	return base + rs, base + re
}

func (k fmKernel) flMap(i int) int {
	c := k.getF(i)
	offset := i - int(k.cTab[c])
	row, ok := k.bwt.select_(c, offset)
	if !ok {
		panic("fmindex: flMap: inconsistent occurrence table")
	}
	return row
}

func (k fmKernel) heapSize() int {
	return k.bwt.heapSize() + len(k.cTab)*4
}
