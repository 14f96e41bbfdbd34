package fmindex

import "sort"

// rlfmKernel is the run-length FM-Index kernel (C7): rather than
// storing one wavelet-matrix bit per BWT position, it stores the BWT
// as r runs (maximal same-symbol stretches). The run heads and the
// per-symbol run-length tables are O(r), far smaller than O(n) on
// repetitive text where r << n; the boundary bit-vector and its select
// tables still span all n positions.
//
// Structures, following Mäkinen & Navarro's run-length FM-index layout
// (the scheme bebop-poly's own bwt.go run-length BWT encoding is a
// simplified, non-backward-searchable cousin of):
//   - runSymbols: the run heads, length r (run lengths are kept only
//     as the sums in lengthPrefix).
//   - boundary: a length-n bit-vector marking where each run starts in
//     L (BWT) order, so rank/select on it locates "which run is
//     position i in" and "where does run k start" in O(1).
//   - heads: a wavelet matrix over runSymbols, giving rank/select over
//     run occurrences of a given symbol in O(width) = O(log sigma).
//   - lengthPrefix[c]: for each symbol c, the cumulative total length
//     of the first j runs of symbol c, j = 0..count(c) runs. Combined
//     with heads.rank/select this turns a query restricted to "within
//     this run" into a table lookup (a binary search in flMap) instead
//     of an O(r) scan.
//   - cTab: the same cumulative occurrence table fmKernel uses.
type rlfmKernel struct {
	boundary     rsaBitVector
	heads        waveletMatrix
	runSymbols   []int32
	lengthPrefix [][]int32
	cTab         []int32
	sigma        int32
	n            int
}

func newRLFMKernel(bwtSeq []int32, sigma int32) rlfmKernel {
	symbols, lengths, boundaryBV := runLengthEncode(bwtSeq)
	boundary := newRSABitVector(boundaryBV)
	heads := newWaveletMatrix(symbols, bitWidth(sigma-1))
	lengthPrefix := buildLengthPrefix(symbols, lengths, sigma)
	cTab := buildOccurrenceTable(bwtSeq, sigma)

	return rlfmKernel{
		boundary:     boundary,
		heads:        heads,
		runSymbols:   symbols,
		lengthPrefix: lengthPrefix,
		cTab:         cTab,
		sigma:        sigma,
		n:            len(bwtSeq),
	}
}

// runLengthEncode splits seq into maximal runs of equal symbols,
// returning the run heads, their lengths, and a bit-vector over
// [0, len(seq)) marking the first position of every run.
func runLengthEncode(seq []int32) (symbols, lengths []int32, boundary bitVector) {
	boundary = newBitVector(len(seq))
	if len(seq) == 0 {
		return nil, nil, boundary
	}
	boundary.set(0, true)
	symbols = append(symbols, seq[0])
	runLen := int32(1)
	for i := 1; i < len(seq); i++ {
		if seq[i] == seq[i-1] {
			runLen++
			continue
		}
		boundary.set(i, true)
		lengths = append(lengths, runLen)
		symbols = append(symbols, seq[i])
		runLen = 1
	}
	lengths = append(lengths, runLen)
	return symbols, lengths, boundary
}

// buildLengthPrefix groups run lengths by symbol, returning for each
// symbol c a slice prefix where prefix[j] is the total length of the
// first j runs of symbol c (prefix[0] == 0).
func buildLengthPrefix(symbols, lengths []int32, sigma int32) [][]int32 {
	prefix := make([][]int32, sigma)
	for c := range prefix {
		prefix[c] = []int32{0}
	}
	for k, c := range symbols {
		p := prefix[c]
		prefix[c] = append(p, p[len(p)-1]+lengths[k])
	}
	return prefix
}

func (k rlfmKernel) len() int { return k.n }

func (k rlfmKernel) alphabetSize() int32 { return k.sigma }

// runOf returns the run index containing BWT row i.
func (k rlfmKernel) runOf(i int) int {
	return k.boundary.rank1(i+1) - 1
}

func (k rlfmKernel) getL(i int) int32 {
	return k.runSymbols[k.runOf(i)]
}

func (k rlfmKernel) getF(i int) int32 {
	c := sort.Search(len(k.cTab), func(c int) bool { return k.cTab[c] > int32(i) }) - 1
	return int32(c)
}

// rankUpTo returns the number of occurrences of c in L[0, i).
func (k rlfmKernel) rankUpTo(c int32, i int) int {
	if i == 0 {
		return 0
	}
	lastRun := k.runOf(i - 1)
	runStart, _ := k.boundary.select1(lastRun)
	partial := i - runStart

	j := k.heads.rank(c, lastRun)
	total := int(k.lengthPrefix[c][j])
	if k.runSymbols[lastRun] == c {
		total += partial
	}
	return total
}

func (k rlfmKernel) lfMap(i int) int {
	c := k.getL(i)
	return int(k.cTab[c]) + k.rankUpTo(c, i)
}

func (k rlfmKernel) lfMap2(c int32, s, e int) (int, int) {
	base := int(k.cTab[c])
	return base + k.rankUpTo(c, s), base + k.rankUpTo(c, e)
}

func (k rlfmKernel) flMap(i int) int {
	c := k.getF(i)
	offset := int32(i) - k.cTab[c]

	prefix := k.lengthPrefix[c]
	j := sort.Search(len(prefix), func(j int) bool { return prefix[j] > offset }) - 1

	runIdx, ok := k.heads.select_(c, j)
	if !ok {
		panic("fmindex: flMap: inconsistent run-length occurrence table")
	}
	runStart, _ := k.boundary.select1(runIdx)
	return runStart + int(offset-prefix[j])
}

func (k rlfmKernel) heapSize() int {
	size := k.boundary.heapSize() + k.heads.heapSize()
	size += len(k.runSymbols) * 4
	size += len(k.cTab) * 4
	for _, p := range k.lengthPrefix {
		size += len(p) * 4
	}
	return size
}
