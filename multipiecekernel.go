package fmindex

import "sort"

// pieceAware is the third capability spec.md §9 names — "piece_id +
// pieces_count", present only on multi-piece variants — modelled as an
// interface a kernel may satisfy, per the same design note's "tagged
// variants / trait-like interfaces, never inheritance chains" rule.
type pieceAware interface {
	pieceIDOfRow(row int) int
	piecesCount() int
}

// multiPieceKernel wraps a plain kernel (fmKernel or rlfmKernel) with
// the bookkeeping spec.md §4.8 requires for text built from several
// concatenated pieces: the P sentinel rows all carry the same dense
// symbol 0, so the generic lf_map/lf_map2 formula (C[0] + rank(0, i))
// cannot by itself route each of them to the correct one of the P rows
// in F — it only knows how many sentinels precede row i, not which
// piece-concatenation slot that count belongs to once content doesn't
// happen to sort in piece order. doc and saIdxFirstText (computed once
// at build) let lfMap/lfMap2 apply the "Adjusted LF for symbol 0" spec.md
// §4.8 gives, and let pieceIDOfRow answer piece_id(i) without needing a
// sampled suffix array at all.
//
// Every row-walk a MultiPieceIndex performs — Locate's LF-walk
// (sampledSA.get), piece_id's LF-walk, and backward search narrowing on
// a literal symbol-0 query (search_suffix/search_exact) — must go
// through this wrapper rather than the bare inner kernel, or the P
// sentinel rows silently swap whenever piece content doesn't happen to
// sort in piece-concatenation order.
type multiPieceKernel struct {
	kernel
	doc            []int // doc[k] = piece id ending at the k-th symbol-0 row, in row order
	saIdxFirstText int   // the row p with SA[p] == 0 (see spec.md §4.8)
}

// newMultiPieceKernel builds the doc/saIdxFirstText bookkeeping by
// scanning the already-computed BWT and suffix array once at build
// time. pieceEnds[i] is the flat-text offset of the sentinel following
// piece i (multipiece.go).
func newMultiPieceKernel(inner kernel, bwtSeq []int32, sa []int32, pieceEnds []int) multiPieceKernel {
	n := len(sa)
	saIdxFirstText := -1
	var doc []int
	for row := 0; row < n; row++ {
		if bwtSeq[row] != 0 {
			continue
		}
		endPos := (int(sa[row]) - 1 + n) % n
		doc = append(doc, pieceIDOfSeparator(pieceEnds, endPos))
		if sa[row] == 0 {
			saIdxFirstText = row
		}
	}
	return multiPieceKernel{kernel: inner, doc: doc, saIdxFirstText: saIdxFirstText}
}

// pieceIDOfSeparator returns the index i such that pieceEnds[i] == pos;
// it panics if pos is not exactly a piece-separator offset, which would
// indicate a build-time inconsistency between the suffix array and the
// piece boundaries recorded at BuildMultiPiece time.
func pieceIDOfSeparator(pieceEnds []int, pos int) int {
	i := sort.Search(len(pieceEnds), func(i int) bool { return pieceEnds[i] >= pos })
	if i == len(pieceEnds) || pieceEnds[i] != pos {
		panic("fmindex: multi-piece build inconsistency: position is not a piece separator")
	}
	return i
}

// rank0 returns WM.rank(0, i): the number of symbol-0 occurrences in
// L[0, i), via the inner (unadjusted) kernel's lfMap2 — cTab[0] is
// always 0, so this is exactly the raw rank with no piece adjustment.
func (k multiPieceKernel) rank0(i int) int {
	r, _ := k.kernel.lfMap2(0, i, i)
	return r
}

// lfMap overrides the embedded kernel's lfMap only for rows whose BWT
// symbol is the sentinel; every other row uses the inner kernel's
// ordinary mapping unchanged.
func (k multiPieceKernel) lfMap(i int) int {
	if k.kernel.getL(i) != 0 {
		return k.kernel.lfMap(i)
	}
	return k.adjustedZeroLF(i)
}

// lfMap2 overrides the embedded kernel's lfMap2 only when narrowing on
// the literal sentinel symbol (used by search_suffix/search_exact,
// which append a trailing 0 to the searched pattern, so 0 is the first
// symbol narrowed on). F-row 0 is the final separator's one-symbol
// suffix: it belongs to the result only when [s, e) is the full range.
// F-rows 1..P-1 follow, in order, the symbol-0 rows of L other than
// saIdxFirstText.
func (k multiPieceKernel) lfMap2(c int32, s, e int) (int, int) {
	if c != 0 {
		return k.kernel.lfMap2(c, s, e)
	}
	if s == 0 && e == k.kernel.len() {
		return 0, k.rank0(e)
	}
	bound := func(i int) int {
		if i <= k.saIdxFirstText {
			return k.rank0(i) + 1
		}
		return k.rank0(i)
	}
	return bound(s), bound(e)
}

// adjustedZeroLF implements spec.md §4.8's "Adjusted LF for symbol 0":
// the P sentinel rows must map to 0..P in F in piece-concatenation
// order, not in whatever order their surrounding text happens to sort
// the identical symbol-0 rows into; the shift by one at saIdxFirstText
// realises that ordering.
func (k multiPieceKernel) adjustedZeroLF(i int) int {
	rank := k.rank0(i)
	switch {
	case i < k.saIdxFirstText:
		return rank + 1
	case i == k.saIdxFirstText:
		return 0
	default:
		return rank
	}
}

// pieceIDOfRow implements spec.md §4.8's piece_id(i): walk lf_map from
// row until it lands on a row whose BWT symbol is the sentinel, then
// look up that row's piece via doc, shifted by one (the piece a
// sentinel *ends* is one before the piece its occurrence count marks
// the start of).
func (k multiPieceKernel) pieceIDOfRow(row int) int {
	i := row
	for k.kernel.getL(i) != 0 {
		i = k.lfMap(i)
	}
	prev := k.doc[k.rank0(i)]
	return (prev + 1) % len(k.doc)
}

func (k multiPieceKernel) piecesCount() int { return len(k.doc) }
