package fmindex

import "errors"

// errNoLocate is returned by Locate when the index was built in
// count-only mode and has no sampled suffix array to reconstruct
// positions from.
var errNoLocate = errors.New("fmindex: this index was built without Locate support")

// errNotMultiPiece is returned by PieceIDOf when the search is not
// backed by a multi-piece index.
var errNotMultiPiece = errors.New("fmindex: this index has no piece boundaries")

// Search (C8) holds the state of an in-progress backward search: a
// half-open row range [s, e) over an FM-Index or run-length FM-Index
// kernel, narrowed one prepended symbol at a time. It is a value type;
// every narrowing step returns a new Search rather than mutating in
// place, so a caller can branch a search (try several next symbols
// from the same prefix) without extra bookkeeping.
//
// Grounded on the backward-search loop in bebop-poly's bwt.go Count/
// Locate methods, generalised to operate against the kernel interface
// so the same Search logic serves both index families.
type Search struct {
	k       kernel
	sampler *sampledSA
	s, e    int
}

func newSearch(k kernel, sampler *sampledSA) Search {
	return Search{k: k, sampler: sampler, s: 0, e: k.len()}
}

// Search narrows the range by prepending c to the matched pattern.
func (sr Search) Search(c int32) Search {
	ns, ne := sr.k.lfMap2(c, sr.s, sr.e)
	return Search{k: sr.k, sampler: sr.sampler, s: ns, e: ne}
}

// SearchPattern narrows the range by prepending an entire pattern,
// right-to-left (matching how backward search consumes a pattern).
// It stops early once the range becomes empty.
func (sr Search) SearchPattern(pattern []int32) Search {
	cur := sr
	for i := len(pattern) - 1; i >= 0; i-- {
		cur = cur.Search(pattern[i])
		if cur.Count() == 0 {
			break
		}
	}
	return cur
}

// Count returns the number of occurrences matched so far.
func (sr Search) Count() int {
	if sr.e < sr.s {
		return 0
	}
	return sr.e - sr.s
}

// Locate returns the starting text position of every occurrence
// matched so far. It returns errNoLocate if the index has no sampled
// suffix array.
func (sr Search) Locate() ([]int, error) {
	if sr.sampler == nil {
		return nil, errNoLocate
	}
	out := make([]int, 0, sr.Count())
	for row := sr.s; row < sr.e; row++ {
		out = append(out, sr.sampler.get(row, sr.k.lfMap))
	}
	return out, nil
}

// IterBackward returns a generator that yields the text symbols
// preceding row, one LF-step at a time, cycling forever through the
// BWT's rotations (the text has no natural end once you keep walking
// backward past position 0; callers stop after n steps or on seeing
// the sentinel again). The symbols are the kernel's own codes: for a
// Search started from an Index they are the dense codes its converter
// assigned, not mapped back to the caller's raw symbols.
func (sr Search) IterBackward(row int) func() int32 {
	cur := row
	return func() int32 {
		c := sr.k.getL(cur)
		cur = sr.k.lfMap(cur)
		return c
	}
}

// IterForward is the mirror of IterBackward, walking the text forward
// from row via FL-mapping and yielding the same kernel codes.
func (sr Search) IterForward(row int) func() int32 {
	cur := row
	return func() int32 {
		c := sr.k.getF(cur)
		cur = sr.k.flMap(cur)
		return c
	}
}

// PieceIDOf returns the piece id of the match-th occurrence in this
// search's current range (spec.md's Search.piece_id_of), via the
// piece_id row-walk (§4.8) rather than via Locate — so it works on a
// count-only multi-piece index, with no sampled suffix array at all.
// It returns errNotMultiPiece if the index backing this search has no
// piece boundaries.
func (sr Search) PieceIDOf(match int) (int, error) {
	pa, ok := sr.k.(pieceAware)
	if !ok {
		return 0, errNotMultiPiece
	}
	row := sr.s + match
	if match < 0 || row >= sr.e {
		panic("fmindex: PieceIDOf: match out of range")
	}
	return pa.pieceIDOfRow(row), nil
}
