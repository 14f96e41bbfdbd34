package fmindex

import "sort"

// MultiPieceIndex (C9) is an Index built over several concatenated
// pieces of text, each separated by the sentinel symbol 0. It answers
// which piece an occurrence falls in, and adds anchored searches that
// only count matches touching a piece boundary: SearchPrefix (match
// starts a piece), SearchSuffix (match ends a piece), SearchExact
// (match is an entire piece).
type MultiPieceIndex struct {
	*Index
	pieceStarts []int // start offset of each piece in the concatenated text
	pieceEnds   []int // offset of the sentinel following each piece
}

// BuildMultiPiece constructs a MultiPieceIndex over pieces. Each piece
// must be non-empty and must not contain the reserved sentinel symbol
// 0.
func BuildMultiPiece(pieces [][]int32, opts BuildOptions) (mp *MultiPieceIndex, err error) {
	defer recoverAsError("BuildMultiPiece", &err)

	if len(pieces) == 0 {
		return nil, invalidText("at least one piece is required")
	}

	var flat []int32
	pieceStarts := make([]int, len(pieces))
	pieceEnds := make([]int, len(pieces))
	for i, p := range pieces {
		if err := validateText(p); err != nil {
			return nil, invalidText("piece %d: %v", i, err)
		}
		pieceStarts[i] = len(flat)
		flat = append(flat, p...)
		pieceEnds[i] = len(flat)
		flat = append(flat, 0) // sentinel separates every piece, including the last
	}

	digest, err := computeDigest(flat, opts.Hash)
	if err != nil {
		return nil, err
	}

	conv := newRangeConverter(flat)
	dense := convertText(conv, flat)
	sa := buildSuffixArray(dense)
	bwtSeq := deriveBWT(dense, sa)
	base := newKernelFromBWT(bwtSeq, conv.size(), opts.RunLength)
	k := newMultiPieceKernel(base, bwtSeq, sa, pieceEnds)

	var sampler *sampledSA
	if opts.Locate {
		s := newSampledSA(sa, opts.SampleLevel)
		sampler = &s
	}

	idx := &Index{
		kernel:  k,
		sampler: sampler,
		conv:    conv,
		digest:  digest,
		length:  len(flat),
		debug:   opts.Debug,
	}
	return &MultiPieceIndex{Index: idx, pieceStarts: pieceStarts, pieceEnds: pieceEnds}, nil
}

// PieceID returns the index of the piece containing text position pos.
// It is a convenience built on an already-resolved position (e.g. from
// Locate); for a position with no sampled suffix array to resolve it
// from, use Search.PieceIDOf instead, which walks piece_id directly off
// a BWT row.
func (mp *MultiPieceIndex) PieceID(pos int) int {
	return sort.Search(len(mp.pieceStarts), func(i int) bool { return mp.pieceStarts[i] > pos }) - 1
}

// PiecesCount returns P, the number of pieces this index was built
// from (spec.md's Index.pieces_count).
func (mp *MultiPieceIndex) PiecesCount() int {
	return mp.kernel.(pieceAware).piecesCount()
}

// pieceIDsOfRows computes piece_id for every row in sr's current range
// via the row-walk (search.go's Search.PieceIDOf), needing neither
// Locate capability nor a sampled suffix array.
func pieceIDsOfRows(sr Search) ([]int, error) {
	ids := make([]int, 0, sr.Count())
	for m := 0; m < sr.Count(); m++ {
		id, err := sr.PieceIDOf(m)
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}

// SearchExact returns the piece ids where the entire piece equals
// pattern. It searches pattern followed by 0 (like SearchSuffix) and
// keeps only the matched rows whose preceding BWT symbol is also 0. It
// does not bracket pattern with a leading 0 as well: piece 0 has no
// separator before it in the text, so such a search never matches piece
// 0, while the row where piece 0 starts has the final separator as its
// BWT symbol and so passes this filter.
func (mp *MultiPieceIndex) SearchExact(pattern []int32) ([]int, error) {
	dense, ok := mp.convertPattern(pattern)
	if !ok {
		return nil, nil
	}
	extended := make([]int32, 0, len(dense)+1)
	extended = append(extended, dense...)
	extended = append(extended, 0)
	sr := newSearch(mp.kernel, mp.sampler).SearchPattern(extended)
	var ids []int
	for m := 0; m < sr.Count(); m++ {
		row := sr.s + m
		if mp.kernel.getL(row) != 0 {
			continue
		}
		id, err := sr.PieceIDOf(m)
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}

// SearchPrefix returns the piece ids where pattern occurs starting at
// the beginning of the piece: spec.md §4.8's "ordinary backward search
// for P, then filter matches whose preceding symbol is 0".
func (mp *MultiPieceIndex) SearchPrefix(pattern []int32) ([]int, error) {
	dense, ok := mp.convertPattern(pattern)
	if !ok {
		return nil, nil
	}
	sr := newSearch(mp.kernel, mp.sampler).SearchPattern(dense)
	var ids []int
	for m := 0; m < sr.Count(); m++ {
		row := sr.s + m
		if mp.kernel.getL(row) != 0 {
			continue
		}
		id, err := sr.PieceIDOf(m)
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}

// SearchSuffix returns the piece ids where pattern occurs ending at
// the end of the piece: spec.md §4.8's "extend P with a trailing 0 and
// backward-search".
func (mp *MultiPieceIndex) SearchSuffix(pattern []int32) ([]int, error) {
	dense, ok := mp.convertPattern(pattern)
	if !ok {
		return nil, nil
	}
	extended := make([]int32, 0, len(dense)+1)
	extended = append(extended, dense...)
	extended = append(extended, 0)
	sr := newSearch(mp.kernel, mp.sampler).SearchPattern(extended)
	return pieceIDsOfRows(sr)
}
