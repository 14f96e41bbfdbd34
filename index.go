package fmindex

import (
	"crypto"
	"encoding/binary"
	"fmt"
)

// BuildOptions configures Build and BuildMultiPiece. It is passed by
// value, matching the teacher's plain-parameter construction style
// (bwt.New(sequence), sais.New(text)) rather than a functional-options
// API: every field is always meaningful, there is no optional-vs-
// required distinction that would justify the indirection.
type BuildOptions struct {
	// Locate enables position lookups by sampling the suffix array at
	// every 1<<SampleLevel positions. Leaving it false builds a
	// count-only index (Locate returns an error), using less memory.
	Locate bool

	// SampleLevel controls the suffix-array sampling density when
	// Locate is set: 0 keeps every value (fastest Locate, most
	// memory); higher levels trade Locate latency for less memory.
	SampleLevel uint

	// RunLength selects the run-length FM-Index kernel (C7) instead of
	// the plain wavelet-matrix kernel (C6). Prefer it for repetitive
	// text, where the number of BWT runs is much smaller than the text
	// length.
	RunLength bool

	// Hash selects the digest algorithm Digest() reports. The zero
	// value uses BLAKE3. Any other value must be a crypto.Hash
	// registered by a blank import (see hash.go); SHA-256, SHA-384,
	// SHA-512 and the BLAKE2b family are linked in by this package.
	Hash crypto.Hash

	// Debug, when set, prints a step-by-step LF-search trace to
	// standard output during Count, mirroring
	// search/bwt.printLFDebug in the teacher.
	Debug bool
}

// Index is a built, immutable succinct self-index over a single text.
// Construct one with Build.
type Index struct {
	kernel  kernel
	sampler *sampledSA
	conv    converter
	digest  string
	length  int // the value Len reports
	debug   bool
}

// Build constructs an Index over text, a sequence of non-zero raw
// symbols. Symbol 0 is reserved as the internal end marker and must
// not appear in text.
func Build(text []int32, opts BuildOptions) (idx *Index, err error) {
	defer recoverAsError("Build", &err)

	if err := validateText(text); err != nil {
		return nil, err
	}

	digest, err := computeDigest(text, opts.Hash)
	if err != nil {
		return nil, err
	}

	conv := newRangeConverter(text)
	withSentinel := make([]int32, len(text)+1)
	copy(withSentinel, text)
	withSentinel[len(text)] = 0

	dense := convertText(conv, withSentinel)
	sa := buildSuffixArray(dense)
	k := buildKernelFromSA(dense, sa, conv.size(), opts.RunLength)

	var sampler *sampledSA
	if opts.Locate {
		s := newSampledSA(sa, opts.SampleLevel)
		sampler = &s
	}

	return &Index{
		kernel:  k,
		sampler: sampler,
		conv:    conv,
		digest:  digest,
		length:  len(text),
		debug:   opts.Debug,
	}, nil
}

func validateText(text []int32) error {
	if len(text) == 0 {
		return invalidText("text must be non-empty")
	}
	for i, r := range text {
		if r <= 0 {
			return invalidText("text must not contain the reserved sentinel symbol 0 or negative symbols (found %d at position %d)", r, i)
		}
	}
	return nil
}

// buildKernelFromSA derives the BWT from a precomputed suffix array and
// wraps it in whichever kernel implementation the caller asked for.
func buildKernelFromSA(dense []int32, sa []int32, sigma int32, runLength bool) kernel {
	bwtSeq := deriveBWT(dense, sa)
	return newKernelFromBWT(bwtSeq, sigma, runLength)
}

// newKernelFromBWT wraps an already-derived BWT in whichever kernel
// implementation the caller asked for. Split out from buildKernelFromSA
// so BuildMultiPiece can keep the raw bwtSeq around afterward to build
// its multiPieceKernel bookkeeping (multipiece.go).
func newKernelFromBWT(bwtSeq []int32, sigma int32, runLength bool) kernel {
	if runLength {
		return newRLFMKernel(bwtSeq, sigma)
	}
	return newFMKernel(bwtSeq, sigma)
}

// deriveBWT builds L from the suffix array: L[i] is the symbol
// immediately preceding the suffix at SA[i] (cyclically).
func deriveBWT(dense []int32, sa []int32) []int32 {
	n := len(dense)
	bwtSeq := make([]int32, n)
	for i, v := range sa {
		bwtSeq[i] = dense[(int(v)-1+n)%n]
	}
	return bwtSeq
}

// Len returns the length of the original text, not counting the
// internal sentinel. For a MultiPieceIndex it is the length of the
// concatenated text: every piece plus the separator after each piece,
// the last one included.
func (idx *Index) Len() int { return idx.length }

// Digest returns the content digest computed over the raw text at
// build time (§6 of spec.md's persistence format), hex-encoded.
func (idx *Index) Digest() string { return idx.digest }

// HeapSize reports the approximate number of bytes retained by the
// index's succinct structures.
func (idx *Index) HeapSize() int {
	size := idx.kernel.heapSize()
	if idx.sampler != nil {
		size += idx.sampler.heapSize()
	}
	return size
}

// newSearchFrom starts a Search over the whole index, ready to have
// dense (already converted) symbols prepended.
func (idx *Index) newSearchFrom() Search {
	return newSearch(idx.kernel, idx.sampler)
}

// convertPattern maps pattern through the index's alphabet. ok is false
// if pattern contains a symbol the index was never built with — such a
// pattern can never match anything, which callers treat as zero matches
// rather than an error.
func (idx *Index) convertPattern(pattern []int32) (dense []int32, ok bool) {
	dense = make([]int32, len(pattern))
	for i, r := range pattern {
		code, found := idx.conv.tryConvert(r)
		if !found {
			return nil, false
		}
		dense[i] = code
	}
	return dense, true
}

// Count returns the number of occurrences of pattern in the indexed
// text.
func (idx *Index) Count(pattern []int32) (count int, err error) {
	defer recoverAsError("Count", &err)
	dense, ok := idx.convertPattern(pattern)
	if !ok {
		return 0, nil
	}
	sr := idx.newSearchFrom()
	for i := len(dense) - 1; i >= 0; i-- {
		if idx.debug {
			fmt.Println("fmindex debug: narrowing on symbol", dense[i], "range", sr.s, sr.e)
		}
		sr = sr.Search(dense[i])
		if sr.Count() == 0 {
			break
		}
	}
	return sr.Count(), nil
}

// Locate returns the starting position of every occurrence of pattern
// in the indexed text. It returns an error if the index was built
// without BuildOptions.Locate.
func (idx *Index) Locate(pattern []int32) (positions []int, err error) {
	defer recoverAsError("Locate", &err)
	dense, ok := idx.convertPattern(pattern)
	if !ok {
		if idx.sampler == nil {
			return nil, errNoLocate
		}
		return nil, nil
	}
	sr := idx.newSearchFrom().SearchPattern(dense)
	return sr.Locate()
}

// computeDigest hashes the raw text (as a little-endian int32 byte
// stream) with BLAKE3, or with hash if the caller supplied a non-zero
// crypto.Hash.
func computeDigest(text []int32, hash crypto.Hash) (string, error) {
	buf := make([]byte, len(text)*4)
	for i, v := range text {
		binary.LittleEndian.PutUint32(buf[i*4:], uint32(v))
	}
	if hash == 0 {
		return blake3Digest(buf), nil
	}
	return genericDigest(buf, hash)
}
