package fmindex

import "golang.org/x/exp/slices"

// converter maps the caller's raw symbols (whatever integer domain they
// occupy) down to a dense range [0, Size()) suitable for the wavelet
// matrix and SA-IS, and back. Symbol 0 is always reserved for the
// sentinel/end-marker; converter never maps a non-zero raw symbol to 0.
//
// Grounded on the Alphabet Converter component spec.md names (C5), and
// on the original_source Rust crate's character.rs width trait, which
// this package folds into converter.width() rather than a separate
// interface (see SPEC_FULL.md's supplemented-features section).
type converter interface {
	// convert maps a raw symbol to its dense code. It panics if raw was
	// never seen at build time — callers converting a search pattern
	// (which may legitimately contain a symbol absent from the index)
	// must use tryConvert instead.
	convert(raw int32) int32
	// tryConvert is convert without the panic: ok is false if raw has no
	// dense code, which for a search pattern just means zero matches.
	tryConvert(raw int32) (code int32, ok bool)
	// convertBack maps a dense code back to its raw symbol.
	convertBack(code int32) int32
	// size returns sigma, the number of distinct symbols including the
	// sentinel.
	size() int32
	// width returns the number of bits needed to represent any code,
	// i.e. bitWidth(size()-1).
	width() int
}

// identityConverter passes symbols through unchanged, for text that is
// already a dense [0, sigma) encoding (e.g. DNA/protein alphabets packed
// ahead of time). Build and BuildMultiPiece do not use it: they always
// build a rangeConverter.
type identityConverter struct {
	sigma int32
}

func newIdentityConverter(sigma int32) identityConverter {
	return identityConverter{sigma: sigma}
}

func (c identityConverter) convert(raw int32) int32 { return raw }
func (c identityConverter) tryConvert(raw int32) (int32, bool) {
	return raw, raw >= 0 && raw < c.sigma
}
func (c identityConverter) convertBack(code int32) int32 { return code }
func (c identityConverter) size() int32                  { return c.sigma }
func (c identityConverter) width() int                   { return bitWidth(c.sigma - 1) }

// rangeConverter compacts an arbitrary set of raw symbols (e.g. raw
// bytes of text, with 0 reserved for the end marker) into a dense
// range, ordering codes so that raw symbol order is preserved: if
// raw1 < raw2 then convert(raw1) < convert(raw2). Preserving order
// keeps lexicographic comparisons under the new code the same as under
// the raw alphabet, which backward search and suffix-array construction
// both rely on.
type rangeConverter struct {
	toCode []int32 // sorted distinct raw symbols; index is the dense code
	toRaw  map[int32]int32
}

func newRangeConverter(rawText []int32) rangeConverter {
	seen := make(map[int32]bool)
	for _, r := range rawText {
		seen[r] = true
	}
	seen[0] = true // sentinel always present

	distinct := make([]int32, 0, len(seen))
	for r := range seen {
		distinct = append(distinct, r)
	}
	slices.Sort(distinct)

	toRaw := make(map[int32]int32, len(distinct))
	for code, raw := range distinct {
		toRaw[raw] = int32(code)
	}

	return rangeConverter{toCode: distinct, toRaw: toRaw}
}

func (c rangeConverter) convert(raw int32) int32 {
	code, ok := c.toRaw[raw]
	if !ok {
		panic("fmindex: symbol not present in the alphabet this index was built from")
	}
	return code
}

func (c rangeConverter) tryConvert(raw int32) (int32, bool) {
	code, ok := c.toRaw[raw]
	return code, ok
}

func (c rangeConverter) convertBack(code int32) int32 { return c.toCode[code] }
func (c rangeConverter) size() int32                  { return int32(len(c.toCode)) }
func (c rangeConverter) width() int                   { return bitWidth(int32(len(c.toCode)) - 1) }

// convertText maps an entire raw text through conv, producing the dense
// encoding the wavelet matrix and SA-IS operate over.
func convertText(conv converter, rawText []int32) []int32 {
	out := make([]int32, len(rawText))
	for i, r := range rawText {
		out[i] = conv.convert(r)
	}
	return out
}
