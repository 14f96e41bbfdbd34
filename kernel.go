package fmindex

// kernel is the shared contract between the plain FM-Index kernel
// (fmKernel) and the run-length FM-Index kernel (rlfmKernel): both
// represent a Burrows-Wheeler-transformed text and support the LF/FL
// mapping backward search needs, without exposing how the BWT is
// stored (dense wavelet matrix vs. run-length encoded).
//
// Search (search.go, C8) is written entirely against this interface so
// it works unmodified over either family.
type kernel interface {
	// len returns n, the length of the transformed text (including the
	// sentinel).
	len() int

	// getF returns the symbol at row i of the first column F.
	getF(i int) int32

	// getL returns the symbol at row i of the last column L (the BWT
	// itself).
	getL(i int) int32

	// lfMap maps row i in L to the row of the same text position in F:
	// LF(i) = C[L[i]] + rank(L[i], i) in L.
	lfMap(i int) int

	// lfMap2 maps a half-open range [s, e) of rows to the range of
	// F-rows reached by prepending c: (C[c] + rank(c, s), C[c] +
	// rank(c, e)), with the two ends computed independently. This is
	// the core backward-search step.
	lfMap2(c int32, s, e int) (int, int)

	// flMap maps row i in F to the row of the same text position in L:
	// the inverse of lfMap.
	flMap(i int) int

	// alphabetSize returns sigma, the number of distinct symbols
	// (including the sentinel).
	alphabetSize() int32

	// heapSize reports the approximate number of bytes retained by the
	// kernel.
	heapSize() int
}
