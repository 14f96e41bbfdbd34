/*
Package random generates random texts and patterns over a dense
integer alphabet, for use in fmindex's property-based tests.
*/
package random

import "math/rand"

// Text returns a random sequence of length symbols, each drawn
// uniformly from [1, alphabetSize] (0 is reserved as fmindex's
// sentinel, so generated text never contains it).
func Text(length int, alphabetSize int32, seed int64) []int32 {
	if alphabetSize < 1 {
		alphabetSize = 1
	}
	r := rand.New(rand.NewSource(seed))
	text := make([]int32, length)
	for i := range text {
		text[i] = int32(r.Intn(int(alphabetSize))) + 1
	}
	return text
}

// Pieces returns count random texts, each of the given length, for use
// with BuildMultiPiece.
func Pieces(count, length int, alphabetSize int32, seed int64) [][]int32 {
	r := rand.New(rand.NewSource(seed))
	pieces := make([][]int32, count)
	for i := range pieces {
		pieces[i] = Text(length, alphabetSize, r.Int63())
	}
	return pieces
}

// Substring returns a random contiguous, non-empty slice of text, at
// most maxLen symbols long. It panics if text is empty.
func Substring(text []int32, maxLen int, seed int64) []int32 {
	if len(text) == 0 {
		panic("random: cannot take a substring of empty text")
	}
	r := rand.New(rand.NewSource(seed))
	if maxLen > len(text) {
		maxLen = len(text)
	}
	length := 1 + r.Intn(maxLen)
	start := r.Intn(len(text) - length + 1)
	out := make([]int32, length)
	copy(out, text[start:start+length])
	return out
}

// NotPresent returns a pattern of the given length over alphabetSize
// symbols that is not a substring of text, by brute-force resampling.
// It gives up and returns the last candidate after 1000 attempts.
func NotPresent(text []int32, length int, alphabetSize int32, seed int64) []int32 {
	r := rand.New(rand.NewSource(seed))
	candidate := Text(length, alphabetSize, r.Int63())
	for attempt := 0; attempt < 1000; attempt++ {
		if !contains(text, candidate) {
			return candidate
		}
		candidate = Text(length, alphabetSize, r.Int63())
	}
	return candidate
}

func contains(text, pattern []int32) bool {
	if len(pattern) == 0 || len(pattern) > len(text) {
		return false
	}
	for i := 0; i+len(pattern) <= len(text); i++ {
		match := true
		for j, c := range pattern {
			if text[i+j] != c {
				match = false
				break
			}
		}
		if match {
			return true
		}
	}
	return false
}
