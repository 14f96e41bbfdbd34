package fmindex

// buildSuffixArray constructs the suffix array of text using the SA-IS
// algorithm. text must already be a dense encoding over [0, sigma): the
// caller (see alphabet.go / index.go) is responsible for mapping the raw
// symbols down to that range before calling this function, since SA-IS's
// induced sorting allocates O(sigma) auxiliary arrays per recursion
// level.
//
// Ported from nkamenev-suffixarr/sais.go, the pack's dedicated
// suffix-array-construction library. The only material change is
// dropping the "arbitrary alphabet" fallback (sais_arbitrary.go)'s
// map-based bucketing in favor of always sizing the shared freq/bucket
// buffer off the *current* recursion level's alphabet. The original
// sizes that buffer once, off the top-level alphabet (srcAlphaSize),
// and falls back to map buckets whenever a deeper level's alphabet
// grows past it (the SA-IS recursion renames each LMS substring to a
// "summary" symbol, and a text can easily have more distinct LMS
// substrings than original symbols). fmindex's alphabets are always
// small enough that reallocating the buffer per level, as needed, costs
// far less than carrying the map-bucket path's probabilistic
// cardinality estimation (sais_arbitrary.go's linearCount) for
// alphabets that size never grows unbounded.
func buildSuffixArray(text []int32) []int32 {
	if len(text) == 0 {
		return []int32{}
	}
	if len(text) == 1 {
		return []int32{0}
	}
	return sais(text, nil, nil)
}

func sais(text, sa, data []int32) []int32 {
	var (
		minChar, maxChar int32 = text[0], text[0]
		l, r, numLMS     int32
		sType            bool
	)
	for i := len(text) - 1; i >= 0; i-- {
		l, r = text[i], l
		if l < minChar {
			minChar = l
		}
		if l > maxChar {
			maxChar = l
		}
		if l < r {
			sType = true
		} else if l > r && sType {
			sType = false
			numLMS++
		}
	}

	currAlphaSize := maxChar - minChar + 1
	if sa == nil {
		sa = make([]int32, len(text))
	}
	return induceSort(text, sa, data, minChar, numLMS, currAlphaSize)
}

func induceSort(text, sa, data []int32, minChar, numLMS, currAlphaSize int32) []int32 {
	if data == nil || len(data) < int(currAlphaSize)*2 {
		data = make([]int32, currAlphaSize*2)
	}
	var summary []int32
	freq := data[:currAlphaSize]
	buckets := data[currAlphaSize : currAlphaSize*2]
	saisFrequency(text, freq, minChar)

	saisInsertLMS(text, sa, freq, buckets, minChar)
	if numLMS > 1 {
		saisInduceSubL(text, sa, freq, buckets, minChar)
		saisInduceSubS(text, sa, freq, buckets, minChar)
		summary = sa[len(sa)-int(numLMS):]
		maxName := saisSummarise(text, sa, summary, numLMS)

		summarySA := sa[:numLMS]
		if maxName < numLMS {
			// The recursive call's own data buffer is resized to its
			// alphabet as needed (above); freq/buckets below are
			// recomputed from scratch after it returns (saisExpand
			// calls saisFrequency/saisBucketEnd itself), so any
			// overlap between this level's and the recursion's slice
			// of data is harmless.
			sais(summary, summarySA, data)
			saisUnmap(text, sa, summarySA, summary)
		} else {
			copy(summarySA, summary)
			clear(sa[numLMS:])
		}
		saisExpand(text, sa, summarySA, freq, buckets, minChar)
	}
	saisInduceL(text, sa, freq, buckets, minChar)
	saisInduceS(text, sa, freq, buckets, minChar)
	return sa
}

func saisUnmap(text, sa, summarySA, lms []int32) {
	var (
		j    = int32(len(lms))
		l, r int32
		sTyp bool
	)
	for i := len(text) - 1; i >= 0; i-- {
		l, r = text[i], l
		if l < r {
			sTyp = true
		} else if l > r && sTyp {
			sTyp = false
			j--
			lms[j] = int32(i) + 1
		}
	}
	for i := 0; i < len(lms); i++ {
		j = summarySA[i]
		sa[i] = lms[j]
		lms[j] = 0
	}
}

func saisExpand(text, sa, summarySA, freq, bucket []int32, minChar int32) {
	saisFrequency(text, freq, minChar)
	saisBucketEnd(freq, bucket)
	var lmsIdx, b, j int32
	for i := len(summarySA) - 1; i >= 0; i-- {
		lmsIdx = summarySA[i]
		summarySA[i] = 0
		j = text[lmsIdx] - minChar
		b = bucket[j]
		sa[b] = lmsIdx
		bucket[j] = b - 1
	}
}

func saisFrequency(text, freq []int32, minChar int32) {
	clear(freq)
	for _, v := range text {
		freq[v-minChar]++
	}
}

func saisBucketStart(freq, bucket []int32) {
	var offset int32
	for i, n := range freq {
		if n > 0 {
			bucket[i] = offset
			offset += n
		}
	}
}

func saisBucketEnd(freq, bucket []int32) {
	var offset int32
	for i, n := range freq {
		if n > 0 {
			offset += n
			bucket[i] = offset - 1
		}
	}
}

func saisInsertLMS(text, sa, freq, bucket []int32, minChar int32) {
	saisBucketEnd(freq, bucket)
	var (
		l, r, i, j, b, lastLMS int32
		numLMS                 int
		sTyp                   bool
	)

	for i = int32(len(text) - 1); i >= 0; i-- {
		l, r = text[i], l
		if l < r {
			sTyp = true
		} else if l > r && sTyp {
			sTyp = false
			j = r - minChar
			b = bucket[j]
			bucket[j] = b - 1
			sa[b] = i + 1
			lastLMS = b
			numLMS++
		}
	}
	if numLMS > 1 {
		sa[lastLMS] = 0
	}
}

func saisInduceSubL(text, sa, freq, bucket []int32, minChar int32) {
	saisBucketStart(freq, bucket)
	var (
		k, j     int32 = int32(len(text) - 1), 0
		l, r     int32 = text[k-1], text[k]
		lastChar int32 = text[len(text)-1]
		b        int32 = bucket[lastChar-minChar]
	)
	if l < r {
		k = -k
	}
	bucket[lastChar-minChar] = b + 1
	sa[b] = int32(k)

	for i := 0; i < len(sa); i++ {
		if sa[i] == 0 {
			continue
		}
		j = sa[i]
		if j < 0 {
			sa[i] = -j
			continue
		}
		sa[i] = 0
		k = j - 1
		l, r = text[k-1], text[k]
		if l < r {
			k = -k
		}
		b = bucket[r-minChar]
		bucket[r-minChar] = b + 1
		sa[b] = k
	}
}

func saisInduceSubS(text, sa, freq, bucket []int32, minChar int32) {
	saisBucketEnd(freq, bucket)
	var (
		j, b, l, r, k int32
		top           = len(sa)
	)
	for i := len(sa) - 1; i >= 0; i-- {
		j = sa[i]
		if j == 0 {
			continue
		}
		sa[i] = 0
		if j < 0 {
			top--
			sa[top] = -j
			continue
		}
		k = j - 1
		l, r = text[k-1], text[k]
		if l > r {
			k = -k
		}
		b = bucket[r-minChar]
		bucket[r-minChar] = b - 1
		sa[b] = k
	}
}

func saisInduceL(text, sa, freq, bucket []int32, minChar int32) {
	saisBucketStart(freq, bucket)
	var (
		k, j     int32 = int32(len(text) - 1), 0
		l, r     int32 = text[k-1], text[k]
		lastChar int32 = text[len(text)-1]
		b        int32 = bucket[lastChar-minChar]
	)
	if l < r {
		k = -k
	}
	bucket[lastChar-minChar] = b + 1
	sa[b] = int32(k)

	for i := 0; i < len(sa); i++ {
		j = sa[i]
		if j <= 0 {
			continue
		}

		k = j - 1
		r = text[k]
		if k > 0 {
			if l = text[k-1]; l < r {
				k = -k
			}
		}
		b = bucket[r-minChar]
		bucket[r-minChar] = b + 1
		sa[b] = k
	}
}

func saisInduceS(text, sa, freq, bucket []int32, minChar int32) {
	saisBucketEnd(freq, bucket)
	var j, l, r, k, b int32

	for i := len(sa) - 1; i >= 0; i-- {
		j = sa[i]
		if j >= 0 {
			continue
		}
		j = -j
		sa[i] = j

		k = j - 1
		r = text[k]
		if k > 0 {
			if l = text[k-1]; l <= r {
				k = -k
			}
		}
		b = bucket[r-minChar]
		bucket[r-minChar] = b - 1
		sa[b] = k
	}
}

func saisLengthLMS(text, sa []int32) {
	var (
		l, r int32
		prev       = int32(len(text)) - 1
		sTyp  bool
	)
	for i := len(text) - 1; i >= 0; i-- {
		l, r = text[i], l
		if l < r {
			sTyp = true
		} else if l > r && sTyp {
			sTyp = false
			sa[(i+1)/2] = prev - int32(i)
			prev = int32(i)
		}
	}
}

func saisEqualLMS(text []int32, l, r, lLen, rLen int32) bool {
	if lLen != rLen {
		return false
	}
	for lLen > 0 {
		if text[l] != text[r] {
			return false
		}
		l++
		r++
		lLen--
	}
	return true
}

func saisSummarise(text, sa, summary []int32, numLMS int32) int32 {
	saisLengthLMS(text, sa)
	var (
		name, maxName int32 = 1, 1
		posLMS              = summary
		prev, curr    int32 = sa[posLMS[0]], 0
		prevLen       int32 = sa[posLMS[0]/2]
	)
	sa[posLMS[0]/2] = name
	for i := 1; i < len(posLMS); i++ {
		prev = posLMS[i-1]
		curr = posLMS[i]
		if !saisEqualLMS(text, prev, curr, prevLen, sa[curr/2]) {
			name++
			maxName++
		}
		prevLen = sa[curr/2]
		sa[curr/2] = name
	}
	if maxName >= numLMS {
		return maxName
	}
	var j int
	for i := 0; i < len(sa)/2; i++ {
		c := sa[i]
		if c <= 0 {
			continue
		}
		sa[i], summary[j] = 0, c
		j++
	}
	return maxName
}
