package fmindex

import "testing"

type getBitCase struct {
	position int
	expected bool
}

func TestBitVectorGetSet(t *testing.T) {
	bv := newBitVector(81)
	if bv.len() != 81 {
		t.Fatalf("expected len 81, got %d", bv.len())
	}

	for i := 0; i < 81; i++ {
		bv.set(i, true)
	}
	for _, off := range []int{3, 11, 13, 23, 24, 25, 42} {
		bv.set(off, false)
	}

	cases := []getBitCase{
		{0, true}, {1, true}, {3, false}, {4, true},
		{11, false}, {12, true}, {13, false},
		{23, false}, {24, false}, {25, false}, {42, false},
		{80, true},
	}
	for _, c := range cases {
		if got := bv.get(c.position); got != c.expected {
			t.Errorf("get(%d) = %v, want %v", c.position, got, c.expected)
		}
	}
}

func TestBitVectorOutOfBoundsPanics(t *testing.T) {
	bv := newBitVector(10)
	defer func() {
		if recover() == nil {
			t.Fatal("expected out-of-bounds access to panic")
		}
	}()
	bv.get(10)
}

func TestRSABitVectorRankSelect(t *testing.T) {
	bits := []bool{true, false, true, true, false, false, true, false, true, true}
	bv := newBitVector(len(bits))
	for i, b := range bits {
		bv.set(i, b)
	}
	rsa := newRSABitVector(bv)

	wantOnes := 0
	for i, b := range bits {
		if rsa.rank1(i) != wantOnes {
			t.Errorf("rank1(%d) = %d, want %d", i, rsa.rank1(i), wantOnes)
		}
		if b {
			wantOnes++
		}
	}
	if rsa.rank1(len(bits)) != wantOnes {
		t.Errorf("rank1(len) = %d, want %d", rsa.rank1(len(bits)), wantOnes)
	}

	var onePositions []int
	for i, b := range bits {
		if b {
			onePositions = append(onePositions, i)
		}
	}
	for rank, want := range onePositions {
		got, ok := rsa.select1(rank)
		if !ok || got != want {
			t.Errorf("select1(%d) = (%d, %v), want (%d, true)", rank, got, ok, want)
		}
	}
	if _, ok := rsa.select1(len(onePositions)); ok {
		t.Errorf("select1(%d) should fail: only %d ones present", len(onePositions), len(onePositions))
	}
}

func TestBuildJacobsonRankAcrossWordBoundaries(t *testing.T) {
	n := 300 // spans multiple 64-bit words and multiple chunks
	bv := newBitVector(n)
	for i := 0; i < n; i += 3 {
		bv.set(i, true)
	}
	rsa := newRSABitVector(bv)

	ones := 0
	for i := 0; i <= n; i++ {
		if rsa.rank1(i) != ones {
			t.Fatalf("rank1(%d) = %d, want %d", i, rsa.rank1(i), ones)
		}
		if i < n && i%3 == 0 {
			ones++
		}
	}
}
