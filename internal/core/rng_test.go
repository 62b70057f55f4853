package core

import "testing"

func TestSimpleRNGDeterminism(t *testing.T) {
	a := NewSimpleRNG(12345)
	b := NewSimpleRNG(12345)

	for i := 0; i < 1000; i++ {
		if a.Float64() != b.Float64() {
			t.Fatalf("Same seed diverged at draw %d", i)
		}
	}
	if a.State() != b.State() {
		t.Errorf("State mismatch: %d vs %d", a.State(), b.State())
	}
}

func TestSimpleRNGRange(t *testing.T) {
	r := NewSimpleRNG(7)

	for i := 0; i < 10000; i++ {
		f := r.Float64()
		if f < 0 || f >= 1 {
			t.Fatalf("Float64() = %f, expected [0, 1)", f)
		}
		n := r.Intn(6)
		if n < 0 || n >= 6 {
			t.Fatalf("Intn(6) = %d, expected [0, 6)", n)
		}
	}

	if r.Intn(0) != 0 {
		t.Error("Intn(0) should be 0")
	}
}

func TestSimpleRNGZeroSeed(t *testing.T) {
	r := NewSimpleRNG(0)
	if r.State() == 0 {
		t.Error("Zero seed should be remapped to a non-zero state")
	}
}
