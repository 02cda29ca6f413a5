package random

import "testing"

func TestSameSeedSameStream(t *testing.T) {
	a, err := New(42)
	if err != nil {
		t.Fatal(err)
	}
	b, err := New(42)
	if err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 10; i++ {
		if x, y := a.Rand().IntN(1000), b.Rand().IntN(1000); x != y {
			t.Fatalf("draw %d: %d != %d", i, x, y)
		}
	}
}

func TestRestoreContinuesStream(t *testing.T) {
	src, err := New(7)
	if err != nil {
		t.Fatal(err)
	}
	src.Rand().IntN(10)
	state, err := src.State()
	if err != nil {
		t.Fatalf("State() error = %v", err)
	}
	want := []int{src.Rand().IntN(1000), src.Rand().IntN(1000), src.Rand().IntN(1000)}

	other, err := New(99)
	if err != nil {
		t.Fatal(err)
	}
	rng := other.Rand()
	if err := other.Restore(state); err != nil {
		t.Fatalf("Restore() error = %v", err)
	}
	for i, w := range want {
		if got := rng.IntN(1000); got != w {
			t.Errorf("draw %d after Restore = %d, want %d", i, got, w)
		}
	}
}

func TestRestoreRejectsGarbage(t *testing.T) {
	src, err := New(1)
	if err != nil {
		t.Fatal(err)
	}
	if err := src.Restore([]byte("nope")); err == nil {
		t.Error("Restore(garbage) should fail")
	}
}

func TestZeroSeedIsRandom(t *testing.T) {
	if _, err := New(0); err != nil {
		t.Fatalf("New(0) error = %v", err)
	}
	if _, err := NewSeed(); err != nil {
		t.Fatalf("NewSeed() error = %v", err)
	}
}
