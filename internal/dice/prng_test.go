package dice

import "testing"

func TestSessionSeedDeterminism(t *testing.T) {
	s1, _ := NewSessionSeed("alpha-seed")
	s2, _ := NewSessionSeed("alpha-seed")
	a := s1.Stream("x").Intn(1000000)
	b := s2.Stream("x").Intn(1000000)
	if a != b {
		t.Fatalf("streams differ: %d vs %d", a, b)
	}
	// labels are independent
	if Derive(s1.root, "x") == Derive(s1.root, "y") {
		t.Fatal("distinct labels derived the same seed")
	}
}

func TestSessionSeedRejectsEmpty(t *testing.T) {
	if _, err := NewSessionSeed(""); err == nil {
		t.Fatal("expected error for empty seed text")
	}
}

func TestStreamIntRangeBounds(t *testing.T) {
	s := NewStream(42)
	for i := 0; i < 1000; i++ {
		v := s.IntRange(1, 6)
		if v < 1 || v > 6 {
			t.Fatalf("value out of range: %d", v)
		}
	}
	if v := s.IntRange(1, 1); v != 1 {
		t.Fatalf("degenerate range should return min, got %d", v)
	}
	if v := s.IntRange(1, 0); v != 1 {
		t.Fatalf("inverted range should return min, got %d", v)
	}
}

func TestRandomSourceSeeds(t *testing.T) {
	s, err := NewRandomSource()
	if err != nil {
		t.Fatalf("random source: %v", err)
	}
	if v := s.IntRange(1, 20); v < 1 || v > 20 {
		t.Fatalf("value out of range: %d", v)
	}
}
