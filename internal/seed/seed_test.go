package seed

import (
	"sort"
	"testing"
)

func TestRand_Deterministic(t *testing.T) {
	a := New(42)
	b := New(42)
	for i := 0; i < 100; i++ {
		if a.Uint32() != b.Uint32() {
			t.Fatalf("sequences diverged at step %d", i)
		}
	}
}

func TestRand_SeedsDiffer(t *testing.T) {
	a := New(1)
	b := New(2)
	same := 0
	for i := 0; i < 20; i++ {
		if a.Uint32() == b.Uint32() {
			same++
		}
	}
	if same == 20 {
		t.Error("different seeds produced identical sequences")
	}
}

func TestRand_IntnBounds(t *testing.T) {
	r := New(7)
	for i := 0; i < 1000; i++ {
		v := r.Intn(4)
		if v < 0 || v >= 4 {
			t.Fatalf("Intn(4) = %d, out of range", v)
		}
	}
	if New(7).Intn(0) != 0 {
		t.Error("Intn(0) should return 0")
	}
}

func TestDerive_Stable(t *testing.T) {
	a := Derive("perimeter", 2, 1000)
	b := Derive("perimeter", 2, 1000)
	if a != b {
		t.Errorf("Derive not stable: %d vs %d", a, b)
	}
}

func TestDerive_DistinguishesInputs(t *testing.T) {
	base := Derive("perimeter", 0, 0)
	if Derive("perimeter", 1, 0) == base {
		t.Error("section index not reflected in seed")
	}
	if Derive("perimeter", 0, 1000) == base {
		t.Error("intent offset not reflected in seed")
	}
	if Derive("area", 0, 0) == base {
		t.Error("lesson ID not reflected in seed")
	}
}

func TestShuffleOptions_CorrectPlacement(t *testing.T) {
	opts := []string{"a", "b", "c", "d"}
	for s := uint32(0); s < 50; s++ {
		shuffled, idx := ShuffleOptions(opts, 1, s)
		want := int(s % 4)
		if idx != want {
			t.Errorf("seed %d: correctIndex = %d, want %d", s, idx, want)
		}
		if shuffled[idx] != "b" {
			t.Errorf("seed %d: options[%d] = %q, want %q", s, idx, shuffled[idx], "b")
		}
	}
}

func TestShuffleOptions_PreservesMultiset(t *testing.T) {
	opts := []string{"12 feet", "6 feet", "9 feet", "14 feet"}
	shuffled, _ := ShuffleOptions(opts, 0, 99)

	a := append([]string(nil), opts...)
	b := append([]string(nil), shuffled...)
	sort.Strings(a)
	sort.Strings(b)
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("option multiset changed: %v vs %v", opts, shuffled)
		}
	}
}

func TestShuffleOptions_Deterministic(t *testing.T) {
	opts := []string{"a", "b", "c", "d"}
	s1, i1 := ShuffleOptions(opts, 2, 1234)
	s2, i2 := ShuffleOptions(opts, 2, 1234)
	if i1 != i2 {
		t.Fatalf("correct index differs: %d vs %d", i1, i2)
	}
	for i := range s1 {
		if s1[i] != s2[i] {
			t.Fatalf("shuffle not deterministic: %v vs %v", s1, s2)
		}
	}
}

func TestShuffleOptions_DegenerateIdentity(t *testing.T) {
	two := []string{"yes", "no"}
	shuffled, idx := ShuffleOptions(two, 1, 77)
	if idx != 1 || shuffled[0] != "yes" || shuffled[1] != "no" {
		t.Errorf("two-option set should be returned unchanged, got %v idx %d", shuffled, idx)
	}

	one := []string{"only"}
	shuffled, idx = ShuffleOptions(one, 0, 77)
	if idx != 0 || shuffled[0] != "only" {
		t.Errorf("single option should be returned unchanged")
	}
}

func TestShuffleOptions_BadCorrectIndex(t *testing.T) {
	opts := []string{"a", "b", "c"}
	shuffled, idx := ShuffleOptions(opts, 5, 10)
	if idx != 5 {
		t.Errorf("out-of-range correctIndex should pass through, got %d", idx)
	}
	for i := range opts {
		if shuffled[i] != opts[i] {
			t.Fatal("options should be unchanged for out-of-range correctIndex")
		}
	}
}
