package fallback

import "testing"

func TestExtract_SquareEachSide(t *testing.T) {
	facts, ok := Extract("A square has each side 3 feet.")
	if !ok {
		t.Fatal("expected extraction to succeed")
	}
	if facts.Shape != ShapeSquare {
		t.Errorf("shape = %s", facts.Shape)
	}
	if len(facts.Sides) != 4 || facts.Sides[0] != 3 {
		t.Errorf("sides = %v", facts.Sides)
	}
	if facts.Unit != "feet" {
		t.Errorf("unit = %s", facts.Unit)
	}
	if facts.Total != 12 {
		t.Errorf("total = %d, want 12", facts.Total)
	}
}

func TestExtract_RectangleTallWide(t *testing.T) {
	facts, ok := Extract("A rectangle is 4 ft tall and 6 ft wide.")
	if !ok {
		t.Fatal("expected extraction to succeed")
	}
	if facts.Shape != ShapeRectangle {
		t.Errorf("shape = %s", facts.Shape)
	}
	if facts.Total != 20 {
		t.Errorf("total = %d, want 20", facts.Total)
	}
	if facts.Unit != "feet" {
		t.Errorf("unit = %s", facts.Unit)
	}
	want := []int{4, 6, 4, 6}
	for i, s := range want {
		if facts.Sides[i] != s {
			t.Errorf("sides = %v, want %v", facts.Sides, want)
			break
		}
	}
}

func TestExtract_TriangleEachSide(t *testing.T) {
	facts, ok := Extract("A triangle has each side 5 cm, so all three sides are equal.")
	if !ok {
		t.Fatal("expected extraction to succeed")
	}
	if facts.Shape != ShapeTriangle {
		t.Errorf("shape = %s", facts.Shape)
	}
	if len(facts.Sides) != 3 || facts.Total != 15 {
		t.Errorf("sides = %v total = %d", facts.Sides, facts.Total)
	}
	if facts.Unit != "cm" {
		t.Errorf("unit = %s", facts.Unit)
	}
}

func TestExtract_Equation(t *testing.T) {
	facts, ok := Extract("To fence it you need Perimeter = 8 + 10 + 8 + 10 = 36 feet of fencing.")
	if !ok {
		t.Fatal("expected extraction to succeed")
	}
	if facts.Shape != ShapeRectangle {
		t.Errorf("shape = %s", facts.Shape)
	}
	if facts.Total != 36 {
		t.Errorf("total = %d, want 36", facts.Total)
	}
}

func TestExtract_EquationRecomputesTotal(t *testing.T) {
	// The stated total has a typo; the sum of terms wins.
	facts, ok := Extract("Perimeter = 2 + 2 + 2 + 2 = 9 m")
	if !ok {
		t.Fatal("expected extraction to succeed")
	}
	if facts.Total != 8 {
		t.Errorf("total = %d, want recomputed 8", facts.Total)
	}
}

func TestExtract_NoGrounding(t *testing.T) {
	cases := []string{
		"Perimeter is the distance around the outside of a shape.",
		"Imagine walking around a playground and counting your steps.",
		"each side 4 feet",                 // no shape word
		"A hexagon has each side 2 feet.", // shape outside the vocabulary
		"",
	}
	for _, text := range cases {
		if _, ok := Extract(text); ok {
			t.Errorf("expected no extraction for %q", text)
		}
	}
}

func TestExtract_UnitNormalization(t *testing.T) {
	cases := []struct {
		text string
		want string
	}{
		{"A square has each side 2 ft.", "feet"},
		{"A square has each side 2 inches.", "inches"},
		{"A square has each side 2 in.", "inches"},
		{"A square has each side 2 cm.", "cm"},
		{"A square has each side 2 m.", "m"},
		{"A square has each side 2 meters.", "m"},
	}
	for _, tc := range cases {
		facts, ok := Extract(tc.text)
		if !ok {
			t.Errorf("extraction failed for %q", tc.text)
			continue
		}
		if facts.Unit != tc.want {
			t.Errorf("%q: unit = %q, want %q", tc.text, facts.Unit, tc.want)
		}
	}
}
