package content

import (
	"strings"
	"testing"
)

func TestLoad_EmbeddedLessons(t *testing.T) {
	lessons, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if len(lessons) == 0 {
		t.Fatal("expected at least one embedded lesson")
	}
	for _, l := range lessons {
		if l.ID == "" || l.Title == "" {
			t.Errorf("lesson missing identity: %+v", l)
		}
		if len(l.Sections) == 0 {
			t.Errorf("lesson %s has no sections", l.ID)
		}
	}
}

func TestGet_Perimeter(t *testing.T) {
	l, err := Get("perimeter")
	if err != nil {
		t.Fatalf("Get(perimeter) error: %v", err)
	}
	if l.Title != "Perimeter" {
		t.Errorf("title = %q", l.Title)
	}
	if len(l.Sections) != 5 {
		t.Errorf("sections = %d, want 5", len(l.Sections))
	}
	if !l.HasPractice() {
		t.Error("perimeter lesson should have practice questions")
	}
	// The square section must carry the phrasing the fallback extractor reads.
	if !strings.Contains(l.Sections[1].Body, "each side 3 feet") {
		t.Error("square section lost its dimension phrasing")
	}
}

func TestGet_Unknown(t *testing.T) {
	if _, err := Get("nope"); err == nil {
		t.Error("expected error for unknown lesson")
	}
}

func TestValidate_Rejects(t *testing.T) {
	cases := []struct {
		name   string
		lesson Lesson
	}{
		{"missing id", Lesson{Title: "t", Sections: []Section{{Body: "b"}}}},
		{"no sections", Lesson{ID: "x", Title: "t"}},
		{"empty section body", Lesson{ID: "x", Title: "t", Sections: []Section{{Body: "  "}}}},
		{"practice index out of range", Lesson{
			ID: "x", Title: "t",
			Sections: []Section{{Body: "b"}},
			Practice: []PracticeQuestion{{Question: "q", Options: []string{"a", "b"}, CorrectIndex: 2}},
		}},
		{"practice too few options", Lesson{
			ID: "x", Title: "t",
			Sections: []Section{{Body: "b"}},
			Practice: []PracticeQuestion{{Question: "q", Options: []string{"a"}, CorrectIndex: 0}},
		}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if err := validate(&tc.lesson); err == nil {
				t.Errorf("expected validation error")
			}
		})
	}
}
