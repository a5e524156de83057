package home

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/geomiz/internal/content"
	"github.com/abhisek/geomiz/internal/router"
	lessonscreen "github.com/abhisek/geomiz/internal/screens/lesson"
)

func testLessons() []content.Lesson {
	return []content.Lesson{
		{
			ID:       "area-intro",
			Title:    "Introduction to Area",
			Subtitle: "Space inside a shape",
			Sections: []content.Section{{Title: "What is area?", Body: "Area measures the space inside a shape."}},
		},
		{
			ID:       "perimeter-intro",
			Title:    "Introduction to Perimeter",
			Subtitle: "The distance around a shape",
			Sections: []content.Section{{Title: "What is perimeter?", Body: "Perimeter is the distance around a shape."}},
			Practice: []content.PracticeQuestion{
				{Question: "Q", Options: []string{"a", "b", "c"}, CorrectIndex: 0},
			},
		},
	}
}

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

func TestViewListsLessons(t *testing.T) {
	h := New(testLessons(), lessonscreen.Deps{})
	view := h.View(100, 30)

	for _, want := range []string{"INTRODUCTION TO AREA", "INTRODUCTION TO PERIMETER", "QUIT"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
	// Detail line describes the highlighted lesson.
	if !strings.Contains(view, "Space inside a shape") {
		t.Error("view missing subtitle of the selected lesson")
	}
	if !strings.Contains(view, "1 sections") {
		t.Error("view missing section count")
	}
}

func TestDetailFollowsCursor(t *testing.T) {
	h := New(testLessons(), lessonscreen.Deps{})

	scr, _ := h.Update(specialKey(tea.KeyDown))
	view := scr.View(100, 30)

	if !strings.Contains(view, "The distance around a shape") {
		t.Error("detail line did not follow the cursor")
	}
	if !strings.Contains(view, "1 practice questions") {
		t.Error("detail line missing practice count")
	}
}

func TestEnterOpensLesson(t *testing.T) {
	h := New(testLessons(), lessonscreen.Deps{})

	_, cmd := h.Update(specialKey(tea.KeyEnter))
	if cmd == nil {
		t.Fatal("expected a command on enter")
	}
	msg := cmd()
	push, ok := msg.(router.PushScreenMsg)
	if !ok {
		t.Fatalf("expected PushScreenMsg, got %T", msg)
	}
	if _, ok := push.Screen.(*lessonscreen.LessonScreen); !ok {
		t.Fatalf("expected a lesson screen, got %T", push.Screen)
	}
}

func TestQuitItem(t *testing.T) {
	h := New(testLessons(), lessonscreen.Deps{})

	// Move past both lessons to the quit entry.
	s, _ := h.Update(specialKey(tea.KeyDown))
	s, _ = s.Update(specialKey(tea.KeyDown))
	_, cmd := s.Update(specialKey(tea.KeyEnter))
	if cmd == nil {
		t.Fatal("expected a command on enter")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("expected quit at the last menu entry")
	}
}
