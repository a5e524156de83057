package lesson

import (
	"context"
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/geomiz/internal/checkpoint"
	"github.com/abhisek/geomiz/internal/content"
	"github.com/abhisek/geomiz/internal/screen"
	"github.com/abhisek/geomiz/internal/stepper"
)

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

func testLesson() content.Lesson {
	return content.Lesson{
		ID:       "perimeter-intro",
		Title:    "Introduction to Perimeter",
		Subtitle: "The distance around a shape",
		Sections: []content.Section{
			{Title: "What is perimeter?", Body: "Perimeter is the distance around the outside of a shape."},
			{Title: "Squares", Body: "A square playground has each side 3 feet long. Perimeter = 3 + 3 + 3 + 3 = 12 feet."},
		},
		Practice: []content.PracticeQuestion{
			{
				Question:     "A square has sides of 2 m. What is its perimeter?",
				Options:      []string{"8 m", "4 m", "6 m"},
				CorrectIndex: 0,
				Explanation:  "2 + 2 + 2 + 2 = 8 m.",
			},
		},
	}
}

// testScreen builds a lesson screen with no remote generator: every
// checkpoint comes from the offline generator, deterministically.
func testScreen() *LessonScreen {
	return New(testLesson(), Deps{})
}

// enterLearn drives the screen from welcome into the first learn section
// and runs the generation command synchronously.
func enterLearn(t *testing.T, s *LessonScreen) {
	t.Helper()
	var scr screen.Screen = s
	scr, cmd := scr.Update(specialKey(tea.KeyEnter))
	if cmd == nil {
		t.Fatal("expected a generation command on entering learn")
	}
	msg := cmd()
	if _, ok := msg.(checkpointReadyMsg); !ok {
		t.Fatalf("cmd produced %T, want checkpointReadyMsg", msg)
	}
	scr.Update(msg)
}

// passSection answers the current checkpoint correctly.
func passSection(t *testing.T, s *LessonScreen) {
	t.Helper()
	idx := s.step.Section()
	st := s.svc.StateOf(idx)
	if st.Status != checkpoint.StatusReady {
		t.Fatalf("section %d status = %v, want ready", idx, st.Status)
	}
	s.svc.SelectOption(context.Background(), idx, st.Payload.CorrectIndex)
}

func TestLessonScreen_Title(t *testing.T) {
	s := testScreen()
	if s.Title() != "Introduction to Perimeter" {
		t.Errorf("Title = %q", s.Title())
	}
}

func TestLessonScreen_WelcomeView(t *testing.T) {
	s := testScreen()
	view := s.View(80, 24)
	if !strings.Contains(view, "Introduction to Perimeter") {
		t.Error("welcome view missing lesson title")
	}
	if !strings.Contains(view, "2 sections") {
		t.Error("welcome view missing section count")
	}
}

func TestLessonScreen_EnterStartsLearn(t *testing.T) {
	s := testScreen()
	enterLearn(t, s)

	if s.step.Phase() != stepper.PhaseLearn {
		t.Fatalf("phase = %v, want learn", s.step.Phase())
	}
	st := s.svc.StateOf(0)
	if st.Status != checkpoint.StatusReady {
		t.Fatalf("checkpoint status = %v, want ready", st.Status)
	}
	if st.Source != checkpoint.SourceFallback {
		t.Errorf("source = %q, want fallback with no provider", st.Source)
	}
}

func TestLessonScreen_GateBlocksUnanswered(t *testing.T) {
	s := testScreen()
	enterLearn(t, s)

	// Enter without a correct answer submits the highlighted option; a
	// wrong submission must not advance the section.
	st := s.svc.StateOf(0)
	wrong := (st.Payload.CorrectIndex + 1) % len(st.Payload.Options)
	s.selected = wrong
	s.Update(specialKey(tea.KeyEnter))

	if s.step.Section() != 0 {
		t.Errorf("section = %d, want 0 while gate is locked", s.step.Section())
	}
	if got := s.svc.StateOf(0); !got.Answered || got.IsCorrect {
		t.Errorf("answer state = %+v, want wrong answer recorded", got)
	}
}

func TestLessonScreen_PassAndAdvance(t *testing.T) {
	s := testScreen()
	enterLearn(t, s)
	passSection(t, s)

	// One more Enter moves to the next section and kicks off generation.
	_, cmd := s.Update(specialKey(tea.KeyEnter))
	if s.step.Section() != 1 {
		t.Fatalf("section = %d, want 1", s.step.Section())
	}
	if cmd == nil {
		t.Fatal("expected generation command for next section")
	}
	s.Update(cmd())
	if got := s.svc.StateOf(1); got.Status != checkpoint.StatusReady {
		t.Errorf("section 1 status = %v, want ready", got.Status)
	}
}

func TestLessonScreen_RemediationPanel(t *testing.T) {
	s := testScreen()
	enterLearn(t, s)

	st := s.svc.StateOf(0)
	wrong := (st.Payload.CorrectIndex + 1) % len(st.Payload.Options)
	s.svc.SelectOption(context.Background(), 0, wrong)
	s.svc.SelectOption(context.Background(), 0, wrong)

	view := s.View(80, 24)
	if !strings.Contains(view, "step back") {
		t.Error("expected quick-review panel after two misses")
	}

	// A correct review answer dismisses the panel and returns to the
	// checkpoint question.
	rem := s.svc.RemediationOf(0)
	s.remSelected = rem.Payload.CorrectIndex
	s.Update(specialKey(tea.KeyEnter))

	if s.svc.RemediationOf(0).Visible {
		t.Error("review should hide after a correct answer")
	}
	view = s.View(80, 24)
	if !strings.Contains(view, st.Payload.Question) {
		t.Error("checkpoint question should be visible again")
	}
}

func TestLessonScreen_BackFromLearn(t *testing.T) {
	s := testScreen()
	enterLearn(t, s)

	s.Update(specialKey(tea.KeyLeft))
	if s.step.Phase() != stepper.PhaseWelcome {
		t.Errorf("phase = %v, want welcome after backing out of section 0", s.step.Phase())
	}
}

func TestLessonScreen_FullRun(t *testing.T) {
	s := testScreen()
	enterLearn(t, s)

	// Pass both sections.
	passSection(t, s)
	_, cmd := s.Update(specialKey(tea.KeyEnter))
	s.Update(cmd())
	passSection(t, s)
	s.Update(specialKey(tea.KeyEnter))

	if s.step.Phase() != stepper.PhasePractice {
		t.Fatalf("phase = %v, want practice", s.step.Phase())
	}

	// Answer the practice question (option A is correct) and dismiss the
	// result.
	s.Update(specialKey(tea.KeyEnter))
	if !s.practiceChoice.Submitted {
		t.Fatal("practice answer not submitted")
	}
	s.Update(keyPress(' '))

	if s.step.Phase() != stepper.PhaseReview {
		t.Fatalf("phase = %v, want review", s.step.Phase())
	}
	if score := s.step.Score(); score.Correct != 1 || score.Total != 1 {
		t.Errorf("practice score = %+v, want 1/1", score)
	}

	view := s.View(80, 24)
	if !strings.Contains(view, "Practice: 1 of 1 correct") {
		t.Error("review view missing practice score")
	}

	s.Update(specialKey(tea.KeyEnter))
	if s.step.Phase() != stepper.PhaseComplete {
		t.Fatalf("phase = %v, want complete", s.step.Phase())
	}

	// Enter on the completion screen pops back home.
	_, popCmd := s.Update(specialKey(tea.KeyEnter))
	if popCmd == nil {
		t.Error("expected pop command from completion screen")
	}
}

func TestLessonScreen_HintToggle(t *testing.T) {
	s := testScreen()
	enterLearn(t, s)

	s.Update(keyPress('h'))
	if !s.showHint || s.hintText == "" {
		t.Fatalf("hint not shown: show=%v text=%q", s.showHint, s.hintText)
	}
	view := s.View(80, 24)
	if !strings.Contains(view, "Hint:") {
		t.Error("view missing hint text")
	}

	s.Update(keyPress('h'))
	if s.showHint {
		t.Error("second press should hide the hint")
	}
}

func TestLessonScreen_KeyHintsVary(t *testing.T) {
	s := testScreen()
	welcome := s.KeyHints()
	enterLearn(t, s)
	learn := s.KeyHints()

	if len(welcome) == 0 || len(learn) == 0 {
		t.Fatal("expected key hints in both phases")
	}
	if len(welcome) == len(learn) {
		t.Error("welcome and learn should show different hints")
	}
}
