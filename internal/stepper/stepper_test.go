package stepper

import "testing"

func TestSequence_NoPractice(t *testing.T) {
	s := New(2, false)

	var visited []Phase
	visited = append(visited, s.Phase())
	for i := 0; i < 10 && s.Phase() != PhaseComplete; i++ {
		s.NextPhase()
		visited = append(visited, s.Phase())
	}

	// welcome, learn (section 0→1 stays in learn), review, complete.
	want := []Phase{PhaseWelcome, PhaseLearn, PhaseLearn, PhaseReview, PhaseComplete}
	if len(visited) != len(want) {
		t.Fatalf("visited %v, want %v", visited, want)
	}
	for i := range want {
		if visited[i] != want[i] {
			t.Fatalf("visited %v, want %v", visited, want)
		}
	}
}

func TestSequence_SkipsPractice(t *testing.T) {
	s := New(1, false)
	for _, p := range s.Phases() {
		if p == PhasePractice {
			t.Fatal("practice should be omitted without practice questions")
		}
	}

	s.GoToPhase(PhaseReview)
	s.NextPhase()
	if s.Phase() != PhaseComplete {
		t.Errorf("phase = %v, want complete", s.Phase())
	}
}

func TestCompletionCallback_Once(t *testing.T) {
	fired := 0
	s := New(1, false, WithCompletion(func() { fired++ }))

	s.GoToPhase(PhaseReview)
	s.NextPhase() // → complete
	if fired != 1 {
		t.Fatalf("completion fired %d times, want 1", fired)
	}

	// Bouncing back and forward must not re-fire.
	s.PreviousPhase()
	s.NextPhase()
	if fired != 1 {
		t.Errorf("completion re-fired, total %d", fired)
	}
}

func TestPhaseChangeCallback(t *testing.T) {
	var changes [][2]Phase
	s := New(1, true, WithPhaseChange(func(from, to Phase) {
		changes = append(changes, [2]Phase{from, to})
	}))

	s.NextPhase() // welcome → learn
	s.NextPhase() // learn → practice
	if len(changes) != 2 {
		t.Fatalf("changes = %d, want 2", len(changes))
	}
	if changes[0] != [2]Phase{PhaseWelcome, PhaseLearn} {
		t.Errorf("first change = %v", changes[0])
	}
	if changes[1] != [2]Phase{PhaseLearn, PhasePractice} {
		t.Errorf("second change = %v", changes[1])
	}
}

func TestGate_BlocksForward(t *testing.T) {
	gate := GateLocked
	s := New(3, false, WithGate(func(int) Gate { return gate }))

	s.GoToPhase(PhaseLearn)
	s.NextPhase()
	if s.Section() != 0 {
		t.Errorf("locked gate should block section advance, section = %d", s.Section())
	}
	if s.CanGoNext() {
		t.Error("CanGoNext should be false behind a locked gate")
	}

	gate = GatePassed
	s.NextPhase()
	if s.Section() != 1 {
		t.Errorf("section = %d, want 1", s.Section())
	}

	// Degraded (terminal generation failure) never blocks.
	gate = GateDegraded
	s.NextPhase()
	if s.Section() != 2 {
		t.Errorf("degraded gate should not block, section = %d", s.Section())
	}
}

func TestGate_DoesNotBlockBackward(t *testing.T) {
	s := New(3, false, WithGate(func(int) Gate { return GateLocked }))
	s.GoToPhase(PhaseLearn)
	s.section = 2
	s.PreviousPhase()
	if s.Section() != 1 {
		t.Errorf("backward navigation must ignore the gate, section = %d", s.Section())
	}
}

func TestReenterLearn_ResumesLastSection(t *testing.T) {
	s := New(4, false)
	s.GoToPhase(PhaseReview)
	s.PreviousPhase()
	if s.Phase() != PhaseLearn {
		t.Fatalf("phase = %v, want learn", s.Phase())
	}
	if s.Section() != 3 {
		t.Errorf("section = %d, want last section 3", s.Section())
	}
}

func TestGoToPhase(t *testing.T) {
	s := New(3, false)
	s.GoToPhase(PhaseLearn)
	s.section = 2

	s.GoToPhase(PhaseReview)
	if s.Section() != 0 {
		t.Errorf("GoToPhase should reset section, got %d", s.Section())
	}

	// Practice not in the sequence: no-op.
	s.GoToPhase(PhasePractice)
	if s.Phase() != PhaseReview {
		t.Errorf("unavailable phase should be a no-op, phase = %v", s.Phase())
	}
}

func TestSectionBounds(t *testing.T) {
	s := New(2, false)
	s.GoToPhase(PhaseLearn)

	s.PreviousSection()
	if s.Section() != 0 {
		t.Error("PreviousSection below 0")
	}
	s.NextSection()
	s.NextSection()
	s.NextSection()
	if s.Section() != 1 {
		t.Errorf("NextSection past bound, section = %d", s.Section())
	}
}

func TestProgress_NonDecreasing(t *testing.T) {
	s := New(3, true)
	last := s.Progress()
	if last != 0 {
		t.Errorf("initial progress = %f, want 0", last)
	}
	for i := 0; i < 12 && s.Phase() != PhaseComplete; i++ {
		s.NextPhase()
		p := s.Progress()
		if p < last {
			t.Fatalf("progress decreased: %f → %f at phase %v section %d", last, p, s.Phase(), s.Section())
		}
		last = p
	}
	if last != 1 {
		t.Errorf("progress at complete = %f, want 1", last)
	}
}

func TestMarkPhaseComplete_Idempotent(t *testing.T) {
	s := New(1, false)
	s.MarkPhaseComplete(PhaseLearn)
	s.MarkPhaseComplete(PhaseLearn)
	if !s.Completed(PhaseLearn) {
		t.Error("phase should be complete")
	}
}

func TestReset(t *testing.T) {
	var changes int
	s := New(2, true, WithPhaseChange(func(_, _ Phase) { changes++ }))
	s.GoToPhase(PhaseReview)
	s.MarkPhaseComplete(PhaseLearn)
	s.UpdatePracticeScore(2, 3)

	s.Reset()
	if s.Phase() != PhaseWelcome || s.Section() != 0 {
		t.Errorf("reset state: phase %v section %d", s.Phase(), s.Section())
	}
	if s.Completed(PhaseLearn) {
		t.Error("completed set should be cleared on reset")
	}
	if s.Score() != (PracticeScore{}) {
		t.Error("practice score should be cleared on reset")
	}
}

func TestCommands(t *testing.T) {
	s := New(1, true)

	s.Apply(CommandConfirm) // welcome → learn
	if s.Phase() != PhaseLearn {
		t.Fatalf("confirm on welcome should advance, phase = %v", s.Phase())
	}

	s.Apply(CommandAdvance) // learn → practice
	if s.Phase() != PhasePractice {
		t.Fatalf("phase = %v, want practice", s.Phase())
	}

	// Confirm never applies in practice.
	s.Apply(CommandConfirm)
	if s.Phase() != PhasePractice {
		t.Error("confirm must be a no-op in practice")
	}

	s.Apply(CommandCancel) // back to learn
	if s.Phase() != PhaseLearn {
		t.Errorf("cancel should retreat, phase = %v", s.Phase())
	}
}

func TestCanGoBack(t *testing.T) {
	s := New(2, false)
	if s.CanGoBack() {
		t.Error("cannot go back from welcome")
	}
	s.NextPhase()
	if !s.CanGoBack() {
		t.Error("can go back from learn")
	}
}
