package checkpoint

import (
	"context"
	"errors"
	"reflect"
	"strings"
	"sync"
	"testing"

	"github.com/abhisek/geomiz/internal/content"
	"github.com/abhisek/geomiz/internal/questiongen"
)

func testLesson() content.Lesson {
	return content.Lesson{
		ID:    "perimeter-intro",
		Title: "Introduction to Perimeter",
		Sections: []content.Section{
			{Title: "What is perimeter?", Body: "Perimeter is the distance around the outside of a shape."},
			{Title: "Squares", Body: "A square playground has each side 3 feet long. Perimeter = 3 + 3 + 3 + 3 = 12 feet."},
			{Title: "Rectangles", Body: "A rectangle garden is 4 ft tall and 6 ft wide. Perimeter = 4 + 6 + 4 + 6 = 20 feet."},
		},
	}
}

type stubGenerator struct {
	payload *questiongen.Payload
	err     error
	calls   int
}

func (g *stubGenerator) Generate(_ context.Context, _ questiongen.Input) (*questiongen.Payload, error) {
	g.calls++
	if g.err != nil {
		return nil, g.err
	}
	p := *g.payload
	p.Options = append([]string(nil), g.payload.Options...)
	return &p, nil
}

func validAIPayload() *questiongen.Payload {
	return &questiongen.Payload{
		Question:     "A square has sides of 5 feet. What is its perimeter?",
		Options:      []string{"20 feet", "10 feet", "25 feet", "15 feet"},
		CorrectIndex: 0,
		Explanation:  "5 + 5 + 5 + 5 = 20 feet.",
	}
}

type memCache struct {
	mu   sync.Mutex
	data map[string]string
	gets int
	puts int
}

func newMemCache() *memCache {
	return &memCache{data: make(map[string]string)}
}

func (c *memCache) Get(_ context.Context, key string) (string, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.gets++
	v, ok := c.data[key]
	return v, ok
}

func (c *memCache) Put(_ context.Context, key, value string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.puts++
	c.data[key] = value
}

type recordedEvents struct {
	mu        sync.Mutex
	generated []GeneratedEvent
	answered  []AnsweredEvent
	remShown  []RemediationEvent
	remAns    []RemediationEvent
}

func (r *recordedEvents) CheckpointGenerated(_ context.Context, ev GeneratedEvent) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.generated = append(r.generated, ev)
}

func (r *recordedEvents) CheckpointAnswered(_ context.Context, ev AnsweredEvent) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.answered = append(r.answered, ev)
}

func (r *recordedEvents) RemediationShown(_ context.Context, ev RemediationEvent) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.remShown = append(r.remShown, ev)
}

func (r *recordedEvents) RemediationAnswered(_ context.Context, ev RemediationEvent) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.remAns = append(r.remAns, ev)
}

func TestEnsureUsesGeneratorWhenAvailable(t *testing.T) {
	gen := &stubGenerator{payload: validAIPayload()}
	svc := NewService(testLesson(), "sess-1", WithGenerator(gen))

	st := svc.Ensure(context.Background(), 0)
	if st.Status != StatusReady {
		t.Fatalf("status = %v, want ready", st.Status)
	}
	if st.Source != SourceAI {
		t.Errorf("source = %q, want ai", st.Source)
	}
	if st.Reason != ReasonNone {
		t.Errorf("reason = %q, want empty", st.Reason)
	}
	if gen.calls != 1 {
		t.Errorf("generator calls = %d, want 1", gen.calls)
	}
	if len(st.Payload.Options) != 4 {
		t.Errorf("options = %d, want 4", len(st.Payload.Options))
	}
	correct := st.Payload.Options[st.Payload.CorrectIndex]
	if correct != "20 feet" {
		t.Errorf("correct option after shuffle = %q, want %q", correct, "20 feet")
	}
}

func TestEnsureFallsBackOnProviderError(t *testing.T) {
	gen := &stubGenerator{err: errors.New("rate limited")}
	svc := NewService(testLesson(), "sess-1", WithGenerator(gen))

	st := svc.Ensure(context.Background(), 1)
	if st.Status != StatusReady {
		t.Fatalf("status = %v, want ready", st.Status)
	}
	if st.Source != SourceFallback {
		t.Errorf("source = %q, want fallback", st.Source)
	}
	if st.Reason != ReasonAssistantUnavailable {
		t.Errorf("reason = %q, want assistant_unavailable", st.Reason)
	}
}

func TestEnsureFallsBackOnInvalidPayload(t *testing.T) {
	bad := &questiongen.Payload{Question: "What?", Options: []string{"a"}, CorrectIndex: 0, Explanation: "x"}
	gen := &stubGenerator{payload: bad}
	svc := NewService(testLesson(), "sess-1", WithGenerator(gen))

	st := svc.Ensure(context.Background(), 1)
	if st.Status != StatusReady {
		t.Fatalf("status = %v, want ready", st.Status)
	}
	if st.Source != SourceFallback {
		t.Errorf("source = %q, want fallback", st.Source)
	}
	if st.Reason != ReasonGenerationError {
		t.Errorf("reason = %q, want generation_error", st.Reason)
	}
	if gen.calls != 1 {
		t.Errorf("generator calls = %d, want 1 (no local retry of invalid output)", gen.calls)
	}
}

func TestEnsureWithoutGeneratorUsesFallback(t *testing.T) {
	svc := NewService(testLesson(), "sess-1")

	st := svc.Ensure(context.Background(), 1)
	if st.Status != StatusReady {
		t.Fatalf("status = %v, want ready", st.Status)
	}
	if st.Source != SourceFallback {
		t.Errorf("source = %q, want fallback", st.Source)
	}
	if st.Reason != ReasonAssistantUnavailable {
		t.Errorf("reason = %q, want assistant_unavailable", st.Reason)
	}
}

func TestEnsureIsIdempotentOnceReady(t *testing.T) {
	gen := &stubGenerator{payload: validAIPayload()}
	svc := NewService(testLesson(), "sess-1", WithGenerator(gen))

	first := svc.Ensure(context.Background(), 0)
	second := svc.Ensure(context.Background(), 0)
	if gen.calls != 1 {
		t.Errorf("generator calls = %d, want 1", gen.calls)
	}
	if !reflect.DeepEqual(first.Payload, second.Payload) {
		t.Error("payload changed between Ensure calls")
	}
}

func TestEnsureSkipsWhileLoading(t *testing.T) {
	svc := NewService(testLesson(), "sess-1")
	svc.mu.Lock()
	svc.state(0).Status = StatusLoading
	svc.mu.Unlock()

	st := svc.Ensure(context.Background(), 0)
	if st.Status != StatusLoading {
		t.Fatalf("status = %v, want loading (second Ensure must not run the pipeline)", st.Status)
	}
}

func TestEnsureNilFallbackIsTerminalError(t *testing.T) {
	gen := &stubGenerator{err: errors.New("down")}
	svc := NewService(testLesson(), "sess-1", WithGenerator(gen), WithFallback(nil))

	st := svc.Ensure(context.Background(), 0)
	if st.Status != StatusError {
		t.Fatalf("status = %v, want error", st.Status)
	}
	if st.ErrMsg == "" {
		t.Error("expected error message")
	}

	svc.Retry(0)
	if got := svc.StateOf(0).Status; got != StatusIdle {
		t.Errorf("status after Retry = %v, want idle", got)
	}
}

func TestCacheReadThrough(t *testing.T) {
	cache := newMemCache()
	gen := &stubGenerator{payload: validAIPayload()}
	svc := NewService(testLesson(), "sess-1", WithGenerator(gen), WithCache(cache))

	first := svc.Ensure(context.Background(), 0)
	if first.FromCache {
		t.Fatal("first Ensure should not come from cache")
	}
	if cache.puts != 1 {
		t.Fatalf("cache puts = %d, want 1", cache.puts)
	}

	// A fresh service for the same lesson adopts the cached payload without
	// touching the generator.
	gen2 := &stubGenerator{payload: validAIPayload()}
	svc2 := NewService(testLesson(), "sess-2", WithGenerator(gen2), WithCache(cache))
	second := svc2.Ensure(context.Background(), 0)
	if !second.FromCache {
		t.Fatal("second session should hit the cache")
	}
	if gen2.calls != 0 {
		t.Errorf("generator calls = %d, want 0", gen2.calls)
	}
	if second.Source != SourceAI {
		t.Errorf("cached source = %q, want ai", second.Source)
	}
	if !reflect.DeepEqual(first.Payload, second.Payload) {
		t.Error("cached payload differs from original")
	}
}

func TestCorruptCacheEntryIsIgnored(t *testing.T) {
	cache := newMemCache()
	svc := NewService(testLesson(), "sess-1", WithCache(cache))
	cache.data[svc.cacheKey(1, questiongen.IntentForSection(1))] = "{not json"

	st := svc.Ensure(context.Background(), 1)
	if st.Status != StatusReady {
		t.Fatalf("status = %v, want ready", st.Status)
	}
	if st.FromCache {
		t.Error("corrupt entry must not be adopted")
	}
}

func TestSelectOptionCorrectPasses(t *testing.T) {
	events := &recordedEvents{}
	svc := NewService(testLesson(), "sess-1", WithRecorder(events))
	svc.Ensure(context.Background(), 1)

	st := svc.StateOf(1)
	res := svc.SelectOption(context.Background(), 1, st.Payload.CorrectIndex)
	if !res.Passed || !res.IsCorrect {
		t.Fatalf("passed=%v correct=%v, want both true", res.Passed, res.IsCorrect)
	}
	if res.WrongAttempts != 0 {
		t.Errorf("wrong attempts = %d, want 0", res.WrongAttempts)
	}
	if len(events.answered) != 1 || !events.answered[0].Correct {
		t.Errorf("answered events = %+v, want one correct", events.answered)
	}

	// Selections after passing are ignored.
	wrong := (st.Payload.CorrectIndex + 1) % len(st.Payload.Options)
	after := svc.SelectOption(context.Background(), 1, wrong)
	if !after.Passed || after.SelectedIndex != st.Payload.CorrectIndex {
		t.Error("selection after pass should be ignored")
	}
}

func TestSelectOptionOutOfRangeIgnored(t *testing.T) {
	svc := NewService(testLesson(), "sess-1")
	svc.Ensure(context.Background(), 1)

	res := svc.SelectOption(context.Background(), 1, 99)
	if res.Answered {
		t.Error("out-of-range selection should be ignored")
	}
	res = svc.SelectOption(context.Background(), 1, -1)
	if res.Answered {
		t.Error("negative selection should be ignored")
	}
}

func TestSelectOptionBeforeReadyIgnored(t *testing.T) {
	svc := NewService(testLesson(), "sess-1")
	res := svc.SelectOption(context.Background(), 0, 0)
	if res.Answered {
		t.Error("selection before Ensure should be ignored")
	}
}

func TestRemediationTriggersOnSecondMissExactlyOnce(t *testing.T) {
	events := &recordedEvents{}
	svc := NewService(testLesson(), "sess-1", WithRecorder(events))
	st := svc.Ensure(context.Background(), 1)
	wrong := (st.Payload.CorrectIndex + 1) % len(st.Payload.Options)

	svc.SelectOption(context.Background(), 1, wrong)
	if svc.RemediationOf(1).Visible {
		t.Fatal("remediation visible after one miss")
	}

	svc.SelectOption(context.Background(), 1, wrong)
	rem := svc.RemediationOf(1)
	if !rem.Visible || !rem.Shown {
		t.Fatal("remediation should surface on the second miss")
	}
	if rem.Payload == nil || len(rem.Payload.Options) != 2 {
		t.Fatalf("remediation payload = %+v, want two-option review", rem.Payload)
	}
	if len(events.remShown) != 1 {
		t.Fatalf("shown events = %d, want 1", len(events.remShown))
	}

	// A third miss neither re-fires the event nor resets the review.
	svc.SelectOption(context.Background(), 1, wrong)
	if len(events.remShown) != 1 {
		t.Errorf("shown events after third miss = %d, want 1", len(events.remShown))
	}
	if got := svc.StateOf(1).WrongAttempts; got != 3 {
		t.Errorf("wrong attempts = %d, want 3", got)
	}
}

func TestRemediationAnswerFlow(t *testing.T) {
	events := &recordedEvents{}
	svc := NewService(testLesson(), "sess-1", WithRecorder(events))
	st := svc.Ensure(context.Background(), 1)
	wrong := (st.Payload.CorrectIndex + 1) % len(st.Payload.Options)
	svc.SelectOption(context.Background(), 1, wrong)
	svc.SelectOption(context.Background(), 1, wrong)

	rem := svc.RemediationOf(1)
	wrongRem := (rem.Payload.CorrectIndex + 1) % len(rem.Payload.Options)

	// Incorrect review answer keeps the panel up.
	res := svc.SelectRemediationOption(context.Background(), 1, wrongRem)
	if res.IsCorrect || !res.Visible {
		t.Fatalf("after wrong review answer: correct=%v visible=%v", res.IsCorrect, res.Visible)
	}

	// Correct review answer dismisses it.
	res = svc.SelectRemediationOption(context.Background(), 1, rem.Payload.CorrectIndex)
	if !res.IsCorrect || res.Visible {
		t.Fatalf("after correct review answer: correct=%v visible=%v", res.IsCorrect, res.Visible)
	}
	if len(events.remAns) != 2 {
		t.Errorf("answered review events = %d, want 2", len(events.remAns))
	}

	// The checkpoint itself is still unanswered-correct.
	if svc.SectionPassed(1) {
		t.Error("review success must not pass the section")
	}
}

func TestRemediationClearedOnCorrectCheckpointAnswer(t *testing.T) {
	svc := NewService(testLesson(), "sess-1")
	st := svc.Ensure(context.Background(), 1)
	wrong := (st.Payload.CorrectIndex + 1) % len(st.Payload.Options)
	svc.SelectOption(context.Background(), 1, wrong)
	svc.SelectOption(context.Background(), 1, wrong)

	svc.SelectOption(context.Background(), 1, st.Payload.CorrectIndex)
	if svc.RemediationOf(1).Visible {
		t.Error("remediation should hide once the checkpoint is passed")
	}
	if !svc.SectionPassed(1) {
		t.Error("section should be passed")
	}
}

func TestResetClearsEverything(t *testing.T) {
	svc := NewService(testLesson(), "sess-1")
	st := svc.Ensure(context.Background(), 1)
	svc.SelectOption(context.Background(), 1, st.Payload.CorrectIndex)

	svc.Reset()
	if got := svc.StateOf(1); got.Status != StatusIdle || got.Passed {
		t.Errorf("after reset: %+v, want idle unpassed", got)
	}
}

func TestGateMapping(t *testing.T) {
	svc := NewService(testLesson(), "sess-1", WithFallback(nil), WithGenerator(&stubGenerator{err: errors.New("down")}))

	if passed, degraded := svc.Gate(0); passed || degraded {
		t.Error("idle section should be locked")
	}

	svc.Ensure(context.Background(), 0)
	if passed, degraded := svc.Gate(0); passed || !degraded {
		t.Error("terminal error should read as degraded")
	}
}

func TestGatePassed(t *testing.T) {
	svc := NewService(testLesson(), "sess-1")
	st := svc.Ensure(context.Background(), 1)
	svc.SelectOption(context.Background(), 1, st.Payload.CorrectIndex)
	if passed, _ := svc.Gate(1); !passed {
		t.Error("passed section should open the gate")
	}
}

func TestTutorContext(t *testing.T) {
	svc := NewService(testLesson(), "sess-1")
	if got := svc.TutorContext(1); got != "" {
		t.Fatalf("tutor context before ready = %q, want empty", got)
	}

	st := svc.Ensure(context.Background(), 1)
	got := svc.TutorContext(1)
	if !strings.Contains(got, st.Payload.Question) {
		t.Error("tutor context missing question text")
	}
	for _, opt := range st.Payload.Options {
		if !strings.Contains(got, opt) {
			t.Errorf("tutor context missing option %q", opt)
		}
	}
	if !strings.Contains(got, "do not tell me which option is correct") {
		t.Error("tutor context missing no-spoiler instruction")
	}
	correctLetter := string(rune('A' + st.Payload.CorrectIndex))
	if strings.Contains(got, "correct answer is "+correctLetter) {
		t.Error("tutor context must not reveal the answer")
	}
}

func TestHintIsDeterministic(t *testing.T) {
	svc := NewService(testLesson(), "sess-1")
	a := svc.HintFor(1)
	b := svc.HintFor(1)
	if a == "" {
		t.Fatal("hint is empty")
	}
	if a != b {
		t.Errorf("hint changed between calls: %q vs %q", a, b)
	}
}

func TestIntentAssignmentBySection(t *testing.T) {
	svc := NewService(testLesson(), "sess-1")
	want := []questiongen.Intent{questiongen.IntentDefine, questiongen.IntentCompute, questiongen.IntentScenario}
	for idx, intent := range want {
		if got := svc.StateOf(idx).Intent; got != intent {
			t.Errorf("section %d intent = %v, want %v", idx, got, intent)
		}
	}
}
