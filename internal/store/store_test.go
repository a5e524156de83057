package store

import (
	"context"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so we skip journal_mode here. It is tested with file-based DBs.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestSequenceCounter(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	var seqs []int64
	for i := 0; i < 5; i++ {
		seq, err := s.seq.Next(ctx)
		if err != nil {
			t.Fatalf("next %d: %v", i, err)
		}
		seqs = append(seqs, seq)
	}

	// Should be monotonically increasing starting from 1.
	for i, seq := range seqs {
		expected := int64(i + 1)
		if seq != expected {
			t.Errorf("seq[%d] = %d, want %d", i, seq, expected)
		}
	}
}

func TestSequenceSharedAcrossEventTypes(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	if err := repo.AppendPhaseEvent(ctx, PhaseEventData{
		SessionID: "sess-1", LessonID: "perimeter-intro", Phase: "welcome",
	}); err != nil {
		t.Fatalf("append phase: %v", err)
	}
	if err := repo.AppendAnswerEvent(ctx, AnswerEventData{
		SessionID: "sess-1", LessonID: "perimeter-intro", Intent: "compute",
		OptionIndex: 1, Correct: true, Attempt: 1,
	}); err != nil {
		t.Fatalf("append answer: %v", err)
	}

	// Two events of different types consumed two sequence numbers.
	next, err := s.seq.Next(ctx)
	if err != nil {
		t.Fatalf("next: %v", err)
	}
	if next != 3 {
		t.Errorf("next sequence = %d, want 3", next)
	}
}

func TestLatestPhase(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	ps, err := repo.LatestPhase(ctx, "perimeter-intro")
	if err != nil {
		t.Fatalf("latest phase (empty): %v", err)
	}
	if ps != nil {
		t.Fatal("expected nil phase state for unopened lesson")
	}

	phases := []PhaseEventData{
		{SessionID: "sess-1", LessonID: "perimeter-intro", Phase: "welcome"},
		{SessionID: "sess-1", LessonID: "perimeter-intro", Phase: "learn", SectionIndex: 0},
		{SessionID: "sess-1", LessonID: "perimeter-intro", Phase: "learn", SectionIndex: 2},
	}
	for i, p := range phases {
		if err := repo.AppendPhaseEvent(ctx, p); err != nil {
			t.Fatalf("append %d: %v", i, err)
		}
	}

	ps, err = repo.LatestPhase(ctx, "perimeter-intro")
	if err != nil {
		t.Fatalf("latest phase: %v", err)
	}
	if ps == nil {
		t.Fatal("expected phase state")
	}
	if ps.Phase != "learn" || ps.SectionIndex != 2 {
		t.Errorf("latest = %s/%d, want learn/2", ps.Phase, ps.SectionIndex)
	}
}

func TestLessonStats(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	events := []AnswerEventData{
		{SessionID: "s1", LessonID: "perimeter-intro", SectionIndex: 0, Intent: "define", OptionIndex: 0, Correct: true, Attempt: 1},
		{SessionID: "s1", LessonID: "perimeter-intro", SectionIndex: 1, Intent: "compute", OptionIndex: 2, Correct: false, Attempt: 1},
		{SessionID: "s1", LessonID: "perimeter-intro", SectionIndex: 1, Intent: "compute", OptionIndex: 1, Correct: true, Attempt: 2},
	}
	for i, e := range events {
		if err := repo.AppendAnswerEvent(ctx, e); err != nil {
			t.Fatalf("append answer %d: %v", i, err)
		}
	}
	if err := repo.AppendCheckpointEvent(ctx, CheckpointEventData{
		SessionID: "s1", LessonID: "perimeter-intro", SectionIndex: 0,
		Intent: "define", Source: "ai",
	}); err != nil {
		t.Fatalf("append checkpoint: %v", err)
	}
	if err := repo.AppendCheckpointEvent(ctx, CheckpointEventData{
		SessionID: "s1", LessonID: "perimeter-intro", SectionIndex: 1,
		Intent: "compute", Source: "fallback", Reason: "assistant_unavailable",
	}); err != nil {
		t.Fatalf("append checkpoint: %v", err)
	}
	if err := repo.AppendRemediationEvent(ctx, RemediationEventData{
		SessionID: "s1", LessonID: "perimeter-intro", SectionIndex: 1,
		Action: "shown", OptionIndex: -1,
	}); err != nil {
		t.Fatalf("append remediation: %v", err)
	}

	stats, err := repo.LessonStatsFor(ctx, "perimeter-intro")
	if err != nil {
		t.Fatalf("lesson stats: %v", err)
	}
	if len(stats) != 1 {
		t.Fatalf("stats entries = %d, want 1", len(stats))
	}
	st := stats[0]
	if st.Answers != 3 || st.Correct != 2 {
		t.Errorf("answers/correct = %d/%d, want 3/2", st.Answers, st.Correct)
	}
	if st.FirstTryPasses != 1 {
		t.Errorf("first-try passes = %d, want 1", st.FirstTryPasses)
	}
	if st.AIServed != 1 || st.FallbackServed != 1 {
		t.Errorf("ai/fallback = %d/%d, want 1/1", st.AIServed, st.FallbackServed)
	}
	if st.Remediations != 1 {
		t.Errorf("remediations = %d, want 1", st.Remediations)
	}
}

func TestLLMEventRoundTrip(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	err := repo.AppendLLMRequest(ctx, LLMRequestEventData{
		Provider:     "anthropic",
		Model:        "claude-haiku",
		Purpose:      "checkpoint-gen",
		InputTokens:  120,
		OutputTokens: 80,
		LatencyMs:    640,
		Success:      true,
		RequestBody:  "[user]\nWrite a checkpoint question.",
		ResponseBody: `{"question":"?"}`,
	})
	if err != nil {
		t.Fatalf("append: %v", err)
	}

	events, err := repo.QueryLLMEvents(ctx, QueryOpts{Limit: 10})
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(events) != 1 {
		t.Fatalf("events = %d, want 1", len(events))
	}
	e := events[0]
	if e.Purpose != "checkpoint-gen" || e.InputTokens != 120 {
		t.Errorf("event = %+v", e)
	}

	got, err := repo.GetLLMEvent(ctx, e.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got == nil || got.RequestBody == "" || got.ResponseBody == "" {
		t.Errorf("get = %+v, want bodies captured", got)
	}

	missing, err := repo.GetLLMEvent(ctx, 9999)
	if err != nil {
		t.Fatalf("get missing: %v", err)
	}
	if missing != nil {
		t.Error("expected nil for unknown ID")
	}
}

func TestLLMUsageAggregation(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		err := repo.AppendLLMRequest(ctx, LLMRequestEventData{
			Provider: "anthropic", Model: "claude-haiku", Purpose: "checkpoint-gen",
			InputTokens: 100, OutputTokens: 50, LatencyMs: 300, Success: true,
		})
		if err != nil {
			t.Fatalf("append %d: %v", i, err)
		}
	}

	byPurpose, err := repo.LLMUsageByPurpose(ctx)
	if err != nil {
		t.Fatalf("usage by purpose: %v", err)
	}
	if len(byPurpose) != 1 || byPurpose[0].Calls != 3 || byPurpose[0].InputTokens != 300 {
		t.Errorf("usage = %+v", byPurpose)
	}
	if byPurpose[0].AvgLatencyMs != 300 {
		t.Errorf("avg latency = %d, want 300", byPurpose[0].AvgLatencyMs)
	}

	byModel, err := repo.LLMUsageByModel(ctx)
	if err != nil {
		t.Fatalf("usage by model: %v", err)
	}
	if len(byModel) != 1 || byModel[0].OutputTokens != 150 {
		t.Errorf("model usage = %+v", byModel)
	}
}

func TestCacheRepo(t *testing.T) {
	s := openTestStore(t)
	repo := s.CacheRepo()
	ctx := context.Background()

	_, ok, err := repo.Get(ctx, "checkpoint/perimeter-intro/0/define")
	if err != nil {
		t.Fatalf("get (empty): %v", err)
	}
	if ok {
		t.Fatal("expected miss on empty cache")
	}

	if err := repo.Put(ctx, "checkpoint/perimeter-intro/0/define", `{"v":1}`); err != nil {
		t.Fatalf("put: %v", err)
	}
	v, ok, err := repo.Get(ctx, "checkpoint/perimeter-intro/0/define")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if !ok || v != `{"v":1}` {
		t.Errorf("get = %q ok=%v", v, ok)
	}

	// Put on an existing key overwrites.
	if err := repo.Put(ctx, "checkpoint/perimeter-intro/0/define", `{"v":2}`); err != nil {
		t.Fatalf("put (overwrite): %v", err)
	}
	v, _, _ = repo.Get(ctx, "checkpoint/perimeter-intro/0/define")
	if v != `{"v":2}` {
		t.Errorf("after overwrite = %q, want {\"v\":2}", v)
	}

	n, err := repo.Purge(ctx)
	if err != nil {
		t.Fatalf("purge: %v", err)
	}
	if n != 1 {
		t.Errorf("purged = %d, want 1", n)
	}
}
