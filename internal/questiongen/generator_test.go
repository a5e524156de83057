package questiongen

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/abhisek/geomiz/internal/llm"
)

func testInput() Input {
	return Input{
		LessonID:     "perimeter",
		LessonTitle:  "Perimeter",
		SectionIndex: 1,
		SectionTitle: "Perimeter of a square",
		SectionText:  "A square has each side 3 feet.",
		Intent:       IntentCompute,
	}
}

func TestGenerate_ParsesWrappedJSON(t *testing.T) {
	body := `Here you go! {"question": "What is the perimeter?", "options": ["12 feet", "9 feet", "6 feet"], "correct_index": 0, "explanation": "3 + 3 + 3 + 3 = 12 feet."}`
	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(body)})

	gen := New(mock, DefaultConfig())
	p, err := gen.Generate(context.Background(), testInput())
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if p.Question != "What is the perimeter?" {
		t.Errorf("question = %q", p.Question)
	}
	if p.CorrectIndex != 0 || len(p.Options) != 3 {
		t.Errorf("payload = %+v", p)
	}
}

func TestGenerate_PromptCarriesSectionAndIntent(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`{"question":"q","options":["a","b","c"],"correct_index":0,"explanation":"e"}`),
	})

	gen := New(mock, DefaultConfig())
	if _, err := gen.Generate(context.Background(), testInput()); err != nil {
		t.Fatalf("Generate: %v", err)
	}

	if len(mock.Calls) != 1 {
		t.Fatalf("calls = %d, want 1", len(mock.Calls))
	}
	msg := mock.Calls[0].Messages[0].Content
	if !strings.Contains(msg, "each side 3 feet") {
		t.Error("section excerpt missing from prompt")
	}
	if !strings.Contains(msg, "compute") {
		t.Error("intent missing from prompt")
	}
	if mock.Calls[0].Schema == nil {
		t.Error("payload schema should be attached to the request")
	}
}

func TestGenerate_ProviderError(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Err: &llm.ErrProviderUnavailable{}})
	gen := New(mock, DefaultConfig())
	if _, err := gen.Generate(context.Background(), testInput()); err == nil {
		t.Error("expected error from failing provider")
	}
}

func TestGenerate_NoJSONInResponse(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(`"just some prose"`)})
	gen := New(mock, DefaultConfig())
	if _, err := gen.Generate(context.Background(), testInput()); err == nil {
		t.Error("expected error when response has no JSON object")
	}
}

func TestIntentForSection_Cycles(t *testing.T) {
	want := []Intent{IntentDefine, IntentCompute, IntentScenario, IntentDefine, IntentCompute}
	for i, w := range want {
		if got := IntentForSection(i); got != w {
			t.Errorf("section %d: intent = %v, want %v", i, got, w)
		}
	}
}

func TestIntent_RoundTrip(t *testing.T) {
	for _, in := range []Intent{IntentDefine, IntentCompute, IntentScenario} {
		if ParseIntent(in.String()) != in {
			t.Errorf("round trip failed for %v", in)
		}
	}
	if ParseIntent("garbage") != IntentDefine {
		t.Error("unknown intent should parse as define")
	}
}

func TestIntent_OffsetsDistinct(t *testing.T) {
	seen := map[uint32]Intent{}
	for _, in := range []Intent{IntentDefine, IntentCompute, IntentScenario} {
		off := in.Offset()
		if prev, dup := seen[off]; dup {
			t.Errorf("intents %v and %v share offset %d", prev, in, off)
		}
		seen[off] = in
	}
}
