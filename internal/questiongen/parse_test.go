package questiongen

import "testing"

func TestExtractJSONObject(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  string
		ok    bool
	}{
		{
			"bare object",
			`{"question":"q"}`,
			`{"question":"q"}`,
			true,
		},
		{
			"conversational wrapping",
			"Sure! Here is your question:\n```json\n{\"question\":\"q\"}\n```\nHope that helps.",
			`{"question":"q"}`,
			true,
		},
		{
			"nested braces",
			`prefix {"a": {"b": 1}} suffix`,
			`{"a": {"b": 1}}`,
			true,
		},
		{
			"braces inside strings",
			`{"question": "which is {correct}?", "n": 1}`,
			`{"question": "which is {correct}?", "n": 1}`,
			true,
		},
		{
			"escaped quote in string",
			`{"q": "she said \"hi\" {"}`,
			`{"q": "she said \"hi\" {"}`,
			true,
		},
		{"no object", "no json here", "", false},
		{"unbalanced", `{"q": "never closes"`, "", false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := ExtractJSONObject(tc.input)
			if ok != tc.ok {
				t.Fatalf("ok = %v, want %v", ok, tc.ok)
			}
			if got != tc.want {
				t.Errorf("got %q, want %q", got, tc.want)
			}
		})
	}
}

func TestDecodePayload(t *testing.T) {
	raw := `{"question": " What is perimeter? ", "options": ["a", "b", "c"], "correct_index": 2, "explanation": "because"}`
	p, err := DecodePayload(raw)
	if err != nil {
		t.Fatalf("DecodePayload: %v", err)
	}
	if p.Question != "What is perimeter?" {
		t.Errorf("question = %q", p.Question)
	}
	if len(p.Options) != 3 || p.Options[2] != "c" {
		t.Errorf("options = %v", p.Options)
	}
	if p.CorrectIndex != 2 {
		t.Errorf("correctIndex = %d", p.CorrectIndex)
	}
}

func TestDecodePayload_AlternateSpellings(t *testing.T) {
	raw := `{"question_text": "q", "options": ["a","b","c"], "correctIndex": "1", "explanation": "e"}`
	p, err := DecodePayload(raw)
	if err != nil {
		t.Fatalf("DecodePayload: %v", err)
	}
	if p.Question != "q" || p.CorrectIndex != 1 {
		t.Errorf("coercion failed: %+v", p)
	}
}

func TestDecodePayload_MissingIndex(t *testing.T) {
	p, err := DecodePayload(`{"question": "q", "options": ["a","b","c"], "explanation": "e"}`)
	if err != nil {
		t.Fatalf("DecodePayload: %v", err)
	}
	// Missing index coerces to -1 and fails the structural validator.
	if p.CorrectIndex != -1 {
		t.Errorf("correctIndex = %d, want -1", p.CorrectIndex)
	}
	if Check(p, IntentDefine) == nil {
		t.Error("payload without index must fail validation")
	}
}

func TestDecodePayload_BadJSON(t *testing.T) {
	if _, err := DecodePayload(`{"question": `); err == nil {
		t.Error("expected parse error")
	}
}
