package fallback

import (
	"reflect"
	"strings"
	"testing"

	"github.com/abhisek/geomiz/internal/questiongen"
)

func TestGenerate_SquareCompute(t *testing.T) {
	p := Generate("A square has each side 3 feet.", questiongen.IntentCompute, 42)

	if p.CorrectIndex != 0 {
		t.Errorf("pre-shuffle correctIndex = %d, want 0", p.CorrectIndex)
	}
	if p.Options[0] != "12 feet" {
		t.Errorf("correct option = %q, want %q", p.Options[0], "12 feet")
	}
	if p.Explanation != "3 + 3 + 3 + 3 = 12 feet." {
		t.Errorf("explanation = %q", p.Explanation)
	}
	if err := questiongen.Check(&p, questiongen.IntentCompute); err != nil {
		t.Errorf("generated payload fails validation: %v", err)
	}
}

func TestGenerate_DowngradesWithoutGrounding(t *testing.T) {
	text := "Imagine walking around the edge of a playground and counting your steps."
	p := Generate(text, questiongen.IntentScenario, 7)

	if p.Options[0] != "The distance around the outside of a shape" {
		t.Errorf("correct option = %q, want the canned definition", p.Options[0])
	}
	if len(p.Options) != 4 {
		t.Errorf("options = %d, want 4", len(p.Options))
	}
	if err := questiongen.Check(&p, questiongen.IntentDefine); err != nil {
		t.Errorf("canned payload fails validation: %v", err)
	}
}

func TestGenerate_DefineIgnoresGrounding(t *testing.T) {
	p := Generate("A square has each side 3 feet.", questiongen.IntentDefine, 3)
	if p.Options[0] != "The distance around the outside of a shape" {
		t.Errorf("define intent should use the canned definition, got %q", p.Options[0])
	}
}

func TestGenerate_Deterministic(t *testing.T) {
	text := "A rectangle is 4 ft tall and 6 ft wide."
	for _, intent := range []questiongen.Intent{questiongen.IntentDefine, questiongen.IntentCompute, questiongen.IntentScenario} {
		for _, s := range []uint32{0, 1, 99, 4096} {
			a := Generate(text, intent, s)
			b := Generate(text, intent, s)
			if !reflect.DeepEqual(a, b) {
				t.Errorf("intent %v seed %d: payloads differ", intent, s)
			}
		}
	}
}

func TestGenerate_SeedVariesTemplates(t *testing.T) {
	text := "A square has each side 3 feet."
	seen := map[string]bool{}
	for s := uint32(0); s < 16; s++ {
		seen[Generate(text, questiongen.IntentCompute, s).Question] = true
	}
	if len(seen) < 2 {
		t.Error("seed should select among question templates")
	}
}

func TestGenerate_DistractorsDistinct(t *testing.T) {
	texts := []string{
		"A square has each side 3 feet.",
		"A rectangle is 4 ft tall and 6 ft wide.",
		"A triangle has each side 5 cm.",
		"A garden is 8 ft tall and 10 ft wide.",
	}
	for _, text := range texts {
		p := Generate(text, questiongen.IntentCompute, 11)
		seen := map[string]bool{}
		for _, o := range p.Options {
			if seen[o] {
				t.Errorf("%q: duplicate option %q", text, o)
			}
			seen[o] = true
		}
		if len(p.Options) != 4 {
			t.Errorf("%q: options = %d, want 4", text, len(p.Options))
		}
	}
}

func TestGenerate_ScenarioPhrasing(t *testing.T) {
	p := Generate("A square has each side 3 feet.", questiongen.IntentScenario, 5)
	if p.Options[0] != "12 feet" {
		t.Errorf("scenario correct option = %q, want %q", p.Options[0], "12 feet")
	}
	if strings.Contains(p.Question, "What is its perimeter?") {
		t.Error("scenario should use a scenario template, not a compute one")
	}
}

func TestHint(t *testing.T) {
	h := Hint("A square has each side 3 feet.", questiongen.IntentCompute)
	if !strings.Contains(h, "square") || !strings.Contains(h, "4 sides") {
		t.Errorf("hint = %q", h)
	}

	h = Hint("no numbers here", questiongen.IntentCompute)
	if !strings.Contains(h, "distance") {
		t.Errorf("ungrounded hint = %q", h)
	}

	h = Hint("A square has each side 3 feet.", questiongen.IntentDefine)
	if strings.Contains(h, "4 sides") {
		t.Error("define hint should not reference extracted sides")
	}
}

func TestReview(t *testing.T) {
	p := Review("A triangle has each side 5 cm.")
	if len(p.Options) != 2 {
		t.Fatalf("review options = %d, want 2", len(p.Options))
	}
	if p.CorrectIndex != 0 {
		t.Errorf("review correctIndex = %d", p.CorrectIndex)
	}
	if !strings.Contains(p.Question, "triangle") {
		t.Errorf("review question = %q", p.Question)
	}
	if !strings.Contains(p.Explanation, "5 + 5 + 5 = 15 cm") {
		t.Errorf("review explanation = %q", p.Explanation)
	}

	p = Review("nothing to extract")
	if len(p.Options) != 2 || p.CorrectIndex != 0 {
		t.Errorf("ungrounded review = %+v", p)
	}
}
