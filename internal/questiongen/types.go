// Package questiongen produces checkpoint questions for lesson sections,
// either from an LLM provider or (elsewhere) from the deterministic fallback.
// The Payload type and the validator chain are shared by both sources so a
// single quality bar applies regardless of origin.
package questiongen

// Payload is a checkpoint question ready for display.
type Payload struct {
	// Visual is an optional ASCII diagram shown above the question.
	Visual string

	// Question is the prompt displayed to the learner. Plain ASCII text.
	Question string

	// Options holds 3 or 4 answer choices in display order.
	Options []string

	// CorrectIndex is the index into Options of the correct answer.
	CorrectIndex int

	// Explanation is a short worked justification shown after answering.
	Explanation string
}

// Intent is the pedagogical flavor of a checkpoint question.
type Intent int

const (
	// IntentDefine asks for the meaning of the concept.
	IntentDefine Intent = iota
	// IntentCompute asks for a numeric perimeter from given dimensions.
	IntentCompute
	// IntentScenario wraps the computation in a small word problem.
	IntentScenario
)

// IntentForSection assigns an intent to a section by position, cycling
// define → compute → scenario.
func IntentForSection(sectionIndex int) Intent {
	return Intent(sectionIndex % 3)
}

func (i Intent) String() string {
	switch i {
	case IntentCompute:
		return "compute"
	case IntentScenario:
		return "scenario"
	default:
		return "define"
	}
}

// ParseIntent is the inverse of String. Unknown values map to define.
func ParseIntent(s string) Intent {
	switch s {
	case "compute":
		return IntentCompute
	case "scenario":
		return IntentScenario
	default:
		return IntentDefine
	}
}

// Offset returns the intent-specific seed offset. Distinct per intent so the
// same section never reuses one pseudo-random sequence across intents.
func (i Intent) Offset() uint32 {
	switch i {
	case IntentCompute:
		return 211
	case IntentScenario:
		return 307
	default:
		return 101
	}
}

// Input carries the context needed to generate a checkpoint question.
type Input struct {
	LessonID     string
	LessonTitle  string
	SectionIndex int
	SectionTitle string
	SectionText  string
	Intent       Intent
}
