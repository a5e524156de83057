package questiongen

import (
	"fmt"
	"strings"
)

const systemPrompt = `You are a math tutor writing a single comprehension-check question for a child working through a geometry lesson.

Rules:
- The question must be answerable concretely from the section content provided. Never ask about study habits, strategies, or anything not in the section.
- Use plain ASCII text. No LaTeX, no Unicode math symbols.
- Provide 3 or 4 answer options where exactly one is correct. Distractors should reflect plausible mistakes, not random values.
- The explanation should show why the correct answer is right, in one or two child-friendly sentences.
- Respond with a single JSON object and nothing else, in exactly this shape:
  {"question": "...", "options": ["...", "..."], "correct_index": 0, "explanation": "..."}`

// intentInstructions maps each intent to its generation directive.
var intentInstructions = map[Intent]string{
	IntentDefine:   "Ask what a key term from the section means. The options are candidate definitions.",
	IntentCompute:  "Ask the learner to compute a perimeter using the specific numbers from the section. The options are numeric answers with units.",
	IntentScenario: "Wrap the section's numbers in a short real-world scenario (fencing a garden, walking around a playground) and ask for the total.",
}

// buildUserMessage assembles the generation request for one section.
func buildUserMessage(input Input, cfg Config) string {
	excerpt := input.SectionText
	if cfg.MaxExcerptLen > 0 && len(excerpt) > cfg.MaxExcerptLen {
		excerpt = excerpt[:cfg.MaxExcerptLen]
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Lesson: %s\n", input.LessonTitle)
	fmt.Fprintf(&b, "Section: %s\n", input.SectionTitle)
	fmt.Fprintf(&b, "Question style: %s\n", input.Intent)
	fmt.Fprintf(&b, "Directive: %s\n", intentInstructions[input.Intent])
	b.WriteString("\nSection content:\n")
	b.WriteString(excerpt)
	b.WriteString("\n\nThe question must be answerable from this content alone.")
	return b.String()
}
