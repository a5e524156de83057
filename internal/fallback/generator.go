package fallback

import (
	"fmt"

	"github.com/abhisek/geomiz/internal/questiongen"
	"github.com/abhisek/geomiz/internal/seed"
)

// The canned definition question. This baseline never depends on extraction
// succeeding, so the fallback path as a whole cannot fail.
const (
	definitionCorrect     = "The distance around the outside of a shape"
	definitionExplanation = "Perimeter is the total distance around the outside edge of a shape. You find it by adding up all the side lengths."
)

var definitionQuestions = []string{
	"What is the perimeter of a shape?",
	"What does perimeter measure?",
	"Which of these describes perimeter?",
}

var definitionWrong = []string{
	"The space inside a shape",
	"The number of sides a shape has",
	"The length of the longest side",
}

var computeTemplates = []string{
	"A %s has %s. What is its perimeter?",
	"Find the perimeter of a %s with %s.",
	"What is the total distance around a %s with %s?",
}

var scenarioTemplates = []string{
	"Maya walks all the way around a %s garden with %s. How far does she walk?",
	"A fence goes around a %s yard with %s. How much fencing is needed?",
	"An ant crawls along every edge of a %s tile with %s. How far does it crawl?",
}

// Generate produces a valid checkpoint payload from section text. Pure:
// identical (sectionText, intent, seed) always yields an identical payload.
// CorrectIndex is 0 before the orchestrator's shuffle.
//
// Compute and scenario intents require extracted numeric grounding; without
// it the intent silently downgrades to define. A numeric question is never
// fabricated from ungrounded content.
func Generate(sectionText string, intent questiongen.Intent, s uint32) questiongen.Payload {
	r := seed.New(s)

	facts, ok := Extract(sectionText)
	if intent == questiongen.IntentDefine || !ok {
		return definitionPayload(r)
	}
	return groundedPayload(facts, intent, r)
}

func definitionPayload(r *seed.Rand) questiongen.Payload {
	question := definitionQuestions[r.Intn(len(definitionQuestions))]
	options := append([]string{definitionCorrect}, definitionWrong...)
	return questiongen.Payload{
		Question:     question,
		Options:      options,
		CorrectIndex: 0,
		Explanation:  definitionExplanation,
	}
}

func groundedPayload(facts Facts, intent questiongen.Intent, r *seed.Rand) questiongen.Payload {
	templates := computeTemplates
	if intent == questiongen.IntentScenario {
		templates = scenarioTemplates
	}
	question := fmt.Sprintf(templates[r.Intn(len(templates))], facts.Shape, facts.sidesPhrase())

	options := []string{fmt.Sprintf("%d %s", facts.Total, facts.Unit)}
	for _, wrong := range distractors(facts) {
		options = append(options, fmt.Sprintf("%d %s", wrong, facts.Unit))
	}

	return questiongen.Payload{
		Question:     question,
		Options:      options,
		CorrectIndex: 0,
		Explanation:  fmt.Sprintf("%s = %d %s.", facts.additionPhrase(), facts.Total, facts.Unit),
	}
}

// distractors builds three numerically plausible wrong totals by perturbing
// the real one: a single side instead of the sum, the sum with one side
// dropped, and fixed off-by errors. Values are kept positive and distinct.
func distractors(facts Facts) []int {
	candidates := []int{
		facts.Sides[0],
		facts.Total - facts.Sides[len(facts.Sides)-1],
		facts.Total + 2,
		facts.Total - 2,
		facts.Total + 4,
		facts.Total * 2,
	}

	seen := map[int]bool{facts.Total: true}
	var out []int
	for _, c := range candidates {
		if len(out) == 3 {
			break
		}
		if c > 0 && !seen[c] {
			seen[c] = true
			out = append(out, c)
		}
	}
	// candidates always yields three distinct values for positive sides,
	// but guard anyway.
	for next := facts.Total + 6; len(out) < 3; next += 2 {
		if !seen[next] {
			seen[next] = true
			out = append(out, next)
		}
	}
	return out
}
