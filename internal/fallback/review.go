package fallback

import (
	"fmt"

	"github.com/abhisek/geomiz/internal/questiongen"
)

// Review builds the simplified two-option question shown after repeated
// checkpoint misses. Two options on purpose: below the shuffle floor, so
// its order is stable, and easy enough to rebuild confidence.
func Review(sectionText string) questiongen.Payload {
	facts, ok := Extract(sectionText)
	if !ok {
		return questiongen.Payload{
			Question:     "Quick review: what does perimeter measure?",
			Options:      []string{"The distance around the outside of a shape", "The space inside a shape"},
			CorrectIndex: 0,
			Explanation:  "Perimeter is the total length of all the sides, the distance around the outside.",
		}
	}
	return questiongen.Payload{
		Question: fmt.Sprintf(
			"Quick review: to find the perimeter of the %s, what do you do with its side lengths?",
			facts.Shape,
		),
		Options:      []string{"Add them all together", "Multiply them all together"},
		CorrectIndex: 0,
		Explanation: fmt.Sprintf(
			"Perimeter adds every side once: %s = %d %s.",
			facts.additionPhrase(), facts.Total, facts.Unit,
		),
	}
}
