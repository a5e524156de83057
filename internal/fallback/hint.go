package fallback

import (
	"fmt"

	"github.com/abhisek/geomiz/internal/questiongen"
)

// Hint derives a no-network hint from the intent and whatever shape facts
// the section text yields. Available the moment a checkpoint is ready.
func Hint(sectionText string, intent questiongen.Intent) string {
	facts, ok := Extract(sectionText)
	if intent == questiongen.IntentDefine || !ok {
		return "Think about walking around the outside edge of a shape. Perimeter is that total distance."
	}
	return fmt.Sprintf(
		"A %s has %d sides. Add each side length once, all the way around.",
		facts.Shape, len(facts.Sides),
	)
}
