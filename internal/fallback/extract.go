// Package fallback is the deterministic, rule-based checkpoint generator used
// when remote generation is unavailable or produces an invalid payload. It is
// a pure function of (section text, intent, seed): same inputs, same payload.
//
// The shape extractor is a narrow, best-effort pattern matcher. Its whole
// grammar:
//
//	shapes: square | rectangle | triangle
//	units:  feet | inches | cm | m (plus common abbreviations)
//	forms:  "N ft tall and M ft wide"
//	        "each side ... N ft" (with a shape word present)
//	        "Perimeter = a+b+...+c = T <unit>"
//
// Content outside this vocabulary yields no facts, and generation degrades to
// a canned definition question rather than risking a wrong numeric answer.
package fallback

import (
	"regexp"
	"strconv"
	"strings"
)

// Shape is one of the three shapes the extractor understands.
type Shape string

const (
	ShapeSquare    Shape = "square"
	ShapeRectangle Shape = "rectangle"
	ShapeTriangle  Shape = "triangle"
)

// Facts is the numeric grounding extracted from a section.
type Facts struct {
	Shape Shape
	Sides []int
	Unit  string
	Total int
}

const unitPattern = `(feet|foot|ft|inches|inch|in|centimeters|centimeter|cm|meters|metres|meter|metre|m)\b`

var (
	rectRe = regexp.MustCompile(`(?i)(\d+)\s*` + unitPattern + `\s+tall\s+and\s+(\d+)\s*` + unitPattern + `\s+wide`)
	eachRe = regexp.MustCompile(`(?i)each side\D{0,20}?(\d+)\s*` + unitPattern)
	eqRe   = regexp.MustCompile(`(?i)perimeter\s*=\s*(\d+(?:\s*\+\s*\d+)+)\s*=\s*(\d+)\s*` + unitPattern)
)

// normalizeUnit folds abbreviations into the four display units.
func normalizeUnit(u string) string {
	switch strings.ToLower(u) {
	case "feet", "foot", "ft":
		return "feet"
	case "inches", "inch", "in":
		return "inches"
	case "centimeters", "centimeter", "cm":
		return "cm"
	default:
		return "m"
	}
}

// shapeWord finds the first shape mentioned in the text.
func shapeWord(lower string) (Shape, bool) {
	best := Shape("")
	bestIdx := -1
	for _, s := range []Shape{ShapeSquare, ShapeRectangle, ShapeTriangle} {
		if idx := strings.Index(lower, string(s)); idx >= 0 && (bestIdx < 0 || idx < bestIdx) {
			best, bestIdx = s, idx
		}
	}
	return best, bestIdx >= 0
}

// Extract pulls a shape descriptor out of section text. Returns false when
// the text carries no usable numeric grounding.
func Extract(text string) (Facts, bool) {
	lower := strings.ToLower(text)

	// Explicit "tall and wide" dimensions always mean a rectangle.
	if m := rectRe.FindStringSubmatch(text); m != nil {
		t, _ := strconv.Atoi(m[1])
		w, _ := strconv.Atoi(m[3])
		if t > 0 && w > 0 {
			return Facts{
				Shape: ShapeRectangle,
				Sides: []int{t, w, t, w},
				Unit:  normalizeUnit(m[2]),
				Total: 2*t + 2*w,
			}, true
		}
	}

	// "each side N" needs a shape word to know how many sides to count.
	if m := eachRe.FindStringSubmatch(text); m != nil {
		if shape, ok := shapeWord(lower); ok {
			n, _ := strconv.Atoi(m[1])
			if n > 0 {
				count := 4
				if shape == ShapeTriangle {
					count = 3
				}
				sides := make([]int, count)
				total := 0
				for i := range sides {
					sides[i] = n
					total += n
				}
				return Facts{Shape: shape, Sides: sides, Unit: normalizeUnit(m[2]), Total: total}, true
			}
		}
	}

	// A written-out addition equation with a stated total.
	if m := eqRe.FindStringSubmatch(text); m != nil {
		var sides []int
		total := 0
		for _, term := range strings.Split(m[1], "+") {
			n, err := strconv.Atoi(strings.TrimSpace(term))
			if err != nil || n <= 0 {
				return Facts{}, false
			}
			sides = append(sides, n)
			total += n
		}
		// The recomputed sum wins over the stated total; a typo in the
		// content must not become a wrong answer.
		shape, ok := shapeFromSides(sides)
		if !ok {
			shape, ok = shapeWord(lower)
			if !ok {
				return Facts{}, false
			}
		}
		return Facts{Shape: shape, Sides: sides, Unit: normalizeUnit(m[3]), Total: total}, true
	}

	return Facts{}, false
}

// shapeFromSides infers the shape from an addition equation's term list.
func shapeFromSides(sides []int) (Shape, bool) {
	switch len(sides) {
	case 3:
		return ShapeTriangle, true
	case 4:
		if sides[0] == sides[1] && sides[1] == sides[2] && sides[2] == sides[3] {
			return ShapeSquare, true
		}
		if sides[0] == sides[2] && sides[1] == sides[3] {
			return ShapeRectangle, true
		}
	}
	return "", false
}

// sidesPhrase renders the side lengths the way a question would say them.
func (f Facts) sidesPhrase() string {
	switch f.Shape {
	case ShapeRectangle:
		return strconv.Itoa(f.Sides[0]) + " " + f.Unit + " tall and " + strconv.Itoa(f.Sides[1]) + " " + f.Unit + " wide"
	default:
		return "each side " + strconv.Itoa(f.Sides[0]) + " " + f.Unit
	}
}

// additionPhrase renders "3 + 3 + 3 + 3".
func (f Facts) additionPhrase() string {
	parts := make([]string, len(f.Sides))
	for i, s := range f.Sides {
		parts[i] = strconv.Itoa(s)
	}
	return strings.Join(parts, " + ")
}
