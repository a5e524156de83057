package questiongen

import "testing"

func validPayload() *Payload {
	return &Payload{
		Question:     "What is the perimeter of a square with 3 ft sides?",
		Options:      []string{"12 feet", "9 feet", "6 feet", "3 feet"},
		CorrectIndex: 0,
		Explanation:  "3 + 3 + 3 + 3 = 12 feet.",
	}
}

func TestCheck_AcceptsValid(t *testing.T) {
	if err := Check(validPayload(), IntentCompute); err != nil {
		t.Errorf("valid payload rejected: %v", err)
	}
}

func TestStructural_Rejections(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Payload)
	}{
		{"empty question", func(p *Payload) { p.Question = "   " }},
		{"too few options", func(p *Payload) { p.Options = p.Options[:2] }},
		{"too many options", func(p *Payload) { p.Options = append(p.Options, "20 feet", "1 foot") }},
		{"negative index", func(p *Payload) { p.CorrectIndex = -1 }},
		{"index too large", func(p *Payload) { p.CorrectIndex = 4 }},
		{"empty explanation", func(p *Payload) { p.Explanation = "" }},
	}
	v := &StructuralValidator{}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := validPayload()
			tc.mutate(p)
			if v.Validate(p, IntentDefine) == nil {
				t.Error("expected rejection")
			}
		})
	}
}

func TestStructural_ThreeOptionsOK(t *testing.T) {
	p := validPayload()
	p.Options = p.Options[:3]
	if err := (&StructuralValidator{}).Validate(p, IntentDefine); err != nil {
		t.Errorf("3 options should be accepted: %v", err)
	}
}

func TestContent_RejectsGenericCoaching(t *testing.T) {
	v := &ContentValidator{}
	for _, banned := range []string{
		"A good study strategy is reviewing daily.",
		"You should Ask a Teacher for help.",
		"Just memorize the formula.",
		"Use a calculator to find the answer.",
	} {
		p := validPayload()
		p.Question = banned
		if v.Validate(p, IntentDefine) == nil {
			t.Errorf("expected rejection of %q", banned)
		}
	}
}

func TestContent_ChecksOptionsAndExplanation(t *testing.T) {
	v := &ContentValidator{}

	p := validPayload()
	p.Options[2] = "ask your teacher"
	if v.Validate(p, IntentDefine) == nil {
		t.Error("banned phrase in option should be rejected")
	}

	p = validPayload()
	p.Explanation = "Memorize this rule."
	if v.Validate(p, IntentDefine) == nil {
		t.Error("banned phrase in explanation should be rejected")
	}
}

func TestComputeDigit_RequiresDigits(t *testing.T) {
	v := &ComputeDigitValidator{}

	p := &Payload{
		Question:     "Which is bigger?",
		Options:      []string{"the square", "the circle", "the triangle"},
		CorrectIndex: 0,
		Explanation:  "Because.",
	}
	if v.Validate(p, IntentCompute) == nil {
		t.Error("digitless compute payload should be rejected")
	}
	if v.Validate(p, IntentDefine) != nil {
		t.Error("digit rule must not apply to define intent")
	}

	// A digit only in the options satisfies the rule.
	p.Options[0] = "4 sides"
	if err := v.Validate(p, IntentCompute); err != nil {
		t.Errorf("digit in options should satisfy the rule: %v", err)
	}
}

func TestValidationError_Error(t *testing.T) {
	err := &ValidationError{Validator: "structural", Message: "question is empty", Retryable: true}
	want := `validator "structural": question is empty`
	if err.Error() != want {
		t.Errorf("got %q, want %q", err.Error(), want)
	}
}
