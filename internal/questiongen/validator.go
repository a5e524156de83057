package questiongen

import (
	"fmt"
	"strings"
)

// Validator checks a candidate payload for acceptability.
// Implementations are stateless and safe for concurrent use.
type Validator interface {
	// Name returns a short identifier for error messages and logging.
	Name() string

	// Validate returns nil if the payload passes this check.
	Validate(p *Payload, intent Intent) *ValidationError
}

// ValidationError describes why a payload was rejected.
type ValidationError struct {
	Validator string
	Message   string
	Retryable bool
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validator %q: %s", e.Validator, e.Message)
}

// DefaultValidators returns the standard chain, in order.
func DefaultValidators() []Validator {
	return []Validator{
		&StructuralValidator{},
		&ContentValidator{},
		&ComputeDigitValidator{},
	}
}

// Check runs the default validator chain and returns the first failure.
func Check(p *Payload, intent Intent) *ValidationError {
	for _, v := range DefaultValidators() {
		if err := v.Validate(p, intent); err != nil {
			return err
		}
	}
	return nil
}

// StructuralValidator checks required fields, option count, and index range.
type StructuralValidator struct{}

func (v *StructuralValidator) Name() string { return "structural" }

func (v *StructuralValidator) Validate(p *Payload, _ Intent) *ValidationError {
	if strings.TrimSpace(p.Question) == "" {
		return &ValidationError{Validator: v.Name(), Message: "question is empty", Retryable: true}
	}
	if len(p.Options) < 3 || len(p.Options) > 4 {
		return &ValidationError{
			Validator: v.Name(),
			Message:   fmt.Sprintf("need 3 or 4 options, got %d", len(p.Options)),
			Retryable: true,
		}
	}
	if p.CorrectIndex < 0 || p.CorrectIndex >= len(p.Options) {
		return &ValidationError{
			Validator: v.Name(),
			Message:   fmt.Sprintf("correct index %d out of range", p.CorrectIndex),
			Retryable: true,
		}
	}
	if strings.TrimSpace(p.Explanation) == "" {
		return &ValidationError{Validator: v.Name(), Message: "explanation is empty", Retryable: true}
	}
	return nil
}

// bannedPhrases are generic-coaching patterns. A checkpoint must test the
// section's content, not offer study advice.
var bannedPhrases = []string{
	"study strateg",
	"ask a teacher",
	"ask your teacher",
	"memorize",
	"memorise",
	"use a calculator",
	"take good notes",
	"study harder",
}

// ContentValidator rejects meta-advice masquerading as a question.
type ContentValidator struct{}

func (v *ContentValidator) Name() string { return "content" }

func (v *ContentValidator) Validate(p *Payload, _ Intent) *ValidationError {
	texts := append([]string{p.Question, p.Explanation}, p.Options...)
	for _, text := range texts {
		lower := strings.ToLower(text)
		for _, banned := range bannedPhrases {
			if strings.Contains(lower, banned) {
				return &ValidationError{
					Validator: v.Name(),
					Message:   fmt.Sprintf("generic coaching content: %q", banned),
					Retryable: true,
				}
			}
		}
	}
	return nil
}

// ComputeDigitValidator requires numeric substance in compute questions.
// A compute checkpoint with no digits anywhere cannot be answerable.
type ComputeDigitValidator struct{}

func (v *ComputeDigitValidator) Name() string { return "compute-digit" }

func (v *ComputeDigitValidator) Validate(p *Payload, intent Intent) *ValidationError {
	if intent != IntentCompute {
		return nil
	}
	combined := p.Question + strings.Join(p.Options, " ")
	for _, r := range combined {
		if r >= '0' && r <= '9' {
			return nil
		}
	}
	return &ValidationError{
		Validator: v.Name(),
		Message:   "compute question contains no digits",
		Retryable: true,
	}
}
