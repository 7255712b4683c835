// Package validate parses and range-checks textual operands.
package validate

import (
	"math"
	"strconv"
)

// DefaultMaxInput is the bound applied when none is configured.
const DefaultMaxInput = 1e308

// Validator checks operand text against a configured magnitude bound.
type Validator struct {
	maxInput float64
}

// New creates a Validator with the given bound.
// Non-positive bounds fall back to DefaultMaxInput.
func New(maxInput float64) *Validator {
	if maxInput <= 0 {
		maxInput = DefaultMaxInput
	}
	return &Validator{maxInput: maxInput}
}

// MaxInput returns the configured bound.
func (v *Validator) MaxInput() float64 {
	return v.maxInput
}

// Number parses text as a float64 and rejects values whose magnitude
// exceeds the configured bound.
func (v *Validator) Number(text string) (float64, error) {
	n, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return 0, &Error{Input: text, Err: ErrNotANumber}
	}
	if math.Abs(n) > v.maxInput {
		return 0, &Error{Input: text, Limit: v.maxInput, Err: ErrExceedsLimit}
	}
	return n, nil
}

// Pair validates both operands independently and surfaces the first failure.
func (v *Validator) Pair(aText, bText string) (float64, float64, error) {
	a, err := v.Number(aText)
	if err != nil {
		return 0, 0, err
	}
	b, err := v.Number(bText)
	if err != nil {
		return 0, 0, err
	}
	return a, b, nil
}
