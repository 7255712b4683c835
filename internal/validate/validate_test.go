package validate

import (
	"errors"
	"testing"
)

func TestNumberValid(t *testing.T) {
	v := New(1000)

	tests := []struct {
		input string
		want  float64
	}{
		{"42", 42},
		{"-17.5", -17.5},
		{"3.14159", 3.14159},
		{"1e2", 100},
		{"0", 0},
	}
	for _, tt := range tests {
		got, err := v.Number(tt.input)
		if err != nil {
			t.Errorf("Number(%q) failed: %v", tt.input, err)
			continue
		}
		if got != tt.want {
			t.Errorf("Number(%q) = %g, want %g", tt.input, got, tt.want)
		}
	}
}

func TestNumberInvalid(t *testing.T) {
	v := New(1000)

	for _, input := range []string{"", "abc", "1.2.3", "12x", " 5"} {
		_, err := v.Number(input)
		if !errors.Is(err, ErrNotANumber) {
			t.Errorf("Number(%q) error = %v, want ErrNotANumber", input, err)
		}
	}
}

func TestNumberExceedsLimit(t *testing.T) {
	v := New(1000)

	for _, input := range []string{"1001", "-1001", "1e10"} {
		_, err := v.Number(input)
		if !errors.Is(err, ErrExceedsLimit) {
			t.Errorf("Number(%q) error = %v, want ErrExceedsLimit", input, err)
		}
	}

	// The bound itself is allowed.
	if _, err := v.Number("1000"); err != nil {
		t.Errorf("Number(1000) failed: %v", err)
	}
	if _, err := v.Number("-1000"); err != nil {
		t.Errorf("Number(-1000) failed: %v", err)
	}
}

func TestPairFirstFailureWins(t *testing.T) {
	v := New(1000)

	a, b, err := v.Pair("5", "3")
	if err != nil {
		t.Fatalf("Pair(5, 3) failed: %v", err)
	}
	if a != 5 || b != 3 {
		t.Errorf("Pair(5, 3) = (%g, %g)", a, b)
	}

	_, _, err = v.Pair("bogus", "also-bogus")
	var vErr *Error
	if !errors.As(err, &vErr) {
		t.Fatalf("Pair error type = %T, want *Error", err)
	}
	if vErr.Input != "bogus" {
		t.Errorf("Pair surfaced input %q, want first failure %q", vErr.Input, "bogus")
	}

	if _, _, err := v.Pair("5", "nope"); !errors.Is(err, ErrNotANumber) {
		t.Errorf("Pair(5, nope) error = %v, want ErrNotANumber", err)
	}
}

func TestNewFallsBackToDefault(t *testing.T) {
	v := New(0)
	if v.MaxInput() != DefaultMaxInput {
		t.Errorf("MaxInput() = %g, want %g", v.MaxInput(), DefaultMaxInput)
	}
	if _, err := v.Number("1e300"); err != nil {
		t.Errorf("Number(1e300) failed under default bound: %v", err)
	}
}
