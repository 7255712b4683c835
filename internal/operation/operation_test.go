package operation

import (
	"errors"
	"math"
	"strings"
	"testing"
)

const epsilon = 1e-9

func mustResolve(t *testing.T, name string) Func {
	t.Helper()
	fn, err := Resolve(name)
	if err != nil {
		t.Fatalf("Resolve(%q) failed: %v", name, err)
	}
	return fn
}

func TestOperationResults(t *testing.T) {
	tests := []struct {
		op   string
		a, b float64
		want float64
	}{
		{Add, 5, 3, 8},
		{Add, -5, 3, -2},
		{Subtract, 10, 4, 6},
		{Multiply, 5, 0, 0},
		{Multiply, -3, 4, -12},
		{Divide, 7, 2, 3.5},
		{Divide, -10, 4, -2.5},
		{Power, 2, -2, 0.25},
		{Power, 2, 10, 1024},
		{Power, 9, 0.5, 3},
		{Root, 16, 2, 4},
		{Root, -27, 3, -3},
		{Root, 8, 3, 2},
		{Modulus, 10, 3, 1},
		{Modulus, 10.5, 3, 1.5},
		{IntDivide, 10, 3, 3},
		{IntDivide, -10, 3, -4},
		{Percent, 1, 4, 25},
		{Percent, 50, 200, 25},
		{AbsDiff, -10, -5, 5},
		{AbsDiff, 3, 8, 5},
		{AbsDiff, 4, 4, 0},
	}

	for _, tt := range tests {
		fn := mustResolve(t, tt.op)
		got, err := fn(tt.a, tt.b)
		if err != nil {
			t.Errorf("%s(%g, %g) failed: %v", tt.op, tt.a, tt.b, err)
			continue
		}
		if math.Abs(got-tt.want) > epsilon {
			t.Errorf("%s(%g, %g) = %g, want %g", tt.op, tt.a, tt.b, got, tt.want)
		}
	}
}

func TestZeroDenominators(t *testing.T) {
	for _, op := range []string{Divide, Modulus, IntDivide, Percent} {
		fn := mustResolve(t, op)
		_, err := fn(7, 0)
		if !errors.Is(err, ErrDivisionByZero) {
			t.Errorf("%s(7, 0) error = %v, want ErrDivisionByZero", op, err)
		}
	}
}

func TestAbsDiffNeverFails(t *testing.T) {
	fn := mustResolve(t, AbsDiff)
	for _, pair := range [][2]float64{{0, 0}, {-5, 0}, {1e300, -1e300}} {
		if _, err := fn(pair[0], pair[1]); err != nil {
			t.Errorf("abs_diff(%g, %g) failed: %v", pair[0], pair[1], err)
		}
	}
}

func TestRootErrors(t *testing.T) {
	fn := mustResolve(t, Root)

	if _, err := fn(16, 0); !errors.Is(err, ErrZerothRoot) {
		t.Errorf("root(16, 0) error = %v, want ErrZerothRoot", err)
	}
	if _, err := fn(-16, 2); !errors.Is(err, ErrEvenRootOfNegative) {
		t.Errorf("root(-16, 2) error = %v, want ErrEvenRootOfNegative", err)
	}
	// 1/b overflows the zero base.
	if _, err := fn(0, -1); !errors.Is(err, ErrNonFiniteResult) {
		t.Errorf("root(0, -1) error = %v, want ErrNonFiniteResult", err)
	}
}

func TestPowerNonFinite(t *testing.T) {
	fn := mustResolve(t, Power)

	// Negative base with fractional exponent has no real result.
	if _, err := fn(-8, 0.5); !errors.Is(err, ErrNonFiniteResult) {
		t.Errorf("power(-8, 0.5) error = %v, want ErrNonFiniteResult", err)
	}
	// Overflow.
	if _, err := fn(1e300, 2); !errors.Is(err, ErrNonFiniteResult) {
		t.Errorf("power(1e300, 2) error = %v, want ErrNonFiniteResult", err)
	}
	// Division-by-zero shape: 0^-1 is infinite.
	if _, err := fn(0, -1); !errors.Is(err, ErrNonFiniteResult) {
		t.Errorf("power(0, -1) error = %v, want ErrNonFiniteResult", err)
	}
}

func TestModulusSignConvention(t *testing.T) {
	fn := mustResolve(t, Modulus)

	tests := []struct {
		a, b, want float64
	}{
		{10, 3, 1},
		{-10, 3, -1},  // truncated toward zero: sign of the dividend
		{10, -3, 1},   // divisor sign is ignored
		{-10, -3, -1},
	}
	for _, tt := range tests {
		got, err := fn(tt.a, tt.b)
		if err != nil {
			t.Fatalf("modulus(%g, %g) failed: %v", tt.a, tt.b, err)
		}
		if got != tt.want {
			t.Errorf("modulus(%g, %g) = %g, want %g", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestResolveCaseInsensitive(t *testing.T) {
	for _, name := range []string{"ADD", "Add", "aDd"} {
		fn, err := Resolve(name)
		if err != nil {
			t.Fatalf("Resolve(%q) failed: %v", name, err)
		}
		got, _ := fn(1, 2)
		if got != 3 {
			t.Errorf("Resolve(%q)(1, 2) = %g, want 3", name, got)
		}
	}
}

func TestResolveUnknown(t *testing.T) {
	_, err := Resolve("cosine")
	if !errors.Is(err, ErrUnknownOperation) {
		t.Fatalf("Resolve(cosine) error = %v, want ErrUnknownOperation", err)
	}

	var unknown *UnknownError
	if !errors.As(err, &unknown) {
		t.Fatalf("Resolve(cosine) error type = %T, want *UnknownError", err)
	}
	if unknown.Name != "cosine" {
		t.Errorf("UnknownError.Name = %q, want %q", unknown.Name, "cosine")
	}
	// The message lists the valid set.
	for _, name := range Names() {
		if !strings.Contains(err.Error(), name) {
			t.Errorf("error message missing operation %q: %s", name, err.Error())
		}
	}
}

func TestNamesIsACopy(t *testing.T) {
	got := Names()
	if len(got) != 10 {
		t.Fatalf("Names() returned %d names, want 10", len(got))
	}
	got[0] = "mutated"
	if Names()[0] != Add {
		t.Error("mutating Names() result affected the registry")
	}
}

func TestErrorMessage(t *testing.T) {
	_, err := mustResolve(t, Divide)(7, 0)

	var opErr *Error
	if !errors.As(err, &opErr) {
		t.Fatalf("error type = %T, want *Error", err)
	}
	if opErr.Name != Divide || opErr.OperandA != 7 || opErr.OperandB != 0 {
		t.Errorf("unexpected error fields: %+v", opErr)
	}
	if !strings.Contains(err.Error(), "divide(7, 0)") {
		t.Errorf("unexpected error message: %s", err.Error())
	}
}
