package operation

import (
	"math"
	"strings"
)

// Func computes a single arithmetic operation over two operands.
// Functions are pure and stateless; a nil error guarantees a usable result.
type Func func(a, b float64) (float64, error)

// Registered operation names.
const (
	Add       = "add"
	Subtract  = "subtract"
	Multiply  = "multiply"
	Divide    = "divide"
	Power     = "power"
	Root      = "root"
	Modulus   = "modulus"
	IntDivide = "int_divide"
	Percent   = "percent"
	AbsDiff   = "abs_diff"
)

// names holds the registry order used for listings and error messages.
var names = []string{
	Add, Subtract, Multiply, Divide, Power,
	Root, Modulus, IntDivide, Percent, AbsDiff,
}

var registry = map[string]Func{
	Add:       add,
	Subtract:  subtract,
	Multiply:  multiply,
	Divide:    divide,
	Power:     power,
	Root:      root,
	Modulus:   modulus,
	IntDivide: intDivide,
	Percent:   percent,
	AbsDiff:   absDiff,
}

// Resolve returns the operation registered under name.
// Lookup is case-insensitive. Unknown names return an *UnknownError
// listing the valid set.
func Resolve(name string) (Func, error) {
	fn, ok := registry[strings.ToLower(name)]
	if !ok {
		return nil, &UnknownError{Name: name, Valid: Names()}
	}
	return fn, nil
}

// Names returns the registered operation names in registry order.
// The returned slice is a copy and safe to modify.
func Names() []string {
	out := make([]string, len(names))
	copy(out, names)
	return out
}

func add(a, b float64) (float64, error) {
	return a + b, nil
}

func subtract(a, b float64) (float64, error) {
	return a - b, nil
}

func multiply(a, b float64) (float64, error) {
	return a * b, nil
}

func divide(a, b float64) (float64, error) {
	if b == 0 {
		return 0, &Error{Name: Divide, OperandA: a, OperandB: b, Err: ErrDivisionByZero}
	}
	return a / b, nil
}

// power computes a raised to b. Results that are not finite reals
// (negative base with fractional exponent, overflow) are rejected.
func power(a, b float64) (float64, error) {
	r := math.Pow(a, b)
	if math.IsNaN(r) || math.IsInf(r, 0) {
		return 0, &Error{Name: Power, OperandA: a, OperandB: b, Err: ErrNonFiniteResult}
	}
	return r, nil
}

// root computes the bth root of a. Even roots of negative numbers are
// rejected; odd roots of negatives are computed as -(|a|^(1/b)).
func root(a, b float64) (float64, error) {
	if b == 0 {
		return 0, &Error{Name: Root, OperandA: a, OperandB: b, Err: ErrZerothRoot}
	}
	if a < 0 && math.Mod(b, 2) == 0 {
		return 0, &Error{Name: Root, OperandA: a, OperandB: b, Err: ErrEvenRootOfNegative}
	}
	var r float64
	if a < 0 {
		r = -math.Pow(-a, 1/b)
	} else {
		r = math.Pow(a, 1/b)
	}
	if math.IsNaN(r) || math.IsInf(r, 0) {
		return 0, &Error{Name: Root, OperandA: a, OperandB: b, Err: ErrNonFiniteResult}
	}
	return r, nil
}

// modulus computes a mod b using math.Mod, which truncates toward zero:
// the result takes the sign of the dividend (modulus(-10, 3) = -1).
func modulus(a, b float64) (float64, error) {
	if b == 0 {
		return 0, &Error{Name: Modulus, OperandA: a, OperandB: b, Err: ErrDivisionByZero}
	}
	return math.Mod(a, b), nil
}

func intDivide(a, b float64) (float64, error) {
	if b == 0 {
		return 0, &Error{Name: IntDivide, OperandA: a, OperandB: b, Err: ErrDivisionByZero}
	}
	return math.Floor(a / b), nil
}

func percent(a, b float64) (float64, error) {
	if b == 0 {
		return 0, &Error{Name: Percent, OperandA: a, OperandB: b, Err: ErrDivisionByZero}
	}
	return (a / b) * 100, nil
}

func absDiff(a, b float64) (float64, error) {
	return math.Abs(a - b), nil
}
