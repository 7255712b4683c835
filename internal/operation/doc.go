// Package operation implements the arithmetic operation registry.
//
// Each operation is a pure function over two float64 operands, registered
// under a case-insensitive name:
//
//	fn, err := operation.Resolve("divide")
//	result, err := fn(7, 2) // 3.5
//
// Operations enforce their own domain policies (division by zero, even roots
// of negative numbers, non-finite power results) and report violations as an
// *Error wrapping a sentinel such as ErrDivisionByZero. The registry is fixed
// at compile time; Names returns the valid set in a stable order.
package operation
