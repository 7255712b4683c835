package history

import (
	"fmt"
	"strconv"
	"time"
)

// Calculation is an immutable record of one computed operation.
// Construct with New; never mutate after construction.
type Calculation struct {
	Operation string
	OperandA  float64
	OperandB  float64
	Result    float64
	Timestamp time.Time
}

// New creates a Calculation stamped with the current time.
func New(operation string, operandA, operandB, result float64) Calculation {
	return Calculation{
		Operation: operation,
		OperandA:  operandA,
		OperandB:  operandB,
		Result:    result,
		Timestamp: time.Now(),
	}
}

// String renders the record as "op(a, b) = result".
func (c Calculation) String() string {
	return fmt.Sprintf("%s(%s, %s) = %s",
		c.Operation,
		formatFloat(c.OperandA),
		formatFloat(c.OperandB),
		formatFloat(c.Result))
}

// Equal reports whether two records match field for field.
// Timestamps compare to stored (nanosecond) precision.
func (c Calculation) Equal(other Calculation) bool {
	return c.Operation == other.Operation &&
		c.OperandA == other.OperandA &&
		c.OperandB == other.OperandB &&
		c.Result == other.Result &&
		c.Timestamp.Equal(other.Timestamp)
}

// formatFloat renders a float64 in the shortest text that parses back
// losslessly.
func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
