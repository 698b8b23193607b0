package errors

import "fmt"

// InvalidInputError reports an operand vector whose shape the harness cannot
// measure. It is a usage error: the caller built the wrong vector.
type InvalidInputError struct {
	Length int
	Want   int
}

// Error implements the error interface
func (e *InvalidInputError) Error() string {
	return fmt.Sprintf("invalid operand vector: got length %d, want %d", e.Length, e.Want)
}

// InvalidConfigurationError reports an iteration setting that would make a
// run meaningless. Detected before any timing begins; never retried.
type InvalidConfigurationError struct {
	Field string
	Value int
}

// Error implements the error interface
func (e *InvalidConfigurationError) Error() string {
	return fmt.Sprintf("invalid configuration: bad %s: %d", e.Field, e.Value)
}

// MismatchError reports a strategy disagreeing on the computed sum, either
// with another strategy over identical operands or with its own earlier
// iterations. Unlike the input errors above this indicates a bug in a
// strategy implementation, so the CLI maps it to a separate exit code.
type MismatchError struct {
	Strategy string
	Got      int64
	Want     int64
}

// Error implements the error interface
func (e *MismatchError) Error() string {
	return fmt.Sprintf("sum mismatch: strategy %s computed %d, want %d", e.Strategy, e.Got, e.Want)
}
