package round

import "fmt"

// ValidationError reports a round that cannot be summarized.
// Callers decide whether to skip the round or halt; it is never retried.
type ValidationError struct {
	RoundID string
	Field   string
	Reason  string
}

func (e *ValidationError) Error() string {
	if e.RoundID == "" {
		return fmt.Sprintf("invalid round: %s: %s", e.Field, e.Reason)
	}
	return fmt.Sprintf("invalid round %s: %s: %s", e.RoundID, e.Field, e.Reason)
}

func newValidationError(roundID, field, format string, args ...interface{}) *ValidationError {
	return &ValidationError{
		RoundID: roundID,
		Field:   field,
		Reason:  fmt.Sprintf(format, args...),
	}
}
