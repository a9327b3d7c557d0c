package problem

import "fmt"

// GenericSolveMessage is shown when a solver fails without a usable message.
const GenericSolveMessage = "An error occurred during calculation."

// InputError reports a field that failed validation.
type InputError struct {
	Field  string
	Label  string
	Reason string
}

func (e *InputError) Error() string {
	return fmt.Sprintf("%q %s", e.Label, e.Reason)
}

// Reasons used by InputError.
const (
	reasonInvalid = "must be a valid number."
	reasonEmpty   = "cannot be empty."
	reasonChoice  = "must be one of the listed options."
	reasonNoSuch  = "is not a field of this problem."
)

// SolveError is a domain-level failure reported by a solver: the inputs are
// well-formed numbers but the problem has no valid answer for them.
type SolveError struct {
	Message string
}

func (e *SolveError) Error() string {
	return e.Message
}

// Errorf builds a SolveError.
func Errorf(format string, args ...interface{}) error {
	return &SolveError{Message: fmt.Sprintf(format, args...)}
}
