package plan

import (
	"fmt"
	"strings"
)

// ExecErrorCode represents the type of error that occurred during plan
// execution.
type ExecErrorCode string

const (
	// ErrMissingPrecondition signals that a step's required blackboard
	// paths were absent at dispatch time. Fatal to the run.
	ErrMissingPrecondition ExecErrorCode = "missing_precondition"

	// ErrStepFailed signals that a step's handler returned an error.
	// Fatal to the run.
	ErrStepFailed ExecErrorCode = "step_failed"
)

// StepError represents a fatal failure of a single plan step. It aborts
// the entire run; no partial continuation and no rollback of prior
// steps' effects.
type StepError struct {
	Code    ExecErrorCode `json:"code"`
	StepID  string        `json:"step_id"`
	Message string        `json:"message"`

	// Missing lists the absent required paths for ErrMissingPrecondition.
	Missing []string `json:"missing,omitempty"`

	Cause error `json:"-"`
}

// Error implements the error interface for StepError.
func (e *StepError) Error() string {
	if e == nil {
		return ""
	}
	msg := fmt.Sprintf("%s: step %s: %s", e.Code, e.StepID, e.Message)
	if len(e.Missing) > 0 {
		msg += fmt.Sprintf(" [%s]", strings.Join(e.Missing, ", "))
	}
	if e.Cause != nil {
		msg += fmt.Sprintf(" (caused by: %v)", e.Cause)
	}
	return msg
}

// Unwrap implements the error unwrapping interface for StepError.
func (e *StepError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Cause
}

// NewMissingPreconditionError creates a StepError for a step whose
// required paths were absent.
func NewMissingPreconditionError(stepID string, missing []string) *StepError {
	return &StepError{
		Code:    ErrMissingPrecondition,
		StepID:  stepID,
		Message: "missing required inputs for step",
		Missing: missing,
	}
}

// NewStepFailedError creates a StepError wrapping a handler failure.
func NewStepFailedError(stepID string, cause error) *StepError {
	return &StepError{
		Code:    ErrStepFailed,
		StepID:  stepID,
		Message: "step handler failed",
		Cause:   cause,
	}
}
