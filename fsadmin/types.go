package fsadmin

import (
	"context"
	"errors"
	"fmt"

	"github.com/crafted-tech/spawnadmin"
)

var (
	// ErrCancelled is returned when the context ends between steps.
	ErrCancelled = errors.New("operation cancelled")

	// ErrCredentials is returned when administrator credentials could not be obtained.
	ErrCredentials = errors.New("failed to obtain credentials")

	// ErrUnsupported is returned for operations the platform does not provide.
	ErrUnsupported = errors.New("operation not supported on this platform")
)

// ExitError reports a privileged command that ran but did not succeed.
type ExitError struct {
	Command string              // Short tool name, e.g. "rm"
	Code    spawnadmin.ExitCode // ExitUnknown if the status could not be read
}

func (e *ExitError) Error() string {
	return fmt.Sprintf("%s failed with exit status %d", e.Command, int(e.Code))
}

// StepResult represents the outcome of a step execution.
type StepResult struct {
	// Skip indicates the step was skipped (already done, not needed).
	// When Skip is true, the step is counted as successful.
	Skip bool

	// Info contains a success or informational message.
	// For skipped steps, this explains why it was skipped.
	Info string

	// Err contains the error if the step failed.
	// A nil Err indicates success (or skip if Skip is true).
	Err error
}

// Success creates a successful StepResult with an optional info message.
func Success(info string) StepResult {
	return StepResult{Info: info}
}

// Skipped creates a StepResult indicating the step was skipped.
func Skipped(reason string) StepResult {
	return StepResult{Skip: true, Info: reason}
}

// Failed creates a StepResult with an error.
func Failed(err error) StepResult {
	return StepResult{Err: err}
}

// Step is a named action run by RunSteps.
type Step struct {
	// Name is the display name for the step (used in the log).
	Name string

	// Action executes the step and returns the result.
	Action func(ctx context.Context) StepResult
}

// SimpleStep creates a Step from a function that only returns an error.
func SimpleStep(name string, action func(ctx context.Context) error) Step {
	return Step{
		Name: name,
		Action: func(ctx context.Context) StepResult {
			if err := action(ctx); err != nil {
				return Failed(err)
			}
			return Success("")
		},
	}
}
