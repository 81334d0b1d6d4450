// The Licensed Work is (c) 2022 Sygma
// SPDX-License-Identifier: LGPL-3.0-only

package submit

import "fmt"

type Status uint8

const (
	Success Status = iota
	// StepFailed terminates the run at the failing step. Earlier steps of a
	// sequential run stay committed; an atomic batch leaves no effect.
	StepFailed
	// CorrelationFailed means the bridge request may already have committed
	// but the dependent fee payment did not complete. Callers must offer a
	// manual-relay fallback instead of resubmitting the bridge request.
	CorrelationFailed
)

func (s Status) String() string {
	switch s {
	case Success:
		return "success"
	case StepFailed:
		return "stepFailed"
	case CorrelationFailed:
		return "correlationFailed"
	default:
		return fmt.Sprintf("status(%d)", uint8(s))
	}
}

// Outcome is the terminal state of one orchestration run. There is no
// partial-success representation beyond which step failed, and no automatic
// compensation: recovery is always a fresh follow-up action planned from
// re-read chain state.
type Outcome struct {
	Status Status
	// FailedStep indexes into the plan for StepFailed outcomes, -1 otherwise.
	FailedStep int
	Cause      error
}

func succeeded() Outcome {
	return Outcome{Status: Success, FailedStep: -1}
}

func failedAt(step int, cause error) Outcome {
	return Outcome{Status: StepFailed, FailedStep: step, Cause: cause}
}

func correlationFailed(cause error) Outcome {
	return Outcome{Status: CorrelationFailed, FailedStep: -1, Cause: cause}
}

// StepError is returned by executors to report which step of the submitted
// slice failed.
type StepError struct {
	Index int
	Err   error
}

func (e *StepError) Error() string {
	return fmt.Sprintf("step %d failed: %s", e.Index, e.Err)
}

func (e *StepError) Unwrap() error {
	return e.Err
}
