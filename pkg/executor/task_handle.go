package executor

import (
	"os"
	"time"
)

// TaskState is an enum presenting the current task state.
type TaskState int

const (
	// RUNNING task state means that the task is still running.
	RUNNING TaskState = iota
	// TERMINATED task state means that the task completed or was stopped.
	TERMINATED
)

// TaskHandle represents a launched target process which can be stopped
// or monitored.
type TaskHandle interface {
	// Stop terminates the task.
	Stop() error
	// Status returns the state of the task.
	Status() TaskState
	// ExitCode returns the exit code. If the task is not terminated it
	// returns an error.
	ExitCode() (int, error)
	// StdoutFile returns a file handle to the task's captured stdout,
	// positioned at the beginning of the output.
	StdoutFile() (*os.File, error)
	// StderrFile returns a file handle to the task's captured stderr,
	// positioned at the beginning of the output.
	StderrFile() (*os.File, error)
	// Wait blocks until the task terminates or the timeout elapses.
	// A zero timeout means waiting forever. It returns true when the
	// task is terminated.
	Wait(timeout time.Duration) bool
	// Clean closes the task's stdout & stderr files.
	Clean() error
	// EraseOutput closes and removes the task's stdout & stderr files.
	EraseOutput() error
}
