// Package executor is responsible for launching the target program and
// handing back a handle to its captured output and exit status. The
// target is always started directly, with no arguments and no shell in
// between, since the harness contract is a bare executable path.
package executor

// Executor is responsible for creating the execution environment for
// the target program. It returns a TaskHandle when the target started
// gracefully. The target is executed asynchronously.
type Executor interface {
	// Execute launches the executable at the given path on the
	// underlying platform.
	Execute(path string) (TaskHandle, error)
	// Name returns a user-friendly name of the executor.
	Name() string
}
