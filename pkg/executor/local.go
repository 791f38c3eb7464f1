package executor

import (
	"io"
	"io/ioutil"
	"os"
	"os/exec"
	"syscall"
	"time"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

// Local provisioning is responsible for providing the execution
// environment on the local machine via exec.Command.
// It runs the target as the current user, with no arguments.
type Local struct {
}

// NewLocal returns a Local instance.
func NewLocal() Local {
	return Local{}
}

// Name returns a user-friendly name of the executor.
func (l Local) Name() string {
	return "Local Executor"
}

// Execute launches the executable given as input.
// The returned TaskHandle is able to stop & monitor the provisioned process.
// Spawns exactly one child process; a failed run is never retried here.
func (l Local) Execute(path string) (TaskHandle, error) {
	stdoutFile, err := ioutil.TempFile("", "snapcheck_stdout_")
	if err != nil {
		return nil, errors.Wrap(err, "cannot create stdout file")
	}
	stderrFile, err := ioutil.TempFile("", "snapcheck_stderr_")
	if err != nil {
		stdoutFile.Close()
		os.Remove(stdoutFile.Name())
		return nil, errors.Wrap(err, "cannot create stderr file")
	}

	cmd := exec.Command(path)
	cmd.Stdout = stdoutFile
	cmd.Stderr = stderrFile

	// It is important to set an additional process group ID for the
	// target and its children to have the ability to kill all of them
	// when stopping the task.
	cmd.SysProcAttr = &syscall.SysProcAttr{Setpgid: true}

	log.Debug("Starting ", path)

	if err := cmd.Start(); err != nil {
		stdoutFile.Close()
		os.Remove(stdoutFile.Name())
		stderrFile.Close()
		os.Remove(stderrFile.Name())
		return nil, errors.Wrapf(err, "cannot launch %q", path)
	}

	log.Debug("Started ", path, " with pid ", cmd.Process.Pid)

	t := &localTask{
		path:           path,
		cmd:            cmd,
		stdoutFile:     stdoutFile,
		stderrFile:     stderrFile,
		waitEndChannel: make(chan struct{}),
	}

	// Wait for the local task in a goroutine and record its exit code.
	go func() {
		defer close(t.waitEndChannel)

		// NOTE: Wait() returns an error for non-zero exit codes. We
		// grab the process state in any case below, so the error
		// object matters less in the status handling.
		cmd.Wait()

		waitStatus := cmd.ProcessState.Sys().(syscall.WaitStatus)
		if waitStatus.Exited() {
			t.exitCode = waitStatus.ExitStatus()
		} else {
			// Show which signal caused the termination.
			t.exitCode = -int(waitStatus.Signal())
		}

		log.Debug(
			"Ended ", t.path,
			" with output in file: ", stdoutFile.Name(),
			" with err output in file: ", stderrFile.Name(),
			" with status code: ", t.exitCode)
	}()

	return t, nil
}

// localTask implements the TaskHandle interface.
type localTask struct {
	path           string
	cmd            *exec.Cmd
	stdoutFile     *os.File
	stderrFile     *os.File
	waitEndChannel chan struct{}
	exitCode       int
}

// isTerminated checks for the task completion without blocking.
func (task *localTask) isTerminated() bool {
	select {
	case <-task.waitEndChannel:
		return true
	default:
		return false
	}
}

// Status returns the state of the task.
func (task *localTask) Status() TaskState {
	if !task.isTerminated() {
		return RUNNING
	}

	return TERMINATED
}

// ExitCode returns the exit code. If the task is not terminated it
// returns an error.
func (task *localTask) ExitCode() (int, error) {
	if !task.isTerminated() {
		return 0, errors.Errorf("task %q is not terminated", task.path)
	}

	return task.exitCode, nil
}

// Stop sends SIGTERM to the whole process group of the task and waits
// for its termination.
func (task *localTask) Stop() error {
	if task.isTerminated() {
		return nil
	}

	// We signal the entire process group. The kill syscall interprets
	// a negated PID N as the process group N belongs to.
	log.Debug("Sending SIGTERM to PID ", -task.cmd.Process.Pid)
	if err := syscall.Kill(-task.cmd.Process.Pid, syscall.SIGTERM); err != nil {
		return errors.Wrapf(err, "cannot stop task %q", task.path)
	}

	<-task.waitEndChannel

	return nil
}

// Wait blocks until the process terminates or the timeout elapses.
// Returns true when the process terminated before the timeout.
func (task *localTask) Wait(timeout time.Duration) bool {
	if task.isTerminated() {
		return true
	}

	if timeout == 0 {
		<-task.waitEndChannel
		return true
	}

	select {
	case <-task.waitEndChannel:
		return true
	case <-time.After(timeout):
		return false
	}
}

// StdoutFile returns a file handle to the captured stdout, rewound to
// the beginning. The child shares the file offset with us, so after it
// has written its output the descriptor points at the end.
func (task *localTask) StdoutFile() (*os.File, error) {
	if _, err := task.stdoutFile.Seek(0, io.SeekStart); err != nil {
		return nil, errors.Wrap(err, "cannot rewind stdout file")
	}
	return task.stdoutFile, nil
}

// StderrFile returns a file handle to the captured stderr, rewound to
// the beginning.
func (task *localTask) StderrFile() (*os.File, error) {
	if _, err := task.stderrFile.Seek(0, io.SeekStart); err != nil {
		return nil, errors.Wrap(err, "cannot rewind stderr file")
	}
	return task.stderrFile, nil
}

// Clean closes the files to which stdout and stderr of the executed
// target were written.
func (task *localTask) Clean() error {
	if err := task.stdoutFile.Close(); err != nil {
		return errors.Wrap(err, "cannot close stdout file")
	}
	if err := task.stderrFile.Close(); err != nil {
		return errors.Wrap(err, "cannot close stderr file")
	}
	return nil
}

// EraseOutput closes and removes the task's stdout & stderr files.
func (task *localTask) EraseOutput() error {
	// Close errors are ignored here since Clean may have run already.
	task.stdoutFile.Close()
	task.stderrFile.Close()

	if err := os.Remove(task.stdoutFile.Name()); err != nil {
		return errors.Wrap(err, "cannot remove stdout file")
	}
	if err := os.Remove(task.stderrFile.Name()); err != nil {
		return errors.Wrap(err, "cannot remove stderr file")
	}
	return nil
}
