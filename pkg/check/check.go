// Package check drives a single harness run: launch the target, block
// until it exits, capture its stdout and judge every snapshot line.
// A run is binary; it either passes or fails with a single reason.
package check

import (
	"bufio"
	"io/ioutil"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/jamesmistry/measuro-systest/pkg/executor"
	"github.com/jamesmistry/measuro-systest/pkg/expect"
	"github.com/jamesmistry/measuro-systest/pkg/validate"
)

// Result describes one finished harness run, ready to be recorded by a
// metadata backend.
type Result struct {
	Target       string
	Passed       bool
	Reason       string
	ExpectedKeys int
	Duration     time.Duration
}

// Run launches the target with the given executor, waits for it to
// finish and validates the captured output against cfg. A zero timeout
// waits for the target forever. The returned error is nil only when
// every snapshot passed.
func Run(exec executor.Executor, path string, cfg expect.Config, timeout time.Duration) error {
	log.Debugf("Running target %q with %s", path, exec.Name())

	taskHandle, err := exec.Execute(path)
	if err != nil {
		return validate.NewError(validate.LaunchFailure, "Failed to launch target: %v", err)
	}
	defer taskHandle.EraseOutput()

	if !taskHandle.Wait(timeout) {
		taskHandle.Stop()
		return validate.NewError(validate.ProcessFailure, "Target process timed out after %s", timeout)
	}

	exitCode, err := taskHandle.ExitCode()
	if err != nil {
		return validate.NewError(validate.ProcessFailure, "Cannot read target exit code: %v", err)
	}
	if exitCode != 0 {
		reason := "Target process exited with non-zero code"
		if diagnosis := firstStderrLine(taskHandle); diagnosis != "" {
			reason += ": " + diagnosis
		}
		return validate.NewError(validate.ProcessFailure, "%s", reason)
	}

	stdoutFile, err := taskHandle.StdoutFile()
	if err != nil {
		return validate.NewError(validate.ProcessFailure, "Cannot read target output: %v", err)
	}
	output, err := ioutil.ReadAll(stdoutFile)
	if err != nil {
		return validate.NewError(validate.ProcessFailure, "Cannot read target output: %v", err)
	}

	return validate.Output(string(output), cfg)
}

// NewResult builds the recordable verdict of a finished run.
func NewResult(path string, cfg expect.Config, duration time.Duration, runErr error) Result {
	result := Result{
		Target:       path,
		Passed:       runErr == nil,
		ExpectedKeys: cfg.Count(),
		Duration:     duration,
	}
	if runErr != nil {
		result.Reason = runErr.Error()
	}
	return result
}

// firstStderrLine pulls the first line of the target's stderr for the
// failure diagnosis. Failures to read it are swallowed; stderr is a
// best-effort hint, never part of the verdict.
func firstStderrLine(taskHandle executor.TaskHandle) string {
	stderrFile, err := taskHandle.StderrFile()
	if err != nil {
		return ""
	}

	scanner := bufio.NewScanner(stderrFile)
	if !scanner.Scan() {
		return ""
	}
	return strings.TrimSpace(scanner.Text())
}
