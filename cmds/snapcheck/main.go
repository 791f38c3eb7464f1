package main

import (
	"fmt"
	"os"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/jamesmistry/measuro-systest/pkg/check"
	"github.com/jamesmistry/measuro-systest/pkg/conf"
	"github.com/jamesmistry/measuro-systest/pkg/executor"
	"github.com/jamesmistry/measuro-systest/pkg/expect"
	"github.com/jamesmistry/measuro-systest/pkg/metadata"
	"github.com/jamesmistry/measuro-systest/pkg/utils/uuid"
)

const appName = "snapcheck"

var (
	targetArg = conf.NewStringArg(
		"target",
		"Path to the target executable whose output will be judged.")

	timeoutFlag = conf.NewDurationFlag(
		"timeout",
		"Give up on the target process after this long. 0 waits forever.",
		0)
)

func main() {
	conf.SetAppName(appName)
	conf.SetHelp(`snapcheck runs a metrics-emitting target program, captures its standard output and judges it.
Every output line must be a self-contained JSON snapshot carrying exactly the expected set of metric keys.`)

	// Any parse error (unknown flag, surplus argument) and a missing
	// target both end the run with exit code 1, but unlike the earlier
	// harness generation we say why.
	if err := conf.ParseFlags(); err != nil {
		fmt.Fprintf(os.Stderr, "usage: %s [<flags>] <target>: %v\n", appName, err)
		os.Exit(1)
	}
	target := targetArg.Value()
	if target == "" {
		fmt.Fprintf(os.Stderr, "usage: %s [<flags>] <target>\n", appName)
		os.Exit(1)
	}

	logrus.SetLevel(conf.LogLevel())

	check.Precheck(target)

	cfg := expect.DefaultConfig()
	runID := uuid.New()
	logrus.Debugf("Run %s: validating %q against %d expected keys", runID, target, cfg.Count())

	started := time.Now()
	runErr := check.Run(executor.NewLocal(), target, cfg, timeoutFlag.Value())
	result := check.NewResult(target, cfg, time.Since(started), runErr)

	recordRun(runID, result)

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "FAILED: %s\n", runErr)
		os.Exit(1)
	}

	fmt.Println("Test passed :-)")
}

// recordRun publishes the verdict to the configured metadata backend.
// Recording is best-effort; it never changes the verdict or exit code.
func recordRun(runID string, result check.Result) {
	if conf.MetadataDB.Value() == "none" {
		return
	}

	backend, err := metadata.NewDefault(runID)
	if err != nil {
		logrus.Warnf("Cannot connect to metadata backend: %v", err)
		return
	}

	if err := backend.RecordRun(result); err != nil {
		logrus.Warnf("Cannot record run verdict: %v", err)
	}
}
