package executor

import (
	"io/ioutil"
	"os"
	"testing"
	"time"

	. "github.com/smartystreets/goconvey/convey"
)

// createScript materializes an executable shell script, since the local
// executor only accepts a bare path and never passes arguments.
func createScript(t *testing.T, body string) string {
	t.Helper()

	file, err := ioutil.TempFile("", "snapcheck_target_")
	if err != nil {
		t.Fatal(err)
	}
	if _, err := file.WriteString("#!/bin/sh\n" + body); err != nil {
		t.Fatal(err)
	}
	if err := file.Close(); err != nil {
		t.Fatal(err)
	}
	if err := os.Chmod(file.Name(), 0755); err != nil {
		t.Fatal(err)
	}

	t.Cleanup(func() { os.Remove(file.Name()) })

	return file.Name()
}

func TestLocal(t *testing.T) {
	Convey("While using the Local executor", t, func() {
		l := NewLocal()

		Convey("When a target printing output is executed", func() {
			target := createScript(t, "echo output\n")
			task, err := l.Execute(target)

			Convey("There should be no launch error", func() {
				So(err, ShouldBeNil)
				task.Wait(0)
				So(task.EraseOutput(), ShouldBeNil)
			})

			Convey("When we wait for the task to terminate", func() {
				terminated := task.Wait(0)
				defer task.EraseOutput()

				So(terminated, ShouldBeTrue)
				So(task.Status(), ShouldEqual, TERMINATED)

				Convey("The exit code should be 0 and stdout should carry the output", func() {
					exitCode, err := task.ExitCode()
					So(err, ShouldBeNil)
					So(exitCode, ShouldEqual, 0)

					stdoutFile, err := task.StdoutFile()
					So(err, ShouldBeNil)
					output, err := ioutil.ReadAll(stdoutFile)
					So(err, ShouldBeNil)
					So(string(output), ShouldEqual, "output\n")
				})
			})
		})

		Convey("When a target exiting with a non-zero code is executed", func() {
			target := createScript(t, "echo diagnosis >&2\nexit 4\n")
			task, err := l.Execute(target)
			So(err, ShouldBeNil)
			defer task.EraseOutput()

			task.Wait(0)

			Convey("The exit code should be 4 and stderr should carry the diagnosis", func() {
				exitCode, err := task.ExitCode()
				So(err, ShouldBeNil)
				So(exitCode, ShouldEqual, 4)

				stderrFile, err := task.StderrFile()
				So(err, ShouldBeNil)
				output, err := ioutil.ReadAll(stderrFile)
				So(err, ShouldBeNil)
				So(string(output), ShouldEqual, "diagnosis\n")
			})
		})

		Convey("When a long-running target is executed", func() {
			target := createScript(t, "sleep 60\n")
			task, err := l.Execute(target)
			So(err, ShouldBeNil)
			defer task.EraseOutput()

			Convey("Waiting with a short timeout should report it still running", func() {
				terminated := task.Wait(10 * time.Millisecond)
				So(terminated, ShouldBeFalse)
				So(task.Status(), ShouldEqual, RUNNING)

				Convey("And the exit code should not be available yet", func() {
					_, err := task.ExitCode()
					So(err, ShouldNotBeNil)
				})

				Convey("After stopping it should be terminated by SIGTERM", func() {
					So(task.Stop(), ShouldBeNil)
					So(task.Status(), ShouldEqual, TERMINATED)

					exitCode, err := task.ExitCode()
					So(err, ShouldBeNil)
					So(exitCode, ShouldEqual, -int(15))
				})
			})

			So(task.Stop(), ShouldBeNil)
		})

		Convey("When a path that is not an executable is given", func() {
			task, err := l.Execute("/path/that/does/not/exist")

			Convey("Execute should fail and no handle should be returned", func() {
				So(err, ShouldNotBeNil)
				So(task, ShouldBeNil)
			})
		})

		Convey("When output files are erased", func() {
			target := createScript(t, "echo output\n")
			task, err := l.Execute(target)
			So(err, ShouldBeNil)
			task.Wait(0)

			stdoutFile, err := task.StdoutFile()
			So(err, ShouldBeNil)
			name := stdoutFile.Name()

			So(task.EraseOutput(), ShouldBeNil)

			_, err = os.Stat(name)
			So(os.IsNotExist(err), ShouldBeTrue)
		})
	})
}
