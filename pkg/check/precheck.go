package check

import (
	"io/ioutil"
	"os"

	log "github.com/sirupsen/logrus"
)

// Precheck inspects the local environment to help identify potential
// issues before the run. In case some requirements are not met it only
// warns the user; the verdict is never decided here.
func Precheck(targetPath string) {
	checkTargetExecutable(targetPath)
	checkTempDirWritable()
}

// checkTargetExecutable warns when the target path does not look like
// something the executor will be able to spawn. The launch itself is
// still attempted; a missing file there is a LaunchFailure.
func checkTargetExecutable(targetPath string) {
	info, err := os.Stat(targetPath)
	if err != nil {
		log.Warnf("Target %q cannot be inspected: %v", targetPath, err)
		return
	}

	if !info.Mode().IsRegular() {
		log.Warnf("Target %q is not a regular file.", targetPath)
		return
	}

	if info.Mode().Perm()&0111 == 0 {
		log.Warnf("Target %q is not executable (mode %v). You can change this with 'chmod +x'.", targetPath, info.Mode().Perm())
	}
}

// checkTempDirWritable warns when output capture files cannot be
// created, which would otherwise surface later as a launch error.
func checkTempDirWritable() {
	file, err := ioutil.TempFile("", "snapcheck_precheck_")
	if err != nil {
		log.Warnf("Temporary directory is not writable, output capture will fail: %v", err)
		return
	}
	file.Close()
	os.Remove(file.Name())
}
