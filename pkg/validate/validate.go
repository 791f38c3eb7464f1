// Package validate judges captured target output. Each non-empty line
// of the output is one snapshot: a self-contained JSON object mapping
// metric names to values. A run passes only when every snapshot carries
// exactly the expected key set; values are never inspected.
package validate

import (
	"encoding/json"

	log "github.com/sirupsen/logrus"

	"github.com/jamesmistry/measuro-systest/pkg/expect"
)

// Snapshot is one parsed line of target output: a mapping from metric
// name to an opaque value.
type Snapshot map[string]interface{}

// minSnapshots is the least number of output lines a healthy target
// emits: one snapshot before its measurement loop and one after.
const minSnapshots = 2

// Output splits the captured text into snapshot lines and validates
// each against the key set derived from cfg. Validation is a strictly
// forward single pass; the first failing line ends the run.
// A trailing newline in the captured text is tolerated.
func Output(raw string, cfg expect.Config) error {
	lines := splitSnapshotLines(raw)
	if len(lines) < minSnapshots {
		return NewError(InsufficientOutput, "Expected at least %d results", minSnapshots)
	}

	expectedKeys := cfg.Keys()
	expectedCount := cfg.Count()

	log.Debugf("Validating %d snapshot(s) against %d expected key(s)", len(lines), expectedCount)

	for i, line := range lines {
		if err := validateLine(line, i, expectedKeys, expectedCount); err != nil {
			return err
		}
	}

	return nil
}

// splitSnapshotLines splits on newlines and discards the single empty
// segment a trailing newline produces. Interior empty lines are kept;
// they are not valid snapshots and must fail parsing.
func splitSnapshotLines(raw string) []string {
	var lines []string
	start := 0
	for i := 0; i < len(raw); i++ {
		if raw[i] == '\n' {
			lines = append(lines, raw[start:i])
			start = i + 1
		}
	}
	if start < len(raw) {
		lines = append(lines, raw[start:])
	}
	return lines
}

// validateLine parses a single snapshot and checks its key set: every
// expected key must be present, and no key may appear beyond those.
func validateLine(line string, index int, expectedKeys []string, expectedCount int) error {
	var parsed Snapshot
	if err := json.Unmarshal([]byte(line), &parsed); err != nil {
		return NewError(MalformedSnapshot, "Snapshot %d is not a valid JSON object: %v", index, err)
	}

	for _, key := range expectedKeys {
		if _, found := parsed[key]; !found {
			return NewError(MissingMetric, "Metric '%s' expected but not found", key)
		}
	}

	// Every expected key is present, so any count difference means the
	// snapshot carries keys nobody asked for.
	if len(parsed) != expectedCount {
		return NewError(KeyCountMismatch, "Expected %d keys, found %d", expectedCount, len(parsed))
	}

	return nil
}
