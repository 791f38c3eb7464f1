// Package metadata records harness run verdicts in a database backend
// so that results of repeated runs can be browsed later. Recording is
// strictly best-effort: backends never influence the verdict itself.
package metadata

import (
	"time"

	"github.com/pkg/errors"

	"github.com/jamesmistry/measuro-systest/pkg/check"
	"github.com/jamesmistry/measuro-systest/pkg/conf"
)

// Metadata interface defines the methods which must be supported by a
// DB backend.
type Metadata interface {
	// RecordRun stores the verdict of one run, tagged with the run id.
	RecordRun(result check.Result) error
}

// NewDefault initializes the metadata backend selected by the
// metadata_db flag or the corresponding environment variable.
func NewDefault(runID string) (Metadata, error) {
	switch conf.MetadataDB.Value() {
	case "cassandra":
		return NewCassandra(runID, DefaultCassandraConfig())
	case "influxdb":
		return NewInfluxDB(runID, DefaultInfluxDBConfig())
	}

	return nil, errors.Errorf("unsupported database for metadata: %q", conf.MetadataDB.Value())
}

// runRecord flattens a run result into the tag/column values shared by
// the backends.
type runRecord struct {
	RunID        string
	Target       string
	Passed       bool
	Reason       string
	ExpectedKeys int
	Duration     time.Duration
	Time         time.Time
}

func newRunRecord(runID string, result check.Result) runRecord {
	return runRecord{
		RunID:        runID,
		Target:       result.Target,
		Passed:       result.Passed,
		Reason:       result.Reason,
		ExpectedKeys: result.ExpectedKeys,
		Duration:     result.Duration,
		Time:         time.Now(),
	}
}
