package metadata

import (
	"testing"
	"time"

	. "github.com/smartystreets/goconvey/convey"

	"github.com/jamesmistry/measuro-systest/pkg/check"
)

func TestRunRecord(t *testing.T) {
	Convey("While flattening a run result into a record", t, func() {
		result := check.Result{
			Target:       "/opt/measuro/systest",
			Passed:       false,
			Reason:       "Expected 10008 keys, found 10009",
			ExpectedKeys: 10008,
			Duration:     1500 * time.Millisecond,
		}

		record := newRunRecord("run-1", result)

		So(record.RunID, ShouldEqual, "run-1")
		So(record.Target, ShouldEqual, "/opt/measuro/systest")
		So(record.Passed, ShouldBeFalse)
		So(record.Reason, ShouldEqual, "Expected 10008 keys, found 10009")
		So(record.ExpectedKeys, ShouldEqual, 10008)
		So(record.Duration, ShouldEqual, 1500*time.Millisecond)
		So(record.Time, ShouldHappenWithin, time.Minute, time.Now())
	})
}

func TestRunPoint(t *testing.T) {
	Convey("While building the InfluxDB point of a run", t, func() {
		record := runRecord{
			RunID:        "run-2",
			Target:       "/opt/measuro/systest",
			Passed:       true,
			ExpectedKeys: 38,
			Duration:     2 * time.Second,
			Time:         time.Now(),
		}

		tags, fields := runPoint(record)

		Convey("Tags should carry the run identity and pass state", func() {
			So(tags["run_id"], ShouldEqual, "run-2")
			So(tags["passed"], ShouldEqual, "true")
		})

		Convey("Fields should carry the verdict details", func() {
			So(fields["target"], ShouldEqual, "/opt/measuro/systest")
			So(fields["reason"], ShouldEqual, "")
			So(fields["expected_keys"], ShouldEqual, 38)
			So(fields["duration_ms"], ShouldEqual, int64(2000))
		})
	})
}

func TestNewDefault(t *testing.T) {
	Convey("While selecting the default metadata backend", t, func() {
		Convey("An unsupported database name should be rejected", func() {
			// metadata_db defaults to "none", which no backend serves.
			backend, err := NewDefault("run-3")

			So(backend, ShouldBeNil)
			So(err, ShouldNotBeNil)
			So(err.Error(), ShouldContainSubstring, "unsupported database")
		})
	})
}
