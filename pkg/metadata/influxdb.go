package metadata

import (
	"fmt"

	client "github.com/influxdata/influxdb1-client/v2"
	"github.com/pkg/errors"

	"github.com/jamesmistry/measuro-systest/pkg/check"
	"github.com/jamesmistry/measuro-systest/pkg/conf"
)

const influxRunsMeasurement = "runs"

// InfluxDBConfig holds the configuration for InfluxDB.
type InfluxDBConfig struct {
	HTTPConfig     client.HTTPConfig
	DbName         string
	CreateDatabase bool
}

// InfluxDB is a helper struct which keeps the InfluxDB session alive,
// holds the active configuration and the run id to tag verdicts with.
type InfluxDB struct {
	runID   string
	session client.Client
	config  InfluxDBConfig
}

// DefaultInfluxDBConfig applies the InfluxDB settings from the command
// line flags and environment variables.
func DefaultInfluxDBConfig() InfluxDBConfig {
	return InfluxDBConfig{
		DbName:         conf.InfluxDBName.Value(),
		CreateDatabase: conf.InfluxDBCreateDatabase.Value(),
		HTTPConfig: client.HTTPConfig{
			Addr:               fmt.Sprintf("http://%s:%d", conf.InfluxDBAddress.Value(), conf.InfluxDBPort.Value()),
			Password:           conf.InfluxDBPassword.Value(),
			Username:           conf.InfluxDBUsername.Value(),
			InsecureSkipVerify: conf.InfluxDBInsecureSkipVerify.Value(),
		},
	}
}

// NewInfluxDB returns the Metadata helper from a run id and configuration.
func NewInfluxDB(runID string, config InfluxDBConfig) (Metadata, error) {
	var err error

	metadata := &InfluxDB{
		runID:  runID,
		config: config,
	}

	metadata.session, err = client.NewHTTPClient(metadata.config.HTTPConfig)
	if err != nil {
		return nil, errors.Wrapf(err, "cannot create influx client for run %s", runID)
	}

	if config.CreateDatabase {
		response, err := metadata.session.Query(client.Query{
			Command:  fmt.Sprintf("CREATE DATABASE %s", config.DbName),
			Database: ""})
		if err != nil {
			return nil, errors.Wrapf(err, "cannot create influx database for run %s", runID)
		}
		if response.Error() != nil {
			return nil, errors.Wrapf(response.Error(), "response contains error for run %s", runID)
		}
	}

	return metadata, nil
}

// RecordRun stores the verdict of one run as a point in the runs
// measurement, tagged with the run id and pass state.
func (m *InfluxDB) RecordRun(result check.Result) error {
	record := newRunRecord(m.runID, result)

	batchPoints, err := client.NewBatchPoints(client.BatchPointsConfig{Database: m.config.DbName})
	if err != nil {
		return errors.Wrapf(err, "creation of batch points for InfluxDB failed for run %q", m.runID)
	}

	tags, fields := runPoint(record)
	point, err := client.NewPoint(influxRunsMeasurement, tags, fields, record.Time)
	if err != nil {
		return errors.Wrapf(err, "cannot create new point for run %q", m.runID)
	}

	batchPoints.AddPoint(point)

	if err := m.session.Write(batchPoints); err != nil {
		return errors.Wrapf(err, "cannot publish verdict of run %q", m.runID)
	}
	return nil
}

// runPoint splits a run record into the tag set and field set of its
// InfluxDB point.
func runPoint(record runRecord) (tags map[string]string, fields map[string]interface{}) {
	tags = map[string]string{
		"run_id": record.RunID,
		"passed": fmt.Sprintf("%v", record.Passed),
	}
	fields = map[string]interface{}{
		"target":        record.Target,
		"reason":        record.Reason,
		"expected_keys": record.ExpectedKeys,
		"duration_ms":   record.Duration.Milliseconds(),
	}
	return tags, fields
}
