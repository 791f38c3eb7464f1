package metadata

import (
	"fmt"
	"time"

	"github.com/gocql/gocql"
	"github.com/pkg/errors"

	"github.com/jamesmistry/measuro-systest/pkg/check"
	"github.com/jamesmistry/measuro-systest/pkg/conf"
)

// CassandraConfig encodes the settings for connecting to the database.
type CassandraConfig struct {
	Address           string
	ConnectionTimeout time.Duration
	CreateKeyspace    bool
	IgnorePeerAddr    bool
	InitialHostLookup bool
	KeyspaceName      string
	Password          string
	Port              int
	SslCAPath         string
	SslCertPath       string
	SslEnabled        bool
	SslHostValidation bool
	SslKeyPath        string
	Timeout           time.Duration
	Username          string
}

// Cassandra is a helper struct which keeps the Cassandra session alive,
// holds the active configuration and the run id to tag verdicts with.
type Cassandra struct {
	runID   string
	config  CassandraConfig
	session *gocql.Session
}

// DefaultCassandraConfig applies the Cassandra settings from the
// command line flags and environment variables.
func DefaultCassandraConfig() CassandraConfig {
	return CassandraConfig{
		Address:           conf.CassandraAddress.Value(),
		ConnectionTimeout: time.Duration(conf.CassandraConnectionTimeout.Value()) * time.Second,
		CreateKeyspace:    conf.CassandraCreateKeyspace.Value(),
		IgnorePeerAddr:    conf.CassandraIgnorePeerAddr.Value(),
		InitialHostLookup: conf.CassandraInitialHostLookup.Value(),
		KeyspaceName:      conf.CassandraKeyspaceName.Value(),
		Password:          conf.CassandraPassword.Value(),
		Port:              conf.CassandraPort.Value(),
		SslCAPath:         conf.CassandraSslCAPath.Value(),
		SslCertPath:       conf.CassandraSslCertPath.Value(),
		SslEnabled:        conf.CassandraSslEnabled.Value(),
		SslHostValidation: conf.CassandraSslHostValidation.Value(),
		SslKeyPath:        conf.CassandraSslKeyPath.Value(),
		Timeout:           time.Duration(conf.CassandraTimeout.Value()) * time.Second,
		Username:          conf.CassandraUsername.Value(),
	}
}

// NewCassandra returns the Metadata helper from a run id and configuration.
func NewCassandra(runID string, config CassandraConfig) (Metadata, error) {
	metadata := &Cassandra{
		runID:  runID,
		config: config,
	}
	err := connect(metadata)
	if err != nil {
		return nil, err
	}

	return metadata, nil
}

func sslOptions(config CassandraConfig) *gocql.SslOptions {
	sslOptions := &gocql.SslOptions{
		EnableHostVerification: config.SslHostValidation,
	}

	if config.SslCAPath != "" {
		sslOptions.CaPath = config.SslCAPath
	}

	if config.SslCertPath != "" {
		sslOptions.CertPath = config.SslCertPath
	}

	if config.SslKeyPath != "" {
		sslOptions.KeyPath = config.SslKeyPath
	}

	return sslOptions
}

// getClusterConfig prepares the configuration of the Cassandra cluster.
func getClusterConfig(m *Cassandra) *gocql.ClusterConfig {
	cluster := gocql.NewCluster(m.config.Address)

	cluster.Consistency = gocql.LocalOne
	cluster.SerialConsistency = gocql.LocalSerial

	cluster.ProtoVersion = 4
	cluster.ConnectTimeout = m.config.ConnectionTimeout
	cluster.Timeout = m.config.Timeout
	cluster.IgnorePeerAddr = m.config.IgnorePeerAddr
	cluster.DisableInitialHostLookup = !m.config.InitialHostLookup
	cluster.Port = m.config.Port

	return cluster
}

func createKeyspace(m *Cassandra, clusterConfig *gocql.ClusterConfig) error {
	session, err := clusterConfig.CreateSession()
	if err != nil {
		return errors.Wrap(err, "cannot create session for creating keyspace")
	}
	defer session.Close()

	query := fmt.Sprintf("CREATE KEYSPACE IF NOT EXISTS %s WITH REPLICATION = {'class': 'SimpleStrategy', 'replication_factor': 1};", m.config.KeyspaceName)

	return errors.Wrap(session.Query(query).Exec(), "cannot create keyspace")
}

// connect creates a session to the Cassandra cluster. This function
// should only be called once.
func connect(m *Cassandra) error {
	cluster := getClusterConfig(m)
	cluster.Keyspace = m.config.KeyspaceName

	if m.config.Username != "" && m.config.Password != "" {
		cluster.Authenticator = gocql.PasswordAuthenticator{
			Username: m.config.Username,
			Password: m.config.Password,
		}
	}

	if m.config.SslEnabled {
		cluster.SslOpts = sslOptions(m.config)
	}

	if m.config.CreateKeyspace {
		if err := createKeyspace(m, getClusterConfig(m)); err != nil {
			return err
		}
	}

	session, err := cluster.CreateSession()
	if err != nil {
		return err
	}

	m.session = session

	if err = session.Query("CREATE TABLE IF NOT EXISTS runs (run_id text, target text, passed boolean, reason text, expected_keys int, duration_ms bigint, time timestamp, PRIMARY KEY (run_id));").Exec(); err != nil {
		return err
	}

	return nil
}

// RecordRun stores the verdict of one run, tagged with the run id.
func (m *Cassandra) RecordRun(result check.Result) error {
	record := newRunRecord(m.runID, result)
	err := m.session.Query(
		`INSERT INTO runs (run_id, target, passed, reason, expected_keys, duration_ms, time) VALUES (?, ?, ?, ?, ?, ?, ?)`,
		record.RunID, record.Target, record.Passed, record.Reason,
		record.ExpectedKeys, record.Duration.Milliseconds(), record.Time,
	).Exec()
	return errors.Wrapf(err, "cannot publish verdict of run %q", m.runID)
}
