package conf

// Flags shared between packages. Metadata flags live here so both the
// metadata backends and the harness entry point see one definition.
var (
	// MetadataDB selects the database run verdicts are recorded in.
	MetadataDB = NewStringFlag("metadata_db", "Database to record run verdicts in: none, cassandra or influxdb", "none")

	// CassandraAddress represents the cassandra address flag.
	CassandraAddress = NewStringFlag("cassandra_addr", "Address of Cassandra DB endpoint", "127.0.0.1")
	// CassandraPort represents the cassandra port flag.
	CassandraPort = NewIntFlag("cassandra_port", "Port of Cassandra DB endpoint", 9042)
	// CassandraUsername holds the user name which will be presented when connecting to the cluster.
	CassandraUsername = NewStringFlag("cassandra_username", "The user name which will be presented when connecting to the cluster", "")
	// CassandraPassword holds the password which will be presented when connecting to the cluster.
	CassandraPassword = NewStringFlag("cassandra_password", "The password which will be presented when connecting to the cluster", "")
	// CassandraConnectionTimeout encodes the initial connection timeout in seconds.
	CassandraConnectionTimeout = NewIntFlag("cassandra_timeout_connection", "Initial connection timeout in seconds", 10)
	// CassandraTimeout encodes the per-query timeout in seconds.
	CassandraTimeout = NewIntFlag("cassandra_timeout", "Query timeout in seconds", 5)
	// CassandraKeyspaceName holds the keyspace verdicts are stored in.
	CassandraKeyspaceName = NewStringFlag("cassandra_keyspace_name", "Keyspace verdicts are stored in", "snapcheck")
	// CassandraCreateKeyspace enables creating the keyspace on connect.
	CassandraCreateKeyspace = NewBoolFlag("cassandra_create_keyspace", "Create keyspace on connect when it does not exist", true)
	// CassandraIgnorePeerAddr ignores the peer addresses the cluster advertises.
	CassandraIgnorePeerAddr = NewBoolFlag("cassandra_ignore_peer_addr", "Ignore peer addresses advertised by the cluster", false)
	// CassandraInitialHostLookup enables the initial host lookup on connect.
	CassandraInitialHostLookup = NewBoolFlag("cassandra_initial_host_lookup", "Perform initial host lookup on connect", true)
	// CassandraSslEnabled enables SSL encryption when connecting to the cluster.
	CassandraSslEnabled = NewBoolFlag("cassandra_ssl", "Enable SSL encryption when connecting to the cluster", false)
	// CassandraSslHostValidation enables server certificate verification.
	CassandraSslHostValidation = NewBoolFlag("cassandra_ssl_host_validation", "Verify the server certificate", false)
	// CassandraSslCAPath points to the CA certificate bundle.
	CassandraSslCAPath = NewStringFlag("cassandra_ssl_ca_path", "Path to the CA certificate bundle", "")
	// CassandraSslCertPath points to the client certificate.
	CassandraSslCertPath = NewStringFlag("cassandra_ssl_cert_path", "Path to the client certificate", "")
	// CassandraSslKeyPath points to the client key.
	CassandraSslKeyPath = NewStringFlag("cassandra_ssl_key_path", "Path to the client key", "")

	// InfluxDBAddress represents the influxdb address flag.
	InfluxDBAddress = NewStringFlag("influxdb_addr", "Address of InfluxDB endpoint", "127.0.0.1")
	// InfluxDBPort represents the influxdb port flag.
	InfluxDBPort = NewIntFlag("influxdb_port", "Port of InfluxDB endpoint", 8086)
	// InfluxDBUsername holds the user name which will be presented when connecting to InfluxDB.
	InfluxDBUsername = NewStringFlag("influxdb_username", "The user name which will be presented when connecting to InfluxDB", "")
	// InfluxDBPassword holds the password which will be presented when connecting to InfluxDB.
	InfluxDBPassword = NewStringFlag("influxdb_password", "The password which will be presented when connecting to InfluxDB", "")
	// InfluxDBName holds the database verdicts are stored in.
	InfluxDBName = NewStringFlag("influxdb_name", "InfluxDB database verdicts are stored in", "snapcheck")
	// InfluxDBCreateDatabase enables creating the database on connect.
	InfluxDBCreateDatabase = NewBoolFlag("influxdb_create_database", "Create database on connect when it does not exist", true)
	// InfluxDBInsecureSkipVerify disables certificate verification for HTTPS endpoints.
	InfluxDBInsecureSkipVerify = NewBoolFlag("influxdb_insecure_skip_verify", "Skip certificate verification for HTTPS InfluxDB endpoints", false)
)
