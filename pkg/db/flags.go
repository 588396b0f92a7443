package db

import (
	"time"

	"github.com/christianriccio/Data-managment-PhDCourse/pkg/conf"
)

var (
	// DriverFlag selects database backend.
	DriverFlag = conf.NewStringFlag("db_driver", "Database backend with collision records: sqlite or cassandra", DriverSQLite)
	// SQLitePathFlag points to SQLite database file.
	SQLitePathFlag = conf.NewStringFlag("sqlite_path", "Path to SQLite database with collision records", "switrs.sqlite")
	// CassandraAddressFlag represents cassandra address flag.
	CassandraAddressFlag = conf.NewStringFlag("cassandra_addr", "Address of Cassandra DB endpoint", "127.0.0.1")
	// CassandraKeyspaceFlag represents keyspace with collision tables.
	CassandraKeyspaceFlag = conf.NewStringFlag("cassandra_keyspace", "Cassandra keyspace with collision tables", "switrs")
	// CassandraTimeoutFlag bounds a single CQL query.
	CassandraTimeoutFlag = conf.NewDurationFlag("cassandra_timeout", "Timeout of a single Cassandra query", 10*time.Second)
)

// ConfigFromFlags returns connection configuration from command line and environment.
func ConfigFromFlags() Config {
	return Config{
		Driver:            DriverFlag.Value(),
		SQLitePath:        SQLitePathFlag.Value(),
		CassandraAddress:  CassandraAddressFlag.Value(),
		CassandraKeyspace: CassandraKeyspaceFlag.Value(),
		CassandraTimeout:  CassandraTimeoutFlag.Value(),
	}
}
