package db

import (
	"database/sql"
	"time"

	"github.com/christianriccio/Data-managment-PhDCourse/pkg/query"
	"github.com/gocql/gocql"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	// Registers "sqlite" database/sql driver.
	_ "modernc.org/sqlite"
)

const (
	// DriverSQLite opens SQLite file with database/sql.
	DriverSQLite = "sqlite"
	// DriverCassandra opens gocql session.
	DriverCassandra = "cassandra"
)

// Config describes where collision records are stored.
type Config struct {
	Driver            string
	SQLitePath        string
	CassandraAddress  string
	CassandraKeyspace string
	CassandraTimeout  time.Duration
}

// DefaultConfig returns configuration of local SQLite database.
func DefaultConfig() Config {
	return Config{
		Driver:            DriverSQLite,
		SQLitePath:        "switrs.sqlite",
		CassandraAddress:  "127.0.0.1",
		CassandraKeyspace: "switrs",
		CassandraTimeout:  10 * time.Second,
	}
}

// Connection owns an open database handle and hands out cursors for it.
type Connection struct {
	sqlDB   *sql.DB
	session *gocql.Session
}

// Open connects to database described by config.
func Open(config Config) (*Connection, error) {
	switch config.Driver {
	case DriverSQLite:
		return OpenSQLite(config.SQLitePath)
	case DriverCassandra:
		return OpenCassandra(config.CassandraAddress, config.CassandraKeyspace, config.CassandraTimeout)
	}
	return nil, errors.Errorf("unknown database driver %q", config.Driver)
}

// OpenSQLite opens SQLite database file.
func OpenSQLite(path string) (*Connection, error) {
	logrus.Debugf("opening SQLite database %q", path)
	sqlDB, err := sql.Open(DriverSQLite, path)
	if err != nil {
		return nil, errors.Wrapf(err, "cannot open SQLite database %q", path)
	}
	if err := sqlDB.Ping(); err != nil {
		sqlDB.Close()
		return nil, errors.Wrapf(err, "cannot connect to SQLite database %q", path)
	}
	return &Connection{sqlDB: sqlDB}, nil
}

func configureCluster(ip string, keyspace string, timeout time.Duration) *gocql.ClusterConfig {
	cluster := gocql.NewCluster(ip)
	cluster.Keyspace = keyspace
	cluster.ProtoVersion = 4
	cluster.Consistency = gocql.One
	cluster.Timeout = timeout
	return cluster
}

// OpenCassandra creates Cassandra session in given keyspace.
func OpenCassandra(ip string, keyspace string, timeout time.Duration) (*Connection, error) {
	logrus.Debugf("connecting to Cassandra %s, keyspace %q", ip, keyspace)
	session, err := configureCluster(ip, keyspace, timeout).CreateSession()
	if err != nil {
		return nil, errors.Wrapf(err, "cannot create Cassandra session with %s", ip)
	}
	return &Connection{session: session}, nil
}

// SQL returns underlying database/sql handle or nil for Cassandra connections.
func (c *Connection) SQL() *sql.DB {
	return c.sqlDB
}

// Cursor returns new cursor for the connection.
func (c *Connection) Cursor() query.Cursor {
	if c.session != nil {
		return query.NewCassandraCursor(c.session)
	}
	return query.NewSQLCursor(c.sqlDB)
}

// Close closes the connection.
func (c *Connection) Close() error {
	if c.session != nil {
		if c.session.Closed() {
			return errors.New("session already closed")
		}
		c.session.Close()
		return nil
	}
	return c.sqlDB.Close()
}
