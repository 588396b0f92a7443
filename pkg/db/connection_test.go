package db

import (
	"io/ioutil"
	"os"
	"path"
	"testing"
	"time"

	"github.com/christianriccio/Data-managment-PhDCourse/pkg/query"
	"github.com/gocql/gocql"
	. "github.com/smartystreets/goconvey/convey"
)

func TestSQLiteConnection(t *testing.T) {
	Convey("While opening a SQLite database file", t, func() {
		dir, err := ioutil.TempDir("", "collisions")
		So(err, ShouldBeNil)
		defer os.RemoveAll(dir)

		config := DefaultConfig()
		config.SQLitePath = path.Join(dir, "switrs.sqlite")
		connection, err := Open(config)
		So(err, ShouldBeNil)
		defer connection.Close()

		_, err = connection.SQL().Exec(`CREATE TABLE parties (vehicle_make TEXT, party_age INTEGER)`)
		So(err, ShouldBeNil)
		_, err = connection.SQL().Exec(`INSERT INTO parties VALUES ('ford', 31), ('toyota', 45)`)
		So(err, ShouldBeNil)

		Convey("Its cursor loads query results", func() {
			f, err := query.Load(connection.Cursor(), "SELECT vehicle_make, party_age FROM parties", true)
			So(err, ShouldBeNil)
			So(f.Columns(), ShouldResemble, []string{"vehicle_make", "party_age"})

			makes, err := f.Strings("vehicle_make")
			So(err, ShouldBeNil)
			So(makes, ShouldResemble, []string{"ford", "toyota"})
		})
	})
}

func TestOpen(t *testing.T) {
	Convey("Unknown driver cannot be opened", t, func() {
		config := DefaultConfig()
		config.Driver = "oracle"
		_, err := Open(config)
		So(err, ShouldNotBeNil)
	})

	Convey("Cassandra cluster is configured for given keyspace", t, func() {
		cluster := configureCluster("127.0.0.1", "switrs", time.Second)
		So(cluster.Keyspace, ShouldEqual, "switrs")
		So(cluster.ProtoVersion, ShouldEqual, 4)
		So(cluster.Consistency, ShouldEqual, gocql.One)
		So(cluster.Timeout, ShouldEqual, time.Second)
	})
}

func TestConfigFromFlags(t *testing.T) {
	Convey("Without parsing, configuration from flags equals the default one", t, func() {
		So(ConfigFromFlags(), ShouldResemble, DefaultConfig())
	})
}
