package main

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/christianriccio/Data-managment-PhDCourse/pkg/conf"
	. "github.com/smartystreets/goconvey/convey"
)

func TestRun(t *testing.T) {
	Convey("When a command fails against a SQLite database", t, func() {
		dir, err := ioutil.TempDir("", "collisions")
		So(err, ShouldBeNil)
		defer os.RemoveAll(dir)
		path := filepath.Join(dir, "switrs.sqlite")

		command, err := conf.ParseCommand([]string{"--sqlite_path", path, "query", "SELECT total FROM missing_table"})
		So(err, ShouldBeNil)
		So(command, ShouldEqual, queryCmd.FullCommand())

		Convey("The error is returned to the caller instead of exiting", func() {
			err := run(command)
			So(err, ShouldNotBeNil)
			So(err.Error(), ShouldContainSubstring, "missing_table")
		})
	})
}
