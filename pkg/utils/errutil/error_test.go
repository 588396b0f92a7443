package errutil

import (
	"testing"

	"github.com/pkg/errors"
	. "github.com/smartystreets/goconvey/convey"
)

func TestCollection(t *testing.T) {
	Convey("When gathering errors", t, func() {
		var collection Collection

		Convey("Empty collection gives no error", func() {
			So(collection.ErrorOrNil(), ShouldBeNil)
		})

		Convey("Nil errors are skipped", func() {
			collection.Add(nil)
			So(collection.Len(), ShouldEqual, 0)
			So(collection.ErrorOrNil(), ShouldBeNil)
		})

		Convey("Single error is returned untouched", func() {
			first := errors.New("first")
			collection.Add(first)
			So(collection.ErrorOrNil(), ShouldEqual, first)
		})

		Convey("Messages of many errors are joined", func() {
			collection.Add(errors.New("first"))
			collection.Add(nil)
			collection.Add(errors.New("second"))
			So(collection.Len(), ShouldEqual, 2)
			So(collection.ErrorOrNil().Error(), ShouldEqual, "first; second")
		})
	})
}
