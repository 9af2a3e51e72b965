package filesystem

import (
	"os"
	"path/filepath"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestBackend(t *testing.T) {
	Convey("The backend can be swapped", t, func() {
		SetOsFs()
		So(API().Name(), ShouldEqual, "OsFs")

		SetMemMapFs()
		So(API().Name(), ShouldEqual, "MemMapFS")
	})
}

func TestWriteAtomic(t *testing.T) {
	Convey("Given an in-memory backend", t, func() {
		SetMemMapFs()
		dir := filepath.Join("cache", "responses")
		So(API().MkdirAll(dir, os.ModePerm), ShouldBeNil)
		path := filepath.Join(dir, "entry")

		Convey("A new file is written", func() {
			So(WriteAtomic(path, []byte("first"), 0o644), ShouldBeNil)
			data, err := API().ReadFile(path)
			So(err, ShouldBeNil)
			So(string(data), ShouldEqual, "first")
		})

		Convey("An existing file is replaced and no temp file is left behind", func() {
			So(WriteAtomic(path, []byte("first"), 0o644), ShouldBeNil)
			So(WriteAtomic(path, []byte("second"), 0o644), ShouldBeNil)

			data, err := API().ReadFile(path)
			So(err, ShouldBeNil)
			So(string(data), ShouldEqual, "second")

			entries, err := API().ReadDir(dir)
			So(err, ShouldBeNil)
			So(entries, ShouldHaveLength, 1)
		})
	})

	Convey("Gache files go through the active backend", t, func() {
		SetMemMapFs()
		var g GacheFs
		So(g.MkdirAll("history", os.ModePerm), ShouldBeNil)

		f, err := g.OpenFile(filepath.Join("history", "history.json"), os.O_CREATE|os.O_WRONLY, 0o644)
		So(err, ShouldBeNil)
		_, err = f.Write([]byte("{}"))
		So(err, ShouldBeNil)
		So(f.Close(), ShouldBeNil)

		exists, err := API().Exists(filepath.Join("history", "history.json"))
		So(err, ShouldBeNil)
		So(exists, ShouldBeTrue)
	})
}
