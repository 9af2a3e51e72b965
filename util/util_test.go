package util

import (
	"testing"

	"github.com/kinometa/kinometa/filesystem"
	"github.com/samber/lo"
	. "github.com/smartystreets/goconvey/convey"
)

func init() {
	filesystem.SetMemMapFs()
}

func TestSanitizeFilename(t *testing.T) {
	Convey("SanitizeFilename", t, func() {
		Convey("Should replace invalid chars", func() {
			So(SanitizeFilename("file:name?.txt"), ShouldEqual, "file_name_.txt")
		})
		Convey("Should collapse underscores", func() {
			So(SanitizeFilename("file__name.txt"), ShouldEqual, "file_name.txt")
		})
		Convey("Should trim separators", func() {
			So(SanitizeFilename("-file-name-"), ShouldEqual, "file-name")
		})
	})
}

func TestQuantify(t *testing.T) {
	Convey("Quantify", t, func() {
		So(Quantify(1, "source", "sources"), ShouldEqual, "1 source")
		So(Quantify(2, "source", "sources"), ShouldEqual, "2 sources")
	})
}

func TestPlainText(t *testing.T) {
	Convey("PlainText", t, func() {
		Convey("Should strip tags and keep line breaks", func() {
			got := PlainText("Ginko is a <i>Mushishi</i>.<br><br>He wanders.")
			So(got, ShouldEqual, "Ginko is a Mushishi.\n\nHe wanders.")
		})

		Convey("Should decode entities", func() {
			So(PlainText("Tom &amp; Jerry"), ShouldEqual, "Tom & Jerry")
		})

		Convey("Should leave plain text alone", func() {
			So(PlainText("  plain  "), ShouldEqual, "plain")
		})
	})
}

func TestFileStem(t *testing.T) {
	Convey("FileStem", t, func() {
		So(FileStem("path/to/source.lua"), ShouldEqual, "source")
		So(FileStem("source"), ShouldEqual, "source")
	})
}

func TestMaxMin(t *testing.T) {
	Convey("Max/Min", t, func() {
		So(Max(1, 5, 2), ShouldEqual, 5)
		So(Min(1, 5, 2), ShouldEqual, 1)
	})
}

func TestDelete(t *testing.T) {
	Convey("Delete", t, func() {
		fs := filesystem.API()
		lo.Must0(fs.MkdirAll("/tmp/kinometa/dir", 0o755))
		lo.Must0(fs.WriteFile("/tmp/kinometa/dir/file", []byte("x"), 0o644))

		So(Delete("/tmp/kinometa/dir"), ShouldBeNil)
		So(lo.Must(fs.Exists("/tmp/kinometa/dir")), ShouldBeFalse)
		So(Delete("/tmp/kinometa/missing"), ShouldNotBeNil)
	})
}
