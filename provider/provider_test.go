package provider

import (
	"context"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/kinometa/kinometa/filesystem"
	"github.com/kinometa/kinometa/key"
	"github.com/kinometa/kinometa/where"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
)

func init() {
	filesystem.SetMemMapFs()
	viper.Set(key.NetworkRetries, 1)
}

const script = `
Fields = { "title" }
Namespace = "anidb"
function FetchMetadata(id) return { title = "x" } end
`

func TestGet(t *testing.T) {
	Convey("When trying to get an invalid provider", t, func() {
		_, ok := Get("kek")
		Convey("Then ok should be false", func() {
			So(ok, ShouldBeFalse)
		})
	})

	Convey("Built-in providers are found by id", t, func() {
		p, ok := Get("kitsu")
		So(ok, ShouldBeTrue)
		So(p.IsCustom, ShouldBeFalse)
		So(p.String(), ShouldEqual, "Kitsu")
	})
}

func TestRegistry(t *testing.T) {
	Convey("Given custom scripts in the sources directory", t, func() {
		fs := filesystem.API()
		So(fs.WriteFile(filepath.Join(where.Sources(), "anidb.lua"), []byte(script), 0o644), ShouldBeNil)
		So(fs.WriteFile(filepath.Join(where.Sources(), "broken.lua"), []byte(`Fields = `), 0o644), ShouldBeNil)
		So(fs.WriteFile(filepath.Join(where.Sources(), "notes.txt"), []byte(`hi`), 0o644), ShouldBeNil)

		r := DefaultRegistry()
		defer r.Close()

		Convey("Then only scripts are listed next to the built-in sources", func() {
			So(r.IDs(), ShouldResemble, []string{"anidb custom", "anilist", "broken custom", "kitsu", "mal", "malweb"})
		})

		Convey("Then sources are created once", func() {
			first, ok := r.Resolve("anidb custom")
			So(ok, ShouldBeTrue)
			second, _ := r.Resolve("anidb custom")
			So(second, ShouldEqual, first)
		})

		Convey("Then a script that fails to load is missing", func() {
			_, ok := r.Resolve("broken custom")
			So(ok, ShouldBeFalse)
			So(r.Err("broken custom"), ShouldNotBeNil)
		})

		Convey("Then unknown ids are missing", func() {
			_, ok := r.Resolve("tvdb")
			So(ok, ShouldBeFalse)
			So(r.Err("tvdb"), ShouldBeNil)
		})
	})
}

func TestUpdateCustoms(t *testing.T) {
	Convey("Given a published version of an installed script", t, func() {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path != "/anidb.lua" {
				http.NotFound(w, r)
				return
			}
			_, _ = w.Write([]byte(script + "\n-- v2\n"))
		}))
		defer server.Close()
		RepoRawURL = server.URL + "/"

		fs := filesystem.API()
		_ = fs.Remove(filepath.Join(where.Sources(), "broken.lua"))
		_ = fs.Remove(filepath.Join(where.Sources(), "notes.txt"))
		So(fs.WriteFile(filepath.Join(where.Sources(), "anidb.lua"), []byte(script), 0o644), ShouldBeNil)

		Convey("Then the script is replaced", func() {
			updated, err := UpdateCustoms(context.Background())
			So(err, ShouldBeNil)
			So(updated, ShouldResemble, []string{"anidb"})

			content, _ := fs.ReadFile(filepath.Join(where.Sources(), "anidb.lua"))
			So(string(content), ShouldEndWith, "-- v2\n")
		})
	})
}
