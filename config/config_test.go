package config

import (
	"testing"
	"time"

	"github.com/kinometa/kinometa/field"
	"github.com/kinometa/kinometa/filesystem"
	"github.com/kinometa/kinometa/key"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
	"golang.org/x/text/language"
)

func init() {
	filesystem.SetMemMapFs()
}

func TestSetup(t *testing.T) {
	Convey("Config Setup", t, func() {
		So(Setup(), ShouldBeNil)

		Convey("Should have default values populated", func() {
			for name := range Default {
				So(viper.Get(name), ShouldNotBeNil)
			}
		})

		Convey("Every default has a known type", func() {
			for _, f := range Default {
				So(f.typeName(), ShouldNotEqual, "unknown")
			}
		})

		Convey("EnvKeyReplacer should convert dots to underscores", func() {
			So(EnvKeyReplacer.Replace("scrape.max_jobs"), ShouldEqual, "scrape_max_jobs")
		})

		Convey("Env names carry the application prefix", func() {
			f := Default[key.ScrapeBootstrap]
			So(f.Env(), ShouldEqual, "KINOMETA_SCRAPE_BOOTSTRAP")
		})
	})
}

func TestSettings(t *testing.T) {
	Convey("Given the default config", t, func() {
		So(Setup(), ShouldBeNil)

		Convey("The default mapping is valid and names the built-in sources", func() {
			m, err := Mapping()
			So(err, ShouldBeNil)
			So(m[field.Title], ShouldEqual, "anilist")
			So(m.Sources(), ShouldContain, "malweb")
			So(m.Sources(), ShouldContain, "kitsu")
		})

		Convey("All fields are scraped", func() {
			fields, err := Fields()
			So(err, ShouldBeNil)
			So(fields, ShouldResemble, field.Everything())
		})

		Convey("The job timeout is parsed", func() {
			So(Duration(key.ScrapeJobTimeout), ShouldEqual, 30*time.Second)
		})

		Convey("The fallback locale is English", func() {
			So(FallbackLocale().String(), ShouldEqual, language.English.String())
		})

		Convey("A configured source locale is returned", func() {
			viper.Set(key.SourcesLocale, map[string]string{"anilist": "ja", "kitsu": "???"})
			defer viper.Set(key.SourcesLocale, map[string]string{})

			tag, ok := Settings{}.LocaleFor("anilist")
			So(ok, ShouldBeTrue)
			So(tag.String(), ShouldEqual, language.Japanese.String())

			_, ok = Settings{}.LocaleFor("kitsu")
			So(ok, ShouldBeFalse)

			_, ok = Settings{}.LocaleFor("mal")
			So(ok, ShouldBeFalse)
		})
	})
}
