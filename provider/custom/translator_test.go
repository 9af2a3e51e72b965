package custom

import (
	"testing"

	"github.com/kinometa/kinometa/ident"
	"github.com/kinometa/kinometa/source"
	. "github.com/smartystreets/goconvey/convey"
	lua "github.com/yuin/gopher-lua"
)

func TestMetadataFromTable(t *testing.T) {
	Convey("metadataFromTable", t, func() {
		L := lua.NewState()
		defer L.Close()

		Convey("Should read every value a script may return", func() {
			err := L.DoString(`
				result = {
					title = "Haibane Renmei",
					synonyms = "Charcoal Feather Federation, 灰羽連盟",
					genres = { "Drama", "Fantasy" },
					cast = { { name = "Ryou Hirohashi", character = "Rakka" }, "Junko Noda" },
					crew = { { name = "Tomokazu Tokoro", role = "Director" }, { role = "nobody" } },
					poster = "https://example.com/cover.jpg",
					aired = "2002-10-09",
					ended = "2002-12",
					episodes = 13,
					runtime = "24",
					rating = 140,
					refs = { mal = "387", kitsu = "slug-is-fine", anidb = "" },
				}
			`)
			So(err, ShouldBeNil)

			m, refs := metadataFromTable(L.GetGlobal("result").(*lua.LTable))
			So(m.Title, ShouldEqual, "Haibane Renmei")
			So(m.Synonyms, ShouldResemble, []string{"Charcoal Feather Federation", "灰羽連盟"})
			So(m.Genres, ShouldResemble, []string{"Drama", "Fantasy"})
			So(m.Cast, ShouldResemble, []source.Person{
				{Name: "Ryou Hirohashi", Character: "Rakka"},
				{Name: "Junko Noda"},
			})
			So(m.Crew, ShouldHaveLength, 1)
			So(m.Cover.Best(), ShouldEqual, "https://example.com/cover.jpg")
			So(m.StartDate, ShouldResemble, source.Date{Year: 2002, Month: 10, Day: 9})
			So(m.EndDate, ShouldResemble, source.Date{Year: 2002, Month: 12})
			So(m.Episodes, ShouldEqual, 13)
			So(m.Runtime, ShouldEqual, 24)
			So(m.Score, ShouldEqual, 100)

			So(refs.Get(ident.MAL), ShouldResemble, ident.Numeric(387))
			So(refs.Get(ident.Kitsu), ShouldResemble, ident.Slug("slug-is-fine"))
			So(refs.Namespaces(), ShouldHaveLength, 2)
		})

		Convey("Should leave missing values empty", func() {
			m, refs := metadataFromTable(L.NewTable())
			So(m.Present().IsEmpty(), ShouldBeTrue)
			So(refs.Namespaces(), ShouldBeEmpty)
		})
	})
}
