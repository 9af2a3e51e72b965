package source

import (
	"testing"

	"github.com/kinometa/kinometa/field"
	"github.com/kinometa/kinometa/ident"
	. "github.com/smartystreets/goconvey/convey"
)

func TestMedia(t *testing.T) {
	Convey("Given an empty media item", t, func() {
		m := NewMedia(KindAnime, "Cowboy Bebop")

		Convey("Title falls back to the lookup query", func() {
			So(m.Title(), ShouldEqual, "Cowboy Bebop")
			So(m.Fields().IsEmpty(), ShouldBeTrue)
		})

		Convey("Merging disjoint partials keeps both", func() {
			a := NewPartial("a")
			a.Metadata.Title = "Cowboy Bebop"
			a.Refs.Set(ident.MAL, ident.Numeric(1))

			b := NewPartial("b")
			b.Metadata.Genres = []string{"Action", "Sci-Fi"}

			m.Merge(a)
			m.Merge(b)

			So(m.Fields(), ShouldResemble, field.Of(field.Title, field.Genres))
			So(m.Origin[field.Title], ShouldEqual, "a")
			So(m.Origin[field.Genres], ShouldEqual, "b")
			So(m.Refs.Get(ident.MAL), ShouldResemble, ident.Numeric(1))
		})

		Convey("The last write wins for overlapping fields", func() {
			a := NewPartial("a")
			a.Metadata.Overview = "first"
			b := NewPartial("b")
			b.Metadata.Overview = "second"

			m.Merge(a)
			m.Merge(b)
			So(m.Metadata.Overview, ShouldEqual, "second")
			So(m.Origin[field.Overview], ShouldEqual, "b")
		})

		Convey("Empty values never erase merged ones", func() {
			a := NewPartial("a")
			a.Metadata.Score = 86
			m.Merge(a)
			m.Merge(NewPartial("b"))
			So(m.Metadata.Score, ShouldEqual, 86)
		})

		Convey("Merged slices do not alias the partial", func() {
			a := NewPartial("a")
			a.Metadata.Genres = []string{"Drama"}
			m.Merge(a)
			a.Metadata.Genres[0] = "Comedy"
			So(m.Metadata.Genres[0], ShouldEqual, "Drama")
		})

		Convey("Cover prefers the largest image", func() {
			_, err := m.Cover()
			So(err, ShouldNotBeNil)

			m.Metadata.Cover.Medium = "med"
			m.Metadata.Cover.Large = "large"
			cover, err := m.Cover()
			So(err, ShouldBeNil)
			So(cover, ShouldEqual, "large")
		})
	})
}

func TestPartial(t *testing.T) {
	Convey("Given a partial with several fields", t, func() {
		p := NewPartial("anilist")
		p.Metadata.Title = "Trigun"
		p.Metadata.Genres = []string{"Action"}
		p.Metadata.StartDate = Date{Year: 1998}
		p.Refs.Set(ident.AniList, ident.Numeric(6))

		Convey("Restrict drops fields outside the set and keeps refs", func() {
			r := p.Restrict(field.Of(field.Title, field.Cast))
			So(r.Fields(), ShouldResemble, field.Of(field.Title))
			So(r.Refs.Get(ident.AniList), ShouldResemble, ident.Numeric(6))
			So(r.Source, ShouldEqual, "anilist")
		})

		Convey("Restrict to nothing still carries identifiers", func() {
			r := p.Restrict(field.Set{})
			So(r.Fields().IsEmpty(), ShouldBeTrue)
			So(r.IsEmpty(), ShouldBeFalse)
		})

		Convey("A fresh partial is empty", func() {
			So(NewPartial("x").IsEmpty(), ShouldBeTrue)
			var nilPartial *Partial
			So(nilPartial.IsEmpty(), ShouldBeTrue)
		})
	})

	Convey("Dates render with the known precision", t, func() {
		So(Date{Year: 1998}.String(), ShouldEqual, "1998")
		So(Date{Year: 1998, Month: 4}.String(), ShouldEqual, "1998-04")
		So(Date{Year: 1998, Month: 4, Day: 3}.String(), ShouldEqual, "1998-04-03")
		So(Date{}.IsZero(), ShouldBeTrue)
	})

	Convey("Partial dates are parsed", t, func() {
		So(ParseDate("2006-06"), ShouldResemble, Date{Year: 2006, Month: 6})
		So(ParseDate(" 2005-10-23 "), ShouldResemble, Date{Year: 2005, Month: 10, Day: 23})
		So(ParseDate("soon").IsZero(), ShouldBeTrue)
		So(ParseDate("").IsZero(), ShouldBeTrue)
	})

	Convey("Kinds parse by name", t, func() {
		k, err := ParseKind("Movie")
		So(err, ShouldBeNil)
		So(k, ShouldEqual, KindMovie)

		_, err = ParseKind("podcast")
		So(err, ShouldNotBeNil)
	})
}
