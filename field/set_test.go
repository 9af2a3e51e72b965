package field

import (
	"encoding/json"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestParse(t *testing.T) {
	Convey("Given a field name", t, func() {
		Convey("It resolves regardless of case and padding", func() {
			f, err := Parse("  GeNres ")
			So(err, ShouldBeNil)
			So(f, ShouldEqual, Genres)
		})

		Convey("It fails for an unknown name", func() {
			_, err := Parse("smell")
			So(err, ShouldNotBeNil)
		})

		Convey("Every known field round-trips through its name", func() {
			for _, f := range All() {
				parsed, err := Parse(f.String())
				So(err, ShouldBeNil)
				So(parsed, ShouldEqual, f)
			}
		})
	})
}

func TestSet(t *testing.T) {
	Convey("Given two field sets", t, func() {
		requested := Of(Title, Genres, Cast)
		supplied := Of(Title, Overview, Genres)

		Convey("Intersect keeps only the shared fields", func() {
			got := requested.Intersect(supplied)
			So(got, ShouldResemble, Of(Title, Genres))
			So(got.IsSubsetOf(requested), ShouldBeTrue)
			So(got.IsSubsetOf(supplied), ShouldBeTrue)
		})

		Convey("Intersect with a disjoint set is empty", func() {
			So(requested.Intersect(Of(Poster, Banner)).IsEmpty(), ShouldBeTrue)
		})

		Convey("Union and Without behave like set algebra", func() {
			So(requested.Union(supplied).Len(), ShouldEqual, 4)
			So(requested.Without(supplied), ShouldResemble, Of(Cast))
		})

		Convey("Fields are listed in declaration order", func() {
			So(Of(Cast, Title, Genres).Fields(), ShouldResemble, []Field{Title, Genres, Cast})
		})

		Convey("The zero value is empty", func() {
			var s Set
			So(s.IsEmpty(), ShouldBeTrue)
			So(s.Len(), ShouldEqual, 0)
			So(s.String(), ShouldEqual, "{}")
		})

		Convey("Invalid fields are never members", func() {
			So(Of(Field(0), Field(200)).IsEmpty(), ShouldBeTrue)
			So(Everything().Contains(Field(0)), ShouldBeFalse)
		})
	})

	Convey("Given a list of names", t, func() {
		Convey("all expands to every field", func() {
			s, err := ParseList([]string{"title", "all"})
			So(err, ShouldBeNil)
			So(s, ShouldResemble, Everything())
		})

		Convey("An unknown name fails the whole list", func() {
			_, err := ParseList([]string{"title", "nope"})
			So(err, ShouldNotBeNil)
		})

		Convey("Names after all are still validated", func() {
			_, err := ParseList([]string{"all", "bogus"})
			So(err, ShouldNotBeNil)
		})
	})

	Convey("A set is encoded as a list of names", t, func() {
		b, err := json.Marshal(Of(Rating, Title))
		So(err, ShouldBeNil)
		So(string(b), ShouldEqual, `["title","rating"]`)

		var s Set
		So(json.Unmarshal(b, &s), ShouldBeNil)
		So(s, ShouldResemble, Of(Title, Rating))
	})
}
