package ident

import (
	"encoding/json"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestIdentifier(t *testing.T) {
	Convey("Given identifiers of every variant", t, func() {
		Convey("None is never valid", func() {
			So(None().IsValid(), ShouldBeFalse)
			So(Identifier{}.IsValid(), ShouldBeFalse)
			So(None().String(), ShouldBeEmpty)
		})

		Convey("Numeric ids must be positive", func() {
			So(Numeric(1).IsValid(), ShouldBeTrue)
			So(Numeric(0).IsValid(), ShouldBeFalse)
			So(Numeric(-5).IsValid(), ShouldBeFalse)
		})

		Convey("Slugs must not be blank", func() {
			So(Slug("cowboy-bebop").IsValid(), ShouldBeTrue)
			So(Slug("   ").IsValid(), ShouldBeFalse)
		})

		Convey("Validity is stable across calls", func() {
			for _, id := range []Identifier{None(), Numeric(7), Numeric(0), Slug("x"), Slug("")} {
				first := id.IsValid()
				for i := 0; i < 10; i++ {
					So(id.IsValid(), ShouldEqual, first)
				}
			}
		})
	})

	Convey("Parse picks the variant from the text", t, func() {
		So(Parse("42").Kind(), ShouldEqual, KindNumeric)
		So(Parse("one-piece").Kind(), ShouldEqual, KindSlug)
		So(Parse("").Kind(), ShouldEqual, KindNone)

		n, ok := Parse(" 42 ").Int()
		So(ok, ShouldBeTrue)
		So(n, ShouldEqual, 42)
	})

	Convey("JSON keeps the variant", t, func() {
		refs := Refs{AniList: Numeric(1), Kitsu: Slug("cowboy-bebop")}
		b, err := json.Marshal(refs)
		So(err, ShouldBeNil)

		var decoded Refs
		So(json.Unmarshal(b, &decoded), ShouldBeNil)
		So(decoded, ShouldResemble, refs)
	})

	Convey("Large numeric ids survive a JSON round-trip", t, func() {
		id := Numeric(1<<53 + 1)
		b, err := json.Marshal(id)
		So(err, ShouldBeNil)
		So(string(b), ShouldEqual, "9007199254740993")

		var decoded Identifier
		So(json.Unmarshal(b, &decoded), ShouldBeNil)
		So(decoded, ShouldResemble, id)

		So(json.Unmarshal([]byte("1.5"), &decoded), ShouldNotBeNil)
	})
}

func TestRefs(t *testing.T) {
	Convey("Given a set of refs", t, func() {
		refs := Refs{}
		refs.Set(MAL, Numeric(1))

		Convey("Invalid identifiers never overwrite known ones", func() {
			refs.Set(MAL, None())
			refs.Merge(Refs{MAL: Numeric(0)})
			So(refs.Get(MAL), ShouldResemble, Numeric(1))
		})

		Convey("A nil map reads as None", func() {
			var empty Refs
			So(empty.Get(AniList).IsValid(), ShouldBeFalse)
		})

		Convey("Clone is independent", func() {
			clone := refs.Clone()
			clone.Set(Kitsu, Slug("a"))
			So(refs.Get(Kitsu).IsValid(), ShouldBeFalse)
			So(clone.Namespaces(), ShouldResemble, []Namespace{Kitsu, MAL})
		})
	})
}
