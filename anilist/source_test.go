package anilist

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/kinometa/kinometa/field"
	"github.com/kinometa/kinometa/filesystem"
	"github.com/kinometa/kinometa/ident"
	"github.com/kinometa/kinometa/key"
	"github.com/kinometa/kinometa/source"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/viper"
	"golang.org/x/text/language"
)

func init() {
	filesystem.SetMemMapFs()
	viper.Set(key.MetadataTagRelevanceThreshold, 60)
	viper.Set(key.NetworkRetries, 1)
}

const mushishi = `{
	"id": 457,
	"idMal": 457,
	"title": {"romaji": "Mushishi", "english": "Mushi-Shi", "native": "蟲師"},
	"description": "Ginko is a <i>Mushishi</i>.<br><br>He wanders.",
	"tags": [{"name": "Iyashikei", "rank": 91}, {"name": "Episodic", "rank": 20}],
	"genres": ["Adventure", "Mystery"],
	"characters": {"edges": [{"role": "MAIN", "node": {"name": {"full": "Ginko"}}, "voiceActors": [{"name": {"full": "Yuuto Nakano"}}]}]},
	"staff": {"edges": [{"role": "Director", "node": {"name": {"full": "Hiroshi Nagahama"}}}]},
	"studios": {"nodes": [{"name": "Artland"}]},
	"startDate": {"year": 2005, "month": 10, "day": 23},
	"endDate": {"year": 2006, "month": 6, "day": 19},
	"status": "FINISHED",
	"episodes": 26,
	"duration": 25,
	"averageScore": 86,
	"siteUrl": "https://anilist.co/anime/457",
	"coverImage": {"large": "https://img/457.jpg"}
}`

func server() *httptest.Server {
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var body struct {
			Variables map[string]any `json:"variables"`
		}
		_ = json.NewDecoder(r.Body).Decode(&body)

		w.Header().Set("Content-Type", "application/json")
		switch {
		case body.Variables["id"] == float64(457):
			_, _ = w.Write([]byte(`{"data": {"Media": ` + mushishi + `}}`))
		case body.Variables["id"] != nil:
			w.WriteHeader(http.StatusNotFound)
			_, _ = w.Write([]byte(`{"data": {"Media": null}}`))
		case body.Variables["query"] == "mushishi":
			_, _ = w.Write([]byte(`{"data": {"Page": {"media": [` + mushishi + `]}}}`))
		default:
			_, _ = w.Write([]byte(`{"data": {"Page": {"media": []}}}`))
		}
	}))
}

func TestSource(t *testing.T) {
	Convey("Given an AniList server", t, func() {
		s := server()
		defer s.Close()
		Endpoint = s.URL

		Convey("When fetching by id", func() {
			p, err := Source{}.Fetch(context.Background(), source.Request{
				ID:     ident.Numeric(457),
				Fields: field.Of(field.Title, field.Overview, field.Tags, field.Cast, field.Crew, field.Aired, field.Studios),
				Locale: language.English,
			})
			So(err, ShouldBeNil)

			Convey("Then the requested fields are filled", func() {
				So(p.Metadata.Title, ShouldEqual, "Mushi-Shi")
				So(p.Metadata.Overview, ShouldEqual, "Ginko is a Mushishi.\n\nHe wanders.")
				So(p.Metadata.Tags, ShouldResemble, []string{"Iyashikei"})
				So(p.Metadata.Cast, ShouldResemble, []source.Person{{Name: "Yuuto Nakano", Role: "Main", Character: "Ginko"}})
				So(p.Metadata.Crew[0].Role, ShouldEqual, "Director")
				So(p.Metadata.StartDate, ShouldResemble, source.Date{Year: 2005, Month: 10, Day: 23})
				So(p.Metadata.Studios, ShouldResemble, []string{"Artland"})
			})

			Convey("Then fields that were not requested stay empty", func() {
				So(p.Metadata.Genres, ShouldBeEmpty)
				So(p.Metadata.Episodes, ShouldEqual, 0)
				So(p.Fields().IsSubsetOf(field.Of(field.Title, field.Overview, field.Tags, field.Cast, field.Crew, field.Aired, field.Studios)), ShouldBeTrue)
			})

			Convey("Then both identifiers are learned", func() {
				So(p.Refs.Get(ident.AniList), ShouldResemble, ident.Numeric(457))
				So(p.Refs.Get(ident.MAL), ShouldResemble, ident.Numeric(457))
			})
		})

		Convey("When fetching in Japanese", func() {
			p, err := Source{}.Fetch(context.Background(), source.Request{
				ID:     ident.Numeric(457),
				Fields: field.Of(field.Title, field.Synonyms),
				Locale: language.Japanese,
			})
			So(err, ShouldBeNil)
			So(p.Metadata.Title, ShouldEqual, "蟲師")
			So(p.Metadata.Synonyms, ShouldContain, "Mushi-Shi")
			So(p.Metadata.Synonyms, ShouldNotContain, "蟲師")
		})

		Convey("When searching by title", func() {
			p, err := Source{}.Fetch(context.Background(), source.Request{
				Title:  "Mushishi",
				Fields: field.Of(field.Episodes),
			})
			So(err, ShouldBeNil)
			So(p.Metadata.Episodes, ShouldEqual, 26)
			So(p.Refs.Get(ident.AniList), ShouldResemble, ident.Numeric(457))
		})

		Convey("When the id is unknown", func() {
			_, err := Source{}.Fetch(context.Background(), source.Request{ID: ident.Numeric(1), Fields: field.Of(field.Title)})
			So(IsNotFound(err), ShouldBeTrue)
		})

		Convey("When there is neither an id nor a title", func() {
			_, err := Source{}.Fetch(context.Background(), source.Request{Fields: field.Of(field.Title)})
			So(IsNotFound(err), ShouldBeTrue)
		})
	})
}

func TestCapability(t *testing.T) {
	Convey("AniList is a searchable bootstrap source", t, func() {
		c := Source{}.Capability()
		So(c.Bootstrap, ShouldBeTrue)
		So(c.Searchable, ShouldBeTrue)
		So(c.Namespace, ShouldEqual, ident.AniList)
		So(c.Supports(source.KindAlbum), ShouldBeFalse)
	})
}
