package scrape

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/kinometa/kinometa/field"
	"github.com/kinometa/kinometa/ident"
	"github.com/kinometa/kinometa/source"
	"github.com/samber/lo"
	. "github.com/smartystreets/goconvey/convey"
	"golang.org/x/text/language"
)

type fakeSource struct {
	id         string
	capability source.Capability
	fetch      func(ctx context.Context, req source.Request) (*source.Partial, error)

	mu       sync.Mutex
	requests []source.Request
}

func (f *fakeSource) ID() string                    { return f.id }
func (f *fakeSource) Name() string                  { return f.id }
func (f *fakeSource) Capability() source.Capability { return f.capability }

func (f *fakeSource) Fetch(ctx context.Context, req source.Request) (*source.Partial, error) {
	f.mu.Lock()
	f.requests = append(f.requests, req)
	f.mu.Unlock()
	return f.fetch(ctx, req)
}

func (f *fakeSource) calls() []source.Request {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]source.Request(nil), f.requests...)
}

type mapRegistry map[string]source.Source

func (r mapRegistry) Resolve(id string) (source.Source, bool) {
	s, ok := r[id]
	return s, ok
}

type mapSettings map[string]language.Tag

func (m mapSettings) LocaleFor(id string) (language.Tag, bool) {
	t, ok := m[id]
	return t, ok
}

// bootstrapSource knows the title and learns the mal identifier of the item.
func bootstrapSource() *fakeSource {
	return &fakeSource{
		id: "boot",
		capability: source.Capability{
			Fields:        field.Of(field.Title, field.Overview),
			DefaultLocale: language.English,
			Bootstrap:     true,
			Namespace:     ident.AniList,
			Searchable:    true,
		},
		fetch: func(_ context.Context, req source.Request) (*source.Partial, error) {
			p := source.NewPartial("boot")
			p.Refs.Set(ident.AniList, ident.Numeric(1))
			p.Refs.Set(ident.MAL, ident.Numeric(42))
			p.Metadata.Title = "Mushishi"
			p.Metadata.Overview = "Ginko wanders."
			return p, nil
		},
	}
}

// fieldSource supplies a single genre through the mal namespace.
func fieldSource(id string, f field.Field, fetch func(ctx context.Context, req source.Request) (*source.Partial, error)) *fakeSource {
	s := &fakeSource{
		id: id,
		capability: source.Capability{
			Fields:        field.Of(f),
			DefaultLocale: language.English,
			Namespace:     ident.MAL,
		},
		fetch: fetch,
	}
	if s.fetch == nil {
		s.fetch = func(_ context.Context, req source.Request) (*source.Partial, error) {
			p := source.NewPartial(id)
			fill(&p.Metadata, f, id)
			return p, nil
		}
	}
	return s
}

func fill(m *source.Metadata, f field.Field, value string) {
	switch f {
	case field.Title:
		m.Title = value
	case field.Synonyms:
		m.Synonyms = []string{value}
	case field.Overview:
		m.Overview = value
	case field.Genres:
		m.Genres = []string{value}
	case field.Tags:
		m.Tags = []string{value}
	case field.Cast:
		m.Cast = []source.Person{{Name: value}}
	case field.Crew:
		m.Crew = []source.Person{{Name: value}}
	case field.Poster:
		m.Cover.Large = value
	case field.Banner:
		m.BannerImage = value
	case field.Status:
		m.Status = value
	case field.Studios:
		m.Studios = []string{value}
	case field.Certification:
		m.Certification = value
	case field.Links:
		m.URLs = []string{value}
	}
}

type recorder struct {
	mu     sync.Mutex
	events []Event
}

func (r *recorder) Notify(_ context.Context, event Event) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, event)
	return nil
}

func (r *recorder) count(t EventType) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return lo.CountBy(r.events, func(e Event) bool { return e.Type == t })
}

// wait blocks until observers have seen the terminal event.
func wait(s *Session) *Report {
	select {
	case <-s.Done():
	case <-time.After(5 * time.Second):
		So("session did not finish", ShouldBeEmpty)
	}
	return s.Report()
}

func TestScrape(t *testing.T) {
	Convey("Given a bootstrap source and a secondary source addressed by the learned identifier", t, func() {
		boot := bootstrapSource()
		genres := fieldSource("genres", field.Genres, nil)

		rec := &recorder{}
		o := New(Options{
			Registry:  mapRegistry{"boot": boot, "genres": genres},
			Mapping:   Mapping{field.Title: "boot", field.Overview: "boot", field.Genres: "genres"},
			Observers: []Observer{rec},
		})

		target := source.NewMedia(source.KindAnime, "mushishi")
		report := wait(o.Start(context.Background(), target, field.Of(field.Title, field.Genres), "boot"))

		Convey("Every requested field is merged and attributed to its source", func() {
			So(target.Metadata.Title, ShouldEqual, "Mushishi")
			So(target.Metadata.Genres, ShouldResemble, []string{"genres"})
			So(target.Origin[field.Title], ShouldEqual, "boot")
			So(target.Origin[field.Genres], ShouldEqual, "genres")
			So(report.Missing().IsEmpty(), ShouldBeTrue)
		})

		Convey("Fields that were not requested are not merged", func() {
			So(target.Metadata.Overview, ShouldBeEmpty)
		})

		Convey("The secondary source is addressed by the identifier the bootstrap learned", func() {
			calls := genres.calls()
			So(calls, ShouldHaveLength, 1)
			So(calls[0].ID, ShouldResemble, ident.Numeric(42))
			So(calls[0].Fields, ShouldResemble, field.Of(field.Genres))
			So(target.Refs.Get(ident.MAL), ShouldResemble, ident.Numeric(42))
		})

		Convey("The report records one outcome per source, bootstrap first", func() {
			So(report.Outcomes, ShouldHaveLength, 2)
			So(report.Outcomes[0].Source, ShouldEqual, "boot")
			So(report.Outcomes[0].Bootstrap, ShouldBeTrue)
			So(report.Outcomes[0].Status, ShouldEqual, StatusSucceeded)

			outcome, ok := report.Outcome("genres")
			So(ok, ShouldBeTrue)
			So(outcome.Status, ShouldEqual, StatusSucceeded)
			So(outcome.Merged, ShouldResemble, field.Of(field.Genres))
			So(report.Canceled, ShouldBeFalse)
		})

		Convey("Observers see exactly one terminal event", func() {
			So(rec.count(EventSessionStarted), ShouldEqual, 1)
			So(rec.count(EventJobStarted), ShouldEqual, 2)
			So(rec.count(EventJobFinished), ShouldEqual, 2)
			So(rec.count(EventFinished), ShouldEqual, 1)
		})
	})

	Convey("Given an observer that reads the report on the terminal event", t, func() {
		sessions := make(chan *Session, 1)
		seen := make(chan *Report, 1)

		observer := ObserverFunc(func(ctx context.Context, event Event) error {
			if event.Type != EventFinished {
				return nil
			}
			s := <-sessions

			waitCtx, cancel := context.WithTimeout(ctx, time.Second)
			defer cancel()

			report, err := s.Wait(waitCtx)
			if err != nil {
				return err
			}
			if s.Report() == report {
				seen <- report
			}
			return nil
		})

		o := New(Options{
			Registry:  mapRegistry{"boot": bootstrapSource()},
			Observers: []Observer{observer},
		})

		s := o.Start(context.Background(), source.NewMedia(source.KindAnime, "mushishi"), field.Of(field.Title), "boot")
		sessions <- s
		report := wait(s)

		So(report, ShouldNotBeNil)
		So(len(seen), ShouldEqual, 1)
		So(<-seen, ShouldEqual, report)
	})

	Convey("Given a failing bootstrap source", t, func() {
		boot := bootstrapSource()
		boot.fetch = func(context.Context, source.Request) (*source.Partial, error) {
			return nil, errors.New("unreachable")
		}

		Convey("A secondary that needs the learned identifier is never dispatched", func() {
			cast := fieldSource("cast", field.Cast, nil)
			rec := &recorder{}
			o := New(Options{
				Registry:  mapRegistry{"boot": boot, "cast": cast},
				Mapping:   Mapping{field.Cast: "cast"},
				Observers: []Observer{rec},
			})

			target := source.NewMedia(source.KindAnime, "mushishi")
			report := wait(o.Start(context.Background(), target, field.Of(field.Cast), "boot"))

			So(cast.calls(), ShouldBeEmpty)
			So(rec.count(EventFinished), ShouldEqual, 1)
			So(target.Fields().IsEmpty(), ShouldBeTrue)
			So(target.Refs.Namespaces(), ShouldBeEmpty)

			So(report.Outcomes[0].Status, ShouldEqual, StatusFailed)
			outcome, ok := report.Outcome("cast")
			So(ok, ShouldBeTrue)
			So(outcome.Status, ShouldEqual, StatusSkipped)
			So(errors.Is(outcome.Err, ErrInvalidIdentifier), ShouldBeTrue)
		})

		Convey("A searchable secondary still runs with the title", func() {
			genres := fieldSource("genres", field.Genres, nil)
			genres.capability.Namespace = ident.Kitsu
			genres.capability.Searchable = true

			o := New(Options{
				Registry: mapRegistry{"boot": boot, "genres": genres},
				Mapping:  Mapping{field.Genres: "genres"},
			})

			target := source.NewMedia(source.KindAnime, "mushishi")
			report := wait(o.Start(context.Background(), target, field.Of(field.Genres), "boot"))

			calls := genres.calls()
			So(calls, ShouldHaveLength, 1)
			So(calls[0].ID.IsValid(), ShouldBeFalse)
			So(calls[0].Title, ShouldEqual, "mushishi")

			So(target.Metadata.Genres, ShouldResemble, []string{"genres"})
			outcome, _ := report.Outcome("genres")
			So(outcome.Status, ShouldEqual, StatusSucceeded)
		})
	})

	Convey("Given a varying number of secondary sources", t, func() {
		for n := 0; n <= 6; n++ {
			registry := mapRegistry{"boot": bootstrapSource()}
			mapping := Mapping{field.Title: "boot"}
			requested := field.Of(field.Title)

			extra := []field.Field{field.Genres, field.Tags, field.Cast, field.Crew, field.Studios, field.Links}
			for i := 0; i < n; i++ {
				id := fmt.Sprintf("s%d", i)
				f := extra[i]
				var fetch func(ctx context.Context, req source.Request) (*source.Partial, error)
				switch i % 3 {
				case 1:
					fetch = func(context.Context, source.Request) (*source.Partial, error) {
						return nil, errors.New("boom")
					}
				case 2:
					fetch = func(context.Context, source.Request) (*source.Partial, error) {
						return nil, source.ErrNotFound
					}
				}
				registry[id] = fieldSource(id, f, fetch)
				mapping[f] = id
				requested = requested.With(f)
			}

			rec := &recorder{}
			o := New(Options{Registry: registry, Mapping: mapping, Observers: []Observer{rec}, MaxJobs: 2})
			s := o.Start(context.Background(), source.NewMedia(source.KindAnime, "x"), requested, "boot")
			report := wait(s)

			Convey(fmt.Sprintf("With %d secondaries the session finishes once with every outcome recorded", n), func() {
				So(rec.count(EventFinished), ShouldEqual, 1)
				So(report.Outcomes, ShouldHaveLength, n+1)
				So(s.Report(), ShouldEqual, report)
			})
		}
	})

	Convey("Given many secondaries finishing at the same time", t, func() {
		registry := mapRegistry{"boot": bootstrapSource()}
		mapping := Mapping{field.Title: "boot"}
		requested := field.Of(field.Title)

		var gate sync.WaitGroup
		release := make(chan struct{})
		fields := []field.Field{field.Synonyms, field.Genres, field.Tags, field.Cast, field.Crew, field.Poster, field.Banner, field.Status, field.Studios, field.Certification, field.Links}
		for _, f := range fields {
			f := f
			id := "src-" + f.String()
			gate.Add(1)
			registry[id] = fieldSource(id, f, func(context.Context, source.Request) (*source.Partial, error) {
				gate.Done()
				<-release
				p := source.NewPartial(id)
				fill(&p.Metadata, f, id)
				return p, nil
			})
			mapping[f] = id
			requested = requested.With(f)
		}

		target := source.NewMedia(source.KindAnime, "x")
		s := New(Options{Registry: registry, Mapping: mapping}).Start(context.Background(), target, requested, "boot")
		gate.Wait()
		close(release)
		report := wait(s)

		Convey("No merge is lost", func() {
			So(target.Fields(), ShouldResemble, requested)
			So(report.Missing().IsEmpty(), ShouldBeTrue)
			for _, f := range fields {
				So(target.Origin[f], ShouldEqual, "src-"+f.String())
			}
		})
	})

	Convey("Given secondaries that cannot be dispatched", t, func() {
		kitsu := &fakeSource{
			id: "kitsu",
			capability: source.Capability{
				Fields:    field.Of(field.Tags),
				Namespace: ident.Kitsu,
			},
			fetch: func(context.Context, source.Request) (*source.Partial, error) {
				panic("must not be called")
			},
		}
		movies := &fakeSource{
			id: "movies",
			capability: source.Capability{
				Fields:    field.Of(field.Certification),
				Namespace: ident.MAL,
				Kinds:     []source.Kind{source.KindMovie},
			},
			fetch: kitsu.fetch,
		}

		rec := &recorder{}
		o := New(Options{
			Registry: mapRegistry{"boot": bootstrapSource(), "kitsu": kitsu, "movies": movies},
			Mapping: Mapping{
				field.Title:         "boot",
				field.Tags:          "kitsu",
				field.Certification: "movies",
				field.Genres:        "gone",
			},
			Observers: []Observer{rec},
		})

		target := source.NewMedia(source.KindAnime, "x")
		report := wait(o.Start(context.Background(), target, field.Of(field.Title, field.Tags, field.Certification, field.Genres), "boot"))

		Convey("Each one is skipped with its reason and the session still finishes", func() {
			So(report.Outcomes, ShouldHaveLength, 4)

			reasons := map[string]error{
				"kitsu":  ErrInvalidIdentifier,
				"movies": ErrUnsupportedKind,
				"gone":   ErrSourceUnavailable,
			}
			for id, reason := range reasons {
				outcome, ok := report.Outcome(id)
				So(ok, ShouldBeTrue)
				So(outcome.Status, ShouldEqual, StatusSkipped)
				So(errors.Is(outcome.Err, reason), ShouldBeTrue)
			}

			So(rec.count(EventJobSkipped), ShouldEqual, 3)
			So(rec.count(EventFinished), ShouldEqual, 1)
			So(report.Missing(), ShouldResemble, field.Of(field.Tags, field.Certification, field.Genres))
			So(report.Dispatched(), ShouldHaveLength, 1)
		})
	})

	Convey("Given a secondary with no requested fields", t, func() {
		genres := fieldSource("genres", field.Genres, nil)
		o := New(Options{
			Registry: mapRegistry{"boot": bootstrapSource(), "genres": genres},
			Mapping:  Mapping{field.Title: "boot", field.Genres: "genres"},
		})

		report := wait(o.Start(context.Background(), source.NewMedia(source.KindAnime, "x"), field.Of(field.Title), "boot"))

		Convey("It is skipped without being called", func() {
			outcome, ok := report.Outcome("genres")
			So(ok, ShouldBeTrue)
			So(errors.Is(outcome.Err, ErrNoFields), ShouldBeTrue)
			So(genres.calls(), ShouldBeEmpty)
		})
	})

	Convey("Given a bootstrap with none of its fields requested", t, func() {
		boot := bootstrapSource()
		genres := fieldSource("genres", field.Genres, nil)
		o := New(Options{
			Registry: mapRegistry{"boot": boot, "genres": genres},
			Mapping:  Mapping{field.Title: "boot", field.Genres: "genres"},
		})

		target := source.NewMedia(source.KindAnime, "x")
		report := wait(o.Start(context.Background(), target, field.Of(field.Genres), "boot"))

		Convey("It still runs and only its identifiers are merged", func() {
			So(boot.calls(), ShouldHaveLength, 1)
			So(target.Metadata.Title, ShouldBeEmpty)
			So(target.Refs.Get(ident.MAL), ShouldResemble, ident.Numeric(42))
			So(target.Metadata.Genres, ShouldResemble, []string{"genres"})

			outcome, _ := report.Outcome("boot")
			So(outcome.Status, ShouldEqual, StatusSucceeded)
			So(outcome.Merged.IsEmpty(), ShouldBeTrue)
		})
	})

	Convey("Given a source that returns more than it was asked for", t, func() {
		greedy := fieldSource("greedy", field.Genres, func(context.Context, source.Request) (*source.Partial, error) {
			p := source.NewPartial("greedy")
			p.Metadata.Genres = []string{"Drama"}
			p.Metadata.Title = "Wrong"
			return p, nil
		})
		greedy.capability.Fields = field.Of(field.Genres, field.Title)

		o := New(Options{
			Registry: mapRegistry{"boot": bootstrapSource(), "greedy": greedy},
			Mapping:  Mapping{field.Title: "boot", field.Genres: "greedy"},
		})

		target := source.NewMedia(source.KindAnime, "x")
		wait(o.Start(context.Background(), target, field.Of(field.Title, field.Genres), "boot"))

		Convey("Only the fields assigned to it are merged", func() {
			So(target.Metadata.Title, ShouldEqual, "Mushishi")
			So(target.Metadata.Genres, ShouldResemble, []string{"Drama"})
		})
	})

	Convey("Given failing sources", t, func() {
		o := New(Options{
			Registry: mapRegistry{
				"boot": bootstrapSource(),
				"broken": fieldSource("broken", field.Genres, func(context.Context, source.Request) (*source.Partial, error) {
					return nil, errors.New("connection reset")
				}),
				"panicky": fieldSource("panicky", field.Tags, func(context.Context, source.Request) (*source.Partial, error) {
					panic("nil map")
				}),
				"empty": fieldSource("empty", field.Cast, func(context.Context, source.Request) (*source.Partial, error) {
					return source.NewPartial("empty"), nil
				}),
			},
			Mapping: Mapping{field.Title: "boot", field.Genres: "broken", field.Tags: "panicky", field.Cast: "empty"},
		})

		target := source.NewMedia(source.KindAnime, "x")
		report := wait(o.Start(context.Background(), target, field.Of(field.Title, field.Genres, field.Tags, field.Cast), "boot"))

		Convey("An error is recorded as a failure that names the source", func() {
			outcome, _ := report.Outcome("broken")
			So(outcome.Status, ShouldEqual, StatusFailed)

			var fetchErr *FetchError
			So(errors.As(outcome.Err, &fetchErr), ShouldBeTrue)
			So(fetchErr.Source, ShouldEqual, "broken")
			So(fetchErr.Identifier, ShouldResemble, ident.Numeric(42))
		})

		Convey("A panic is recorded as a failure", func() {
			outcome, _ := report.Outcome("panicky")
			So(outcome.Status, ShouldEqual, StatusFailed)
			So(outcome.Err.Error(), ShouldContainSubstring, "nil map")
		})

		Convey("An empty result is recorded as empty", func() {
			outcome, _ := report.Outcome("empty")
			So(outcome.Status, ShouldEqual, StatusEmpty)
			So(errors.Is(outcome.Err, ErrEmptyResult), ShouldBeTrue)
		})

		Convey("The other results are still merged", func() {
			So(target.Metadata.Title, ShouldEqual, "Mushishi")
			So(report.Missing(), ShouldResemble, field.Of(field.Genres, field.Tags, field.Cast))
		})
	})

	Convey("Given a session canceled while a secondary is in flight", t, func() {
		started := make(chan struct{})
		var finished atomic.Bool

		slow := fieldSource("slow", field.Genres, func(ctx context.Context, _ source.Request) (*source.Partial, error) {
			close(started)
			<-ctx.Done()
			finished.Store(true)
			p := source.NewPartial("slow")
			p.Metadata.Genres = []string{"Late"}
			return p, nil
		})

		rec := &recorder{}
		o := New(Options{
			Registry:  mapRegistry{"boot": bootstrapSource(), "slow": slow},
			Mapping:   Mapping{field.Title: "boot", field.Genres: "slow"},
			Observers: []Observer{rec},
		})

		target := source.NewMedia(source.KindAnime, "x")
		s := o.Start(context.Background(), target, field.Of(field.Title, field.Genres), "boot")
		<-started
		s.Cancel()
		report := wait(s)

		Convey("The late result is discarded and the session finishes once", func() {
			So(finished.Load(), ShouldBeTrue)
			So(report.Canceled, ShouldBeTrue)
			So(target.Metadata.Genres, ShouldBeEmpty)

			outcome, _ := report.Outcome("slow")
			So(outcome.Status, ShouldEqual, StatusCanceled)
			So(errors.Is(outcome.Err, ErrCanceled), ShouldBeTrue)
			So(rec.count(EventFinished), ShouldEqual, 1)
		})
	})

	Convey("Given a context that is already canceled", t, func() {
		boot := bootstrapSource()
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		o := New(Options{Registry: mapRegistry{"boot": boot}, Mapping: Mapping{field.Title: "boot"}})
		report := wait(o.Start(ctx, source.NewMedia(source.KindAnime, "x"), field.Of(field.Title), "boot"))

		Convey("Nothing is dispatched", func() {
			So(boot.calls(), ShouldBeEmpty)
			outcome, _ := report.Outcome("boot")
			So(outcome.Status, ShouldEqual, StatusSkipped)
			So(errors.Is(outcome.Err, ErrCanceled), ShouldBeTrue)
		})
	})

	Convey("Given no mapping", t, func() {
		boot := bootstrapSource()
		target := source.NewMedia(source.KindAnime, "x")
		report := wait(New(Options{Registry: mapRegistry{"boot": boot}}).Start(context.Background(), target, field.Everything(), "boot"))

		Convey("Only the bootstrap runs and supplies everything it can", func() {
			So(report.Outcomes, ShouldHaveLength, 1)
			So(target.Fields(), ShouldResemble, field.Of(field.Title, field.Overview))
		})
	})
}

func TestFieldsFor(t *testing.T) {
	Convey("Given a source and a mapping", t, func() {
		s := fieldSource("s", field.Genres, nil)
		s.capability.Fields = field.Of(field.Genres, field.Tags, field.Cast)

		o := New(Options{
			Registry: mapRegistry{"s": s},
			Mapping:  Mapping{field.Genres: "s", field.Tags: "s", field.Title: "other"},
		})

		Convey("The result is requested, supplied and assigned at once", func() {
			got := o.FieldsFor("s", field.Of(field.Title, field.Genres, field.Cast, field.Tags))
			So(got, ShouldResemble, field.Of(field.Genres, field.Tags))
			So(got.IsSubsetOf(s.capability.Fields), ShouldBeTrue)
		})

		Convey("An unknown source gets nothing", func() {
			So(o.FieldsFor("nope", field.Everything()).IsEmpty(), ShouldBeTrue)
		})

		Convey("Without a mapping only the capability restricts the request", func() {
			o := New(Options{Registry: mapRegistry{"s": s}})
			So(o.FieldsFor("s", field.Everything()), ShouldResemble, s.capability.Fields)
		})
	})
}

func TestLocaleFor(t *testing.T) {
	Convey("Given sources with different locale support", t, func() {
		multi := fieldSource("multi", field.Title, nil)
		multi.capability.DefaultLocale = language.English
		multi.capability.Locales = []language.Tag{language.English, language.Japanese}

		open := fieldSource("open", field.Title, nil)
		open.capability.DefaultLocale = language.Und

		o := New(Options{
			Registry:       mapRegistry{"multi": multi, "open": open},
			Settings:       mapSettings{"multi": language.MustParse("ja-JP")},
			FallbackLocale: language.German,
		})

		Convey("A configured locale is matched against the supported ones", func() {
			So(o.LocaleFor("multi").String(), ShouldEqual, language.Japanese.String())
		})

		Convey("A source without configuration and default gets the fallback", func() {
			So(o.LocaleFor("open").String(), ShouldEqual, language.German.String())
		})

		Convey("An unknown source gets the fallback", func() {
			So(o.LocaleFor("ghost").String(), ShouldEqual, language.German.String())
		})

		Convey("An unsupported configured locale falls back to the source default", func() {
			o := New(Options{
				Registry: mapRegistry{"multi": multi},
				Settings: mapSettings{"multi": language.Zulu},
			})
			So(o.LocaleFor("multi").String(), ShouldEqual, language.English.String())
		})

		Convey("The fallback defaults to English", func() {
			So(New(Options{}).LocaleFor("ghost").String(), ShouldEqual, language.English.String())
		})
	})
}
