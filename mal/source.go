package mal

import (
	"context"
	"fmt"

	"github.com/kinometa/kinometa/field"
	"github.com/kinometa/kinometa/ident"
	"github.com/kinometa/kinometa/source"
	"github.com/samber/lo"
	"golang.org/x/text/language"
)

// ID of the MyAnimeList API source.
const ID = "mal"

// Source reads the MyAnimeList API. It is addressed by the MAL id learned from the bootstrap source.
type Source struct{}

func (Source) ID() string   { return ID }
func (Source) Name() string { return "MyAnimeList" }

func (Source) Capability() source.Capability {
	return source.Capability{
		Fields: field.Of(
			field.Title, field.Synonyms, field.Overview, field.Genres, field.Poster, field.Status,
			field.Aired, field.Episodes, field.Runtime, field.Rating, field.Studios, field.Certification,
		),
		DefaultLocale: language.English,
		Locales:       []language.Tag{language.English, language.Japanese},
		Kinds:         []source.Kind{source.KindAnime, source.KindMovie, source.KindSeries},
		Namespace:     ident.MAL,
	}
}

func (Source) Fetch(ctx context.Context, req source.Request) (*source.Partial, error) {
	id, ok := req.ID.Int()
	if !ok || !req.ID.IsValid() {
		return nil, fmt.Errorf("mal needs a numeric id, got %q", req.ID)
	}

	anime, err := GetByID(ctx, int(id))
	if err != nil {
		return nil, err
	}

	p := source.NewPartial(ID)
	p.Refs.Set(ident.MAL, ident.Numeric(int64(anime.ID)))
	anime.fill(&p.Metadata, req.Fields, req.Locale)
	return p, nil
}

// TitleFor returns the title of a in the given locale, or the default title.
func (a *Anime) TitleFor(locale language.Tag) string {
	base, _ := locale.Base()
	switch base.String() {
	case "ja":
		if a.AlternativeTitles.Ja != "" {
			return a.AlternativeTitles.Ja
		}
	case "en":
		if a.AlternativeTitles.En != "" {
			return a.AlternativeTitles.En
		}
	}
	return a.Title
}

func (a *Anime) fill(m *source.Metadata, fields field.Set, locale language.Tag) {
	load := fields.Contains

	if load(field.Title) {
		m.Title = a.TitleFor(locale)
	}
	if load(field.Synonyms) {
		title := a.TitleFor(locale)
		m.Synonyms = lo.Uniq(lo.Filter(
			append([]string{a.Title, a.AlternativeTitles.En, a.AlternativeTitles.Ja}, a.AlternativeTitles.Synonyms...),
			func(s string, _ int) bool { return s != "" && s != title },
		))
	}
	if load(field.Overview) {
		m.Overview = a.Synopsis
	}
	if load(field.Genres) {
		m.Genres = lo.Map(a.Genres, func(g named, _ int) string { return g.Name })
	}
	if load(field.Poster) {
		m.Cover = source.Cover{Large: a.MainPicture.Large, Medium: a.MainPicture.Medium}
	}
	if load(field.Status) {
		m.Status = statusName(a.Status)
	}
	if load(field.Aired) {
		m.StartDate = source.ParseDate(a.StartDate)
		m.EndDate = source.ParseDate(a.EndDate)
	}
	if load(field.Episodes) {
		m.Episodes = a.NumEpisodes
	}
	if load(field.Runtime) {
		m.Runtime = a.AverageEpisodeDuration / 60
	}
	if load(field.Rating) {
		m.Score = int(a.Mean*10 + 0.5)
	}
	if load(field.Studios) {
		m.Studios = lo.Map(a.Studios, func(s named, _ int) string { return s.Name })
	}
	if load(field.Certification) && a.Rating != "" {
		m.Certification = certification(a.Rating)
	}
}
