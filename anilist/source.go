package anilist

import (
	"context"
	"fmt"
	"strings"

	"github.com/kinometa/kinometa/field"
	"github.com/kinometa/kinometa/ident"
	"github.com/kinometa/kinometa/key"
	"github.com/kinometa/kinometa/source"
	"github.com/kinometa/kinometa/util"
	"github.com/samber/lo"
	"github.com/spf13/viper"
	"golang.org/x/text/language"
)

// ID of the AniList source.
const ID = "anilist"

// Source queries AniList. It is the default bootstrap source because AniList
// knows the MyAnimeList id of every entry.
type Source struct{}

func (Source) ID() string   { return ID }
func (Source) Name() string { return "AniList" }

func (Source) Capability() source.Capability {
	return source.Capability{
		Fields: field.Of(
			field.Title, field.Synonyms, field.Overview, field.Genres, field.Tags,
			field.Cast, field.Crew, field.Poster, field.Banner, field.Status, field.Aired,
			field.Episodes, field.Runtime, field.Rating, field.Studios, field.Links,
		),
		DefaultLocale: language.English,
		Locales:       []language.Tag{language.English, language.Japanese},
		Kinds:         []source.Kind{source.KindAnime, source.KindMovie, source.KindSeries},
		Bootstrap:     true,
		Namespace:     ident.AniList,
		Searchable:    true,
	}
}

func (Source) Fetch(ctx context.Context, req source.Request) (*source.Partial, error) {
	anime, err := lookup(ctx, req)
	if err != nil {
		return nil, err
	}

	p := source.NewPartial(ID)
	p.Refs.Set(ident.AniList, ident.Numeric(int64(anime.ID)))
	p.Refs.Set(ident.MAL, ident.Numeric(int64(anime.IDMal)))
	anime.fill(&p.Metadata, req.Fields, req.Locale)
	return p, nil
}

func lookup(ctx context.Context, req source.Request) (*Anime, error) {
	if id, ok := req.ID.Int(); ok && req.ID.IsValid() {
		return GetByID(ctx, int(id))
	}

	if req.Title == "" {
		return nil, source.ErrNotFound
	}

	if anime := GetCachedRelation(req.Title); anime != nil {
		return anime, nil
	}
	return FindClosest(ctx, req.Title)
}

// TitleFor returns the title of a in the given locale: native for Japanese,
// english when it exists, romaji otherwise.
func (a *Anime) TitleFor(locale language.Tag) string {
	base, _ := locale.Base()
	japanese, _ := language.Japanese.Base()

	if base == japanese && a.Title.Native != "" {
		return a.Title.Native
	}
	return a.Name()
}

func (a *Anime) fill(m *source.Metadata, fields field.Set, locale language.Tag) {
	load := fields.Contains
	limit := viper.GetInt(key.MetadataCastLimit)

	if load(field.Title) {
		m.Title = a.TitleFor(locale)
	}
	if load(field.Synonyms) {
		title := a.TitleFor(locale)
		m.Synonyms = lo.Uniq(lo.Filter(
			append([]string{a.Title.English, a.Title.Romaji, a.Title.Native}, a.Synonyms...),
			func(s string, _ int) bool { return s != "" && s != title },
		))
	}
	if load(field.Overview) {
		m.Overview = util.PlainText(a.Description)
	}
	if load(field.Genres) {
		m.Genres = a.Genres
	}
	if load(field.Tags) {
		threshold := viper.GetInt(key.MetadataTagRelevanceThreshold)
		m.Tags = lo.FilterMap(a.Tags, func(t tag, _ int) (string, bool) {
			return t.Name, t.Rank >= threshold
		})
	}
	if load(field.Cast) {
		for _, edge := range a.Characters.Edges {
			for _, va := range edge.VoiceActors {
				m.Cast = append(m.Cast, source.Person{
					Name:      va.Name.Full,
					Role:      roleName(edge.Role),
					Character: edge.Node.Name.Full,
				})
			}
		}
		m.Cast = capPeople(m.Cast, limit)
	}
	if load(field.Crew) {
		m.Crew = capPeople(lo.Map(a.Staff.Edges, func(edge staffEdge, _ int) source.Person {
			return source.Person{Name: edge.Node.Name.Full, Role: edge.Role}
		}), limit)
	}
	if load(field.Poster) {
		m.Cover = source.Cover{
			ExtraLarge: a.CoverImage.ExtraLarge,
			Large:      a.CoverImage.Large,
			Medium:     a.CoverImage.Medium,
			Color:      a.CoverImage.Color,
		}
	}
	if load(field.Banner) {
		m.BannerImage = a.BannerImage
	}
	if load(field.Status) {
		m.Status = statusName(a.Status)
	}
	if load(field.Aired) {
		m.StartDate = source.Date(a.StartDate)
		m.EndDate = source.Date(a.EndDate)
	}
	if load(field.Episodes) {
		m.Episodes = a.Episodes
	}
	if load(field.Runtime) {
		m.Runtime = a.Duration
	}
	if load(field.Rating) {
		m.Score = a.AverageScore
	}
	if load(field.Studios) {
		m.Studios = lo.Map(a.Studios.Nodes, func(s studio, _ int) string {
			return s.Name
		})
	}
	if load(field.Links) {
		m.URLs = lo.Compact(append([]string{a.SiteURL}, lo.Map(a.External, func(e link, _ int) string {
			return e.URL
		})...))
		if a.IDMal > 0 {
			m.URLs = append(m.URLs, fmt.Sprintf("https://myanimelist.net/anime/%d", a.IDMal))
		}
	}
}

func capPeople(people []source.Person, limit int) []source.Person {
	if limit > 0 && len(people) > limit {
		return people[:limit]
	}
	return people
}

func roleName(role string) string {
	return util.Capitalize(strings.ToLower(role))
}

func statusName(status string) string {
	switch status {
	case "FINISHED":
		return "Finished"
	case "RELEASING":
		return "Airing"
	case "NOT_YET_RELEASED":
		return "Upcoming"
	case "CANCELLED":
		return "Cancelled"
	case "HIATUS":
		return "Hiatus"
	default:
		return roleName(status)
	}
}
