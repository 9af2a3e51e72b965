package kitsu

import (
	"context"
	"math"
	"strconv"

	"github.com/kinometa/kinometa/field"
	"github.com/kinometa/kinometa/ident"
	"github.com/kinometa/kinometa/source"
	"github.com/samber/lo"
	"golang.org/x/text/language"
)

// ID of the Kitsu source.
const ID = "kitsu"

const malSite = "myanimelist/anime"

// Source reads Kitsu. It is addressed by the numeric Kitsu id and falls back to a title search.
type Source struct{}

func (Source) ID() string   { return ID }
func (Source) Name() string { return "Kitsu" }

func (Source) Capability() source.Capability {
	return source.Capability{
		Fields: field.Of(
			field.Title, field.Synonyms, field.Overview, field.Poster, field.Banner, field.Status,
			field.Aired, field.Episodes, field.Runtime, field.Rating, field.Certification,
		),
		DefaultLocale: language.English,
		Locales:       []language.Tag{language.English, language.Japanese},
		Kinds:         []source.Kind{source.KindAnime, source.KindMovie, source.KindSeries},
		Namespace:     ident.Kitsu,
		Searchable:    true,
	}
}

func (Source) Fetch(ctx context.Context, req source.Request) (*source.Partial, error) {
	var (
		anime *Anime
		err   error
	)

	if id, ok := req.ID.Int(); ok && req.ID.IsValid() {
		anime, err = GetByID(ctx, int(id))
	} else {
		anime, err = FindClosest(ctx, req.Title)
	}
	if err != nil {
		return nil, err
	}

	p := source.NewPartial(ID)
	p.Refs.Set(ident.Kitsu, ident.Numeric(int64(anime.ID)))
	if mal, err := strconv.ParseInt(anime.External[malSite], 10, 64); err == nil && mal > 0 {
		p.Refs.Set(ident.MAL, ident.Numeric(mal))
	}

	anime.fill(&p.Metadata, req.Fields, req.Locale)
	return p, nil
}

// TitleFor returns the title of a in the given locale, or the canonical title.
func (a *Anime) TitleFor(locale language.Tag) string {
	base, _ := locale.Base()

	keys := []string{"en", "en_us", "en_jp"}
	if base.String() == "ja" {
		keys = []string{"ja_jp"}
	}

	for _, k := range keys {
		if t := a.Attributes.Titles[k]; t != "" {
			return t
		}
	}
	return a.Attributes.CanonicalTitle
}

func (a *Anime) fill(m *source.Metadata, fields field.Set, locale language.Tag) {
	load := fields.Contains
	attr := a.Attributes

	if load(field.Title) {
		m.Title = a.TitleFor(locale)
	}
	if load(field.Synonyms) {
		title := a.TitleFor(locale)
		m.Synonyms = lo.Uniq(lo.Filter(
			append(append(lo.Values(attr.Titles), attr.CanonicalTitle), attr.AbbreviatedTitles...),
			func(s string, _ int) bool { return s != "" && s != title },
		))
	}
	if load(field.Overview) {
		m.Overview = attr.Synopsis
	}
	if load(field.Poster) && attr.PosterImage != nil {
		m.Cover = source.Cover{
			ExtraLarge: attr.PosterImage.Original,
			Large:      attr.PosterImage.Large,
			Medium:     attr.PosterImage.Medium,
		}
	}
	if load(field.Banner) && attr.CoverImage != nil {
		m.BannerImage = lo.CoalesceOrEmpty(attr.CoverImage.Original, attr.CoverImage.Large)
	}
	if load(field.Status) {
		m.Status = statusName(attr.Status)
	}
	if load(field.Aired) {
		m.StartDate = source.ParseDate(attr.StartDate)
		m.EndDate = source.ParseDate(attr.EndDate)
	}
	if load(field.Episodes) {
		m.Episodes = attr.EpisodeCount
	}
	if load(field.Runtime) {
		m.Runtime = attr.EpisodeLength
	}
	if load(field.Rating) {
		if score, err := strconv.ParseFloat(attr.AverageRating, 64); err == nil {
			m.Score = int(math.Round(score))
		}
	}
	if load(field.Certification) {
		m.Certification = attr.AgeRating
	}
}

func statusName(status string) string {
	switch status {
	case "finished":
		return "Finished"
	case "current":
		return "Airing"
	case "upcoming", "unreleased", "tba":
		return "Upcoming"
	default:
		return ""
	}
}
