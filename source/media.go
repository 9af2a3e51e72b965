package source

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/kinometa/kinometa/field"
	"github.com/kinometa/kinometa/ident"
)

// Date is a calendar date where any component may be unknown (zero).
type Date struct {
	Year  int `json:"year"`
	Month int `json:"month"`
	Day   int `json:"day"`
}

// IsZero reports whether nothing about the date is known.
func (d Date) IsZero() bool {
	return d.Year == 0 && d.Month == 0 && d.Day == 0
}

func (d Date) String() string {
	switch {
	case d.Year == 0:
		return ""
	case d.Month == 0:
		return fmt.Sprintf("%04d", d.Year)
	case d.Day == 0:
		return fmt.Sprintf("%04d-%02d", d.Year, d.Month)
	default:
		return fmt.Sprintf("%04d-%02d-%02d", d.Year, d.Month, d.Day)
	}
}

// ParseDate reads a partial ISO date: 2005, 2005-10 or 2005-10-23.
// Anything else yields the zero date.
func ParseDate(s string) Date {
	var d Date
	for i, part := range strings.SplitN(strings.TrimSpace(s), "-", 3) {
		n, err := strconv.Atoi(part)
		if err != nil {
			return Date{}
		}

		switch i {
		case 0:
			d.Year = n
		case 1:
			d.Month = n
		case 2:
			d.Day = n
		}
	}
	return d
}

// Person is a member of the cast or crew.
type Person struct {
	Name      string `json:"name" jsonschema:"description=Full name."`
	Role      string `json:"role,omitempty" jsonschema:"description=Role on the production (Director or Main)."`
	Character string `json:"character,omitempty" jsonschema:"description=Character played or voiced, cast only."`
}

// Cover holds the poster art in the sizes a source offers.
type Cover struct {
	ExtraLarge string `json:"extraLarge,omitempty"`
	Large      string `json:"large,omitempty"`
	Medium     string `json:"medium,omitempty"`
	Color      string `json:"color,omitempty" jsonschema:"description=Average color of the image."`
}

// Best returns the largest available image url.
func (c Cover) Best() string {
	for _, u := range []string{c.ExtraLarge, c.Large, c.Medium} {
		if u != "" {
			return u
		}
	}
	return ""
}

// Metadata is the merged set of attributes of an item.
type Metadata struct {
	Title         string   `json:"title,omitempty" jsonschema:"description=Preferred title in the resolved locale."`
	Synonyms      []string `json:"synonyms,omitempty" jsonschema:"description=Alternative titles."`
	Overview      string   `json:"overview,omitempty" jsonschema:"description=Plot summary as plain text."`
	Genres        []string `json:"genres,omitempty"`
	Tags          []string `json:"tags,omitempty"`
	Cast          []Person `json:"cast,omitempty"`
	Crew          []Person `json:"crew,omitempty"`
	Cover         Cover    `json:"cover"`
	BannerImage   string   `json:"bannerImage,omitempty"`
	Status        string   `json:"status,omitempty"`
	StartDate     Date     `json:"startDate"`
	EndDate       Date     `json:"endDate"`
	Episodes      int      `json:"episodes,omitempty"`
	Runtime       int      `json:"runtime,omitempty" jsonschema:"description=Runtime of one episode or the movie in minutes."`
	Score         int      `json:"score,omitempty" jsonschema:"description=Rating normalized to 0-100."`
	Studios       []string `json:"studios,omitempty"`
	Certification string   `json:"certification,omitempty" jsonschema:"description=Age rating such as PG-13."`
	URLs          []string `json:"urls,omitempty"`
}

// Present returns the fields of m that hold a value.
func (m *Metadata) Present() field.Set {
	var s field.Set
	mark := func(f field.Field, ok bool) {
		if ok {
			s = s.With(f)
		}
	}

	mark(field.Title, m.Title != "")
	mark(field.Synonyms, len(m.Synonyms) > 0)
	mark(field.Overview, m.Overview != "")
	mark(field.Genres, len(m.Genres) > 0)
	mark(field.Tags, len(m.Tags) > 0)
	mark(field.Cast, len(m.Cast) > 0)
	mark(field.Crew, len(m.Crew) > 0)
	mark(field.Poster, m.Cover.Best() != "")
	mark(field.Banner, m.BannerImage != "")
	mark(field.Status, m.Status != "")
	mark(field.Aired, !m.StartDate.IsZero() || !m.EndDate.IsZero())
	mark(field.Episodes, m.Episodes > 0)
	mark(field.Runtime, m.Runtime > 0)
	mark(field.Rating, m.Score > 0)
	mark(field.Studios, len(m.Studios) > 0)
	mark(field.Certification, m.Certification != "")
	mark(field.Links, len(m.URLs) > 0)
	return s
}

// copyField assigns the value of f from src to dst. Slices are copied.
func copyField(dst, src *Metadata, f field.Field) {
	switch f {
	case field.Title:
		dst.Title = src.Title
	case field.Synonyms:
		dst.Synonyms = append([]string(nil), src.Synonyms...)
	case field.Overview:
		dst.Overview = src.Overview
	case field.Genres:
		dst.Genres = append([]string(nil), src.Genres...)
	case field.Tags:
		dst.Tags = append([]string(nil), src.Tags...)
	case field.Cast:
		dst.Cast = append([]Person(nil), src.Cast...)
	case field.Crew:
		dst.Crew = append([]Person(nil), src.Crew...)
	case field.Poster:
		dst.Cover = src.Cover
	case field.Banner:
		dst.BannerImage = src.BannerImage
	case field.Status:
		dst.Status = src.Status
	case field.Aired:
		dst.StartDate = src.StartDate
		dst.EndDate = src.EndDate
	case field.Episodes:
		dst.Episodes = src.Episodes
	case field.Runtime:
		dst.Runtime = src.Runtime
	case field.Rating:
		dst.Score = src.Score
	case field.Studios:
		dst.Studios = append([]string(nil), src.Studios...)
	case field.Certification:
		dst.Certification = src.Certification
	case field.Links:
		dst.URLs = append([]string(nil), src.URLs...)
	}
}

// Media is the item being scraped and the target every partial result is merged into.
// It holds no lock; callers that merge concurrently must serialize Merge calls.
type Media struct {
	Kind     Kind                   `json:"kind"`
	Query    string                 `json:"query,omitempty" jsonschema:"description=Title the item was looked up by."`
	Refs     ident.Refs             `json:"refs" jsonschema:"description=Identifiers of the item keyed by namespace."`
	Metadata Metadata               `json:"metadata"`
	Origin   map[field.Field]string `json:"origin,omitempty" jsonschema:"description=Source that supplied each field."`
}

// NewMedia returns an empty item of kind k looked up by title.
func NewMedia(k Kind, title string) *Media {
	return &Media{
		Kind:   k,
		Query:  title,
		Refs:   make(ident.Refs),
		Origin: make(map[field.Field]string),
	}
}

// Fields returns the fields that hold a value.
func (m *Media) Fields() field.Set {
	return m.Metadata.Present()
}

// Title returns the best known title: the merged one or the lookup query.
func (m *Media) Title() string {
	if m.Metadata.Title != "" {
		return m.Metadata.Title
	}
	return m.Query
}

// Merge applies the partial result onto m. Every field present in p overwrites the
// current value; identifiers are always merged. Calling Merge repeatedly with
// overlapping partials is safe and the last write wins.
func (m *Media) Merge(p *Partial) {
	if p == nil {
		return
	}

	if m.Refs == nil {
		m.Refs = make(ident.Refs)
	}
	if m.Origin == nil {
		m.Origin = make(map[field.Field]string)
	}

	m.Refs.Merge(p.Refs)

	for _, f := range p.Metadata.Present().Fields() {
		copyField(&m.Metadata, &p.Metadata, f)
		m.Origin[f] = p.Source
	}
}

// Cover returns the best available poster url.
func (m *Media) Cover() (string, error) {
	if u := m.Metadata.Cover.Best(); u != "" {
		return u, nil
	}
	return "", fmt.Errorf("no cover found")
}

func (m *Media) String() string {
	return m.Title()
}
