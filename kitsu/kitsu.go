// Package kitsu is a client for the Kitsu JSON:API and the source built on it.
package kitsu

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/kinometa/kinometa/network"
	"github.com/kinometa/kinometa/query"
	"github.com/kinometa/kinometa/source"
	levenshtein "github.com/ka-weihe/fast-levenshtein"
	"github.com/samber/lo"
)

// Endpoint is the base url of the API.
var Endpoint = "https://kitsu.io/api/edge"

type images struct {
	Tiny     string `json:"tiny"`
	Small    string `json:"small"`
	Medium   string `json:"medium"`
	Large    string `json:"large"`
	Original string `json:"original"`
}

// Attributes of an anime resource.
type Attributes struct {
	Slug              string            `json:"slug"`
	CanonicalTitle    string            `json:"canonicalTitle"`
	Titles            map[string]string `json:"titles"`
	AbbreviatedTitles []string          `json:"abbreviatedTitles"`
	Synopsis          string            `json:"synopsis"`
	AverageRating     string            `json:"averageRating"`
	StartDate         string            `json:"startDate"`
	EndDate           string            `json:"endDate"`
	AgeRating         string            `json:"ageRating"`
	AgeRatingGuide    string            `json:"ageRatingGuide"`
	Subtype           string            `json:"subtype"`
	// Status is one of current, finished, tba, unreleased, upcoming.
	Status        string  `json:"status"`
	PosterImage   *images `json:"posterImage"`
	CoverImage    *images `json:"coverImage"`
	EpisodeCount  int     `json:"episodeCount"`
	EpisodeLength int     `json:"episodeLength"`
}

// Anime is an anime resource with the external ids found in its mappings.
type Anime struct {
	ID         int
	Attributes Attributes
	// External maps a site such as myanimelist/anime to the id of the anime there.
	External map[string]string
}

type resource struct {
	ID         string `json:"id"`
	Type       string `json:"type"`
	Attributes struct {
		Attributes
		ExternalSite string `json:"externalSite"`
		ExternalID   string `json:"externalId"`
	} `json:"attributes"`
}

type single struct {
	Data     resource   `json:"data"`
	Included []resource `json:"included"`
}

type many struct {
	Data []resource `json:"data"`
}

func header() http.Header {
	return http.Header{"Accept": {"application/vnd.api+json"}}
}

func (r resource) anime(included []resource) *Anime {
	id, _ := strconv.Atoi(r.ID)
	a := &Anime{ID: id, Attributes: r.Attributes.Attributes, External: make(map[string]string)}

	for _, inc := range included {
		if inc.Type == "mappings" && inc.Attributes.ExternalSite != "" {
			a.External[inc.Attributes.ExternalSite] = inc.Attributes.ExternalID
		}
	}
	return a
}

// GetByID returns the anime with the given id and its mappings.
func GetByID(ctx context.Context, id int) (*Anime, error) {
	u := fmt.Sprintf("%s/anime/%d?include=mappings", Endpoint, id)

	var response single
	if err := network.GetJSON(ctx, u, header(), true, &response); err != nil {
		if network.IsNotFound(err) {
			return nil, source.ErrNotFound
		}
		return nil, fmt.Errorf("kitsu anime %d: %w", id, err)
	}

	if response.Data.ID == "" {
		return nil, source.ErrNotFound
	}
	return response.Data.anime(response.Included), nil
}

// Search returns the anime matching title.
func Search(ctx context.Context, title string) ([]*Anime, error) {
	_ = query.Remember(title, 1)

	u := fmt.Sprintf("%s/anime?%s", Endpoint, url.Values{
		"filter[text]": {title},
		"page[limit]":  {"10"},
	}.Encode())

	var response many
	if err := network.GetJSON(ctx, u, header(), true, &response); err != nil {
		return nil, fmt.Errorf("kitsu search %q: %w", title, err)
	}

	return lo.Map(response.Data, func(r resource, _ int) *Anime {
		return r.anime(nil)
	}), nil
}

// FindClosest returns the search result whose titles are closest to title, with its mappings.
func FindClosest(ctx context.Context, title string) (*Anime, error) {
	results, err := Search(ctx, title)
	if err != nil {
		return nil, err
	}
	if len(results) == 0 {
		return nil, source.ErrNotFound
	}

	name := strings.ToLower(strings.TrimSpace(title))
	closest := lo.MinBy(results, func(a, b *Anime) bool {
		return distance(name, a) < distance(name, b)
	})

	return GetByID(ctx, closest.ID)
}

func distance(name string, a *Anime) int {
	titles := lo.Compact(append(lo.Values(a.Attributes.Titles), a.Attributes.CanonicalTitle))
	if len(titles) == 0 {
		return len(name)
	}

	return lo.Min(lo.Map(titles, func(t string, _ int) int {
		return levenshtein.Distance(name, strings.ToLower(t))
	}))
}
