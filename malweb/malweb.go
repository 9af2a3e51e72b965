// Package malweb reads the cast and crew of an anime from the MyAnimeList website,
// which the MyAnimeList API does not expose.
package malweb

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/kinometa/kinometa/constant"
	"github.com/kinometa/kinometa/field"
	"github.com/kinometa/kinometa/ident"
	"github.com/kinometa/kinometa/key"
	"github.com/kinometa/kinometa/network"
	"github.com/kinometa/kinometa/source"
	"github.com/samber/lo"
	"github.com/spf13/viper"
	"golang.org/x/text/language"
)

// ID of the MyAnimeList website source.
const ID = "malweb"

// Endpoint is the base url of the website.
var Endpoint = "https://myanimelist.net"

// Source scrapes the characters and staff page of an anime.
type Source struct{}

func (Source) ID() string   { return ID }
func (Source) Name() string { return "MyAnimeList (web)" }

func (Source) Capability() source.Capability {
	return source.Capability{
		Fields:        field.Of(field.Cast, field.Crew),
		DefaultLocale: language.Japanese,
		Locales:       []language.Tag{language.Japanese, language.English, language.Korean, language.German, language.French, language.Spanish, language.Italian},
		Kinds:         []source.Kind{source.KindAnime, source.KindMovie, source.KindSeries},
		Namespace:     ident.MAL,
	}
}

func (Source) Fetch(ctx context.Context, req source.Request) (*source.Partial, error) {
	id, ok := req.ID.Int()
	if !ok || !req.ID.IsValid() {
		return nil, fmt.Errorf("malweb needs a numeric id, got %q", req.ID)
	}

	page := fmt.Sprintf("%s/anime/%d/_/characters", Endpoint, id)
	header := http.Header{"User-Agent": {constant.BrowserUserAgent}}

	html, err := network.GetBody(ctx, page, header, true)
	if err != nil {
		if network.IsNotFound(err) {
			return nil, source.ErrNotFound
		}
		return nil, err
	}

	cast, crew, err := Parse(html, req.Locale)
	if err != nil {
		return nil, err
	}

	limit := viper.GetInt(key.MetadataCastLimit)
	p := source.NewPartial(ID)
	if req.Fields.Contains(field.Cast) {
		p.Metadata.Cast = capPeople(cast, limit)
	}
	if req.Fields.Contains(field.Crew) {
		p.Metadata.Crew = capPeople(crew, limit)
	}
	return p, nil
}

// Parse extracts the cast and crew from a characters page. Only voice actors
// speaking the language of locale are listed in the cast.
func Parse(html []byte, locale language.Tag) (cast, crew []source.Person, err error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(html))
	if err != nil {
		return nil, nil, err
	}

	lang := display(locale)

	doc.Find("table.js-anime-character-table").Each(func(_ int, table *goquery.Selection) {
		character := normSpace(table.Find(".h3_character_name").First().Text())
		role := normSpace(table.Find("div.spaceit_pad").First().Text())

		table.Find("tr.js-anime-character-va-lang").Each(func(_ int, va *goquery.Selection) {
			if !strings.EqualFold(normSpace(va.Find(".js-anime-character-language").Text()), lang) {
				return
			}

			name := personName(va.Find("a[href*='/people/']").FilterFunction(hasText).First().Text())
			if name != "" {
				cast = append(cast, source.Person{Name: name, Role: role, Character: character})
			}
		})
	})

	doc.Find("a[name=staff]").Parent().NextAllFiltered("table").Each(func(_ int, table *goquery.Selection) {
		name := personName(table.Find("a[href*='/people/']").FilterFunction(hasText).First().Text())
		if name == "" {
			return
		}

		roles := normSpace(table.Find("small").First().Text())
		for _, role := range strings.Split(roles, ",") {
			crew = append(crew, source.Person{Name: name, Role: strings.TrimSpace(role)})
		}
	})

	if cast == nil && crew == nil && doc.Find("table.js-anime-character-table").Length() == 0 {
		return nil, nil, source.ErrNotFound
	}

	return lo.Uniq(cast), lo.Uniq(crew), nil
}

func hasText(_ int, s *goquery.Selection) bool {
	return strings.TrimSpace(s.Text()) != ""
}

// display returns the english name of the language of tag, as the website spells it.
func display(tag language.Tag) string {
	base, _ := tag.Base()
	switch base.String() {
	case "en":
		return "English"
	case "ko":
		return "Korean"
	case "de":
		return "German"
	case "fr":
		return "French"
	case "es":
		return "Spanish"
	case "it":
		return "Italian"
	default:
		return "Japanese"
	}
}

// personName turns "Nakano, Yuuto" into "Yuuto Nakano".
func personName(s string) string {
	s = normSpace(s)
	if last, first, ok := strings.Cut(s, ", "); ok {
		return first + " " + last
	}
	return s
}

func normSpace(s string) string { return strings.Join(strings.Fields(s), " ") }

func capPeople(people []source.Person, limit int) []source.Person {
	if limit > 0 && len(people) > limit {
		return people[:limit]
	}
	return people
}
