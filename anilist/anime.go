// Package anilist is a client for the AniList GraphQL API and the bootstrap source built on it.
package anilist

type date struct {
	Year  int `json:"year"`
	Month int `json:"month"`
	Day   int `json:"day"`
}

type name struct {
	Full   string `json:"full"`
	Native string `json:"native"`
}

type tag struct {
	Name string `json:"name"`
	// Rank is how relevant the tag is to the anime, from 1 to 100.
	Rank int `json:"rank"`
}

type person struct {
	Name name `json:"name"`
}

type characterEdge struct {
	Role        string   `json:"role"`
	Node        person   `json:"node"`
	VoiceActors []person `json:"voiceActors"`
}

type staffEdge struct {
	Role string `json:"role"`
	Node person `json:"node"`
}

type studio struct {
	Name string `json:"name"`
}

type link struct {
	URL string `json:"url"`
}

// Anime is a media entry as returned by AniList.
type Anime struct {
	ID    int `json:"id" jsonschema:"description=ID of the anime on Anilist."`
	IDMal int `json:"idMal" jsonschema:"description=ID of the anime on MyAnimeList."`
	Title struct {
		Romaji  string `json:"romaji"`
		English string `json:"english"`
		Native  string `json:"native" jsonschema:"description=Native title of the anime. Usually in kanji."`
	} `json:"title"`
	// Description is html.
	Description string `json:"description"`
	CoverImage  struct {
		ExtraLarge string `json:"extraLarge"`
		Large      string `json:"large"`
		Medium     string `json:"medium"`
		Color      string `json:"color"`
	} `json:"coverImage"`
	BannerImage string `json:"bannerImage"`
	Tags        []tag    `json:"tags"`
	Genres      []string `json:"genres"`
	Characters  struct {
		Edges []characterEdge `json:"edges"`
	} `json:"characters"`
	Staff struct {
		Edges []staffEdge `json:"edges"`
	} `json:"staff"`
	Studios struct {
		Nodes []studio `json:"nodes"`
	} `json:"studios"`
	StartDate date     `json:"startDate"`
	EndDate   date     `json:"endDate"`
	Synonyms  []string `json:"synonyms"`
	// Status is one of FINISHED, RELEASING, NOT_YET_RELEASED, CANCELLED, HIATUS.
	Status       string `json:"status"`
	Format       string `json:"format"`
	Episodes     int    `json:"episodes"`
	Duration     int    `json:"duration"`
	SiteURL      string `json:"siteUrl"`
	Country      string `json:"countryOfOrigin"`
	AverageScore int    `json:"averageScore"`
	External     []link `json:"externalLinks"`
}

// Name returns the english title, or the romaji one when there is none.
func (a *Anime) Name() string {
	if a.Title.English == "" {
		return a.Title.Romaji
	}

	return a.Title.English
}
