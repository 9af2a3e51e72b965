// Package mal is a client for the MyAnimeList v2 REST API and the source built on it.
package mal

import "strings"

type named struct {
	Name string `json:"name"`
}

// Anime is the detail record of the anime endpoint.
type Anime struct {
	ID          int    `json:"id"`
	Title       string `json:"title"`
	MainPicture struct {
		Medium string `json:"medium"`
		Large  string `json:"large"`
	} `json:"main_picture"`
	AlternativeTitles struct {
		Synonyms []string `json:"synonyms"`
		En       string   `json:"en"`
		Ja       string   `json:"ja"`
	} `json:"alternative_titles"`
	StartDate string  `json:"start_date"`
	EndDate   string  `json:"end_date"`
	Synopsis  string  `json:"synopsis"`
	Mean      float64 `json:"mean"`
	Genres    []named `json:"genres"`
	// Status is one of finished_airing, currently_airing, not_yet_aired.
	Status      string `json:"status"`
	NumEpisodes int    `json:"num_episodes"`
	// AverageEpisodeDuration is in seconds.
	AverageEpisodeDuration int     `json:"average_episode_duration"`
	Rating                 string  `json:"rating"`
	Studios                []named `json:"studios"`
	MediaType              string  `json:"media_type"`
}

// detailFields is the field list requested from the anime endpoint.
const detailFields = "id,title,main_picture,alternative_titles,start_date,end_date,synopsis,mean," +
	"genres,status,num_episodes,average_episode_duration,rating,studios,media_type"

func certification(rating string) string {
	switch rating {
	case "g":
		return "G"
	case "pg":
		return "PG"
	case "pg_13":
		return "PG-13"
	case "r":
		return "R-17+"
	case "r+":
		return "R+"
	case "rx":
		return "Rx"
	default:
		return strings.ToUpper(rating)
	}
}

func statusName(status string) string {
	switch status {
	case "finished_airing":
		return "Finished"
	case "currently_airing":
		return "Airing"
	case "not_yet_aired":
		return "Upcoming"
	default:
		return status
	}
}
