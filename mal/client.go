package mal

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/kinometa/kinometa/key"
	"github.com/kinometa/kinometa/network"
	"github.com/kinometa/kinometa/source"
	"github.com/spf13/viper"
)

// Endpoint is the base url of the v2 API.
var Endpoint = "https://api.myanimelist.net/v2"

// header authenticates with the user token when there is one, and with the client id otherwise.
func header() http.Header {
	h := http.Header{}
	if token, err := LoadToken(); err == nil && token.AccessToken != "" {
		h.Set("Authorization", "Bearer "+token.AccessToken)
		return h
	}

	h.Set("X-MAL-CLIENT-ID", clientID())
	return h
}

func clientID() string {
	if id := viper.GetString(key.SourcesMalClientID); id != "" {
		return id
	}
	return defaultClientID
}

// GetByID returns the anime with the given id.
func GetByID(ctx context.Context, id int) (*Anime, error) {
	u := fmt.Sprintf("%s/anime/%d?%s", Endpoint, id, url.Values{"fields": {detailFields}}.Encode())

	var anime Anime
	if err := network.GetJSON(ctx, u, header(), true, &anime); err != nil {
		if network.IsNotFound(err) {
			return nil, source.ErrNotFound
		}
		return nil, fmt.Errorf("mal anime %d: %w", id, err)
	}

	if anime.ID == 0 {
		return nil, source.ErrNotFound
	}
	return &anime, nil
}
