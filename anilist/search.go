package anilist

import (
	"context"
	"fmt"

	"github.com/kinometa/kinometa/log"
	"github.com/kinometa/kinometa/network"
	"github.com/kinometa/kinometa/query"
	"github.com/kinometa/kinometa/source"
	"github.com/samber/lo"
)

// Endpoint is the GraphQL endpoint queries are sent to.
var Endpoint = "https://graphql.anilist.co"

type searchByNameResponse struct {
	Data struct {
		Page struct {
			Media []*Anime `json:"media"`
		} `json:"page"`
	} `json:"data"`
}

type searchByIDResponse struct {
	Data struct {
		Media *Anime `json:"media"`
	} `json:"data"`
}

func post(ctx context.Context, q string, variables map[string]any, v any) error {
	body := map[string]any{
		"query":     q,
		"variables": variables,
	}

	return network.PostJSON(ctx, Endpoint, nil, body, v)
}

// GetByID returns the anime with the given id.
// It returns source.ErrNotFound if AniList does not know it.
func GetByID(ctx context.Context, id int) (*Anime, error) {
	if anime, ok := idCacher.Get(id).Get(); ok {
		return anime, nil
	}

	log.Infof("Searching anilist for anime with id: %d", id)

	var response searchByIDResponse
	if err := post(ctx, searchByIDQuery, map[string]any{"id": id}, &response); err != nil {
		if network.IsNotFound(err) {
			return nil, source.ErrNotFound
		}
		log.Error(err)
		return nil, err
	}

	anime := response.Data.Media
	if anime == nil {
		return nil, source.ErrNotFound
	}

	log.Infof("Got response from Anilist, found anime with id %d", anime.ID)
	_ = idCacher.Set(id, anime)
	return anime, nil
}

// SearchByName returns the animes matching name.
func SearchByName(ctx context.Context, name string) ([]*Anime, error) {
	name = normalizedName(name)
	_ = query.Remember(name, 1)

	if _, failed := failCacher.Get(name).Get(); failed {
		return nil, fmt.Errorf("failed to search for %s", name)
	}

	if ids, ok := searchCacher.Get(name).Get(); ok {
		animes := lo.FilterMap(ids, func(item, _ int) (*Anime, bool) {
			return idCacher.Get(item).Get()
		})

		if len(animes) > 0 {
			return animes, nil
		}

		_ = searchCacher.Delete(name)
	}

	log.Infof("Searching anilist for anime %s", name)

	var response searchByNameResponse
	if err := post(ctx, searchByNameQuery, map[string]any{"query": name}, &response); err != nil {
		log.Error(err)
		if ctx.Err() == nil {
			_ = failCacher.Set(name, true)
		}
		return nil, err
	}

	animes := response.Data.Page.Media
	log.Infof("Got response from Anilist, found %d results", len(animes))

	ids := make([]int, len(animes))
	for i, anime := range animes {
		ids[i] = anime.ID
		_ = idCacher.Set(anime.ID, anime)
	}
	_ = searchCacher.Set(name, ids)
	return animes, nil
}
