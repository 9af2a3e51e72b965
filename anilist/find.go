package anilist

import (
	"context"
	"errors"
	"strings"

	"github.com/kinometa/kinometa/log"
	"github.com/kinometa/kinometa/source"
	levenshtein "github.com/ka-weihe/fast-levenshtein"
	"github.com/samber/lo"
)

func normalizedName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// SetRelation binds a query to an anime so that later lookups of the query resolve to it.
func SetRelation(name string, to *Anime) error {
	if err := relationCacher.Set(normalizedName(name), to.ID); err != nil {
		return err
	}

	if id := idCacher.Get(to.ID); id.IsAbsent() {
		return idCacher.Set(to.ID, to)
	}

	return nil
}

// FindClosest returns the anime whose title is closest to name.
// When a search has no results it is retried with the last word of the query dropped, up to three times.
func FindClosest(ctx context.Context, name string) (*Anime, error) {
	name = normalizedName(name)
	return findClosest(ctx, name, name, 0, 3)
}

func findClosest(ctx context.Context, name, originalName string, try, limit int) (*Anime, error) {
	if try >= limit {
		log.Warnf("no results found on Anilist for anime %s", originalName)
		_ = relationCacher.Set(originalName, -1)
		return nil, source.ErrNotFound
	}

	id := relationCacher.Get(name)
	if id.IsPresent() {
		if id.MustGet() == -1 {
			return nil, source.ErrNotFound
		}

		if anime, ok := idCacher.Get(id.MustGet()).Get(); ok {
			if try > 0 {
				_ = relationCacher.Set(originalName, anime.ID)
			}
			return anime, nil
		}
	}

	animes, err := SearchByName(ctx, name)
	if err != nil {
		return nil, err
	}

	if id.IsPresent() {
		found, ok := lo.Find(animes, func(item *Anime) bool {
			return item.ID == id.MustGet()
		})

		if ok {
			return found, nil
		}

		// the bound anime is gone from AniList
		_ = relationCacher.Delete(name)
		log.Infof("Anime with id %d was deleted from Anilist", id.MustGet())
	}

	if len(animes) == 0 {
		words := strings.Fields(name)
		if len(words) <= 2 {
			return findClosest(ctx, name, originalName, limit, limit)
		}

		alternateName := strings.Join(words[:len(words)-1], " ")
		log.Infof(`No results found on Anilist for anime "%s", trying "%s"`, name, alternateName)
		return findClosest(ctx, alternateName, originalName, try+1, limit)
	}

	closest := lo.MinBy(animes, func(a, b *Anime) bool {
		return distance(name, a) < distance(name, b)
	})

	log.Info("Found closest match: " + closest.Name())

	save := func(n string) {
		if id := relationCacher.Get(n); id.IsAbsent() {
			_ = relationCacher.Set(n, closest.ID)
		}
	}

	save(name)
	save(originalName)

	_ = idCacher.Set(closest.ID, closest)
	return closest, nil
}

// distance is the smallest edit distance between name and any title of a.
func distance(name string, a *Anime) int {
	titles := lo.Compact(append([]string{a.Title.English, a.Title.Romaji, a.Title.Native}, a.Synonyms...))
	if len(titles) == 0 {
		return len(name)
	}

	return lo.Min(lo.Map(titles, func(t string, _ int) int {
		return levenshtein.Distance(name, normalizedName(t))
	}))
}

// GetCachedRelation returns the anime bound to name, or nil.
func GetCachedRelation(name string) *Anime {
	id := relationCacher.Get(normalizedName(name))
	if id.IsPresent() && id.MustGet() != -1 {
		if anime, ok := idCacher.Get(id.MustGet()).Get(); ok {
			return anime
		}
	}
	return nil
}

// IsNotFound reports whether err means AniList has no such anime.
func IsNotFound(err error) bool {
	return errors.Is(err, source.ErrNotFound)
}
