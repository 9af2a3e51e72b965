// Package source defines the media model shared by all metadata sources and the contract every source implements.
package source

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/kinometa/kinometa/field"
	"github.com/kinometa/kinometa/ident"
	"github.com/samber/lo"
	"golang.org/x/text/language"
)

// ErrNotFound is returned by a source that was reachable but knows nothing about the requested item.
var ErrNotFound = errors.New("not found")

// Kind is the type of media an item represents.
type Kind string

const (
	KindAnime   Kind = "anime"
	KindMovie   Kind = "movie"
	KindSeries  Kind = "series"
	KindEpisode Kind = "episode"
	KindAlbum   Kind = "album"
)

// Kinds lists every supported media kind.
func Kinds() []Kind {
	return []Kind{KindAnime, KindMovie, KindSeries, KindEpisode, KindAlbum}
}

// ParseKind resolves a kind by name.
func ParseKind(name string) (Kind, error) {
	k := Kind(strings.ToLower(strings.TrimSpace(name)))
	if !lo.Contains(Kinds(), k) {
		return "", fmt.Errorf("unknown media kind %q", name)
	}
	return k, nil
}

// Capability is the static description of what a source can do.
// It is never mutated after the source is registered.
type Capability struct {
	// Fields the source is able to supply.
	Fields field.Set
	// DefaultLocale is used when the user did not configure one.
	DefaultLocale language.Tag
	// Locales the source can answer in. Empty means any locale is passed through.
	Locales []language.Tag
	// Kinds of media the source knows about. Empty means all kinds.
	Kinds []Kind
	// Bootstrap marks a source that can be queried first to learn identifiers for the others.
	Bootstrap bool
	// Namespace of the identifier the source is addressed by.
	Namespace ident.Namespace
	// Searchable sources can resolve an item from its title when no identifier is known.
	Searchable bool
}

// Supports reports whether the source knows about media of kind k.
func (c Capability) Supports(k Kind) bool {
	return len(c.Kinds) == 0 || k == "" || lo.Contains(c.Kinds, k)
}

// Request is the input of a single fetch.
type Request struct {
	ID     ident.Identifier
	Fields field.Set
	Locale language.Tag
	Kind   Kind
	// Title is a search hint for searchable sources, used only when ID is not valid.
	Title string
}

// Source fetches metadata for one item from one remote service.
type Source interface {
	// ID returns the unique identifier of the source.
	ID() string

	// Name returns a human readable name.
	Name() string

	// Capability describes the fields, locales and identifiers the source works with.
	Capability() Capability

	// Fetch loads the requested fields. Implementations only fill fields present in req.Fields.
	// A source that found nothing returns ErrNotFound or an empty partial.
	Fetch(ctx context.Context, req Request) (*Partial, error)
}
