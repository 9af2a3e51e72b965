package ident

import (
	"sort"

	"github.com/samber/lo"
)

// Namespace names an identifier scheme, usually the site that issued it.
type Namespace string

const (
	AniList Namespace = "anilist"
	MAL     Namespace = "mal"
	Kitsu   Namespace = "kitsu"
)

// Refs maps identifier schemes to the ids an item has in them.
type Refs map[Namespace]Identifier

// Get returns the identifier stored for ns, or None.
func (r Refs) Get(ns Namespace) Identifier {
	if r == nil {
		return None()
	}
	return r[ns]
}

// Set stores id under ns. Invalid identifiers are ignored so that a source
// answering without an id never erases one learned earlier.
func (r Refs) Set(ns Namespace, id Identifier) {
	if ns == "" || !id.IsValid() {
		return
	}
	r[ns] = id
}

// Merge copies every valid identifier of other into r.
func (r Refs) Merge(other Refs) {
	for ns, id := range other {
		r.Set(ns, id)
	}
}

// Clone returns an independent copy of r.
func (r Refs) Clone() Refs {
	clone := make(Refs, len(r))
	clone.Merge(r)
	return clone
}

// Namespaces returns the sorted namespaces that hold a valid identifier.
func (r Refs) Namespaces() []Namespace {
	namespaces := lo.Filter(lo.Keys(r), func(ns Namespace, _ int) bool {
		return r[ns].IsValid()
	})
	sort.Slice(namespaces, func(i, j int) bool { return namespaces[i] < namespaces[j] })
	return namespaces
}
