package source

import (
	"github.com/kinometa/kinometa/field"
	"github.com/kinometa/kinometa/ident"
)

// Partial is what one source returned for one item.
type Partial struct {
	Source   string
	Refs     ident.Refs
	Metadata Metadata
}

// NewPartial returns an empty result attributed to the source with the given id.
func NewPartial(sourceID string) *Partial {
	return &Partial{
		Source: sourceID,
		Refs:   make(ident.Refs),
	}
}

// Fields returns the fields the partial holds a value for.
func (p *Partial) Fields() field.Set {
	return p.Metadata.Present()
}

// IsEmpty reports whether the partial carries neither fields nor identifiers.
func (p *Partial) IsEmpty() bool {
	return p == nil || (p.Fields().IsEmpty() && len(p.Refs.Namespaces()) == 0)
}

// Restrict returns a copy of p holding only the fields in set. Identifiers are kept.
func (p *Partial) Restrict(set field.Set) *Partial {
	out := NewPartial(p.Source)
	out.Refs.Merge(p.Refs)

	for _, f := range p.Fields().Intersect(set).Fields() {
		copyField(&out.Metadata, &p.Metadata, f)
	}

	return out
}
