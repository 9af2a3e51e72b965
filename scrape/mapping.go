package scrape

import (
	"fmt"
	"strings"

	"github.com/kinometa/kinometa/field"
	"github.com/kinometa/kinometa/source"
	"github.com/samber/lo"
)

// Mapping assigns each field to the one source that owns it for a scrape.
type Mapping map[field.Field]string

// ParseMapping reads a field name to source id table, as stored in the config.
func ParseMapping(raw map[string]string) (Mapping, error) {
	m := make(Mapping, len(raw))
	for name, id := range raw {
		f, err := field.Parse(name)
		if err != nil {
			return nil, err
		}

		id = strings.TrimSpace(id)
		if id == "" {
			return nil, fmt.Errorf("field %s is mapped to an empty source id", f)
		}
		m[f] = id
	}
	return m, nil
}

// Prioritized builds a mapping that assigns every field of fields to the first
// source in sources that supplies it.
func Prioritized(sources []source.Source, fields field.Set) Mapping {
	m := make(Mapping)
	for _, f := range fields.Fields() {
		owner, ok := lo.Find(sources, func(s source.Source) bool {
			return s.Capability().Fields.Contains(f)
		})
		if ok {
			m[f] = owner.ID()
		}
	}
	return m
}

// With returns a copy of m where the entries of other take precedence.
func (m Mapping) With(other Mapping) Mapping {
	out := make(Mapping, len(m)+len(other))
	for f, id := range m {
		out[f] = id
	}
	for f, id := range other {
		out[f] = id
	}
	return out
}

// FieldsOf returns the fields assigned to the source.
func (m Mapping) FieldsOf(id string) field.Set {
	var s field.Set
	for f, owner := range m {
		if owner == id {
			s = s.With(f)
		}
	}
	return s
}

// Sources returns the distinct source ids of m, ordered by the first field each one owns.
func (m Mapping) Sources() []string {
	var ids []string
	for _, f := range field.All() {
		if id, ok := m[f]; ok && !lo.Contains(ids, id) {
			ids = append(ids, id)
		}
	}
	return ids
}

// Raw returns the config representation of m.
func (m Mapping) Raw() map[string]string {
	return lo.MapEntries(m, func(f field.Field, id string) (string, string) {
		return f.String(), id
	})
}
