package field

import (
	"encoding/json"
	"math/bits"
	"strings"

	"github.com/samber/lo"
)

// Set is an unordered collection of unique fields.
// The zero value is the empty set. Sets are values and are safe to copy.
type Set struct {
	bits uint32
}

// Of returns a set holding the given fields. Unknown fields are ignored.
func Of(fields ...Field) Set {
	var s Set
	for _, f := range fields {
		if f.Valid() {
			s.bits |= 1 << f
		}
	}
	return s
}

// Everything returns the set of all known fields.
func Everything() Set {
	return Of(All()...)
}

// ParseList parses field names into a set. The name "all" expands to every field.
func ParseList(names []string) (Set, error) {
	var (
		s   Set
		all bool
	)
	for _, name := range names {
		if strings.EqualFold(strings.TrimSpace(name), "all") {
			all = true
			continue
		}

		f, err := Parse(name)
		if err != nil {
			return Set{}, err
		}
		s = s.With(f)
	}

	if all {
		return Everything(), nil
	}
	return s, nil
}

// Contains reports whether f belongs to s.
func (s Set) Contains(f Field) bool {
	return f.Valid() && s.bits&(1<<f) != 0
}

// With returns s with f added.
func (s Set) With(f Field) Set {
	return s.Union(Of(f))
}

// Intersect returns the fields present in both s and other.
func (s Set) Intersect(other Set) Set {
	return Set{bits: s.bits & other.bits}
}

// Union returns the fields present in either s or other.
func (s Set) Union(other Set) Set {
	return Set{bits: s.bits | other.bits}
}

// Without returns the fields of s that are not in other.
func (s Set) Without(other Set) Set {
	return Set{bits: s.bits &^ other.bits}
}

// IsEmpty reports whether s holds no fields.
func (s Set) IsEmpty() bool {
	return s.bits == 0
}

// IsSubsetOf reports whether every field of s is in other.
func (s Set) IsSubsetOf(other Set) bool {
	return s.bits&^other.bits == 0
}

// Len returns the number of fields in s.
func (s Set) Len() int {
	return bits.OnesCount32(s.bits)
}

// Fields returns the members of s in declaration order.
func (s Set) Fields() []Field {
	return lo.Filter(All(), func(f Field, _ int) bool {
		return s.Contains(f)
	})
}

func (s Set) String() string {
	if s.IsEmpty() {
		return "{}"
	}

	return "{" + strings.Join(lo.Map(s.Fields(), func(f Field, _ int) string {
		return f.String()
	}), ", ") + "}"
}

// MarshalJSON encodes the set as a sorted list of field names.
func (s Set) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.Fields())
}

// UnmarshalJSON decodes a list of field names.
func (s *Set) UnmarshalJSON(data []byte) error {
	var names []string
	if err := json.Unmarshal(data, &names); err != nil {
		return err
	}

	parsed, err := ParseList(names)
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}
