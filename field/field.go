// Package field enumerates the metadata attributes a source can supply and provides a compact set type over them.
package field

import (
	"fmt"
	"strings"
)

// Field is a single metadata attribute kind.
type Field uint8

const (
	Title Field = iota + 1
	Synonyms
	Overview
	Genres
	Tags
	Cast
	Crew
	Poster
	Banner
	Status
	Aired
	Episodes
	Runtime
	Rating
	Studios
	Certification
	Links

	last
)

var names = [...]string{
	Title:         "title",
	Synonyms:      "synonyms",
	Overview:      "overview",
	Genres:        "genres",
	Tags:          "tags",
	Cast:          "cast",
	Crew:          "crew",
	Poster:        "poster",
	Banner:        "banner",
	Status:        "status",
	Aired:         "aired",
	Episodes:      "episodes",
	Runtime:       "runtime",
	Rating:        "rating",
	Studios:       "studios",
	Certification: "certification",
	Links:         "links",
}

// All returns every known field in declaration order.
func All() []Field {
	fields := make([]Field, 0, int(last)-1)
	for f := Title; f < last; f++ {
		fields = append(fields, f)
	}
	return fields
}

// Valid reports whether f is a known field.
func (f Field) Valid() bool {
	return f >= Title && f < last
}

func (f Field) String() string {
	if !f.Valid() {
		return fmt.Sprintf("field(%d)", uint8(f))
	}
	return names[f]
}

// MarshalText implements encoding.TextMarshaler.
func (f Field) MarshalText() ([]byte, error) {
	if !f.Valid() {
		return nil, fmt.Errorf("invalid field %d", uint8(f))
	}
	return []byte(f.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (f *Field) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*f = parsed
	return nil
}

// Parse resolves a field by its name, case-insensitively.
func Parse(name string) (Field, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for f := Title; f < last; f++ {
		if names[f] == name {
			return f, nil
		}
	}
	return 0, fmt.Errorf("unknown field %q", name)
}
