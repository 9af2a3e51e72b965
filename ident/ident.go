// Package ident models the keys used to address an item at a specific metadata source.
package ident

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// Kind tells which variant an Identifier holds.
type Kind uint8

const (
	KindNone Kind = iota
	KindNumeric
	KindSlug
)

// Identifier is an immutable tagged union over a numeric id, a string slug or no id at all.
// The zero value is None.
type Identifier struct {
	kind    Kind
	numeric int64
	slug    string
}

// None returns the identifier that addresses nothing.
func None() Identifier {
	return Identifier{}
}

// Numeric returns an identifier holding a numeric id.
func Numeric(id int64) Identifier {
	return Identifier{kind: KindNumeric, numeric: id}
}

// Slug returns an identifier holding a string key. Surrounding whitespace is dropped.
func Slug(slug string) Identifier {
	return Identifier{kind: KindSlug, slug: strings.TrimSpace(slug)}
}

// Parse builds a numeric identifier when s is an integer, a slug otherwise.
// The empty string yields None.
func Parse(s string) Identifier {
	s = strings.TrimSpace(s)
	if s == "" {
		return None()
	}

	if n, err := strconv.ParseInt(s, 10, 64); err == nil {
		return Numeric(n)
	}

	return Slug(s)
}

// Kind returns the variant of the identifier.
func (i Identifier) Kind() Kind {
	return i.kind
}

// IsValid reports whether the identifier can be used to query a source.
// Numeric ids must be positive and slugs non-empty.
func (i Identifier) IsValid() bool {
	switch i.kind {
	case KindNumeric:
		return i.numeric > 0
	case KindSlug:
		return i.slug != ""
	default:
		return false
	}
}

// Int returns the numeric id and whether the identifier is numeric.
func (i Identifier) Int() (int64, bool) {
	return i.numeric, i.kind == KindNumeric
}

func (i Identifier) String() string {
	switch i.kind {
	case KindNumeric:
		return strconv.FormatInt(i.numeric, 10)
	case KindSlug:
		return i.slug
	default:
		return ""
	}
}

// MarshalJSON encodes numeric ids as numbers, slugs as strings and None as null.
func (i Identifier) MarshalJSON() ([]byte, error) {
	switch i.kind {
	case KindNumeric:
		return json.Marshal(i.numeric)
	case KindSlug:
		return json.Marshal(i.slug)
	default:
		return []byte("null"), nil
	}
}

// UnmarshalJSON is the inverse of MarshalJSON.
func (i *Identifier) UnmarshalJSON(data []byte) error {
	decoder := json.NewDecoder(bytes.NewReader(data))
	decoder.UseNumber()

	var raw any
	if err := decoder.Decode(&raw); err != nil {
		return err
	}

	switch v := raw.(type) {
	case nil:
		*i = None()
	case json.Number:
		n, err := v.Int64()
		if err != nil {
			return fmt.Errorf("identifier: %w", err)
		}
		*i = Numeric(n)
	case string:
		*i = Slug(v)
	default:
		return fmt.Errorf("identifier: unexpected json value %s", data)
	}
	return nil
}
