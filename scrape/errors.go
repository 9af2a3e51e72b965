package scrape

import (
	"errors"
	"fmt"

	"github.com/kinometa/kinometa/ident"
)

var (
	// ErrSourceUnavailable is recorded when the registry does not know a source.
	ErrSourceUnavailable = errors.New("source unavailable")

	// ErrEmptyResult is recorded when a source answered but had nothing for the requested fields.
	ErrEmptyResult = errors.New("empty result")

	// ErrInvalidIdentifier is recorded when a source could not be addressed because
	// the item has no valid identifier in its namespace.
	ErrInvalidIdentifier = errors.New("invalid identifier")

	// ErrNoFields is recorded when none of the requested fields is assigned to a source.
	ErrNoFields = errors.New("no fields to load")

	// ErrUnsupportedKind is recorded when a source does not know the kind of the item.
	ErrUnsupportedKind = errors.New("unsupported media kind")

	// ErrCanceled is recorded for work skipped or discarded after the session was canceled.
	ErrCanceled = errors.New("canceled")
)

// FetchError wraps a transport or parse failure of a single source.
type FetchError struct {
	Source     string
	Identifier ident.Identifier
	Err        error
}

func (e *FetchError) Error() string {
	if e.Identifier.IsValid() {
		return fmt.Sprintf("%s: fetch %s: %v", e.Source, e.Identifier, e.Err)
	}
	return fmt.Sprintf("%s: fetch: %v", e.Source, e.Err)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}
