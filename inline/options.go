package inline

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/kinometa/kinometa/field"
	"github.com/kinometa/kinometa/ident"
	"github.com/kinometa/kinometa/scrape"
	"github.com/kinometa/kinometa/source"
	"golang.org/x/text/language"
)

// Options of a single non-interactive scrape.
type Options struct {
	Out       io.Writer
	Query     string
	Kind      source.Kind
	Refs      ident.Refs
	Fields    field.Set
	Bootstrap string
	Mapping   scrape.Mapping
	// Locales override the configured locale per source id.
	Locales   map[string]language.Tag
	Registry  scrape.Registry
	Observers []scrape.Observer
	Json      bool
	// ShowLog adds the outcome of every source to the output.
	ShowLog bool
	Timeout time.Duration
}

func splitPair(pair string) (string, string, error) {
	k, v, ok := strings.Cut(pair, "=")
	k, v = strings.TrimSpace(k), strings.TrimSpace(v)
	if !ok || k == "" || v == "" {
		return "", "", fmt.Errorf("expected key=value, got %q", pair)
	}
	return k, v, nil
}

// ParseMapping reads field=source pairs.
func ParseMapping(pairs []string) (scrape.Mapping, error) {
	raw := make(map[string]string, len(pairs))
	for _, pair := range pairs {
		f, id, err := splitPair(pair)
		if err != nil {
			return nil, err
		}
		raw[f] = id
	}
	return scrape.ParseMapping(raw)
}

// ParseLocales reads source=tag pairs.
func ParseLocales(pairs []string) (map[string]language.Tag, error) {
	locales := make(map[string]language.Tag, len(pairs))
	for _, pair := range pairs {
		id, raw, err := splitPair(pair)
		if err != nil {
			return nil, err
		}

		tag, err := language.Parse(raw)
		if err != nil {
			return nil, fmt.Errorf("locale of %s: %w", id, err)
		}
		locales[id] = tag
	}
	return locales, nil
}

// overrides puts locales given on the command line before the configured ones.
type overrides struct {
	locales  map[string]language.Tag
	fallback scrape.Settings
}

func (o overrides) LocaleFor(id string) (language.Tag, bool) {
	if tag, ok := o.locales[id]; ok {
		return tag, true
	}
	if o.fallback == nil {
		return language.Und, false
	}
	return o.fallback.LocaleFor(id)
}
