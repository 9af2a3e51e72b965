package config

import (
	"strings"
	"time"

	"github.com/kinometa/kinometa/field"
	"github.com/kinometa/kinometa/key"
	"github.com/kinometa/kinometa/log"
	"github.com/kinometa/kinometa/scrape"
	"github.com/spf13/viper"
	"golang.org/x/text/language"
)

// Settings exposes the per-source preferences stored in the config.
type Settings struct{}

// LocaleFor returns the locale the user configured for the source.
func (Settings) LocaleFor(id string) (language.Tag, bool) {
	raw, ok := viper.GetStringMapString(key.SourcesLocale)[strings.ToLower(id)]
	if !ok || strings.TrimSpace(raw) == "" {
		return language.Und, false
	}

	tag, err := language.Parse(raw)
	if err != nil {
		log.Warnf("invalid locale %q configured for source %s: %s", raw, id, err)
		return language.Und, false
	}
	return tag, true
}

// Mapping returns the configured field to source assignment.
func Mapping() (scrape.Mapping, error) {
	return scrape.ParseMapping(viper.GetStringMapString(key.ScrapeMapping))
}

// Fields returns the fields scraped when none are given explicitly.
func Fields() (field.Set, error) {
	return field.ParseList(viper.GetStringSlice(key.ScrapeFields))
}

// FallbackLocale returns the locale used for sources that are not installed.
func FallbackLocale() language.Tag {
	tag, err := language.Parse(viper.GetString(key.ScrapeFallbackLocale))
	if err != nil {
		return language.English
	}
	return tag
}

// Duration reads a duration value. Invalid or negative values are treated as zero.
func Duration(k string) time.Duration {
	d := viper.GetDuration(k)
	if d < 0 {
		return 0
	}
	return d
}
