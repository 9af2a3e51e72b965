// Package scrape schedules a metadata fetch across several sources and merges the results into one item.
//
// A session queries a bootstrap source first, because it is the only reliable way to learn the
// identifiers the other sources are addressed by. Once its result is merged, every other source the
// field mapping names is dispatched concurrently. Each result is merged into the target under the
// session lock and the session finishes exactly once, after every source has completed or been skipped.
package scrape

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/kinometa/kinometa/field"
	"github.com/kinometa/kinometa/log"
	"github.com/kinometa/kinometa/source"
	"github.com/sirupsen/logrus"
	"golang.org/x/text/language"
)

// Registry resolves a source id to a live source. Unknown ids are not an error.
type Registry interface {
	Resolve(id string) (source.Source, bool)
}

// Settings holds per-source user configuration.
type Settings interface {
	LocaleFor(id string) (language.Tag, bool)
}

// Options configures an Orchestrator.
type Options struct {
	Registry Registry
	Settings Settings
	// Mapping assigns requested fields to sources. Secondary sources are the ones it names.
	Mapping Mapping
	// Observers receive progress events.
	Observers []Observer
	// FallbackLocale is used for sources the registry does not know. Defaults to English.
	FallbackLocale language.Tag
	// MaxJobs bounds the number of secondary sources queried at once. Zero means no bound.
	MaxJobs int
	// JobTimeout bounds a single fetch. Zero means no bound.
	JobTimeout time.Duration
	Logger     logrus.FieldLogger
}

// Orchestrator starts scrape sessions. It holds no per-session state and is safe for concurrent use.
type Orchestrator struct {
	registry   Registry
	settings   Settings
	mapping    Mapping
	observers  []Observer
	fallback   language.Tag
	maxJobs    int
	jobTimeout time.Duration
	log        logrus.FieldLogger
}

// New returns an orchestrator configured by opts.
func New(opts Options) *Orchestrator {
	if opts.FallbackLocale == language.Und {
		opts.FallbackLocale = language.English
	}
	if opts.Logger == nil {
		opts.Logger = log.Logger()
	}
	if opts.MaxJobs < 0 {
		opts.MaxJobs = 0
	}

	return &Orchestrator{
		registry:   opts.Registry,
		settings:   opts.Settings,
		mapping:    opts.Mapping,
		observers:  opts.Observers,
		fallback:   opts.FallbackLocale,
		maxJobs:    opts.MaxJobs,
		jobTimeout: opts.JobTimeout,
		log:        opts.Logger.WithField("component", "scrape"),
	}
}

func (o *Orchestrator) resolve(id string) (source.Source, bool) {
	if o.registry == nil {
		return nil, false
	}
	return o.registry.Resolve(id)
}

// FieldsFor returns the requested fields the source should load: the ones it can supply
// and, when a mapping is configured, the ones the mapping assigns to it.
// An unknown source gets the empty set.
func (o *Orchestrator) FieldsFor(id string, requested field.Set) field.Set {
	src, ok := o.resolve(id)
	if !ok {
		return field.Set{}
	}

	fields := requested.Intersect(src.Capability().Fields)
	if o.mapping != nil {
		fields = fields.Intersect(o.mapping.FieldsOf(id))
	}
	return fields
}

// LocaleFor returns the locale the source should answer in: the user configured one, matched
// against the locales the source supports, or else the source default. Unknown sources get
// the fallback locale.
func (o *Orchestrator) LocaleFor(id string) language.Tag {
	src, ok := o.resolve(id)
	if !ok {
		o.log.WithField("source", id).Warnf("locale requested for unknown source, using %s", o.fallback)
		return o.fallback
	}

	capability := src.Capability()
	if o.settings != nil {
		if tag, ok := o.settings.LocaleFor(id); ok && tag != language.Und {
			return matchLocale(capability, tag)
		}
	}

	if capability.DefaultLocale == language.Und {
		return o.fallback
	}
	return capability.DefaultLocale
}

func matchLocale(capability source.Capability, tag language.Tag) language.Tag {
	if len(capability.Locales) == 0 {
		return tag
	}

	_, index, confidence := language.NewMatcher(capability.Locales).Match(tag)
	if confidence == language.No {
		if capability.DefaultLocale != language.Und {
			return capability.DefaultLocale
		}
		return capability.Locales[0]
	}
	return capability.Locales[index]
}

// Start begins a session that fills target with the requested fields and returns immediately.
// The bootstrap source is always queried, even when none of its fields are requested, so that
// the identifiers it knows are merged. Progress is observed through the returned session.
func (o *Orchestrator) Start(ctx context.Context, target *source.Media, requested field.Set, bootstrap string) *Session {
	s := newSession(ctx, o, target, requested, bootstrap)

	s.log.WithFields(logrus.Fields{
		"bootstrap": bootstrap,
		"fields":    requested.String(),
		"query":     target.Query,
	}).Info("starting scrape")

	go s.run()
	return s
}

func newSessionID() uuid.UUID {
	return uuid.New()
}
