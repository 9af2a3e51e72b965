package scrape

import (
	"context"
	"errors"
	"time"

	"github.com/kinometa/kinometa/source"
	"github.com/sourcegraph/conc/panics"
)

// plan is a source ready to be dispatched with its computed request.
type plan struct {
	source    source.Source
	request   source.Request
	bootstrap bool
}

// execute runs one fetch and hands its single outcome to the completion handler.
// A panicking source is reported as failed.
func (s *Session) execute(p plan) {
	id := p.source.ID()
	s.notify(Event{Type: EventJobStarted, Source: id})

	ctx := s.ctx
	if s.o.jobTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.o.jobTimeout)
		defer cancel()
	}

	started := time.Now()

	var (
		partial *source.Partial
		err     error
		catcher panics.Catcher
	)
	catcher.Try(func() {
		partial, err = p.source.Fetch(ctx, p.request)
	})
	if recovered := catcher.Recovered(); recovered != nil {
		partial, err = nil, recovered.AsError()
	}

	outcome := Outcome{
		Source:     id,
		Bootstrap:  p.bootstrap,
		Fields:     p.request.Fields,
		Identifier: p.request.ID,
		Locale:     p.request.Locale,
		Duration:   time.Since(started),
	}

	switch {
	case errors.Is(err, source.ErrNotFound):
		outcome.Status, outcome.Err = StatusEmpty, ErrEmptyResult
		partial = nil
	case err != nil:
		outcome.Status = StatusFailed
		outcome.Err = &FetchError{Source: id, Identifier: p.request.ID, Err: err}
		partial = nil
	case partial.IsEmpty():
		outcome.Status, outcome.Err = StatusEmpty, ErrEmptyResult
		partial = nil
	default:
		if partial.Source == "" {
			partial.Source = id
		}
		partial = partial.Restrict(p.request.Fields)
		if partial.IsEmpty() {
			outcome.Status, outcome.Err = StatusEmpty, ErrEmptyResult
			partial = nil
		} else {
			outcome.Status = StatusSucceeded
		}
	}

	s.complete(outcome, partial)
}
