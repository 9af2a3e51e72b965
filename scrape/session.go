package scrape

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/kinometa/kinometa/field"
	"github.com/kinometa/kinometa/source"
	"github.com/sirupsen/logrus"
	"github.com/sourcegraph/conc/pool"
)

// Session is one run of an orchestrator over one target.
// It is never reused; start a new session for every scrape.
type Session struct {
	id        uuid.UUID
	o         *Orchestrator
	log       logrus.FieldLogger
	requested field.Set
	bootstrap string
	started   time.Time

	ctx    context.Context
	cancel context.CancelFunc

	// mu guards target, outcomes and canceled.
	mu       sync.Mutex
	target   *source.Media
	outcomes []Outcome
	canceled bool

	once     sync.Once
	reported chan struct{}
	done     chan struct{}
	report   *Report
}

func newSession(ctx context.Context, o *Orchestrator, target *source.Media, requested field.Set, bootstrap string) *Session {
	ctx, cancel := context.WithCancel(ctx)
	id := newSessionID()

	return &Session{
		id:        id,
		o:         o,
		log:       o.log.WithField("session", id.String()),
		requested: requested,
		bootstrap: bootstrap,
		started:   time.Now(),
		ctx:       ctx,
		cancel:    cancel,
		target:    target,
		reported:  make(chan struct{}),
		done:      make(chan struct{}),
	}
}

// ID returns the unique id of the session.
func (s *Session) ID() uuid.UUID {
	return s.id
}

// Done returns a channel that is closed once, when every source has finished or been skipped
// and observers have been handed the terminal event.
func (s *Session) Done() <-chan struct{} {
	return s.done
}

// Report returns the terminal report, or nil while the session is running.
// It is already set when observers receive EventFinished.
func (s *Session) Report() *Report {
	select {
	case <-s.reported:
		return s.report
	default:
		return nil
	}
}

// Wait blocks until the report is available or ctx is done.
// Observers may call it while handling EventFinished.
func (s *Session) Wait(ctx context.Context) (*Report, error) {
	select {
	case <-s.reported:
		return s.report, nil
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// Cancel stops dispatching new sources and aborts the ones in flight on a best-effort basis.
// Results arriving after Cancel are discarded. The session still finishes exactly once.
func (s *Session) Cancel() {
	s.mu.Lock()
	s.canceled = true
	s.mu.Unlock()
	s.cancel()
}

func (s *Session) isCanceled() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.canceled || s.ctx.Err() != nil
}

func (s *Session) run() {
	defer s.finish()

	s.notify(Event{Type: EventSessionStarted, Source: s.bootstrap})

	if plan, ok := s.prepare(s.bootstrap, true); ok {
		s.execute(plan)
	}

	plans := s.secondaries()
	if len(plans) == 0 {
		return
	}

	p := pool.New()
	if s.o.maxJobs > 0 {
		p = p.WithMaxGoroutines(s.o.maxJobs)
	}

	for _, plan := range plans {
		plan := plan
		p.Go(func() {
			s.execute(plan)
		})
	}
	p.Wait()
}

// secondaries plans every source the mapping names other than the bootstrap one.
// All plans are computed before the first one is dispatched.
func (s *Session) secondaries() []plan {
	var plans []plan
	for _, id := range s.o.mapping.Sources() {
		if id == s.bootstrap {
			continue
		}

		if p, ok := s.prepare(id, false); ok {
			plans = append(plans, p)
		}
	}
	return plans
}

// prepare builds the request for a source, or records why it is skipped.
// The bootstrap source is dispatched even when it has no fields to load.
func (s *Session) prepare(id string, bootstrap bool) (plan, bool) {
	skip := func(err error) (plan, bool) {
		s.complete(Outcome{
			Source:    id,
			Status:    StatusSkipped,
			Bootstrap: bootstrap,
			Err:       err,
		}, nil)
		return plan{}, false
	}

	if s.isCanceled() {
		return skip(ErrCanceled)
	}

	src, ok := s.o.resolve(id)
	if !ok {
		return skip(ErrSourceUnavailable)
	}

	capability := src.Capability()

	s.mu.Lock()
	kind := s.target.Kind
	identifier := s.target.Refs.Get(capability.Namespace)
	title := s.target.Title()
	s.mu.Unlock()

	if !capability.Supports(kind) {
		return skip(ErrUnsupportedKind)
	}

	fields := s.o.FieldsFor(id, s.requested)
	if fields.IsEmpty() && !bootstrap {
		return skip(ErrNoFields)
	}

	if !identifier.IsValid() && !(capability.Searchable && title != "") {
		return skip(ErrInvalidIdentifier)
	}

	return plan{
		source:    src,
		bootstrap: bootstrap,
		request: source.Request{
			ID:     identifier,
			Fields: fields,
			Locale: s.o.LocaleFor(id),
			Kind:   kind,
			Title:  title,
		},
	}, true
}

// complete is the completion handler shared by finished and skipped sources.
// The liveness check, the merge and the outcome record happen in one critical section.
func (s *Session) complete(outcome Outcome, partial *source.Partial) {
	s.mu.Lock()
	if (s.canceled || s.ctx.Err() != nil) && outcome.Status != StatusSkipped {
		outcome.Status = StatusCanceled
		outcome.Err = ErrCanceled
		partial = nil
	}

	if partial != nil {
		s.target.Merge(partial)
		outcome.Merged = partial.Fields()
	}
	s.outcomes = append(s.outcomes, outcome)
	s.mu.Unlock()

	entry := s.log.WithFields(logrus.Fields{
		"source": outcome.Source,
		"status": outcome.Status.String(),
	})
	if outcome.Err != nil {
		entry = entry.WithError(outcome.Err)
	}

	eventType := EventJobFinished
	if outcome.Status == StatusSkipped {
		eventType = EventJobSkipped
		entry.Info("source skipped")
	} else {
		entry.WithField("merged", outcome.Merged.String()).Info("source finished")
	}

	s.notify(Event{Type: eventType, Source: outcome.Source, Outcome: &outcome})
}

// finish emits the terminal event. It runs once per session.
func (s *Session) finish() {
	s.once.Do(func() {
		s.mu.Lock()
		report := &Report{
			Session:  s.id,
			Target:   s.target,
			Fields:   s.requested,
			Outcomes: append([]Outcome(nil), s.outcomes...),
			Canceled: s.canceled || s.ctx.Err() != nil,
			Started:  s.started,
			Elapsed:  time.Since(s.started),
		}
		s.mu.Unlock()

		s.report = report
		close(s.reported)
		s.cancel()

		s.log.WithFields(logrus.Fields{
			"elapsed": report.Elapsed.String(),
			"sources": len(report.Outcomes),
			"missing": report.Missing().String(),
		}).Info("scrape finished")

		s.notify(Event{Type: EventFinished, Report: report})
		close(s.done)
	})
}
