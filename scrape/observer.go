package scrape

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
)

const notificationTimeout = 5 * time.Second

// EventType identifies a step of a session.
type EventType string

const (
	EventSessionStarted EventType = "session.started"
	EventJobStarted     EventType = "job.started"
	EventJobFinished    EventType = "job.finished"
	EventJobSkipped     EventType = "job.skipped"
	EventFinished       EventType = "session.finished"
)

// Event is delivered to observers as a session progresses.
// Outcome is set for job.finished and job.skipped, Report for session.finished.
type Event struct {
	Type    EventType
	Session uuid.UUID
	Source  string
	Time    time.Time
	Outcome *Outcome
	Report  *Report
}

// Observer receives session events. Implementations must be safe for concurrent use
// because jobs of one session finish on different goroutines.
type Observer interface {
	Notify(ctx context.Context, event Event) error
}

// ObserverFunc adapts a function to the Observer interface.
type ObserverFunc func(ctx context.Context, event Event) error

func (f ObserverFunc) Notify(ctx context.Context, event Event) error {
	return f(ctx, event)
}

// notify delivers event to every observer and waits until each one returned or timed out.
func (s *Session) notify(event Event) {
	if len(s.o.observers) == 0 {
		return
	}

	event.Session = s.id
	event.Time = time.Now()

	var wg sync.WaitGroup
	for _, observer := range s.o.observers {
		wg.Add(1)
		go func(observer Observer) {
			defer wg.Done()

			ctx, cancel := context.WithTimeout(context.Background(), notificationTimeout)
			defer cancel()

			done := make(chan error, 1)
			go func() {
				done <- observer.Notify(ctx, event)
			}()

			select {
			case err := <-done:
				if err != nil {
					s.log.WithError(err).WithField("event", event.Type).Warn("observer failed")
				}
			case <-ctx.Done():
				s.log.WithField("event", event.Type).Warn("observer timed out")
			}
		}(observer)
	}
	wg.Wait()
}
