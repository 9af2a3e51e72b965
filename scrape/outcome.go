package scrape

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/kinometa/kinometa/field"
	"github.com/kinometa/kinometa/ident"
	"github.com/kinometa/kinometa/source"
	"github.com/samber/lo"
	"golang.org/x/text/language"
)

// Status is the terminal state of one source within a session.
type Status uint8

const (
	StatusSucceeded Status = iota + 1
	StatusEmpty
	StatusFailed
	StatusSkipped
	StatusCanceled
)

var statusNames = map[Status]string{
	StatusSucceeded: "succeeded",
	StatusEmpty:     "empty",
	StatusFailed:    "failed",
	StatusSkipped:   "skipped",
	StatusCanceled:  "canceled",
}

func (s Status) String() string {
	if name, ok := statusNames[s]; ok {
		return name
	}
	return fmt.Sprintf("status(%d)", uint8(s))
}

// MarshalText implements encoding.TextMarshaler.
func (s Status) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *Status) UnmarshalText(text []byte) error {
	for status, name := range statusNames {
		if name == string(text) {
			*s = status
			return nil
		}
	}
	return fmt.Errorf("unknown status %q", text)
}

// Outcome describes what happened to one source. It is advisory and never affects completion.
type Outcome struct {
	Source     string
	Status     Status
	Bootstrap  bool
	Fields     field.Set
	Merged     field.Set
	Identifier ident.Identifier
	Locale     language.Tag
	Err        error
	Duration   time.Duration
}

type outcomeJSON struct {
	Source     string           `json:"source"`
	Status     Status           `json:"status"`
	Bootstrap  bool             `json:"bootstrap,omitempty"`
	Fields     field.Set        `json:"fields"`
	Merged     field.Set        `json:"merged"`
	Identifier ident.Identifier `json:"identifier"`
	Locale     string           `json:"locale,omitempty"`
	Reason     string           `json:"reason,omitempty"`
	DurationMs int64            `json:"durationMs"`
}

// MarshalJSON flattens the error into a reason string.
func (o Outcome) MarshalJSON() ([]byte, error) {
	out := outcomeJSON{
		Source:     o.Source,
		Status:     o.Status,
		Bootstrap:  o.Bootstrap,
		Fields:     o.Fields,
		Merged:     o.Merged,
		Identifier: o.Identifier,
		DurationMs: o.Duration.Milliseconds(),
	}
	if o.Locale != language.Und {
		out.Locale = o.Locale.String()
	}
	if o.Err != nil {
		out.Reason = o.Err.Error()
	}
	return json.Marshal(out)
}

// UnmarshalJSON restores an outcome written by MarshalJSON. The error is kept as plain text.
func (o *Outcome) UnmarshalJSON(data []byte) error {
	var in outcomeJSON
	if err := json.Unmarshal(data, &in); err != nil {
		return err
	}

	*o = Outcome{
		Source:     in.Source,
		Status:     in.Status,
		Bootstrap:  in.Bootstrap,
		Fields:     in.Fields,
		Merged:     in.Merged,
		Identifier: in.Identifier,
		Duration:   time.Duration(in.DurationMs) * time.Millisecond,
	}
	if in.Locale != "" {
		o.Locale, _ = language.Parse(in.Locale)
	}
	if in.Reason != "" {
		o.Err = reasonError(in.Reason)
	}
	return nil
}

type reasonError string

func (r reasonError) Error() string { return string(r) }

// Report is the payload of the terminal event.
type Report struct {
	Session  uuid.UUID     `json:"session"`
	Target   *source.Media `json:"target"`
	Fields   field.Set     `json:"requested"`
	Outcomes []Outcome     `json:"outcomes"`
	Canceled bool          `json:"canceled,omitempty"`
	Started  time.Time     `json:"started"`
	Elapsed  time.Duration `json:"elapsed"`
}

// Outcome returns the outcome recorded for the source with the given id.
func (r *Report) Outcome(id string) (Outcome, bool) {
	return lo.Find(r.Outcomes, func(o Outcome) bool {
		return o.Source == id
	})
}

// Dispatched returns the outcomes of sources that were actually queried.
func (r *Report) Dispatched() []Outcome {
	return lo.Filter(r.Outcomes, func(o Outcome, _ int) bool {
		return o.Status != StatusSkipped
	})
}

// Missing returns the requested fields the target still lacks.
func (r *Report) Missing() field.Set {
	return r.Fields.Without(r.Target.Fields())
}
