package history

import (
	"fmt"
	"strings"
	"time"

	"github.com/kinometa/kinometa/field"
	"github.com/kinometa/kinometa/ident"
	"github.com/kinometa/kinometa/scrape"
	"github.com/kinometa/kinometa/source"
	"github.com/samber/lo"
)

// Entry is the summary of one finished scrape.
type Entry struct {
	Session  string      `json:"session"`
	Query    string      `json:"query"`
	Title    string      `json:"title"`
	Kind     source.Kind `json:"kind"`
	Refs     ident.Refs  `json:"refs"`
	Fields   field.Set   `json:"fields"`
	Missing  field.Set   `json:"missing"`
	Sources  []string    `json:"sources"`
	Canceled bool        `json:"canceled,omitempty"`
	SavedAt  time.Time   `json:"saved_at"`
}

// encode is the key entries are deduplicated by: a newer scrape of the same item replaces the older one.
func (e *Entry) encode() string {
	return fmt.Sprintf("%s (%s)", strings.ToLower(e.Query), e.Kind)
}

func (e *Entry) String() string {
	return fmt.Sprintf("%s : %d fields from %s", e.Title, e.Fields.Len(), strings.Join(e.Sources, ", "))
}

func newEntry(report *scrape.Report) *Entry {
	return &Entry{
		Session: report.Session.String(),
		Query:   report.Target.Query,
		Title:   report.Target.Title(),
		Kind:    report.Target.Kind,
		Refs:    report.Target.Refs.Clone(),
		Fields:  report.Target.Fields(),
		Missing: report.Missing(),
		Sources: lo.FilterMap(report.Outcomes, func(o scrape.Outcome, _ int) (string, bool) {
			return o.Source, o.Status == scrape.StatusSucceeded
		}),
		Canceled: report.Canceled,
		SavedAt:  report.Started.Add(report.Elapsed),
	}
}
