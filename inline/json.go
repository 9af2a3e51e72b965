package inline

import (
	"encoding/json"
	"io"
	"reflect"

	"github.com/google/uuid"
	"github.com/invopop/jsonschema"
	"github.com/kinometa/kinometa/field"
	"github.com/kinometa/kinometa/ident"
	"github.com/kinometa/kinometa/scrape"
	"github.com/kinometa/kinometa/source"
	"github.com/samber/lo"
)

// Output is the JSON document printed for a scrape.
type Output struct {
	Session  uuid.UUID        `json:"session"`
	Query    string           `json:"query"`
	Result   *source.Media    `json:"result"`
	Missing  field.Set        `json:"missing" jsonschema:"description=Requested fields no source supplied."`
	Canceled bool             `json:"canceled,omitempty"`
	Outcomes []scrape.Outcome `json:"outcomes,omitempty" jsonschema:"description=Present with --log."`
}

func newOutput(report *scrape.Report, withLog bool) *Output {
	out := &Output{
		Session:  report.Session,
		Query:    report.Target.Query,
		Result:   report.Target,
		Missing:  report.Missing(),
		Canceled: report.Canceled,
	}
	if withLog {
		out.Outcomes = report.Outcomes
	}
	return out
}

func writeJson(w io.Writer, report *scrape.Report, withLog bool) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(newOutput(report, withLog))
}

// outcomeDocument mirrors the JSON form of scrape.Outcome for the schema.
type outcomeDocument struct {
	Source     string    `json:"source"`
	Status     string    `json:"status" jsonschema:"enum=succeeded,enum=empty,enum=failed,enum=skipped,enum=canceled"`
	Bootstrap  bool      `json:"bootstrap,omitempty"`
	Fields     field.Set `json:"fields"`
	Merged     field.Set `json:"merged"`
	Identifier string    `json:"identifier"`
	Locale     string    `json:"locale,omitempty"`
	Reason     string    `json:"reason,omitempty"`
	DurationMs int64     `json:"durationMs"`
}

func fieldNames() []any {
	return lo.Map(field.All(), func(f field.Field, _ int) any {
		return f.String()
	})
}

func mapper(t reflect.Type) *jsonschema.Schema {
	switch t {
	case reflect.TypeOf(uuid.UUID{}):
		return &jsonschema.Schema{Type: "string", Format: "uuid"}
	case reflect.TypeOf(field.Set{}):
		return &jsonschema.Schema{
			Type:  "array",
			Items: &jsonschema.Schema{Type: "string", Enum: fieldNames()},
		}
	case reflect.TypeOf(ident.Identifier{}):
		return &jsonschema.Schema{OneOf: []*jsonschema.Schema{{Type: "string"}, {Type: "integer"}}}
	case reflect.TypeOf(map[field.Field]string{}):
		return &jsonschema.Schema{Type: "object", AdditionalProperties: &jsonschema.Schema{Type: "string"}}
	case reflect.TypeOf(scrape.Outcome{}):
		r := &jsonschema.Reflector{DoNotReference: true, Mapper: mapper}
		s := r.Reflect(&outcomeDocument{})
		s.Version = ""
		return s
	default:
		return nil
	}
}

// Schema returns the JSON Schema of the output.
func Schema() *jsonschema.Schema {
	r := &jsonschema.Reflector{
		DoNotReference: true,
		Mapper:         mapper,
	}
	return r.Reflect(&Output{})
}
