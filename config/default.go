package config

import (
	"encoding/json"
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"text/template"

	"github.com/kinometa/kinometa/color"
	"github.com/kinometa/kinometa/constant"
	"github.com/kinometa/kinometa/key"
	"github.com/kinometa/kinometa/style"
	"github.com/samber/lo"
	"github.com/spf13/viper"
)

// Field represents a configuration field definition.
type Field struct {
	Key         string
	Value       any
	Description string
}

// Pretty returns a colored string representation of the field for display.
func (f *Field) Pretty() string {
	var b strings.Builder
	lo.Must0(prettyTemplate.Execute(&b, f))
	return b.String()
}

// Env returns the environment variable name for this field.
func (f *Field) Env() string {
	env := strings.ToUpper(EnvKeyReplacer.Replace(f.Key))
	prefix := strings.ToUpper(constant.Kinometa + "_")
	if strings.HasPrefix(env, prefix) {
		return env
	}
	return prefix + env
}

// MarshalJSON customizes JSON output to include current and default values.
func (f *Field) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Key         string `json:"key"`
		Value       any    `json:"value"`
		Default     any    `json:"default"`
		Description string `json:"description"`
		Type        string `json:"type"`
	}{
		Key:         f.Key,
		Value:       viper.Get(f.Key),
		Default:     f.Value,
		Description: f.Description,
		Type:        f.typeName(),
	})
}

// typeName returns the string representation of the field's underlying value type.
func (f *Field) typeName() string {
	switch f.Value.(type) {
	case string:
		return "string"
	case int:
		return "int"
	case bool:
		return "bool"
	case []string:
		return "[]string"
	case map[string]string:
		return "map[string]string"
	default:
		return "unknown"
	}
}

// Default holds the map of all configuration fields.
var Default = make(map[string]Field)

// EnvExposed holds keys that are bound to environment variables.
var EnvExposed []string

// DefaultMapping assigns every field to the source that answers it best.
var DefaultMapping = map[string]string{
	"title":         "anilist",
	"synonyms":      "anilist",
	"overview":      "anilist",
	"genres":        "anilist",
	"tags":          "anilist",
	"cast":          "malweb",
	"crew":          "malweb",
	"poster":        "anilist",
	"banner":        "kitsu",
	"status":        "anilist",
	"aired":         "anilist",
	"episodes":      "anilist",
	"runtime":       "mal",
	"rating":        "mal",
	"studios":       "anilist",
	"certification": "kitsu",
	"links":         "anilist",
}

func init() {
	register := func(k string, v any, desc string) {
		if _, exists := Default[k]; exists {
			panic("Duplicate config key: " + k)
		}
		Default[k] = Field{Key: k, Value: v, Description: desc}
		EnvExposed = append(EnvExposed, k)
	}

	register(key.ScrapeBootstrap, "anilist", "Source queried first to learn the identifiers of the item")
	register(key.ScrapeFields, []string{"all"}, "Fields to scrape.\nType \"kinometa fields\" to list them")
	register(key.ScrapeMapping, DefaultMapping, "Source that supplies each field.\nSources not named here are never queried")
	register(key.ScrapeMaxJobs, 4, "Maximum number of sources queried at the same time. 0 means no limit")
	register(key.ScrapeJobTimeout, "30s", "Time limit of a single source")
	register(key.ScrapeFallbackLocale, "en", "Locale used for sources that are not installed")
	register(key.SourcesLocale, map[string]string{}, "Locale of each source, e.g. anilist = \"ja\"")
	register(key.SourcesMalClientID, "", "MyAnimeList API client id.\nNot needed after \"kinometa mal auth\"")
	register(key.MetadataTagRelevanceThreshold, 60, "Minimum relevance of a tag to be included. From 0 to 100")
	register(key.MetadataCastLimit, 20, "Maximum number of cast and crew members to keep. 0 means no limit")
	register(key.NetworkRetries, 3, "Attempts of a request that failed with a transient error")
	register(key.NetworkTimeout, "1m", "Time limit of a single request")
	register(key.NetworkCache, "24h", "How long raw responses are cached. 0 disables the cache")
	register(key.HistorySave, true, "Save every scrape to the history")
	register(key.HistoryLimit, 100, "Number of scrapes the history keeps")
	register(key.SearchShowQuerySuggestions, true, "Show query suggestions when completing titles")
	register(key.IconsVariant, "plain", "Icons variant.\nAvailable options are: emoji, kaomoji, plain, squares, nerd (nerd-font required)")
	register(key.LogsWrite, false, "Write logs")
	register(key.LogsLevel, "info", "Available options are: (from less to most verbose)\npanic, fatal, error, warn, info, debug, trace")
	register(key.LogsJson, false, "Use json format for logs")
	register(key.LogsMaxSize, 10, "Size in megabytes a log file reaches before it is rotated")
	register(key.LogsMaxBackups, 3, "Number of rotated log files to keep")
	register(key.LogsMaxAge, 28, "Days to keep rotated log files")
	register(key.CliColored, true, "Enable colored CLI output")
	register(key.CliVersionCheck, true, "Enable automatic version check")
	register(key.CliWrap, 0, "Wrap text output at this width. 0 uses the terminal width")
}

var prettyTemplate = lo.Must(template.New("pretty").Funcs(template.FuncMap{
	"faint":    style.Faint,
	"bold":     style.Bold,
	"purple":   style.Fg(color.Purple),
	"blue":     style.Fg(color.Blue),
	"cyan":     style.Fg(color.Cyan),
	"value":    func(k string) any { return viper.Get(k) },
	"typename": func(v any) string { return reflect.TypeOf(v).String() },
	"hl": func(v any) string {
		switch value := v.(type) {
		case bool:
			b := strconv.FormatBool(value)
			if value {
				return style.Fg(color.Green)(b)
			}
			return style.Fg(color.Red)(b)
		case string:
			return style.Fg(color.Yellow)(value)
		default:
			return fmt.Sprint(value)
		}
	},
}).Parse(`{{ faint .Description }}
{{ blue "Key:" }}     {{ purple .Key }}
{{ blue "Env:" }}     {{ .Env }}
{{ blue "Value:" }}   {{ hl (value .Key) }}
{{ blue "Default:" }} {{ hl (.Value) }}
{{ blue "Type:" }}    {{ typename .Value }}`))
