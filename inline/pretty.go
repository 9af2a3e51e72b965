package inline

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/kinometa/kinometa/color"
	"github.com/kinometa/kinometa/field"
	"github.com/kinometa/kinometa/icon"
	"github.com/kinometa/kinometa/key"
	"github.com/kinometa/kinometa/scrape"
	"github.com/kinometa/kinometa/source"
	"github.com/kinometa/kinometa/style"
	"github.com/kinometa/kinometa/util"
	"github.com/muesli/reflow/indent"
	"github.com/muesli/reflow/wordwrap"
	"github.com/samber/lo"
	"github.com/spf13/viper"
)

const labelWidth = 15

func wrapWidth() int {
	if w := viper.GetInt(key.CliWrap); w > 0 {
		return w
	}
	return util.Min(util.TerminalWidth(80), 100)
}

func people(list []source.Person) string {
	return strings.Join(lo.Map(list, func(p source.Person, _ int) string {
		switch {
		case p.Character != "":
			return fmt.Sprintf("%s (%s)", p.Name, p.Character)
		case p.Role != "":
			return fmt.Sprintf("%s (%s)", p.Name, p.Role)
		default:
			return p.Name
		}
	}), ", ")
}

func aired(m *source.Metadata) string {
	switch {
	case m.EndDate.IsZero():
		return m.StartDate.String()
	case m.StartDate.IsZero():
		return "? - " + m.EndDate.String()
	default:
		return m.StartDate.String() + " - " + m.EndDate.String()
	}
}

// value renders a field of m as one line of text.
func value(m *source.Metadata, f field.Field) string {
	switch f {
	case field.Title:
		return m.Title
	case field.Synonyms:
		return strings.Join(m.Synonyms, ", ")
	case field.Overview:
		return m.Overview
	case field.Genres:
		return strings.Join(m.Genres, ", ")
	case field.Tags:
		return strings.Join(m.Tags, ", ")
	case field.Cast:
		return people(m.Cast)
	case field.Crew:
		return people(m.Crew)
	case field.Poster:
		return m.Cover.Best()
	case field.Banner:
		return m.BannerImage
	case field.Status:
		return m.Status
	case field.Aired:
		return aired(m)
	case field.Episodes:
		return strconv.Itoa(m.Episodes)
	case field.Runtime:
		return util.Quantify(m.Runtime, "minute", "minutes")
	case field.Rating:
		return fmt.Sprintf("%d / 100", m.Score)
	case field.Studios:
		return strings.Join(m.Studios, ", ")
	case field.Certification:
		return m.Certification
	case field.Links:
		return strings.Join(m.URLs, "\n")
	default:
		return ""
	}
}

func statusIcon(s scrape.Status) string {
	switch s {
	case scrape.StatusSucceeded:
		return icon.Get(icon.Success)
	case scrape.StatusSkipped:
		return icon.Get(icon.Skip)
	case scrape.StatusCanceled:
		return icon.Get(icon.Cancel)
	case scrape.StatusEmpty:
		return icon.Get(icon.Question)
	default:
		return icon.Get(icon.Fail)
	}
}

func writePretty(w io.Writer, report *scrape.Report, withLog bool) error {
	var b strings.Builder
	width := wrapWidth()
	target := report.Target

	b.WriteString(style.Title(target.Title()))
	b.WriteString(" " + style.Faint(string(target.Kind)) + "\n\n")

	label := style.Fg(color.Purple)
	for _, f := range target.Fields().Fields() {
		if f == field.Title {
			continue
		}

		text := wordwrap.String(value(&target.Metadata, f), width-labelWidth)
		text = strings.TrimLeft(indent.String(text, labelWidth), " ")

		origin := ""
		if id, ok := target.Origin[f]; ok {
			origin = " " + style.Faint("["+id+"]")
		}

		b.WriteString(fmt.Sprintf("%s%s%s\n", label(fmt.Sprintf("%-*s", labelWidth, util.Capitalize(f.String()))), text, origin))
	}

	if namespaces := target.Refs.Namespaces(); len(namespaces) > 0 {
		b.WriteString("\n")
		for _, ns := range namespaces {
			b.WriteString(fmt.Sprintf("%s %s %s\n", icon.Get(icon.Link), style.Bold(string(ns)), target.Refs.Get(ns)))
		}
	}

	if missing := report.Missing(); !missing.IsEmpty() {
		b.WriteString("\n" + style.Faint("Missing "+missing.String()) + "\n")
	}

	if withLog {
		b.WriteString("\n")
		for _, o := range report.Outcomes {
			line := fmt.Sprintf("%s %-10s %-9s", statusIcon(o.Status), o.Source, o.Status)
			if !o.Merged.IsEmpty() {
				line += " " + o.Merged.String()
			}
			if o.Err != nil {
				line += " " + style.Fg(color.Red)(o.Err.Error())
			}
			if o.Duration > 0 {
				line += " " + style.Faint(o.Duration.Round(time.Millisecond).String())
			}
			b.WriteString(line + "\n")
		}
	}

	if report.Canceled {
		b.WriteString("\n" + style.Fg(color.Yellow)(icon.Get(icon.Cancel)+" canceled") + "\n")
	}

	_, err := io.WriteString(w, b.String())
	return err
}
