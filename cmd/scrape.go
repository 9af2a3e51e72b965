package cmd

import (
	"context"
	"fmt"
	"os"
	"sort"
	"strings"
	"sync"

	"github.com/kinometa/kinometa/config"
	"github.com/kinometa/kinometa/field"
	"github.com/kinometa/kinometa/filesystem"
	"github.com/kinometa/kinometa/icon"
	"github.com/kinometa/kinometa/ident"
	"github.com/kinometa/kinometa/inline"
	"github.com/kinometa/kinometa/key"
	"github.com/kinometa/kinometa/provider"
	"github.com/kinometa/kinometa/query"
	"github.com/kinometa/kinometa/scrape"
	"github.com/kinometa/kinometa/source"
	"github.com/kinometa/kinometa/util"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	rootCmd.AddCommand(scrapeCmd)

	scrapeCmd.Flags().StringP("anilist", "a", "", "AniList id of the item")
	scrapeCmd.Flags().StringP("mal", "m", "", "MyAnimeList id of the item")
	scrapeCmd.Flags().StringP("kitsu", "k", "", "Kitsu id of the item")
	scrapeCmd.Flags().String("kind", string(source.KindAnime), "Media kind of the item")
	scrapeCmd.Flags().StringSliceP("fields", "f", nil, "Fields to scrape, all by default")
	scrapeCmd.Flags().StringP("bootstrap", "b", "", "Source queried first")
	scrapeCmd.Flags().StringSlice("map", nil, "Override the source of a field, e.g. rating=kitsu")
	scrapeCmd.Flags().StringSlice("locale", nil, "Override the locale of a source, e.g. anilist=ja")
	scrapeCmd.Flags().BoolP("json", "j", false, "Print the record as json")
	scrapeCmd.Flags().StringP("output", "o", "", "Write the record to a file instead of stdout")
	scrapeCmd.Flags().BoolP("log", "l", false, "Print the outcome of every source")
	scrapeCmd.Flags().Duration("timeout", 0, "Time limit of the whole scrape")

	lo.Must0(scrapeCmd.RegisterFlagCompletionFunc("kind", func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		return lo.Map(source.Kinds(), func(k source.Kind, _ int) string { return string(k) }), cobra.ShellCompDirectiveNoFileComp
	}))
	lo.Must0(scrapeCmd.RegisterFlagCompletionFunc("fields", completeFieldNames))
	lo.Must0(scrapeCmd.RegisterFlagCompletionFunc("bootstrap", completeSourceIDs))
}

var scrapeCmd = &cobra.Command{
	Use:   "scrape [title]",
	Short: "Collect the metadata of one item",
	Long: `Look the item up in the bootstrap source, then ask every source of the field mapping
for the fields it is assigned. The merged record is printed and saved to the history.`,
	Example: `  kinometa scrape "cowboy bebop"
  kinometa scrape --mal 1 --fields title,rating --json
  kinometa scrape "trigun" --map rating=kitsu --locale anilist=ja`,
	Args: cobra.MaximumNArgs(1),
	ValidArgsFunction: func(_ *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		if len(args) > 0 {
			return nil, cobra.ShellCompDirectiveNoFileComp
		}
		return query.SuggestMany(toComplete), cobra.ShellCompDirectiveNoFileComp
	},
	Run: func(cmd *cobra.Command, args []string) {
		options, err := scrapeOptions(cmd, args)
		handleErr(err)

		registry := provider.DefaultRegistry()
		defer registry.Close()
		options.Registry = registry

		output := lo.Must(cmd.Flags().GetString("output"))
		if output != "" {
			file, err := filesystem.API().Create(output)
			handleErr(err)
			defer util.Ignore(file.Close)
			options.Out = file
		}

		if !options.Json || output != "" {
			options.Observers = append(options.Observers, newProgress())
		}

		ctx := cmd.Context()
		if ctx == nil {
			ctx = context.Background()
		}

		_, err = inline.Run(ctx, options)
		handleErr(err)

		if options.Query != "" {
			_ = query.Remember(options.Query, 1)
		}

		if output != "" {
			fmt.Printf("%s wrote %s\n", icon.Get(icon.Success), output)
		}
	},
}

func scrapeOptions(cmd *cobra.Command, args []string) (*inline.Options, error) {
	flags := cmd.Flags()

	options := &inline.Options{
		Out:     os.Stdout,
		Json:    lo.Must(flags.GetBool("json")),
		ShowLog: lo.Must(flags.GetBool("log")),
		Timeout: lo.Must(flags.GetDuration("timeout")),
	}

	if len(args) > 0 {
		options.Query = strings.TrimSpace(args[0])
	}

	options.Refs = inline.Refs(map[ident.Namespace]string{
		ident.AniList: lo.Must(flags.GetString("anilist")),
		ident.MAL:     lo.Must(flags.GetString("mal")),
		ident.Kitsu:   lo.Must(flags.GetString("kitsu")),
	})

	kind, err := source.ParseKind(lo.Must(flags.GetString("kind")))
	if err != nil {
		return nil, err
	}
	options.Kind = kind

	if names := lo.Must(flags.GetStringSlice("fields")); len(names) > 0 {
		options.Fields, err = field.ParseList(names)
	} else {
		options.Fields, err = config.Fields()
	}
	if err != nil {
		return nil, err
	}

	options.Bootstrap = lo.CoalesceOrEmpty(lo.Must(flags.GetString("bootstrap")), viper.GetString(key.ScrapeBootstrap))

	mapping, err := config.Mapping()
	if err != nil {
		return nil, err
	}
	overrides, err := inline.ParseMapping(lo.Must(flags.GetStringSlice("map")))
	if err != nil {
		return nil, err
	}
	options.Mapping = mapping.With(overrides)

	options.Locales, err = inline.ParseLocales(lo.Must(flags.GetStringSlice("locale")))
	if err != nil {
		return nil, err
	}

	return options, nil
}

func completeFieldNames(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
	return lo.Map(field.All(), func(f field.Field, _ int) string { return f.String() }), cobra.ShellCompDirectiveNoFileComp
}

// progress shows which sources are still running on a single erasable line.
type progress struct {
	mu      sync.Mutex
	running map[string]struct{}
	erase   func()
}

func newProgress() *progress {
	return &progress{running: make(map[string]struct{})}
}

func (p *progress) Notify(_ context.Context, event scrape.Event) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	switch event.Type {
	case scrape.EventJobStarted:
		p.running[event.Source] = struct{}{}
	case scrape.EventJobFinished, scrape.EventJobSkipped:
		delete(p.running, event.Source)
	case scrape.EventFinished:
		p.clear()
		return nil
	default:
		return nil
	}

	p.clear()
	if len(p.running) > 0 {
		p.erase = util.PrintErasable(p.line())
	}
	return nil
}

func (p *progress) line() string {
	ids := lo.Keys(p.running)
	sort.Strings(ids)
	return fmt.Sprintf("%s Fetching from %s...", icon.Get(icon.Progress), strings.Join(ids, ", "))
}

func (p *progress) clear() {
	if p.erase != nil {
		p.erase()
		p.erase = nil
	}
}

var _ scrape.Observer = (*progress)(nil)
