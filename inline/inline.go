// Package inline runs one scrape without interaction and prints the merged item.
package inline

import (
	"context"
	"errors"
	"os"

	"github.com/kinometa/kinometa/config"
	"github.com/kinometa/kinometa/history"
	"github.com/kinometa/kinometa/ident"
	"github.com/kinometa/kinometa/key"
	"github.com/kinometa/kinometa/log"
	"github.com/kinometa/kinometa/scrape"
	"github.com/kinometa/kinometa/source"
	"github.com/spf13/viper"
)

// Run scrapes the item described by options, saves it to the history and writes it to options.Out.
// Failing sources do not make Run fail; they are listed in the report.
func Run(ctx context.Context, options *Options) (*scrape.Report, error) {
	if options.Out == nil {
		options.Out = os.Stdout
	}

	target := source.NewMedia(options.Kind, options.Query)
	target.Refs.Merge(options.Refs)

	if options.Query == "" && len(target.Refs.Namespaces()) == 0 {
		return nil, errors.New("a title or an identifier is required")
	}

	if options.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, options.Timeout)
		defer cancel()
	}

	o := scrape.New(scrape.Options{
		Registry:       options.Registry,
		Settings:       overrides{locales: options.Locales, fallback: config.Settings{}},
		Mapping:        options.Mapping,
		Observers:      options.Observers,
		FallbackLocale: config.FallbackLocale(),
		MaxJobs:        viper.GetInt(key.ScrapeMaxJobs),
		JobTimeout:     config.Duration(key.ScrapeJobTimeout),
		Logger:         log.Logger(),
	})

	session := o.Start(ctx, target, options.Fields, options.Bootstrap)
	<-session.Done()
	report := session.Report()

	if err := history.Save(report); err != nil {
		log.Warnf("saving history: %v", err)
	}

	if options.Json {
		return report, writeJson(options.Out, report, options.ShowLog)
	}
	return report, writePretty(options.Out, report, options.ShowLog)
}

// Refs builds the identifiers given on the command line. Empty values are skipped.
func Refs(ids map[ident.Namespace]string) ident.Refs {
	refs := make(ident.Refs)
	for ns, id := range ids {
		refs.Set(ns, ident.Parse(id))
	}
	return refs
}
