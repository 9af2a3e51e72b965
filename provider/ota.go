package provider

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"

	"github.com/kinometa/kinometa/internal/scraper"
	"github.com/kinometa/kinometa/log"
	"github.com/kinometa/kinometa/where"
)

// RepoRawURL is where published scripts are downloaded from.
var RepoRawURL = "https://raw.githubusercontent.com/kinometa/kinometa/main/sources/"

// Install downloads the published script with the given name into the sources directory.
func Install(ctx context.Context, name string) (bool, error) {
	file := name + ".lua"
	return scraper.Update(ctx, RepoRawURL+file, filepath.Join(where.Sources(), file))
}

// UpdateCustoms refreshes every installed script from its published version.
// It returns the names of the scripts that changed.
func UpdateCustoms(ctx context.Context) ([]string, error) {
	providers, err := CustomProviders()
	if err != nil {
		return nil, err
	}

	var (
		updated []string
		errs    []error
	)
	for _, p := range providers {
		changed, err := Install(ctx, p.Name)
		if err != nil {
			log.Warnf("updating source %s: %v", p.Name, err)
			errs = append(errs, fmt.Errorf("%s: %w", p.Name, err))
			continue
		}

		if changed {
			log.Infof("updated source %s", p.Name)
			updated = append(updated, p.Name)
		}
	}

	return updated, errors.Join(errs...)
}
