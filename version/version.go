// Package version checks for newer releases.
package version

import (
	"context"
	"errors"
	"path/filepath"
	"strings"
	"time"

	"github.com/kinometa/kinometa/filesystem"
	"github.com/kinometa/kinometa/network"
	"github.com/kinometa/kinometa/where"
	"github.com/metafates/gache"
)

// ReleasesURL is the GitHub endpoint of the latest release.
var ReleasesURL = "https://api.github.com/repos/kinometa/kinometa/releases/latest"

var versionCacher = gache.New[string](&gache.Options{
	Path:       filepath.Join(where.Cache(), "version.json"),
	Lifetime:   time.Hour * 24 * 2,
	FileSystem: &filesystem.GacheFs{},
})

// Latest returns the version of the latest release without the v prefix.
// The answer is cached for two days.
func Latest(ctx context.Context) (string, error) {
	ver, expired, err := versionCacher.Get()
	if err != nil {
		return "", err
	}

	if !expired && ver != "" {
		return ver, nil
	}

	var release struct {
		TagName string `json:"tag_name"`
	}
	if err := network.GetJSON(ctx, ReleasesURL, nil, false, &release); err != nil {
		return "", err
	}

	if release.TagName == "" {
		return "", errors.New("empty tag name")
	}

	ver = strings.TrimPrefix(release.TagName, "v")
	_ = versionCacher.Set(ver)
	return ver, nil
}
