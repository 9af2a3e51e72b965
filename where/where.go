// Package where resolves the directories and files the application keeps its state in.
package where

import (
	"os"
	"path/filepath"

	"github.com/kinometa/kinometa/constant"
	"github.com/kinometa/kinometa/filesystem"
	"github.com/samber/lo"
)

// EnvConfigPath overrides the config directory.
const EnvConfigPath = "KINOMETA_CONFIG_PATH"

func ensureDir(path string) string {
	lo.Must0(filesystem.API().MkdirAll(path, os.ModePerm))
	return path
}

// Config returns the config directory, creating it if needed.
// It follows XDG_CONFIG_HOME on Linux and the platform equivalent elsewhere, unless KINOMETA_CONFIG_PATH is set.
func Config() string {
	if custom, ok := os.LookupEnv(EnvConfigPath); ok {
		return ensureDir(custom)
	}

	base := lo.Must(os.UserConfigDir())
	return ensureDir(filepath.Join(base, constant.Kinometa))
}

// Cache returns the cache directory.
func Cache() string {
	base, err := os.UserCacheDir()
	if err != nil {
		base = filepath.Join(".", "cache")
	}
	return ensureDir(filepath.Join(base, constant.Kinometa))
}

// Responses is where raw source responses are cached.
func Responses() string {
	return ensureDir(filepath.Join(Cache(), "responses"))
}

func Logs() string {
	return ensureDir(filepath.Join(Config(), "logs"))
}

// Sources is the directory of custom Lua sources.
func Sources() string {
	return ensureDir(filepath.Join(Config(), "sources"))
}

// History is the file finished scrapes are saved to.
func History() string {
	return filepath.Join(Config(), "history.json")
}

// AnilistBinds is the file that maps queries to AniList ids chosen by the user.
func AnilistBinds() string {
	return filepath.Join(Config(), "anilist.json")
}

// Queries is the file of query suggestions.
func Queries() string {
	return filepath.Join(Cache(), "queries.json")
}

func Temp() string {
	return ensureDir(filepath.Join(os.TempDir(), constant.Kinometa))
}
