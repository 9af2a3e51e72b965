// Package history keeps a bounded log of finished scrapes.
package history

import (
	"sort"

	"github.com/kinometa/kinometa/filesystem"
	"github.com/kinometa/kinometa/key"
	"github.com/kinometa/kinometa/scrape"
	"github.com/kinometa/kinometa/where"
	"github.com/metafates/gache"
	"github.com/samber/lo"
	"github.com/spf13/viper"
)

var cacher = gache.New[map[string]*Entry](
	&gache.Options{
		Path:       where.History(),
		FileSystem: &filesystem.GacheFs{},
	},
)

// Get returns saved entries, newest first.
func Get() ([]*Entry, error) {
	saved, err := load()
	if err != nil {
		return nil, err
	}

	entries := lo.Values(saved)
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].SavedAt.After(entries[j].SavedAt)
	})
	return entries, nil
}

func load() (map[string]*Entry, error) {
	cached, expired, err := cacher.Get()
	if err != nil {
		return nil, err
	}
	if expired || cached == nil {
		return make(map[string]*Entry), nil
	}
	return cached, nil
}

// Save records the report unless saving is disabled. The oldest entries are dropped beyond the limit.
func Save(report *scrape.Report) error {
	if !viper.GetBool(key.HistorySave) || report == nil || report.Target == nil {
		return nil
	}

	saved, err := load()
	if err != nil {
		return err
	}

	entry := newEntry(report)
	saved[entry.encode()] = entry

	if limit := viper.GetInt(key.HistoryLimit); limit > 0 && len(saved) > limit {
		entries := lo.Values(saved)
		sort.Slice(entries, func(i, j int) bool {
			return entries[i].SavedAt.After(entries[j].SavedAt)
		})
		saved = lo.KeyBy(entries[:limit], func(e *Entry) string { return e.encode() })
	}

	return cacher.Set(saved)
}

// Remove deletes a single entry.
func Remove(entry *Entry) error {
	saved, err := load()
	if err != nil {
		return err
	}

	delete(saved, entry.encode())
	return cacher.Set(saved)
}

// Clear deletes every entry.
func Clear() error {
	return cacher.Set(make(map[string]*Entry))
}
