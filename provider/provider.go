// Package provider lists the built-in and custom metadata sources and resolves them by id.
package provider

import (
	"bytes"
	"path/filepath"
	"sort"
	"sync"

	"github.com/kinometa/kinometa/anilist"
	"github.com/kinometa/kinometa/filesystem"
	"github.com/kinometa/kinometa/kitsu"
	"github.com/kinometa/kinometa/log"
	"github.com/kinometa/kinometa/mal"
	"github.com/kinometa/kinometa/malweb"
	"github.com/kinometa/kinometa/provider/custom"
	"github.com/kinometa/kinometa/source"
	"github.com/kinometa/kinometa/util"
	"github.com/kinometa/kinometa/where"
	"github.com/samber/lo"
)

// Provider describes a source that can be created on demand.
type Provider struct {
	ID           string
	Name         string
	UsesHeadless bool // The script requires the headless browser module.
	IsCustom     bool
	Path         string // Script path of a custom provider.
	CreateSource func() (source.Source, error)
}

func (p *Provider) String() string {
	return p.Name
}

func builtin(s source.Source) *Provider {
	return &Provider{
		ID:   s.ID(),
		Name: s.Name(),
		CreateSource: func() (source.Source, error) {
			return s, nil
		},
	}
}

// Builtins returns the sources compiled into the binary.
func Builtins() []*Provider {
	return []*Provider{
		builtin(anilist.Source{}),
		builtin(mal.Source{}),
		builtin(malweb.Source{}),
		builtin(kitsu.Source{}),
	}
}

// Customs returns all available Lua providers.
func Customs() []*Provider {
	providers, err := CustomProviders()
	if err != nil {
		log.Warnf("reading custom sources: %v", err)
	}
	return providers
}

// All returns built-in providers followed by custom ones.
func All() []*Provider {
	return append(Builtins(), Customs()...)
}

// Get finds a provider by id or name.
func Get(name string) (*Provider, bool) {
	return lo.Find(All(), func(p *Provider) bool {
		return p.ID == name || p.Name == name
	})
}

// CustomProviders scans the sources directory for Lua scripts.
func CustomProviders() ([]*Provider, error) {
	dir := where.Sources()
	files, err := filesystem.API().ReadDir(dir)
	if err != nil {
		return nil, err
	}

	var providers []*Provider
	for _, f := range files {
		if f.IsDir() || filepath.Ext(f.Name()) != ".lua" {
			continue
		}

		path := filepath.Join(dir, f.Name())
		name := util.FileStem(f.Name())

		providers = append(providers, &Provider{
			ID:           custom.IDfromName(name),
			Name:         name,
			UsesHeadless: isHeadless(path),
			IsCustom:     true,
			Path:         path,
			CreateSource: func() (source.Source, error) {
				return custom.LoadSource(path)
			},
		})
	}

	sort.Slice(providers, func(i, j int) bool {
		return providers[i].Name < providers[j].Name
	})
	return providers, nil
}

func isHeadless(path string) bool {
	content, err := filesystem.API().ReadFile(path)
	if err != nil {
		return false
	}

	match := [][]byte{
		[]byte("require(\"headless\")"),
		[]byte("require('headless')"),
	}

	for _, m := range match {
		if bytes.Contains(content, m) {
			return true
		}
	}
	return false
}

// Registry resolves source ids to live sources. Sources are created on first use and kept.
type Registry struct {
	providers map[string]*Provider

	mu      sync.Mutex
	sources map[string]source.Source
	failed  map[string]error
}

// NewRegistry returns a registry over the given providers.
func NewRegistry(providers []*Provider) *Registry {
	return &Registry{
		providers: lo.KeyBy(providers, func(p *Provider) string { return p.ID }),
		sources:   make(map[string]source.Source),
		failed:    make(map[string]error),
	}
}

// DefaultRegistry returns a registry over every built-in and custom provider.
func DefaultRegistry() *Registry {
	return NewRegistry(All())
}

// Resolve returns the source with the given id. An unknown id or a source that fails to load
// is reported as missing.
func (r *Registry) Resolve(id string) (source.Source, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if s, ok := r.sources[id]; ok {
		return s, true
	}
	if _, ok := r.failed[id]; ok {
		return nil, false
	}

	p, ok := r.providers[id]
	if !ok {
		return nil, false
	}

	s, err := p.CreateSource()
	if err != nil {
		log.Logger().WithField("source", id).WithError(err).Error("source failed to load")
		r.failed[id] = err
		return nil, false
	}

	r.sources[id] = s
	return s, true
}

// Err returns the error a source failed to load with.
func (r *Registry) Err(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.failed[id]
}

// IDs returns the ids of every provider in the registry, sorted.
func (r *Registry) IDs() []string {
	ids := lo.Keys(r.providers)
	sort.Strings(ids)
	return ids
}

// Close releases the Lua states of loaded custom sources.
func (r *Registry) Close() {
	r.mu.Lock()
	defer r.mu.Unlock()

	for id, s := range r.sources {
		if c, ok := s.(interface{ Close() }); ok {
			c.Close()
		}
		delete(r.sources, id)
	}
}
