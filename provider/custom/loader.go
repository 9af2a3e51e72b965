// Package custom runs user written Lua scripts as metadata sources.
package custom

import (
	"fmt"
	"strings"

	"github.com/kinometa/kinometa/constant"
	"github.com/kinometa/kinometa/field"
	"github.com/kinometa/kinometa/ident"
	"github.com/kinometa/kinometa/internal/scraper"
	"github.com/kinometa/kinometa/source"
	"github.com/kinometa/kinometa/util"
	libs "github.com/metafates/mangal-lua-libs"
	"github.com/samber/lo"
	lua "github.com/yuin/gopher-lua"
	"golang.org/x/text/language"
)

// IDfromName returns the source id of the script with the given base name.
func IDfromName(name string) string {
	return name + " custom"
}

// LoadSource runs the script at path and builds a source from the globals it declares.
func LoadSource(path string) (*Source, error) {
	state := lua.NewState()
	libs.Preload(state)
	registerTLSClient(state)

	if err := scraper.Load(state, path); err != nil {
		state.Close()
		return nil, err
	}

	name := util.FileStem(path)

	if state.GetGlobal(constant.FetchMetadataFn).Type() != lua.LTFunction {
		state.Close()
		return nil, fmt.Errorf("function %s is required but not defined in %s", constant.FetchMetadataFn, name)
	}

	capability, err := declarations(state)
	if err != nil {
		state.Close()
		return nil, fmt.Errorf("%s: %w", name, err)
	}

	return &Source{name: name, state: state, capability: capability}, nil
}

// declarations reads the capability globals of a loaded script.
func declarations(L *lua.LState) (source.Capability, error) {
	var c source.Capability

	fields := stringList(L.GetGlobal(constant.FieldsGlobal))
	if len(fields) == 0 {
		return c, fmt.Errorf("global %s must list at least one field", constant.FieldsGlobal)
	}
	set, err := field.ParseList(fields)
	if err != nil {
		return c, err
	}
	c.Fields = set

	namespace := strings.TrimSpace(lua.LVAsString(L.GetGlobal(constant.NamespaceGlobal)))
	if namespace == "" {
		return c, fmt.Errorf("global %s is required", constant.NamespaceGlobal)
	}
	c.Namespace = ident.Namespace(namespace)

	c.DefaultLocale = language.English
	if locale := lua.LVAsString(L.GetGlobal(constant.LocaleGlobal)); locale != "" {
		tag, err := language.Parse(locale)
		if err != nil {
			return c, fmt.Errorf("global %s: %w", constant.LocaleGlobal, err)
		}
		c.DefaultLocale = tag
	}

	for _, name := range stringList(L.GetGlobal(constant.KindsGlobal)) {
		kind, err := source.ParseKind(name)
		if err != nil {
			return c, err
		}
		c.Kinds = append(c.Kinds, kind)
	}
	c.Kinds = lo.Uniq(c.Kinds)

	c.Searchable = L.GetGlobal(constant.SearchMetadataFn).Type() == lua.LTFunction
	return c, nil
}
