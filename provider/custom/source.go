package custom

import (
	"context"
	"fmt"
	"sync"

	"github.com/kinometa/kinometa/constant"
	"github.com/kinometa/kinometa/field"
	"github.com/kinometa/kinometa/ident"
	"github.com/kinometa/kinometa/source"
	"github.com/samber/lo"
	lua "github.com/yuin/gopher-lua"
)

// Source is a metadata source backed by a Lua script.
// A Lua state is not safe for concurrent use, so calls into it are serialized.
type Source struct {
	name       string
	capability source.Capability

	mu    sync.Mutex
	state *lua.LState
}

func (s *Source) Name() string {
	return s.name
}

func (s *Source) ID() string {
	return IDfromName(s.name)
}

func (s *Source) Capability() source.Capability {
	return s.capability
}

// Close releases the Lua state.
func (s *Source) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.Close()
}

func (s *Source) Fetch(ctx context.Context, req source.Request) (*source.Partial, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.state.SetContext(ctx)
	defer s.state.RemoveContext()

	id := req.ID
	if !id.IsValid() {
		if !s.capability.Searchable || req.Title == "" {
			return nil, fmt.Errorf("%s needs a valid %s id", s.ID(), s.capability.Namespace)
		}

		found, err := s.call(constant.SearchMetadataFn, lua.LTString, lua.LString(req.Title))
		if err != nil {
			return nil, err
		}

		id = ident.Parse(found.String())
		if !id.IsValid() {
			return nil, source.ErrNotFound
		}
	}

	fields := s.state.NewTable()
	for _, f := range req.Fields.Fields() {
		fields.Append(lua.LString(f.String()))
	}

	value, err := s.call(constant.FetchMetadataFn, lua.LTTable, lua.LString(id.String()), fields, lua.LString(req.Locale.String()))
	if err != nil {
		return nil, err
	}

	p := source.NewPartial(s.ID())
	p.Metadata, p.Refs = metadataFromTable(value.(*lua.LTable))
	p.Refs.Set(s.capability.Namespace, id)

	return p.Restrict(req.Fields), nil
}

// call runs a global function of the script and checks the type of its single result.
// A nil result of a table function means the item is unknown.
func (s *Source) call(fn string, retType lua.LValueType, args ...lua.LValue) (lua.LValue, error) {
	luaFn := s.state.GetGlobal(fn)
	if luaFn.Type() != lua.LTFunction {
		return nil, fmt.Errorf("function %s is not defined", fn)
	}

	err := s.state.CallByParam(lua.P{
		Fn:      luaFn,
		NRet:    1,
		Protect: true,
	}, args...)
	if err != nil {
		return nil, err
	}

	retval := s.state.Get(-1)
	s.state.Pop(1)

	if retval.Type() == lua.LTNil {
		return nil, source.ErrNotFound
	}
	if retval.Type() != retType {
		return nil, fmt.Errorf("%s returned %s, expected %s", fn, retval.Type(), retType)
	}

	return retval, nil
}

// Fields lists the field names the script declares.
func (s *Source) Fields() []string {
	return lo.Map(s.capability.Fields.Fields(), func(f field.Field, _ int) string {
		return f.String()
	})
}
