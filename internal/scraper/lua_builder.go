// Package scraper compiles Lua source scripts and keeps them up to date.
package scraper

import (
	"sync"

	"github.com/kinometa/kinometa/filesystem"
	lua "github.com/yuin/gopher-lua"
	"github.com/yuin/gopher-lua/parse"
)

var prototypes sync.Map

// Compile returns the bytecode of the script at path. The result is cached per path until Forget is called.
func Compile(path string) (*lua.FunctionProto, error) {
	if cached, ok := prototypes.Load(path); ok {
		return cached.(*lua.FunctionProto), nil
	}

	file, err := filesystem.API().Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	chunk, err := parse.Parse(file, path)
	if err != nil {
		return nil, err
	}

	proto, err := lua.Compile(chunk, path)
	if err != nil {
		return nil, err
	}

	prototypes.Store(path, proto)
	return proto, nil
}

// Load runs the script at path in L, defining its globals.
func Load(L *lua.LState, path string) error {
	proto, err := Compile(path)
	if err != nil {
		return err
	}

	L.Push(L.NewFunctionFromProto(proto))
	return L.PCall(0, lua.MultRet, nil)
}

// Forget drops the cached bytecode of the script at path.
func Forget(path string) {
	prototypes.Delete(path)
}
