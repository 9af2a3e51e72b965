package filesystem

import (
	"io"
	"os"
)

// GacheFs lets gache stores (history, query suggestions, anilist binds, release checks) live on the
// active backend.
type GacheFs struct{}

func (GacheFs) OpenFile(name string, flag int, perm os.FileMode) (io.ReadWriteCloser, error) {
	return API().OpenFile(name, flag, perm)
}

func (GacheFs) MkdirAll(path string, perm os.FileMode) error {
	return API().MkdirAll(path, perm)
}
