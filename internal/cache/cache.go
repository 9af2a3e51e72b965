// Package cache keeps raw source responses on disk for a limited time.
package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"io/fs"
	"path/filepath"
	"strings"
	"time"

	"github.com/kinometa/kinometa/filesystem"
	"github.com/kinometa/kinometa/where"
)

// Key derives a stable file name from the parts identifying a response.
func Key(parts ...string) string {
	hash := sha256.Sum256([]byte(strings.Join(parts, "\x00")))
	return hex.EncodeToString(hash[:])
}

func path(key string) string {
	return filepath.Join(where.Responses(), key)
}

// Get returns the cached bytes stored under key if they are younger than ttl.
func Get(key string, ttl time.Duration) ([]byte, bool) {
	if ttl <= 0 {
		return nil, false
	}

	p := path(key)
	info, err := filesystem.API().Stat(p)
	if err != nil || time.Since(info.ModTime()) > ttl {
		return nil, false
	}

	data, err := filesystem.API().ReadFile(p)
	if err != nil {
		return nil, false
	}
	return data, true
}

// Put stores data under key. The file is replaced atomically.
func Put(key string, data []byte) error {
	return filesystem.WriteAtomic(path(key), data, 0o644)
}

// ReadJSON decodes the cached value under key into target.
func ReadJSON(key string, ttl time.Duration, target any) bool {
	data, ok := Get(key, ttl)
	if !ok {
		return false
	}
	return json.Unmarshal(data, target) == nil
}

// WriteJSON encodes value and stores it under key.
func WriteJSON(key string, value any) error {
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return Put(key, data)
}

// CollectGarbage removes entries older than ttl and returns how many were removed.
func CollectGarbage(ttl time.Duration) int {
	var removed int
	_ = filesystem.API().Walk(where.Responses(), func(p string, info fs.FileInfo, err error) error {
		if err != nil || info.IsDir() {
			return nil
		}
		if time.Since(info.ModTime()) > ttl {
			if filesystem.API().Remove(p) == nil {
				removed++
			}
		}
		return nil
	})
	return removed
}
