package scraper

import (
	"bytes"
	"context"
	"crypto/sha256"
	"fmt"

	"github.com/kinometa/kinometa/filesystem"
	"github.com/kinometa/kinometa/network"
)

// Update downloads the script at remoteURL and replaces localPath with it when the content differs.
// The replacement is atomic. It reports whether the file changed.
func Update(ctx context.Context, remoteURL, localPath string) (bool, error) {
	remote, err := network.GetBody(ctx, remoteURL, nil, false)
	if err != nil {
		return false, err
	}

	if local, err := filesystem.API().ReadFile(localPath); err == nil {
		if sha256.Sum256(local) == sha256.Sum256(remote) {
			return false, nil
		}
	}

	if !bytes.Contains(remote, []byte("function")) {
		return false, fmt.Errorf("%s does not look like a lua script", remoteURL)
	}

	if err := filesystem.WriteAtomic(localPath, remote, 0o644); err != nil {
		return false, err
	}

	Forget(localPath)
	return true, nil
}
