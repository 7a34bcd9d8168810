// Package filex has filesystem helpers shared by the picker and the upload
// client.
package filex

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"
)

// EnsureSubDir creates base/name (base defaults to the working directory)
// and returns its path.
func EnsureSubDir(base, name string) (string, error) {
	if base == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("getwd: %w", err)
		}
		base = cwd
	}

	dir := filepath.Join(base, name)
	if err := os.MkdirAll(dir, 0o770); err != nil {
		return "", fmt.Errorf("mkdir %s: %w", dir, err)
	}
	return dir, nil
}

// LocalPath turns an image location handle into a filesystem path. Plain
// paths are returned unchanged; "file://" URIs are decoded.
func LocalPath(uri string) (string, error) {
	if !strings.HasPrefix(uri, "file://") {
		return uri, nil
	}
	u, err := url.Parse(uri)
	if err != nil {
		return "", fmt.Errorf("parse %q: %w", uri, err)
	}
	return filepath.FromSlash(u.Path), nil
}
