// Package storage reads the site's binary assets (resume PDF, profile image)
// from the local filesystem or an S3-compatible bucket.
package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// ErrNotFound is returned when the named asset does not exist.
var ErrNotFound = errors.New("storage: asset not found")

// MaxAssetBytes bounds how much of one asset is read into memory.
const MaxAssetBytes = 20 << 20

// Source opens assets by name.
type Source interface {
	Open(ctx context.Context, name string) (io.ReadCloser, error)
}

// Local serves files below dir. An empty dir resolves names as given.
type Local struct {
	dir string
}

func NewLocal(dir string) *Local {
	return &Local{dir: dir}
}

func (l *Local) Open(ctx context.Context, name string) (io.ReadCloser, error) {
	path := name
	if l.dir != "" {
		path = filepath.Join(l.dir, filepath.Clean("/"+name))
	}
	f, err := os.Open(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, name)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to open asset: %w", err)
	}
	return f, nil
}

// ReadAll reads a whole asset, failing when it exceeds MaxAssetBytes.
func ReadAll(ctx context.Context, src Source, name string) ([]byte, error) {
	rc, err := src.Open(ctx, name)
	if err != nil {
		return nil, err
	}
	defer rc.Close()

	data, err := io.ReadAll(io.LimitReader(rc, MaxAssetBytes+1))
	if err != nil {
		return nil, fmt.Errorf("failed to read asset: %w", err)
	}
	if len(data) > MaxAssetBytes {
		return nil, fmt.Errorf("asset %s exceeds %d bytes", name, MaxAssetBytes)
	}
	return data, nil
}
