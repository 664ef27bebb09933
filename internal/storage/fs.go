package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// fsStorage implements Storage on a local directory. Blob keys map to paths
// relative to the base directory; key path traversal outside the base
// directory is rejected.
type fsStorage struct {
	baseDir string
}

// NewFS creates a filesystem blob store rooted at baseDir, creating the
// directory if it does not exist.
func NewFS(baseDir string) (Storage, error) {
	if baseDir == "" {
		return nil, fmt.Errorf("fs storage base directory is required")
	}
	if err := os.MkdirAll(baseDir, 0o755); err != nil {
		return nil, fmt.Errorf("create base directory: %w", err)
	}
	return &fsStorage{baseDir: baseDir}, nil
}

func (f *fsStorage) path(key string) (string, error) {
	p := filepath.Join(f.baseDir, filepath.FromSlash(key))
	rel, err := filepath.Rel(f.baseDir, p)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", fmt.Errorf("invalid blob key %q", key)
	}
	return p, nil
}

// Put writes the blob to disk, creating intermediate directories as needed.
func (f *fsStorage) Put(ctx context.Context, key string, r io.Reader, opt PutObjectOptions) (ObjectInfo, error) {
	p, err := f.path(key)
	if err != nil {
		return ObjectInfo{}, err
	}
	if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
		return ObjectInfo{}, fmt.Errorf("create directory: %w", err)
	}

	file, err := os.Create(p)
	if err != nil {
		return ObjectInfo{}, fmt.Errorf("create file: %w", err)
	}
	n, err := io.Copy(file, r)
	if cerr := file.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		// A failed write leaves no partial blob behind.
		_ = os.Remove(p)
		return ObjectInfo{}, fmt.Errorf("write file: %w", err)
	}

	return ObjectInfo{
		Key:          key,
		Size:         n,
		ContentType:  opt.ContentType,
		LastModified: time.Now(),
		Metadata:     opt.Metadata,
	}, nil
}

// Get opens the blob for reading.
func (f *fsStorage) Get(ctx context.Context, key string) (io.ReadCloser, ObjectInfo, error) {
	p, err := f.path(key)
	if err != nil {
		return nil, ObjectInfo{}, err
	}
	file, err := os.Open(p)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, ObjectInfo{}, ErrNotExist
		}
		return nil, ObjectInfo{}, fmt.Errorf("open file: %w", err)
	}
	st, err := file.Stat()
	if err != nil {
		file.Close()
		return nil, ObjectInfo{}, fmt.Errorf("stat file: %w", err)
	}
	info := ObjectInfo{
		Key:          key,
		Size:         st.Size(),
		LastModified: st.ModTime(),
	}
	return file, info, nil
}

// Delete removes the blob. Absence is reported as ErrNotExist so callers can
// decide whether it counts as success.
func (f *fsStorage) Delete(ctx context.Context, key string) error {
	p, err := f.path(key)
	if err != nil {
		return err
	}
	if err := os.Remove(p); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return ErrNotExist
		}
		return fmt.Errorf("remove file: %w", err)
	}
	return nil
}
