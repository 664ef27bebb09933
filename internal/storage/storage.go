package storage

import (
	"context"
	"errors"
	"io"
	"time"
)

// Package storage contains blob store abstractions. A blob is an opaque byte
// sequence addressed by key; metadata about blobs lives in the repository
// layer, never here.

// ErrNotExist is returned by Get and Delete when no blob exists under the key.
// Deletion workflows treat it as success (the goal state is already reached);
// retrieval workflows translate it into a "file missing on server" error.
var ErrNotExist = errors.New("blob does not exist")

// PutObjectOptions define optional parameters for storing blobs.
// Size should be the exact number of bytes if known; if unknown, set to -1 and
// the implementation will buffer/chunk as supported by the backend.
type PutObjectOptions struct {
	Size        int64
	ContentType string
	Metadata    map[string]string
}

// ObjectInfo contains basic information about a stored blob.
type ObjectInfo struct {
	Key          string
	Size         int64
	ContentType  string
	LastModified time.Time
	Metadata     map[string]string
}

// Storage is the blob store interface. Implementations must be safe for
// concurrent use and rely on streaming I/O only.
type Storage interface {
	// Put stores a blob under the given key using the provided reader and options.
	Put(ctx context.Context, key string, r io.Reader, opt PutObjectOptions) (ObjectInfo, error)
	// Get retrieves a blob's content as a streaming reader alongside its info.
	// Returns ErrNotExist when no blob is stored under the key.
	Get(ctx context.Context, key string) (io.ReadCloser, ObjectInfo, error)
	// Delete removes a blob by key. Returns ErrNotExist when there was nothing
	// to remove.
	Delete(ctx context.Context, key string) error
}
