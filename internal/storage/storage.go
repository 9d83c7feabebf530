// Package storage stores attachment files in an S3-compatible object store.
package storage

import (
	"context"
	"errors"
	"io"
	"path"
	"strings"
	"time"
)

var (
	// ErrDisabled is returned by Disabled for every operation.
	ErrDisabled = errors.New("object storage is not configured")
	// ErrObjectNotFound is returned when the key does not exist in the bucket.
	ErrObjectNotFound = errors.New("object not found")
)

// KeyPrefix is the top-level folder for every attachment object.
const KeyPrefix = "attachments"

// PutObjectOptions carries upload parameters. Size is -1 when unknown.
type PutObjectOptions struct {
	Size        int64
	ContentType string
	Metadata    map[string]string
}

// ObjectInfo describes a stored object.
type ObjectInfo struct {
	Key          string
	Size         int64
	ETag         string
	ContentType  string
	LastModified time.Time
	Metadata     map[string]string
}

// Storage is a streaming object store client. Implementations never touch local disk.
type Storage interface {
	Put(ctx context.Context, key string, r io.Reader, opt PutObjectOptions) (ObjectInfo, error)
	// Get returns the object body; the caller closes it.
	Get(ctx context.Context, key string) (io.ReadCloser, ObjectInfo, error)
	Delete(ctx context.Context, key string) error
	// PresignGet returns a time-limited download URL.
	PresignGet(ctx context.Context, key string, expiry time.Duration) (string, error)
}

// ObjectKey builds attachments/<entity_type>/<name>. The extension of the
// uploaded filename is kept lower-cased; everything else comes from name.
func ObjectKey(entityType, name, originalFilename string) string {
	ext := strings.ToLower(path.Ext(strings.ReplaceAll(originalFilename, "\\", "/")))
	return path.Join(KeyPrefix, entityType, name+ext)
}

// Disabled is used when MINIO_ENDPOINT is empty.
type Disabled struct{}

func (Disabled) Put(context.Context, string, io.Reader, PutObjectOptions) (ObjectInfo, error) {
	return ObjectInfo{}, ErrDisabled
}

func (Disabled) Get(context.Context, string) (io.ReadCloser, ObjectInfo, error) {
	return nil, ObjectInfo{}, ErrDisabled
}

func (Disabled) Delete(context.Context, string) error { return ErrDisabled }

func (Disabled) PresignGet(context.Context, string, time.Duration) (string, error) {
	return "", ErrDisabled
}
