// Package storage forwards report photos to the remote image host.
package storage

import (
	"context"
	"errors"
)

// ErrNotFound is returned by a KeyCache miss.
var ErrNotFound = errors.New("storage: not found")

// Photo is one uploaded file as received from the client.
type Photo struct {
	Content     []byte
	ContentType string
	Filename    string
}

// ObjectStore is the remote host. Put must be idempotent per key.
type ObjectStore interface {
	Put(ctx context.Context, key string, body []byte, contentType string) (string, error)
	Delete(ctx context.Context, key string) error
}

// KeyCache remembers which object keys already hold uploaded bytes so a
// retried submission does not push the same photo again.
type KeyCache interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, url string) error
	Delete(ctx context.Context, key string) error
}

// Processor rewrites a photo before upload (resize, re-encode).
type Processor interface {
	Process(p Photo) (Photo, error)
}
