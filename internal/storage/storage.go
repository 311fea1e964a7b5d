package storage

import (
	"context"
	"errors"
)

var ErrObjectNotFound = errors.New("object not found")

// ObjectStorage keeps small public documents (availability snapshots) for the storefront.
type ObjectStorage interface {
	PutObject(ctx context.Context, key string, data []byte, contentType string) (string, error)

	GetObject(ctx context.Context, key string) ([]byte, error)
}
