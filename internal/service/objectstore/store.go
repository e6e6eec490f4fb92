// Package objectstore abstracts the external image/object store behind a
// narrow interface so the reference workflow can be exercised with test
// doubles and the CDN vendor stays swappable.
package objectstore

import (
	"context"
	"errors"
	"io"
)

var ErrObjectNotFound = errors.New("object not found in store")

// Object is the store's receipt for one upload: the opaque identifier
// the application keys its metadata on, plus the public URL.
type Object struct {
	PublicID string
	URL      string
}

type Store interface {
	// Upload stores the content under a fresh identifier inside folder
	// and returns the assigned identifier and public URL.
	Upload(ctx context.Context, folder string, reader io.Reader, size int64, contentType string) (*Object, error)
	// Delete removes the object. A missing object yields
	// ErrObjectNotFound so callers can treat it as already satisfied.
	Delete(ctx context.Context, publicID string) error
}
