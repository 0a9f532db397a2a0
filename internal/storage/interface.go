package storage

import (
	"context"
	"io"
)

// Storage abstracts the object store that holds office image bytes.
// Implementations must be safe for concurrent use.
type Storage interface {
	// Put writes the object at path, overwriting any existing object.
	Put(ctx context.Context, path string, r io.Reader) error
	// Delete removes the object at path. Deleting a missing object is not
	// an error.
	Delete(ctx context.Context, path string) error
	// Exists reports whether an object is stored at path.
	Exists(ctx context.Context, path string) (bool, error)
}
