// Package storage provides named-blob persistence. Each collection is stored and
// replaced as a single opaque byte slice, so a write either lands completely or
// leaves the previous contents in place.
package storage

import "errors"

// ErrCapacityExceeded is returned by Write when the store's configured capacity
// would be exceeded. The existing blob is left untouched.
var ErrCapacityExceeded = errors.New("storage: capacity exceeded")

// ErrBlobNotFound is returned by Read when no blob exists under the given name.
var ErrBlobNotFound = errors.New("storage: blob not found")

// BlobStore persists whole collections as named blobs.
type BlobStore interface {
	// Read returns the blob stored under name, or ErrBlobNotFound.
	Read(name string) ([]byte, error)

	// Write replaces the blob stored under name. Implementations enforce their
	// capacity limit before committing and return ErrCapacityExceeded on breach.
	Write(name string, data []byte) error

	// Delete removes the blob stored under name. Deleting a missing blob is not
	// an error.
	Delete(name string) error

	// Close releases any resources held by the store.
	Close() error
}
