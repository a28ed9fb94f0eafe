// Package kvstore implements the repository ports on top of a storage.BlobStore.
// Every collection is held as one JSON document and rewritten wholesale on change,
// so a mutation is always a read-modify-replace of the full collection.
package kvstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/fieldtrax/sales_visit_app/internal/apperrors"
	"github.com/fieldtrax/sales_visit_app/internal/middleware"
	"github.com/fieldtrax/sales_visit_app/pkg/storage"
)

// collection binds one named blob to a slice of T. The mutex serializes the
// read-modify-replace cycle so concurrent writers cannot interleave.
type collection[T any] struct {
	store storage.BlobStore
	name  string
	mu    sync.Mutex
}

func newCollection[T any](store storage.BlobStore, name string) *collection[T] {
	return &collection[T]{store: store, name: name}
}

// load reads the full collection. A missing blob is an empty collection; a corrupt
// blob is logged and treated as empty so one bad write cannot brick the store.
func (c *collection[T]) load(ctx context.Context) ([]T, error) {
	data, err := c.store.Read(c.name)
	if errors.Is(err, storage.ErrBlobNotFound) {
		return []T{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load collection %s: %w", c.name, err)
	}

	var items []T
	if err := json.Unmarshal(data, &items); err != nil {
		if logger := middleware.GetLoggerFromCtx(ctx); logger != nil {
			logger.Warn("Corrupt collection reset to empty",
				slog.String("collection", c.name),
				slog.String("error", err.Error()))
		}
		return []T{}, nil
	}
	if items == nil {
		items = []T{}
	}
	return items, nil
}

// replace marshals and rewrites the full collection.
func (c *collection[T]) replace(_ context.Context, items []T) error {
	data, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("encode collection %s: %w", c.name, err)
	}
	if err := c.store.Write(c.name, data); err != nil {
		if errors.Is(err, storage.ErrCapacityExceeded) {
			return apperrors.ErrStorageFull
		}
		return fmt.Errorf("store collection %s: %w", c.name, err)
	}
	return nil
}

// upsert replaces the first item matched by sameID, or appends when none matches.
func (c *collection[T]) upsert(ctx context.Context, sameID func(T) bool, item T) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	items, err := c.load(ctx)
	if err != nil {
		return err
	}
	replaced := false
	for i := range items {
		if sameID(items[i]) {
			items[i] = item
			replaced = true
			break
		}
	}
	if !replaced {
		items = append(items, item)
	}
	return c.replace(ctx, items)
}

// remove deletes every item matched by match. Removing nothing is not an error.
func (c *collection[T]) remove(ctx context.Context, match func(T) bool) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	items, err := c.load(ctx)
	if err != nil {
		return err
	}
	kept := items[:0]
	for _, it := range items {
		if !match(it) {
			kept = append(kept, it)
		}
	}
	return c.replace(ctx, kept)
}

// findOne returns the first item matched by match, or apperrors.ErrNotFound.
func (c *collection[T]) findOne(ctx context.Context, match func(T) bool) (*T, error) {
	items, err := c.load(ctx)
	if err != nil {
		return nil, err
	}
	for i := range items {
		if match(items[i]) {
			item := items[i]
			return &item, nil
		}
	}
	return nil, apperrors.ErrNotFound
}

// filter returns every item matched by match.
func (c *collection[T]) filter(ctx context.Context, match func(T) bool) ([]T, error) {
	items, err := c.load(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]T, 0, len(items))
	for _, it := range items {
		if match(it) {
			out = append(out, it)
		}
	}
	return out, nil
}
