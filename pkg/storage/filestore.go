package storage

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sync"
)

var collectionNamePattern = regexp.MustCompile(`^[a-zA-Z0-9._-]+$`)

// FileStore keeps each blob as <dir>/<name>.json. Writes go through a temp file and
// rename so readers never observe a half-written collection.
type FileStore struct {
	dir           string
	capacityBytes int64
	mu            sync.Mutex
}

var _ BlobStore = (*FileStore)(nil)

// NewFileStore creates the data directory if needed. capacityBytes limits the total
// size of all blobs; zero means unlimited.
func NewFileStore(dir string, capacityBytes int64) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create data dir %s: %w", dir, err)
	}
	return &FileStore{dir: dir, capacityBytes: capacityBytes}, nil
}

func (s *FileStore) path(name string) (string, error) {
	if !collectionNamePattern.MatchString(name) {
		return "", fmt.Errorf("storage: invalid collection name %q", name)
	}
	return filepath.Join(s.dir, name+".json"), nil
}

// Read returns the blob stored under name.
func (s *FileStore) Read(name string) ([]byte, error) {
	p, err := s.path(name)
	if err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(p)
	if os.IsNotExist(err) {
		return nil, ErrBlobNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("read collection %s: %w", name, err)
	}
	return data, nil
}

// Write atomically replaces the blob stored under name.
func (s *FileStore) Write(name string, data []byte) error {
	p, err := s.path(name)
	if err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.capacityBytes > 0 {
		used, err := s.usedExcluding(p)
		if err != nil {
			return err
		}
		if used+int64(len(data)) > s.capacityBytes {
			return ErrCapacityExceeded
		}
	}

	tmp, err := os.CreateTemp(s.dir, name+".*.tmp")
	if err != nil {
		return fmt.Errorf("create temp file for %s: %w", name, err)
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("write collection %s: %w", name, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("close temp file for %s: %w", name, err)
	}
	if err := os.Rename(tmpName, p); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("commit collection %s: %w", name, err)
	}
	return nil
}

// Delete removes the blob stored under name.
func (s *FileStore) Delete(name string) error {
	p, err := s.path(name)
	if err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.Remove(p); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("delete collection %s: %w", name, err)
	}
	return nil
}

// Close is a no-op for the file backend.
func (s *FileStore) Close() error { return nil }

// usedExcluding sums the size of every stored blob except the one at skip, which is
// about to be replaced.
func (s *FileStore) usedExcluding(skip string) (int64, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return 0, fmt.Errorf("scan data dir: %w", err)
	}
	var total int64
	for _, e := range entries {
		if e.IsDir() || filepath.Ext(e.Name()) != ".json" {
			continue
		}
		full := filepath.Join(s.dir, e.Name())
		if full == skip {
			continue
		}
		info, err := e.Info()
		if err != nil {
			continue
		}
		total += info.Size()
	}
	return total, nil
}
