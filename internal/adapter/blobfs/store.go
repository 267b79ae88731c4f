// Package blobfs stores photo bytes as files under a root directory.
package blobfs

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/heartmarshall/rondaflow-backend/internal/domain"
)

// mime types are kept in a sidecar file next to the blob.
const mimeSuffix = ".mime"

// Store is a filesystem blob store. Keys are slash-separated relative paths.
type Store struct {
	root string
}

// New creates the root directory if needed and returns a Store over it.
func New(root string) (*Store, error) {
	abs, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("blobfs: resolve root: %w", err)
	}
	if err := os.MkdirAll(abs, 0o750); err != nil {
		return nil, fmt.Errorf("blobfs: create root: %w: %w", domain.ErrStorage, err)
	}
	return &Store{root: abs}, nil
}

// Put writes data under key and returns key as the reference.
func (s *Store) Put(ctx context.Context, key string, data []byte, mime string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	path, err := s.resolve(key)
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return "", fmt.Errorf("blobfs put %s: %w: %w", key, domain.ErrStorage, err)
	}

	// Write to a temp file first so readers never see a partial blob.
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o640); err != nil {
		return "", fmt.Errorf("blobfs put %s: %w: %w", key, domain.ErrStorage, err)
	}
	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return "", fmt.Errorf("blobfs put %s: %w: %w", key, domain.ErrStorage, err)
	}
	if err := os.WriteFile(path+mimeSuffix, []byte(mime), 0o640); err != nil {
		return "", fmt.Errorf("blobfs put %s: %w: %w", key, domain.ErrStorage, err)
	}
	return key, nil
}

// Get reads the blob stored under ref.
func (s *Store) Get(ctx context.Context, ref string) ([]byte, string, error) {
	if err := ctx.Err(); err != nil {
		return nil, "", err
	}

	path, err := s.resolve(ref)
	if err != nil {
		return nil, "", err
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, "", fmt.Errorf("blobfs get %s: %w", ref, domain.ErrPhotoNotFound)
	}
	if err != nil {
		return nil, "", fmt.Errorf("blobfs get %s: %w: %w", ref, domain.ErrStorage, err)
	}

	mime := "application/octet-stream"
	if raw, err := os.ReadFile(path + mimeSuffix); err == nil && len(raw) > 0 {
		mime = string(raw)
	}
	return data, mime, nil
}

// Delete removes the blob stored under ref and its mime sidecar. Deleting a
// missing blob is not an error.
func (s *Store) Delete(ctx context.Context, ref string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	path, err := s.resolve(ref)
	if err != nil {
		return err
	}
	for _, p := range []string{path, path + mimeSuffix} {
		if err := os.Remove(p); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("blobfs delete %s: %w: %w", ref, domain.ErrStorage, err)
		}
	}
	return nil
}

// Ping reports whether the root directory is still present and is a directory.
func (s *Store) Ping(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	info, err := os.Stat(s.root)
	if err != nil {
		return fmt.Errorf("blobfs ping: %w: %w", domain.ErrStorage, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("blobfs ping: %w: %s is not a directory", domain.ErrStorage, s.root)
	}
	return nil
}

// resolve maps a key to a path under root, rejecting keys that escape it.
func (s *Store) resolve(key string) (string, error) {
	if key == "" || strings.HasPrefix(key, "/") || strings.Contains(key, "\\") {
		return "", domain.NewValidationError("key", "invalid blob key")
	}
	path := filepath.Join(s.root, filepath.FromSlash(key))
	rel, err := filepath.Rel(s.root, path)
	if err != nil || rel == "." || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", domain.NewValidationError("key", "blob key escapes storage root")
	}
	return path, nil
}
