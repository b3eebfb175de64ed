package htmlsaver

import (
	"context"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

// FSStorage writes files to the local filesystem. The key is joined with
// the base directory to form the final path and intermediate directories
// are created automatically. Writes go to a uniquely named temp file in the
// target directory and are renamed into place, so readers never observe a
// partially written file.
type FSStorage struct {
	baseDir string
}

// NewFSStorage creates an FSStorage rooted at the given directory.
func NewFSStorage(baseDir string) *FSStorage {
	return &FSStorage{baseDir: baseDir}
}

func (s *FSStorage) Put(ctx context.Context, key string, content []byte, _ string) error {
	if err := ctx.Err(); err != nil {
		return &StorageError{Key: key, Err: err}
	}

	path := filepath.Join(s.baseDir, filepath.FromSlash(key))

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return &StorageError{Key: key, Err: err}
	}

	tmp := path + ".tmp." + uuid.NewString()
	if err := os.WriteFile(tmp, content, 0o644); err != nil {
		return &StorageError{Key: key, Err: err}
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return &StorageError{Key: key, Err: err}
	}

	return nil
}
