// Package fsutil holds file helpers shared by the settings layer and the
// target writer.
package fsutil

import (
	"errors"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/cespare/xxhash/v2"
)

// WriteFileAtomic writes data to a temp file next to path and renames it into
// place, so readers never see a partially written file. When path is a
// symlink the file it points to is replaced and the link is kept.
func WriteFileAtomic(path string, data []byte, perm fs.FileMode) error {
	path = Resolve(path)
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, ".b16apply-*.tmp")
	if err != nil {
		return err
	}

	tmpPath := tmp.Name()
	defer func() {
		_ = os.Remove(tmpPath)
	}()

	if _, err := tmp.Write(data); err != nil {
		closeErr := tmp.Close()
		if closeErr != nil {
			return errors.Join(err, closeErr)
		}
		return err
	}

	if err := tmp.Chmod(perm); err != nil {
		closeErr := tmp.Close()
		if closeErr != nil {
			return errors.Join(err, closeErr)
		}
		return err
	}

	if err := tmp.Close(); err != nil {
		return err
	}

	return os.Rename(tmpPath, path)
}

// Perm returns the permission bits of path, or fallback when it cannot be
// stat'ed.
func Perm(path string, fallback fs.FileMode) fs.FileMode {
	info, err := os.Stat(path)
	if err != nil {
		return fallback
	}
	return info.Mode().Perm()
}

// Resolve follows symlinks in path. Paths that do not exist yet, or cannot be
// resolved, are returned unchanged.
func Resolve(path string) string {
	resolved, err := filepath.EvalSymlinks(path)
	if err != nil {
		return path
	}
	return resolved
}

// Checksum streams the file at path through xxhash.
func Checksum(path string) (uint64, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, err
	}
	defer func() {
		_ = f.Close()
	}()

	h := xxhash.New()
	if _, err := io.Copy(h, f); err != nil {
		return 0, err
	}
	return h.Sum64(), nil
}
