// Package fsio provides the save-file naming scheme and the filesystem
// surface the store reads and writes through. The FileSystem interface keeps
// the store testable without touching disk; OS is the real implementation.
package fsio

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
)

// PreparePath joins the save directory, file name, and format extension into
// the full save-file path. It does not touch the filesystem; directories are
// created when a file is first written.
func PreparePath(dir, name string, f Format) string {
	return filepath.Join(dir, name+f.Ext())
}

// FileSystem is the storage surface the store operates on. Implementations
// read and write whole files; there is no partial or streaming access.
type FileSystem interface {
	// Exists reports whether path names a regular file.
	Exists(path string) bool

	// ReadAll returns the full contents of path. A missing file reports
	// fs.ErrNotExist.
	ReadAll(path string) ([]byte, error)

	// WriteAll replaces the contents of path, creating the parent
	// directory if needed.
	WriteAll(path string, data []byte) error

	// Remove deletes path if it exists. Failures are logged, not
	// returned; the result reports whether a file was actually removed.
	Remove(path string) bool
}

// OS is the real-filesystem implementation of FileSystem.
type OS struct {
	log *slog.Logger
}

// NewOS returns an OS filesystem that logs through logger. A nil logger
// falls back to slog.Default().
func NewOS(logger *slog.Logger) *OS {
	if logger == nil {
		logger = slog.Default()
	}
	return &OS{log: logger}
}

func (o *OS) Exists(path string) bool {
	st, err := os.Lstat(path)
	return err == nil && st.Mode().IsRegular()
}

func (o *OS) ReadAll(path string) ([]byte, error) {
	return os.ReadFile(path)
}

func (o *OS) WriteAll(path string, data []byte) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create save directory %s: %w", dir, err)
		}
	}
	return os.WriteFile(path, data, 0644)
}

func (o *OS) Remove(path string) bool {
	if !o.Exists(path) {
		o.log.Info("no save file to remove", slog.String("path", path))
		return false
	}
	if err := os.Remove(path); err != nil {
		o.log.Error("failed to remove save file",
			slog.String("path", path),
			slog.String("error", err.Error()))
		return false
	}
	o.log.Debug("removed save file", slog.String("path", path))
	return true
}
