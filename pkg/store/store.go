// Package store implements keyed record operations against whole save files.
//
// Every operation is a full read-modify-rewrite: the file is read and decoded
// in its entirety, the entry list is mutated in memory, and the whole file is
// written back. There is no partial update, no cache between calls, and no
// locking; concurrent operations against the same path may corrupt or lose
// data, so callers must serialize access per file.
package store

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"time"

	"github.com/ssargent/mimir/pkg/codec"
	"github.com/ssargent/mimir/pkg/fsio"
)

// Operation errors. Wrapped with positional detail; callers match with
// errors.Is. I/O failures from the filesystem pass through unwrapped by
// either sentinel.
var (
	// ErrNotFound means the save file or the key does not exist. A
	// negative lookup, distinct from corruption.
	ErrNotFound = errors.New("not found")

	// ErrCorrupt means the save file exists but does not decode cleanly.
	// A corrupt file is never treated as empty and never overwritten.
	ErrCorrupt = errors.New("save file corrupt")
)

// Store performs save, load, and delete operations on save files.
type Store struct {
	fs      fsio.FileSystem
	codec   *codec.RecordCodec
	log     *slog.Logger
	metrics *Metrics
}

// Config configures a Store.
type Config struct {
	// FileSystem the store reads and writes through. Defaults to
	// fsio.NewOS with the configured logger.
	FileSystem fsio.FileSystem

	// Logger for operation logs. Defaults to slog.Default().
	Logger *slog.Logger

	// Metrics receives operation counts and timings. Nil disables
	// instrumentation.
	Metrics *Metrics
}

// New creates a Store.
func New(cfg Config) *Store {
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}
	if cfg.FileSystem == nil {
		cfg.FileSystem = fsio.NewOS(cfg.Logger)
	}
	return &Store{
		fs:      cfg.FileSystem,
		codec:   codec.NewRecordCodec(),
		log:     cfg.Logger,
		metrics: cfg.Metrics,
	}
}

// Save upserts one keyed record in the file at path. A missing file is
// created with the single entry. In an existing file every entry with the
// key is removed first, so a file never holds two entries for one key and a
// rewrite heals duplicates left by other tools; the new entry is appended at
// the end, which moves an updated key to the end of the file.
func (s *Store) Save(path, key string, tag codec.Tag, payload []byte) error {
	start := time.Now()
	err := s.save(path, key, tag, payload)
	s.metrics.RecordOperation("save", err == nil, time.Since(start))
	if err != nil {
		s.log.Error("save failed",
			slog.String("path", path),
			slog.String("key", key),
			slog.String("error", err.Error()))
		return err
	}
	s.log.Debug("saved record",
		slog.String("path", path),
		slog.String("key", key),
		slog.String("tag", tag.String()),
		slog.Int("payload_bytes", len(payload)))
	return nil
}

func (s *Store) save(path, key string, tag codec.Tag, payload []byte) error {
	if !tag.Valid() {
		return fmt.Errorf("refusing to write %s for key %q: %w", tag, key, codec.ErrMalformedTag)
	}

	var entries []codec.Entry
	buf, err := s.fs.ReadAll(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		// First write to this file.
	case err != nil:
		return fmt.Errorf("read %s: %w", path, err)
	default:
		if entries, err = s.codec.DecodeFile(buf); err != nil {
			return fmt.Errorf("%w: %s: %w", ErrCorrupt, path, err)
		}
	}

	entries = removeKey(entries, key)
	entries = append(entries, codec.Entry{Tag: tag, Key: key, Payload: payload})

	out := s.codec.EncodeFile(entries)
	if err := s.fs.WriteAll(path, out); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	s.metrics.UpdateFileStats(len(entries), len(out))
	return nil
}

// Load returns the payload and tag stored under key in the file at path. The
// payload comes back unchanged, exactly as saved. A missing file and a
// missing key both report ErrNotFound.
func (s *Store) Load(path, key string) ([]byte, codec.Tag, error) {
	start := time.Now()
	payload, tag, err := s.load(path, key)
	s.metrics.RecordOperation("load", err == nil, time.Since(start))
	if err != nil {
		s.log.Error("load failed",
			slog.String("path", path),
			slog.String("key", key),
			slog.String("error", err.Error()))
		return nil, 0, err
	}
	s.log.Debug("loaded record",
		slog.String("path", path),
		slog.String("key", key),
		slog.String("tag", tag.String()))
	return payload, tag, nil
}

func (s *Store) load(path, key string) ([]byte, codec.Tag, error) {
	buf, err := s.fs.ReadAll(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, 0, fmt.Errorf("%w: %s", ErrNotFound, path)
	}
	if err != nil {
		return nil, 0, fmt.Errorf("read %s: %w", path, err)
	}

	entries, err := s.codec.DecodeFile(buf)
	if err != nil {
		return nil, 0, fmt.Errorf("%w: %s: %w", ErrCorrupt, path, err)
	}
	s.metrics.UpdateFileStats(len(entries), len(buf))

	for _, e := range entries {
		if e.Key == key {
			return e.Payload, e.Tag, nil
		}
	}
	return nil, 0, fmt.Errorf("%w: key %q in %s", ErrNotFound, key, path)
}

// Delete removes every entry with key from the file at path and rewrites the
// remaining list, which may leave an empty file. Deleting from a missing
// file is ErrNotFound; deleting a key that is not present in an existing,
// readable file succeeds, since the file afterwards is in the asked-for
// state either way.
func (s *Store) Delete(path, key string) error {
	start := time.Now()
	err := s.delete(path, key)
	s.metrics.RecordOperation("delete", err == nil, time.Since(start))
	if err != nil {
		s.log.Error("delete failed",
			slog.String("path", path),
			slog.String("key", key),
			slog.String("error", err.Error()))
		return err
	}
	s.log.Debug("deleted record",
		slog.String("path", path),
		slog.String("key", key))
	return nil
}

func (s *Store) delete(path, key string) error {
	buf, err := s.fs.ReadAll(path)
	if errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("%w: %s", ErrNotFound, path)
	}
	if err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}

	entries, err := s.codec.DecodeFile(buf)
	if err != nil {
		return fmt.Errorf("%w: %s: %w", ErrCorrupt, path, err)
	}

	remaining := removeKey(entries, key)

	out := s.codec.EncodeFile(remaining)
	if err := s.fs.WriteAll(path, out); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	s.metrics.UpdateFileStats(len(remaining), len(out))
	return nil
}

// KeyInfo describes one entry in a save file without exposing its payload.
type KeyInfo struct {
	Key  string
	Tag  codec.Tag
	Size int // payload size in bytes
}

// Keys lists the entries of the file at path in file order. Error semantics
// match Load: a missing file is ErrNotFound, an undecodable one ErrCorrupt.
func (s *Store) Keys(path string) ([]KeyInfo, error) {
	start := time.Now()
	infos, err := s.keys(path)
	s.metrics.RecordOperation("keys", err == nil, time.Since(start))
	if err != nil {
		s.log.Error("keys listing failed",
			slog.String("path", path),
			slog.String("error", err.Error()))
		return nil, err
	}
	return infos, nil
}

func (s *Store) keys(path string) ([]KeyInfo, error) {
	buf, err := s.fs.ReadAll(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
	}
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	entries, err := s.codec.DecodeFile(buf)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrCorrupt, path, err)
	}
	s.metrics.UpdateFileStats(len(entries), len(buf))

	infos := make([]KeyInfo, len(entries))
	for i, e := range entries {
		infos[i] = KeyInfo{Key: e.Key, Tag: e.Tag, Size: len(e.Payload)}
	}
	return infos, nil
}

// removeKey drops every entry whose key matches, preserving the order of the
// rest.
func removeKey(entries []codec.Entry, key string) []codec.Entry {
	kept := entries[:0]
	for _, e := range entries {
		if e.Key != key {
			kept = append(kept, e)
		}
	}
	return kept
}
