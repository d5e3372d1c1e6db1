// Package archive keeps timestamped snapshots of whole save files in a local
// pebble database. Snapshots let a host roll a save file back to an earlier
// state without touching the flat-file format the store operates on.
//
// Each snapshot is keyed by the save name plus a ksuid, so keys iterate in
// creation order per save name and List comes back oldest first.
package archive

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/cockroachdb/pebble"
	"github.com/segmentio/ksuid"
)

var (
	// ErrSnapshotNotFound means no snapshot exists under the given name
	// and id.
	ErrSnapshotNotFound = errors.New("snapshot not found")

	// ErrInvalidName means the save name cannot be used as a snapshot
	// key. Names must be non-empty and must not contain '/'.
	ErrInvalidName = errors.New("invalid snapshot name")
)

// Archive is a snapshot store backed by a pebble database at a single
// directory path.
type Archive struct {
	db  *pebble.DB
	log *slog.Logger
}

// Open opens or creates the snapshot database at path. A nil logger falls
// back to slog.Default().
func Open(path string, logger *slog.Logger) (*Archive, error) {
	if logger == nil {
		logger = slog.Default()
	}
	db, err := pebble.Open(path, &pebble.Options{})
	if err != nil {
		return nil, fmt.Errorf("open snapshot database %s: %w", path, err)
	}
	return &Archive{db: db, log: logger}, nil
}

// Close closes the underlying database.
func (a *Archive) Close() error {
	return a.db.Close()
}

// Info describes one stored snapshot.
type Info struct {
	ID        ksuid.KSUID
	Size      int
	CreatedAt time.Time
}

// Snapshot stores a copy of data as the newest snapshot of name and returns
// its id.
func (a *Archive) Snapshot(name string, data []byte) (ksuid.KSUID, error) {
	if name == "" || strings.Contains(name, "/") {
		return ksuid.Nil, fmt.Errorf("%w: %q", ErrInvalidName, name)
	}

	id := ksuid.New()
	if err := a.db.Set(snapshotKey(name, id), data, pebble.Sync); err != nil {
		return ksuid.Nil, fmt.Errorf("write snapshot %s/%s: %w", name, id, err)
	}

	a.log.Debug("snapshot stored",
		slog.String("name", name),
		slog.String("id", id.String()),
		slog.Int("bytes", len(data)))
	return id, nil
}

// Restore returns the data of the snapshot stored under name and id.
func (a *Archive) Restore(name string, id ksuid.KSUID) ([]byte, error) {
	data, closer, err := a.db.Get(snapshotKey(name, id))
	if errors.Is(err, pebble.ErrNotFound) {
		return nil, fmt.Errorf("%w: %s/%s", ErrSnapshotNotFound, name, id)
	}
	if err != nil {
		return nil, fmt.Errorf("read snapshot %s/%s: %w", name, id, err)
	}
	defer closer.Close()

	// The value buffer is only valid until closer.Close().
	out := make([]byte, len(data))
	copy(out, data)
	return out, nil
}

// List returns the snapshots stored under name, oldest first.
func (a *Archive) List(name string) ([]Info, error) {
	lower, upper := nameBounds(name)
	iter, err := a.db.NewIter(&pebble.IterOptions{
		LowerBound: lower,
		UpperBound: upper,
	})
	if err != nil {
		return nil, fmt.Errorf("iterate snapshots of %s: %w", name, err)
	}
	defer iter.Close()

	var infos []Info
	for iter.First(); iter.Valid(); iter.Next() {
		id, err := ksuid.Parse(strings.TrimPrefix(string(iter.Key()), name+"/"))
		if err != nil {
			a.log.Warn("skipping foreign key in snapshot database",
				slog.String("key", string(iter.Key())))
			continue
		}
		infos = append(infos, Info{
			ID:        id,
			Size:      len(iter.Value()),
			CreatedAt: id.Time(),
		})
	}
	if err := iter.Error(); err != nil {
		return nil, fmt.Errorf("iterate snapshots of %s: %w", name, err)
	}
	return infos, nil
}

// Delete removes the snapshot stored under name and id.
func (a *Archive) Delete(name string, id ksuid.KSUID) error {
	key := snapshotKey(name, id)

	_, closer, err := a.db.Get(key)
	if errors.Is(err, pebble.ErrNotFound) {
		return fmt.Errorf("%w: %s/%s", ErrSnapshotNotFound, name, id)
	}
	if err != nil {
		return fmt.Errorf("read snapshot %s/%s: %w", name, id, err)
	}
	closer.Close()

	if err := a.db.Delete(key, pebble.Sync); err != nil {
		return fmt.Errorf("delete snapshot %s/%s: %w", name, id, err)
	}
	return nil
}

// Prune deletes the oldest snapshots of name until at most keep remain. It
// returns the number deleted. A negative keep counts as zero.
func (a *Archive) Prune(name string, keep int) (int, error) {
	if keep < 0 {
		keep = 0
	}

	infos, err := a.List(name)
	if err != nil {
		return 0, err
	}
	if len(infos) <= keep {
		return 0, nil
	}

	batch := a.db.NewBatch()
	defer batch.Close()

	doomed := infos[:len(infos)-keep]
	for _, info := range doomed {
		if err := batch.Delete(snapshotKey(name, info.ID), nil); err != nil {
			return 0, fmt.Errorf("prune snapshots of %s: %w", name, err)
		}
	}
	if err := batch.Commit(pebble.Sync); err != nil {
		return 0, fmt.Errorf("prune snapshots of %s: %w", name, err)
	}

	a.log.Debug("pruned snapshots",
		slog.String("name", name),
		slog.Int("deleted", len(doomed)),
		slog.Int("kept", keep))
	return len(doomed), nil
}

func snapshotKey(name string, id ksuid.KSUID) []byte {
	return []byte(name + "/" + id.String())
}

// nameBounds returns the key range holding every snapshot of name. Snapshot
// ids are base62, so 0xff is above any key byte that can follow the prefix.
func nameBounds(name string) (lower, upper []byte) {
	return []byte(name + "/"), []byte(name + "/\xff")
}
