package archive

import (
	"bytes"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/cockroachdb/pebble"
	"github.com/segmentio/ksuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestArchive(t *testing.T) *Archive {
	t.Helper()

	tmpDir, err := os.MkdirTemp("", "mimir_archive_test")
	require.NoError(t, err)
	t.Cleanup(func() { os.RemoveAll(tmpDir) })

	a, err := Open(filepath.Join(tmpDir, "snapshots"), slog.New(slog.NewTextHandler(io.Discard, nil)))
	require.NoError(t, err)
	t.Cleanup(func() { a.Close() })

	return a
}

// craftID builds a ksuid with a chosen timestamp so tests control the key
// order that ksuid.New() would otherwise derive from the clock.
func craftID(t *testing.T, at time.Time, fill byte) ksuid.KSUID {
	t.Helper()

	id, err := ksuid.FromParts(at, bytes.Repeat([]byte{fill}, 16))
	require.NoError(t, err)
	return id
}

func TestArchive_SnapshotRestoreRoundTrip(t *testing.T) {
	a := newTestArchive(t)

	data := []byte("save file bytes")
	id, err := a.Snapshot("slot1", data)
	require.NoError(t, err)
	assert.NotEqual(t, ksuid.Nil, id)

	// The archive must hold its own copy.
	data[0] = 'X'

	got, err := a.Restore("slot1", id)
	require.NoError(t, err)
	assert.Equal(t, []byte("save file bytes"), got)
}

func TestArchive_RestoreMissing(t *testing.T) {
	a := newTestArchive(t)

	_, err := a.Restore("slot1", ksuid.New())
	assert.ErrorIs(t, err, ErrSnapshotNotFound)
}

func TestArchive_InvalidName(t *testing.T) {
	a := newTestArchive(t)

	_, err := a.Snapshot("", []byte("x"))
	assert.ErrorIs(t, err, ErrInvalidName)

	_, err = a.Snapshot("a/b", []byte("x"))
	assert.ErrorIs(t, err, ErrInvalidName)
}

func TestArchive_ListOldestFirst(t *testing.T) {
	a := newTestArchive(t)

	base := time.Now().Add(-time.Hour).Truncate(time.Second)
	newer := craftID(t, base.Add(time.Minute), 2)
	older := craftID(t, base, 1)

	// Insert newest first; List must still come back in time order.
	require.NoError(t, a.db.Set(snapshotKey("slot1", newer), []byte("new"), pebble.Sync))
	require.NoError(t, a.db.Set(snapshotKey("slot1", older), []byte("old"), pebble.Sync))

	infos, err := a.List("slot1")
	require.NoError(t, err)
	require.Len(t, infos, 2)
	assert.Equal(t, older, infos[0].ID)
	assert.Equal(t, newer, infos[1].ID)
	assert.Equal(t, 3, infos[0].Size)
	assert.WithinDuration(t, base, infos[0].CreatedAt, time.Second)
}

func TestArchive_ListIsolatesNames(t *testing.T) {
	a := newTestArchive(t)

	_, err := a.Snapshot("save", []byte("a"))
	require.NoError(t, err)
	_, err = a.Snapshot("save2", []byte("b"))
	require.NoError(t, err)
	_, err = a.Snapshot("beta", []byte("c"))
	require.NoError(t, err)

	infos, err := a.List("save")
	require.NoError(t, err)
	assert.Len(t, infos, 1)

	infos, err = a.List("missing")
	require.NoError(t, err)
	assert.Empty(t, infos)
}

func TestArchive_Delete(t *testing.T) {
	a := newTestArchive(t)

	id, err := a.Snapshot("slot1", []byte("x"))
	require.NoError(t, err)

	require.NoError(t, a.Delete("slot1", id))

	_, err = a.Restore("slot1", id)
	assert.ErrorIs(t, err, ErrSnapshotNotFound)

	err = a.Delete("slot1", id)
	assert.ErrorIs(t, err, ErrSnapshotNotFound)
}

func TestArchive_Prune(t *testing.T) {
	a := newTestArchive(t)

	base := time.Now().Add(-time.Hour).Truncate(time.Second)
	ids := make([]ksuid.KSUID, 5)
	for i := range ids {
		ids[i] = craftID(t, base.Add(time.Duration(i)*time.Second), byte(i))
		require.NoError(t, a.db.Set(snapshotKey("slot1", ids[i]), []byte{byte(i)}, pebble.Sync))
	}

	deleted, err := a.Prune("slot1", 2)
	require.NoError(t, err)
	assert.Equal(t, 3, deleted)

	infos, err := a.List("slot1")
	require.NoError(t, err)
	require.Len(t, infos, 2)
	assert.Equal(t, ids[3], infos[0].ID)
	assert.Equal(t, ids[4], infos[1].ID)

	// Already at the limit; nothing more to prune.
	deleted, err = a.Prune("slot1", 2)
	require.NoError(t, err)
	assert.Zero(t, deleted)
}

func TestArchive_ReopenPersists(t *testing.T) {
	tmpDir, err := os.MkdirTemp("", "mimir_archive_test")
	require.NoError(t, err)
	t.Cleanup(func() { os.RemoveAll(tmpDir) })

	dbPath := filepath.Join(tmpDir, "snapshots")
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	a, err := Open(dbPath, logger)
	require.NoError(t, err)

	id, err := a.Snapshot("slot1", []byte("persisted"))
	require.NoError(t, err)
	require.NoError(t, a.Close())

	a, err = Open(dbPath, logger)
	require.NoError(t, err)
	defer a.Close()

	got, err := a.Restore("slot1", id)
	require.NoError(t, err)
	assert.Equal(t, []byte("persisted"), got)
}
