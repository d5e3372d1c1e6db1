package cmd

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// runCLI executes the root command with args and returns its combined output.
// Flag values set by one invocation are reset afterwards, matching the fresh
// process a real invocation gets.
func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)

	err := rootCmd.Execute()

	resetFlags()
	for _, c := range rootCmd.Commands() {
		c.Flags().Visit(func(f *pflag.Flag) {
			_ = f.Value.Set(f.DefValue)
			f.Changed = false
		})
	}
	return out.String(), err
}

func TestCLI_PutGetKeysDelete(t *testing.T) {
	cfgPath, cfg := writeTestConfig(t, nil)

	run := func(args ...string) (string, error) {
		return runCLI(t, append([]string{"--config", cfgPath}, args...)...)
	}

	out, err := run("put", "player.health", "75.5", "--type", "float")
	require.NoError(t, err)
	assert.Contains(t, out, "Saved player.health (float)")

	_, err = run("put", "player.name", "Grofnir", "--type", "string")
	require.NoError(t, err)

	out, err = run("get", "player.health")
	require.NoError(t, err)
	assert.Equal(t, "75.5\n", out)

	out, err = run("get", "player.name")
	require.NoError(t, err)
	assert.Equal(t, "Grofnir\n", out)

	out, err = run("keys")
	require.NoError(t, err)
	assert.Contains(t, out, "KEY")
	assert.Contains(t, out, "player.health")
	assert.Contains(t, out, "float")
	assert.Contains(t, out, "player.name")

	out, err = run("delete", "player.health")
	require.NoError(t, err)
	assert.Contains(t, out, "Deleted player.health")

	_, err = run("get", "player.health")
	require.Error(t, err)

	out, err = run("rm")
	require.NoError(t, err)
	assert.Contains(t, out, "Removed")
	assert.NoFileExists(t, filepath.Join(cfg.SaveDir, "TestSave.bin"))

	out, err = run("rm")
	require.NoError(t, err)
	assert.Contains(t, out, "No save file")
}

func TestCLI_PutRejectsBadValue(t *testing.T) {
	cfgPath, cfg := writeTestConfig(t, nil)

	_, err := runCLI(t, "--config", cfgPath, "put", "health", "fast", "--type", "float")
	require.Error(t, err)
	assert.NoFileExists(t, filepath.Join(cfg.SaveDir, "TestSave.bin"))
}

func TestCLI_GetMissingFile(t *testing.T) {
	cfgPath, _ := writeTestConfig(t, nil)

	_, err := runCLI(t, "--config", cfgPath, "get", "anything")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestCLI_FileFlagSelectsSlot(t *testing.T) {
	cfgPath, cfg := writeTestConfig(t, nil)

	run := func(args ...string) (string, error) {
		return runCLI(t, append([]string{"--config", cfgPath}, args...)...)
	}

	_, err := run("put", "gold", "10", "--type", "int", "--file", "Slot1")
	require.NoError(t, err)
	_, err = run("put", "gold", "99", "--type", "int", "--file", "Slot2")
	require.NoError(t, err)

	out, err := run("get", "gold", "--file", "Slot1")
	require.NoError(t, err)
	assert.Equal(t, "10\n", out)

	out, err = run("get", "gold", "--file", "Slot2")
	require.NoError(t, err)
	assert.Equal(t, "99\n", out)

	assert.FileExists(t, filepath.Join(cfg.SaveDir, "Slot1.bin"))
	assert.FileExists(t, filepath.Join(cfg.SaveDir, "Slot2.bin"))
}

func TestCLI_SnapshotRestore(t *testing.T) {
	cfgPath, _ := writeTestConfig(t, nil)

	run := func(args ...string) (string, error) {
		return runCLI(t, append([]string{"--config", cfgPath}, args...)...)
	}

	_, err := run("put", "gold", "100", "--type", "int")
	require.NoError(t, err)

	out, err := run("snapshot", "--keep", "0")
	require.NoError(t, err)
	id := snapshotIDFrom(t, out)

	_, err = run("put", "gold", "25", "--type", "int")
	require.NoError(t, err)

	out, err = run("get", "gold")
	require.NoError(t, err)
	assert.Equal(t, "25\n", out)

	out, err = run("snapshots")
	require.NoError(t, err)
	assert.Contains(t, out, id)
	assert.Contains(t, out, "ID")

	_, err = run("restore", id)
	require.NoError(t, err)

	out, err = run("get", "gold")
	require.NoError(t, err)
	assert.Equal(t, "100\n", out)

	out, err = run("snapshots", "--delete", id)
	require.NoError(t, err)
	assert.Contains(t, out, "Deleted snapshot")

	out, err = run("snapshots")
	require.NoError(t, err)
	assert.Contains(t, out, "No snapshots")
}

func TestCLI_SnapshotPruneKeepsNewest(t *testing.T) {
	cfgPath, _ := writeTestConfig(t, nil)

	run := func(args ...string) (string, error) {
		return runCLI(t, append([]string{"--config", cfgPath}, args...)...)
	}

	_, err := run("put", "gold", "1", "--type", "int")
	require.NoError(t, err)

	for i := 0; i < 3; i++ {
		_, err = run("snapshot", "--keep", "2")
		require.NoError(t, err)
	}

	out, err := run("snapshots")
	require.NoError(t, err)

	rows := 0
	for _, line := range strings.Split(strings.TrimSpace(out), "\n") {
		if line != "" && !strings.HasPrefix(line, "ID") {
			rows++
		}
	}
	assert.Equal(t, 2, rows)
}

func TestCLI_RestoreBadID(t *testing.T) {
	cfgPath, _ := writeTestConfig(t, nil)

	_, err := runCLI(t, "--config", cfgPath, "restore", "not-a-ksuid")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "bad snapshot id")
}

func snapshotIDFrom(t *testing.T, out string) string {
	t.Helper()

	fields := strings.Fields(out)
	require.GreaterOrEqual(t, len(fields), 2)
	require.Equal(t, "Snapshot", fields[0])
	return fields[1]
}
