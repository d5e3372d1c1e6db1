package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// snapshotCmd represents the snapshot command
var snapshotCmd = &cobra.Command{
	Use:   "snapshot",
	Short: "Store a snapshot of the save file",
	Long: `Store a copy of the current save file in the snapshot archive.

Afterwards, older snapshots of the same file are pruned down to the
configured count. Pass --keep to override the config; --keep 0 keeps
every snapshot.

Examples:
  mimir snapshot
  mimir snapshot --keep 5
  mimir snapshot --keep 0`,
	RunE: func(cmd *cobra.Command, args []string) error {
		keep, _ := cmd.Flags().GetInt("keep")

		e, err := newEnv()
		if err != nil {
			return err
		}
		if keep < 0 {
			keep = e.cfg.Snapshots.Keep
		}

		data, err := e.fs.ReadAll(e.path)
		if err != nil {
			return fmt.Errorf("read %s: %w", e.path, err)
		}

		arch, err := e.openArchive()
		if err != nil {
			return err
		}
		defer arch.Close()

		name := e.snapshotName()
		id, err := arch.Snapshot(name, data)
		if err != nil {
			return err
		}
		cmd.Printf("Snapshot %s of %s (%d bytes)\n", id, e.path, len(data))

		if keep > 0 {
			deleted, err := arch.Prune(name, keep)
			if err != nil {
				return err
			}
			if deleted > 0 {
				cmd.Printf("Pruned %d older snapshot(s)\n", deleted)
			}
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(snapshotCmd)

	snapshotCmd.Flags().Int("keep", -1, "Snapshots to keep after pruning (0 keeps all, -1 uses config)")
}
