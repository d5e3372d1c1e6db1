package cmd

import (
	"fmt"

	"github.com/segmentio/ksuid"
	"github.com/spf13/cobra"
)

// restoreCmd represents the restore command
var restoreCmd = &cobra.Command{
	Use:   "restore <snapshot-id>",
	Short: "Restore the save file from a snapshot",
	Long: `Replace the save file with the contents of a stored snapshot.
Snapshot ids come from "mimir snapshots".

Example:
  mimir restore 2zII4tYkgwTBNVzKG8Kyq1tbye9`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := ksuid.Parse(args[0])
		if err != nil {
			return fmt.Errorf("bad snapshot id %q: %w", args[0], err)
		}

		e, err := newEnv()
		if err != nil {
			return err
		}

		arch, err := e.openArchive()
		if err != nil {
			return err
		}
		defer arch.Close()

		data, err := arch.Restore(e.snapshotName(), id)
		if err != nil {
			return err
		}

		if err := e.fs.WriteAll(e.path, data); err != nil {
			return err
		}

		cmd.Printf("Restored %s from snapshot %s (%d bytes)\n", e.path, id, len(data))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(restoreCmd)
}
