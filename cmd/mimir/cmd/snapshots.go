package cmd

import (
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/segmentio/ksuid"
	"github.com/spf13/cobra"
)

// snapshotsCmd represents the snapshots command
var snapshotsCmd = &cobra.Command{
	Use:   "snapshots",
	Short: "List stored snapshots of the save file",
	Long: `List the snapshots stored for the save file, oldest first.

Pass --delete with a snapshot id to remove a single snapshot instead.

Examples:
  mimir snapshots
  mimir snapshots --delete 2zII4tYkgwTBNVzKG8Kyq1tbye9`,
	RunE: func(cmd *cobra.Command, args []string) error {
		deleteID, _ := cmd.Flags().GetString("delete")

		e, err := newEnv()
		if err != nil {
			return err
		}

		arch, err := e.openArchive()
		if err != nil {
			return err
		}
		defer arch.Close()

		name := e.snapshotName()

		if deleteID != "" {
			id, err := ksuid.Parse(deleteID)
			if err != nil {
				return fmt.Errorf("bad snapshot id %q: %w", deleteID, err)
			}
			if err := arch.Delete(name, id); err != nil {
				return err
			}
			cmd.Printf("Deleted snapshot %s of %s\n", id, name)
			return nil
		}

		infos, err := arch.List(name)
		if err != nil {
			return err
		}

		if len(infos) == 0 {
			cmd.Printf("No snapshots of %s\n", name)
			return nil
		}

		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
		defer w.Flush()

		fmt.Fprintln(w, "ID\tCREATED\tBYTES")
		for _, info := range infos {
			fmt.Fprintf(w, "%s\t%s\t%d\n", info.ID, info.CreatedAt.UTC().Format(time.RFC3339), info.Size)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(snapshotsCmd)

	snapshotsCmd.Flags().String("delete", "", "Delete the snapshot with this id instead of listing")
}
