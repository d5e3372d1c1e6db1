package cmd

import (
	"github.com/spf13/cobra"
)

// deleteCmd represents the delete command
var deleteCmd = &cobra.Command{
	Use:   "delete <key>",
	Short: "Delete the entry stored under a key",
	Long: `Delete the entry stored under a key. The save file is rewritten
without the entry; deleting the last entry leaves an empty file behind.

Deleting a key that is not present still rewrites the file and succeeds.

Example:
  mimir delete player.health`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := newEnv()
		if err != nil {
			return err
		}

		if err := e.store.Delete(e.path, args[0]); err != nil {
			return err
		}

		cmd.Printf("Deleted %s from %s\n", args[0], e.path)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(deleteCmd)
}
