package cmd

import (
	"github.com/spf13/cobra"
)

// rmCmd represents the rm command
var rmCmd = &cobra.Command{
	Use:   "rm",
	Short: "Remove the save file itself",
	Long: `Remove the whole save file from disk. Removing a file that does not
exist is reported but is not an error.

Example:
  mimir rm --file Slot1`,
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := newEnv()
		if err != nil {
			return err
		}

		if e.fs.Remove(e.path) {
			cmd.Printf("Removed %s\n", e.path)
		} else {
			cmd.Printf("No save file at %s\n", e.path)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(rmCmd)
}
