package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

// keysCmd represents the keys command
var keysCmd = &cobra.Command{
	Use:   "keys",
	Short: "List the entries in the save file",
	Long: `List every entry in the save file in file order, with its value
type and payload size.

Example:
  mimir keys --file Slot1`,
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := newEnv()
		if err != nil {
			return err
		}

		infos, err := e.store.Keys(e.path)
		if err != nil {
			return err
		}

		if len(infos) == 0 {
			cmd.Printf("%s holds no entries\n", e.path)
			return nil
		}

		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
		defer w.Flush()

		fmt.Fprintln(w, "KEY\tTYPE\tBYTES")
		for _, info := range infos {
			fmt.Fprintf(w, "%s\t%s\t%d\n", info.Key, info.Tag, info.Size)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(keysCmd)
}
