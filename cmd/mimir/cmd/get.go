package cmd

import (
	"github.com/spf13/cobra"

	"github.com/ssargent/mimir/pkg/value"
)

// getCmd represents the get command
var getCmd = &cobra.Command{
	Use:   "get <key>",
	Short: "Load the value stored under a key",
	Long: `Load the value stored under a key and print it in decoded form.

A payload the typed codec cannot decode is printed as hex instead.

Examples:
  mimir get player.health
  mimir get spawn --file Slot2`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := newEnv()
		if err != nil {
			return err
		}

		payload, tag, err := e.store.Load(e.path, args[0])
		if err != nil {
			return err
		}

		v, err := value.Decode(tag, payload)
		if err != nil {
			cmd.Printf("%s (%d bytes): %x\n", tag, len(payload), payload)
			return nil
		}

		cmd.Printf("%s\n", v)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(getCmd)
}
