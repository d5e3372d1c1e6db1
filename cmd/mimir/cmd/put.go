package cmd

import (
	"strings"

	"github.com/spf13/cobra"
)

// putCmd represents the put command
var putCmd = &cobra.Command{
	Use:   "put <key> <value>",
	Short: "Save a typed value under a key",
	Long: `Save a typed value under a key in the save file.

The value text is parsed according to --type. Saving a key that already
exists replaces its entry; the rewritten file keeps one entry per key.

Examples:
  mimir put player.health 75.5 --type float
  mimir put hardcore true --type bool
  mimir put player.name Grofnir
  mimir put difficulty 3 --type enum8
  mimir put spawn "0,90,0;100,200,50;1,1,1" --type transform`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		kind, _ := cmd.Flags().GetString("type")

		v, err := parseValue(kind, args[1])
		if err != nil {
			return err
		}

		e, err := newEnv()
		if err != nil {
			return err
		}

		if err := e.store.Save(e.path, args[0], v.Tag(), v.Encode()); err != nil {
			return err
		}

		cmd.Printf("Saved %s (%s) to %s\n", args[0], v.Tag(), e.path)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(putCmd)

	putCmd.Flags().StringP("type", "t", "string", "Value type: "+strings.Join(valueKinds, ", "))
}
