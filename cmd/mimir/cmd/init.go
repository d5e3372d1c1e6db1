/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"github.com/spf13/cobra"

	"github.com/ssargent/mimir/pkg/config"
)

// initCmd represents the init command
var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create a starter configuration file",
	Long: `Create a mimir configuration file with sensible defaults.

This command will:
- Create the config directory if needed
- Write the save directory, default file name, and format
- Write snapshot archive settings

An existing config file is left untouched unless --force is given.

Examples:
  mimir init
  mimir init --save-dir ./saves
  mimir init --config ./mimir.yaml --force`,
	RunE: func(cmd *cobra.Command, args []string) error {
		force, _ := cmd.Flags().GetBool("force")

		path := cfgFile
		if path == "" {
			path = config.GetDefaultConfigPath()
		}

		if config.ConfigExists(path) && !force {
			cmd.Printf("Config already exists at %s. Use --force to overwrite.\n", path)
			return nil
		}

		cfg, err := config.BootstrapConfig(path, saveDir)
		if err != nil {
			return err
		}

		cmd.Printf("✅ Wrote config to %s\n", path)
		cmd.Printf("Save directory: %s\n", cfg.SaveDir)
		cmd.Printf("Default file:   %s (.%s)\n", cfg.DefaultFile, cfg.Format)
		cmd.Printf("Snapshots:      %s (keep %d)\n", cfg.Snapshots.Dir, cfg.Snapshots.Keep)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(initCmd)

	initCmd.Flags().Bool("force", false, "Overwrite an existing config file")
}
