/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ssargent/mimir/pkg/archive"
	"github.com/ssargent/mimir/pkg/config"
	"github.com/ssargent/mimir/pkg/fsio"
	"github.com/ssargent/mimir/pkg/store"
)

var (
	cfgFile    string
	saveDir    string
	fileName   string
	formatName string
	verbose    bool
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "mimir",
	Short: "Mimir - keyed binary save files",
	Long: `Mimir stores typed game state in flat binary save files.

Each file holds tagged, keyed records. Every write reads the whole file,
replaces the entry for the key, and rewrites the file, so files stay
compact and hold at most one entry per key. Values are encoded with
fixed little-endian layouts that survive platform changes.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "Config file (default ~/.config/mimir/config.yaml)")
	rootCmd.PersistentFlags().StringVarP(&saveDir, "save-dir", "d", "", "Directory holding save files (overrides config)")
	rootCmd.PersistentFlags().StringVarP(&fileName, "file", "f", "", "Save file name without extension (overrides config)")
	rootCmd.PersistentFlags().StringVar(&formatName, "format", "", "Save file format: bin, sav, or dat (overrides config)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
}

// env is the resolved runtime for a single command invocation: the
// effective configuration after flag overrides, the logger, and a store
// pointed at the save file the command operates on.
type env struct {
	cfg    *config.Config
	log    *slog.Logger
	fs     *fsio.OS
	store  *store.Store
	format fsio.Format
	path   string
}

func newEnv() (*env, error) {
	cfg, err := resolveConfig()
	if err != nil {
		return nil, err
	}

	if saveDir != "" {
		cfg.SaveDir = saveDir
	}
	if fileName != "" {
		cfg.DefaultFile = fileName
	}
	if formatName != "" {
		cfg.Format = formatName
	}

	format, err := cfg.SaveFormat()
	if err != nil {
		return nil, err
	}

	logger := newLogger(cfg.Logging.Level)
	fs := fsio.NewOS(logger)

	return &env{
		cfg:    cfg,
		log:    logger,
		fs:     fs,
		store:  store.New(store.Config{FileSystem: fs, Logger: logger}),
		format: format,
		path:   fsio.PreparePath(cfg.SaveDir, cfg.DefaultFile, format),
	}, nil
}

func (e *env) openArchive() (*archive.Archive, error) {
	return archive.Open(e.cfg.Snapshots.Dir, e.log)
}

// snapshotName identifies the save file inside the snapshot archive.
// The base name keeps snapshots of Slot1.sav apart from Slot1.dat.
func (e *env) snapshotName() string {
	return e.cfg.DefaultFile + e.format.Ext()
}

func resolveConfig() (*config.Config, error) {
	path := cfgFile
	if path == "" {
		path = config.GetDefaultConfigPath()
	}
	if !config.ConfigExists(path) {
		if cfgFile != "" {
			return nil, fmt.Errorf("config file does not exist: %s", cfgFile)
		}
		return config.DefaultConfig(), nil
	}
	return config.LoadConfig(path)
}

func newLogger(level string) *slog.Logger {
	lvl := slog.LevelInfo
	switch {
	case verbose:
		lvl = slog.LevelDebug
	default:
		switch strings.ToLower(level) {
		case "debug":
			lvl = slog.LevelDebug
		case "warn":
			lvl = slog.LevelWarn
		case "error":
			lvl = slog.LevelError
		}
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl}))
}
