package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/arcanaland/spritedeck/internal/config"
)

// initCmd represents the init command
var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create the config file and the working directories",
	Long: `Init writes the default config file if there is none yet and creates the
template, asset, output and archive directories it names.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		path := configPath
		if path == "" {
			path = config.GetConfigFilePath()
		}

		cfg, err := initConfig(path)
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		fmt.Fprintln(out, "Config file initialized at:", path)

		for _, dir := range []string{cfg.Paths.Templates, cfg.Paths.Assets, cfg.Paths.Output, cfg.Paths.Archive} {
			if err := os.MkdirAll(dir, 0755); err != nil {
				return fmt.Errorf("error creating %s: %w", dir, err)
			}
			fmt.Fprintln(out, "Directory ready:", dir)
		}
		return nil
	},
}

// initConfig loads the config at path, writing the defaults there first when
// the file does not exist.
func initConfig(path string) (*config.Config, error) {
	if _, err := os.Stat(path); err == nil {
		return config.LoadFile(path)
	} else if !errors.Is(err, fs.ErrNotExist) {
		return nil, err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("error creating config directory: %w", err)
	}
	cfg := config.Default()
	if err := cfg.Save(path); err != nil {
		return nil, err
	}
	return cfg, nil
}
