package cmd

import (
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/arcanaland/spritedeck/internal/config"
)

var (
	configPath string
	verbose    bool

	logger = log.NewWithOptions(os.Stderr, log.Options{Prefix: "spritedeck"})
)

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "spritedeck",
	Short: "Tool for generating playing card sprite-sheets",
	Long: `Spritedeck draws a playing card sprite-sheet for the game client.
It composes the 52 card faces, the feather back and the alternate back onto
a blank template and writes a single PNG.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logger.SetOutput(cmd.ErrOrStderr())
		if verbose {
			logger.SetLevel(log.DebugLevel)
		}
	},
}

func init() {
	RootCmd.PersistentFlags().StringVar(&configPath, "config", "", "config file (default $XDG_CONFIG_HOME/spritedeck/config.toml)")
	RootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log every drawing step")

	RootCmd.AddCommand(generateCmd)
	RootCmd.AddCommand(backsCmd)
	RootCmd.AddCommand(blankCmd)
	RootCmd.AddCommand(validateCmd)
	RootCmd.AddCommand(showCmd)
	RootCmd.AddCommand(symbolsCmd)
	RootCmd.AddCommand(initCmd)
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return RootCmd.Execute()
}

// loadConfig reads --config when given, otherwise the user config file.
func loadConfig() (*config.Config, error) {
	if configPath != "" {
		return config.LoadFile(configPath)
	}
	return config.LoadConfig()
}
