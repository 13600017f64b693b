package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/arcanaland/spritedeck/internal/deck"
	"github.com/arcanaland/spritedeck/internal/sheetfile"
)

var blankFlags struct {
	params paramFlags
	output string
}

// blankCmd represents the blank command
var blankCmd = &cobra.Command{
	Use:   "blank",
	Short: "Create a blank card template",
	Long: `Blank draws an empty template: one cream card with a black border per frame
on a transparent sheet. Border thicknesses and scale default to the configured
values and the file is named so that generate finds it.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		p, err := resolveParams(cmd, &blankFlags.params, deck.ParamsFromConfig(cfg.Defaults), false)
		if err != nil {
			return err
		}

		img, err := deck.Blank(p, cfg.Layout)
		if err != nil {
			return err
		}

		output := blankFlags.output
		if output == "" {
			output = filepath.Join(cfg.Paths.Templates, p.TemplateName())
		}
		logger.Info("creating blank cards template", "size", img.Bounds().Size(), "params", p.String())
		if err := sheetfile.Save(output, img); err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Blank template saved to: %s\n", color.HiWhiteString(output))
		return nil
	},
}

func init() {
	addParamFlags(blankCmd, &blankFlags.params)
	blankCmd.Flags().StringVarP(&blankFlags.output, "output", "o", "", "output file (default derived from parameters)")
}
