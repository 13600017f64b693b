package cmd

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/arcanaland/spritedeck/internal/deck"
	"github.com/arcanaland/spritedeck/internal/validator"
)

// errValidationFailed is returned after the report has been printed.
var errValidationFailed = errors.New("validation failed")

var validateFlags struct {
	params   paramFlags
	template string
}

// validateCmd represents the validate command
var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check a blank template and the card assets",
	Long: `Validate checks that the blank template exists and matches the sheet layout,
and that every image the generator pastes (suit art, feather tile, alternate
back) is present and usable.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		p, err := resolveParams(cmd, &validateFlags.params, deck.ParamsFromConfig(cfg.Defaults), false)
		if err != nil {
			return err
		}

		template := validateFlags.template
		if template == "" {
			template = filepath.Join(cfg.Paths.Templates, p.TemplateName())
		}

		v := validator.NewValidator(template, cfg.Paths, p.Grid(cfg.Layout), cfg.Layout.TileSize)
		results, err := v.Validate()
		if err != nil {
			return fmt.Errorf("validation error: %w", err)
		}

		out := cmd.OutOrStdout()
		fmt.Fprintln(out, "Validation Results:")
		fmt.Fprintln(out, "-------------------")

		if results.OK() {
			fmt.Fprintf(out, "%s Template '%s' and assets are ready.\n", color.GreenString("✓"), template)
		} else {
			fmt.Fprintf(out, "%s Template '%s' has %d validation errors:\n",
				color.RedString("✗"), template, len(results.Errors))
			for i, e := range results.Errors {
				fmt.Fprintf(out, "%d. %s\n", i+1, e)
			}
		}

		if len(results.Warnings) > 0 {
			fmt.Fprintln(out, "\n"+color.YellowString("Warnings:"))
			for i, w := range results.Warnings {
				fmt.Fprintf(out, "%d. %s\n", i+1, w)
			}
		}

		if !results.OK() {
			return errValidationFailed
		}
		return nil
	},
}

func init() {
	addParamFlags(validateCmd, &validateFlags.params)
	validateCmd.Flags().StringVar(&validateFlags.template, "template", "", "template to check (default derived from parameters)")
}
