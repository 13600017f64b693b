package cmd

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/arcanaland/spritedeck/internal/deck"
)

var generateFlags struct {
	params   paramFlags
	style    string
	template string
	output   string
	noBackup bool
}

// generateCmd represents the generate command
var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate the card sprite-sheet from a blank template",
	Long: `Generate loads the blank template matching the border parameters, draws the
52 card faces, the feather back (frame 56) and the alternate back (frame 55),
and saves the sheet. An existing sheet is copied to the archive first.

Parameters not given as flags are prompted for; --defaults skips the prompts.

Examples:
  spritedeck generate
  spritedeck generate --edge 0 --top 1 --base 1 --scale 2
  spritedeck generate --defaults --style placeholder`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		f := &generateFlags
		p, err := resolveParams(cmd, &f.params, deck.ParamsFromConfig(cfg.Defaults), !f.params.defaults)
		if err != nil {
			return err
		}

		b, err := deck.NewBuilder(cfg, p, logger)
		if err != nil {
			return err
		}
		defer b.Close()

		switch f.style {
		case "":
		case deck.StyleArt, deck.StylePlaceholder:
			b.Style = f.style
		default:
			return fmt.Errorf("style must be %s or %s, got %q", deck.StyleArt, deck.StylePlaceholder, f.style)
		}

		template := f.template
		if template == "" {
			template = b.TemplatePath()
		}
		output := f.output
		if output == "" {
			output = b.OutputPath()
		}

		res, err := b.Generate(template, output, !f.noBackup)
		if err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "\nGenerated deck saved to: %s\n", color.HiWhiteString(res.Output))
		return nil
	},
}

func init() {
	addParamFlags(generateCmd, &generateFlags.params)
	generateCmd.Flags().BoolVar(&generateFlags.params.defaults, "defaults", false, "use configured defaults instead of prompting")
	generateCmd.Flags().StringVar(&generateFlags.style, "style", "", "face style: art or placeholder (default from config)")
	generateCmd.Flags().StringVar(&generateFlags.template, "template", "", "blank template to draw on (default derived from parameters)")
	generateCmd.Flags().StringVarP(&generateFlags.output, "output", "o", "", "output file (default derived from parameters)")
	generateCmd.Flags().BoolVar(&generateFlags.noBackup, "no-backup", false, "overwrite without archiving the previous sheet")
}
