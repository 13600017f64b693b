package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/arcanaland/spritedeck/internal/card"
	"github.com/arcanaland/spritedeck/internal/compositor"
	"github.com/arcanaland/spritedeck/internal/deck"
	"github.com/arcanaland/spritedeck/internal/sheetfile"
)

var symbolsFlags struct {
	fonts  []string
	output string
}

// symbolsCmd represents the symbols command
var symbolsCmd = &cobra.Command{
	Use:   "symbols",
	Short: "Render a suit symbol comparison sheet",
	Long: `Symbols draws the four suit symbols in each given font, once in black and once
in the suit colours, to compare how fonts render them at card size. Without
--font the embedded Go fonts are compared.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		colours, err := cfg.SuitColours()
		if err != nil {
			return err
		}

		var fonts []*compositor.FontSource
		if len(symbolsFlags.fonts) == 0 {
			fonts, err = compositor.EmbeddedFonts()
			if err != nil {
				return err
			}
		}
		for _, path := range symbolsFlags.fonts {
			fs, err := compositor.LoadFonts(path)
			if err != nil {
				logger.Warn("couldn't load font", "path", path, "err", err)
				continue
			}
			fonts = append(fonts, fs)
		}
		if len(fonts) == 0 {
			return fmt.Errorf("none of the %d fonts could be loaded", len(symbolsFlags.fonts))
		}
		defer func() {
			for _, fs := range fonts {
				fs.Close()
			}
		}()

		labels, err := compositor.DefaultFonts()
		if err != nil {
			return err
		}
		defer labels.Close()

		img, err := deck.SymbolSheet(fonts, labels, card.WithColours(colours))
		if err != nil {
			return err
		}

		output := symbolsFlags.output
		if output == "" {
			output = filepath.Join(cfg.Paths.Templates, "suitsymbol_test.png")
		}
		if err := sheetfile.Save(output, img); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Symbol test image saved to: %s\n", color.HiWhiteString(output))
		return nil
	},
}

func init() {
	symbolsCmd.Flags().StringArrayVar(&symbolsFlags.fonts, "font", nil, "TrueType or OpenType font to compare (repeatable)")
	symbolsCmd.Flags().StringVarP(&symbolsFlags.output, "output", "o", "", "output file (default <templates>/suitsymbol_test.png)")
}
