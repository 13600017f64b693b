package cmd

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/arcanaland/spritedeck/internal/deck"
)

var backsFlags struct {
	scale     int
	feather   bool
	alternate bool
}

// backsCmd represents the backs command
var backsCmd = &cobra.Command{
	Use:   "backs INPUT OUTPUT",
	Short: "Add card back designs to an existing sheet",
	Long: `Backs draws the feather back (frame 56) and/or the alternate back (frame 55)
onto an existing sheet and writes the result to OUTPUT. With neither --feather
nor --alternate both backs are drawn.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		p := deck.ParamsFromConfig(cfg.Defaults)
		if cmd.Flags().Changed("scale") {
			p.Scale = backsFlags.scale
		}

		b, err := deck.NewBuilder(cfg, p, logger)
		if err != nil {
			return err
		}
		defer b.Close()

		feather, alternate := backsFlags.feather, backsFlags.alternate
		if !feather && !alternate {
			feather, alternate = true, true
		}

		res, err := b.AddBacks(args[0], args[1], feather, alternate)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Sheet with backs saved to: %s\n", color.HiWhiteString(res.Output))
		return nil
	},
}

func init() {
	backsCmd.Flags().IntVar(&backsFlags.scale, "scale", 0, "scale factor of the input sheet (1-2)")
	backsCmd.Flags().BoolVar(&backsFlags.feather, "feather", false, "draw the feather back")
	backsCmd.Flags().BoolVar(&backsFlags.alternate, "alternate", false, "draw the alternate back")
}
