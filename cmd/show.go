package cmd

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/disintegration/imaging"
	colorize "github.com/fatih/color"
	"github.com/mattn/go-runewidth"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/arcanaland/spritedeck/internal/card"
	"github.com/arcanaland/spritedeck/internal/config"
	"github.com/arcanaland/spritedeck/internal/deck"
	"github.com/arcanaland/spritedeck/internal/grid"
	"github.com/arcanaland/spritedeck/internal/preview"
	"github.com/arcanaland/spritedeck/internal/sheetfile"
)

const (
	defaultPreviewWidth = 40
	minPreviewWidth     = 10
)

var showFlags struct {
	file    string
	scale   int
	width   int
	noCache bool
}

var showCmd = &cobra.Command{
	Use:   "show CARD",
	Short: "Preview one frame of a generated sheet in the terminal",
	Long: `Show crops one frame out of a generated sheet and renders it as ANSI art next
to what the frame holds. CARD is a frame index, a card code such as 'Qh' or
'10s', or one of the backs: 'feather', 'alternate'.

Examples:
  spritedeck show Ac
  spritedeck show 56
  spritedeck show --file cards.png --width 30 feather`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		index, err := card.Parse(args[0])
		if err != nil {
			return err
		}

		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		p := deck.ParamsFromConfig(cfg.Defaults)
		if cmd.Flags().Changed("scale") {
			p.Scale = showFlags.scale
		}
		if err := p.Validate(); err != nil {
			return err
		}

		file := showFlags.file
		if file == "" {
			file = filepath.Join(cfg.Paths.Output, p.OutputName())
		}
		slot, err := p.Grid(cfg.Layout).SlotFor(index)
		if err != nil {
			return err
		}
		width := showFlags.width
		if width <= 0 {
			width = previewWidth()
		}

		cache := preview.Cache{Dir: filepath.Join(config.GetCacheDir(), "ansi_cache")}
		key, err := preview.Key(file, slot.Rect, width)
		if errors.Is(err, fs.ErrNotExist) {
			return &sheetfile.MissingFileError{Path: file}
		} else if err != nil {
			return err
		}

		art, ok := cache.Load(key)
		if !ok || showFlags.noCache {
			art, err = renderFrame(file, slot, width)
			if err != nil {
				return err
			}
			if err := cache.Store(key, art); err != nil {
				logger.Debug("preview not cached", "err", err)
			}
		}

		displayCard(cmd.OutOrStdout(), index, slot, art, file)
		return nil
	},
}

// renderFrame crops the slot out of the sheet file and renders it as ANSI art.
func renderFrame(file string, slot grid.Slot, width int) (string, error) {
	sheet, err := sheetfile.LoadImage(file)
	if err != nil {
		return "", err
	}
	if !slot.Rect.In(sheet.Bounds()) {
		return "", fmt.Errorf("frame %d at %v lies outside the %dx%d sheet %s",
			slot.Index, slot.Rect, sheet.Bounds().Dx(), sheet.Bounds().Dy(), file)
	}

	frame := imaging.Crop(sheet, slot.Rect)
	w, h := preview.Size(frame.Bounds().Dx(), frame.Bounds().Dy(), width)
	art, err := preview.Render(frame, w, h)
	if err != nil {
		return "", fmt.Errorf("error rendering preview: %w", err)
	}
	return art, nil
}

func init() {
	showCmd.Flags().StringVarP(&showFlags.file, "file", "f", "", "sheet to read (default derived from configured parameters)")
	showCmd.Flags().IntVar(&showFlags.scale, "scale", 0, "scale factor of the sheet (1-2)")
	showCmd.Flags().IntVarP(&showFlags.width, "width", "w", 0, "preview width in columns (default fits the terminal)")
	showCmd.Flags().BoolVar(&showFlags.noCache, "no-cache", false, "render the preview even when a cached copy exists")
}

// previewWidth picks a preview width that leaves room for the info panel.
func previewWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		return defaultPreviewWidth
	}
	return max(minPreviewWidth, min(defaultPreviewWidth, width/3))
}

// infoLines describes what occupies a frame.
func infoLines(index int, slot grid.Slot, file string) []string {
	var lines []string
	lines = append(lines, colorize.CyanString("Card:  ")+colorize.HiWhiteString(card.Label(index)))

	if index < card.FaceCount {
		c := card.Faces(card.Suits)[index]
		lines = append(lines, colorize.CyanString("Code:  ")+colorize.HiWhiteString(c.Code()))
		lines = append(lines, colorize.CyanString("Suit:  ")+
			colorize.HiWhiteString("%s · %s", c.Suit.Name, c.Suit.Symbol))
		lines = append(lines, colorize.CyanString("Rank:  ")+colorize.HiWhiteString(c.Rank))
	}

	lines = append(lines, colorize.CyanString("Frame: ")+colorize.HiWhiteString("%d", index))
	lines = append(lines, colorize.CyanString("Slot:  ")+
		colorize.HiWhiteString("%dx%d at (%d, %d)", slot.Width(), slot.Height(), slot.Rect.Min.X, slot.Rect.Min.Y))
	lines = append(lines, colorize.CyanString("Sheet: ")+colorize.HiWhiteString(file))
	return lines
}

// displayCard prints the ANSI art with the frame information to its right
func displayCard(out io.Writer, index int, slot grid.Slot, art, file string) {
	artLines := strings.Split(strings.TrimRight(art, "\n"), "\n")
	maxArtWidth := 0
	for _, line := range artLines {
		maxArtWidth = max(maxArtWidth, runewidth.StringWidth(preview.StripANSI(line)))
	}

	info := infoLines(index, slot, file)
	infoStartCol := maxArtWidth + 4

	fmt.Fprintln(out)
	for i := 0; i < max(len(artLines), len(info)); i++ {
		fmt.Fprint(out, "  ")
		if i < len(artLines) {
			fmt.Fprint(out, artLines[i])
			visible := runewidth.StringWidth(preview.StripANSI(artLines[i]))
			fmt.Fprint(out, strings.Repeat(" ", infoStartCol-visible))
		} else {
			fmt.Fprint(out, strings.Repeat(" ", infoStartCol))
		}
		if i < len(info) {
			fmt.Fprint(out, info[i])
		}
		fmt.Fprintln(out)
	}
	fmt.Fprintln(out)
}
