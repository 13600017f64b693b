package cmd

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/arcanaland/spritedeck/internal/deck"
)

// paramFlags holds the template selection flags shared by several commands.
type paramFlags struct {
	edge     int
	top      int
	base     int
	scale    int
	defaults bool
}

var paramPrompts = []struct {
	flag     string
	label    string
	min, max int
}{
	{"edge", "edge value", deck.MinBorder, deck.MaxBorder},
	{"top", "top value", deck.MinBorder, deck.MaxBorder},
	{"base", "base value", deck.MinBorder, deck.MaxBorder},
	{"scale", "scale", deck.MinScale, deck.MaxScale},
}

func addParamFlags(cmd *cobra.Command, f *paramFlags) {
	cmd.Flags().IntVar(&f.edge, "edge", 0, "side border thickness of the blank card (0-3)")
	cmd.Flags().IntVar(&f.top, "top", 0, "top border thickness of the blank card (0-3)")
	cmd.Flags().IntVar(&f.base, "base", 0, "bottom border thickness of the blank card (0-3)")
	cmd.Flags().IntVar(&f.scale, "scale", 0, "output scale factor (1-2)")
}

// resolveParams takes each parameter from its flag when set. Otherwise it
// prompts on the command's input when prompt is set, falling back to the
// default on an empty answer or end of input.
func resolveParams(cmd *cobra.Command, f *paramFlags, defaults deck.Params, prompt bool) (deck.Params, error) {
	p := defaults
	set := map[string]struct{ dst, flag *int }{
		"edge":  {&p.Edge, &f.edge},
		"top":   {&p.Top, &f.top},
		"base":  {&p.Base, &f.base},
		"scale": {&p.Scale, &f.scale},
	}

	var in *bufio.Reader
	for _, q := range paramPrompts {
		v := set[q.flag]
		if cmd.Flags().Changed(q.flag) {
			*v.dst = *v.flag
			continue
		}
		if !prompt {
			continue
		}
		if in == nil {
			in = bufio.NewReader(cmd.InOrStdin())
		}
		msg := fmt.Sprintf("Enter %s (%d-%d) [default: %d]: ", q.label, q.min, q.max, *v.dst)
		n, err := promptInt(in, cmd.OutOrStdout(), msg, *v.dst)
		if err != nil {
			return p, fmt.Errorf("%s: %w", q.flag, err)
		}
		*v.dst = n
	}

	if err := p.Validate(); err != nil {
		return p, err
	}
	return p, nil
}

func promptInt(in *bufio.Reader, out io.Writer, prompt string, def int) (int, error) {
	fmt.Fprint(out, prompt)
	line, err := in.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return 0, err
	}

	line = strings.TrimSpace(line)
	if line == "" {
		return def, nil
	}
	n, err := strconv.Atoi(line)
	if err != nil {
		return 0, fmt.Errorf("invalid value %q, expected a whole number", line)
	}
	return n, nil
}
