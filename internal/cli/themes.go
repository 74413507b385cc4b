package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/rnaviz/pkg/rna"
	"github.com/matzehuels/rnaviz/pkg/theme"
)

// themesCommand lists the theme presets with color swatches.
func (c *CLI) themesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "themes",
		Short: "List color themes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			w := cmd.OutOrStdout()
			fmt.Fprintln(w, StyleTitle.Render("Themes"))
			for _, name := range theme.Names() {
				th, _ := theme.Lookup(name)
				fmt.Fprintln(w, themeLine(th))
			}
			return nil
		},
	}
}

// themeLine renders one theme as its name followed by swatches for the
// background, the four bases, unknown bases, and the highlight colors.
func themeLine(th theme.Theme) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("  %-8s ", th.Name()))
	b.WriteString(swatch(th.Background))
	b.WriteString(" ")
	for n := rna.A; n <= rna.U; n++ {
		b.WriteString(swatch(th.NucleotideColor(n)))
	}
	b.WriteString(swatch(th.NucleotideColor(rna.Unknown)))
	b.WriteString(" ")
	for i := range theme.HighlightCount {
		b.WriteString(swatch(th.HighlightColor(i)))
	}
	b.WriteString("  " + StyleDim.Render(th.Background.Hex()))
	return b.String()
}
