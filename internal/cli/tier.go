package cli

import (
	"io"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/matzehuels/viewport/pkg/breakpoint"
	"github.com/matzehuels/viewport/pkg/mediaquery"
	"github.com/matzehuels/viewport/pkg/term"
)

// tierCommand creates the tier command for classifying a width into a tier.
func (c *CLI) tierCommand() *cobra.Command {
	var configPath string
	var width float64

	cmd := &cobra.Command{
		Use:   "tier",
		Short: "Classify a viewport width, or the terminal, into a tier",
		Long:  `Tier classifies a viewport width in CSS pixels into the breakpoint table's matching tier. Without --width the current terminal's column count is classified against the built-in terminal table instead; --config only applies to pixel widths.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("width") {
				tab, _, err := c.loadTable(configPath)
				if err != nil {
					return err
				}
				return runTierWidth(cmd.OutOrStdout(), tab, width)
			}
			return runTierTerminal(cmd.OutOrStdout())
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "breakpoint definition file (toml, yaml, or json)")
	cmd.Flags().Float64Var(&width, "width", 0, "viewport width in CSS pixels")

	return cmd
}

// runTierWidth classifies a pixel width against the breakpoint table.
func runTierWidth(w io.Writer, tab *breakpoint.Table, width float64) error {
	entry, err := tab.TierFor(width)
	if err != nil {
		return err
	}
	printKeyValue(w, "width", mediaquery.FormatPx(width))
	printKeyValue(w, "tier", entry.Name)
	return nil
}

// runTierTerminal classifies the terminal's column count against the
// built-in terminal table.
func runTierTerminal(w io.Writer) error {
	cols := term.WidthOf(w)
	entry, err := term.TierOf(nil, cols)
	if err != nil {
		return err
	}
	if cols <= 0 {
		printDetail(w, "terminal size unknown, assuming %d columns", term.FallbackColumns)
		cols = term.FallbackColumns
	}
	printKeyValue(w, "columns", strconv.Itoa(cols))
	printKeyValue(w, "tier", entry.Name)
	return nil
}
