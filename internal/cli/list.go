package cli

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/matzehuels/viewport/pkg/breakpoint"
	"github.com/matzehuels/viewport/pkg/mediaquery"
)

// listCommand creates the list command showing all tiers of a breakpoint table.
func (c *CLI) listCommand() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the tiers of a breakpoint table",
		Long:  `List shows every tier of a breakpoint table with its minimum width, its exclusive maximum boundary, and the media query matching that tier alone. Without --config the built-in six-tier default table is shown.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			tab, _, err := c.loadTable(configPath)
			if err != nil {
				return err
			}
			return runList(cmd.OutOrStdout(), tab)
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "breakpoint definition file (toml, yaml, or json)")

	return cmd
}

// runList renders the table's tiers as a bordered terminal table.
func runList(w io.Writer, tab *breakpoint.Table) error {
	rows := make([][]string, 0, tab.Len())
	for _, entry := range tab.Entries() {
		max, err := tab.MaxBoundary(entry.Name)
		if err != nil {
			return err
		}
		only, err := tab.RangeOnly(entry.Name)
		if err != nil {
			return err
		}
		rows = append(rows, []string{
			entry.Name,
			mediaquery.FormatPx(entry.MinWidth),
			max.String(),
			exprOrAll(only),
		})
	}

	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("Tier", "Min", "Max", "Only").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return headerStyle
			}
			if col == 0 {
				return StyleHighlight
			}
			return StyleValue
		})

	_, err := fmt.Fprintln(w, t.Render())
	return err
}
