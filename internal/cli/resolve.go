package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/matzehuels/viewport/pkg/breakpoint"
)

// resolveReport is the JSON form of a resolved tier. Boundary fields are
// null when the corresponding side is unbounded; expression fields hold
// "all" when the range is unconditional.
type resolveReport struct {
	Name        string   `json:"name"`
	MinBoundary *float64 `json:"min_boundary"`
	MaxBoundary *float64 `json:"max_boundary"`
	Next        string   `json:"next,omitempty"`
	Infix       string   `json:"infix"`
	Up          string   `json:"up"`
	Down        string   `json:"down"`
	Only        string   `json:"only"`
	Between     string   `json:"between,omitempty"`
}

// resolveCommand creates the resolve command for inspecting a single tier.
func (c *CLI) resolveCommand() *cobra.Command {
	var configPath, between string
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "resolve <name>",
		Short: "Resolve a tier's boundaries and media query expressions",
		Long:  `Resolve looks up one tier by name and reports its media query boundaries together with the up, down, and only range expressions. With --between it also reports the span from the tier up to a second tier.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tab, _, err := c.loadTable(configPath)
			if err != nil {
				return err
			}
			return runResolve(cmd.OutOrStdout(), tab, args[0], between, asJSON)
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "breakpoint definition file (toml, yaml, or json)")
	cmd.Flags().StringVar(&between, "between", "", "also resolve the span from <name> up through this tier")
	cmd.Flags().BoolVar(&asJSON, "json", false, "emit the result as JSON")

	return cmd
}

// runResolve resolves every boundary and range for one tier and prints the
// result as a key-value block or as JSON.
func runResolve(w io.Writer, tab *breakpoint.Table, name, between string, asJSON bool) error {
	minb, err := tab.MinBoundary(name)
	if err != nil {
		return err
	}
	maxb, err := tab.MaxBoundary(name)
	if err != nil {
		return err
	}
	next, err := tab.Next(name)
	if err != nil {
		return err
	}
	infix, err := tab.Infix(name)
	if err != nil {
		return err
	}
	up, err := tab.RangeUp(name)
	if err != nil {
		return err
	}
	down, err := tab.RangeDown(name)
	if err != nil {
		return err
	}
	only, err := tab.RangeOnly(name)
	if err != nil {
		return err
	}

	report := resolveReport{
		Name:  name,
		Next:  next,
		Infix: infix,
		Up:    exprOrAll(up),
		Down:  exprOrAll(down),
		Only:  exprOrAll(only),
	}
	if px, ok := minb.Value(); ok {
		report.MinBoundary = &px
	}
	if px, ok := maxb.Value(); ok {
		report.MaxBoundary = &px
	}
	if between != "" {
		span, err := tab.RangeBetween(name, between)
		if err != nil {
			return err
		}
		report.Between = exprOrAll(span)
	}

	if asJSON {
		data, err := json.MarshalIndent(report, "", "  ")
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(w, string(data))
		return err
	}

	printKeyValue(w, "tier", report.Name)
	printKeyValue(w, "min", minb.String())
	printKeyValue(w, "max", maxb.String())
	if report.Next != "" {
		printKeyValue(w, "next", report.Next)
	}
	if report.Infix != "" {
		printKeyValue(w, "infix", report.Infix)
	}
	printKeyValue(w, "up", report.Up)
	printKeyValue(w, "down", report.Down)
	printKeyValue(w, "only", report.Only)
	if report.Between != "" {
		printKeyValue(w, "between", report.Between)
	}
	return nil
}
