package cli

import (
	"fmt"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/matzehuels/viewport/pkg/breakpoint"
	"github.com/matzehuels/viewport/pkg/errors"
	"github.com/matzehuels/viewport/pkg/mediaquery"
	"github.com/matzehuels/viewport/pkg/term"
)

// Width step sizes for the preview simulator.
const (
	widthStepCoarse = 10 // left/right arrows
	widthStepFine   = 1  // up/down arrows
)

// previewStartWidth is used when the middle tier starts at 0, which only
// happens for single-tier tables.
const previewStartWidth = 320

// previewCommand creates the preview command, an interactive width simulator.
func (c *CLI) previewCommand() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "preview",
		Short: "Interactively preview tiers across viewport widths",
		Long:  `Preview opens an interactive simulator that sweeps a virtual viewport width across the breakpoint table and shows which tier is active and which up, down, and only ranges match at that width.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !term.IsTerminal(os.Stdout) {
				return errors.New(errors.ErrCodeUnsupported, "preview requires an interactive terminal")
			}
			tab, _, err := c.loadTable(configPath)
			if err != nil {
				return err
			}
			m, err := newPreviewModel(tab)
			if err != nil {
				return err
			}
			p := tea.NewProgram(m)
			_, err = p.Run()
			return err
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "breakpoint definition file (toml, yaml, or json)")

	return cmd
}

// =============================================================================
// PreviewModel - Interactive width simulation
// =============================================================================

// previewRow holds one tier's precomputed ranges for match display.
type previewRow struct {
	name string
	up   breakpoint.Range
	down breakpoint.Range
	only breakpoint.Range
}

// previewModel is the bubbletea model for the width simulator.
type previewModel struct {
	table *breakpoint.Table
	rows  []previewRow
	width int
}

// newPreviewModel precomputes the range rows and starts the simulated
// width at the middle tier's minimum.
func newPreviewModel(tab *breakpoint.Table) (previewModel, error) {
	entries := tab.Entries()
	rows := make([]previewRow, 0, len(entries))
	for _, entry := range entries {
		up, err := tab.RangeUp(entry.Name)
		if err != nil {
			return previewModel{}, err
		}
		down, err := tab.RangeDown(entry.Name)
		if err != nil {
			return previewModel{}, err
		}
		only, err := tab.RangeOnly(entry.Name)
		if err != nil {
			return previewModel{}, err
		}
		rows = append(rows, previewRow{name: entry.Name, up: up, down: down, only: only})
	}

	width := int(entries[len(entries)/2].MinWidth)
	if width <= 0 {
		width = previewStartWidth
	}
	return previewModel{table: tab, rows: rows, width: width}, nil
}

func (m previewModel) Init() tea.Cmd {
	return nil
}

func (m previewModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "left", "h":
			m.width -= widthStepCoarse
		case "right", "l":
			m.width += widthStepCoarse
		case "down", "j":
			m.width -= widthStepFine
		case "up", "k":
			m.width += widthStepFine
		}
		if m.width < 0 {
			m.width = 0
		}
	}
	return m, nil
}

func (m previewModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Viewport Preview"))
	b.WriteString("\n")
	b.WriteString(StyleDim.Render("←/→ ±10px  ↑/↓ ±1px  q quit"))
	b.WriteString("\n\n")

	width := float64(m.width)
	active, err := m.table.TierFor(width)
	if err != nil {
		return err.Error()
	}

	b.WriteString("  width ")
	b.WriteString(StyleNumber.Render(mediaquery.FormatPx(width)))
	b.WriteString(StyleDim.Render("  tier "))
	b.WriteString(StyleHighlight.Render(active.Name))
	b.WriteString("\n\n")

	b.WriteString("  " + StyleDim.Render(fmt.Sprintf("%-12s %-5s %-5s %-5s", "tier", "up", "down", "only")) + "\n")
	var activeOnly breakpoint.Range
	for _, row := range m.rows {
		name := fmt.Sprintf("%-12s", row.name)
		if row.name == active.Name {
			name = StyleHighlight.Render(name)
			activeOnly = row.only
		} else {
			name = StyleValue.Render(name)
		}
		b.WriteString("  " + name + " " + markerCell(row.up, width) + " " + markerCell(row.down, width) + " " + markerCell(row.only, width) + "\n")
	}

	b.WriteString("\n  " + StyleDim.Render("only: "+exprOrAll(activeOnly)) + "\n")

	return b.String()
}

// markerCell renders a fixed-width match marker for one range at the
// simulated width.
func markerCell(r breakpoint.Range, width float64) string {
	pad := strings.Repeat(" ", 4)
	if r.Contains(width) {
		return StyleSuccess.Render(iconSuccess) + pad
	}
	return StyleDim.Render(iconMiss) + pad
}
