package scale

import (
	"bytes"
	"math"

	svg "github.com/ajstarks/svgo"

	"github.com/matzehuels/viewport/pkg/breakpoint"
	"github.com/matzehuels/viewport/pkg/errors"
	"github.com/matzehuels/viewport/pkg/mediaquery"
)

const (
	defaultWidth  = 960
	defaultHeight = 140
	defaultTitle  = "Viewport breakpoints"

	// Horizontal tail reserved for the open-ended top band when no
	// explicit maximum is configured.
	openBandTail = 200.0

	marginX  = 32
	tickStem = 6
	labelPad = 6
)

const (
	axisStyle = "stroke:#333;stroke-width:1"
	tickStyle = "stroke:#666;stroke-width:1"
	nameStyle = "font-family:Helvetica,Arial,sans-serif;font-size:13px;font-weight:bold;fill:#333"
	pxStyle   = "text-anchor:middle;font-family:Helvetica,Arial,sans-serif;font-size:11px;fill:#666"
)

// bandPalette is cycled across tiers from narrowest to widest.
var bandPalette = []string{
	"#e9f2fb", "#d3e5f6", "#bcd8f1", "#a5cbec", "#8ebee7", "#77b1e2",
}

type Option func(*renderer)

type renderer struct {
	width    int
	height   int
	maxWidth float64
	title    string
}

// WithWidth sets the canvas width in pixels.
func WithWidth(w int) Option { return func(r *renderer) { r.width = w } }

// WithHeight sets the canvas height in pixels.
func WithHeight(h int) Option { return func(r *renderer) { r.height = h } }

// WithTitle sets the SVG document title.
func WithTitle(t string) Option { return func(r *renderer) { r.title = t } }

// WithMaxWidth sets the right edge of the ruler in CSS pixels. It must
// exceed the largest tier's minimum width. When unset, the ruler extends
// a fixed tail beyond the largest minimum so the open-ended band stays
// visible.
func WithMaxWidth(px float64) Option { return func(r *renderer) { r.maxWidth = px } }

// Render draws the table as a horizontal ruler: one colored band per
// tier, a tick at every minimum width, and labels for tier names and
// pixel values. A nil table renders [breakpoint.Default]. The output is
// deterministic for a given table and option set.
func Render(t *breakpoint.Table, opts ...Option) ([]byte, error) {
	if t == nil {
		t = breakpoint.Default()
	}
	r := newRenderer(opts...)

	if r.width <= 2*marginX {
		return nil, errors.New(errors.ErrCodeInvalidWidth, "scale canvas width is too small")
	}
	if r.height < 70 {
		return nil, errors.New(errors.ErrCodeInvalidWidth, "scale canvas height is too small")
	}

	entries := t.Entries()
	last := entries[len(entries)-1]
	maxPx := r.maxWidth
	if maxPx == 0 {
		maxPx = last.MinWidth + openBandTail
	}
	if maxPx <= last.MinWidth {
		return nil, errors.New(errors.ErrCodeInvalidWidth, "scale maximum must exceed the largest tier minimum")
	}

	innerW := r.width - 2*marginX
	xAt := func(px float64) int {
		return marginX + int(math.Round(px/maxPx*float64(innerW)))
	}

	bandTop := r.height * 2 / 5
	bandH := r.height * 2 / 7
	axisY := bandTop + bandH
	nameY := bandTop - 10
	pxY := axisY + 22

	var buf bytes.Buffer
	canvas := svg.New(&buf)
	canvas.Start(r.width, r.height)
	canvas.Title(r.title)

	for i, e := range entries {
		x0 := xAt(e.MinWidth)
		x1 := r.width - marginX
		if i+1 < len(entries) {
			x1 = xAt(entries[i+1].MinWidth)
		}
		color := bandPalette[i%len(bandPalette)]
		canvas.Rect(x0, bandTop, x1-x0, bandH, "fill:"+color+";stroke:#4a708f;stroke-width:1")
	}

	canvas.Line(marginX, axisY, r.width-marginX, axisY, axisStyle)

	for _, e := range entries {
		x := xAt(e.MinWidth)
		canvas.Line(x, bandTop-tickStem, x, axisY+tickStem, tickStyle)
		canvas.Text(x, pxY, mediaquery.FormatPx(e.MinWidth), pxStyle)
		canvas.Text(x+labelPad, nameY, e.Name, nameStyle)
	}

	canvas.End()
	return buf.Bytes(), nil
}

func newRenderer(opts ...Option) renderer {
	r := renderer{width: defaultWidth, height: defaultHeight, title: defaultTitle}
	for _, opt := range opts {
		opt(&r)
	}
	return r
}
