package pipeline

import (
	"bytes"
	"encoding/json"

	"github.com/matzehuels/viewport/pkg/breakpoint"
	"github.com/matzehuels/viewport/pkg/errors"
	"github.com/matzehuels/viewport/pkg/mediaquery"
	"github.com/matzehuels/viewport/pkg/scale"
)

// renderFormat generates one artifact from the table.
func renderFormat(table *breakpoint.Table, format, prefix, scssVar string) ([]byte, error) {
	var data []byte
	var err error

	switch format {
	case FormatCSS:
		data, err = renderCSS(table, prefix)
	case FormatSCSS:
		data, err = renderSCSS(table, scssVar)
	case FormatJSON:
		data, err = renderJSON(table)
	case FormatSVG:
		data, err = scale.Render(table)
	default:
		return nil, ValidateFormat(format)
	}

	if err != nil {
		code := errors.GetCode(err)
		if code == "" {
			code = errors.ErrCodeInternal
		}
		return nil, errors.Wrap(code, err, "rendering %s", format)
	}
	return data, nil
}

// renderCSS emits custom properties followed by custom media queries, so
// one file serves both var() consumers and @custom-media tooling.
func renderCSS(table *breakpoint.Table, prefix string) ([]byte, error) {
	var buf bytes.Buffer
	if err := mediaquery.WriteCustomProperties(&buf, table, prefix); err != nil {
		return nil, err
	}
	buf.WriteString("\n")
	if err := mediaquery.WriteCustomMedia(&buf, table, prefix); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func renderSCSS(table *breakpoint.Table, scssVar string) ([]byte, error) {
	var buf bytes.Buffer
	if err := mediaquery.WriteSCSSMap(&buf, table, scssVar); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// jsonTier is one tier in the JSON artifact. MaxWidth is null for tiers
// with no upper bound.
type jsonTier struct {
	Name      string   `json:"name"`
	MinWidth  float64  `json:"min_width"`
	MaxWidth  *float64 `json:"max_width"`
	MediaOnly string   `json:"media_only"`
}

// jsonDocument is the top-level JSON artifact.
type jsonDocument struct {
	Epsilon float64    `json:"epsilon"`
	Tiers   []jsonTier `json:"tiers"`
}

// renderJSON emits the table as an ordered tier array. Output is stable
// for a given table, so it can be diffed and golden-tested.
func renderJSON(table *breakpoint.Table) ([]byte, error) {
	doc := jsonDocument{
		Epsilon: table.Epsilon(),
		Tiers:   make([]jsonTier, 0, table.Len()),
	}

	for _, entry := range table.Entries() {
		maxb, err := table.MaxBoundary(entry.Name)
		if err != nil {
			return nil, err
		}
		only, err := table.RangeOnly(entry.Name)
		if err != nil {
			return nil, err
		}

		tier := jsonTier{
			Name:      entry.Name,
			MinWidth:  entry.MinWidth,
			MediaOnly: mediaquery.Expr(only),
		}
		if px, ok := maxb.Value(); ok {
			tier.MaxWidth = &px
		}
		doc.Tiers = append(doc.Tiers, tier)
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "encoding tier document")
	}
	return append(data, '\n'), nil
}
