package mediaquery

import "github.com/matzehuels/viewport/pkg/breakpoint"

// Builder renders media-query preludes and rule blocks against a fixed
// breakpoint table. It is the stylesheet-facing face of the four range
// operations: up, down, between and only.
//
// A Builder is stateless beyond its table and safe for concurrent use.
type Builder struct {
	table *breakpoint.Table
}

// NewBuilder returns a Builder bound to the given table. A nil table binds
// to [breakpoint.Default].
func NewBuilder(t *breakpoint.Table) *Builder {
	if t == nil {
		t = breakpoint.Default()
	}
	return &Builder{table: t}
}

// Table returns the table the builder is bound to.
func (b *Builder) Table() *breakpoint.Table { return b.table }

// Up returns the @media prelude matching name's tier and larger, or the
// empty string when the range is unconditional (the smallest tier).
func (b *Builder) Up(name string) (string, error) {
	r, err := b.table.RangeUp(name)
	if err != nil {
		return "", err
	}
	return Media(r), nil
}

// Down returns the @media prelude matching widths below name's lower edge,
// or the empty string when the range is unconditional.
func (b *Builder) Down(name string) (string, error) {
	r, err := b.table.RangeDown(name)
	if err != nil {
		return "", err
	}
	return Media(r), nil
}

// Between returns the @media prelude spanning lower's lower edge up to just
// below upper's lower edge, with the table's end-degradation rules applied.
func (b *Builder) Between(lower, upper string) (string, error) {
	r, err := b.table.RangeBetween(lower, upper)
	if err != nil {
		return "", err
	}
	return Media(r), nil
}

// Only returns the @media prelude matching exactly name's tier.
func (b *Builder) Only(name string) (string, error) {
	r, err := b.table.RangeOnly(name)
	if err != nil {
		return "", err
	}
	return Media(r), nil
}

// UpBlock renders rules scoped to name's tier and larger. Rules for the
// smallest tier come back bare, exactly as passed in.
func (b *Builder) UpBlock(name, rules string) (string, error) {
	r, err := b.table.RangeUp(name)
	if err != nil {
		return "", err
	}
	return Block(r, rules), nil
}

// DownBlock renders rules scoped to widths below name's lower edge.
func (b *Builder) DownBlock(name, rules string) (string, error) {
	r, err := b.table.RangeDown(name)
	if err != nil {
		return "", err
	}
	return Block(r, rules), nil
}

// BetweenBlock renders rules scoped to the window between two tiers.
func (b *Builder) BetweenBlock(lower, upper, rules string) (string, error) {
	r, err := b.table.RangeBetween(lower, upper)
	if err != nil {
		return "", err
	}
	return Block(r, rules), nil
}

// OnlyBlock renders rules scoped to exactly name's tier.
func (b *Builder) OnlyBlock(name, rules string) (string, error) {
	r, err := b.table.RangeOnly(name)
	if err != nil {
		return "", err
	}
	return Block(r, rules), nil
}
