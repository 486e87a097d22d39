package mediaquery

import (
	"fmt"
	"io"
	"strings"

	"github.com/matzehuels/viewport/pkg/breakpoint"
)

// Wrap writes the output of body inside an @media block for the given
// range. When the range is fully unbounded the body is written bare, with
// no wrapping at all, so unconditional rules stay unconditional.
//
// Wrap streams: the body's output is not re-indented. Use [Block] when the
// rules are already in hand and indented output is wanted.
func Wrap(w io.Writer, r breakpoint.Range, body func(io.Writer) error) error {
	prelude := Media(r)
	if prelude == "" {
		return body(w)
	}
	if _, err := fmt.Fprintf(w, "%s {\n", prelude); err != nil {
		return err
	}
	if err := body(w); err != nil {
		return err
	}
	_, err := io.WriteString(w, "}\n")
	return err
}

// Block renders rules scoped to the given range: wrapped in an @media block
// and indented by two spaces, or returned bare (newline-terminated) when
// the range is fully unbounded. The rules' own trailing newlines are
// normalized to one.
func Block(r breakpoint.Range, rules string) string {
	rules = strings.TrimRight(rules, "\n")
	prelude := Media(r)
	if prelude == "" {
		return rules + "\n"
	}

	var b strings.Builder
	b.WriteString(prelude)
	b.WriteString(" {\n")
	for _, line := range strings.Split(rules, "\n") {
		if line != "" {
			b.WriteString("  ")
			b.WriteString(line)
		}
		b.WriteByte('\n')
	}
	b.WriteString("}\n")
	return b.String()
}
