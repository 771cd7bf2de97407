package cmd

import (
	"io"
	"strings"

	runewidth "github.com/mattn/go-runewidth"
)

// table prints rows with columns padded to their display width, so labels
// with umlauts or CJK text still line up.
type table struct {
	rows [][]string
}

func (t *table) add(cols ...string) {
	t.rows = append(t.rows, cols)
}

func (t *table) widths() []int {
	var w []int
	for _, row := range t.rows {
		for i, c := range row {
			if i >= len(w) {
				w = append(w, 0)
			}
			if n := runewidth.StringWidth(c); n > w[i] {
				w[i] = n
			}
		}
	}
	return w
}

func (t *table) write(out io.Writer) error {
	w := t.widths()
	var b strings.Builder
	for _, row := range t.rows {
		b.Reset()
		for i, c := range row {
			if i == len(row)-1 {
				b.WriteString(c)
				break
			}
			b.WriteString(runewidth.FillRight(c, w[i]))
			b.WriteString("  ")
		}
		b.WriteByte('\n')
		if _, err := io.WriteString(out, b.String()); err != nil {
			return err
		}
	}
	return nil
}
