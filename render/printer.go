// Package render prints solved strategies.
//
// The text layout mirrors the classic puzzle write-up: an indented decision
// tree for the sequential mode and a code matrix plus round list for the
// static mode. Documents holds the same data as YAML.
package render

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/katalvlaran/coinweigh/coins"
	"github.com/katalvlaran/coinweigh/sequential"
	"github.com/katalvlaran/coinweigh/ternary"
)

// Printer writes text output to an io.Writer.
type Printer struct {
	w      io.Writer
	styles Styles
}

// Option configures a Printer.
type Option func(*Printer)

// WithColor enables ANSI styling.
func WithColor(enabled bool) Option {
	return func(p *Printer) {
		p.styles = NewStyles(p.w, enabled)
	}
}

// NewPrinter returns a plain-text printer for w.
func NewPrinter(w io.Writer, opts ...Option) *Printer {
	p := &Printer{w: w}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Sequential prints the decision tree of res, one weighing per line:
//
//	    ( 1  2  3  4 |  5  6  7  8) [8, 9, 8]
//	        +( 1  2  5 |  3  4  6) [3, 2, 3]
//	            +( 1 |  2) [1, 1, 1]  1+,  6-,  2+
//
// Each level indents by four spaces; the branch sign says which outcome
// leads there. Sizes count the hypotheses left after each outcome, and the
// trailing labels name the answer of every child that ends the search.
func (p *Printer) Sequential(res sequential.Result) error {
	var b strings.Builder
	fmt.Fprintf(&b, "%s\n\n", p.styles.paint(p.styles.Title, fmt.Sprintf("Weigh strategy for %d coins:", res.Coins)))
	for _, ev := range res.Trace() {
		b.WriteString(p.event(ev))
		b.WriteByte('\n')
	}
	_, err := io.WriteString(p.w, b.String())
	return err
}

func (p *Printer) event(ev sequential.Event) string {
	var b strings.Builder
	b.WriteString(strings.Repeat("    ", ev.Depth))
	if n := len(ev.Path); n > 0 {
		o := ev.Path[n-1]
		b.WriteString(p.styles.paint(p.styles.Branch[o], o.Symbol()))
	}
	b.WriteString(pans(ev.Left, ev.Right))
	b.WriteByte(' ')
	b.WriteString(p.styles.paint(p.styles.Sizes, fmt.Sprintf("[%d, %d, %d]", ev.Sizes[0], ev.Sizes[1], ev.Sizes[2])))
	if ev.Terminal() {
		labels := make([]string, len(ev.Labels))
		for i, l := range ev.Labels {
			labels[i] = fmt.Sprintf("%3s", l)
			if l != "" {
				labels[i] = p.styles.paint(p.styles.Label, labels[i])
			}
		}
		b.WriteByte(' ')
		b.WriteString(strings.Join(labels, ", "))
	}
	return strings.TrimRight(b.String(), " ")
}

// Static prints the coin header, the heavy and light code matrices (one
// row per round, first round on top) and the resulting weighings.
func (p *Printer) Static(tbl ternary.Table) error {
	var b strings.Builder
	fmt.Fprintf(&b, "%s\n\n", p.styles.paint(p.styles.Title, fmt.Sprintf("Static weigh strategy for %d coins:", tbl.Coins)))

	row := make([]string, tbl.Coins)
	for c := range row {
		row[c] = fmt.Sprintf("%2d", c+1)
	}
	fmt.Fprintf(&b, "%s\n\n", strings.Join(row, " "))

	for _, block := range []struct {
		outcome coins.Outcome
		codes   []int
	}{
		{coins.LeftHeavy, tbl.Codes},
		{coins.RightHeavy, tbl.LightCodes()},
	} {
		b.WriteString(p.styles.paint(p.styles.Branch[block.outcome], block.outcome.Symbol()))
		b.WriteByte('\n')
		for i := tbl.Weighings - 1; i >= 0; i-- {
			for c, code := range block.codes {
				d := fmt.Sprintf("%2d", ternary.Digit(code, i))
				if d == " 0" {
					d = p.styles.paint(p.styles.Zero, d)
				}
				row[c] = d
			}
			fmt.Fprintf(&b, "%s\n", strings.Join(row, " "))
		}
	}
	b.WriteByte('\n')

	rounds, err := tbl.Schedule()
	if err != nil {
		return err
	}
	for _, r := range rounds {
		fmt.Fprintf(&b, "%s\n", pans(r.Left, r.Right))
	}

	_, err = io.WriteString(p.w, b.String())
	return err
}

// Summary prints the closing line with the number of weighings and the
// time spent solving.
func (p *Printer) Summary(weighings int, elapsed time.Duration) error {
	line := fmt.Sprintf("Required %d weighings. Time: %.3f seconds.", weighings, elapsed.Seconds())
	_, err := fmt.Fprintf(p.w, "\n%s\n", p.styles.paint(p.styles.Summary, line))
	return err
}

// pans formats "( 1  2 |  3  4)".
func pans(left, right []int) string {
	return "(" + coinList(left) + " | " + coinList(right) + ")"
}

func coinList(cs []int) string {
	parts := make([]string, len(cs))
	for i, c := range cs {
		parts[i] = fmt.Sprintf("%2d", c)
	}
	return strings.Join(parts, " ")
}
