// Package report renders MST and edge-swap results as human-readable text.
//
// Styling goes through a lipgloss renderer bound to the output writer, so
// colours are used only when the writer is a capable terminal. Tests pin the
// colour profile to termenv.Ascii to get plain, byte-stable output.
package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/katalvlaran/mstswap/core"
	"github.com/katalvlaran/mstswap/dsu"
)

const ruleWidth = 60

// Option configures a Printer.
type Option func(*Printer)

// WithColorProfile forces the colour profile instead of detecting it from the writer.
func WithColorProfile(p termenv.Profile) Option {
	return func(pr *Printer) { pr.r.SetColorProfile(p) }
}

// Printer writes report sections to an io.Writer.
type Printer struct {
	w io.Writer
	r *lipgloss.Renderer

	title   lipgloss.Style
	heading lipgloss.Style
	good    lipgloss.Style
	bad     lipgloss.Style
	dim     lipgloss.Style
}

// New returns a Printer writing to w.
func New(w io.Writer, opts ...Option) *Printer {
	p := &Printer{w: w, r: lipgloss.NewRenderer(w)}
	for _, opt := range opts {
		opt(p)
	}
	p.title = p.r.NewStyle().Bold(true).Foreground(lipgloss.Color("#00FF99"))
	p.heading = p.r.NewStyle().Bold(true)
	p.good = p.r.NewStyle().Foreground(lipgloss.Color("#00FF99"))
	p.bad = p.r.NewStyle().Foreground(lipgloss.Color("#FF5F87"))
	p.dim = p.r.NewStyle().Foreground(lipgloss.Color("#AAAAAA"))

	return p
}

// Banner prints a framed title.
func (p *Printer) Banner(text string) {
	rule := strings.Repeat("═", ruleWidth-1)
	p.println(p.title.Render(rule))
	p.println(p.title.Render("  " + text))
	p.println(p.title.Render(rule))
}

// Section prints a blank line followed by a ruled heading.
func (p *Printer) Section(title string) {
	rule := strings.Repeat("─", ruleWidth)
	p.println("")
	p.println(p.dim.Render(rule))
	p.println(p.heading.Render(title))
	p.println(p.dim.Render(rule))
}

// Linef prints one unstyled line.
func (p *Printer) Linef(format string, args ...any) {
	p.println(fmt.Sprintf(format, args...))
}

// Good prints one line in the success style.
func (p *Printer) Good(format string, args ...any) {
	p.println(p.good.Render(fmt.Sprintf(format, args...)))
}

// Bad prints one line in the failure style.
func (p *Printer) Bad(format string, args ...any) {
	p.println(p.bad.Render(fmt.Sprintf(format, args...)))
}

// GraphInfo prints the vertex and edge counts of g.
func (p *Printer) GraphInfo(g *core.Graph) {
	p.println("")
	p.Linef("Graph: %d vertices, %d edges", g.Vertices(), g.EdgeCount())
}

// Edges prints title, one edge per line, and the total weight.
func (p *Printer) Edges(title string, edges []core.Edge, total int64) {
	p.println(p.heading.Render(title))
	for _, e := range edges {
		p.println("  " + e.String())
	}
	p.Linef("Total weight: %d", total)
}

// Components prints each set of ds on its own line, ordered by smallest member.
func (p *Printer) Components(ds *dsu.DisjointSet) {
	for i, group := range ds.Groups() {
		p.Linef("Component %d: %v", i+1, group)
	}
}

func (p *Printer) println(s string) {
	fmt.Fprintln(p.w, s)
}
