package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/muesli/termenv"
)

const arrow = " -> "

// view holds the styles of one command's output stream.
type view struct {
	w      io.Writer
	header lipgloss.Style
	label  lipgloss.Style
	ok     lipgloss.Style
	fail   lipgloss.Style
	subtle lipgloss.Style
	border lipgloss.Style
}

// newView binds styles to w. Colour follows w's terminal capabilities
// unless noColor forces plain ASCII.
func newView(w io.Writer, noColor bool) *view {
	r := lipgloss.NewRenderer(w)
	if noColor {
		r.SetColorProfile(termenv.Ascii)
	}
	return &view{
		w:      w,
		header: r.NewStyle().Foreground(lipgloss.Color("205")).Bold(true),
		label:  r.NewStyle().Bold(true).Width(10),
		ok:     r.NewStyle().Foreground(lipgloss.Color("42")),
		fail:   r.NewStyle().Foreground(lipgloss.Color("196")),
		subtle: r.NewStyle().Foreground(lipgloss.Color("241")),
		border: r.NewStyle().Foreground(lipgloss.Color("63")),
	}
}

func (v *view) section(title string) {
	fmt.Fprintln(v.w, v.header.Render(title))
}

func (v *view) field(name, value string) {
	fmt.Fprintf(v.w, "  %s %s\n", v.label.Render(name+":"), value)
}

func (v *view) blank() {
	fmt.Fprintln(v.w)
}

// verdict renders a yes/no figure in ok or fail colour.
func (v *view) verdict(good bool, text string) string {
	if good {
		return v.ok.Render(text)
	}
	return v.fail.Render(text)
}

// table renders rows under headers with a rounded border.
func (v *view) table(headers []string, rows [][]string) {
	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(v.border).
		Headers(headers...).
		Rows(rows...)
	fmt.Fprintln(v.w, t.Render())
}

func joinPath(path []string) string {
	if len(path) == 0 {
		return "(none)"
	}
	return strings.Join(path, arrow)
}

// splitIterations cuts the concatenated IDS order back into one trail per
// bound using each iteration's visit count.
func splitIterations(order []string, counts []int) [][]string {
	out := make([][]string, 0, len(counts))
	off := 0
	for _, n := range counts {
		if off+n > len(order) {
			break
		}
		out = append(out, order[off:off+n])
		off += n
	}
	return out
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}

func depthString(d int) string {
	if d < 0 {
		return "-"
	}
	return fmt.Sprint(d)
}
