package render

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/lox/betnumbers/internal/tables"
)

// DescribeOptions control the describe table.
type DescribeOptions struct {
	Format  Format
	NoColor bool
}

type styles struct {
	header   lipgloss.Style
	category lipgloss.Style
	tag      lipgloss.Style
	id       lipgloss.Style
}

func newStyles(w io.Writer, noColor bool) styles {
	r := lipgloss.NewRenderer(w)
	if noColor {
		r.SetColorProfile(termenv.Ascii)
	}
	return styles{
		header:   r.NewStyle().Bold(true).Foreground(lipgloss.Color("15")),
		category: r.NewStyle().Foreground(lipgloss.Color("12")),
		tag:      r.NewStyle().Foreground(lipgloss.Color("11")),
		id:       r.NewStyle().Foreground(lipgloss.Color("10")),
	}
}

// Describe writes a table of entries: game, category, row, tag, what the row
// covers, and its bet number.
func Describe(w io.Writer, entries []tables.Entry, opts DescribeOptions) error {
	st := newStyles(w, opts.NoColor)
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)

	fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\n",
		st.header.Render("game"),
		st.header.Render("category"),
		st.header.Render("row"),
		st.header.Render("tag"),
		st.header.Render("covers"),
		st.header.Render("bet number"))

	for _, e := range entries {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\n",
			e.Game,
			st.category.Render(e.Category),
			e.Row.Label,
			st.tag.Render(strconv.Itoa(e.Tag)),
			covers(e),
			st.id.Render(Identifier(e.ID, opts.Format)))
	}
	return tw.Flush()
}

func covers(e tables.Entry) string {
	if e.Layout == tables.LayoutTotal {
		return "total " + strconv.Itoa(e.Row.Total)
	}
	parts := make([]string, len(e.Row.Positions))
	for i, p := range e.Row.Positions {
		parts[i] = strconv.Itoa(p)
	}
	return strings.Join(parts, ",")
}
