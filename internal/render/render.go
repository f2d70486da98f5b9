// Package render owns the human-readable presentation of detection results
// for the cyclo binary: verdict lines, the witness cycle, adjacency-matrix
// dumps and section banners, optionally styled with lipgloss on interactive
// terminals. The wording of the verdict lines is a contract; styling only
// ever wraps it.
package render

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/katalvlaran/cyclo/digraph"
	"github.com/katalvlaran/cyclo/kahn"
)

// Verdict wording, fixed across styled and plain output.
const (
	reportEmpty   = "Graph is empty."
	reportAcyclic = "Graph is ACYCLIC."
	reportCyclic  = "Graph is CYCLIC."
	cyclePrefix   = "Vertices in a cycle: "
)

var (
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205"))
	sectionStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39"))

	acyclicStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	cyclicStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true)
	emptyStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("244"))
)

// Report renders the verdict of one detection run. Cyclic results carry a
// second line with the witness cycle as an arrow-joined closed walk. The
// returned string has no trailing newline.
func Report(res *kahn.Result, styled bool) string {
	if res == nil {
		return ""
	}

	switch res.Verdict {
	case kahn.VerdictEmpty:
		return stylize(emptyStyle, reportEmpty, styled)
	case kahn.VerdictAcyclic:
		return stylize(acyclicStyle, reportAcyclic, styled)
	default:
		var b strings.Builder
		b.WriteString(stylize(cyclicStyle, reportCyclic, styled))
		b.WriteByte('\n')
		b.WriteString(cyclePrefix)
		b.WriteString(stylize(titleStyle, kahn.FormatCycle(res.Cycle), styled))

		return b.String()
	}
}

// Matrix renders the adjacency dump of g — header, 0/1 rows, separator —
// emphasizing the header line when styled. No trailing newline.
func Matrix(g *digraph.Digraph, styled bool) string {
	if g == nil {
		return ""
	}

	dump := strings.TrimSuffix(g.String(), "\n")
	if !styled {
		return dump
	}

	lines := strings.SplitN(dump, "\n", 2)
	lines[0] = sectionStyle.Render(lines[0])

	return strings.Join(lines, "\n")
}

// Section renders a "--- title ---" banner line.
func Section(title string, styled bool) string {
	return stylize(sectionStyle, fmt.Sprintf("--- %s ---", title), styled)
}

// stylize applies st only when styled output is wanted.
func stylize(st lipgloss.Style, s string, styled bool) string {
	if !styled {
		return s
	}

	return st.Render(s)
}
