// # internal/report/console.go
package report

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/lipgloss"

	"displaylint/internal/rules"
)

var (
	fileStyle     = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("81"))
	positionStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("243"))
	warnStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
	errorStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	ruleStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("243")).Italic(true)
	okStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("42")).Bold(true)
	summaryStyle  = lipgloss.NewStyle().Bold(true)
)

// Summary describes one completed lint pass.
type Summary struct {
	FilesScanned int
	FilesFailed  int
	Duration     time.Duration
}

// WriteConsole renders diagnostics grouped by file, followed by a one-line
// summary.
func WriteConsole(w io.Writer, diagnostics []rules.Diagnostic, summary Summary) {
	byFile := make(map[string][]rules.Diagnostic)
	var order []string
	for _, d := range diagnostics {
		file := d.Span.Start.File
		if _, seen := byFile[file]; !seen {
			order = append(order, file)
		}
		byFile[file] = append(byFile[file], d)
	}

	for _, file := range order {
		fmt.Fprintln(w, fileStyle.Render(file))
		for _, d := range byFile[file] {
			level := warnStyle.Render(string(d.Severity))
			if d.Severity == rules.SeverityError {
				level = errorStyle.Render(string(d.Severity))
			}
			fmt.Fprintf(w, "  %s  %s  %s  %s\n",
				positionStyle.Render(fmt.Sprintf("%d:%d", d.Span.Start.Line, d.Span.Start.Column)),
				level,
				d.Message,
				ruleStyle.Render(d.Rule),
			)
		}
		fmt.Fprintln(w)
	}

	if len(diagnostics) == 0 {
		fmt.Fprintln(w, okStyle.Render("✓ no problems found"))
	} else {
		fmt.Fprintln(w, summaryStyle.Render(fmt.Sprintf("✗ %d problem(s)", len(diagnostics))))
	}
	fmt.Fprintf(w, "%d file(s) scanned", summary.FilesScanned)
	if summary.FilesFailed > 0 {
		fmt.Fprintf(w, ", %d failed to parse", summary.FilesFailed)
	}
	if summary.Duration > 0 {
		fmt.Fprintf(w, " in %s", summary.Duration.Round(time.Millisecond))
	}
	fmt.Fprintln(w)
}
