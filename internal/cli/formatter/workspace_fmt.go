package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/linebrief/internal/domain"
	"github.com/alexanderramin/linebrief/internal/workspace"
)

// summaryLabels pairs with the selection's display order.
var summaryLabels = []string{"Brand", "Season", "Department"}

// FormatSummary renders labeled selection values, one per line.
// values must be in brand, season, department order.
func FormatSummary(values []string) string {
	var b strings.Builder
	for i, label := range summaryLabels {
		v := domain.SummaryPlaceholder
		if i < len(values) && values[i] != "" {
			v = values[i]
		}
		b.WriteString(fmt.Sprintf("%s %s\n", Dim(fmt.Sprintf("%-11s", label)), Bold(v)))
	}
	return b.String()
}

// Tab is the minimal tab description FormatTabBar needs.
type Tab struct {
	Label  string
	Active bool
}

// FormatTabBar renders the module tabs on one line, numbered from 1.
func FormatTabBar(tabs []Tab) string {
	parts := make([]string, len(tabs))
	for i, t := range tabs {
		label := fmt.Sprintf("%d %s", i+1, t.Label)
		if t.Active {
			parts[i] = StyleActive.Render(label)
		} else {
			parts[i] = StyleInactive.Render(label)
		}
	}
	return strings.Join(parts, Dim("│"))
}

// FormatModuleView renders a module table followed by its context footer.
func FormatModuleView(v workspace.ModuleView) string {
	headers := make([]string, len(v.Columns))
	for i, c := range v.Columns {
		headers[i] = strings.ToUpper(c.Title)
	}

	rows := make([][]string, 0, len(v.Rows))
	for _, r := range v.Rows {
		cells := make([]string, len(r.Cells))
		for i, c := range r.Cells {
			if i < len(v.Columns) && v.Columns[i].Badge {
				cells[i] = BadgePill(c.Text, c.Severity)
			} else {
				cells[i] = StyleFg.Render(c.Text)
			}
		}
		rows = append(rows, cells)
	}

	var b strings.Builder
	b.WriteString(RenderTable(headers, rows))
	b.WriteString("\n")
	b.WriteString(FormatFooter(v.Footer))
	return b.String()
}

// FormatFooter renders the record count and the selection context pill.
func FormatFooter(f workspace.Footer) string {
	return Dim(f.Label()) + "  " + StylePurple.Render("["+f.Context+"]") + "\n"
}
