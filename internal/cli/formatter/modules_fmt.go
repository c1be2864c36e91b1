package formatter

import (
	"strings"

	"github.com/alexanderramin/linebrief/internal/domain"
	"github.com/alexanderramin/linebrief/internal/workspace"
)

// FormatModuleList renders every module key with its column schema.
func FormatModuleList() string {
	headers := []string{"KEY", "TAB", "COLUMNS"}
	rows := make([][]string, 0, len(domain.ModuleKeys))
	for _, k := range domain.ModuleKeys {
		cols, _ := workspace.Columns(k)
		names := make([]string, len(cols))
		for i, c := range cols {
			names[i] = c.Key
			if c.Badge {
				names[i] += StyleDim.Render("(badge)")
			}
		}
		rows = append(rows, []string{
			StyleGreen.Render(string(k)),
			k.Label(),
			strings.Join(names, ", "),
		})
	}
	return RenderTable(headers, rows)
}
