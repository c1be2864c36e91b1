// Package workspace turns a module's static records into a renderable table.
// Nothing here touches the terminal; formatter.FormatModuleView draws the result.
package workspace

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/linebrief/internal/domain"
)

// ContextSeparator joins selection values in the footer pill.
const ContextSeparator = " · "

// ContextPending is shown in the footer when nothing is selected.
const ContextPending = "Context pending"

// Column describes one column of a module table.
type Column struct {
	Key   string
	Title string
	Badge bool // cell is rendered as a severity badge
}

// Cell is one rendered value. Severity is set only for badge columns.
type Cell struct {
	Text     string
	Severity domain.BadgeSeverity
}

type Row struct {
	Cells []Cell
}

// Footer summarizes what the table shows.
type Footer struct {
	Count   int
	Context string
}

// Label returns the record-count caption.
func (f Footer) Label() string {
	return fmt.Sprintf("Showing %d records", f.Count)
}

// ModuleView is the complete renderable tree for one module.
type ModuleView struct {
	Module  domain.ModuleKey
	Columns []Column
	Rows    []Row
	Footer  Footer
}

// ColumnKeys returns the column keys in order.
func (v ModuleView) ColumnKeys() []string {
	keys := make([]string, len(v.Columns))
	for i, c := range v.Columns {
		keys[i] = c.Key
	}
	return keys
}

var schemas = map[domain.ModuleKey][]Column{
	domain.ModuleArticle: {
		{Key: "style", Title: "Style"},
		{Key: "category", Title: "Category"},
		{Key: "status", Title: "Status", Badge: true},
		{Key: "milestone", Title: "Milestone"},
	},
	domain.ModuleMaterials: {
		{Key: "name", Title: "Name"},
		{Key: "composition", Title: "Composition"},
		{Key: "supplier", Title: "Supplier"},
		{Key: "status", Title: "Status", Badge: true},
	},
	domain.ModuleColors: {
		{Key: "color", Title: "Color"},
		{Key: "code", Title: "Code"},
		{Key: "finish", Title: "Finish"},
		{Key: "approval", Title: "Approval", Badge: true},
	},
	domain.ModuleCalendar: {
		{Key: "milestone", Title: "Milestone"},
		{Key: "owner", Title: "Owner"},
		{Key: "dueDate", Title: "Due Date"},
		{Key: "status", Title: "Status", Badge: true},
	},
}

// Columns returns the fixed column schema for key.
func Columns(key domain.ModuleKey) ([]Column, bool) {
	cols, ok := schemas[key]
	if !ok {
		return nil, false
	}
	out := make([]Column, len(cols))
	copy(out, cols)
	return out, true
}

// RenderModule builds the table for key from records and the current
// selection. It returns false for an unknown module. Records belonging to a
// different module are skipped.
func RenderModule(key domain.ModuleKey, records []domain.Record, sel domain.Selection) (ModuleView, bool) {
	cols, ok := Columns(key)
	if !ok {
		return ModuleView{}, false
	}

	rows := make([]Row, 0, len(records))
	for _, r := range records {
		if r == nil || r.Module() != key {
			continue
		}
		rows = append(rows, buildRow(cols, r))
	}

	return ModuleView{
		Module:  key,
		Columns: cols,
		Rows:    rows,
		Footer: Footer{
			Count:   len(rows),
			Context: ContextLine(sel),
		},
	}, true
}

func buildRow(cols []Column, r domain.Record) Row {
	fields := r.Fields()
	cells := make([]Cell, len(cols))
	for i, c := range cols {
		if i < len(fields) {
			cells[i].Text = fields[i]
		}
		if c.Badge {
			cells[i].Severity = r.Severity()
		}
	}
	return Row{Cells: cells}
}

// ContextLine joins the non-empty selection values, or returns ContextPending.
func ContextLine(sel domain.Selection) string {
	if sel.IsEmpty() {
		return ContextPending
	}
	return strings.Join(sel.SetValues(), ContextSeparator)
}
