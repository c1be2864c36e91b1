package domain

import "fmt"

// Record is one static row of a workspace module. The concrete type is
// determined by the module it belongs to.
type Record interface {
	Module() ModuleKey
	Severity() BadgeSeverity
	// Fields returns the record's values in the module's column order.
	Fields() []string
}

// ArticleRecord tracks the development stage of a style.
type ArticleRecord struct {
	Style     string
	Category  string
	Status    string
	Milestone string
	Badge     BadgeSeverity
}

func (r ArticleRecord) Module() ModuleKey       { return ModuleArticle }
func (r ArticleRecord) Severity() BadgeSeverity { return r.Badge }
func (r ArticleRecord) Fields() []string {
	return []string{r.Style, r.Category, r.Status, r.Milestone}
}

// MaterialRecord is a nominated fabric or trim.
type MaterialRecord struct {
	Name        string
	Composition string
	Supplier    string
	Status      string
	Badge       BadgeSeverity
}

func (r MaterialRecord) Module() ModuleKey       { return ModuleMaterials }
func (r MaterialRecord) Severity() BadgeSeverity { return r.Badge }
func (r MaterialRecord) Fields() []string {
	return []string{r.Name, r.Composition, r.Supplier, r.Status}
}

// ColorRecord is a colorway and its approval state.
type ColorRecord struct {
	Color    string
	Code     string
	Finish   string
	Approval string
	Badge    BadgeSeverity
}

func (r ColorRecord) Module() ModuleKey       { return ModuleColors }
func (r ColorRecord) Severity() BadgeSeverity { return r.Badge }
func (r ColorRecord) Fields() []string {
	return []string{r.Color, r.Code, r.Finish, r.Approval}
}

// CalendarRecord is a line-calendar milestone.
type CalendarRecord struct {
	Milestone string
	Owner     string
	DueDate   string
	Status    string
	Badge     BadgeSeverity
}

func (r CalendarRecord) Module() ModuleKey       { return ModuleCalendar }
func (r CalendarRecord) Severity() BadgeSeverity { return r.Badge }
func (r CalendarRecord) Fields() []string {
	return []string{r.Milestone, r.Owner, r.DueDate, r.Status}
}

// RecordFieldCount is the number of values every record variant carries.
const RecordFieldCount = 4

// NewRecord rebuilds a record of the given module from values in column order.
func NewRecord(module ModuleKey, fields []string, badge BadgeSeverity) (Record, error) {
	if len(fields) != RecordFieldCount {
		return nil, fmt.Errorf("module %q: expected %d fields, got %d", module, RecordFieldCount, len(fields))
	}
	if !ValidBadgeSeverities[string(badge)] {
		return nil, fmt.Errorf("module %q: invalid badge %q", module, badge)
	}
	switch module {
	case ModuleArticle:
		return ArticleRecord{Style: fields[0], Category: fields[1], Status: fields[2], Milestone: fields[3], Badge: badge}, nil
	case ModuleMaterials:
		return MaterialRecord{Name: fields[0], Composition: fields[1], Supplier: fields[2], Status: fields[3], Badge: badge}, nil
	case ModuleColors:
		return ColorRecord{Color: fields[0], Code: fields[1], Finish: fields[2], Approval: fields[3], Badge: badge}, nil
	case ModuleCalendar:
		return CalendarRecord{Milestone: fields[0], Owner: fields[1], DueDate: fields[2], Status: fields[3], Badge: badge}, nil
	default:
		return nil, fmt.Errorf("unknown module %q", module)
	}
}
