// Package catalog holds the compiled-in record sets shown in the workspace
// and the choice lists offered by the briefing selectors.
package catalog

import (
	"context"

	"github.com/alexanderramin/linebrief/internal/domain"
)

var articles = []domain.Record{
	domain.ArticleRecord{Style: "MST-212", Category: "Outerwear", Status: "Tech Pack", Milestone: "Fit Review", Badge: domain.BadgeInfo},
	domain.ArticleRecord{Style: "MTP-114", Category: "Bottoms", Status: "Proto Sample", Milestone: "Proto Approval", Badge: domain.BadgeWarning},
	domain.ArticleRecord{Style: "MKN-408", Category: "Knitwear", Status: "Bulk Ready", Milestone: "PO Placement", Badge: domain.BadgeSuccess},
}

var materials = []domain.Record{
	domain.MaterialRecord{Name: "Recycled Nylon Ripstop", Composition: "100% Recycled Nylon", Supplier: "EverSource Mills", Status: "Nominated", Badge: domain.BadgeInfo},
	domain.MaterialRecord{Name: "Organic Cotton Fleece", Composition: "95% Cotton / 5% Spandex", Supplier: "GreenLoop Textiles", Status: "Approved", Badge: domain.BadgeSuccess},
	domain.MaterialRecord{Name: "Matte Rubberized Zipper", Composition: "TPU + Metal", Supplier: "ZipTech", Status: "Pending Testing", Badge: domain.BadgeWarning},
}

var colors = []domain.Record{
	domain.ColorRecord{Color: "Midnight Navy", Code: "MN-402", Finish: "Matte", Approval: "Approved", Badge: domain.BadgeSuccess},
	domain.ColorRecord{Color: "Canyon Clay", Code: "CC-215", Finish: "Pigment Dye", Approval: "Lab Dip", Badge: domain.BadgeInfo},
	domain.ColorRecord{Color: "Frost Grey", Code: "FG-117", Finish: "Heather", Approval: "Pending", Badge: domain.BadgeWarning},
}

var calendar = []domain.Record{
	domain.CalendarRecord{Milestone: "Line Adoption", Owner: "Merchandising", DueDate: "May 12, 2024", Status: "On Track", Badge: domain.BadgeSuccess},
	domain.CalendarRecord{Milestone: "Proto Fit Review", Owner: "Technical Design", DueDate: "June 03, 2024", Status: "Scheduled", Badge: domain.BadgeInfo},
	domain.CalendarRecord{Milestone: "Bulk Fabric Commit", Owner: "Production", DueDate: "July 22, 2024", Status: "Risk", Badge: domain.BadgeWarning},
}

var byModule = map[domain.ModuleKey][]domain.Record{
	domain.ModuleArticle:   articles,
	domain.ModuleMaterials: materials,
	domain.ModuleColors:    colors,
	domain.ModuleCalendar:  calendar,
}

// Records returns a copy of the fixed record set for key, or nil and false
// for an unknown module.
func Records(key domain.ModuleKey) ([]domain.Record, bool) {
	recs, ok := byModule[key]
	if !ok {
		return nil, false
	}
	out := make([]domain.Record, len(recs))
	copy(out, recs)
	return out, true
}

// All returns every record set keyed by module.
func All() map[domain.ModuleKey][]domain.Record {
	out := make(map[domain.ModuleKey][]domain.Record, len(byModule))
	for _, k := range domain.ModuleKeys {
		out[k], _ = Records(k)
	}
	return out
}

// Static serves records straight from the compiled-in fixtures.
type Static struct{}

// Records implements the workspace record source. Unknown modules yield an
// empty result rather than an error.
func (Static) Records(_ context.Context, key domain.ModuleKey) ([]domain.Record, error) {
	recs, _ := Records(key)
	return recs, nil
}
