package workspace

import (
	"testing"

	"github.com/alexanderramin/linebrief/internal/catalog"
	"github.com/alexanderramin/linebrief/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fullSelection = domain.Selection{Brand: "Atlas", Season: "FW24", Department: "Outerwear"}

func render(t *testing.T, key domain.ModuleKey, sel domain.Selection) ModuleView {
	t.Helper()
	recs, _ := catalog.Records(key)
	v, ok := RenderModule(key, recs, sel)
	require.True(t, ok)
	return v
}

func TestRenderModule_ColumnSchemas(t *testing.T) {
	tests := []struct {
		key  domain.ModuleKey
		cols []string
	}{
		{domain.ModuleArticle, []string{"style", "category", "status", "milestone"}},
		{domain.ModuleMaterials, []string{"name", "composition", "supplier", "status"}},
		{domain.ModuleColors, []string{"color", "code", "finish", "approval"}},
		{domain.ModuleCalendar, []string{"milestone", "owner", "dueDate", "status"}},
	}
	for _, tt := range tests {
		t.Run(string(tt.key), func(t *testing.T) {
			v := render(t, tt.key, fullSelection)
			assert.Equal(t, tt.cols, v.ColumnKeys())
			assert.Len(t, v.Rows, 3)
		})
	}
}

func TestRenderModule_Materials(t *testing.T) {
	v := render(t, domain.ModuleMaterials, fullSelection)

	require.Len(t, v.Rows, 3)
	first := v.Rows[0].Cells
	assert.Equal(t, "Recycled Nylon Ripstop", first[0].Text)
	assert.Equal(t, "100% Recycled Nylon", first[1].Text)
	assert.Equal(t, "EverSource Mills", first[2].Text)
	assert.Equal(t, "Nominated", first[3].Text)
	assert.Equal(t, domain.BadgeInfo, first[3].Severity)
	assert.Empty(t, first[0].Severity, "non-badge cells carry no severity")
}

func TestRenderModule_ArticleBadgeInThirdColumn(t *testing.T) {
	v := render(t, domain.ModuleArticle, fullSelection)
	row := v.Rows[1].Cells
	assert.Equal(t, "Proto Sample", row[2].Text)
	assert.Equal(t, domain.BadgeWarning, row[2].Severity)
	assert.Equal(t, "Proto Approval", row[3].Text)
}

func TestRenderModule_Footer(t *testing.T) {
	v := render(t, domain.ModuleCalendar, fullSelection)
	assert.Equal(t, 3, v.Footer.Count)
	assert.Equal(t, "Showing 3 records", v.Footer.Label())
	assert.Equal(t, "Atlas · FW24 · Outerwear", v.Footer.Context)
}

func TestRenderModule_FooterContextPending(t *testing.T) {
	v := render(t, domain.ModuleColors, domain.Selection{})
	assert.Equal(t, ContextPending, v.Footer.Context)
}

func TestRenderModule_FooterSkipsEmptyValues(t *testing.T) {
	v := render(t, domain.ModuleColors, domain.Selection{Brand: "Atlas", Department: "Knitwear"})
	assert.Equal(t, "Atlas · Knitwear", v.Footer.Context)
}

func TestRenderModule_UnknownKey(t *testing.T) {
	v, ok := RenderModule("pricing", nil, fullSelection)
	assert.False(t, ok)
	assert.Empty(t, v.Rows)
}

func TestRenderModule_Idempotent(t *testing.T) {
	a := render(t, domain.ModuleColors, fullSelection)
	b := render(t, domain.ModuleColors, fullSelection)
	assert.Equal(t, a, b)
	assert.Len(t, b.Rows, 3)
}

func TestRenderModule_SkipsForeignRecords(t *testing.T) {
	recs, _ := catalog.Records(domain.ModuleColors)
	recs = append(recs, domain.ArticleRecord{Style: "X"}, nil)

	v, ok := RenderModule(domain.ModuleColors, recs, fullSelection)
	require.True(t, ok)
	assert.Len(t, v.Rows, 3)
	assert.Equal(t, 3, v.Footer.Count)
}

func TestColumns_ReturnsCopy(t *testing.T) {
	cols, ok := Columns(domain.ModuleArticle)
	require.True(t, ok)
	cols[0].Key = "mutated"

	again, _ := Columns(domain.ModuleArticle)
	assert.Equal(t, "style", again[0].Key)
}
