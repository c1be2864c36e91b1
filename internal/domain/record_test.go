package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRecord_RoundTripsFieldsPerModule(t *testing.T) {
	records := []Record{
		ArticleRecord{Style: "MST-212", Category: "Outerwear", Status: "Tech Pack", Milestone: "Fit Review", Badge: BadgeInfo},
		MaterialRecord{Name: "Ripstop", Composition: "100% Nylon", Supplier: "EverSource", Status: "Nominated", Badge: BadgeInfo},
		ColorRecord{Color: "Frost Grey", Code: "FG-117", Finish: "Heather", Approval: "Pending", Badge: BadgeWarning},
		CalendarRecord{Milestone: "Line Adoption", Owner: "Merchandising", DueDate: "May 12, 2024", Status: "On Track", Badge: BadgeSuccess},
	}
	for _, r := range records {
		t.Run(string(r.Module()), func(t *testing.T) {
			got, err := NewRecord(r.Module(), r.Fields(), r.Severity())
			require.NoError(t, err)
			assert.Equal(t, r, got)
		})
	}
}

func TestNewRecord_Rejects(t *testing.T) {
	_, err := NewRecord("swatches", []string{"a", "b", "c", "d"}, BadgeInfo)
	assert.Error(t, err)

	_, err = NewRecord(ModuleColors, []string{"a", "b"}, BadgeInfo)
	assert.Error(t, err)

	_, err = NewRecord(ModuleColors, []string{"a", "b", "c", "d"}, "critical")
	assert.Error(t, err)
}

func TestParseModuleKey(t *testing.T) {
	for _, k := range ModuleKeys {
		got, ok := ParseModuleKey(string(k))
		assert.True(t, ok)
		assert.Equal(t, k, got)
	}
	_, ok := ParseModuleKey("pricing")
	assert.False(t, ok)
	assert.Equal(t, DefaultModule, ModuleArticle)
}
