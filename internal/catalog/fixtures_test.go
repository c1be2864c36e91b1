package catalog

import (
	"context"
	"testing"

	"github.com/alexanderramin/linebrief/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecords_EveryModuleHasThreeTypedRows(t *testing.T) {
	for _, k := range domain.ModuleKeys {
		recs, ok := Records(k)
		require.True(t, ok, k)
		assert.Len(t, recs, 3, k)
		for _, r := range recs {
			assert.Equal(t, k, r.Module())
			assert.True(t, domain.ValidBadgeSeverities[string(r.Severity())])
		}
	}
}

func TestRecords_UnknownModule(t *testing.T) {
	recs, ok := Records("pricing")
	assert.False(t, ok)
	assert.Nil(t, recs)
}

func TestRecords_ReturnsCopy(t *testing.T) {
	recs, _ := Records(domain.ModuleColors)
	recs[0] = domain.ColorRecord{Color: "mutated"}

	again, _ := Records(domain.ModuleColors)
	assert.Equal(t, "Midnight Navy", again[0].(domain.ColorRecord).Color)
}

func TestStatic_Records(t *testing.T) {
	recs, err := Static{}.Records(context.Background(), domain.ModuleMaterials)
	require.NoError(t, err)
	require.Len(t, recs, 3)
	assert.Equal(t, "Recycled Nylon Ripstop", recs[0].(domain.MaterialRecord).Name)

	recs, err = Static{}.Records(context.Background(), "unknown")
	require.NoError(t, err)
	assert.Empty(t, recs)
}

func TestAll_CoversEveryModule(t *testing.T) {
	all := All()
	assert.Len(t, all, len(domain.ModuleKeys))
}

func TestDefaultChoices(t *testing.T) {
	c := DefaultChoices()
	assert.True(t, Contains(c.Brands, "Atlas"))
	assert.True(t, Contains(c.Seasons, "FW24"))
	assert.True(t, Contains(c.Departments, "Outerwear"))
	assert.False(t, Contains(c.Brands, ""))
}
