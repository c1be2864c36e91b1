package briefing

import (
	"context"
	"errors"
	"testing"

	"github.com/alexanderramin/linebrief/internal/catalog"
	"github.com/alexanderramin/linebrief/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingObserver struct {
	events []TransitionEvent
}

func (o *recordingObserver) ObserveTransition(_ context.Context, e TransitionEvent) {
	o.events = append(o.events, e)
}

func (o *recordingObserver) names() []string {
	out := make([]string, len(o.events))
	for i, e := range o.events {
		out[i] = e.Name
	}
	return out
}

type failingSource struct{ err error }

func (f failingSource) Records(context.Context, domain.ModuleKey) ([]domain.Record, error) {
	return nil, f.err
}

func newTestController(opts ...Option) *Controller {
	opts = append([]Option{WithIDGenerator(func() string { return "brief-1" })}, opts...)
	return New(catalog.DefaultChoices(), catalog.Static{}, opts...)
}

func fillAtlas(c *Controller) {
	c.SelectBrand("Atlas")
	c.SetSeason("FW24")
	c.SetDepartment("Outerwear")
}

func pressedBrands(c *Controller) []string {
	var out []string
	for _, b := range c.BrandControls() {
		if b.Pressed {
			out = append(out, b.Value)
		}
	}
	return out
}

func activeTabs(c *Controller) []domain.ModuleKey {
	var out []domain.ModuleKey
	for _, tab := range c.Tabs() {
		if tab.Active {
			out = append(out, tab.Key)
		}
	}
	return out
}

func TestController_InitialState(t *testing.T) {
	c := newTestController()

	assert.Equal(t, domain.PhaseBriefing, c.Phase())
	assert.False(t, c.SubmitEnabled())
	assert.False(t, c.Summary().Visible)
	assert.Empty(t, activeTabs(c))
	assert.Empty(t, pressedBrands(c))
	_, ok := c.Content()
	assert.False(t, ok)
}

func TestController_SubmitGate(t *testing.T) {
	tests := []struct {
		name string
		fill func(c *Controller)
		want bool
	}{
		{"nothing", func(c *Controller) {}, false},
		{"brand only", func(c *Controller) { c.SelectBrand("Atlas") }, false},
		{"no brand", func(c *Controller) { c.SetSeason("FW24"); c.SetDepartment("Outerwear") }, false},
		{"no season", func(c *Controller) { c.SelectBrand("Atlas"); c.SetDepartment("Outerwear") }, false},
		{"no department", func(c *Controller) { c.SelectBrand("Atlas"); c.SetSeason("FW24") }, false},
		{"season cleared", func(c *Controller) { fillAtlas(c); c.SetSeason("") }, false},
		{"complete", fillAtlas, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newTestController()
			tt.fill(c)
			assert.Equal(t, tt.want, c.IsSubmittable())
			assert.Equal(t, tt.want, c.SubmitEnabled())
		})
	}
}

func TestController_SelectBrandIsExclusive(t *testing.T) {
	c := newTestController()

	require.True(t, c.SelectBrand("Atlas"))
	assert.Equal(t, []string{"Atlas"}, pressedBrands(c))

	require.True(t, c.SelectBrand("Verity"))
	assert.Equal(t, []string{"Verity"}, pressedBrands(c))
	assert.Equal(t, "Verity", c.Selection().Brand)
}

func TestController_SelectBrandUnknownIsIgnored(t *testing.T) {
	c := newTestController()
	c.SelectBrand("Atlas")

	assert.False(t, c.SelectBrand("Nobody"))
	assert.Equal(t, []string{"Atlas"}, pressedBrands(c))
}

func TestController_SubmitEntersWorkspace(t *testing.T) {
	obs := &recordingObserver{}
	c := newTestController(WithObserver(obs))
	fillAtlas(c)

	require.NoError(t, c.Submit(context.Background()))

	assert.Equal(t, domain.PhaseWorkspace, c.Phase())
	assert.Equal(t, domain.ModuleArticle, c.ActiveModule())
	assert.Equal(t, []domain.ModuleKey{domain.ModuleArticle}, activeTabs(c))

	sum := c.Summary()
	assert.True(t, sum.Visible)
	assert.Equal(t, []string{"Atlas", "FW24", "Outerwear"}, sum.Values())

	view, ok := c.Content()
	require.True(t, ok)
	assert.Equal(t, domain.ModuleArticle, view.Module)
	assert.Len(t, view.Rows, 3)

	assert.Equal(t, "brief-1", c.BriefID())
	assert.False(t, c.SubmitEnabled(), "submit is frozen while locked")
	assert.Equal(t, []string{"submit", "select_module"}, obs.names())
}

func TestController_SubmitRefusedWhenIncomplete(t *testing.T) {
	c := newTestController()
	c.SetSeason("FW24")
	c.SetDepartment("Outerwear")

	err := c.Submit(context.Background())

	assert.ErrorIs(t, err, ErrNotSubmittable)
	assert.Equal(t, domain.PhaseBriefing, c.Phase())
	assert.False(t, c.SubmitEnabled())
	assert.Empty(t, c.BriefID())
}

func TestController_SelectModule(t *testing.T) {
	c := newTestController()
	fillAtlas(c)
	require.NoError(t, c.Submit(context.Background()))

	require.NoError(t, c.SelectModule(context.Background(), domain.ModuleMaterials))

	assert.Equal(t, []domain.ModuleKey{domain.ModuleMaterials}, activeTabs(c))
	view, ok := c.Content()
	require.True(t, ok)
	assert.Len(t, view.Rows, 3)
	assert.Equal(t, []string{"name", "composition", "supplier", "status"}, view.ColumnKeys())
	assert.Equal(t, "Atlas · FW24 · Outerwear", view.Footer.Context)
}

func TestController_SelectModuleTwiceIsIdempotent(t *testing.T) {
	c := newTestController()
	fillAtlas(c)
	require.NoError(t, c.Submit(context.Background()))

	require.NoError(t, c.SelectModule(context.Background(), domain.ModuleColors))
	first, _ := c.Content()
	require.NoError(t, c.SelectModule(context.Background(), domain.ModuleColors))
	second, _ := c.Content()

	assert.Equal(t, first, second)
	assert.Len(t, second.Rows, 3)
}

func TestController_SelectModuleUnknownIsNoop(t *testing.T) {
	c := newTestController()
	fillAtlas(c)
	require.NoError(t, c.Submit(context.Background()))

	require.NoError(t, c.SelectModule(context.Background(), "pricing"))

	assert.Equal(t, domain.ModuleArticle, c.ActiveModule())
	view, _ := c.Content()
	assert.Equal(t, domain.ModuleArticle, view.Module)
}

func TestController_SelectModuleIgnoredDuringBriefing(t *testing.T) {
	c := newTestController()
	fillAtlas(c)

	require.NoError(t, c.SelectModule(context.Background(), domain.ModuleColors))

	assert.Empty(t, activeTabs(c))
	_, ok := c.Content()
	assert.False(t, ok)
}

func TestController_EditReturnsToBriefing(t *testing.T) {
	c := newTestController()
	fillAtlas(c)
	require.NoError(t, c.Submit(context.Background()))
	require.NoError(t, c.SelectModule(context.Background(), domain.ModuleCalendar))

	c.Edit(context.Background())

	assert.Equal(t, domain.PhaseBriefing, c.Phase())
	assert.Empty(t, activeTabs(c))
	_, ok := c.Content()
	assert.False(t, ok)
	assert.False(t, c.Summary().Visible)
	assert.Equal(t, ControlSubmit, c.Focus())

	// Selection is retained and re-validated immediately.
	assert.Equal(t, domain.Selection{Brand: "Atlas", Season: "FW24", Department: "Outerwear"}, c.Selection())
	assert.True(t, c.SubmitEnabled())
}

func TestController_CycleIsRepeatable(t *testing.T) {
	c := newTestController()
	fillAtlas(c)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		require.NoError(t, c.Submit(ctx))
		assert.Equal(t, domain.PhaseWorkspace, c.Phase())
		c.Edit(ctx)
		assert.Equal(t, domain.PhaseBriefing, c.Phase())
	}
}

func TestController_SubmitKeepsWorkspaceWhenRecordsFail(t *testing.T) {
	boom := errors.New("boom")
	obs := &recordingObserver{}
	c := New(catalog.DefaultChoices(), failingSource{err: boom}, WithObserver(obs))
	fillAtlas(c)

	err := c.Submit(context.Background())

	assert.ErrorIs(t, err, boom)
	assert.Equal(t, domain.PhaseWorkspace, c.Phase())
	assert.Equal(t, domain.ModuleArticle, c.ActiveModule())
	_, ok := c.Content()
	assert.False(t, ok)
	require.NotEmpty(t, obs.events)
	assert.ErrorIs(t, obs.events[len(obs.events)-1].Err, boom)
}

func TestController_BriefIDDefaultsToUUID(t *testing.T) {
	c := New(catalog.DefaultChoices(), catalog.Static{})
	fillAtlas(c)
	require.NoError(t, c.Submit(context.Background()))
	assert.Len(t, c.BriefID(), 36)
}

func TestSummary_ValuesUsePlaceholder(t *testing.T) {
	s := Summary{Brand: "Atlas"}
	assert.Equal(t, []string{"Atlas", "-", "-"}, s.Values())
}

func TestController_SelectionFrozenWhileSubmitted(t *testing.T) {
	c := newTestController()
	fillAtlas(c)
	ctx := context.Background()
	require.NoError(t, c.Submit(ctx))

	assert.False(t, c.SelectBrand("Verity"))
	c.SetSeason("")
	c.SetDepartment("Knitwear")

	want := domain.Selection{Brand: "Atlas", Season: "FW24", Department: "Outerwear"}
	assert.Equal(t, want, c.Selection())
	assert.Equal(t, []string{"Atlas"}, pressedBrands(c))

	require.NoError(t, c.SelectModule(ctx, domain.ModuleColors))
	view, ok := c.Content()
	require.True(t, ok)
	assert.Equal(t, "Atlas · FW24 · Outerwear", view.Footer.Context)
	assert.Equal(t, want.Values(), c.Summary().Values())

	// Edit unfreezes the selection.
	c.Edit(ctx)
	assert.True(t, c.SelectBrand("Verity"))
	c.SetSeason("")
	assert.Equal(t, domain.Selection{Brand: "Verity", Department: "Outerwear"}, c.Selection())
	assert.False(t, c.SubmitEnabled())
}
