package cli

import (
	"testing"

	"github.com/alexanderramin/linebrief/internal/briefing"
	"github.com/alexanderramin/linebrief/internal/teatest"
)

// TestDriver wraps teatest.Driver with linebrief-specific inspection methods.
// It exposes the controller behind the appModel so tests can assert on state
// as well as on the rendered screen.
type TestDriver struct {
	*teatest.Driver
}

// NewTestDriver creates a TestDriver from a test App, sets the terminal size
// and drains Init().
func NewTestDriver(t *testing.T, app *App) *TestDriver {
	t.Helper()

	m := newAppModel(app)
	d := teatest.New(t, m, teatest.WithSize(120, 40))
	d.DrainInit()

	return &TestDriver{Driver: d}
}

// ── High-level helpers ───────────────────────────────────────────────────────

// FillBriefing selects the first brand, steps season and department to their
// first option and leaves focus on the submit control.
func (d *TestDriver) FillBriefing() {
	d.T.Helper()
	d.PressEnter() // press brand under cursor
	d.PressTab()
	d.PressRight() // first season
	d.PressTab()
	d.PressRight() // first department
	d.PressTab()
}

// ── inspection ───────────────────────────────────────────────────────────────

func (d *TestDriver) appModel() appModel {
	return d.Model.(appModel)
}

// Controller returns the briefing controller driven by the TUI.
func (d *TestDriver) Controller() *briefing.Controller {
	return d.appModel().state.Controller()
}

// ActiveViewID returns the ViewID of the view for the current phase.
func (d *TestDriver) ActiveViewID() ViewID {
	m := d.appModel()
	return m.activeView().ID()
}

// ActiveViewTitle returns the Title() of the current view.
func (d *TestDriver) ActiveViewTitle() string {
	m := d.appModel()
	return m.activeView().Title()
}

// LastErr returns the most recent dispatch error.
func (d *TestDriver) LastErr() error {
	return d.appModel().state.Err
}

// IsQuitting reports whether the model has asked to exit.
func (d *TestDriver) IsQuitting() bool {
	return d.Quitting || d.appModel().quitting
}
