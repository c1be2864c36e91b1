// Package briefing owns the briefing/workspace state machine: the current
// Selection, the submit gate, the summary and which module tab is active.
package briefing

import (
	"context"
	"errors"
	"fmt"

	"github.com/alexanderramin/linebrief/internal/catalog"
	"github.com/alexanderramin/linebrief/internal/domain"
	"github.com/alexanderramin/linebrief/internal/workspace"
	"github.com/google/uuid"
)

var (
	// ErrNotSubmittable is returned by Submit when a selection field is empty.
	ErrNotSubmittable = errors.New("briefing incomplete: brand, season, and department are required")
	// ErrUnknownInput is returned by the dispatcher for an unregistered input.
	ErrUnknownInput = errors.New("unknown input")
	// ErrUnknownOption is returned for a value no selector offers.
	ErrUnknownOption = errors.New("unknown option")
	// ErrBriefingLocked is returned for selection changes after submit.
	ErrBriefingLocked = errors.New("briefing is submitted; edit it before changing the selection")
)

// RecordSource supplies the static records of a module.
type RecordSource interface {
	Records(ctx context.Context, key domain.ModuleKey) ([]domain.Record, error)
}

// Control identifies a focusable control of the briefing or workspace.
type Control string

const (
	ControlBrand      Control = "brand"
	ControlSeason     Control = "season"
	ControlDepartment Control = "department"
	ControlSubmit     Control = "submit"
	ControlTabs       Control = "tabs"
	ControlEdit       Control = "edit"
)

// BrandControl is one toggle of the brand selector.
type BrandControl struct {
	Value   string
	Pressed bool
}

// TabControl is one entry of the module tab bar.
type TabControl struct {
	Key    domain.ModuleKey
	Label  string
	Active bool
}

// Summary is the read-only recap shown once a briefing is submitted.
type Summary struct {
	Visible    bool
	Brand      string
	Season     string
	Department string
}

// Values returns brand, season and department in display order, with
// missing values rendered as a dash.
func (s Summary) Values() []string {
	return domain.Selection{Brand: s.Brand, Season: s.Season, Department: s.Department}.SummaryValues()
}

// Controller is the single state object behind the UI. It is not safe for
// concurrent use; every call is made from the UI event loop.
type Controller struct {
	choices  catalog.Choices
	source   RecordSource
	observer Observer
	newID    func() string

	sel           domain.Selection
	locked        bool
	submitEnabled bool
	summary       Summary
	activeModule  domain.ModuleKey
	content       *workspace.ModuleView
	focus         Control
	briefID       string
}

// Option configures a Controller.
type Option func(*Controller)

// WithObserver routes transition events to obs.
func WithObserver(obs Observer) Option {
	return func(c *Controller) {
		if obs != nil {
			c.observer = obs
		}
	}
}

// WithIDGenerator overrides how brief IDs are minted.
func WithIDGenerator(fn func() string) Option {
	return func(c *Controller) {
		if fn != nil {
			c.newID = fn
		}
	}
}

// New creates a Controller in the Briefing phase with an empty selection.
func New(choices catalog.Choices, source RecordSource, opts ...Option) *Controller {
	c := &Controller{
		choices:  choices,
		source:   source,
		observer: NoopObserver{},
		newID:    func() string { return uuid.New().String() },
		focus:    ControlBrand,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// ── selection ────────────────────────────────────────────────────────────────

// SelectBrand presses the toggle for value and releases every other one.
// It returns false and changes nothing when no toggle carries value or the
// briefing is locked.
func (c *Controller) SelectBrand(value string) bool {
	if c.locked || !catalog.Contains(c.choices.Brands, value) {
		return false
	}
	c.sel.Brand = value
	c.focus = ControlBrand
	c.updateSubmitState()
	return true
}

// SetSeason records the season selector's current value. An empty value is
// the "unselected" sentinel. Ignored while the briefing is locked.
func (c *Controller) SetSeason(value string) {
	if c.locked {
		return
	}
	c.sel.Season = value
	c.updateSubmitState()
}

// SetDepartment records the department selector's current value. Ignored
// while the briefing is locked.
func (c *Controller) SetDepartment(value string) {
	if c.locked {
		return
	}
	c.sel.Department = value
	c.updateSubmitState()
}

// IsSubmittable reports whether brand, season and department are all set.
func (c *Controller) IsSubmittable() bool {
	return c.sel.IsComplete()
}

func (c *Controller) updateSubmitState() {
	c.submitEnabled = c.IsSubmittable()
}

// ── transitions ──────────────────────────────────────────────────────────────

// Submit locks the briefing, reveals the summary and opens the workspace on
// the default module. The briefing stays in the Workspace phase even when the
// default module's records fail to load; that error is returned.
func (c *Controller) Submit(ctx context.Context) error {
	if !c.IsSubmittable() {
		return ErrNotSubmittable
	}

	c.locked = true
	c.briefID = c.newID()
	c.summary = Summary{
		Visible:    true,
		Brand:      c.sel.Brand,
		Season:     c.sel.Season,
		Department: c.sel.Department,
	}
	c.focus = ControlTabs
	c.emit(ctx, "submit", nil)

	return c.SelectModule(ctx, domain.DefaultModule)
}

// Edit returns to the Briefing phase. The selection is kept; the summary is
// hidden, the workspace content cleared and every tab deactivated. Focus
// moves to the submit control, whose enabled state is re-derived from the
// retained selection.
func (c *Controller) Edit(ctx context.Context) {
	c.locked = false
	c.summary = Summary{}
	c.activeModule = ""
	c.content = nil
	c.focus = ControlSubmit
	c.updateSubmitState()
	c.emit(ctx, "edit", nil)
}

// SelectModule activates the tab for key and renders its table, replacing
// any previous content. Unknown keys and calls outside the Workspace phase
// are no-ops.
func (c *Controller) SelectModule(ctx context.Context, key domain.ModuleKey) error {
	if !key.Valid() || !c.locked {
		return nil
	}
	c.activeModule = key

	view, err := c.render(ctx, key)
	if err != nil {
		c.content = nil
		err = fmt.Errorf("loading %s records: %w", key, err)
		c.emit(ctx, "select_module", err)
		return err
	}
	c.content = &view
	c.emit(ctx, "select_module", nil)
	return nil
}

func (c *Controller) render(ctx context.Context, key domain.ModuleKey) (workspace.ModuleView, error) {
	var records []domain.Record
	if c.source != nil {
		recs, err := c.source.Records(ctx, key)
		if err != nil {
			return workspace.ModuleView{}, err
		}
		records = recs
	}
	view, _ := workspace.RenderModule(key, records, c.sel)
	return view, nil
}

// ── read-only state ──────────────────────────────────────────────────────────

// Locked reports whether the briefing has been submitted and not yet edited.
func (c *Controller) Locked() bool { return c.locked }

// Phase is Workspace while the briefing is locked, Briefing otherwise.
func (c *Controller) Phase() domain.Phase {
	if c.locked {
		return domain.PhaseWorkspace
	}
	return domain.PhaseBriefing
}

func (c *Controller) Selection() domain.Selection { return c.sel }
func (c *Controller) Choices() catalog.Choices     { return c.choices }

// SubmitEnabled reports whether the submit control accepts activation.
func (c *Controller) SubmitEnabled() bool { return c.submitEnabled && !c.locked }

// BrandControls returns the brand toggles in display order.
func (c *Controller) BrandControls() []BrandControl {
	out := make([]BrandControl, len(c.choices.Brands))
	for i, b := range c.choices.Brands {
		out[i] = BrandControl{Value: b, Pressed: b == c.sel.Brand}
	}
	return out
}

// Tabs returns the module tab bar. No tab is active in the Briefing phase.
func (c *Controller) Tabs() []TabControl {
	out := make([]TabControl, len(domain.ModuleKeys))
	for i, k := range domain.ModuleKeys {
		out[i] = TabControl{Key: k, Label: k.Label(), Active: k == c.activeModule}
	}
	return out
}

func (c *Controller) ActiveModule() domain.ModuleKey { return c.activeModule }

// Content returns the rendered module, if any.
func (c *Controller) Content() (workspace.ModuleView, bool) {
	if c.content == nil {
		return workspace.ModuleView{}, false
	}
	return *c.content, true
}

func (c *Controller) Summary() Summary { return c.summary }

// BriefID identifies the most recent submission; empty before the first one.
func (c *Controller) BriefID() string { return c.briefID }

func (c *Controller) Focus() Control { return c.focus }

// SetFocus moves focus to ctrl.
func (c *Controller) SetFocus(ctrl Control) { c.focus = ctrl }

func (c *Controller) emit(ctx context.Context, name string, err error) {
	c.observer.ObserveTransition(ctx, TransitionEvent{
		Name:      name,
		Phase:     c.Phase(),
		BriefID:   c.briefID,
		Selection: c.sel,
		Module:    c.activeModule,
		Err:       err,
	})
}
