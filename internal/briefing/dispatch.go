package briefing

import (
	"context"
	"fmt"

	"github.com/alexanderramin/linebrief/internal/catalog"
	"github.com/alexanderramin/linebrief/internal/domain"
)

// InputID names a user-facing control that can fire an event.
type InputID string

const (
	InputBrand      InputID = "brand"
	InputSeason     InputID = "season"
	InputDepartment InputID = "department"
	InputSubmit     InputID = "submit"
	InputEdit       InputID = "edit"
	InputModule     InputID = "module"
)

// Handler applies one input event to the controller.
type Handler func(ctx context.Context, c *Controller, value string) error

// Dispatcher maps input identifiers to handlers. Every UI surface drives the
// controller through it.
type Dispatcher struct {
	c        *Controller
	handlers map[InputID]Handler
}

// NewDispatcher returns a Dispatcher with the standard handler table.
func NewDispatcher(c *Controller) *Dispatcher {
	return &Dispatcher{
		c: c,
		handlers: map[InputID]Handler{
			InputBrand:      handleBrand,
			InputSeason:     handleSeason,
			InputDepartment: handleDepartment,
			InputSubmit:     handleSubmit,
			InputEdit:       handleEdit,
			InputModule:     handleModule,
		},
	}
}

// Controller returns the controller events are applied to.
func (d *Dispatcher) Controller() *Controller { return d.c }

// Dispatch routes value to the handler registered for id.
func (d *Dispatcher) Dispatch(ctx context.Context, id InputID, value string) error {
	h, ok := d.handlers[id]
	if !ok {
		return fmt.Errorf("input %q: %w", id, ErrUnknownInput)
	}
	return h(ctx, d.c, value)
}

// requireUnlocked refuses selection changes while the workspace is open.
func requireUnlocked(c *Controller, id InputID) error {
	if c.Locked() {
		return fmt.Errorf("input %q: %w", id, ErrBriefingLocked)
	}
	return nil
}

func handleBrand(_ context.Context, c *Controller, value string) error {
	if err := requireUnlocked(c, InputBrand); err != nil {
		return err
	}
	if !c.SelectBrand(value) {
		return fmt.Errorf("brand %q: %w", value, ErrUnknownOption)
	}
	return nil
}

func handleSeason(_ context.Context, c *Controller, value string) error {
	if err := requireUnlocked(c, InputSeason); err != nil {
		return err
	}
	if value != "" && !catalog.Contains(c.choices.Seasons, value) {
		return fmt.Errorf("season %q: %w", value, ErrUnknownOption)
	}
	c.SetSeason(value)
	return nil
}

func handleDepartment(_ context.Context, c *Controller, value string) error {
	if err := requireUnlocked(c, InputDepartment); err != nil {
		return err
	}
	if value != "" && !catalog.Contains(c.choices.Departments, value) {
		return fmt.Errorf("department %q: %w", value, ErrUnknownOption)
	}
	c.SetDepartment(value)
	return nil
}

// handleSubmit ignores activation of a disabled submit control.
func handleSubmit(ctx context.Context, c *Controller, _ string) error {
	if !c.SubmitEnabled() {
		return nil
	}
	return c.Submit(ctx)
}

func handleEdit(ctx context.Context, c *Controller, _ string) error {
	c.Edit(ctx)
	return nil
}

func handleModule(ctx context.Context, c *Controller, value string) error {
	return c.SelectModule(ctx, domain.ModuleKey(value))
}
