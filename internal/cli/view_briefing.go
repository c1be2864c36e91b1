package cli

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/linebrief/internal/briefing"
	"github.com/alexanderramin/linebrief/internal/cli/formatter"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// briefingFocusOrder is the tab order of the briefing controls.
var briefingFocusOrder = []briefing.Control{
	briefing.ControlBrand,
	briefing.ControlSeason,
	briefing.ControlDepartment,
	briefing.ControlSubmit,
}

// briefingView shows the brand toggles, the two selectors and the submit
// control. All state lives in the controller; the view only keeps the brand
// cursor.
type briefingView struct {
	state       *SharedState
	brandCursor int
}

func newBriefingView(state *SharedState) *briefingView {
	return &briefingView{state: state}
}

func (v *briefingView) ID() ViewID    { return ViewBriefing }
func (v *briefingView) Title() string { return "Briefing" }

func (v *briefingView) ShortHelp() []key.Binding {
	return []key.Binding{
		key.NewBinding(key.WithKeys("tab", "shift+tab"), key.WithHelp("tab", "next field")),
		key.NewBinding(key.WithKeys("left", "right"), key.WithHelp("←/→", "change")),
		key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "press")),
	}
}

func (v *briefingView) Init() tea.Cmd { return nil }

func (v *briefingView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return v, nil
	}

	c := v.state.Controller()
	switch keyMsg.String() {
	case "tab", "down", "j":
		v.moveFocus(1)
	case "shift+tab", "up", "k":
		v.moveFocus(-1)
	case "left", "h":
		v.change(-1)
	case "right", "l":
		v.change(1)
	case "enter", " ":
		v.press()
	case "1", "2", "3", "4", "5", "6", "7", "8", "9":
		idx := int(keyMsg.String()[0] - '1')
		if brands := c.Choices().Brands; idx < len(brands) {
			v.brandCursor = idx
			v.state.Fire(briefing.InputBrand, brands[idx])
		}
	}
	return v, nil
}

func (v *briefingView) moveFocus(delta int) {
	c := v.state.Controller()
	idx := 0
	for i, ctrl := range briefingFocusOrder {
		if ctrl == c.Focus() {
			idx = i
		}
	}
	n := len(briefingFocusOrder)
	c.SetFocus(briefingFocusOrder[(idx+delta+n)%n])
}

// change moves the brand cursor or cycles the focused selector.
func (v *briefingView) change(delta int) {
	c := v.state.Controller()
	choices := c.Choices()
	sel := c.Selection()

	switch c.Focus() {
	case briefing.ControlBrand:
		if n := len(choices.Brands); n > 0 {
			v.brandCursor = (v.brandCursor + delta + n) % n
		}
	case briefing.ControlSeason:
		v.state.Fire(briefing.InputSeason, cycleOption(choices.Seasons, sel.Season, delta))
	case briefing.ControlDepartment:
		v.state.Fire(briefing.InputDepartment, cycleOption(choices.Departments, sel.Department, delta))
	}
}

func (v *briefingView) press() {
	c := v.state.Controller()
	switch c.Focus() {
	case briefing.ControlBrand:
		if brands := c.Choices().Brands; v.brandCursor < len(brands) {
			v.state.Fire(briefing.InputBrand, brands[v.brandCursor])
		}
	case briefing.ControlSeason, briefing.ControlDepartment:
		v.moveFocus(1)
	case briefing.ControlSubmit:
		v.state.Fire(briefing.InputSubmit, "")
	}
}

// cycleOption steps through opts with the empty sentinel in front, wrapping
// in both directions.
func cycleOption(opts []string, current string, delta int) string {
	all := append([]string{""}, opts...)
	idx := 0
	for i, o := range all {
		if o == current {
			idx = i
		}
	}
	n := len(all)
	return all[(idx+delta+n)%n]
}

func (v *briefingView) View() string {
	c := v.state.Controller()
	sel := c.Selection()

	var b strings.Builder
	b.WriteString(formatter.Header("Briefing"))
	b.WriteString("\n\n")

	// Brand toggles
	b.WriteString(v.label("Brand", briefing.ControlBrand))
	for i, bc := range c.BrandControls() {
		text := fmt.Sprintf("%d %s", i+1, bc.Value)
		switch {
		case bc.Pressed:
			text = formatter.StyleActive.Render(text)
		default:
			text = formatter.StyleInactive.Render(text)
		}
		if c.Focus() == briefing.ControlBrand && i == v.brandCursor {
			text = formatter.StyleHeader.Render("›") + text
		} else {
			text = " " + text
		}
		b.WriteString(text)
	}
	b.WriteString("\n\n")

	b.WriteString(v.label("Season", briefing.ControlSeason))
	b.WriteString(selectorValue(sel.Season, "Select season"))
	b.WriteString("\n")
	b.WriteString(v.label("Department", briefing.ControlDepartment))
	b.WriteString(selectorValue(sel.Department, "Select department"))
	b.WriteString("\n\n")

	// Submit control
	submit := "Open workspace"
	switch {
	case !c.SubmitEnabled():
		submit = formatter.StyleDisabled.Render(submit)
	case c.Focus() == briefing.ControlSubmit:
		submit = formatter.StyleActive.Render(submit)
	default:
		submit = formatter.StyleInactive.Render(submit)
	}
	b.WriteString(v.label("", briefing.ControlSubmit))
	b.WriteString(submit)
	b.WriteString("\n")
	if !c.SubmitEnabled() {
		b.WriteString("\n  " + formatter.Dim("Choose a brand, season and department to continue.") + "\n")
	}

	return b.String()
}

// label renders a field label with a focus marker.
func (v *briefingView) label(text string, ctrl briefing.Control) string {
	marker := "  "
	if v.state.Controller().Focus() == ctrl {
		marker = formatter.StyleHeader.Render("▸ ")
	}
	return marker + formatter.Dim(fmt.Sprintf("%-11s", text))
}

func selectorValue(value, placeholder string) string {
	if value == "" {
		return formatter.Dim("‹ " + placeholder + " ›")
	}
	return formatter.Dim("‹ ") + formatter.Bold(value) + formatter.Dim(" ›")
}
