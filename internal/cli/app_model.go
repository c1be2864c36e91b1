package cli

import (
	"strings"

	"github.com/alexanderramin/linebrief/internal/cli/formatter"
	"github.com/alexanderramin/linebrief/internal/domain"
	"github.com/alexanderramin/linebrief/internal/workspace"
	tea "github.com/charmbracelet/bubbletea"
)

// appModel is the root bubbletea Model for the TUI. The visible view is
// chosen by the controller's phase; views never switch each other directly.
type appModel struct {
	state    *SharedState
	views    map[domain.Phase]View
	quitting bool
}

func newAppModel(app *App) appModel {
	state := newSharedState(app)
	return appModel{
		state: state,
		views: map[domain.Phase]View{
			domain.PhaseBriefing:  newBriefingView(state),
			domain.PhaseWorkspace: newWorkspaceView(state),
		},
	}
}

// activeView returns the view for the current phase.
func (m *appModel) activeView() View {
	return m.views[m.state.Controller().Phase()]
}

func (m *appModel) setActiveView(phase domain.Phase, v View) {
	m.views[phase] = v
}

// ── bubbletea interface ──────────────────────────────────────────────────────

func (m appModel) Init() tea.Cmd {
	return m.activeView().Init()
}

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.state.Width = msg.Width
		m.state.Height = msg.Height
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case quitMsg:
		m.quitting = true
		return m, tea.Quit
	}

	return m.forward(msg)
}

func (m appModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyCtrlC || msg.String() == "q" {
		m.quitting = true
		return m, tea.Quit
	}
	return m.forward(msg)
}

// forward hands msg to the view of the current phase. The phase is captured
// before the update because the view may trigger a transition.
func (m appModel) forward(msg tea.Msg) (tea.Model, tea.Cmd) {
	phase := m.state.Controller().Phase()
	updated, cmd := m.views[phase].Update(msg)
	m.setActiveView(phase, updated.(View))
	return m, cmd
}

func (m appModel) View() string {
	if m.quitting {
		return ""
	}

	v := m.activeView()
	sections := []string{
		m.renderHeader(v),
		v.View(),
	}
	if err := m.state.Err; err != nil {
		sections = append(sections, "  "+formatter.StyleRed.Render("Error: "+err.Error()))
	}
	sections = append(sections, m.renderStatusBar(v))

	result := strings.Join(sections, "\n")

	// Pad to terminal height to prevent stale line artifacts from
	// bubbletea's line-diff renderer in alt-screen mode.
	if m.state.Height > 0 {
		lines := strings.Count(result, "\n") + 1
		if lines < m.state.Height {
			result += strings.Repeat("\n", m.state.Height-lines)
		}
	}
	return result
}

// ── rendering helpers ────────────────────────────────────────────────────────

func (m *appModel) renderHeader(v View) string {
	header := formatter.StylePurple.Render("linebrief") +
		" " + formatter.Dim("›") + " " + formatter.Dim(v.Title())

	c := m.state.Controller()
	if c.Phase() == domain.PhaseWorkspace {
		if ctx := c.Selection().SetValues(); len(ctx) > 0 {
			header += "  " + formatter.Dim("[") + formatter.StyleGreen.Render(strings.Join(ctx, workspace.ContextSeparator)) + formatter.Dim("]")
		}
	}
	return header + "\n" + formatter.Rule(m.state.Width)
}

func (m *appModel) renderStatusBar(v View) string {
	var hints []string
	for _, b := range v.ShortHelp() {
		hints = append(hints, formatter.Dim(b.Help().Key+": "+b.Help().Desc))
	}
	hints = append(hints, formatter.Dim("q: quit"))
	return formatter.Rule(m.state.Width) + "\n" + strings.Join(hints, "  ")
}

// quitMsg asks the root model to exit.
type quitMsg struct{}
