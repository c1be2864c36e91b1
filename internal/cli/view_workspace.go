package cli

import (
	"strings"

	"github.com/alexanderramin/linebrief/internal/briefing"
	"github.com/alexanderramin/linebrief/internal/cli/formatter"
	"github.com/alexanderramin/linebrief/internal/domain"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// workspaceView shows the submitted summary, the module tabs and the active
// module table.
type workspaceView struct {
	state *SharedState
}

func newWorkspaceView(state *SharedState) *workspaceView {
	return &workspaceView{state: state}
}

func (v *workspaceView) ID() ViewID { return ViewWorkspace }

func (v *workspaceView) Title() string {
	if k := v.state.Controller().ActiveModule(); k != "" {
		return "Workspace › " + k.Label()
	}
	return "Workspace"
}

func (v *workspaceView) ShortHelp() []key.Binding {
	return []key.Binding{
		key.NewBinding(key.WithKeys("left", "right", "tab"), key.WithHelp("←/→", "switch module")),
		key.NewBinding(key.WithKeys("1", "2", "3", "4"), key.WithHelp("1-4", "jump")),
		key.NewBinding(key.WithKeys("e", "esc"), key.WithHelp("e", "edit briefing")),
	}
}

func (v *workspaceView) Init() tea.Cmd { return nil }

func (v *workspaceView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return v, nil
	}

	switch s := keyMsg.String(); s {
	case "right", "l", "tab":
		v.step(1)
	case "left", "h", "shift+tab":
		v.step(-1)
	case "1", "2", "3", "4":
		idx := int(s[0] - '1')
		if idx < len(domain.ModuleKeys) {
			v.state.Fire(briefing.InputModule, string(domain.ModuleKeys[idx]))
		}
	case "e", "esc":
		v.state.Fire(briefing.InputEdit, "")
	}
	return v, nil
}

// step activates the neighbouring tab, wrapping at both ends.
func (v *workspaceView) step(delta int) {
	active := v.state.Controller().ActiveModule()
	idx := 0
	for i, k := range domain.ModuleKeys {
		if k == active {
			idx = i
		}
	}
	n := len(domain.ModuleKeys)
	next := domain.ModuleKeys[(idx+delta+n)%n]
	v.state.Fire(briefing.InputModule, string(next))
}

func (v *workspaceView) View() string {
	return renderWorkspace(v.state.Controller())
}

// renderWorkspace draws the summary, tab bar and module table of c. It is
// shared by the TUI and the non-interactive commands.
func renderWorkspace(c *briefing.Controller) string {
	var b strings.Builder

	if s := c.Summary(); s.Visible {
		b.WriteString(formatter.RenderBox("Briefing", strings.TrimRight(formatter.FormatSummary(s.Values()), "\n")))
		b.WriteString("\n\n")
	}

	ctrlTabs := c.Tabs()
	tabs := make([]formatter.Tab, len(ctrlTabs))
	for i, t := range ctrlTabs {
		tabs[i] = formatter.Tab{Label: t.Label, Active: t.Active}
	}
	b.WriteString(formatter.FormatTabBar(tabs))
	b.WriteString("\n\n")

	if view, ok := c.Content(); ok {
		b.WriteString(formatter.FormatModuleView(view))
	}
	return b.String()
}
