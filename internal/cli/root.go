package cli

import (
	"errors"

	"github.com/alexanderramin/linebrief/internal/briefing"
	"github.com/alexanderramin/linebrief/internal/config"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

// errNotInteractive is returned when the TUI is launched without a terminal.
var errNotInteractive = errors.New("linebrief needs an interactive terminal; use `linebrief render` instead")

// App holds everything CLI commands need to build a briefing controller.
type App struct {
	Config   config.Config
	Records  briefing.RecordSource
	Observer briefing.Observer

	// IsInteractive reports whether stdin is a terminal.
	IsInteractive func() bool

	// newID overrides brief ID generation in tests.
	newID func() string
}

// NewDispatcher creates a fresh controller and its dispatch table.
func (a *App) NewDispatcher() *briefing.Dispatcher {
	c := briefing.New(a.Config.Choices, a.Records,
		briefing.WithObserver(a.Observer),
		briefing.WithIDGenerator(a.newID),
	)
	return briefing.NewDispatcher(c)
}

// NewRootCmd creates the top-level "linebrief" command and registers all
// subcommands against the provided App. Without a subcommand it starts the
// interactive briefing.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:           "linebrief",
		Short:         "Line review briefing and module workspace",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if app.IsInteractive != nil && !app.IsInteractive() {
				return errNotInteractive
			}
			p := tea.NewProgram(newAppModel(app), tea.WithAltScreen(), tea.WithContext(cmd.Context()))
			_, err := p.Run()
			return err
		},
	}

	root.AddCommand(
		newRenderCmd(app),
		newModulesCmd(),
		newBriefCmd(app),
	)

	return root
}
