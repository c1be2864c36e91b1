package cli

import (
	"context"

	"github.com/alexanderramin/linebrief/internal/briefing"
)

// SharedState holds context shared across all views via pointer.
type SharedState struct {
	App        *App
	Dispatcher *briefing.Dispatcher

	// Err is the most recent dispatch failure, cleared by the next success.
	Err error

	// Terminal dimensions
	Width  int
	Height int
}

func newSharedState(app *App) *SharedState {
	return &SharedState{
		App:        app,
		Dispatcher: app.NewDispatcher(),
	}
}

// Controller returns the briefing controller behind the dispatcher.
func (s *SharedState) Controller() *briefing.Controller {
	return s.Dispatcher.Controller()
}

// Fire dispatches one input event and records its outcome.
func (s *SharedState) Fire(id briefing.InputID, value string) {
	s.Err = s.Dispatcher.Dispatch(context.Background(), id, value)
}
