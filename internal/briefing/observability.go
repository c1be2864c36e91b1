package briefing

import (
	"context"
	"io"
	"log/slog"

	"github.com/alexanderramin/linebrief/internal/domain"
)

// TransitionEvent describes one state change of the controller.
type TransitionEvent struct {
	Name      string
	Phase     domain.Phase
	BriefID   string
	Selection domain.Selection
	Module    domain.ModuleKey
	Err       error
}

// Observer receives transition events.
type Observer interface {
	ObserveTransition(ctx context.Context, event TransitionEvent)
}

// NoopObserver ignores all events.
type NoopObserver struct{}

func (NoopObserver) ObserveTransition(context.Context, TransitionEvent) {}

type logObserver struct {
	logger *slog.Logger
}

// NewLogObserver writes transition events to w at the given level.
func NewLogObserver(w io.Writer, level slog.Level) Observer {
	if w == nil {
		return NoopObserver{}
	}
	return &logObserver{
		logger: slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})),
	}
}

func (o *logObserver) ObserveTransition(ctx context.Context, event TransitionEvent) {
	attrs := []any{
		"transition", event.Name,
		"phase", string(event.Phase),
		"brand", event.Selection.Brand,
		"season", event.Selection.Season,
		"department", event.Selection.Department,
	}
	if event.BriefID != "" {
		attrs = append(attrs, "brief_id", event.BriefID)
	}
	if event.Module != "" {
		attrs = append(attrs, "module", string(event.Module))
	}
	if event.Err != nil {
		attrs = append(attrs, "error", event.Err.Error())
		o.logger.ErrorContext(ctx, "briefing_transition", attrs...)
		return
	}
	o.logger.InfoContext(ctx, "briefing_transition", attrs...)
}
