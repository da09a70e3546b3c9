package fsm

import (
	"context"
	"log/slog"
)

const logAttrName = "fsm.name"

// NoopObserver discards all observer events.
type NoopObserver[StateT Comparable] struct{}

func (NoopObserver[StateT]) OnTransition(context.Context, string, StateT, StateT) {}
func (NoopObserver[StateT]) OnRejected(context.Context, string, StateT, StateT, error) {
}

// LogObserver writes transitions through a structured logger.
// A nil Logger falls back to slog.Default().
type LogObserver[StateT Comparable] struct {
	Logger *slog.Logger
	// Level applies to accepted transitions; rejections are logged at Warn.
	Level slog.Level
}

func (o LogObserver[StateT]) log() *slog.Logger {
	if o.Logger == nil {
		return slog.Default()
	}
	return o.Logger
}

func (o LogObserver[StateT]) OnTransition(ctx context.Context, machine string, from, to StateT) {
	o.log().LogAttrs(ctx, o.Level, "fsm: transition",
		slog.String(logAttrName, machine),
		slog.Any("from", from),
		slog.Any("to", to),
	)
}

func (o LogObserver[StateT]) OnRejected(ctx context.Context, machine string, from, to StateT, err error) {
	o.log().LogAttrs(ctx, slog.LevelWarn, "fsm: transition rejected",
		slog.String(logAttrName, machine),
		slog.Any("from", from),
		slog.Any("to", to),
		slog.String("error", err.Error()),
	)
}

// MultiObserver fans events out to several observers in order.
type MultiObserver[StateT Comparable] []Observer[StateT]

func (mo MultiObserver[StateT]) OnTransition(ctx context.Context, machine string, from, to StateT) {
	for _, o := range mo {
		if o != nil {
			o.OnTransition(ctx, machine, from, to)
		}
	}
}

func (mo MultiObserver[StateT]) OnRejected(ctx context.Context, machine string, from, to StateT, err error) {
	for _, o := range mo {
		if o != nil {
			o.OnRejected(ctx, machine, from, to, err)
		}
	}
}
