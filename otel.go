package fsm

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const (
	otelTracerName       = "github.com/neonlab-dev/statefsm"
	otelAttrFSMName      = "fsm.name"
	otelAttrStateFrom    = "fsm.state.from"
	otelAttrStateTo      = "fsm.state.to"
	otelAttrTransition   = "fsm.transition"
	otelSpanNameTemplate = "%s %v --> %v"
)

// WithOTelTransitionSpans wraps every accepted transition in an OpenTelemetry span.
// Attributes: fsm.name, fsm.state.from, fsm.state.to, fsm.transition.
//
// The span covers the exit callbacks, the state swap and the enter callbacks.
// It ends with codes.Ok, or codes.Error when the wrapped step fails.
func WithOTelTransitionSpans[StateT Comparable](tr trace.Tracer) Middleware[StateT] {
	if tr == nil {
		tr = otel.Tracer(otelTracerName)
	}
	return func(next TransitionFn[StateT]) TransitionFn[StateT] {
		return func(ctx context.Context, from, to StateT) error {
			name := MachineName(ctx)
			if name == "" {
				name = "fsm"
			}
			spanName := fmt.Sprintf(otelSpanNameTemplate, name, from, to)
			ctx, span := tr.Start(ctx, spanName, trace.WithSpanKind(trace.SpanKindInternal))
			defer span.End()

			span.SetAttributes(
				attribute.String(otelAttrFSMName, name),
				attribute.String(otelAttrStateFrom, fmt.Sprint(from)),
				attribute.String(otelAttrStateTo, fmt.Sprint(to)),
				attribute.String(otelAttrTransition, fmt.Sprintf("%v --> %v", from, to)),
			)

			err := next(ctx, from, to)
			if err != nil {
				span.RecordError(err)
				span.SetStatus(codes.Error, err.Error())
			} else {
				span.SetStatus(codes.Ok, "")
			}
			return err
		}
	}
}
