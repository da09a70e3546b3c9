package fsm

import (
	"context"
	"fmt"
)

type machineNameKey struct{}

// MachineName returns the name of the machine running the current transition.
// Middlewares receive it through their context.
func MachineName(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	name, _ := ctx.Value(machineNameKey{}).(string)
	return name
}

func withMachineName(ctx context.Context, name string) context.Context {
	if name == "" {
		return ctx
	}
	return context.WithValue(ctx, machineNameKey{}, name)
}

// Recover turns a panic raised by an enter/exit callback into ErrCallbackPanic.
//
// A panic in an exit callback leaves the machine in the source state; a panic
// in an enter callback happens after the swap, so the machine is already in
// the target state and the observer has already been told about the move.
func Recover[StateT Comparable]() Middleware[StateT] {
	return func(next TransitionFn[StateT]) TransitionFn[StateT] {
		return func(ctx context.Context, from, to StateT) (err error) {
			defer func() {
				if r := recover(); r != nil {
					err = fmt.Errorf("%w: %v --> %v: %v", ErrCallbackPanic, from, to, r)
				}
			}()
			return next(ctx, from, to)
		}
	}
}
