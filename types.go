package fsm

import (
	"context"
	"errors"
	"fmt"
)

var (
	// ErrIllegalTransition is returned when the requested target is not accepted by the current state.
	ErrIllegalTransition = errors.New("fsm: illegal transition")
	// ErrInvalidDomain is returned by ValidAny when the state domain cannot be enumerated.
	ErrInvalidDomain = errors.New("fsm: state domain is not enumerable")
	// ErrUnknownState is returned by a Binder when a state name is not in its name table.
	ErrUnknownState = errors.New("fsm: unknown state name")
	// ErrUnknownEventKind is returned by a Binder for anything other than Enter/Exit.
	ErrUnknownEventKind = errors.New("fsm: unknown event kind")
	// ErrTransitionInProgress is returned when an exit callback tries to move the machine.
	ErrTransitionInProgress = errors.New("fsm: transition in progress")
	// ErrCallbackPanic wraps a panic recovered from an enter/exit callback.
	ErrCallbackPanic = errors.New("fsm: callback panicked")
)

// Comparable constrains State to typical enum-friendly types.
type Comparable interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~string
}

// Enumerator is implemented by state types that can list their whole domain.
// ValidAny falls back to it when Config.Domain is empty.
type Enumerator[StateT Comparable] interface {
	Values() []StateT
}

// TransitionError describes a rejected state change.
type TransitionError[StateT Comparable] struct {
	From StateT
	To   StateT
}

func (e *TransitionError[StateT]) Error() string {
	return fmt.Sprintf("%s: cannot transition from %v to %v", ErrIllegalTransition, e.From, e.To)
}

// Unwrap lets errors.Is match ErrIllegalTransition.
func (e *TransitionError[StateT]) Unwrap() error {
	return ErrIllegalTransition
}

// IsIllegalTransition reports whether err was caused by an undeclared transition.
func IsIllegalTransition(err error) bool {
	return errors.Is(err, ErrIllegalTransition)
}

// TransitionFn performs an accepted transition: exit hooks, state swap, enter hooks.
type TransitionFn[StateT Comparable] func(ctx context.Context, from, to StateT) error

// Middleware wraps the transition step (e.g., tracing/recover/metrics).
// It only runs once the transition has been checked as legal, and the
// target cannot be changed by passing other states to next.
type Middleware[StateT Comparable] func(next TransitionFn[StateT]) TransitionFn[StateT]

// Observer exposes hooks for telemetry/logging.
type Observer[StateT Comparable] interface {
	OnTransition(ctx context.Context, machine string, from, to StateT)
	OnRejected(ctx context.Context, machine string, from, to StateT, err error)
}
