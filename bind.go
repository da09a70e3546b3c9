package fsm

import (
	"fmt"
	"strings"
)

// EventKind selects which callback list a Binder appends to.
type EventKind int

const (
	// Enter selects the callbacks fired when a state becomes current.
	Enter EventKind = iota + 1
	// Exit selects the callbacks fired when a state stops being current.
	Exit
)

func (k EventKind) String() string {
	switch k {
	case Enter:
		return "Enter"
	case Exit:
		return "Exit"
	default:
		return fmt.Sprintf("EventKind(%d)", int(k))
	}
}

// Binder attaches callbacks by state name, for hosts that wire handlers from
// names (config files, generated code, "Enter_Shipped" style method names).
type Binder[StateT Comparable] struct {
	machine *Machine[StateT]
	names   map[string]StateT
}

// NewBinder returns a Binder resolving names through names.
// The map is copied; later changes to it are not seen.
func NewBinder[StateT Comparable](m *Machine[StateT], names map[string]StateT) *Binder[StateT] {
	cp := make(map[string]StateT, len(names))
	for k, v := range names {
		cp[k] = v
	}
	return &Binder[StateT]{machine: m, names: cp}
}

// NamesOf builds a name table keyed by fmt.Sprint of each value, so types
// implementing fmt.Stringer are keyed by their String() form.
func NamesOf[StateT Comparable](values ...StateT) map[string]StateT {
	out := make(map[string]StateT, len(values))
	for _, v := range values {
		out[fmt.Sprint(v)] = v
	}
	return out
}

// Lookup resolves a state by name.
func (b *Binder[StateT]) Lookup(name string) (StateT, bool) {
	s, ok := b.names[name]
	return s, ok
}

// Bind appends fn to the enter or exit callbacks of the named state.
func (b *Binder[StateT]) Bind(kind EventKind, stateName string, fn func()) error {
	state, ok := b.names[stateName]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownState, stateName)
	}
	switch kind {
	case Enter:
		b.machine.OnEnter(state, fn)
	case Exit:
		b.machine.OnExit(state, fn)
	default:
		return fmt.Errorf("%w: %v", ErrUnknownEventKind, kind)
	}
	return nil
}

// BindMethod parses names of the form "Enter_<State>" or "Exit_<State>".
// Everything after the first underscore is the state name.
func (b *Binder[StateT]) BindMethod(method string, fn func()) error {
	prefix, stateName, ok := strings.Cut(method, "_")
	if !ok {
		return fmt.Errorf("%w: %q is not <Kind>_<State>", ErrUnknownEventKind, method)
	}
	var kind EventKind
	switch prefix {
	case "Enter":
		kind = Enter
	case "Exit":
		kind = Exit
	default:
		return fmt.Errorf("%w: %q", ErrUnknownEventKind, prefix)
	}
	return b.Bind(kind, stateName, fn)
}
