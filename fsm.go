package fsm

import (
	"context"
	"fmt"
	"log/slog"
)

// Config defines FSM construction-time options.
type Config[StateT Comparable] struct {
	Name    string
	Initial StateT
	// Domain lists every state value; required by ValidAny unless StateT implements Enumerator.
	Domain      []StateT
	Observer    Observer[StateT]
	Middlewares []Middleware[StateT]
	Logger      *slog.Logger
}

// Machine is a typed finite-state machine over an enumerated state domain.
//
// Only declared transitions are accepted. A Machine is not safe for concurrent
// use: callers that drive one machine from several goroutines must serialize
// access themselves. Callbacks run inline; enter callbacks may call SetState again.
type Machine[StateT Comparable] struct {
	name    string
	initial StateT
	domain  []StateT

	table   *table[StateT]
	current *node[StateT]

	observer    Observer[StateT]
	middlewares []Middleware[StateT]
	logger      *slog.Logger

	exiting bool // exit callbacks are running
}

// New creates a new Machine positioned at cfg.Initial.
func New[StateT Comparable](cfg Config[StateT]) *Machine[StateT] {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.Name != "" {
		logger = logger.With(slog.String(logAttrName, cfg.Name))
	}

	t := newTable[StateT]()
	domain := make([]StateT, len(cfg.Domain))
	copy(domain, cfg.Domain)

	return &Machine[StateT]{
		name:        cfg.Name,
		initial:     cfg.Initial,
		domain:      domain,
		table:       t,
		current:     t.ensure(cfg.Initial),
		observer:    cfg.Observer,
		middlewares: cfg.Middlewares,
		logger:      logger,
	}
}

// Name returns the configured machine name.
func (m *Machine[StateT]) Name() string {
	return m.name
}

// Valid declares from -> to as a legal transition. Self-transitions are never
// stored: assigning the current state is always a silent no-op instead.
func (m *Machine[StateT]) Valid(from, to StateT) {
	if from == to {
		return
	}
	m.table.declare(from, to)
	m.logger.Debug("fsm: transition declared", slog.Any("from", from), slog.Any("to", to))
}

// ValidSources declares each of from -> to.
func (m *Machine[StateT]) ValidSources(from []StateT, to StateT) {
	for _, src := range from {
		m.Valid(src, to)
	}
}

// ValidTargets declares from -> each of to.
func (m *Machine[StateT]) ValidTargets(from StateT, to ...StateT) {
	for _, dst := range to {
		m.Valid(from, dst)
	}
}

// ValidTwoWay declares a -> b and b -> a.
func (m *Machine[StateT]) ValidTwoWay(a, b StateT) {
	m.Valid(a, b)
	m.Valid(b, a)
}

// ValidAny connects every state of the domain to every other state.
// The domain comes from Config.Domain or, failing that, from StateT's Enumerator.
func (m *Machine[StateT]) ValidAny() error {
	domain := m.enumerate()
	if len(domain) == 0 {
		var zero StateT
		return fmt.Errorf("%w: %T has no Domain and does not implement Enumerator", ErrInvalidDomain, zero)
	}
	for _, s1 := range domain {
		for _, s2 := range domain {
			m.ValidTwoWay(s1, s2)
		}
	}
	return nil
}

func (m *Machine[StateT]) enumerate() []StateT {
	if len(m.domain) > 0 {
		return m.domain
	}
	var zero StateT
	if e, ok := any(zero).(Enumerator[StateT]); ok {
		return e.Values()
	}
	return nil
}

// CanTransition reports whether from -> to has been declared.
func (m *Machine[StateT]) CanTransition(from, to StateT) bool {
	n, ok := m.table.lookup(from)
	if !ok {
		return false
	}
	return n.can(to)
}

// Can reports whether SetState(to) would succeed from the current state.
func (m *Machine[StateT]) Can(to StateT) bool {
	return m.current.state == to || m.current.can(to)
}

// IsTerminal reports whether state is known and accepts no transitions.
func (m *Machine[StateT]) IsTerminal(state StateT) bool {
	n, ok := m.table.lookup(state)
	return ok && len(n.accept) == 0
}

// Targets returns the states reachable from state in one step, in declaration order.
func (m *Machine[StateT]) Targets(state StateT) []StateT {
	n, ok := m.table.lookup(state)
	if !ok {
		return nil
	}
	out := make([]StateT, len(n.targets))
	copy(out, n.targets)
	return out
}

// State returns the current state.
func (m *Machine[StateT]) State() StateT {
	return m.current.state
}

// SetState moves the machine to state "to". See SetStateContext.
func (m *Machine[StateT]) SetState(to StateT) error {
	return m.SetStateContext(context.Background(), to)
}

// SetStateContext moves the machine to state "to".
//
// Assigning the current state is a no-op. An undeclared target returns a
// *TransitionError and leaves the machine untouched. Otherwise the exit
// callbacks of the current state run, the state changes, the observer is
// told, and the enter callbacks of the new state run, all in registration
// order.
//
// Enter callbacks may call SetState again. Exit callbacks may not: while they
// run the machine is still in the source state, so such calls fail with
// ErrTransitionInProgress.
func (m *Machine[StateT]) SetStateContext(ctx context.Context, to StateT) error {
	if ctx == nil {
		ctx = context.Background()
	}
	from := m.current.state
	if from == to {
		return nil
	}
	if m.exiting {
		return fmt.Errorf("%w: %v --> %v requested from an exit callback of %v", ErrTransitionInProgress, from, to, from)
	}
	next, ok := m.table.lookup(to)
	if !ok || !m.current.can(to) {
		err := &TransitionError[StateT]{From: from, To: to}
		m.logger.Debug("fsm: transition rejected", slog.Any("from", from), slog.Any("to", to))
		if m.observer != nil {
			m.observer.OnRejected(ctx, m.name, from, to, err)
		}
		return err
	}

	// the innermost step ignores its arguments: middlewares cannot redirect
	// the machine away from the checked target
	var step TransitionFn[StateT] = func(ctx context.Context, _, _ StateT) error {
		m.commit(ctx, next)
		return nil
	}
	for i := len(m.middlewares) - 1; i >= 0; i-- {
		step = m.middlewares[i](step)
	}
	return step(withMachineName(ctx, m.name), from, to)
}

// commit runs exit hooks, swaps to next, reports the move and runs enter hooks.
// The observer hears about the move before any nested transition started by
// an enter hook, and even if an enter hook panics.
func (m *Machine[StateT]) commit(ctx context.Context, next *node[StateT]) {
	prev := m.current
	m.runExit(prev)
	m.current = next
	if m.observer != nil {
		m.observer.OnTransition(ctx, m.name, prev.state, next.state)
	}
	next.enter()
}

func (m *Machine[StateT]) runExit(n *node[StateT]) {
	m.exiting = true
	defer func() { m.exiting = false }()
	n.exit()
}
