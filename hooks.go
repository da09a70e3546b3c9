package fsm

// OnEnter registers fn to run each time the machine transitions into state.
// Registrations accumulate and fire in registration order. Construction at
// the initial state does not count as entering it.
func (m *Machine[StateT]) OnEnter(state StateT, fn func()) {
	if fn == nil {
		return
	}
	n := m.table.ensure(state)
	n.onEnter = append(n.onEnter, fn)
}

// OnExit registers fn to run each time the machine transitions out of state.
func (m *Machine[StateT]) OnExit(state StateT, fn func()) {
	if fn == nil {
		return
	}
	n := m.table.ensure(state)
	n.onExit = append(n.onExit, fn)
}

// OnEnterAny registers fn as an enter callback of every state known right now.
//
// Binding is early: states first mentioned after this call (by Valid, OnEnter,
// ...) do not receive fn. Declare the full transition table, or call ValidAny,
// before registering aggregate callbacks.
func (m *Machine[StateT]) OnEnterAny(fn func(StateT)) {
	if fn == nil {
		return
	}
	for _, state := range m.table.states() {
		m.OnEnter(state, bindState(fn, state))
	}
}

// OnExitAny is the exit counterpart of OnEnterAny, with the same early binding.
func (m *Machine[StateT]) OnExitAny(fn func(StateT)) {
	if fn == nil {
		return
	}
	for _, state := range m.table.states() {
		m.OnExit(state, bindState(fn, state))
	}
}

func bindState[StateT Comparable](fn func(StateT), state StateT) func() {
	return func() { fn(state) }
}
