package fsm

// Snapshot is an immutable copy of the transition table and current state.
type Snapshot[StateT Comparable] struct {
	Name    string
	Initial StateT
	Current StateT
	// Order lists the states in first-mention order.
	Order  []StateT
	States map[StateT]StateInfo[StateT]
}

// StateInfo describes one known state.
type StateInfo[StateT Comparable] struct {
	Targets    []StateT
	EnterHooks int
	ExitHooks  int
	Terminal   bool
}

// Snapshot walks the current table and returns a navigable copy.
func (m *Machine[StateT]) Snapshot() Snapshot[StateT] {
	order := m.table.states()
	states := make(map[StateT]StateInfo[StateT], len(order))
	for _, state := range order {
		n, _ := m.table.lookup(state)
		targets := make([]StateT, len(n.targets))
		copy(targets, n.targets)
		states[state] = StateInfo[StateT]{
			Targets:    targets,
			EnterHooks: len(n.onEnter),
			ExitHooks:  len(n.onExit),
			Terminal:   len(n.targets) == 0,
		}
	}
	return Snapshot[StateT]{
		Name:    m.name,
		Initial: m.initial,
		Current: m.current.state,
		Order:   order,
		States:  states,
	}
}

// EdgeCount returns the number of directed transitions.
func (s Snapshot[StateT]) EdgeCount() int {
	total := 0
	for _, info := range s.States {
		total += len(info.Targets)
	}
	return total
}

// Has reports whether from -> to is in the snapshot.
func (s Snapshot[StateT]) Has(from, to StateT) bool {
	info, ok := s.States[from]
	if !ok {
		return false
	}
	for _, t := range info.Targets {
		if t == to {
			return true
		}
	}
	return false
}
