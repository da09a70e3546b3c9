package fsm

// stateBuilder is used for fluent state configuration.
type stateBuilder[StateT Comparable] struct {
	parent *Machine[StateT]
	state  StateT
}

// From returns a builder for declaring transitions and callbacks of state.
//
//	m.From(Ordered).To(Cancelled, Preparing).OnExit(flush)
func (m *Machine[StateT]) From(state StateT) *stateBuilder[StateT] {
	return &stateBuilder[StateT]{parent: m, state: state}
}

// To declares the builder's state -> each target.
func (b *stateBuilder[StateT]) To(targets ...StateT) *stateBuilder[StateT] {
	b.parent.ValidTargets(b.state, targets...)
	return b
}

// ToAndBack declares the builder's state <-> each target.
func (b *stateBuilder[StateT]) ToAndBack(targets ...StateT) *stateBuilder[StateT] {
	for _, dst := range targets {
		b.parent.ValidTwoWay(b.state, dst)
	}
	return b
}

// OnEnter appends an enter callback to the builder's state.
func (b *stateBuilder[StateT]) OnEnter(fn func()) *stateBuilder[StateT] {
	b.parent.OnEnter(b.state, fn)
	return b
}

// OnExit appends an exit callback to the builder's state.
func (b *stateBuilder[StateT]) OnExit(fn func()) *stateBuilder[StateT] {
	b.parent.OnExit(b.state, fn)
	return b
}

// Machine returns the machine being configured.
func (b *stateBuilder[StateT]) Machine() *Machine[StateT] {
	return b.parent
}
