package fsm

// node holds everything known about one state.
type node[StateT Comparable] struct {
	state   StateT
	accept  map[StateT]struct{}
	targets []StateT // accept in declaration order
	onEnter []func()
	onExit  []func()
}

func newNode[StateT Comparable](state StateT) *node[StateT] {
	return &node[StateT]{
		state:  state,
		accept: make(map[StateT]struct{}),
	}
}

func (n *node[StateT]) can(to StateT) bool {
	_, ok := n.accept[to]
	return ok
}

func (n *node[StateT]) enter() {
	for _, fn := range n.onEnter {
		fn()
	}
}

func (n *node[StateT]) exit() {
	for _, fn := range n.onExit {
		fn()
	}
}

// table only grows: nodes and edges are never removed.
type table[StateT Comparable] struct {
	nodes map[StateT]*node[StateT]
	order []StateT
}

func newTable[StateT Comparable]() *table[StateT] {
	return &table[StateT]{nodes: make(map[StateT]*node[StateT])}
}

func (t *table[StateT]) lookup(state StateT) (*node[StateT], bool) {
	n, ok := t.nodes[state]
	return n, ok
}

// ensure returns the node for state, creating it on first mention.
func (t *table[StateT]) ensure(state StateT) *node[StateT] {
	if n, ok := t.nodes[state]; ok {
		return n
	}
	n := newNode(state)
	t.nodes[state] = n
	t.order = append(t.order, state)
	return n
}

// declare records from -> to and returns from's node.
func (t *table[StateT]) declare(from, to StateT) *node[StateT] {
	src := t.ensure(from)
	t.ensure(to)
	if !src.can(to) {
		src.accept[to] = struct{}{}
		src.targets = append(src.targets, to)
	}
	return src
}

// states lists known states in first-mention order.
func (t *table[StateT]) states() []StateT {
	out := make([]StateT, len(t.order))
	copy(out, t.order)
	return out
}
