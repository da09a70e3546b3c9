package fsm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOnEnterAnyIsEarlyBound(t *testing.T) {
	m := New(Config[light]{Initial: green})
	m.Valid(green, yellow)

	var entered []light
	m.OnEnterAny(func(s light) { entered = append(entered, s) })

	// red is first mentioned after registration
	m.Valid(yellow, red)

	require.NoError(t, m.SetState(yellow))
	require.NoError(t, m.SetState(red))

	assert.Equal(t, []light{yellow}, entered, "late state must not receive the aggregate callback")
}

func TestOnExitAnyReportsLeftState(t *testing.T) {
	m := newStoplight(green)

	var left []light
	m.OnExitAny(func(s light) { left = append(left, s) })

	require.NoError(t, m.SetState(yellow))
	require.NoError(t, m.SetState(red))
	assert.Equal(t, []light{green, yellow}, left)
}

func TestAggregateAndDirectCallbacksKeepRegistrationOrder(t *testing.T) {
	m := newStoplight(green)

	var calls []string
	m.OnEnter(yellow, func() { calls = append(calls, "direct before") })
	m.OnEnterAny(func(s light) { calls = append(calls, "any "+string(s)) })
	m.OnEnter(yellow, func() { calls = append(calls, "direct after") })

	require.NoError(t, m.SetState(yellow))
	assert.Equal(t, []string{"direct before", "any yellow", "direct after"}, calls)
}

func TestOnEnterRegistersUnknownState(t *testing.T) {
	m := New(Config[light]{Initial: green})

	fired := false
	m.OnEnter(red, func() { fired = true })
	assert.True(t, m.IsTerminal(red))

	m.Valid(green, red)
	require.NoError(t, m.SetState(red))
	assert.True(t, fired)
}

func TestNilCallbacksAreIgnored(t *testing.T) {
	m := newStoplight(green)
	m.OnEnter(yellow, nil)
	m.OnExit(green, nil)
	m.OnEnterAny(nil)
	m.OnExitAny(nil)

	require.NoError(t, m.SetState(yellow))
	info := m.Snapshot().States
	assert.Zero(t, info[yellow].EnterHooks)
	assert.Zero(t, info[green].ExitHooks)
}

func TestInitialStateEnterNotFiredOnConstruction(t *testing.T) {
	m := New(Config[light]{Initial: green})
	fired := 0
	m.OnEnter(green, func() { fired++ })
	m.ValidTwoWay(green, yellow)

	assert.Zero(t, fired)
	require.NoError(t, m.SetState(yellow))
	require.NoError(t, m.SetState(green))
	assert.Equal(t, 1, fired)
}

func TestFluentBuilder(t *testing.T) {
	m := New(Config[orderState]{Initial: created})

	var calls []string
	m.From(created).To(ordered)
	m.From(ordered).
		To(cancelled, preparing).
		OnEnter(func() { calls = append(calls, "enter ordered") }).
		OnExit(func() { calls = append(calls, "exit ordered") })
	m.From(preparing).ToAndBack(shipped)

	assert.Same(t, m, m.From(created).Machine())
	assert.Equal(t, []orderState{cancelled, preparing}, m.Targets(ordered))
	assert.True(t, m.CanTransition(shipped, preparing))

	require.NoError(t, m.SetState(ordered))
	require.NoError(t, m.SetState(preparing))
	assert.Equal(t, []string{"enter ordered", "exit ordered"}, calls)
}
