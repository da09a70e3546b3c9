package fsm

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingObserver struct {
	transitions []string
	rejected    []error
}

func (r *recordingObserver) OnTransition(_ context.Context, machine string, from, to light) {
	r.transitions = append(r.transitions, machine+":"+string(from)+"->"+string(to))
}

func (r *recordingObserver) OnRejected(_ context.Context, _ string, _, _ light, err error) {
	r.rejected = append(r.rejected, err)
}

func TestObserverSeesTransitionsAndRejections(t *testing.T) {
	obs := &recordingObserver{}
	m := New(Config[light]{Name: "obs", Initial: green, Observer: obs})
	m.Valid(green, yellow)

	require.NoError(t, m.SetState(yellow))
	require.NoError(t, m.SetState(yellow)) // no-op, not reported
	require.Error(t, m.SetState(green))

	assert.Equal(t, []string{"obs:green->yellow"}, obs.transitions)
	require.Len(t, obs.rejected, 1)
	assert.ErrorIs(t, obs.rejected[0], ErrIllegalTransition)
}

func TestNoopObserverCoverage(t *testing.T) {
	obs := NoopObserver[light]{}
	obs.OnTransition(context.Background(), "m", green, yellow)
	obs.OnRejected(context.Background(), "m", green, red, errors.New("ignored"))
}

func TestLogObserverWritesStructuredRecords(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	m := New(Config[light]{
		Name:     "lamp",
		Initial:  green,
		Observer: LogObserver[light]{Logger: logger},
	})
	m.Valid(green, yellow)

	require.NoError(t, m.SetState(yellow))
	require.Error(t, m.SetState(green))

	out := buf.String()
	assert.Contains(t, out, `msg="fsm: transition"`)
	assert.Contains(t, out, "fsm.name=lamp from=green to=yellow")
	assert.Contains(t, out, "level=WARN")
	assert.Contains(t, out, `msg="fsm: transition rejected"`)
}

func TestLogObserverDefaultsToSlogDefault(t *testing.T) {
	var buf bytes.Buffer
	orig := slog.Default()
	slog.SetDefault(slog.New(slog.NewTextHandler(&buf, nil)))
	t.Cleanup(func() { slog.SetDefault(orig) })

	LogObserver[light]{}.OnTransition(context.Background(), "m", green, yellow)
	assert.Contains(t, buf.String(), "from=green to=yellow")
}

func TestMachineLoggerRecordsDeclarations(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	m := New(Config[light]{Name: "dbg", Initial: green, Logger: logger})
	m.Valid(green, yellow)
	_ = m.SetState(red)

	out := buf.String()
	assert.Contains(t, out, `msg="fsm: transition declared" fsm.name=dbg from=green to=yellow`)
	assert.Contains(t, out, `msg="fsm: transition rejected" fsm.name=dbg from=green to=red`)
}

func TestMultiObserverFansOut(t *testing.T) {
	a, b := &recordingObserver{}, &recordingObserver{}
	m := New(Config[light]{
		Name:     "multi",
		Initial:  green,
		Observer: MultiObserver[light]{a, nil, b},
	})
	m.Valid(green, yellow)

	require.NoError(t, m.SetState(yellow))
	require.Error(t, m.SetState(red+"x"))

	for _, o := range []*recordingObserver{a, b} {
		assert.Equal(t, []string{"multi:green->yellow"}, o.transitions)
		assert.Len(t, o.rejected, 1)
	}
}
