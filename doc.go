// Package fsm is a finite-state machine over a closed set of enum-like states.
//
// A Machine starts at Config.Initial. Callers declare which transitions are
// legal with Valid and its bulk forms, move the machine with SetState, and
// observe moves through per-state OnEnter/OnExit callbacks:
//
//	light := fsm.New(fsm.Config[Light]{Name: "stoplight", Initial: Green})
//	light.Valid(Green, Yellow)
//	light.Valid(Yellow, Red)
//	light.OnEnter(Red, func() { log.Println("stop") })
//
//	_ = light.SetState(Yellow) // ok
//	err := light.SetState(Green) // fsm.ErrIllegalTransition
//
// Setting the current state again is always a silent no-op. A state with no
// declared targets is terminal and rejects every further SetState.
//
// OnEnterAny and OnExitAny bind to the states known when they are called;
// states mentioned later do not receive those callbacks.
//
// Enter callbacks may start a nested transition; exit callbacks may not, and
// SetState called from one returns ErrTransitionInProgress.
//
// Machines are synchronous and not safe for concurrent use.
package fsm
