// Package delay dispatches an action later, once a condition over a store's
// state holds.
//
// The [Interceptor] wraps a store's dispatch. Dispatching a [Registration]
// built with [Once] or [When] queues it and returns a [Token]; dispatching
// [Cancel] with that token drops it. After every other action reaches the
// store, queued conditions are evaluated against the new state in
// registration order and the matching delayed actions are dispatched before
// the original Dispatch call returns.
//
//	s := store.New(reducer, initial, delay.NewMiddleware[State]())
//	tok, _ := s.Dispatch(delay.Once(
//	    delay.Predicate(func(st State, _ delay.Action) bool { return st.Saved }),
//	    delay.Fixed(Navigate{}),
//	))
//	s.Dispatch(Save{}) // reducer sees Save, then Navigate
//	s.Dispatch(delay.Cancel(tok.(delay.Token))) // no-op, already fired
//
// Conditions may also be written as expr-lang expressions with [Expr].
package delay
