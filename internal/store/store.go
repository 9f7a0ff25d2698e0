// Package store is a minimal reducer store: state changes only by
// dispatching actions through a reducer, optionally behind middleware.
package store

import "github.com/aqilarik/delay/delay"

// Reducer folds an action into the current state.
type Reducer[S any] func(state S, action delay.Action) S

// Store holds state for a single reducer. It is not safe for concurrent use.
type Store[S any] struct {
	state     S
	reducer   Reducer[S]
	dispatch  delay.DispatchFunc
	listeners []func(action delay.Action)
}

var _ delay.StoreAPI[int] = (*Store[int])(nil)

// New creates a store. Middleware are applied so that the first one sees an
// action first; dispatches made through the store's API always enter the
// outermost middleware.
func New[S any](reducer Reducer[S], initial S, mws ...delay.Middleware[S]) *Store[S] {
	s := &Store[S]{state: initial, reducer: reducer}

	var d delay.DispatchFunc = s.reduce
	for i := len(mws) - 1; i >= 0; i-- {
		d = mws[i](s)(d)
	}
	s.dispatch = d
	return s
}

func (s *Store[S]) GetState() S { return s.state }

// Dispatch sends action through the middleware chain. The base dispatch
// returns the action itself.
func (s *Store[S]) Dispatch(action delay.Action) (any, error) {
	return s.dispatch(action)
}

// Subscribe registers fn to run after every action reaches the reducer.
func (s *Store[S]) Subscribe(fn func(action delay.Action)) {
	s.listeners = append(s.listeners, fn)
}

func (s *Store[S]) reduce(action delay.Action) (any, error) {
	s.state = s.reducer(s.state, action)
	for _, fn := range s.listeners {
		fn(action)
	}
	return action, nil
}
