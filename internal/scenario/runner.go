// Package scenario loads YAML scenarios and runs them through a store
// wrapped by the delay interceptor.
package scenario

import (
	"fmt"

	"github.com/aqilarik/delay/delay"
	"github.com/aqilarik/delay/internal/store"
)

type state = map[string]any

// Run registers every registration in order, then dispatches every action.
func Run(f *File, opts ...delay.Option) (*Result, error) {
	var ic *delay.Interceptor[state]
	mw := func(api delay.StoreAPI[state]) func(delay.DispatchFunc) delay.DispatchFunc {
		ic = delay.New(api, opts...)
		return ic.Wrap
	}
	s := store.New[state](store.Merge, f.State, mw)

	res := &Result{}
	s.Subscribe(func(a delay.Action) {
		res.Log = append(res.Log, store.TypeOf(a))
	})

	tokens := make(map[string]delay.Token, len(f.Registrations))
	names := make(map[delay.Token]string, len(f.Registrations))
	for _, spec := range f.Registrations {
		reg, err := buildRegistration(spec)
		if err != nil {
			return nil, err
		}
		out, err := s.Dispatch(reg)
		if err != nil {
			return nil, fmt.Errorf("register %q: %w", spec.Name, err)
		}
		if tok, ok := out.(delay.Token); ok {
			tokens[spec.Name] = tok
			names[tok] = spec.Name
		}
	}

	for i, step := range f.Actions {
		var a delay.Action = store.Basic{Type: step.Type, Payload: step.Payload}
		if step.Cancel != "" {
			tok, ok := tokens[step.Cancel]
			if !ok {
				// Fired at registration; nothing left to cancel.
				continue
			}
			a = delay.Cancel(tok)
		}
		if _, err := s.Dispatch(a); err != nil {
			return nil, fmt.Errorf("action %d: %w", i, err)
		}
	}

	res.State = s.GetState()
	for _, tok := range ic.Pending() {
		res.Pending = append(res.Pending, names[tok])
	}
	return res, nil
}

func buildRegistration(spec RegistrationSpec) (delay.Registration[state], error) {
	cond, err := delay.Expr[state](spec.Condition)
	if err != nil {
		return delay.Registration[state]{}, fmt.Errorf("registration %q: %w", spec.Name, err)
	}

	producer := delay.Fixed(spec.Dispatch)
	if spec.Derive {
		payload := spec.Dispatch.Payload
		producer = delay.Derive(func(trigger delay.Action) delay.Action {
			return store.Basic{Type: "__" + store.TypeOf(trigger) + "__", Payload: payload}
		})
	}

	if spec.Mode == "when" {
		return delay.When(cond, producer), nil
	}
	return delay.Once(cond, producer), nil
}
