package delay

import (
	"encoding/json"
	"fmt"
)

// Action is any value the wrapped store's reducer accepts.
type Action = any

// Wire tags carried by the actions this package understands.
const (
	TypeOnce   = "ONCE"
	TypeWhen   = "WHEN"
	TypeCancel = "CANCEL"
)

// Mode controls whether a registration fires once or on every match.
type Mode uint8

const (
	ModeOnce Mode = iota
	ModeRepeat
)

func (m Mode) String() string {
	return [...]string{TypeOnce, TypeWhen}[m]
}

// Token identifies a queued registration. Tokens are handed out in
// increasing order by a single Interceptor and are never reused.
type Token uint64

// Condition decides whether a delayed action should fire, given the store
// state and the action that triggered the evaluation.
type Condition[S any] func(state S, trigger Action) (bool, error)

// Predicate adapts an infallible predicate to a Condition.
func Predicate[S any](fn func(state S, trigger Action) bool) Condition[S] {
	return func(state S, trigger Action) (bool, error) {
		return fn(state, trigger), nil
	}
}

// Producer builds the delayed action from the triggering action.
type Producer func(trigger Action) (Action, error)

// Fixed returns a Producer that always yields a.
func Fixed(a Action) Producer {
	return func(Action) (Action, error) { return a, nil }
}

// Derive returns a Producer computing the delayed action from the trigger.
func Derive(fn func(trigger Action) Action) Producer {
	return func(trigger Action) (Action, error) { return fn(trigger), nil }
}

// RegistrationPayload holds the condition/producer pair of a registration.
// Both fields must be non-nil; the interceptor does not validate them.
type RegistrationPayload[S any] struct {
	Condition Condition[S]
	Producer  Producer
}

// Meta carries the token stamped by the interceptor on queued registrations.
type Meta struct {
	Token Token
}

// Registration asks the interceptor to dispatch an action once its
// condition holds. Build one with Once or When and dispatch it through the
// wrapped store.
type Registration[S any] struct {
	Mode    Mode
	Payload RegistrationPayload[S]
	Meta    *Meta
}

// ActionType returns TypeOnce or TypeWhen.
func (r Registration[S]) ActionType() string { return r.Mode.String() }

// withToken returns a copy of r stamped with tok.
func (r Registration[S]) withToken(tok Token) Registration[S] {
	r.Meta = &Meta{Token: tok}
	return r
}

// Once builds a registration that fires a single time and is then dropped.
func Once[S any](cond Condition[S], producer Producer) Registration[S] {
	return Registration[S]{
		Mode:    ModeOnce,
		Payload: RegistrationPayload[S]{Condition: cond, Producer: producer},
	}
}

// When builds a registration that fires every time its condition holds,
// until cancelled.
func When[S any](cond Condition[S], producer Producer) Registration[S] {
	return Registration[S]{
		Mode:    ModeRepeat,
		Payload: RegistrationPayload[S]{Condition: cond, Producer: producer},
	}
}

// Cancellation removes the queued registration holding Payload.
type Cancellation struct {
	Payload Token
}

// Cancel builds a cancellation for tok.
func Cancel(tok Token) Cancellation {
	return Cancellation{Payload: tok}
}

// ActionType returns TypeCancel.
func (Cancellation) ActionType() string { return TypeCancel }

type cancellationJSON struct {
	Type    string `json:"type"`
	Payload Token  `json:"payload"`
}

func (c Cancellation) MarshalJSON() ([]byte, error) {
	return json.Marshal(cancellationJSON{Type: TypeCancel, Payload: c.Payload})
}

func (c *Cancellation) UnmarshalJSON(data []byte) error {
	var raw cancellationJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if raw.Type != TypeCancel {
		return fmt.Errorf("delay: unexpected action type %q, want %q", raw.Type, TypeCancel)
	}
	c.Payload = raw.Payload
	return nil
}

func typeOf(a Action) string {
	if t, ok := a.(interface{ ActionType() string }); ok {
		return t.ActionType()
	}
	return fmt.Sprintf("%T", a)
}

type kind uint8

const (
	kindOther kind = iota
	kindRegistration
	kindCancellation
)

// classify sorts an incoming action into the closed set of shapes the
// interceptor handles. Registrations for a different state type fall
// through as kindOther.
func classify[S any](a Action) (kind, Registration[S], Cancellation) {
	switch v := a.(type) {
	case Registration[S]:
		return kindRegistration, v, Cancellation{}
	case *Registration[S]:
		if v != nil {
			return kindRegistration, *v, Cancellation{}
		}
	case Cancellation:
		return kindCancellation, Registration[S]{}, v
	case *Cancellation:
		if v != nil {
			return kindCancellation, Registration[S]{}, *v
		}
	}
	return kindOther, Registration[S]{}, Cancellation{}
}
