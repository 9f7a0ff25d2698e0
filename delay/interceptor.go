package delay

import (
	"log/slog"
	"slices"
)

// DispatchFunc sends an action into a store and returns whatever the store
// chooses to return for it.
type DispatchFunc func(action Action) (any, error)

// StoreAPI is the part of a store the interceptor reads from.
//
// Dispatch must route through the full middleware chain (including the
// interceptor itself) so delayed actions are seen by every layer.
type StoreAPI[S any] interface {
	GetState() S
	Dispatch(action Action) (any, error)
}

// Middleware wraps a store's dispatch, in the usual applyMiddleware shape.
type Middleware[S any] func(api StoreAPI[S]) func(next DispatchFunc) DispatchFunc

type entry[S any] struct {
	reg     Registration[S]
	token   Token
	removed bool
}

// Interceptor queues conditional registrations for one store and fires
// them after each state transition.
//
// An Interceptor is not safe for concurrent use. Every call must come from
// the synchronous chain rooted at a single top-level dispatch, which
// includes re-entrant dispatches made by conditions, producers, and the
// reducer.
type Interceptor[S any] struct {
	api    StoreAPI[S]
	cfg    config
	logger *slog.Logger

	queue     []*entry[S]
	nextToken Token
}

// New creates an interceptor bound to api.
func New[S any](api StoreAPI[S], opts ...Option) *Interceptor[S] {
	cfg := newConfig(opts)
	return &Interceptor[S]{
		api:       api,
		cfg:       cfg,
		logger:    cfg.logger.With(slog.String("component", "delay")),
		nextToken: cfg.firstToken,
	}
}

// NewMiddleware returns a Middleware that creates one Interceptor per store.
func NewMiddleware[S any](opts ...Option) Middleware[S] {
	return func(api StoreAPI[S]) func(next DispatchFunc) DispatchFunc {
		return New(api, opts...).Wrap
	}
}

// Pending returns the tokens still queued, in evaluation order.
func (i *Interceptor[S]) Pending() []Token {
	out := make([]Token, 0, len(i.queue))
	for _, e := range i.queue {
		out = append(out, e.token)
	}
	return out
}

// Wrap returns the dispatch function that sits in front of next.
//
//   - Registration: returns the assigned Token, or nil when a Once
//     registration was satisfied immediately.
//   - Cancellation: returns nil. Unknown tokens are ignored.
//   - anything else: forwarded to next, then the queue is scanned. The
//     result of next is returned.
//
// Errors from next, conditions, producers, or delayed dispatches are
// returned as is and stop the current scan.
func (i *Interceptor[S]) Wrap(next DispatchFunc) DispatchFunc {
	return func(action Action) (any, error) {
		switch k, reg, c := classify[S](action); k {
		case kindRegistration:
			return i.register(reg)
		case kindCancellation:
			i.cancel(c.Payload)
			return nil, nil
		default:
			return i.passThrough(next, action)
		}
	}
}

func (i *Interceptor[S]) register(reg Registration[S]) (any, error) {
	if i.cfg.immediate {
		ok, err := reg.Payload.Condition(i.api.GetState(), reg)
		if err != nil {
			return nil, err
		}
		if ok {
			i.logger.Debug("condition met at registration", slog.String("mode", reg.Mode.String()))
			if err := i.fire(reg, reg); err != nil {
				return nil, err
			}
			if reg.Mode == ModeOnce {
				return nil, nil
			}
		}
	}

	tok := i.nextToken
	i.nextToken++
	i.queue = append(i.queue, &entry[S]{reg: reg.withToken(tok), token: tok})
	i.logger.Debug("registration queued",
		slog.Uint64("token", uint64(tok)),
		slog.String("mode", reg.Mode.String()),
		slog.Int("pending", len(i.queue)),
	)
	return tok, nil
}

func (i *Interceptor[S]) cancel(tok Token) {
	idx := slices.IndexFunc(i.queue, func(e *entry[S]) bool { return e.token == tok })
	if idx < 0 {
		i.logger.Debug("cancel ignored, token not pending", slog.Uint64("token", uint64(tok)))
		return
	}
	i.remove(idx)
	i.logger.Debug("registration cancelled", slog.Uint64("token", uint64(tok)))
}

func (i *Interceptor[S]) remove(idx int) {
	i.queue[idx].removed = true
	i.queue = slices.Delete(i.queue, idx, idx+1)
}

func (i *Interceptor[S]) removeEntry(e *entry[S]) {
	if idx := slices.Index(i.queue, e); idx >= 0 {
		i.remove(idx)
	}
}

func (i *Interceptor[S]) passThrough(next DispatchFunc, action Action) (any, error) {
	result, err := next(action)
	if err != nil {
		return result, err
	}
	if len(i.queue) == 0 {
		return result, nil
	}

	// Entries queued while firing belong to the next pass; entries removed
	// while firing are skipped through their removed flag.
	snapshot := slices.Clone(i.queue)
	state := i.api.GetState()

	for _, e := range snapshot {
		if e.removed {
			continue
		}
		ok, err := e.reg.Payload.Condition(state, action)
		if err != nil {
			return result, err
		}
		if !ok {
			continue
		}
		if e.reg.Mode == ModeOnce {
			i.removeEntry(e)
		}
		i.logger.Debug("condition met",
			slog.Uint64("token", uint64(e.token)),
			slog.String("mode", e.reg.Mode.String()),
			slog.String("action_type", typeOf(action)),
		)
		if err := i.fire(e.reg, action); err != nil {
			return result, err
		}
	}
	return result, nil
}

func (i *Interceptor[S]) fire(reg Registration[S], trigger Action) error {
	delayed, err := reg.Payload.Producer(trigger)
	if err != nil {
		return err
	}
	_, err = i.api.Dispatch(delayed)
	return err
}
