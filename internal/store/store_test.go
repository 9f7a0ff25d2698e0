package store

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aqilarik/delay/delay"
)

func TestDispatchAppliesReducer(t *testing.T) {
	s := New[map[string]any](Merge, map[string]any{"a": 1})
	var seen []string
	s.Subscribe(func(a delay.Action) { seen = append(seen, TypeOf(a)) })

	out, err := s.Dispatch(Basic{Type: "SET", Payload: map[string]any{"b": 2}})
	require.NoError(t, err)

	assert.Equal(t, Basic{Type: "SET", Payload: map[string]any{"b": 2}}, out)
	assert.Equal(t, map[string]any{"a": 1, "b": 2}, s.GetState())
	assert.Equal(t, []string{"SET"}, seen)
}

func TestMergeDoesNotMutateInput(t *testing.T) {
	in := map[string]any{"a": 1}

	out := Merge(in, Basic{Type: "SET", Payload: map[string]any{"a": 2}})

	assert.Equal(t, map[string]any{"a": 1}, in)
	assert.Equal(t, map[string]any{"a": 2}, out)
	assert.Equal(t, in, Merge(in, "not a basic action"))
}

func TestMiddlewareOrder(t *testing.T) {
	var order []string
	tag := func(name string) delay.Middleware[int] {
		return func(delay.StoreAPI[int]) func(delay.DispatchFunc) delay.DispatchFunc {
			return func(next delay.DispatchFunc) delay.DispatchFunc {
				return func(a delay.Action) (any, error) {
					order = append(order, name)
					return next(a)
				}
			}
		}
	}
	count := func(n int, _ delay.Action) int { return n + 1 }

	s := New[int](count, 0, tag("outer"), tag("inner"))
	_, err := s.Dispatch(Basic{Type: "INC"})
	require.NoError(t, err)

	assert.Equal(t, []string{"outer", "inner"}, order)
	assert.Equal(t, 1, s.GetState())
}

func TestMiddlewareErrorStopsDispatch(t *testing.T) {
	boom := errors.New("boom")
	reject := func(delay.StoreAPI[int]) func(delay.DispatchFunc) delay.DispatchFunc {
		return func(delay.DispatchFunc) delay.DispatchFunc {
			return func(delay.Action) (any, error) { return nil, boom }
		}
	}
	count := func(n int, _ delay.Action) int { return n + 1 }

	s := New[int](count, 0, reject)
	_, err := s.Dispatch(Basic{Type: "INC"})

	assert.ErrorIs(t, err, boom)
	assert.Zero(t, s.GetState())
}

func TestTypeOf(t *testing.T) {
	assert.Equal(t, "X", TypeOf(Basic{Type: "X"}))
	assert.Equal(t, delay.TypeCancel, TypeOf(delay.Cancel(1)))
	assert.Equal(t, "", TypeOf(42))
}
