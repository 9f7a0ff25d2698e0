package store

import (
	"maps"

	"github.com/aqilarik/delay/delay"
)

// Basic is a plain {type, payload} action.
type Basic struct {
	Type    string         `yaml:"type" json:"type"`
	Payload map[string]any `yaml:"payload,omitempty" json:"payload,omitempty"`
}

func (b Basic) ActionType() string { return b.Type }

// Merge folds a Basic action into map state by shallow-merging its payload.
// Other actions leave the state untouched. The input map is never mutated.
func Merge(state map[string]any, action delay.Action) map[string]any {
	b, ok := action.(Basic)
	if !ok || len(b.Payload) == 0 {
		return state
	}
	next := make(map[string]any, len(state)+len(b.Payload))
	maps.Copy(next, state)
	maps.Copy(next, b.Payload)
	return next
}

// TypeOf returns the action's type tag, or "" when it has none.
func TypeOf(action delay.Action) string {
	if t, ok := action.(interface{ ActionType() string }); ok {
		return t.ActionType()
	}
	return ""
}
