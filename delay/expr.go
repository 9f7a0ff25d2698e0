package delay

import (
	"fmt"
	"strings"

	"github.com/aqilarik/delay/internal/eval"
)

var programs = eval.NewCache()

// Expr compiles an expr-lang expression into a Condition. The expression
// sees `state` (the store state), `action` (the triggering action) and
// `actionType` (the trigger's ActionType, or its Go type name), and must
// evaluate to a bool.
//
//	cond, err := delay.Expr[map[string]any](`state.saved && actionType == "SAVE"`)
//
// Syntax errors are reported here; evaluation errors are returned by the
// condition and so surface from the dispatch that triggered it.
func Expr[S any](source string) (Condition[S], error) {
	source = strings.TrimSpace(source)
	if source == "" {
		return nil, ErrEmptyExpr
	}
	canonical, err := eval.Canonical(source)
	if err != nil {
		return nil, fmt.Errorf("delay: parse condition %q: %w", source, err)
	}
	prog, err := programs.GetOrCompile(Fingerprint(canonical), canonical)
	if err != nil {
		return nil, fmt.Errorf("delay: compile condition %q: %w", source, err)
	}
	return func(state S, trigger Action) (bool, error) {
		return eval.RunBool(prog, map[string]any{
			"state":      state,
			"action":     trigger,
			"actionType": typeOf(trigger),
		})
	}, nil
}

// MustExpr is like Expr but panics if the expression cannot be compiled.
func MustExpr[S any](source string) Condition[S] {
	c, err := Expr[S](source)
	if err != nil {
		panic(err)
	}
	return c
}
