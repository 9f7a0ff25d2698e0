package eval

import (
	"errors"
	"fmt"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/parser"
	"github.com/expr-lang/expr/vm"
)

var ErrNotBool = errors.New("delay: condition expression did not yield a bool")

// Canonical parses src and returns its canonical printed form, so that
// sources differing only in whitespace or redundant parentheses compare equal.
func Canonical(src string) (string, error) {
	tree, err := parser.Parse(src)
	if err != nil {
		return "", err
	}
	return tree.Node.String(), nil
}

// RunBool runs p against env and requires a bool result.
func RunBool(p *vm.Program, env map[string]any) (bool, error) {
	v, err := expr.Run(p, env)
	if err != nil {
		return false, err
	}
	b, ok := v.(bool)
	if !ok {
		return false, fmt.Errorf("%w: got %T", ErrNotBool, v)
	}
	return b, nil
}
