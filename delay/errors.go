package delay

import (
	"errors"

	"github.com/aqilarik/delay/internal/eval"
)

var (
	ErrEmptyExpr = errors.New("delay: empty condition expression")
	ErrNotBool   = eval.ErrNotBool
)
