package eval

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCanonicalNormalizesSpacing(t *testing.T) {
	a, err := Canonical("state.saved   ==true")
	require.NoError(t, err)
	b, err := Canonical("state.saved == true")
	require.NoError(t, err)
	assert.Equal(t, a, b)

	_, err = Canonical("state.saved ==")
	assert.Error(t, err)
}

func TestCacheCompilesOncePerKey(t *testing.T) {
	c := NewCache()

	p1, err := c.GetOrCompile("k", "1 < 2")
	require.NoError(t, err)
	p2, err := c.GetOrCompile("k", "ignored on hit")
	require.NoError(t, err)

	assert.Same(t, p1, p2)
	assert.Equal(t, 1, c.Len())

	_, err = c.GetOrCompile("bad", "1 <")
	assert.Error(t, err)
	assert.Equal(t, 1, c.Len(), "failed compilations are not cached")
}

func TestRunBool(t *testing.T) {
	c := NewCache()

	p, err := c.GetOrCompile("gt", "x > 1")
	require.NoError(t, err)
	ok, err := RunBool(p, map[string]any{"x": 2})
	require.NoError(t, err)
	assert.True(t, ok)

	p, err = c.GetOrCompile("sum", "x + 1")
	require.NoError(t, err)
	_, err = RunBool(p, map[string]any{"x": 2})
	assert.ErrorIs(t, err, ErrNotBool)
}
