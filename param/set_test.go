package param_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/paramgrid/param"
)

func TestSet_PreservesDeclarationOrder(t *testing.T) {
	s := param.NewSet(
		param.Values("color", "red"),
		param.Values("size", "small"),
		param.Values("variant", "A"),
	)
	assert.Equal(t, 3, s.Len())
	assert.Equal(t, []string{"color", "size", "variant"}, s.Names())
	assert.Equal(t, "size", s.At(1).Name())
}

func TestSet_WithDoesNotMutateReceiver(t *testing.T) {
	base := param.NewSet(param.Values("a", 1))
	ext := base.With(param.Values("b", 2))

	assert.Equal(t, []string{"a"}, base.Names())
	assert.Equal(t, []string{"a", "b"}, ext.Names())

	// Two children of one parent never share appended storage.
	left := ext.With(param.Values("left", 1))
	right := ext.With(param.Values("right", 1))
	assert.Equal(t, []string{"a", "b", "left"}, left.Names())
	assert.Equal(t, []string{"a", "b", "right"}, right.Names())
}

func TestSet_CollisionReplacesAndMovesToEnd(t *testing.T) {
	s := param.NewSet(
		param.Values("a", 1),
		param.Values("b", 2),
		param.Values("c", 3),
	).With(param.Values("a", 10, 11))

	assert.Equal(t, []string{"b", "c", "a"}, s.Names())
	p, ok := s.Get("a")
	require.True(t, ok)
	assert.Equal(t, "a(fixed, 2 values)", p.String())
}

func TestSet_DuplicateInsideOneCallLastWins(t *testing.T) {
	s := param.NewSet(
		param.Values("x", 1),
		param.Values("y", 2),
		param.Values("x", 3, 4, 5),
	)
	assert.Equal(t, []string{"y", "x"}, s.Names())
	p, _ := s.Get("x")
	assert.Equal(t, "x(fixed, 3 values)", p.String())
}

func TestSet_ParamsReturnsCopy(t *testing.T) {
	s := param.NewSet(param.Values("a", 1))
	ps := s.Params()
	ps[0] = param.Values("z", 0)
	assert.Equal(t, []string{"a"}, s.Names())
}

func TestSet_IgnoresZeroParam(t *testing.T) {
	s := param.NewSet(param.Param{}, param.Values("a", 1))
	assert.Equal(t, []string{"a"}, s.Names())
}

func TestSet_All(t *testing.T) {
	s := param.NewSet(param.Values("a"), param.Values("b"))
	var idx []int
	var names []string
	for i, p := range s.All() {
		idx = append(idx, i)
		names = append(names, p.Name())
	}
	assert.Equal(t, []int{0, 1}, idx)
	assert.Equal(t, []string{"a", "b"}, names)
}
