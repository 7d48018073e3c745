package internal

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type point struct {
	X, Y   int
	Labels map[string]string
	hidden int
}

func TestGet(t *testing.T) {
	t.Run("empty path returns container", func(t *testing.T) {
		v := map[string]any{"a": 1}
		got, err := Get(v, "")
		require.NoError(t, err)
		assert.Equal(t, v, got)
	})

	t.Run("nested maps", func(t *testing.T) {
		v := map[string]any{"outer": map[string]any{"inner": "hello"}}
		got, err := Get(v, "outer.inner")
		require.NoError(t, err)
		assert.Equal(t, "hello", got)
	})

	t.Run("slice index", func(t *testing.T) {
		v := map[string]any{"items": []any{"x", "y"}}
		got, err := Get(v, "items.1")
		require.NoError(t, err)
		assert.Equal(t, "y", got)
	})

	t.Run("struct field through pointer", func(t *testing.T) {
		v := &point{X: 3, Labels: map[string]string{"name": "origin"}}
		got, err := Get(v, "Labels.name")
		require.NoError(t, err)
		assert.Equal(t, "origin", got)
	})

	t.Run("missing segment", func(t *testing.T) {
		v := map[string]any{"outer": map[string]any{}}
		_, err := Get(v, "outer.inner.deep")

		var terr *TraversalError
		require.ErrorAs(t, err, &terr)
		assert.Equal(t, "inner", terr.Segment)
		assert.ErrorIs(t, err, ErrSegmentNotFound)
	})

	t.Run("unexported field", func(t *testing.T) {
		_, err := Get(point{hidden: 1}, "hidden")
		assert.ErrorIs(t, err, ErrSegmentNotFound)
	})

	t.Run("out of range index", func(t *testing.T) {
		_, err := Get([]int{1}, "4")
		assert.ErrorIs(t, err, ErrSegmentNotFound)
	})
}

func TestSet(t *testing.T) {
	t.Run("mutates nested map in place", func(t *testing.T) {
		inner := map[string]any{"inner": 0}
		v := map[string]any{"outer": inner}

		require.NoError(t, Set(v, "outer.inner", 5))
		assert.Equal(t, 5, inner["inner"])
	})

	t.Run("adds new final key", func(t *testing.T) {
		v := map[string]any{}
		require.NoError(t, Set(v, "a", "b"))
		assert.Equal(t, map[string]any{"a": "b"}, v)
	})

	t.Run("typed map converts numbers", func(t *testing.T) {
		v := map[string]float64{"a": 1}
		require.NoError(t, Set(v, "a", 2))
		assert.Equal(t, 2.0, v["a"])
	})

	t.Run("number conversions must be exact", func(t *testing.T) {
		tests := []struct {
			name  string
			dst   any
			value any
			want  any
		}{
			{"int into float64", map[string]float64{}, 3, 3.0},
			{"whole float into int", map[string]int{}, 2.0, 2},
			{"small int into uint8", map[string]uint8{}, 200, uint8(200)},
			{"int into float32", map[string]float32{}, 7, float32(7)},
			{"fraction into int", map[string]int{}, 5.7, nil},
			{"negative into uint8", map[string]uint8{}, -1, nil},
			{"negative into uint64", map[string]uint64{}, int64(-1), nil},
			{"overflow into uint8", map[string]uint8{}, 300, nil},
			{"overflow into int8", map[string]int8{}, 128, nil},
			{"large uint64 into int64", map[string]int64{}, uint64(math.MaxUint64), nil},
			{"precision into float32", map[string]float32{}, 0.1, nil},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				err := Set(tt.dst, "a", tt.value)
				got, getErr := Get(tt.dst, "a")

				if tt.want == nil {
					assert.ErrorIs(t, err, ErrNotAssignable)
					assert.ErrorIs(t, getErr, ErrSegmentNotFound)
					return
				}

				require.NoError(t, err)
				require.NoError(t, getErr)
				assert.Equal(t, tt.want, got)
			})
		}
	})

	t.Run("slice element", func(t *testing.T) {
		v := []string{"x", "y"}
		require.NoError(t, Set(v, "0", "z"))
		assert.Equal(t, []string{"z", "y"}, v)
	})

	t.Run("struct field through pointer", func(t *testing.T) {
		v := &point{}
		require.NoError(t, Set(v, "X", 7))
		assert.Equal(t, 7, v.X)
	})

	t.Run("struct by value is not assignable", func(t *testing.T) {
		err := Set(point{}, "X", 7)
		assert.ErrorIs(t, err, ErrNotAssignable)
	})

	t.Run("type mismatch", func(t *testing.T) {
		err := Set(map[string]int{}, "a", "nope")
		assert.ErrorIs(t, err, ErrNotAssignable)
	})

	t.Run("nil value stores zero", func(t *testing.T) {
		v := map[string]any{"a": 1}
		require.NoError(t, Set(v, "a", nil))
		assert.Contains(t, v, "a")
		assert.Nil(t, v["a"])
	})

	t.Run("missing intermediate", func(t *testing.T) {
		err := Set(map[string]any{}, "a.b", 1)

		var terr *TraversalError
		require.ErrorAs(t, err, &terr)
		assert.Equal(t, "a", terr.Segment)
	})

	t.Run("empty path", func(t *testing.T) {
		assert.ErrorIs(t, Set(map[string]any{}, "", 1), ErrEmptyPath)
	})
}

func TestTraverse(t *testing.T) {
	t.Run("full path", func(t *testing.T) {
		reached, missing, ok := Traverse(map[string]any{"a": map[string]any{"b": 2}}, "a.b")
		assert.True(t, ok)
		assert.Empty(t, missing)
		assert.Equal(t, 2, reached)
	})

	t.Run("stops at the first missing segment", func(t *testing.T) {
		inner := map[string]any{"b": 2}
		reached, missing, ok := Traverse(map[string]any{"a": inner}, "a.c.d")
		assert.False(t, ok)
		assert.Equal(t, "c", missing)
		assert.Equal(t, inner, reached)
	})

	t.Run("non containers pass through", func(t *testing.T) {
		reached, _, ok := Traverse("plain", "a.b")
		assert.True(t, ok)
		assert.Equal(t, "plain", reached)
	})
}
