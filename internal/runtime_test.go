//go:build !wasm

package internal

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRuntime(t *testing.T) {
	t.Run("nested enter and leave", func(t *testing.T) {
		r := NewRuntime()

		leaveOuter := r.Enter()
		leaveInner := r.Enter()
		assert.Equal(t, 2, r.Depth())

		leaveInner()
		leaveOuter()
		assert.Equal(t, 0, r.Depth())
		assert.Equal(t, 2, r.MaxDepth())

		r.Reset()
		assert.Equal(t, 0, r.MaxDepth())
	})

	t.Run("one runtime per goroutine", func(t *testing.T) {
		leave := Enter()
		defer leave()

		main := GetRuntime()
		assert.Same(t, main, GetRuntime())
		assert.Equal(t, 1, main.Depth())

		var other *Runtime
		var wg sync.WaitGroup
		wg.Go(func() {
			defer Enter()()
			other = GetRuntime()
		})
		wg.Wait()

		assert.NotSame(t, main, other)
		assert.Equal(t, 1, main.Depth())
	})

	t.Run("runtime is dropped after the outermost pass", func(t *testing.T) {
		leaveOuter := Enter()
		r := GetRuntime()

		leaveInner := Enter()
		assert.Same(t, r, GetRuntime())
		assert.Equal(t, 2, r.Depth())

		leaveInner()
		assert.Same(t, r, GetRuntime())

		leaveOuter()
		_, kept := runtimes.Load(getGID())
		assert.False(t, kept)
		assert.Equal(t, 0, GetRuntime().Depth())
	})

	t.Run("outside a pass nothing is kept", func(t *testing.T) {
		assert.Equal(t, 0, GetRuntime().Depth())
		_, kept := runtimes.Load(getGID())
		assert.False(t, kept)
	})
}
