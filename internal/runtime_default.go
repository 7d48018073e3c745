//go:build !wasm

package internal

import (
	"sync"

	"github.com/petermattis/goid"
)

// runtimes holds one entry per goroutine that is inside a notification pass.
var runtimes sync.Map

// GetRuntime returns the runtime of the calling goroutine.
// Outside a pass it is a fresh runtime at depth 0 that is not kept.
func GetRuntime() *Runtime {
	if r, ok := runtimes.Load(getGID()); ok {
		return r.(*Runtime)
	}

	return NewRuntime()
}

// Enter starts a notification pass on the calling goroutine's runtime.
// The runtime is dropped when its outermost pass ends.
func Enter() func() {
	gid := getGID()
	v, _ := runtimes.LoadOrStore(gid, NewRuntime())
	r := v.(*Runtime)

	leave := r.Enter()
	return func() {
		leave()
		if r.depth == 0 {
			runtimes.Delete(gid)
		}
	}
}

func getGID() int64 {
	return goid.Get()
}
