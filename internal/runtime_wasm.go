//go:build wasm

package internal

import "sync"

var once sync.Once
var globalRuntime *Runtime

// GetRuntime returns the single runtime; wasm programs run on one thread.
func GetRuntime() *Runtime {
	once.Do(func() {
		globalRuntime = NewRuntime()
	})

	return globalRuntime
}

// Enter starts a notification pass on the single runtime.
func Enter() func() {
	return GetRuntime().Enter()
}
