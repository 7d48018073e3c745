package internal

// Runtime tracks the propagation state of the goroutine it belongs to.
// Propagation is a plain synchronous call chain, so the only state worth keeping
// is how deep into nested notifications the current call is.
type Runtime struct {
	depth    int
	maxDepth int
}

func NewRuntime() *Runtime {
	return &Runtime{}
}

// Enter marks the start of a notification pass and returns the function ending it.
func (r *Runtime) Enter() func() {
	r.depth++
	if r.depth > r.maxDepth {
		r.maxDepth = r.depth
	}

	return func() { r.depth-- }
}

// Depth is the number of notification passes currently on the stack.
func (r *Runtime) Depth() int {
	return r.depth
}

// MaxDepth is the deepest nesting observed since the last Reset.
func (r *Runtime) MaxDepth() int {
	return r.maxDepth
}

func (r *Runtime) Reset() {
	r.maxDepth = r.depth
}
