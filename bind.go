// Package bind connects value-holding entities through explicit, breakable bindings.
//
// An Observable holds a value and notifies the Bindings that depend on it whenever
// SetVal is called. An Observer holds a value derived from whatever it is bound to.
// A Wrapper is both at once and drives an external presented Element.
//
// Propagation is synchronous and depth-first: SetVal calls every matching Binding
// before returning, and a transfer function may itself call SetVal. Cycles are not
// detected; a cyclic graph recurses until a transfer function stops writing.
package bind

// TransferFunc computes the dependent's new value from the value that was just set.
// Returning an untyped nil means the function already applied the update itself.
// Any other value, including 0, "", false and typed nils such as a nil map
// or slice, is applied by the Binding.
type TransferFunc func(newVal any, changeKey string) any

// Source is the "to" end of a Binding: an *Observable or a *Wrapper.
type Source interface {
	// GetVal returns the value at the dot-separated changeKey, or the whole value for "".
	GetVal(changeKey string) any

	// Dependents returns every active Binding pointing at this source.
	Dependents() []*Binding

	defaultChangeKey() string
	resolve(changeKey string) (reached any, missing string, ok bool)
	addDependent(b *Binding)
	removeDependent(b *Binding)
}

// Dependent is the "from" end of a Binding: an *Observer or a *Wrapper.
type Dependent interface {
	BoundVal() any
	SetBoundVal(v any)

	// GetBindings returns every active Binding this dependent participates in.
	GetBindings() []*Binding

	applyResult(v any)
	removeDependency(b *Binding)
}
