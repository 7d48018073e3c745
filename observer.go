package bind

// Observer holds a value derived from the sources it is bound to.
type Observer struct {
	observerState
}

var _ Dependent = (*Observer)(nil)

// NewObserver creates an observer whose bound value starts as initial (nil is allowed).
func NewObserver(initial any) *Observer {
	return &Observer{observerState{boundVal: initial}}
}

// BindTo binds the observer to target. Only notifications carrying exactly changeKey
// reach the binding. A nil fn copies the source value (or the value at changeKey) into BoundVal.
// Binding twice creates two independent bindings.
func (o *Observer) BindTo(target Source, changeKey string, fn TransferFunc) *Observer {
	link("Observer.BindTo", o, &o.dependencies, target, changeKey, fn)
	return o
}

// BreakBinding breaks every binding to target registered with changeKey.
func (o *Observer) BreakBinding(target Source, changeKey string) *Observer {
	o.breakMatching(target, changeKey)
	return o
}

func (o *Observer) applyResult(v any) {
	o.boundVal = v
}
