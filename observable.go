package bind

import (
	"github.com/AnatoleLucet/bind/internal"
)

// Observable holds a value and notifies its dependents each time the value is set.
type Observable struct {
	observableState

	value any
}

var _ Source = (*Observable)(nil)

// NewObservable creates an observable holding initial.
func NewObservable(initial any) *Observable {
	return &Observable{value: initial}
}

// GetVal returns the value at the dot-separated changeKey, or the whole value when changeKey is "".
// A path that cannot be resolved yields nil.
func (o *Observable) GetVal(changeKey string) any {
	v, err := internal.Get(o.value, changeKey)
	if err != nil {
		return nil
	}

	return v
}

// SetVal replaces the value, or with a changeKey assigns newVal in place at that path,
// then notifies every dependent. It returns the whole value after the change.
// Nobody is notified when the path cannot be assigned.
func (o *Observable) SetVal(newVal any, changeKey string) (any, error) {
	if changeKey != "" {
		if err := internal.Set(o.value, changeKey, newVal); err != nil {
			return o.value, &BindError{Op: "Observable.SetVal", Kind: KindTraversal, Err: err}
		}
	} else {
		o.value = newVal
	}

	o.Notify(newVal, changeKey)

	return o.value, nil
}

// Notify hands newVal to every dependent without touching the stored value.
func (o *Observable) Notify(newVal any, changeKey string) {
	o.notify(o, newVal, changeKey)
}

func (o *Observable) defaultChangeKey() string {
	return ""
}

// resolve walks the value one stored key at a time, stopping at the first missing one.
func (o *Observable) resolve(changeKey string) (any, string, bool) {
	return internal.Traverse(o.value, changeKey)
}
