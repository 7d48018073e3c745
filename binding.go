package bind

import (
	"context"
	"reflect"

	"github.com/AnatoleLucet/bind/internal"
	"github.com/davecgh/go-spew/spew"
	"github.com/zoobzio/capitan"
)

// Binding is the directed edge from a Dependent to the Source it watches.
// It stays registered on both ends until Break is called.
type Binding struct {
	from      Dependent
	to        Source
	changeKey string
	fn        TransferFunc
	broken    bool
}

func newBinding(from Dependent, to Source, changeKey string, fn TransferFunc) *Binding {
	b := &Binding{
		from:      from,
		to:        to,
		changeKey: changeKey,
		fn:        fn,
	}

	if b.fn == nil {
		b.fn = b.copyValue
	}

	return b
}

// link registers a new binding on both ends.
func link(op string, from Dependent, deps *bindingTracker, to Source, changeKey string, fn TransferFunc) *Binding {
	mustSource(op, to)

	b := newBinding(from, to, changeKey, fn)
	to.addDependent(b)
	deps.add(b)

	capitan.Emit(context.Background(), BindingCreated,
		KeyPath.Field(changeKey),
		KeyDepth.Field(internal.GetRuntime().Depth()),
	)

	return b
}

func mustSource(op string, target Source) {
	if target == nil {
		panic(configError(op, ErrNilTarget))
	}

	if rv := reflect.ValueOf(target); rv.Kind() == reflect.Pointer && rv.IsNil() {
		panic(configError(op, ErrNilTarget))
	}
}

// From returns the dependent end, the one that receives updates.
func (b *Binding) From() Dependent { return b.from }

// To returns the source end, the one being watched.
func (b *Binding) To() Source { return b.to }

// ChangeKey returns the key a change must carry for the binding to run.
func (b *Binding) ChangeKey() string { return b.changeKey }

// Active reports whether the binding has not been broken yet.
func (b *Binding) Active() bool { return !b.broken }

// HandleChange runs the transfer function when changeKey matches the binding's key exactly.
// A result other than untyped nil is applied to the dependent: a Wrapper shows it as text,
// an Observer stores it as its bound value.
func (b *Binding) HandleChange(newVal any, changeKey string) {
	if changeKey != b.changeKey {
		return
	}

	if result := b.fn(newVal, changeKey); result != nil {
		b.from.applyResult(result)
	}
}

// Break removes the binding from both of its ends. Calling it again does nothing.
func (b *Binding) Break() {
	b.from.removeDependency(b)
	b.to.removeDependent(b)

	if b.broken {
		return
	}
	b.broken = true

	capitan.Emit(context.Background(), BindingBroken,
		KeyPath.Field(b.changeKey),
		KeyDepth.Field(internal.GetRuntime().Depth()),
	)
}

// copyValue is the transfer used when none is given. Without a change key it copies
// the whole source value. With one it resolves the key on the source; a missing
// segment emits TraversalFailed and the bound value is whatever was reached.
func (b *Binding) copyValue(_ any, _ string) any {
	if b.changeKey == "" {
		b.from.SetBoundVal(b.to.GetVal(""))
		return nil
	}

	reached, missing, ok := b.to.resolve(b.changeKey)
	if !ok {
		capitan.Emit(context.Background(), TraversalFailed,
			KeyPath.Field(b.changeKey),
			KeySegment.Field(missing),
			KeyValue.Field(spew.Sdump(reached)),
			KeyDepth.Field(internal.GetRuntime().Depth()),
		)
	}

	b.from.SetBoundVal(reached)
	return nil
}
