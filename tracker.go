package bind

import (
	"slices"

	"github.com/AnatoleLucet/bind/internal"
)

// bindingTracker is an ordered list of bindings.
// Removal builds a new slice so that slices handed out earlier stay intact
// while callers iterate them.
type bindingTracker struct {
	bindings []*Binding
}

func (t *bindingTracker) add(b *Binding) {
	t.bindings = append(t.bindings, b)
}

func (t *bindingTracker) remove(b *Binding) {
	if !slices.Contains(t.bindings, b) {
		return
	}

	t.bindings = slices.DeleteFunc(slices.Clone(t.bindings), func(other *Binding) bool {
		return other == b
	})
}

func (t *bindingTracker) list() []*Binding {
	return t.bindings
}

// snapshot returns a copy that is safe to iterate while bindings are added or broken.
func (t *bindingTracker) snapshot() []*Binding {
	return slices.Clone(t.bindings)
}

// observableState is the dependents side shared by Observable and Wrapper.
type observableState struct {
	dependents bindingTracker
}

func (s *observableState) Dependents() []*Binding {
	return s.dependents.list()
}

func (s *observableState) addDependent(b *Binding) {
	s.dependents.add(b)
}

func (s *observableState) removeDependent(b *Binding) {
	s.dependents.remove(b)
}

// notify hands the change to every binding registered at the start of the pass, in order.
func (s *observableState) notify(self Source, newVal any, changeKey string) {
	leave := internal.Enter()
	defer leave()

	for _, b := range s.dependents.snapshot() {
		if b.to == self && b.Active() {
			b.HandleChange(newVal, changeKey)
		}
	}
}

// observerState is the dependencies side shared by Observer and Wrapper.
type observerState struct {
	boundVal     any
	dependencies bindingTracker
}

// BoundVal returns the last value derived from the bound sources.
func (s *observerState) BoundVal() any {
	return s.boundVal
}

func (s *observerState) SetBoundVal(v any) {
	s.boundVal = v
}

// GetBindings returns the live list of bindings; snapshot it before breaking in bulk.
func (s *observerState) GetBindings() []*Binding {
	return s.dependencies.list()
}

// BreakAll breaks every binding this dependent participates in.
func (s *observerState) BreakAll() {
	for _, b := range s.dependencies.snapshot() {
		b.Break()
	}
}

func (s *observerState) removeDependency(b *Binding) {
	s.dependencies.remove(b)
}

func (s *observerState) breakMatching(target Source, changeKey string) {
	for _, b := range s.dependencies.snapshot() {
		if b.to == target && b.changeKey == changeKey {
			b.Break()
		}
	}
}
