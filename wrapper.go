package bind

import (
	"encoding/json"
	"fmt"
	"iter"
	"slices"
	"strings"
)

// Change keys a Wrapper notifies with, one per presented facet.
const (
	ChangeText  = "text"
	ChangeStyle = "style"
	ChangeValue = "value"
)

// Wrapper drives an Element and takes part in bindings on both ends:
// it can be bound to sources, and other dependents can bind to it.
type Wrapper struct {
	observableState
	observerState

	element  Element
	parent   *Wrapper
	children []*Wrapper
}

var (
	_ Source    = (*Wrapper)(nil)
	_ Dependent = (*Wrapper)(nil)
)

// Wrap creates a Wrapper around el. Inputs and textareas notify "value" on their
// native input event, selects on their change event.
func Wrap(el Element, opts ...Option) *Wrapper {
	if el == nil {
		panic(configError("Wrap", ErrNilElement))
	}

	w := &Wrapper{element: el}

	switch w.tag() {
	case "input", "textarea":
		el.On("input", w.valueChanged)
	case "select":
		el.On("change", w.valueChanged)
	}

	for _, opt := range opts {
		opt(w)
	}

	return w
}

func (w *Wrapper) Element() Element {
	return w.element
}

func (w *Wrapper) tag() string {
	return strings.ToLower(w.element.Tag())
}

func (w *Wrapper) valueChanged() {
	w.Notify(w.GetVal(ChangeValue), ChangeValue)
}

// Notify hands newVal to every dependent of the wrapper.
func (w *Wrapper) Notify(newVal any, changeKey string) {
	w.notify(w, newVal, changeKey)
}

// GetVal returns the presented facet named by changeKey: "text", "style",
// or the element value for anything else. Checkbox inputs report their checked state.
func (w *Wrapper) GetVal(changeKey string) any {
	switch changeKey {
	case ChangeText:
		return w.Text()
	case ChangeStyle:
		return w.Style()
	}

	if w.isCheckbox() {
		return w.element.Checked()
	}

	return w.element.Value()
}

// SetVal sets the element value (the checked state for a checkbox given a bool)
// and notifies "value".
func (w *Wrapper) SetVal(v any) *Wrapper {
	if checked, ok := v.(bool); ok && w.isCheckbox() {
		w.element.SetChecked(checked)
	} else {
		w.element.SetValue(textOf(v))
	}

	w.Notify(v, ChangeValue)
	return w
}

func (w *Wrapper) isCheckbox() bool {
	typ, _ := w.element.Attr("type")
	return w.tag() == "input" && strings.EqualFold(typ, "checkbox")
}

func (w *Wrapper) Text() string {
	return w.element.Text()
}

// SetText sets the presented text and notifies "text".
func (w *Wrapper) SetText(text string) *Wrapper {
	w.element.SetText(text)
	w.Notify(text, ChangeText)
	return w
}

func (w *Wrapper) Style() string {
	style, _ := w.element.Attr("style")
	return style
}

// SetStyle replaces the style attribute and notifies "style".
func (w *Wrapper) SetStyle(style string) *Wrapper {
	w.element.SetAttr("style", style)
	w.Notify(w.Style(), ChangeStyle)
	return w
}

// AppendStyle adds declarations after the current style and notifies "style" with the result.
func (w *Wrapper) AppendStyle(style string) *Wrapper {
	current := strings.TrimSpace(w.Style())
	if current != "" && !strings.HasSuffix(current, ";") {
		current += "; "
	}

	return w.SetStyle(current + style)
}

func (w *Wrapper) Attr(name string) (string, bool) {
	return w.element.Attr(name)
}

func (w *Wrapper) SetAttr(name, value string) *Wrapper {
	w.element.SetAttr(name, value)
	return w
}

// BindTo binds the wrapper to target. Without fn, the new value is shown as text.
// Without changeKey, binding to another Wrapper follows its "value" facet and
// binding to an Observable follows the whole value.
func (w *Wrapper) BindTo(target Source, changeKey string, fn TransferFunc) *Wrapper {
	mustSource("Wrapper.BindTo", target)

	if fn == nil {
		fn = func(nv any, _ string) any {
			w.SetText(textOf(nv))
			return nil
		}
	}

	if changeKey == "" {
		changeKey = target.defaultChangeKey()
	}

	link("Wrapper.BindTo", w, &w.dependencies, target, changeKey, fn)
	return w
}

// BindTextTo shows the current value of target as text right away, then binds like BindTo.
func (w *Wrapper) BindTextTo(target Source, changeKey string, fn TransferFunc) *Wrapper {
	mustSource("Wrapper.BindTextTo", target)

	if changeKey == "" {
		changeKey = target.defaultChangeKey()
	}

	w.SetText(displayText(target.GetVal(changeKey)))
	return w.BindTo(target, changeKey, fn)
}

// BindStyleTo binds the style attribute to target.
func (w *Wrapper) BindStyleTo(target Source, changeKey string, fn TransferFunc) *Wrapper {
	if fn == nil {
		fn = func(nv any, _ string) any {
			w.SetStyle(textOf(nv))
			return nil
		}
	}

	return w.BindTo(target, changeKey, fn)
}

// BindValueTo binds the element value to target.
func (w *Wrapper) BindValueTo(target Source, changeKey string, fn TransferFunc) *Wrapper {
	if fn == nil {
		fn = func(nv any, _ string) any {
			w.SetVal(nv)
			return nil
		}
	}

	return w.BindTo(target, changeKey, fn)
}

// BreakBinding breaks every binding to target registered with changeKey.
func (w *Wrapper) BreakBinding(target Source, changeKey string) *Wrapper {
	w.breakMatching(target, changeKey)
	return w
}

func (w *Wrapper) applyResult(v any) {
	w.SetText(textOf(v))
}

func (w *Wrapper) defaultChangeKey() string {
	return ChangeValue
}

// resolve reads the facet named by changeKey; facets always exist.
func (w *Wrapper) resolve(changeKey string) (any, string, bool) {
	return w.GetVal(changeKey), "", true
}

// NewWrap creates a child element with the given tag and wraps it.
func (w *Wrapper) NewWrap(tag string, opts ...Option) *Wrapper {
	child := Wrap(w.element.AppendChild(tag), opts...)
	child.parent = w
	w.children = append(w.children, child)
	return child
}

func (w *Wrapper) Parent() *Wrapper {
	return w.parent
}

// Children iterates the wrappers created through NewWrap, in creation order.
func (w *Wrapper) Children() iter.Seq[*Wrapper] {
	return func(yield func(*Wrapper) bool) {
		for _, child := range slices.Clone(w.children) {
			if !yield(child) {
				return
			}
		}
	}
}

// Kill removes the element from its host and detaches the wrapper from its parent.
// Bindings are left untouched.
func (w *Wrapper) Kill() {
	w.element.Remove()

	if w.parent != nil {
		w.parent.children = slices.DeleteFunc(w.parent.children, func(c *Wrapper) bool {
			return c == w
		})
		w.parent = nil
	}
}

func (w *Wrapper) KillChildren() {
	for child := range w.Children() {
		child.Kill()
	}
	w.children = nil
}

func textOf(v any) string {
	switch v := v.(type) {
	case nil:
		return ""
	case string:
		return v
	case fmt.Stringer:
		return v.String()
	}

	return fmt.Sprint(v)
}

// displayText renders strings as is and anything else as JSON.
func displayText(v any) string {
	if s, ok := v.(string); ok {
		return s
	}

	data, err := json.Marshal(v)
	if err != nil {
		return textOf(v)
	}

	return string(data)
}
