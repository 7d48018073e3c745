// Package dom is an in-memory element tree implementing bind.Element.
// It stands in for a real toolkit in tests and headless programs.
package dom

import (
	"maps"
	"slices"
	"strings"

	"github.com/AnatoleLucet/bind"
)

type Element struct {
	tag     string
	text    string
	value   string
	checked bool
	attrs   map[string]string

	listeners map[string][]func()

	parent   *Element
	children []*Element
}

var _ bind.Element = (*Element)(nil)

// New creates a detached element. Tags are stored lower-case.
func New(tag string) *Element {
	return &Element{
		tag:       strings.ToLower(tag),
		attrs:     make(map[string]string),
		listeners: make(map[string][]func()),
	}
}

func (e *Element) Tag() string { return e.tag }

func (e *Element) Text() string           { return e.text }
func (e *Element) SetText(text string)    { e.text = text }
func (e *Element) Value() string          { return e.value }
func (e *Element) SetValue(v string)      { e.value = v }
func (e *Element) Checked() bool          { return e.checked }
func (e *Element) SetChecked(c bool)      { e.checked = c }
func (e *Element) SetAttr(name, v string) { e.attrs[name] = v }

func (e *Element) Attr(name string) (string, bool) {
	v, ok := e.attrs[name]
	return v, ok
}

// Attrs returns a copy of every attribute set on the element.
func (e *Element) Attrs() map[string]string {
	return maps.Clone(e.attrs)
}

func (e *Element) On(event string, fn func()) {
	e.listeners[event] = append(e.listeners[event], fn)
}

// Dispatch runs the listeners registered for event, as a user interaction would.
func (e *Element) Dispatch(event string) {
	for _, fn := range slices.Clone(e.listeners[event]) {
		fn()
	}
}

// Input sets the value and dispatches "input", like typing into a field.
func (e *Element) Input(v string) {
	e.value = v
	e.Dispatch("input")
}

// Select sets the value and dispatches "change", like picking an option.
func (e *Element) Select(v string) {
	e.value = v
	e.Dispatch("change")
}

func (e *Element) AppendChild(tag string) bind.Element {
	child := New(tag)
	child.parent = e
	e.children = append(e.children, child)
	return child
}

func (e *Element) ClearChildren() {
	for _, child := range e.children {
		child.parent = nil
	}
	e.children = nil
}

func (e *Element) Remove() {
	if e.parent == nil {
		return
	}

	e.parent.children = slices.DeleteFunc(e.parent.children, func(c *Element) bool {
		return c == e
	})
	e.parent = nil
}

func (e *Element) Parent() *Element { return e.parent }

func (e *Element) Children() []*Element {
	return slices.Clone(e.children)
}

// Texts returns the text of every child, in order.
func (e *Element) Texts() []string {
	texts := make([]string, len(e.children))
	for i, child := range e.children {
		texts[i] = child.text
	}
	return texts
}
