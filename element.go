package bind

// Element is the presented object a Wrapper drives. Hosts implement it over
// their own toolkit; see package dom for an in-memory implementation.
type Element interface {
	// Tag is the element kind, e.g. "input", "select", "ul". Compared case-insensitively.
	Tag() string

	Text() string
	SetText(text string)

	// Attr returns the attribute value and whether it is set. Styles live in the "style" attribute.
	Attr(name string) (string, bool)
	SetAttr(name, value string)

	Value() string
	SetValue(value string)
	Checked() bool
	SetChecked(checked bool)

	// On registers fn for a native event such as "input" or "change".
	On(event string, fn func())

	// AppendChild creates a new element with the given tag as the last child.
	AppendChild(tag string) Element
	ClearChildren()
	Remove()
}
