package bind

// Option configures a Wrapper when it is created.
type Option func(*Wrapper)

func WithID(id string) Option {
	return func(w *Wrapper) { w.SetAttr("id", id) }
}

func WithName(name string) Option {
	return func(w *Wrapper) { w.SetAttr("name", name) }
}

func WithInputType(typ string) Option {
	return func(w *Wrapper) { w.SetAttr("type", typ) }
}

func WithText(text string) Option {
	return func(w *Wrapper) { w.SetText(text) }
}

func WithStyle(style string) Option {
	return func(w *Wrapper) { w.SetStyle(style) }
}

func WithValue(v any) Option {
	return func(w *Wrapper) { w.SetVal(v) }
}

// WithBind binds the wrapper's text to src.
func WithBind(src Source) Option {
	return func(w *Wrapper) { w.BindTo(src, "", nil) }
}
