package bind

import (
	"context"
	"fmt"
	"reflect"

	"github.com/AnatoleLucet/bind/internal"
	"github.com/davecgh/go-spew/spew"
	"github.com/zoobzio/capitan"
)

// ListContent replaces the wrapper's children with one "li" per text.
// ids, when not nil, sets the id of each item and must match texts in length.
func (w *Wrapper) ListContent(texts, ids []string) error {
	const op = "Wrapper.ListContent"

	if !w.isList() {
		return configError(op, fmt.Errorf("%w: %q", ErrNotList, w.tag()))
	}
	if ids != nil && len(ids) != len(texts) {
		return configError(op, ErrLengthMismatch)
	}

	w.KillChildren()
	for i, text := range texts {
		item := w.NewWrap("li")
		if ids != nil {
			item.SetAttr("id", ids[i])
		}
		item.SetText(text)
	}

	return nil
}

// SelectContent appends one "option" per text. vals defaults to texts;
// vals and ids, when given, must match texts in length.
func (w *Wrapper) SelectContent(texts, vals, ids []string) error {
	const op = "Wrapper.SelectContent"

	if w.tag() != "select" {
		return configError(op, fmt.Errorf("%w: %q", ErrNotSelect, w.tag()))
	}
	if vals == nil {
		vals = texts
	}
	if len(vals) != len(texts) || (ids != nil && len(ids) != len(texts)) {
		return configError(op, ErrLengthMismatch)
	}

	for i, text := range texts {
		opt := w.NewWrap("option")
		if ids != nil {
			opt.SetAttr("id", ids[i])
		}
		opt.SetText(text).SetVal(vals[i])
	}

	return nil
}

// BindListTo keeps the wrapper's list items in sync with a slice held by target.
// The items are built from the current value immediately, unlike BindTo which
// waits for the next change.
func (w *Wrapper) BindListTo(target Source, changeKey string) error {
	const op = "Wrapper.BindListTo"

	if !w.isList() {
		return configError(op, fmt.Errorf("%w: %q", ErrNotList, w.tag()))
	}

	return w.bindContent(op, target, changeKey, func(items []string) error {
		return w.ListContent(items, nil)
	})
}

// BindSelectTo keeps the wrapper's options in sync with a slice held by target,
// starting from its current value.
func (w *Wrapper) BindSelectTo(target Source, changeKey string) error {
	const op = "Wrapper.BindSelectTo"

	if w.tag() != "select" {
		return configError(op, fmt.Errorf("%w: %q", ErrNotSelect, w.tag()))
	}

	return w.bindContent(op, target, changeKey, func(items []string) error {
		return w.SelectContent(items, nil, nil)
	})
}

func (w *Wrapper) bindContent(op string, target Source, changeKey string, fill func([]string) error) error {
	mustSource(op, target)

	if changeKey == "" {
		changeKey = target.defaultChangeKey()
	}

	initial, ok := toStrings(target.GetVal(changeKey))
	if !ok {
		return configError(op, ErrNotSlice)
	}

	w.BindTo(target, changeKey, func(nv any, key string) any {
		items, ok := toStrings(nv)
		if !ok {
			w.rejectContent(key, nv, ErrNotSlice)
			return nil
		}

		w.clearContent()
		if err := fill(items); err != nil {
			w.rejectContent(key, nv, err)
		}
		return nil
	})

	w.clearContent()
	return fill(initial)
}

func (w *Wrapper) clearContent() {
	w.KillChildren()
	w.element.ClearChildren()
}

func (w *Wrapper) rejectContent(changeKey string, v any, err error) {
	capitan.Emit(context.Background(), ContentRejected,
		KeyChangeKey.Field(changeKey),
		KeyValue.Field(spew.Sdump(v)),
		KeyError.Field(err.Error()),
		KeyDepth.Field(internal.GetRuntime().Depth()),
	)
}

func (w *Wrapper) isList() bool {
	tag := w.tag()
	return tag == "ul" || tag == "ol"
}

// toStrings turns a slice or array into item texts. nil counts as an empty list.
func toStrings(v any) ([]string, bool) {
	if v == nil {
		return nil, true
	}
	if s, ok := v.([]string); ok {
		return append([]string(nil), s...), true
	}

	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		return nil, false
	}

	items := make([]string, rv.Len())
	for i := range items {
		items[i] = textOf(rv.Index(i).Interface())
	}

	return items, true
}
