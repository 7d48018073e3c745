package internal

import (
	"errors"
	"fmt"
	"math"
	"reflect"
	"strconv"
	"strings"
)

var (
	ErrSegmentNotFound = errors.New("segment not found")
	ErrNotAssignable   = errors.New("segment not assignable")
	ErrEmptyPath       = errors.New("empty path")
)

// TraversalError reports the segment of a dot-separated path that could not be resolved.
type TraversalError struct {
	Path    string
	Segment string
	Err     error
}

func (e *TraversalError) Error() string {
	return fmt.Sprintf("path %q at %q: %v", e.Path, e.Segment, e.Err)
}

func (e *TraversalError) Unwrap() error {
	return e.Err
}

// Get returns the value found at path inside container.
// An empty path returns the container itself.
func Get(container any, path string) (any, error) {
	if path == "" {
		return container, nil
	}

	target := container
	for _, seg := range strings.Split(path, ".") {
		next, ok := Lookup(target, seg)
		if !ok {
			return nil, &TraversalError{Path: path, Segment: seg, Err: ErrSegmentNotFound}
		}
		target = next
	}

	return target, nil
}

// Set assigns value at path inside container, mutating it in place.
// Every segment but the last must already exist.
func Set(container any, path string, value any) error {
	if path == "" {
		return ErrEmptyPath
	}

	parts := strings.Split(path, ".")
	last := parts[len(parts)-1]

	target := container
	for _, seg := range parts[:len(parts)-1] {
		next, ok := Lookup(target, seg)
		if !ok {
			return &TraversalError{Path: path, Segment: seg, Err: ErrSegmentNotFound}
		}
		target = next
	}

	if err := assign(target, last, value); err != nil {
		return &TraversalError{Path: path, Segment: last, Err: err}
	}

	return nil
}

// Traverse walks path one stored key at a time and stops at the first missing segment,
// returning what it reached so far along with that segment.
// Values that are not containers are returned untouched.
func Traverse(container any, path string) (reached any, missing string, ok bool) {
	if !IsContainer(container) {
		return container, "", true
	}

	reached = container
	for _, seg := range strings.Split(path, ".") {
		next, found := Lookup(reached, seg)
		if !found {
			return reached, seg, false
		}
		reached = next
	}

	return reached, "", true
}

// IsContainer reports whether v can be walked by Lookup.
func IsContainer(v any) bool {
	rv, ok := deref(reflect.ValueOf(v))
	if !ok {
		return false
	}

	switch rv.Kind() {
	case reflect.Map, reflect.Slice, reflect.Array, reflect.Struct:
		return true
	}

	return false
}

// Lookup resolves a single stored key: a string map key, a slice or array index,
// or an exported struct field.
func Lookup(v any, seg string) (any, bool) {
	rv, ok := deref(reflect.ValueOf(v))
	if !ok {
		return nil, false
	}

	switch rv.Kind() {
	case reflect.Map:
		key, ok := mapKey(rv, seg)
		if !ok {
			return nil, false
		}
		mv := rv.MapIndex(key)
		if !mv.IsValid() {
			return nil, false
		}
		return mv.Interface(), true

	case reflect.Slice, reflect.Array:
		i, ok := index(rv, seg)
		if !ok {
			return nil, false
		}
		return rv.Index(i).Interface(), true

	case reflect.Struct:
		f := rv.FieldByName(seg)
		if !f.IsValid() || !f.CanInterface() {
			return nil, false
		}
		return f.Interface(), true
	}

	return nil, false
}

func assign(target any, seg string, value any) error {
	rv, ok := deref(reflect.ValueOf(target))
	if !ok {
		return ErrSegmentNotFound
	}

	switch rv.Kind() {
	case reflect.Map:
		if rv.IsNil() {
			return ErrNotAssignable
		}
		key, ok := mapKey(rv, seg)
		if !ok {
			return ErrSegmentNotFound
		}
		val, err := convert(value, rv.Type().Elem())
		if err != nil {
			return err
		}
		rv.SetMapIndex(key, val)
		return nil

	case reflect.Slice, reflect.Array:
		i, ok := index(rv, seg)
		if !ok {
			return ErrSegmentNotFound
		}
		return setValue(rv.Index(i), value)

	case reflect.Struct:
		f := rv.FieldByName(seg)
		if !f.IsValid() {
			return ErrSegmentNotFound
		}
		return setValue(f, value)
	}

	return ErrSegmentNotFound
}

func setValue(dst reflect.Value, value any) error {
	if !dst.CanSet() {
		return ErrNotAssignable
	}

	val, err := convert(value, dst.Type())
	if err != nil {
		return err
	}

	dst.Set(val)
	return nil
}

func convert(value any, typ reflect.Type) (reflect.Value, error) {
	if value == nil {
		return reflect.Zero(typ), nil
	}

	val := reflect.ValueOf(value)
	switch {
	case val.Type().AssignableTo(typ):
		return val, nil
	case isNumber(val.Kind()) && isNumber(typ.Kind()):
		if out, ok := convertNumber(val, typ); ok {
			return out, nil
		}
		return reflect.Value{}, fmt.Errorf("%w: %v does not fit in %s", ErrNotAssignable, value, typ)
	}

	return reflect.Value{}, fmt.Errorf("%w: cannot use %s as %s", ErrNotAssignable, val.Type(), typ)
}

// convertNumber converts val to typ only when the result converts back to the
// same value, so fractions, sign and overflow are never dropped.
func convertNumber(val reflect.Value, typ reflect.Type) (reflect.Value, bool) {
	out := val.Convert(typ)
	if negative(val) != negative(out) {
		return reflect.Value{}, false
	}
	if out.Convert(val.Type()).Equal(val) {
		return out, true
	}

	// NaN never equals itself.
	if k := val.Kind(); k == reflect.Float32 || k == reflect.Float64 {
		f := val.Float()
		return out, math.IsNaN(f) && out.Kind() >= reflect.Float32 && math.IsNaN(out.Float())
	}

	return reflect.Value{}, false
}

func negative(rv reflect.Value) bool {
	switch {
	case rv.CanInt():
		return rv.Int() < 0
	case rv.CanFloat():
		return rv.Float() < 0
	}
	return false
}

func isNumber(k reflect.Kind) bool {
	return k >= reflect.Int && k <= reflect.Float64
}

func deref(rv reflect.Value) (reflect.Value, bool) {
	for rv.IsValid() && (rv.Kind() == reflect.Pointer || rv.Kind() == reflect.Interface) {
		if rv.IsNil() {
			return reflect.Value{}, false
		}
		rv = rv.Elem()
	}

	return rv, rv.IsValid()
}

func mapKey(m reflect.Value, seg string) (reflect.Value, bool) {
	kt := m.Type().Key()
	if kt.Kind() != reflect.String {
		return reflect.Value{}, false
	}

	return reflect.ValueOf(seg).Convert(kt), true
}

func index(rv reflect.Value, seg string) (int, bool) {
	i, err := strconv.Atoi(seg)
	if err != nil || i < 0 || i >= rv.Len() {
		return 0, false
	}

	return i, true
}
