package cast

import (
	"cmp"
	"fmt"
	"reflect"
	"slices"

	"strict-record/options"
)

// castSlice rebuilds a slice element by element, keeping the source order.
func (e *Engine) castSlice(path Path, src reflect.Value, dst reflect.Type) (reflect.Value, error) {
	if src.Kind() == reflect.Slice && src.IsNil() {
		return reflect.Zero(dst), nil
	}

	n := src.Len()
	out := reflect.MakeSlice(dst, n, n)

	for i := range n {
		elem, err := e.cast(path.Index(i), src.Index(i), dst.Elem())
		if err != nil {
			return reflect.Value{}, err
		}

		out.Index(i).Set(elem)
	}

	return out, nil
}

// castArray fills an array from a sequence. A shorter sequence needs
// CategorySafeArray, a longer one is cut only with CategoryUnsafeArray.
func (e *Engine) castArray(path Path, src reflect.Value, dst reflect.Type) (reflect.Value, error) {
	n := src.Len()

	switch {
	case n > dst.Len() && !e.opts.Categories.Has(options.CategoryUnsafeArray),
		n < dst.Len() && !e.opts.Categories.Has(options.CategorySafeArray):
		return e.fail(path, src, dst, fmt.Errorf("%w: %d elements for %d", ErrArrayLength, n, dst.Len()))
	case n > dst.Len():
		n = dst.Len()
	}

	out := reflect.New(dst).Elem()
	for i := range n {
		elem, err := e.cast(path.Index(i), src.Index(i), dst.Elem())
		if err != nil {
			return reflect.Value{}, err
		}

		out.Index(i).Set(elem)
	}

	return out, nil
}

// castSet turns a sequence into map[K]struct{} or map[K]bool.
func (e *Engine) castSet(path Path, src reflect.Value, dst reflect.Type) (reflect.Value, error) {
	if src.Kind() == reflect.Slice && src.IsNil() {
		return reflect.Zero(dst), nil
	}

	member := reflect.Zero(dst.Elem())
	if dst.Elem().Kind() == reflect.Bool {
		member = reflect.ValueOf(true).Convert(dst.Elem())
	}

	out := reflect.MakeMapWithSize(dst, src.Len())
	for i := range src.Len() {
		key, err := e.cast(path.Index(i), src.Index(i), dst.Key())
		if err != nil {
			return reflect.Value{}, err
		}

		out.SetMapIndex(key, member)
	}

	return out, nil
}

// castMap coerces map values. Keys assignable to the target key type are kept
// as they are; other keys are cast like values. Keys are visited in sorted
// order so the reported failure does not depend on map iteration.
func (e *Engine) castMap(path Path, src reflect.Value, dst reflect.Type) (reflect.Value, error) {
	if src.IsNil() {
		return reflect.Zero(dst), nil
	}

	keys := src.MapKeys()
	slices.SortFunc(keys, func(a, b reflect.Value) int {
		return cmp.Compare(fmt.Sprint(a.Interface()), fmt.Sprint(b.Interface()))
	})

	out := reflect.MakeMapWithSize(dst, len(keys))
	for _, rawKey := range keys {
		elemPath := path.Key(rawKey.Interface())

		key, err := e.cast(elemPath, rawKey, dst.Key())
		if err != nil {
			return reflect.Value{}, err
		}

		val, err := e.cast(elemPath, src.MapIndex(rawKey), dst.Elem())
		if err != nil {
			return reflect.Value{}, err
		}

		out.SetMapIndex(key, val)
	}

	return out, nil
}
