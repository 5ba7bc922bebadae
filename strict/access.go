package strict

import (
	"encoding"
	"errors"
	"fmt"
	"reflect"

	"strict-record/schema"
)

var (
	ErrUnsupportedKey = errors.New("field key must be an int position or a string name")
	ErrNotAssignable  = errors.New("value is not assignable to field")
)

// Get returns the field of rec named by key, an int position or a field name.
func Get[T any](rec *T, key any) (any, error) {
	f, err := field[T](key)
	if err != nil {
		return nil, err
	}

	return reflect.ValueOf(rec).Elem().FieldByIndex(f.Index).Interface(), nil
}

// Set stores v in the field of rec named by key. The value is not cast: it
// must be assignable to the field type, or nil for nullable fields.
func Set[T any](rec *T, key any, v any) error {
	f, err := field[T](key)
	if err != nil {
		return err
	}

	dst := reflect.ValueOf(rec).Elem().FieldByIndex(f.Index)

	if v == nil {
		switch f.Type.Kind() {
		case reflect.Ptr, reflect.Interface, reflect.Slice, reflect.Map:
			dst.SetZero()
			return nil
		default:
			return fmt.Errorf("%w: nil to %s %v", ErrNotAssignable, f.Name, f.Type)
		}
	}

	val := reflect.ValueOf(v)
	if !val.Type().AssignableTo(f.Type) {
		return fmt.Errorf("%w: %T to %s %v", ErrNotAssignable, v, f.Name, f.Type)
	}

	dst.Set(val)
	return nil
}

func field[T any](key any) (*schema.Field, error) {
	s, err := schema.For[T]()
	if err != nil {
		return nil, err
	}

	var (
		f  *schema.Field
		ok bool
	)

	switch k := key.(type) {
	case int:
		f, ok = s.At(k)
	case string:
		f, ok = s.Lookup(k)
	default:
		return nil, fmt.Errorf("%w: got %T", ErrUnsupportedKey, key)
	}

	if !ok {
		return nil, fmt.Errorf("%w: %s has no field %v", ErrUnknownField, s.Type, key)
	}

	return f, nil
}

// ToMap returns rec as nested plain values: records become map[string]any
// keyed by declared field name, slices and arrays become []any, variants
// become their selected member. Other values are kept.
func ToMap[T any](rec T) (map[string]any, error) {
	s, err := schema.For[T]()
	if err != nil {
		return nil, err
	}

	return recordMap(s, reflect.ValueOf(&rec).Elem()), nil
}

type selected interface{ Interface() any }

var (
	selectedType      = reflect.TypeFor[selected]()
	textMarshalerType = reflect.TypeFor[encoding.TextMarshaler]()
)

func recordMap(s *schema.Schema, v reflect.Value) map[string]any {
	res := make(map[string]any, len(s.Fields))
	for _, f := range s.Fields {
		res[f.Name] = plain(v.FieldByIndex(f.Index))
	}

	return res
}

func plain(v reflect.Value) any {
	t := v.Type()

	if t.Kind() != reflect.Interface && t.Implements(selectedType) {
		inner := v.Interface().(selected).Interface()
		if inner == nil {
			return nil
		}

		return plain(reflect.ValueOf(inner))
	}

	switch t.Kind() {
	case reflect.Ptr, reflect.Interface:
		if v.IsNil() {
			return nil
		}

		return plain(v.Elem())

	case reflect.Slice:
		if v.IsNil() {
			return v.Interface()
		}

		fallthrough
	case reflect.Array:
		if t.Elem().Kind() == reflect.Uint8 {
			return v.Interface()
		}

		res := make([]any, v.Len())
		for i := range v.Len() {
			res[i] = plain(v.Index(i))
		}

		return res

	case reflect.Map:
		if v.IsNil() {
			return v.Interface()
		}

		if t.Key().Kind() == reflect.String {
			res := make(map[string]any, v.Len())
			iter := v.MapRange()
			for iter.Next() {
				res[iter.Key().String()] = plain(iter.Value())
			}

			return res
		}

		res := make(map[any]any, v.Len())
		iter := v.MapRange()
		for iter.Next() {
			res[iter.Key().Interface()] = plain(iter.Value())
		}

		return res

	case reflect.Struct:
		if t.Implements(textMarshalerType) {
			return v.Interface()
		}

		s, err := schema.Of(t)
		if err != nil {
			return v.Interface()
		}

		return recordMap(s, v)
	}

	return v.Interface()
}
