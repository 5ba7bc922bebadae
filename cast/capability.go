package cast

import (
	"encoding"
	"fmt"
	"reflect"
)

// Variant is implemented by pointers to sum types, such as optionals and unions.
// Members lists the member types in declaration order; a nil entry is the null
// member. Select stores v as member i; v is the zero Value for the null member.
type Variant interface {
	Members() []reflect.Type
	Select(i int, v reflect.Value)
}

// Coercible is implemented by pointers to types that convert raw values themselves.
type Coercible interface {
	CoerceFrom(v any) error
}

// Defaulter is implemented by pointers to records that have default field values.
// SetDefaults runs before arguments are bound; the values it sets are not coerced.
type Defaulter interface {
	SetDefaults()
}

var (
	variantType         = reflect.TypeFor[Variant]()
	coercibleType       = reflect.TypeFor[Coercible]()
	textUnmarshalerType = reflect.TypeFor[encoding.TextUnmarshaler]()
	stringerType        = reflect.TypeFor[fmt.Stringer]()
)

func implements(t, iface reflect.Type) bool {
	return reflect.PointerTo(t).Implements(iface)
}

func isVariant(t reflect.Type) bool {
	return t.Kind() != reflect.Interface && implements(t, variantType)
}

func nullable(t reflect.Type) bool {
	switch t.Kind() {
	case reflect.Ptr, reflect.Interface, reflect.Slice, reflect.Map:
		return true
	default:
		return false
	}
}

// isSet reports whether t is used as a set: map[K]struct{} or map[K]bool.
func isSet(t reflect.Type) bool {
	if t.Kind() != reflect.Map {
		return false
	}

	elem := t.Elem()
	return elem.Kind() == reflect.Bool || elem.Kind() == reflect.Struct && elem.NumField() == 0
}

func isText(t reflect.Type) bool {
	return t.Kind() == reflect.String || t.Kind() == reflect.Slice && t.Elem().Kind() == reflect.Uint8
}

func isSequence(t reflect.Type) bool {
	return t.Kind() == reflect.Slice || t.Kind() == reflect.Array
}

// isKeywordMap reports whether t can carry keyword arguments of a record.
func isKeywordMap(t reflect.Type) bool {
	return t.Kind() == reflect.Map && (t.Key().Kind() == reflect.String || t.Key().Kind() == reflect.Interface)
}
