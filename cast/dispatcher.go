package cast

import (
	"reflect"

	"strict-record/primitive"
)

//go:generate go tool stringer -type=DispatcherEnum -output=dispatcher_string.go

type DispatcherEnum int

const (
	DispatcherUnknown DispatcherEnum = iota
	DispatcherNull
	DispatcherIdentity
	DispatcherCaster
	DispatcherCoercible
	DispatcherVariant
	DispatcherDeref
	DispatcherPointer
	DispatcherInterface
	DispatcherText
	DispatcherSlice
	DispatcherArray
	DispatcherSet
	DispatcherMap
	DispatcherKeywordRecord
	DispatcherPositionalRecord
	DispatcherConvertible
	DispatcherStringer
	DispatcherPrimitive

	// DispatcherTotal is a constant that represents the total number of kinds defined
	DispatcherTotal = int(iota)
)

// dispatch picks the strategy for casting a value of type src to dst.
// A nil src stands for a nil value.
func (e *Engine) dispatch(src, dst reflect.Type) DispatcherEnum {
	pair := Pair{Src: src, Dst: dst}
	if cached, ok := e.dispatched.Load(pair); ok {
		return cached.(DispatcherEnum)
	}

	res := e.pick(pair)
	e.dispatched.Store(pair, res)

	return res
}

func (e *Engine) pick(pair Pair) DispatcherEnum {
	src, dst := pair.Src, pair.Dst

	if src == nil {
		switch {
		case isVariant(dst):
			return DispatcherVariant
		case nullable(dst):
			return DispatcherNull
		default:
			return DispatcherUnknown
		}
	}

	if src.AssignableTo(dst) {
		return DispatcherIdentity
	}

	if _, ok := e.registry.Lookup(pair); ok {
		return DispatcherCaster
	}

	if dst.Kind() != reflect.Interface && implements(dst, coercibleType) {
		return DispatcherCoercible
	}

	if isVariant(dst) {
		return DispatcherVariant
	}

	if dst.Kind() == reflect.Ptr {
		return DispatcherPointer
	}

	if src.Kind() == reflect.Ptr {
		return DispatcherDeref
	}

	if dst.Kind() == reflect.Interface {
		return DispatcherInterface
	}

	dstKind := primitive.FromReflectType(dst)
	srcKind := primitive.FromReflectType(src)

	if isText(src) && implements(dst, textUnmarshalerType) && (dstKind == 0 || dstKind == primitive.KindPrimitiveEnum) {
		return DispatcherText
	}

	switch dst.Kind() {
	case reflect.Slice:
		switch {
		case isSequence(src):
			return DispatcherSlice
		case src.Kind() == reflect.String && src.ConvertibleTo(dst):
			return DispatcherConvertible
		}

		return DispatcherUnknown
	case reflect.Array:
		if isSequence(src) {
			return DispatcherArray
		}

		return DispatcherUnknown
	case reflect.Map:
		switch {
		case src.Kind() == reflect.Map:
			return DispatcherMap
		case isSequence(src) && isSet(dst):
			return DispatcherSet
		}

		return DispatcherUnknown
	case reflect.Struct:
		switch {
		case isKeywordMap(src):
			return DispatcherKeywordRecord
		case isSequence(src):
			return DispatcherPositionalRecord
		case src.Kind() == reflect.Struct && src.ConvertibleTo(dst):
			return DispatcherConvertible
		}
	}

	if dstKind != 0 && srcKind != 0 {
		return DispatcherPrimitive
	}

	if dst.Kind() == reflect.String {
		switch {
		case src.Kind() == reflect.Slice && src.Elem().Kind() == reflect.Uint8:
			return DispatcherConvertible
		case src.Implements(stringerType):
			return DispatcherStringer
		}
	}

	return DispatcherUnknown
}
