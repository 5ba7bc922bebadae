package cast

import (
	"errors"
	"fmt"
	"reflect"
	"sync"

	"strict-record/options"
	"strict-record/primitive"
)

// Engine casts raw values to declared types. It is safe for concurrent use.
type Engine struct {
	registry   *Registry
	opts       options.Options
	dispatched sync.Map // Pair -> DispatcherEnum
}

// NewEngine returns an engine using a clone of registry. A nil registry means
// DefaultRegistry.
func NewEngine(registry *Registry, opts options.Options) *Engine {
	if registry == nil {
		registry = DefaultRegistry()
	} else {
		registry = registry.Clone()
	}

	if opts.Logger == nil {
		opts.Logger = options.Default().Logger
	}

	return &Engine{registry: registry, opts: opts}
}

// Options returns the options the engine was built with.
func (e *Engine) Options() options.Options { return e.opts }

// Cast converts raw to type dst. Failures are always *Error.
func (e *Engine) Cast(path Path, raw any, dst reflect.Type) (reflect.Value, error) {
	return e.cast(path, reflect.ValueOf(raw), dst)
}

func (e *Engine) cast(path Path, src reflect.Value, dst reflect.Type) (reflect.Value, error) {
	src = unwrap(src)

	var srcType reflect.Type
	if src.IsValid() {
		srcType = src.Type()
	}

	switch e.dispatch(srcType, dst) {
	case DispatcherNull:
		return reflect.Zero(dst), nil

	case DispatcherIdentity:
		if srcType == dst {
			return src, nil
		}

		res := reflect.New(dst).Elem()
		res.Set(src)
		return res, nil

	case DispatcherCaster:
		c, _ := e.registry.Lookup(Pair{Src: srcType, Dst: dst})
		res, err := c.Call(src)
		if err != nil {
			return e.fail(path, src, dst, fmt.Errorf("%s: %w", c, err))
		}

		return res, nil

	case DispatcherCoercible:
		ptr := reflect.New(dst)
		if err := ptr.Interface().(Coercible).CoerceFrom(src.Interface()); err != nil {
			return e.fail(path, src, dst, err)
		}

		return ptr.Elem(), nil

	case DispatcherVariant:
		return e.castVariant(path, src, dst)

	case DispatcherPointer:
		if srcType.Kind() == reflect.Ptr && src.IsNil() {
			return reflect.Zero(dst), nil
		}

		elem, err := e.cast(path, src, dst.Elem())
		if err != nil {
			return reflect.Value{}, err
		}

		ptr := reflect.New(dst.Elem())
		ptr.Elem().Set(elem)
		return ptr, nil

	case DispatcherDeref:
		if src.IsNil() {
			return e.fail(path, src, dst, ErrNull)
		}

		return e.cast(path, src.Elem(), dst)

	case DispatcherInterface:
		return e.fail(path, src, dst, ErrNotImplemented)

	case DispatcherText:
		ptr := reflect.New(dst)
		if err := ptr.Interface().(interface{ UnmarshalText([]byte) error }).UnmarshalText(textOf(src)); err != nil {
			return e.fail(path, src, dst, err)
		}

		return ptr.Elem(), nil

	case DispatcherSlice:
		return e.castSlice(path, src, dst)

	case DispatcherArray:
		return e.castArray(path, src, dst)

	case DispatcherSet:
		return e.castSet(path, src, dst)

	case DispatcherMap:
		return e.castMap(path, src, dst)

	case DispatcherKeywordRecord:
		args, err := keywordArgs(src)
		if err != nil {
			return e.fail(path, src, dst, err)
		}

		return e.castRecord(path, src, dst, args)

	case DispatcherPositionalRecord:
		return e.castRecord(path, src, dst, positionalArgs(src))

	case DispatcherConvertible:
		return src.Convert(dst), nil

	case DispatcherStringer:
		return reflect.ValueOf(src.Interface().(fmt.Stringer).String()).Convert(dst), nil

	case DispatcherPrimitive:
		res, err := primitive.Convert(src, dst, e.opts.Categories)
		if err != nil {
			return e.fail(path, src, dst, err)
		}

		return res, nil
	}

	if !src.IsValid() {
		return e.fail(path, src, dst, ErrNull)
	}

	return e.fail(path, src, dst, ErrNoConversion)
}

// castVariant selects the null member for nil, a member the value already is,
// or else the first member in declaration order that accepts the value.
func (e *Engine) castVariant(path Path, src reflect.Value, dst reflect.Type) (reflect.Value, error) {
	ptr := reflect.New(dst)
	variant := ptr.Interface().(Variant)
	members := variant.Members()

	if !src.IsValid() {
		for i, member := range members {
			if member == nil {
				variant.Select(i, reflect.Value{})
				return ptr.Elem(), nil
			}
		}

		return e.fail(path, src, dst, ErrNull)
	}

	for i, member := range members {
		if member == src.Type() {
			variant.Select(i, src)
			return ptr.Elem(), nil
		}
	}

	var errs []error
	for i, member := range members {
		if member == nil {
			continue
		}

		res, err := e.cast(path, src, member)
		if err != nil {
			errs = append(errs, err)
			continue
		}

		variant.Select(i, res)
		return ptr.Elem(), nil
	}

	return e.fail(path, src, dst, errors.Join(errs...))
}

func (e *Engine) fail(path Path, src reflect.Value, dst reflect.Type, cause error) (reflect.Value, error) {
	var value any
	if src.IsValid() && src.CanInterface() {
		value = src.Interface()
	}

	return reflect.Value{}, &Error{
		Field: path.Head(),
		Path:  path.String(),
		Type:  dst,
		Value: value,
		Err:   cause,
	}
}

// unwrap strips interface wrappers, as found in []any and map[string]any.
func unwrap(v reflect.Value) reflect.Value {
	for v.IsValid() && v.Kind() == reflect.Interface {
		if v.IsNil() {
			return reflect.Value{}
		}

		v = v.Elem()
	}

	return v
}

func textOf(v reflect.Value) []byte {
	if v.Kind() == reflect.String {
		return []byte(v.String())
	}

	return v.Bytes()
}
