package cast

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"reflect"
	"slices"

	"strict-record/schema"
)

// Args are raw constructor arguments of a record.
type Args struct {
	Positional []any
	Named      map[string]any
}

// Build creates a record of struct type dst: defaults are set, arguments are
// bound to fields, then every supplied argument is coerced in field order.
// Binding problems are returned as ErrUnknownField, ErrDuplicateField,
// ErrTooManyArgs or ErrMissingField; coercion problems as *Error.
func (e *Engine) Build(path Path, dst reflect.Type, args Args) (reflect.Value, error) {
	s, err := schema.Of(dst)
	if err != nil {
		return reflect.Value{}, err
	}

	bound, err := e.bind(s, args)
	if err != nil {
		return reflect.Value{}, err
	}

	rec := reflect.New(dst)
	if d, ok := rec.Interface().(Defaulter); ok {
		d.SetDefaults()
	}

	out := rec.Elem()
	for i := range s.Fields {
		if !bound[i].present {
			continue
		}

		f := &s.Fields[i]
		fieldPath := path.Field(f.Name)

		v, err := e.cast(fieldPath, reflect.ValueOf(bound[i].raw), f.Type)
		if err != nil {
			return reflect.Value{}, err
		}

		out.FieldByIndex(f.Index).Set(v)
		e.logField(dst, fieldPath, bound[i].raw, f.Type)
	}

	return out, nil
}

type boundArg struct {
	raw     any
	present bool
}

func (e *Engine) bind(s *schema.Schema, args Args) ([]boundArg, error) {
	if len(args.Positional) > len(s.Fields) {
		return nil, fmt.Errorf("%w: %s takes %d, got %d", ErrTooManyArgs, s.Type, len(s.Fields), len(args.Positional))
	}

	bound := make([]boundArg, len(s.Fields))
	for i, raw := range args.Positional {
		bound[i] = boundArg{raw: raw, present: true}
	}

	names := make([]string, 0, len(args.Named))
	for name := range args.Named {
		names = append(names, name)
	}
	slices.Sort(names)

	for _, name := range names {
		f, ok := s.Lookup(name)
		if !ok {
			if e.opts.AllowUnknown {
				continue
			}

			if suggestion, ok := s.Suggest(name); ok {
				return nil, fmt.Errorf("%w: %s has no field %q, did you mean %q?", ErrUnknownField, s.Type, name, suggestion)
			}

			return nil, fmt.Errorf("%w: %s has no field %q", ErrUnknownField, s.Type, name)
		}

		if bound[f.Position].present {
			return nil, fmt.Errorf("%w: %s.%s", ErrDuplicateField, s.Type, f.Name)
		}

		bound[f.Position] = boundArg{raw: args.Named[name], present: true}
	}

	for i, f := range s.Fields {
		if f.Required && !bound[i].present {
			return nil, fmt.Errorf("%w: %s.%s", ErrMissingField, s.Type, f.Name)
		}
	}

	return bound, nil
}

// castRecord builds a nested record. Binding problems of the nested record
// become the cause of an *Error for the field holding it.
func (e *Engine) castRecord(path Path, src reflect.Value, dst reflect.Type, args Args) (reflect.Value, error) {
	res, err := e.Build(path, dst, args)
	if err != nil {
		var castErr *Error
		if errors.As(err, &castErr) {
			return reflect.Value{}, err
		}

		return e.fail(path, src, dst, err)
	}

	return res, nil
}

func keywordArgs(src reflect.Value) (Args, error) {
	args := Args{Named: make(map[string]any, src.Len())}

	iter := src.MapRange()
	for iter.Next() {
		key := unwrap(iter.Key())
		if !key.IsValid() || key.Kind() != reflect.String {
			return Args{}, fmt.Errorf("%w: got %v", ErrKeyNotString, iter.Key().Interface())
		}

		args.Named[key.String()] = iter.Value().Interface()
	}

	return args, nil
}

func positionalArgs(src reflect.Value) Args {
	args := Args{Positional: make([]any, src.Len())}
	for i := range src.Len() {
		args.Positional[i] = src.Index(i).Interface()
	}

	return args
}

func (e *Engine) logField(record reflect.Type, path Path, raw any, dst reflect.Type) {
	if !e.opts.Logger.Enabled(context.Background(), slog.LevelDebug) {
		return
	}

	var srcType reflect.Type
	if raw != nil {
		srcType = reflect.TypeOf(raw)
	}

	e.opts.Logger.LogAttrs(context.Background(), slog.LevelDebug, "field coerced",
		slog.String("record", record.String()),
		slog.String("field", path.String()),
		slog.String("from", fmt.Sprint(srcType)),
		slog.String("to", dst.String()),
		slog.String("dispatch", e.dispatch(srcType, dst).String()),
	)
}
