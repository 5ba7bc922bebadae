package strict

import (
	"fmt"
	"log/slog"
	"reflect"

	"strict-record/cast"
	"strict-record/options"
	"strict-record/schema"
)

type (
	// CastError reports a field value that could not be cast to its declared type.
	CastError = cast.Error

	// Defaulter is implemented by record pointers that set default field values.
	Defaulter = cast.Defaulter

	// Coercible is implemented by pointers to types that convert raw values themselves.
	Coercible = cast.Coercible
)

var (
	ErrNotCastable = cast.ErrNotCastable

	ErrUnknownField   = cast.ErrUnknownField
	ErrDuplicateField = cast.ErrDuplicateField
	ErrTooManyArgs    = cast.ErrTooManyArgs
	ErrMissingField   = cast.ErrMissingField
	ErrNotStruct      = schema.ErrNotStruct
)

type config struct {
	opts    options.Options
	casters []any
}

type Option func(*config)

// WithCategories sets the scalar conversions that are allowed.
func WithCategories(c options.CategoryEnum) Option {
	return func(cfg *config) { options.WithCategories(c)(&cfg.opts) }
}

// WithUnknownFields makes keyword arguments that match no field ignored.
func WithUnknownFields(allow bool) Option {
	return func(cfg *config) { options.WithUnknownFields(allow)(&cfg.opts) }
}

// WithLogger sets the logger that receives a debug record per cast field.
func WithLogger(l *slog.Logger) Option {
	return func(cfg *config) { options.WithLogger(l)(&cfg.opts) }
}

// WithCaster registers a conversion function in one of the shapes accepted
// by cast.ParseCaster. It takes precedence over the default casters.
func WithCaster(fn any) Option {
	return func(cfg *config) { cfg.casters = append(cfg.casters, fn) }
}

// Type is the factory of record type T. It is safe for concurrent use.
type Type[T any] struct {
	schema *schema.Schema
	engine *cast.Engine
}

// Define returns the factory of record type T.
func Define[T any](opts ...Option) (*Type[T], error) {
	s, err := schema.For[T]()
	if err != nil {
		return nil, fmt.Errorf("define %v: %w", reflect.TypeFor[T](), err)
	}

	cfg := config{opts: options.Default()}
	for _, opt := range opts {
		opt(&cfg)
	}

	registry := cast.DefaultRegistry()
	for _, fn := range cfg.casters {
		if err := registry.Register(fn); err != nil {
			return nil, fmt.Errorf("define %v: %w", s.Type, err)
		}
	}

	return &Type[T]{
		schema: s,
		engine: cast.NewEngine(registry, cfg.opts),
	}, nil
}

// MustDefine is like Define but panics on error.
func MustDefine[T any](opts ...Option) *Type[T] {
	t, err := Define[T](opts...)
	if err != nil {
		panic(err)
	}

	return t
}

// New builds a record from args.
func (t *Type[T]) New(args Args) (T, error) {
	res, err := t.engine.Build(cast.Root(), t.schema.Type, cast.Args(args))
	if err != nil {
		var zero T
		return zero, err
	}

	return res.Interface().(T), nil
}

// Fields returns the declared field names in order.
func (t *Type[T]) Fields() []string { return t.schema.Names() }

// FieldTypes maps declared field names to their types.
func (t *Type[T]) FieldTypes() map[string]reflect.Type { return t.schema.Types() }

// New builds a record of type T from args.
func New[T any](args Args, opts ...Option) (T, error) {
	t, err := Define[T](opts...)
	if err != nil {
		var zero T
		return zero, err
	}

	return t.New(args)
}
