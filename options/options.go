package options

import "log/slog"

// Options configures how raw arguments are turned into a record.
type Options struct {
	// Categories lists conversions the engine may apply to scalar values.
	Categories CategoryEnum
	// AllowUnknown makes keyword arguments that name no field silently ignored
	// instead of failing the build.
	AllowUnknown bool
	// Logger receives a debug record for every coerced field.
	Logger *slog.Logger
}

type Option func(*Options)

// Default returns the options every record type starts from.
func Default() Options {
	return Options{
		Categories: CategoryDefault,
		Logger:     slog.New(slog.DiscardHandler),
	}
}

// Apply returns Default with opts applied in order.
func Apply(opts ...Option) Options {
	o := Default()
	for _, opt := range opts {
		opt(&o)
	}

	if o.Logger == nil {
		o.Logger = slog.New(slog.DiscardHandler)
	}

	return o
}

func WithCategories(c CategoryEnum) Option {
	return func(o *Options) { o.Categories = c }
}

func WithUnknownFields(allow bool) Option {
	return func(o *Options) { o.AllowUnknown = allow }
}

func WithLogger(l *slog.Logger) Option {
	return func(o *Options) { o.Logger = l }
}
