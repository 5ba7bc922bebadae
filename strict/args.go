package strict

import (
	"maps"

	"strict-record/cast"
)

// Args are the constructor arguments of a record: positional arguments fill
// fields in declaration order, named arguments are matched by field name.
type Args cast.Args

// Named returns keyword arguments.
func Named(kv map[string]any) Args {
	return Args{Named: kv}
}

// Pos returns positional arguments.
func Pos(values ...any) Args {
	return Args{Positional: values}
}

// With returns a copy of a with the named argument set.
func (a Args) With(name string, v any) Args {
	named := make(map[string]any, len(a.Named)+1)
	maps.Copy(named, a.Named)
	named[name] = v

	a.Named = named
	return a
}
