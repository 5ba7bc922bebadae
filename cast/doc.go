// Package cast is the coercion engine: it turns a raw value into a value of a
// declared Go type, or reports a single kind of error, *Error.
//
// For every (source type, target type) pair the engine picks one strategy, in
// this order:
//
//   - nil is accepted for nullable targets (pointers, interfaces, slices, maps)
//     and for variants with a null member
//   - values already assignable to the target are kept as they are
//   - caster functions from the Registry
//   - targets whose pointer implements Coercible
//   - targets whose pointer implements Variant (unions, optionals)
//   - pointers, text into encoding.TextUnmarshaler, slices, arrays, sets, maps
//   - nested records from keyword (map) or positional (slice) arguments
//   - primitive conversions, see package primitive
//
// Records are built with Engine.Build: defaults first, then arguments are
// bound to fields, then each supplied argument is coerced in declaration order.
// Defaults are never coerced. The first failure aborts the build.
package cast
