// Package strict builds struct records from loosely typed arguments and
// coerces every supplied argument to the declared type of its field.
//
// A record is any struct type. Fields are read in declaration order; the
// `strict` struct tag renames a field, marks it required or skips it:
//
//	type Job struct {
//		Name    string        `strict:"name,required"`
//		Retries int           `strict:"retries"`
//		Timeout time.Duration `strict:"timeout"`
//		Notes   string        `strict:"-"`
//	}
//
// Define returns a factory for a record type. Its New method binds positional
// and keyword arguments to fields, then casts each supplied value once:
//
//	jobs := strict.MustDefine[Job]()
//	job, err := jobs.New(strict.Named(map[string]any{"name": "backup", "retries": "3"}))
//
// Values already of the declared type are kept as they are. Other values are
// converted by, in order: registered caster functions, the Coercible
// interface, variants (Optional, Union2, Union3), containers, pointers,
// encoding.TextUnmarshaler, nested records and scalar conversions. A value
// that none of them accepts fails the build with a *CastError, and nothing is
// returned.
//
// Defaults come from SetDefaults on the record pointer and are never cast.
package strict
