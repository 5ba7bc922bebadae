// Package schema describes the declared fields of a record struct type.
//
// A record's fields are its exported struct fields in declaration order.
// Untagged embedded structs are flattened in place, so fields of an embedded
// "base" record come before the fields declared after it. Fields are
// configured with the `strict` tag:
//
//	type Job struct {
//		Name    string        `strict:"name,required"`
//		Retries int           `strict:"retries"`
//		Timeout time.Duration // declared name "Timeout"
//		secret  string        // unexported, not a field
//		Cache   []byte        `strict:"-"` // skipped
//	}
//
// Schemas are computed once per type and are read-only afterwards.
package schema
