package cast

import (
	"errors"
	"fmt"
	"io"
	"reflect"
	"strings"

	"github.com/davecgh/go-spew/spew"
)

// ErrNotCastable matches every *Error with errors.Is.
var ErrNotCastable = errors.New("value is not castable")

// Causes carried by *Error.
var (
	ErrNull           = errors.New("nil is not accepted")
	ErrNoConversion   = errors.New("no conversion to the target type")
	ErrNotImplemented = errors.New("value does not implement the target interface")
	ErrArrayLength    = errors.New("length does not fit the target array")
	ErrKeyNotString   = errors.New("record argument names must be strings")
)

// Binding errors are raised before any field is coerced, when arguments do not
// line up with the record's fields.
var (
	ErrUnknownField   = errors.New("unknown field")
	ErrDuplicateField = errors.New("field given more than once")
	ErrTooManyArgs    = errors.New("too many positional arguments")
	ErrMissingField   = errors.New("missing required field")
)

// Error reports a value that could not be cast to its declared type.
type Error struct {
	Field string       // top-level record field
	Path  string       // full path to the failing value, e.g. items[1].price
	Type  reflect.Type // target type at the failing value
	Value any          // offending raw value
	Err   error        // cause, may be nil
}

func (e *Error) Error() string {
	var b strings.Builder
	if e.Path != "" {
		fmt.Fprintf(&b, "field %s: ", e.Path)
	}

	fmt.Fprintf(&b, "`%v` of type `%T` is not castable to `%v`", e.Value, e.Value, e.Type)
	if e.Err != nil {
		b.WriteString(": ")
		b.WriteString(e.Err.Error())
	}

	return b.String()
}

func (e *Error) Unwrap() error { return e.Err }

func (e *Error) Is(target error) bool { return target == ErrNotCastable }

var dumper = spew.ConfigState{
	Indent:                  "  ",
	DisablePointerAddresses: true,
	DisableCapacities:       true,
	SortKeys:                true,
}

// Format prints Error() for every verb but %q. %+v adds the target type with its
// package path and a dump of the offending value.
func (e *Error) Format(s fmt.State, verb rune) {
	switch verb {
	case 'v':
		if s.Flag('+') {
			_, _ = io.WriteString(s, e.Error())
			fmt.Fprintf(s, "\nfield:  %s\npath:   %s\ntarget: %s\nvalue:  %s", e.Field, e.Path, typeStr(e.Type), dumper.Sdump(e.Value))
			return
		}

		fallthrough
	case 's':
		_, _ = io.WriteString(s, e.Error())
	case 'q':
		fmt.Fprintf(s, "%q", e.Error())
	default:
		_, _ = io.WriteString(s, e.Error())
	}
}

// typeStr returns t with its full package path.
func typeStr(t reflect.Type) string {
	if t == nil {
		return "<nil>"
	}

	switch t.Kind() {
	case reflect.Ptr:
		return "*" + typeStr(t.Elem())
	case reflect.Slice:
		return "[]" + typeStr(t.Elem())
	case reflect.Array:
		return fmt.Sprintf("[%d]%s", t.Len(), typeStr(t.Elem()))
	case reflect.Map:
		return "map[" + typeStr(t.Key()) + "]" + typeStr(t.Elem())
	default:
		if t.PkgPath() == "" || t.Name() == "" {
			return t.String()
		}

		return t.PkgPath() + "." + t.Name()
	}
}
