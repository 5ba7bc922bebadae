package cast

import (
	"errors"
	"path"
	"reflect"
	"runtime"
	"strings"

	"strict-record/utils"
)

var (
	ErrIsNotACaster         = errors.New("provided function is not a recognizable caster")
	ErrCasterIsNotAFunction = errors.New("provided caster is not a function")
	ErrDoublePointer        = errors.New("caster function does not support double pointers")
	ErrCasterRejected       = errors.New("caster rejected the value")
)

var errorType = reflect.TypeFor[error]()

// Caster is a parsed conversion function from Src to Dst.
type Caster struct {
	Src, Dst     reflect.Type
	PackageAlias string
	Name         string
	HasBool      bool
	HasErr       bool

	fn reflect.Value
}

// ParseCaster inspects the provided function and returns a Caster struct if it is a valid caster function.
//
// Supports interfaces:
//   - func(src Type) (dst Type)
//   - func(src Type) (dst Type, bool)
//   - func(src Type) (dst Type, error)
//   - func(src Type) (dst Type, bool, error)
func ParseCaster(fn any) (Caster, error) {
	fnVal := reflect.ValueOf(fn)
	if !fnVal.IsValid() || fnVal.Kind() != reflect.Func || fnVal.IsNil() {
		return Caster{}, ErrCasterIsNotAFunction
	}

	fnType := fnVal.Type()
	if fnType.NumIn() != 1 || fnType.IsVariadic() || fnType.NumOut() == 0 {
		return Caster{}, ErrIsNotACaster
	}

	src := fnType.In(0)
	if src.Kind() == reflect.Ptr && src.Elem().Kind() == reflect.Ptr {
		return Caster{}, ErrDoublePointer
	}

	dst := fnType.Out(0)
	if dst.Kind() == reflect.Ptr && dst.Elem().Kind() == reflect.Ptr {
		return Caster{}, ErrDoublePointer
	}

	fnPC := runtime.FuncForPC(fnVal.Pointer())
	alias, name := utils.Unpack2(strings.SplitN(path.Base(fnPC.Name()), ".", 2))

	caster := Caster{
		Src:          src,
		Dst:          dst,
		Name:         name,
		PackageAlias: alias,
		fn:           fnVal,
	}

	switch fnType.NumOut() {
	default:
		return Caster{}, ErrIsNotACaster

	case 1:
		return caster, nil

	case 2:
		last := fnType.Out(1)

		switch {
		default:
			return Caster{}, ErrIsNotACaster
		case last.Kind() == reflect.Bool:
			caster.HasBool = true
		case isError(last):
			caster.HasErr = true
		}
		return caster, nil

	case 3:
		tbool, terr := fnType.Out(1), fnType.Out(2)
		if tbool.Kind() != reflect.Bool || !isError(terr) {
			return Caster{}, ErrIsNotACaster
		}

		caster.HasBool = true
		caster.HasErr = true
		return caster, nil
	}
}

// String returns the qualified function name, e.g. uuid.Parse.
func (c Caster) String() string {
	if c.PackageAlias == "" {
		return c.Name
	}

	return c.PackageAlias + "." + c.Name
}

// Accepts reports whether a value of type t can be passed to the caster.
func (c Caster) Accepts(t reflect.Type) bool {
	return t != nil && t.AssignableTo(c.Src)
}

// Call runs the caster on v. A false bool result is reported as ErrCasterRejected.
func (c Caster) Call(v reflect.Value) (reflect.Value, error) {
	out := c.fn.Call([]reflect.Value{v})

	if c.HasErr {
		if errVal := out[len(out)-1]; !errVal.IsNil() {
			return reflect.Value{}, errVal.Interface().(error)
		}
	}

	if c.HasBool && !out[1].Bool() {
		return reflect.Value{}, ErrCasterRejected
	}

	return out[0], nil
}

func isError(t reflect.Type) bool {
	if t == nil {
		return false
	}

	return t.Implements(errorType)
}
