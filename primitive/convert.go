package primitive

import (
	"errors"
	"fmt"
	"math"
	"reflect"
	"strconv"
	"strings"
	"time"

	"github.com/go-openapi/strfmt"

	"strict-record/options"
)

var (
	ErrNotPrimitive = errors.New("type is not a primitive")
	ErrNotAllowed   = errors.New("conversion is not allowed")
	ErrOverflow     = errors.New("value overflows destination type")
	ErrInvalidBool  = errors.New("value is not a recognizable boolean")
	ErrInvalidEnum  = errors.New("value is not a valid enum member")
	ErrInvalidTime  = errors.New("value is not a recognizable date or date-time")
)

var (
	stringerType = reflect.TypeFor[fmt.Stringer]()
	validityType = reflect.TypeFor[interface{ IsValid() bool }]()
)

var textualBools = map[string]bool{
	"true": true, "t": true, "1": true, "yes": true, "y": true, "on": true,
	"false": false, "f": false, "0": false, "no": false, "n": false, "off": false,
}

// ParseBool accepts only the conventional spellings of true and false, case-insensitive.
// Unlike a truthiness check, "False" is false and "notabool" is an error.
func ParseBool(s string) (bool, error) {
	b, ok := textualBools[strings.ToLower(strings.TrimSpace(s))]
	if !ok {
		return false, fmt.Errorf("%w: %q", ErrInvalidBool, s)
	}

	return b, nil
}

// ParseTime reads RFC3339Nano first, then the wider date-time grammar of strfmt,
// then a bare date.
func ParseTime(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, fmt.Errorf("%w: empty string", ErrInvalidTime)
	}

	if t, err := time.Parse(time.RFC3339Nano, s); err == nil {
		return t, nil
	}

	if dt, err := strfmt.ParseDateTime(s); err == nil {
		return time.Time(dt), nil
	}

	t, err := time.Parse(time.DateOnly, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidTime, s)
	}

	return t, nil
}

// ParseDuration reads Go duration syntax (2h45m) and falls back to strfmt's
// extended units (3 days, 1 week).
func ParseDuration(s string) (time.Duration, error) {
	s = strings.TrimSpace(s)
	if d, err := time.ParseDuration(s); err == nil {
		return d, nil
	}

	return strfmt.ParseDuration(s)
}

// Convert converts a primitive src value into a value of type dst using only
// the conversions enabled in allowed. The returned value has exactly type dst.
func Convert(src reflect.Value, dst reflect.Type, allowed options.CategoryEnum) (reflect.Value, error) {
	srcKind := FromReflectType(src.Type())
	dstKind := FromReflectType(dst)
	if srcKind == 0 || dstKind == 0 {
		return reflect.Value{}, fmt.Errorf("%w: %s to %s", ErrNotPrimitive, src.Type(), dst)
	}

	if dstKind == KindPrimitiveEnum {
		return convertEnum(src, dst, allowed)
	}

	if srcKind == KindPrimitiveEnum {
		if dstKind == KindString && src.Type().Implements(stringerType) {
			if !allowed.Has(options.CategoryEnumString) {
				return reflect.Value{}, fmt.Errorf("%w: %s to %s", ErrNotAllowed, src.Type(), dst)
			}

			return reflect.ValueOf(src.Interface().(fmt.Stringer).String()).Convert(dst), nil
		}

		// named source types, e.g. json.Number, are read through their base type
		src = src.Convert(BaseType(src.Type()))
		srcKind = FromReflectType(src.Type())
	}

	if srcKind == dstKind {
		return src.Convert(dst), nil
	}

	pair := ConversionPair{srcKind, dstKind}
	category, ok := CategoryOf(pair, allowed)
	if !ok {
		return reflect.Value{}, fmt.Errorf("%w: %s to %s", ErrNotAllowed, srcKind, dstKind)
	}

	switch category {
	case options.CategorySafeNumber, options.CategoryUnsafeNumber:
		return convertNumber(src, dst)
	case options.CategoryTextNumber:
		if srcKind == KindString {
			return parseNumber(src.String(), dst, dstKind)
		}

		return reflect.ValueOf(formatNumber(src, srcKind)).Convert(dst), nil
	case options.CategoryNumericBool:
		if dstKind == KindBool {
			return intToBool(src)
		}

		if src.Bool() {
			return setInt(dst, 1)
		}

		return setInt(dst, 0)
	case options.CategoryTextualBool:
		if dstKind == KindBool {
			b, err := ParseBool(src.String())
			if err != nil {
				return reflect.Value{}, err
			}

			return reflect.ValueOf(b), nil
		}

		return reflect.ValueOf(strconv.FormatBool(src.Bool())), nil
	case options.CategoryDatetime:
		if dstKind == KindTime {
			t, err := ParseTime(src.String())
			if err != nil {
				return reflect.Value{}, err
			}

			return reflect.ValueOf(t), nil
		}

		return reflect.ValueOf(src.Interface().(time.Time).Format(time.RFC3339Nano)), nil
	case options.CategoryTimestamp:
		if dstKind == KindTime {
			return reflect.ValueOf(time.Unix(toInt64(src), 0).UTC()), nil
		}

		return setInt(dst, src.Interface().(time.Time).Unix())
	case options.CategoryDuration:
		if dstKind == KindDuration {
			d, err := ParseDuration(src.String())
			if err != nil {
				return reflect.Value{}, err
			}

			return reflect.ValueOf(d), nil
		}

		return reflect.ValueOf(time.Duration(src.Int()).String()), nil
	case options.CategoryNanoseconds:
		if dstKind == KindDuration {
			return reflect.ValueOf(time.Duration(toInt64(src))), nil
		}

		return setInt(dst, src.Int())
	case options.CategorySeconds:
		if dstKind == KindDuration {
			seconds := src.Float() * float64(time.Second)
			if math.IsNaN(seconds) || seconds >= math.MaxInt64 || seconds < math.MinInt64 {
				return reflect.Value{}, fmt.Errorf("%w: %v seconds", ErrOverflow, src.Float())
			}

			return reflect.ValueOf(time.Duration(seconds)), nil
		}

		return setFloat(dst, time.Duration(src.Int()).Seconds())
	}

	return reflect.Value{}, fmt.Errorf("%w: %s to %s", ErrNotAllowed, srcKind, dstKind)
}

// convertEnum converts src into the base type of the named dst, then into dst,
// and rejects the result when dst reports it as invalid.
func convertEnum(src reflect.Value, dst reflect.Type, allowed options.CategoryEnum) (reflect.Value, error) {
	if !allowed.Has(options.CategoryEnumString) {
		return reflect.Value{}, fmt.Errorf("%w: %s to %s", ErrNotAllowed, src.Type(), dst)
	}

	base := BaseType(dst)

	var (
		raw reflect.Value
		err error
	)
	if src.Type() == base {
		raw = src
	} else {
		raw, err = Convert(src, base, allowed)
		if err != nil {
			return reflect.Value{}, err
		}
	}

	res := raw.Convert(dst)
	if dst.Implements(validityType) && !res.Interface().(interface{ IsValid() bool }).IsValid() {
		return reflect.Value{}, fmt.Errorf("%w: %v for %s", ErrInvalidEnum, raw.Interface(), dst)
	}

	return res, nil
}

func convertNumber(src reflect.Value, dst reflect.Type) (reflect.Value, error) {
	switch {
	case src.CanInt():
		return setInt(dst, src.Int())
	case src.CanUint():
		return setUint(dst, src.Uint())
	default:
		return setFloat(dst, src.Float())
	}
}

func parseNumber(s string, dst reflect.Type, dstKind KindEnum) (reflect.Value, error) {
	s = strings.TrimSpace(s)

	switch {
	case dstKind.IsSigned():
		n, err := strconv.ParseInt(s, 10, dstKind.Bits())
		if err != nil {
			return reflect.Value{}, err
		}

		return setInt(dst, n)
	case dstKind.IsUnsigned():
		n, err := strconv.ParseUint(s, 10, dstKind.Bits())
		if err != nil {
			return reflect.Value{}, err
		}

		return setUint(dst, n)
	default:
		f, err := strconv.ParseFloat(s, dstKind.Bits())
		if err != nil {
			return reflect.Value{}, err
		}

		return setFloat(dst, f)
	}
}

func formatNumber(src reflect.Value, srcKind KindEnum) string {
	switch {
	case srcKind.IsSigned():
		return strconv.FormatInt(src.Int(), 10)
	case srcKind.IsUnsigned():
		return strconv.FormatUint(src.Uint(), 10)
	default:
		return strconv.FormatFloat(src.Float(), 'f', -1, srcKind.Bits())
	}
}

// intToBool accepts only 0 and 1.
func intToBool(src reflect.Value) (reflect.Value, error) {
	switch {
	case src.CanInt() && src.Int() == 0, src.CanUint() && src.Uint() == 0:
		return reflect.ValueOf(false), nil
	case src.CanInt() && src.Int() == 1, src.CanUint() && src.Uint() == 1:
		return reflect.ValueOf(true), nil
	}

	return reflect.Value{}, fmt.Errorf("%w: only numbers 0 and 1 are allowed, got %v", ErrInvalidBool, src.Interface())
}

func toInt64(src reflect.Value) int64 {
	if src.CanUint() {
		return int64(src.Uint())
	}

	return src.Int()
}

func setInt(dst reflect.Type, n int64) (reflect.Value, error) {
	v := reflect.New(dst).Elem()

	switch {
	case v.CanInt():
		if v.OverflowInt(n) {
			return reflect.Value{}, fmt.Errorf("%w: %d does not fit %s", ErrOverflow, n, dst)
		}

		v.SetInt(n)
	case v.CanUint():
		if n < 0 || v.OverflowUint(uint64(n)) {
			return reflect.Value{}, fmt.Errorf("%w: %d does not fit %s", ErrOverflow, n, dst)
		}

		v.SetUint(uint64(n))
	case v.CanFloat():
		v.SetFloat(float64(n))
	default:
		return reflect.Value{}, fmt.Errorf("%w: %s is not a number", ErrNotAllowed, dst)
	}

	return v, nil
}

func setUint(dst reflect.Type, n uint64) (reflect.Value, error) {
	v := reflect.New(dst).Elem()

	switch {
	case v.CanUint():
		if v.OverflowUint(n) {
			return reflect.Value{}, fmt.Errorf("%w: %d does not fit %s", ErrOverflow, n, dst)
		}

		v.SetUint(n)
	case v.CanInt():
		if n > math.MaxInt64 || v.OverflowInt(int64(n)) {
			return reflect.Value{}, fmt.Errorf("%w: %d does not fit %s", ErrOverflow, n, dst)
		}

		v.SetInt(int64(n))
	case v.CanFloat():
		v.SetFloat(float64(n))
	default:
		return reflect.Value{}, fmt.Errorf("%w: %s is not a number", ErrNotAllowed, dst)
	}

	return v, nil
}

// setFloat truncates toward zero for integer destinations.
func setFloat(dst reflect.Type, f float64) (reflect.Value, error) {
	v := reflect.New(dst).Elem()
	if math.IsNaN(f) || math.IsInf(f, 0) {
		if v.CanFloat() {
			v.SetFloat(f)
			return v, nil
		}

		return reflect.Value{}, fmt.Errorf("%w: %v does not fit %s", ErrOverflow, f, dst)
	}

	switch {
	case v.CanFloat():
		if v.OverflowFloat(f) {
			return reflect.Value{}, fmt.Errorf("%w: %v does not fit %s", ErrOverflow, f, dst)
		}

		v.SetFloat(f)
	case v.CanInt():
		if f < math.MinInt64 || f >= math.MaxInt64 {
			return reflect.Value{}, fmt.Errorf("%w: %v does not fit %s", ErrOverflow, f, dst)
		}

		return setInt(dst, int64(math.Trunc(f)))
	case v.CanUint():
		if f <= -1 || f >= math.MaxUint64 {
			return reflect.Value{}, fmt.Errorf("%w: %v does not fit %s", ErrOverflow, f, dst)
		}

		return setUint(dst, uint64(math.Trunc(f)))
	default:
		return reflect.Value{}, fmt.Errorf("%w: %s is not a number", ErrNotAllowed, dst)
	}

	return v, nil
}
