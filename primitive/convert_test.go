package primitive_test

import (
	"encoding/json"
	"math"
	"reflect"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"strict-record/options"
	"strict-record/primitive"
)

type Color string

func (c Color) IsValid() bool { return c == "red" || c == "green" }

type Level int

func (l Level) String() string {
	switch l {
	case 1:
		return "low"
	case 2:
		return "high"
	default:
		return "unknown"
	}
}

func convert(t *testing.T, src any, dst reflect.Type) (any, error) {
	t.Helper()

	res, err := primitive.Convert(reflect.ValueOf(src), dst, options.CategoryDefault)
	if err != nil {
		return nil, err
	}

	require.Equal(t, dst, res.Type())
	return res.Interface(), nil
}

func TestConvert(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		src  any
		dst  reflect.Type
		want any
	}{
		{"string to int", "5", reflect.TypeFor[int](), 5},
		{"padded string to int", " 42 ", reflect.TypeFor[int64](), int64(42)},
		{"string to uint8", "255", reflect.TypeFor[uint8](), uint8(255)},
		{"string to float", "1e3", reflect.TypeFor[float64](), 1000.0},
		{"int to string", 5, reflect.TypeFor[string](), "5"},
		{"float to string", 2.5, reflect.TypeFor[string](), "2.5"},
		{"float to int truncates", 5.7, reflect.TypeFor[int](), 5},
		{"negative float to int truncates", -5.7, reflect.TypeFor[int](), -5},
		{"int8 to int64", int8(-3), reflect.TypeFor[int64](), int64(-3)},
		{"uint to int", uint(7), reflect.TypeFor[int](), 7},
		{"False string", "False", reflect.TypeFor[bool](), false},
		{"TRUE string", "TRUE", reflect.TypeFor[bool](), true},
		{"t string", "t", reflect.TypeFor[bool](), true},
		{"off string", "off", reflect.TypeFor[bool](), false},
		{"one int", 1, reflect.TypeFor[bool](), true},
		{"zero uint", uint8(0), reflect.TypeFor[bool](), false},
		{"bool to int", true, reflect.TypeFor[int](), 1},
		{"bool to string", false, reflect.TypeFor[string](), "false"},
		{"duration string", "2h45m", reflect.TypeFor[time.Duration](), 2*time.Hour + 45*time.Minute},
		{"duration nanoseconds", 1500, reflect.TypeFor[time.Duration](), 1500 * time.Nanosecond},
		{"duration seconds", 1.5, reflect.TypeFor[time.Duration](), 1500 * time.Millisecond},
		{"duration to string", 90 * time.Second, reflect.TypeFor[string](), "1m30s"},
		{"duration to seconds", 90 * time.Second, reflect.TypeFor[float64](), 90.0},
		{"timestamp", 0, reflect.TypeFor[time.Time](), time.Unix(0, 0).UTC()},
		{"date only", "2024-02-29", reflect.TypeFor[time.Time](), time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC)},
		{"rfc3339", "2024-02-29T10:11:12Z", reflect.TypeFor[time.Time](), time.Date(2024, 2, 29, 10, 11, 12, 0, time.UTC)},
		{"time to string", time.Date(2024, 2, 29, 10, 11, 12, 0, time.UTC), reflect.TypeFor[string](), "2024-02-29T10:11:12Z"},
		{"json number", json.Number("12"), reflect.TypeFor[int](), 12},
		{"string enum", "red", reflect.TypeFor[Color](), Color("red")},
		{"int enum", 2, reflect.TypeFor[Level](), Level(2)},
		{"int enum from text", "1", reflect.TypeFor[Level](), Level(1)},
		{"stringer enum to string", Level(2), reflect.TypeFor[string](), "high"},
		{"string enum to string", Color("green"), reflect.TypeFor[string](), "green"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := convert(t, tt.src, tt.dst)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestConvertErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		src  any
		dst  reflect.Type
		err  error
	}{
		{"not a bool", "notabool", reflect.TypeFor[bool](), primitive.ErrInvalidBool},
		{"two is not a bool", 2, reflect.TypeFor[bool](), primitive.ErrInvalidBool},
		{"float is not a bool", 1.0, reflect.TypeFor[bool](), primitive.ErrNotAllowed},
		{"int8 overflow", 300, reflect.TypeFor[int8](), primitive.ErrOverflow},
		{"negative to uint", -1, reflect.TypeFor[uint](), primitive.ErrOverflow},
		{"nan to int", math.NaN(), reflect.TypeFor[int](), primitive.ErrOverflow},
		{"invalid enum", "blue", reflect.TypeFor[Color](), primitive.ErrInvalidEnum},
		{"bad time", "yesterday", reflect.TypeFor[time.Time](), primitive.ErrInvalidTime},
		{"empty time", "", reflect.TypeFor[time.Time](), primitive.ErrInvalidTime},
		{"struct", struct{}{}, reflect.TypeFor[int](), primitive.ErrNotPrimitive},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := convert(t, tt.src, tt.dst)
			require.ErrorIs(t, err, tt.err)
		})
	}

	t.Run("text number syntax", func(t *testing.T) {
		t.Parallel()

		_, err := convert(t, "abc", reflect.TypeFor[int]())
		require.Error(t, err)
	})
}

func TestConvertRespectsCategories(t *testing.T) {
	t.Parallel()

	_, err := primitive.Convert(reflect.ValueOf("5"), reflect.TypeFor[int](), options.CategorySafeNumber)
	require.ErrorIs(t, err, primitive.ErrNotAllowed)

	_, err = primitive.Convert(reflect.ValueOf(int64(5)), reflect.TypeFor[int8](), options.CategorySafeNumber)
	require.ErrorIs(t, err, primitive.ErrNotAllowed)

	_, err = primitive.Convert(reflect.ValueOf("red"), reflect.TypeFor[Color](), options.CategoryTextNumber)
	require.ErrorIs(t, err, primitive.ErrNotAllowed)

	res, err := primitive.Convert(reflect.ValueOf(int8(5)), reflect.TypeFor[int64](), options.CategorySafeNumber)
	require.NoError(t, err)
	assert.Equal(t, int64(5), res.Interface())
}

func TestParseBool(t *testing.T) {
	t.Parallel()

	for _, s := range []string{"true", "True", "T", "1", "yes", "Y", "on", " ON "} {
		b, err := primitive.ParseBool(s)
		require.NoError(t, err, s)
		assert.True(t, b, s)
	}

	for _, s := range []string{"false", "False", "F", "0", "no", "N", "off"} {
		b, err := primitive.ParseBool(s)
		require.NoError(t, err, s)
		assert.False(t, b, s)
	}

	for _, s := range []string{"", "2", "truthy", "nope"} {
		_, err := primitive.ParseBool(s)
		require.ErrorIs(t, err, primitive.ErrInvalidBool, s)
	}
}

func TestParseDuration(t *testing.T) {
	t.Parallel()

	d, err := primitive.ParseDuration("3 days")
	require.NoError(t, err)
	assert.Equal(t, 72*time.Hour, d)

	_, err = primitive.ParseDuration("forever")
	require.Error(t, err)
}
