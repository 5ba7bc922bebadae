package primitive_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"strict-record/options"
	"strict-record/primitive"
)

func TestCategoryOf(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		pair    primitive.ConversionPair
		allowed options.CategoryEnum
		want    options.CategoryEnum
		ok      bool
	}{
		{"widening int", primitive.ConversionPair{From: primitive.KindInt8, To: primitive.KindInt64}, options.CategoryAll, options.CategorySafeNumber, true},
		{"narrowing int", primitive.ConversionPair{From: primitive.KindInt64, To: primitive.KindInt8}, options.CategoryAll, options.CategoryUnsafeNumber, true},
		{"narrowing disabled", primitive.ConversionPair{From: primitive.KindInt64, To: primitive.KindInt8}, options.CategorySafeNumber, options.CategoryNone, false},
		{"text to int", primitive.ConversionPair{From: primitive.KindString, To: primitive.KindInt}, options.CategoryDefault, options.CategoryTextNumber, true},
		{"text to bool", primitive.ConversionPair{From: primitive.KindString, To: primitive.KindBool}, options.CategoryDefault, options.CategoryTextualBool, true},
		{"int to bool", primitive.ConversionPair{From: primitive.KindUint8, To: primitive.KindBool}, options.CategoryDefault, options.CategoryNumericBool, true},
		{"float to bool", primitive.ConversionPair{From: primitive.KindFloat64, To: primitive.KindBool}, options.CategoryAll, options.CategoryNone, false},
		{"uint64 timestamp", primitive.ConversionPair{From: primitive.KindUint64, To: primitive.KindTime}, options.CategoryAll, options.CategoryNone, false},
		{"seconds", primitive.ConversionPair{From: primitive.KindFloat64, To: primitive.KindDuration}, options.CategoryAll, options.CategorySeconds, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, ok := primitive.CategoryOf(tt.pair, tt.allowed)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCategoryEnum_Has(t *testing.T) {
	t.Parallel()

	assert.True(t, options.CategoryDefault.Has(options.CategorySafeArray|options.CategoryTextualBool))
	assert.False(t, options.CategoryDefault.Has(options.CategoryUnsafeArray))
	assert.True(t, options.CategoryAll.Has(options.CategoryUnsafeArray))
	assert.True(t, options.CategoryNone.Has(options.CategoryNone))
}
