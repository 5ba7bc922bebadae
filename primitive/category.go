package primitive

import (
	"strict-record/options"
)

type ConversionPair struct {
	From, To KindEnum
}

var conversionPairs map[options.CategoryEnum]map[ConversionPair]struct{}

func init() {
	conversionPairs = make(map[options.CategoryEnum]map[ConversionPair]struct{})

	conversionPairs[options.CategorySafeNumber] = safeNumberConversionPairs()

	// CategoryUnsafeNumber: every other number pair, values are still range checked
	conversionPairs[options.CategoryUnsafeNumber] = map[ConversionPair]struct{}{}
	forEachKind(KindEnum.IsNumber, func(fromKind KindEnum) {
		forEachKind(KindEnum.IsNumber, func(toKind KindEnum) {
			pair := ConversionPair{fromKind, toKind}
			if _, ok := conversionPairs[options.CategorySafeNumber][pair]; ok {
				return
			}

			conversionPairs[options.CategoryUnsafeNumber][pair] = struct{}{}
		})
	})

	// CategoryTextNumber: text <-> number conversions
	conversionPairs[options.CategoryTextNumber] = map[ConversionPair]struct{}{}
	forEachKind(KindEnum.IsNumber, func(numberKind KindEnum) {
		conversionPairs[options.CategoryTextNumber][ConversionPair{numberKind, KindString}] = struct{}{}
		conversionPairs[options.CategoryTextNumber][ConversionPair{KindString, numberKind}] = struct{}{}
	})

	// CategoryNumericBool: int <-> bool conversions
	conversionPairs[options.CategoryNumericBool] = map[ConversionPair]struct{}{}
	forEachKind(KindEnum.IsInteger, func(intKind KindEnum) {
		conversionPairs[options.CategoryNumericBool][ConversionPair{intKind, KindBool}] = struct{}{}
		conversionPairs[options.CategoryNumericBool][ConversionPair{KindBool, intKind}] = struct{}{}
	})

	conversionPairs[options.CategoryTextualBool] = map[ConversionPair]struct{}{
		{KindString, KindBool}: {},
		{KindBool, KindString}: {},
	}

	conversionPairs[options.CategoryDatetime] = map[ConversionPair]struct{}{
		{KindString, KindTime}: {},
		{KindTime, KindString}: {},
	}

	// CategoryTimestamp and CategoryNanoseconds: uint64 does not fit into int64 seconds or nanoseconds
	conversionPairs[options.CategoryTimestamp] = map[ConversionPair]struct{}{}
	conversionPairs[options.CategoryNanoseconds] = map[ConversionPair]struct{}{}
	forEachKind(fitsInt64, func(intKind KindEnum) {
		conversionPairs[options.CategoryTimestamp][ConversionPair{intKind, KindTime}] = struct{}{}
		conversionPairs[options.CategoryTimestamp][ConversionPair{KindTime, intKind}] = struct{}{}
		conversionPairs[options.CategoryNanoseconds][ConversionPair{intKind, KindDuration}] = struct{}{}
		conversionPairs[options.CategoryNanoseconds][ConversionPair{KindDuration, intKind}] = struct{}{}
	})

	conversionPairs[options.CategoryDuration] = map[ConversionPair]struct{}{
		{KindString, KindDuration}: {},
		{KindDuration, KindString}: {},
	}

	conversionPairs[options.CategorySeconds] = map[ConversionPair]struct{}{
		{KindFloat32, KindDuration}: {},
		{KindFloat64, KindDuration}: {},
		{KindDuration, KindFloat32}: {},
		{KindDuration, KindFloat64}: {},
	}
}

func forEachKind(pred func(KindEnum) bool, fn func(KindEnum)) {
	for kind := KindEnum(0); int(kind) < KindTotal; kind++ {
		if pred(kind) {
			fn(kind)
		}
	}
}

func fitsInt64(k KindEnum) bool {
	return k.IsInteger() && k != KindUint64 && k != KindUint
}

func safeNumberConversionPairs() map[ConversionPair]struct{} {
	return map[ConversionPair]struct{}{
		{KindInt, KindInt}:   {}, // int can be any wide from 32 upto 64
		{KindInt, KindInt64}: {},

		{KindInt8, KindInt}:     {}, // int8 can be safely converted to any signed int
		{KindInt8, KindInt8}:    {},
		{KindInt8, KindInt16}:   {},
		{KindInt8, KindInt32}:   {},
		{KindInt8, KindInt64}:   {},
		{KindInt8, KindFloat32}: {},
		{KindInt8, KindFloat64}: {},

		{KindInt16, KindInt}:     {},
		{KindInt16, KindInt16}:   {}, // int16 omitting narrowing to int8
		{KindInt16, KindInt32}:   {},
		{KindInt16, KindInt64}:   {},
		{KindInt16, KindFloat32}: {},
		{KindInt16, KindFloat64}: {},

		{KindInt32, KindInt}:     {},
		{KindInt32, KindInt32}:   {}, // int32 omitting narrowing to int8/16
		{KindInt32, KindInt64}:   {},
		{KindInt32, KindFloat64}: {}, // int32 is wider than float32 mantissa

		{KindInt64, KindInt64}: {}, // int64 is the widest signed integer type

		{KindUint, KindUint}:   {}, // uint can be any wide from 32 upto 64
		{KindUint, KindUint64}: {},

		{KindUint8, KindUint}:    {}, // uint8 can be safely converted to any unsigned int
		{KindUint8, KindUint8}:   {},
		{KindUint8, KindUint16}:  {},
		{KindUint8, KindUint32}:  {},
		{KindUint8, KindUint64}:  {},
		{KindUint8, KindInt}:     {}, // also uint8 can be converted to any wider signed int
		{KindUint8, KindInt16}:   {},
		{KindUint8, KindInt32}:   {},
		{KindUint8, KindInt64}:   {},
		{KindUint8, KindFloat32}: {},
		{KindUint8, KindFloat64}: {},

		{KindUint16, KindUint}:    {},
		{KindUint16, KindUint16}:  {}, // uint16 omitting narrowing to uint8
		{KindUint16, KindUint32}:  {},
		{KindUint16, KindUint64}:  {},
		{KindUint16, KindInt}:     {}, // also uint16 can be converted to any wider signed int
		{KindUint16, KindInt32}:   {},
		{KindUint16, KindInt64}:   {},
		{KindUint16, KindFloat32}: {},
		{KindUint16, KindFloat64}: {},

		{KindUint32, KindUint32}:  {},
		{KindUint32, KindUint64}:  {}, // uint32 omitting narrowing to uint8/16
		{KindUint32, KindInt64}:   {}, // also only int64 is wide enough to hold uint32
		{KindUint32, KindFloat64}: {}, // uint32 is wider than float32 mantissa

		{KindUint64, KindUint64}: {}, // uint64 is the widest unsigned integer type

		{KindFloat32, KindFloat32}: {},
		{KindFloat32, KindFloat64}: {},

		{KindFloat64, KindFloat64}: {},
	}
}

// CategoryOf returns the first allowed category that contains pair.
func CategoryOf(pair ConversionPair, allowed options.CategoryEnum) (options.CategoryEnum, bool) {
	for category := options.CategoryEnum(1); category&options.CategoryAll > 0; category <<= 1 {
		if allowed&category == 0 {
			continue
		}

		if _, ok := conversionPairs[category][pair]; ok {
			return category, true
		}
	}

	return options.CategoryNone, false
}
