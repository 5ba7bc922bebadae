package options

type CategoryEnum int

const (
	CategorySafeNumber   CategoryEnum = 1 << iota // int, uint, float without precision loss
	CategoryUnsafeNumber                          // int, uint, float with precision loss, overflow is still an error
	CategoryTextNumber                            // int, uint, float <-> string: textual number representation
	CategoryNumericBool                           // int <-> bool: 0, 1 representation of boolean values
	CategoryTextualBool                           // string <-> bool: true/false, t/f, 1/0, yes/no, y/n, on/off
	CategoryDatetime                              // string(RFC3339Nano, date-time, date) <-> time.Time
	CategoryTimestamp                             // int(Unix seconds) <-> time.Time: Unix timestamp representation
	CategoryDuration                              // string(2h45m, 3 days) <-> time.Duration: textual duration representation
	CategoryNanoseconds                           // int(nanoseconds) <-> time.Duration: numerical (integer) duration representation
	CategorySeconds                               // float(seconds) <-> time.Duration: numerical (floating-point) duration representation
	CategoryEnumString                            // string/int <-> enum: named primitive types, validated with IsValid() when present
	CategorySafeArray                             // slice -> array: slice fits into an array, the tail is left with zero values
	CategoryUnsafeArray                           // slice -> array: slice does not fit into an array and is cut

	CategoryAll  CategoryEnum = (1 << iota) - 1 // all categories combined
	CategoryNone CategoryEnum = 0               // no categories selected

	// CategoryDefault is what a record type gets unless configured otherwise.
	CategoryDefault = CategoryAll &^ CategoryUnsafeArray
)

// Has reports whether every category of other is enabled in c.
func (c CategoryEnum) Has(other CategoryEnum) bool {
	return c&other == other
}
