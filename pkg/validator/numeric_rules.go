package validator

import (
	"fmt"
	"reflect"
	"strconv"
)

// MinNum validates that a numeric value is greater than or equal to the minimum.
func MinNum[T Numeric](field string, value T, min T) Rule {
	return Rule{
		Check: func() bool {
			return value >= min
		},
		Error: ValidationError{
			Field: field,
			Message: fmt.Sprintf("Expected %s to be equal or higher than %s, but in fact %s",
				field, FormatNumber(min), FormatNumber(value)),
			TranslationKey: "validation.minimum",
			TranslationValues: map[string]any{
				"field":      field,
				"constraint": min,
				"value":      value,
			},
			Err: ErrConstraintViolation,
		},
	}
}

// MaxNum validates that a numeric value is less than or equal to the maximum.
func MaxNum[T Numeric](field string, value T, max T) Rule {
	return Rule{
		Check: func() bool {
			return value <= max
		},
		Error: ValidationError{
			Field: field,
			Message: fmt.Sprintf("Expected %s to be equal or lower than %s, but in fact %s",
				field, FormatNumber(max), FormatNumber(value)),
			TranslationKey: "validation.maximum",
			TranslationValues: map[string]any{
				"field":      field,
				"constraint": max,
				"value":      value,
			},
			Err: ErrConstraintViolation,
		},
	}
}

// FormatNumber renders a number in plain decimal notation.
// Floats use the shortest representation that round-trips, without exponent.
func FormatNumber[T Numeric](v T) string {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Float32:
		return strconv.FormatFloat(rv.Float(), 'f', -1, 32)
	case reflect.Float64:
		return strconv.FormatFloat(rv.Float(), 'f', -1, 64)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return strconv.FormatUint(rv.Uint(), 10)
	default:
		return strconv.FormatInt(rv.Int(), 10)
	}
}
