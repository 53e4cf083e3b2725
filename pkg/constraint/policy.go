package constraint

import (
	"fmt"
	"math"
	"reflect"
	"regexp"
	"strconv"
	"strings"

	"github.com/spf13/cast"

	"github.com/dmitrymomot/schemakit/pkg/validator"
)

// Policy selects how loosely typed values are converted to numbers.
type Policy uint8

const (
	// Permissive converts what it can and falls back to 0. It never fails.
	Permissive Policy = iota
	// Strict accepts numbers and numeric strings only.
	Strict
)

// ParsePolicy maps a policy name to a Policy. Case and surrounding space are
// ignored; an empty name selects Permissive.
func ParsePolicy(s string) (Policy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "permissive":
		return Permissive, nil
	case "strict":
		return Strict, nil
	}
	return Permissive, fmt.Errorf("%w: %q", ErrUnknownPolicy, s)
}

// String returns the policy name accepted by ParsePolicy.
func (p Policy) String() string {
	switch p {
	case Permissive:
		return "permissive"
	case Strict:
		return "strict"
	}
	return fmt.Sprintf("policy(%d)", uint8(p))
}

// MarshalText implements encoding.TextMarshaler.
func (p Policy) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. On error p is unchanged.
func (p *Policy) UnmarshalText(text []byte) error {
	parsed, err := ParsePolicy(string(text))
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}

// Coerce converts a present value to float64.
//
// Permissive reads strings the way loose dynamic languages do: the longest
// leading decimal number wins ("12abc" is 12, "abc12" is 0) and spellings of
// infinity or NaN are 0. Other unconvertible values are 0.
// Strict accepts finite numbers and strings that are entirely a finite
// number; anything else returns an error wrapping validator.ErrTypeMismatch.
func (p Policy) Coerce(value any) (float64, error) {
	v := indirect(value)
	s, isString := v.(string)
	if isString {
		s = strings.TrimSpace(s)
		v = s
	}

	if p == Strict {
		if _, ok := v.(bool); ok || (isString && s == "") {
			return 0, typeMismatch(value)
		}
		n, err := cast.ToFloat64E(v)
		if err != nil || !isFinite(n) {
			return 0, typeMismatch(value)
		}
		return n, nil
	}

	if isString {
		return parseLeadingFloat(s), nil
	}
	n, err := cast.ToFloat64E(v)
	if err != nil {
		return 0, nil
	}
	return n, nil
}

var leadingNumber = regexp.MustCompile(`^[+-]?(\d[\d_]*)?(\.\d+)?([eE][+-]?\d+)?`)

// parseLeadingFloat returns the finite number at the start of s, or 0.
func parseLeadingFloat(s string) float64 {
	if n, err := cast.ToFloat64E(s); err == nil && isFinite(n) {
		return n
	}
	m := leadingNumber.FindString(s)
	if !strings.ContainsAny(m, "0123456789") {
		return 0
	}
	n, err := strconv.ParseFloat(strings.ReplaceAll(m, "_", ""), 64)
	if err != nil || !isFinite(n) {
		return 0
	}
	return n
}

func isFinite(n float64) bool {
	return !math.IsNaN(n) && !math.IsInf(n, 0)
}

func typeMismatch(value any) error {
	return fmt.Errorf("%w: %s is not a number", validator.ErrTypeMismatch, Inspect(value))
}

// IsAbsent reports whether value is nil or a nil pointer.
func IsAbsent(value any) bool {
	if value == nil {
		return true
	}
	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface:
		return rv.IsNil()
	}
	return false
}

// indirect dereferences pointers until it reaches a non-pointer or nil.
func indirect(value any) any {
	if value == nil || reflect.TypeOf(value).Kind() != reflect.Pointer {
		return value
	}
	rv := reflect.ValueOf(value)
	for rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return nil
		}
		rv = rv.Elem()
	}
	return rv.Interface()
}
