package validator

import (
	"errors"
	"fmt"
	"strings"

	"github.com/samber/lo"
)

type Numeric interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// ValidationError represents a single field failure with translation support.
// Err holds the failure kind (ErrConstraintViolation, ErrTypeMismatch) when known.
type ValidationError struct {
	Field             string
	Message           string
	TranslationKey    string
	TranslationValues map[string]any
	Err               error
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func (e ValidationError) Unwrap() error {
	return e.Err
}

// ValidationErrors represents a collection of validation errors.
type ValidationErrors []ValidationError

func (ve ValidationErrors) Error() string {
	if len(ve) == 0 {
		return "validation failed"
	}

	parts := lo.Map(ve, func(err ValidationError, _ int) string {
		return err.Error()
	})
	return "validation failed: " + strings.Join(parts, "; ")
}

// Is reports ErrValidationFailed for any aggregate and matches the kind
// sentinel of any contained error.
func (ve ValidationErrors) Is(target error) bool {
	if target == ErrValidationFailed {
		return true
	}
	return lo.ContainsBy(ve, func(err ValidationError) bool {
		return err.Err != nil && errors.Is(err.Err, target)
	})
}

func (ve *ValidationErrors) Add(err ValidationError) {
	*ve = append(*ve, err)
}

func (ve ValidationErrors) Has(field string) bool {
	return lo.ContainsBy(ve, func(err ValidationError) bool {
		return err.Field == field
	})
}

func (ve ValidationErrors) Get(field string) []string {
	return lo.FilterMap(ve, func(err ValidationError, _ int) (string, bool) {
		return err.Message, err.Field == field
	})
}

func (ve ValidationErrors) GetErrors(field string) []ValidationError {
	return lo.Filter(ve, func(err ValidationError, _ int) bool {
		return err.Field == field
	})
}

func (ve ValidationErrors) Fields() []string {
	return lo.Uniq(lo.Map(ve, func(err ValidationError, _ int) string {
		return err.Field
	}))
}

func (ve ValidationErrors) IsEmpty() bool {
	return len(ve) == 0
}

// Rule represents a single validation rule.
type Rule struct {
	Check func() bool
	Error ValidationError
}

// Apply executes multiple validation rules and returns any validation errors.
func Apply(rules ...Rule) error {
	var errs ValidationErrors

	for _, rule := range rules {
		if !rule.Check() {
			errs = append(errs, rule.Error)
		}
	}

	if errs.IsEmpty() {
		return nil
	}

	return errs
}

// ExtractValidationErrors extracts ValidationErrors from an error.
func ExtractValidationErrors(err error) ValidationErrors {
	if err == nil {
		return nil
	}

	var validationErr ValidationErrors
	if errors.As(err, &validationErr) {
		return validationErr
	}

	return nil
}

func IsValidationError(err error) bool {
	if err == nil {
		return false
	}

	var validationErr ValidationErrors
	return errors.As(err, &validationErr)
}
