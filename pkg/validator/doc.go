// Package validator aggregates field-level validation failures.
//
// A Rule pairs a boolean Check with the ValidationError reported when the
// check fails. Apply evaluates rules and returns the failures as
// ValidationErrors, a slice type that implements error. Rules are plain
// values with no shared state, so they can be built and applied from any
// goroutine.
//
// Each ValidationError carries a human-readable Message, a TranslationKey
// with TranslationValues for callers that localise output, and an Err naming
// the failure kind. ValidationErrors matches ErrValidationFailed and every
// kind it contains with errors.Is:
//
//	err := validator.Apply(
//	    validator.MinNum("age", age, 18),
//	    validator.MaxNum("age", age, 130),
//	)
//	if errors.Is(err, validator.ErrConstraintViolation) {
//	    for _, fe := range validator.ExtractValidationErrors(err) {
//	        log.Println(fe.Field, fe.Message)
//	    }
//	}
//
// Messages follow the schema constraint wording, for example
// "Expected age to be equal or higher than 18, but in fact 17.9".
// Loosely typed values and declarative constraints live in pkg/constraint,
// which builds on these types.
package validator
