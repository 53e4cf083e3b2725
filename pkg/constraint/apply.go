package constraint

import (
	"github.com/samber/lo"

	"github.com/dmitrymomot/schemakit/pkg/validator"
)

// ToRule evaluates v against value once and exposes the outcome as a
// validator.Rule so it can be aggregated with other rules.
func ToRule(v Validator, value any) validator.Rule {
	res := v.Validate(value)

	verr := validator.ValidationError{
		Field:          v.Key(),
		TranslationKey: "validation." + v.Name(),
		TranslationValues: map[string]any{
			"field": v.Key(),
			"value": value,
		},
	}
	if b, ok := v.(interface{ Constraint() float64 }); ok {
		verr.TranslationValues["constraint"] = b.Constraint()
	}
	if res.Violation != nil {
		verr.Message = res.Violation.Message
		verr.Err = res.Violation
		if res.Violation.Kind == KindTypeMismatch {
			verr.TranslationKey = "validation.type_mismatch"
		}
	}

	return validator.Rule{
		Check: func() bool { return res.Valid },
		Error: verr,
	}
}

// Apply validates values against validators, looking each value up by the
// validator key. Missing keys are absent and pass. Failures are returned as
// validator.ValidationErrors.
func Apply(values map[string]any, validators ...Validator) error {
	rules := lo.Map(validators, func(v Validator, _ int) validator.Rule {
		return ToRule(v, values[v.Key()])
	})
	return validator.Apply(rules...)
}
