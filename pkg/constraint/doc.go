// Package constraint implements declarative numeric constraint validators
// that plug into a schema-validation engine.
//
// A validator checks one field value against one bound declared in a schema
// fragment such as {"minimum": 18}. Values arrive loosely typed (decoded JSON,
// YAML, query parameters) and are coerced to float64 under an explicit Policy
// before comparison. A nil value is treated as absent and always passes;
// presence is enforced by a separate required-field rule.
//
// # Architecture
//
// Each constraint is a small immutable type (Minimum, Maximum) whose Validate
// method is a pure function of its input. Validators are constructed through
// a Registry that maps constraint names to Factory functions. The registry is
// populated explicitly when the schema is loaded; there is no init-time
// discovery.
//
// Results carry a *Violation on failure. Violations unwrap to the shared
// sentinels in pkg/validator so callers can aggregate them with
// validator.Apply and inspect them with errors.Is.
//
// # Coercion
//
// Permissive (the default) mirrors loose dynamic-language semantics: numbers
// convert, strings yield their leading decimal number ("12abc" is 12),
// booleans map to 1 and 0, and anything else becomes 0. Strict accepts only
// finite numbers and strings that are entirely a number and reports a type
// mismatch otherwise. "Inf" and "NaN" are not numbers under either policy. The policy is externally observable and is
// selected per registry or via the CONSTRAINT_COERCION environment variable.
//
// # Usage
//
//	reg := constraint.NewDefaultRegistry(constraint.WithPolicy(constraint.Strict))
//	vs, err := reg.BuildField("age", map[string]any{"minimum": 18})
//	if err != nil {
//	    return err
//	}
//	if err := constraint.Apply(payload, vs...); err != nil {
//	    for _, fe := range validator.ExtractValidationErrors(err) {
//	        fmt.Println(fe.Message)
//	    }
//	}
package constraint
