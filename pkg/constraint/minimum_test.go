package constraint_test

import (
	"encoding/json"
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/schemakit/pkg/constraint"
	"github.com/dmitrymomot/schemakit/pkg/validator"
)

func TestValidateMinimum(t *testing.T) {
	t.Parallel()

	t.Run("passes when value equals constraint", func(t *testing.T) {
		res := constraint.ValidateMinimum(18, "age", 18, constraint.Permissive)
		assert.True(t, res.Valid)
		assert.Nil(t, res.Violation)
		assert.NoError(t, res.Err())
		assert.Empty(t, res.Message())
	})

	t.Run("fails just below constraint with original value in message", func(t *testing.T) {
		res := constraint.ValidateMinimum(17.9, "age", 18, constraint.Permissive)
		require.False(t, res.Valid)
		assert.Equal(t, "Expected age to be equal or higher than 18, but in fact 17.9", res.Message())
		assert.Equal(t, constraint.KindConstraintViolation, res.Violation.Kind)
		assert.Equal(t, constraint.NameMinimum, res.Violation.Name)
		assert.Equal(t, "age", res.Violation.Key)
		assert.Equal(t, 18.0, res.Violation.Constraint)
		assert.Equal(t, 17.9, res.Violation.Value)
		assert.ErrorIs(t, res.Err(), validator.ErrConstraintViolation)
		assert.NotErrorIs(t, res.Err(), validator.ErrTypeMismatch)
	})

	t.Run("passes for absent value", func(t *testing.T) {
		res := constraint.ValidateMinimum(nil, "age", 18, constraint.Permissive)
		assert.True(t, res.Valid)
	})

	t.Run("passes for nil pointer", func(t *testing.T) {
		var age *int
		res := constraint.ValidateMinimum(age, "age", 18, constraint.Strict)
		assert.True(t, res.Valid)
	})

	t.Run("dereferences pointers", func(t *testing.T) {
		age := 17
		res := constraint.ValidateMinimum(&age, "age", 18, constraint.Permissive)
		require.False(t, res.Valid)
		assert.Equal(t, "Expected age to be equal or higher than 18, but in fact 17", res.Message())
	})

	t.Run("permissive coerces non-numeric string to zero", func(t *testing.T) {
		res := constraint.ValidateMinimum("abc", "age", 18, constraint.Permissive)
		require.False(t, res.Valid)
		assert.Equal(t, `Expected age to be equal or higher than 18, but in fact "abc"`, res.Message())
		assert.Equal(t, constraint.KindConstraintViolation, res.Violation.Kind)

		res = constraint.ValidateMinimum("abc", "balance", -1, constraint.Permissive)
		assert.True(t, res.Valid, "zero satisfies a negative bound")
	})

	t.Run("strict reports type mismatch for non-numeric string", func(t *testing.T) {
		res := constraint.ValidateMinimum("abc", "age", 18, constraint.Strict)
		require.False(t, res.Valid)
		assert.Equal(t, constraint.KindTypeMismatch, res.Violation.Kind)
		assert.Equal(t, `Expected age to be a number, but in fact "abc"`, res.Message())
		assert.ErrorIs(t, res.Err(), validator.ErrTypeMismatch)
		assert.NotErrorIs(t, res.Err(), validator.ErrConstraintViolation)

		res = constraint.ValidateMinimum("abc", "balance", -1, constraint.Strict)
		assert.False(t, res.Valid, "strict never treats garbage as zero")
	})

	t.Run("numeric strings compare by value and render quoted", func(t *testing.T) {
		for _, policy := range []constraint.Policy{constraint.Permissive, constraint.Strict} {
			assert.True(t, constraint.ValidateMinimum("18", "age", 18, policy).Valid)
			res := constraint.ValidateMinimum(" 17 ", "age", 18, policy)
			require.False(t, res.Valid)
			assert.Equal(t, `Expected age to be equal or higher than 18, but in fact " 17 "`, res.Message())
		}
	})

	t.Run("json numbers", func(t *testing.T) {
		res := constraint.ValidateMinimum(json.Number("17.5"), "age", 18, constraint.Strict)
		require.False(t, res.Valid)
		assert.Equal(t, "Expected age to be equal or higher than 18, but in fact 17.5", res.Message())
	})

	t.Run("booleans", func(t *testing.T) {
		assert.True(t, constraint.ValidateMinimum(true, "flag", 1, constraint.Permissive).Valid)
		assert.False(t, constraint.ValidateMinimum(false, "flag", 1, constraint.Permissive).Valid)

		res := constraint.ValidateMinimum(true, "flag", 1, constraint.Strict)
		require.False(t, res.Valid)
		assert.Equal(t, constraint.KindTypeMismatch, res.Violation.Kind)
	})

	t.Run("large bounds render without exponent", func(t *testing.T) {
		res := constraint.ValidateMinimum(999999, "amount", 1000000, constraint.Permissive)
		require.False(t, res.Valid)
		assert.Equal(t, "Expected amount to be equal or higher than 1000000, but in fact 999999", res.Message())
	})

	t.Run("fractional bound", func(t *testing.T) {
		res := constraint.ValidateMinimum(0.25, "ratio", 0.5, constraint.Permissive)
		require.False(t, res.Valid)
		assert.Equal(t, "Expected ratio to be equal or higher than 0.5, but in fact 0.25", res.Message())
	})
}

func TestValidateMinimum_NonFiniteStrings(t *testing.T) {
	t.Parallel()

	for _, in := range []string{"Inf", "+Inf", "Infinity", "NaN"} {
		t.Run(in, func(t *testing.T) {
			t.Parallel()

			res := constraint.ValidateMinimum(in, "age", 18, constraint.Permissive)
			require.False(t, res.Valid)
			assert.Equal(t, constraint.KindConstraintViolation, res.Violation.Kind)
			assert.Equal(t, fmt.Sprintf("Expected age to be equal or higher than 18, but in fact %q", in), res.Message())

			res = constraint.ValidateMinimum(in, "age", 18, constraint.Strict)
			require.False(t, res.Valid)
			assert.Equal(t, constraint.KindTypeMismatch, res.Violation.Kind)
			assert.ErrorIs(t, res.Err(), validator.ErrTypeMismatch)
		})
	}

	res := constraint.ValidateMinimum(math.Inf(1), "age", 18, constraint.Strict)
	require.False(t, res.Valid)
	assert.Equal(t, constraint.KindTypeMismatch, res.Violation.Kind)
}

func TestValidateMinimum_LeadingNumber(t *testing.T) {
	t.Parallel()

	assert.True(t, constraint.ValidateMinimum("20abc", "age", 18, constraint.Permissive).Valid)
	assert.True(t, constraint.ValidateMinimum("18 years", "age", 18, constraint.Permissive).Valid)

	res := constraint.ValidateMinimum("17.5kg", "weight", 18, constraint.Permissive)
	require.False(t, res.Valid)
	assert.Equal(t, `Expected weight to be equal or higher than 18, but in fact "17.5kg"`, res.Message())

	res = constraint.ValidateMinimum("20abc", "age", 18, constraint.Strict)
	require.False(t, res.Valid)
	assert.Equal(t, constraint.KindTypeMismatch, res.Violation.Kind)
}

func TestValidateMinimum_PassDoesNotAllocate(t *testing.T) {
	allocs := testing.AllocsPerRun(100, func() {
		_ = constraint.ValidateMinimum(20.0, "age", 18, constraint.Permissive)
	})
	assert.LessOrEqual(t, allocs, 1.0)
}

func BenchmarkValidateMinimum(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = constraint.ValidateMinimum(20.0, "age", 18, constraint.Permissive)
	}
}

func TestValidateMinimum_Properties(t *testing.T) {
	t.Parallel()

	bounds := []float64{-100, -1.5, 0, 0.1, 18, 1e6}
	offsets := []float64{0, 0.001, 1, 250}

	for _, c := range bounds {
		t.Run(fmt.Sprintf("absent always passes for %v", c), func(t *testing.T) {
			for _, policy := range []constraint.Policy{constraint.Permissive, constraint.Strict} {
				assert.True(t, constraint.ValidateMinimum(nil, "k", c, policy).Valid)
			}
		})

		for _, d := range offsets {
			above := c + d
			assert.True(t, constraint.ValidateMinimum(above, "k", c, constraint.Permissive).Valid,
				"%v >= %v must pass", above, c)

			if d == 0 {
				continue
			}
			below := c - d
			res := constraint.ValidateMinimum(below, "k", c, constraint.Permissive)
			require.False(t, res.Valid, "%v < %v must fail", below, c)
			assert.Contains(t, res.Message(), validator.FormatNumber(c))
			assert.Contains(t, res.Message(), constraint.Inspect(below))
		}
	}
}

func TestValidateMinimum_Idempotent(t *testing.T) {
	t.Parallel()

	inputs := []any{nil, 17.9, 18, "abc", "19", []int{1}}
	for _, in := range inputs {
		first := constraint.ValidateMinimum(in, "age", 18, constraint.Permissive)
		for range 5 {
			again := constraint.ValidateMinimum(in, "age", 18, constraint.Permissive)
			assert.Equal(t, first.Valid, again.Valid)
			assert.Equal(t, first.Message(), again.Message())
		}
	}
}

func TestNewMinimum(t *testing.T) {
	t.Parallel()

	t.Run("builds validator", func(t *testing.T) {
		m, err := constraint.NewMinimum("age", 18)
		require.NoError(t, err)
		assert.Equal(t, constraint.NameMinimum, m.Name())
		assert.Equal(t, "age", m.Key())
		assert.Equal(t, 18.0, m.Constraint())
		assert.Equal(t, constraint.Permissive, m.Policy())

		assert.True(t, m.Validate(18).Valid)
		assert.True(t, m.Validate(nil).Valid)
		assert.Equal(t, "Expected age to be equal or higher than 18, but in fact 17.9", m.Validate(17.9).Message())
	})

	t.Run("applies coercion option", func(t *testing.T) {
		m, err := constraint.NewMinimum("age", 18, constraint.WithCoercion(constraint.Strict))
		require.NoError(t, err)
		assert.Equal(t, constraint.Strict, m.Policy())
		assert.Equal(t, constraint.KindTypeMismatch, m.Validate("abc").Violation.Kind)
	})

	t.Run("rejects empty key", func(t *testing.T) {
		_, err := constraint.NewMinimum("", 18)
		assert.ErrorIs(t, err, constraint.ErrEmptyKey)
	})

	t.Run("rejects non-finite constraint", func(t *testing.T) {
		_, err := constraint.NewMinimum("age", math.NaN())
		assert.ErrorIs(t, err, constraint.ErrInvalidConstraint)

		_, err = constraint.NewMinimum("age", math.Inf(-1))
		assert.ErrorIs(t, err, constraint.ErrInvalidConstraint)
	})
}
