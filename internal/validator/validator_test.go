package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidator(t *testing.T) {
	v := New()
	assert.True(t, v.Valid())

	v.Check(true, "rental_days", "must be greater than 0")
	assert.True(t, v.Valid())

	v.Check(false, "rental_days", "must be greater than 0")
	v.AddError("rental_days", "second message is ignored")
	assert.False(t, v.Valid())
	assert.Equal(t, map[string]string{"rental_days": "must be greater than 0"}, v.Errors)
}

func TestNotBlank(t *testing.T) {
	assert.True(t, NotBlank("LADW"))
	assert.False(t, NotBlank(""))
	assert.False(t, NotBlank(" \t"))
}

func TestBetween(t *testing.T) {
	assert.True(t, Between(0, 0, 100))
	assert.True(t, Between(100, 0, 100))
	assert.False(t, Between(101, 0, 100))
	assert.False(t, Between(-1, 0, 100))
}

func TestMatches_Digits(t *testing.T) {
	for _, s := range []string{"0", "5", "007", "36500"} {
		assert.True(t, Matches(s, DigitsRX), s)
	}
	for _, s := range []string{"", "+5", "-5", " 5", "5 ", "1e3", "10%"} {
		assert.False(t, Matches(s, DigitsRX), s)
	}
}
