package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidator(t *testing.T) {
	v := New()
	assert.True(t, v.Valid())

	v.Check(true, "isbn", "must be provided")
	assert.True(t, v.Valid())

	v.Check(false, "email", "must be provided")
	v.Check(false, "email", "must be unique")
	assert.False(t, v.Valid())
	assert.Equal(t, map[string]string{"email": "must be provided"}, v.Errors)
}

