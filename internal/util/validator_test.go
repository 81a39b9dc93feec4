package util

import (
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidatorUsesQueryNames(t *testing.T) {
	type req struct {
		Email string `query:"email" validate:"required"`
	}

	err := NewValidator().Struct(req{})
	require.Error(t, err)

	var ve validator.ValidationErrors
	require.ErrorAs(t, err, &ve)
	require.Len(t, ve, 1)
	assert.Equal(t, "email", ve[0].Field())
	assert.Equal(t, "required", ve[0].Tag())
}

func TestEndSentence(t *testing.T) {
	assert.Equal(t, "email is a required field.", EndSentence("email is a required field"))
	assert.Equal(t, "done.", EndSentence(" done. "))
	assert.Equal(t, "", EndSentence(""))
}
