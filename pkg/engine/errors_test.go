package engine

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorMessageCarriesContext(t *testing.T) {
	err := NewConfigurationError("required option missing", nil).
		WithOption("conda_channels").
		WithGenerator("conda_recipe")

	msg := err.Error()
	assert.Contains(t, msg, "configuration")
	assert.Contains(t, msg, "conda_channels")
	assert.Contains(t, msg, "conda_recipe")
}

func TestErrorUnwrap(t *testing.T) {
	cause := errors.New("undefined variable")
	err := NewTemplateRenderError("render failed", cause)

	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "undefined variable")
}

func TestErrorKindPredicates(t *testing.T) {
	tests := []struct {
		err   error
		check func(error) bool
	}{
		{NewConfigurationError("m", nil), IsConfiguration},
		{NewDuplicateRegistrationError("m"), IsDuplicateRegistration},
		{NewTemplateRenderError("m", nil), IsTemplateRender},
		{NewMarkerNotFoundError("m"), IsMarkerNotFound},
	}

	for _, tt := range tests {
		assert.True(t, tt.check(tt.err))
	}

	assert.False(t, IsConfiguration(errors.New("plain")))
	assert.False(t, IsMarkerNotFound(NewConfigurationError("m", nil)))
}

func TestErrorPredicatesSeeThroughWrapping(t *testing.T) {
	err := fmt.Errorf("generator readme: %w", NewMarkerNotFoundError("no shields block"))

	assert.True(t, IsMarkerNotFound(err))
}
