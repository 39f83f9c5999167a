package command

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"atelier-storefront/pkg/apierror"
)

func TestCheckInput(t *testing.T) {
	t.Run("accepts well-formed credentials", func(t *testing.T) {
		err := checkInput(credentialsInput{Email: "ana@example.com", Password: "hunter2pass"})

		assert.NoError(t, err)
	})

	t.Run("rejects a malformed email with a field-scoped error", func(t *testing.T) {
		err := checkInput(credentialsInput{Email: "not-an-email", Password: "hunter2pass"})

		require.Error(t, err)
		apiErr, ok := apierror.AsAPIError(err)
		require.True(t, ok)
		assert.Equal(t, apierror.CodeValidation, apiErr.Code)
		assert.Equal(t, "email", apiErr.Field)
	})

	t.Run("rejects a short password before any network call would happen", func(t *testing.T) {
		err := checkInput(credentialsInput{Email: "ana@example.com", Password: "short"})

		require.Error(t, err)
		apiErr, ok := apierror.AsAPIError(err)
		require.True(t, ok)
		assert.Equal(t, "password", apiErr.Field)
		assert.Contains(t, apiErr.Message, "at least 8")
	})

	t.Run("reports missing required fields", func(t *testing.T) {
		err := checkInput(emailInput{})

		require.Error(t, err)
		apiErr, _ := apierror.AsAPIError(err)
		require.NotNil(t, apiErr)
		assert.Equal(t, "email", apiErr.Field)
		assert.Equal(t, "is required", apiErr.Message)
	})
}
