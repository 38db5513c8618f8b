package billing

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBillingError(t *testing.T) {
	t.Run("matches sentinel with errors.Is", func(t *testing.T) {
		err := NewBillingError("E00027", "The transaction was unsuccessful.")
		assert.True(t, errors.Is(err, ErrGatewayDeclined))
		assert.True(t, IsBillingError(err))
	})

	t.Run("matches sentinel through wrapping", func(t *testing.T) {
		err := fmt.Errorf("create profile: %w", NewBillingError("E00027", "declined"))
		assert.True(t, IsBillingError(err))
	})

	t.Run("carries code and message", func(t *testing.T) {
		err := NewBillingError("E00027", "declined")
		assert.Contains(t, err.Error(), "E00027")
		assert.Contains(t, err.Error(), "declined")
	})

	t.Run("other errors are not billing errors", func(t *testing.T) {
		assert.False(t, IsBillingError(errors.New("db down")))
	})
}
