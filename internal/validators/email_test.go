package validators_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/velvetnails/salon-scheduler/internal/validators"
)

func TestEmailDeliverable(t *testing.T) {
	t.Run("rejects malformed addresses before any lookup", func(t *testing.T) {
		for _, email := range []string{
			"",
			"no-at-sign",
			"@no-local-part.com",
			"trailing-at@",
			"spaces in@example.com",
		} {
			assert.False(t, validators.EmailDeliverable(email), email)
		}
	})

	t.Run("accepts a host that resolves without MX", func(t *testing.T) {
		// localhost resolves through the hosts file, no DNS needed.
		assert.True(t, validators.EmailDeliverable("ana@localhost"))
	})

	t.Run("rejects a domain that resolves nowhere", func(t *testing.T) {
		assert.False(t, validators.EmailDeliverable("ana@invalid.invalid"))
	})
}
