//go:build unit

package signature_test

import (
	"testing"
	"time"

	"hotel-voucher-api/internal/pkg/signature"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSigner(t *testing.T) {
	signer := signature.NewSigner("test-signing-secret")
	stayID := uuid.New()
	from := time.Date(2025, 1, 2, 0, 0, 0, 0, time.UTC)
	until := time.Date(2025, 1, 4, 0, 0, 0, 0, time.UTC)

	t.Run("round trip verifies", func(t *testing.T) {
		sig := signer.Sign("HPN-2025-0001", from, until, stayID)
		require.NotEmpty(t, sig)
		assert.True(t, signer.Verify("HPN-2025-0001", from, until, stayID, sig))
	})

	t.Run("deterministic for identical inputs", func(t *testing.T) {
		first := signer.Sign("HPN-2025-0001", from, until, stayID)
		second := signer.Sign("HPN-2025-0001", from, until, stayID)
		assert.Equal(t, first, second)
	})

	t.Run("any single field mutation breaks verification", func(t *testing.T) {
		sig := signer.Sign("HPN-2025-0001", from, until, stayID)

		cases := []struct {
			name  string
			check func() bool
		}{
			{"mutated code", func() bool {
				return signer.Verify("HPN-2025-0002", from, until, stayID, sig)
			}},
			{"mutated valid_from", func() bool {
				return signer.Verify("HPN-2025-0001", from.AddDate(0, 0, 1), until, stayID, sig)
			}},
			{"mutated valid_until", func() bool {
				return signer.Verify("HPN-2025-0001", from, until.AddDate(0, 0, 1), stayID, sig)
			}},
			{"mutated stay id", func() bool {
				return signer.Verify("HPN-2025-0001", from, until, uuid.New(), sig)
			}},
		}
		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				assert.False(t, tc.check())
			})
		}
	})

	t.Run("malformed signature fails closed", func(t *testing.T) {
		assert.False(t, signer.Verify("HPN-2025-0001", from, until, stayID, ""))
		assert.False(t, signer.Verify("HPN-2025-0001", from, until, stayID, "zz-not-hex"))
		assert.False(t, signer.Verify("HPN-2025-0001", from, until, stayID, "deadbeef"))
	})

	t.Run("different keys disagree", func(t *testing.T) {
		other := signature.NewSigner("another-secret")
		sig := signer.Sign("HPN-2025-0001", from, until, stayID)
		assert.False(t, other.Verify("HPN-2025-0001", from, until, stayID, sig))
		assert.NotEqual(t, sig, other.Sign("HPN-2025-0001", from, until, stayID))
	})
}
