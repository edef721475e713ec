// Package signature binds a voucher's immutable fields to a keyed digest so
// that a scanned code can be checked for tampering without a database lookup.
package signature

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"strings"
	"time"

	"github.com/google/uuid"
)

// canonical date form used inside the signed tuple
const dateLayout = "2006-01-02"

type Signer struct {
	key []byte
}

func NewSigner(secret string) *Signer {
	return &Signer{key: []byte(secret)}
}

// Sign computes the hex HMAC-SHA256 digest of the canonical tuple
// code|validFrom|validUntil|stayID. Identical inputs under the same key
// always produce identical output.
func (s *Signer) Sign(code string, validFrom, validUntil time.Time, stayID uuid.UUID) string {
	mac := hmac.New(sha256.New, s.key)
	mac.Write([]byte(canonical(code, validFrom, validUntil, stayID)))
	return hex.EncodeToString(mac.Sum(nil))
}

// Verify recomputes the signature and compares it in constant time.
// Any malformed input (wrong length, non-hex) yields false, never an error.
func (s *Signer) Verify(code string, validFrom, validUntil time.Time, stayID uuid.UUID, sig string) bool {
	given, err := hex.DecodeString(sig)
	if err != nil {
		return false
	}

	mac := hmac.New(sha256.New, s.key)
	mac.Write([]byte(canonical(code, validFrom, validUntil, stayID)))

	return hmac.Equal(given, mac.Sum(nil))
}

func canonical(code string, validFrom, validUntil time.Time, stayID uuid.UUID) string {
	return strings.Join([]string{
		code,
		validFrom.Format(dateLayout),
		validUntil.Format(dateLayout),
		stayID.String(),
	}, "|")
}
