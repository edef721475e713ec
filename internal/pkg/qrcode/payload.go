// Package qrcode encodes the text payload embedded in a voucher QR image.
// Rendering the image itself is an external concern; this package only owns
// the wire format scanned back at a terminal.
package qrcode

import (
	"errors"
	"strings"

	"github.com/google/uuid"
)

// Payload format: VOC|{voucherID}|{code}|{stayID}. The leading tag doubles
// as the version discriminator; unknown tags are rejected outright.
const (
	payloadTag    = "VOC"
	payloadFields = 4
)

var (
	ErrMalformedPayload = errors.New("malformed qr payload")
	ErrUnknownTag       = errors.New("unknown qr payload tag")
)

type Payload struct {
	VoucherID uuid.UUID
	Code      string
	StayID    uuid.UUID
}

func Encode(p Payload) string {
	return strings.Join([]string{payloadTag, p.VoucherID.String(), p.Code, p.StayID.String()}, "|")
}

// Decode parses a scanned payload. Anything that does not carry exactly the
// expected tag and field count is rejected; there is no best-effort parse.
func Decode(raw string) (Payload, error) {
	parts := strings.Split(raw, "|")
	if len(parts) != payloadFields {
		return Payload{}, ErrMalformedPayload
	}
	if parts[0] != payloadTag {
		return Payload{}, ErrUnknownTag
	}

	voucherID, err := uuid.Parse(parts[1])
	if err != nil {
		return Payload{}, ErrMalformedPayload
	}
	stayID, err := uuid.Parse(parts[3])
	if err != nil {
		return Payload{}, ErrMalformedPayload
	}
	if parts[2] == "" {
		return Payload{}, ErrMalformedPayload
	}

	return Payload{VoucherID: voucherID, Code: parts[2], StayID: stayID}, nil
}
