package voucher

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
)

var ErrMalformedCode = errors.New("malformed voucher code")

var codePattern = regexp.MustCompile(`^([A-Z0-9]{2,8})-(\d{4})-(\d+)$`)

// CodeGenerator formats human-readable voucher codes. Sequence numbers come
// from the persistence layer's per-year counter, so uniqueness is the
// caller's transaction boundary, not this type's concern.
type CodeGenerator struct {
	hotelCode string
	width     int
}

func NewCodeGenerator(hotelCode string, width int) *CodeGenerator {
	if width <= 0 {
		width = 4
	}
	return &CodeGenerator{hotelCode: hotelCode, width: width}
}

// Format renders {HOTEL_CODE}-{year}-{seq}, e.g. HPN-2025-0001.
func (g *CodeGenerator) Format(year int, seq int64) string {
	return fmt.Sprintf("%s-%d-%0*d", g.hotelCode, year, g.width, seq)
}

func (g *CodeGenerator) HotelCode() string { return g.hotelCode }

// ParseCode splits a code into its components, rejecting anything that does
// not match the issued format.
func ParseCode(code string) (hotel string, year int, seq int64, err error) {
	m := codePattern.FindStringSubmatch(code)
	if m == nil {
		return "", 0, 0, ErrMalformedCode
	}
	year, err = strconv.Atoi(m[2])
	if err != nil {
		return "", 0, 0, ErrMalformedCode
	}
	seq, err = strconv.ParseInt(m[3], 10, 64)
	if err != nil {
		return "", 0, 0, ErrMalformedCode
	}
	return m[1], year, seq, nil
}
