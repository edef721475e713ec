package voucher

import (
	"errors"
	"time"
)

var (
	ErrInvalidWindow    = errors.New("valid_from must be before valid_until")
	ErrWindowOutsideStay = errors.New("validity window must fall within the stay")
)

// ValidityWindow is the inclusive date range a voucher can be redeemed in.
// Both bounds are normalized to midnight UTC; a voucher stays redeemable
// through the whole valid_until day.
type ValidityWindow struct {
	from  time.Time
	until time.Time
}

func NewValidityWindow(from, until time.Time) (ValidityWindow, error) {
	f, u := DateOf(from), DateOf(until)
	if !f.Before(u) {
		return ValidityWindow{}, ErrInvalidWindow
	}
	return ValidityWindow{from: f, until: u}, nil
}

func ReconstructValidityWindow(from, until time.Time) ValidityWindow {
	return ValidityWindow{from: DateOf(from), until: DateOf(until)}
}

func (w ValidityWindow) From() time.Time  { return w.from }
func (w ValidityWindow) Until() time.Time { return w.until }

func (w ValidityWindow) Contains(now time.Time) bool {
	d := DateOf(now)
	return !d.Before(w.from) && !d.After(w.until)
}

func (w ValidityWindow) ExpiredAt(now time.Time) bool {
	return DateOf(now).After(w.until)
}

// WithinStay checks the emit precondition [from, until] ⊆ [checkIn, checkOut].
func (w ValidityWindow) WithinStay(checkIn, checkOut time.Time) error {
	if w.from.Before(DateOf(checkIn)) || w.until.After(DateOf(checkOut)) {
		return ErrWindowOutsideStay
	}
	return nil
}

// DateOf truncates a timestamp to its UTC calendar date.
func DateOf(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
