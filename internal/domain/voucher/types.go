package voucher

// Status is the persisted lifecycle state. Active is the only non-terminal
// state; redeemed and cancelled are terminal. Expired is never stored: it is
// derived at read time from the validity window (see EffectiveStatus).
type Status string

const (
	StatusActive    Status = "active"
	StatusRedeemed  Status = "redeemed"
	StatusCancelled Status = "cancelled"
	StatusExpired   Status = "expired"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusActive, StatusRedeemed, StatusCancelled, StatusExpired:
		return true
	default:
		return false
	}
}

func (s Status) IsTerminal() bool {
	return s == StatusRedeemed || s == StatusCancelled
}

// InvalidReason identifies why a voucher failed validation or redemption.
// The values travel over the API and in sync results, so they are stable.
type InvalidReason string

const (
	ReasonInvalidSignature InvalidReason = "INVALID_SIGNATURE"
	ReasonAlreadyRedeemed  InvalidReason = "ALREADY_REDEEMED"
	ReasonCancelled        InvalidReason = "CANCELLED"
	ReasonExpired          InvalidReason = "EXPIRED"
)

func (r InvalidReason) String() string {
	return string(r)
}
