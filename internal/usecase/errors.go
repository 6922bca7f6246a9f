package usecase

import "errors"

var (
	// ErrInvalidAccount means the caller passed an account ID that can never be valid.
	ErrInvalidAccount = errors.New("invalid account ID")

	// ErrPurchaseRejected matches every *InvalidPurchaseError via errors.Is.
	ErrPurchaseRejected = errors.New("purchase rejected")
)

type RejectionReason string

const (
	ReasonTooManyTickets RejectionReason = "TOO_MANY_TICKETS"
	ReasonNoAdult        RejectionReason = "NO_ADULT"
)

// InvalidPurchaseError is returned when a purchase breaks a ticketing rule.
type InvalidPurchaseError struct {
	Reason  RejectionReason
	Message string
}

func (e *InvalidPurchaseError) Error() string {
	return e.Message
}

func (e *InvalidPurchaseError) Is(target error) bool {
	return target == ErrPurchaseRejected
}
