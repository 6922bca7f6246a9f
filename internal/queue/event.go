// Package queue carries seat reservation requests to the seat booking service
// over RabbitMQ.
package queue

import "time"

// SeatReservationRequested is published once per accepted purchase.
type SeatReservationRequested struct {
	AccountID           int64  `json:"account_id"`
	TotalSeatsToReserve int64  `json:"total_seats_to_reserve"`
	RequestedAt         string `json:"requested_at"`
}

func newSeatReservationRequested(accountID, totalSeats int64, now time.Time) SeatReservationRequested {
	return SeatReservationRequested{
		AccountID:           accountID,
		TotalSeatsToReserve: totalSeats,
		RequestedAt:         now.UTC().Format(time.RFC3339),
	}
}
