package repository

import (
	"ticket-purchase/pkg/database"

	"go.uber.org/zap"
)

type Repository struct {
	Payment         PaymentRepository
	SeatReservation SeatReservationRepository
}

func NewRepository(db database.PgxIface, log *zap.Logger) *Repository {
	return &Repository{
		Payment:         NewPaymentRepository(db, log),
		SeatReservation: NewSeatReservationRepository(db, log),
	}
}
