package usecase

import (
	"go.uber.org/zap"
)

type Service struct {
	Ticket TicketService
}

func NewService(payment PaymentGateway, seats SeatReservation, log *zap.Logger) *Service {
	return &Service{
		Ticket: NewTicketService(payment, seats, log),
	}
}
