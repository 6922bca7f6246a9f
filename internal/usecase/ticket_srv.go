package usecase

import (
	"context"
	"fmt"

	"ticket-purchase/internal/data/entity"
	"ticket-purchase/internal/metrics"

	"go.uber.org/zap"
)

const maxTicketsPerPurchase = 25

var ticketPrices = map[entity.TicketCategory]int64{
	entity.TicketCategoryInfant: 0,
	entity.TicketCategoryChild:  15,
	entity.TicketCategoryAdult:  25,
}

type TicketService interface {
	// PurchaseTickets validates and prices the batch, then takes the payment
	// and reserves the seats. Nothing is sent downstream unless every rule passes.
	PurchaseTickets(ctx context.Context, accountID int64, requests []entity.TicketTypeRequest) error
}

type ticketService struct {
	payment PaymentGateway
	seats   SeatReservation
	log     *zap.Logger
}

func NewTicketService(payment PaymentGateway, seats SeatReservation, log *zap.Logger) TicketService {
	return &ticketService{
		payment: payment,
		seats:   seats,
		log:     log.With(zap.String("service", "ticket")),
	}
}

func (s *ticketService) PurchaseTickets(ctx context.Context, accountID int64, requests []entity.TicketTypeRequest) error {
	// Account ID is checked before anything about the tickets
	if accountID <= 0 {
		s.log.Warn("Purchase rejected - invalid account", zap.Int64("account_id", accountID))
		metrics.TicketPurchases.WithLabelValues(metrics.ResultInvalidAccount).Inc()
		return fmt.Errorf("%w: %d", ErrInvalidAccount, accountID)
	}

	totalTickets, withinCap := countTickets(requests)
	if !withinCap {
		return s.reject(accountID, len(requests), &InvalidPurchaseError{
			Reason:  ReasonTooManyTickets,
			Message: fmt.Sprintf("total number of tickets must not exceed %d", maxTicketsPerPurchase),
		})
	}

	if !hasAdultTicket(requests) {
		return s.reject(accountID, len(requests), &InvalidPurchaseError{
			Reason:  ReasonNoAdult,
			Message: "adult ticket must be purchased",
		})
	}

	outcome := calculateOutcome(requests)

	if err := s.payment.MakePayment(ctx, accountID, outcome.TotalAmountToPay); err != nil {
		s.log.Error("Failed to make payment",
			zap.Error(err),
			zap.Int64("account_id", accountID),
			zap.Int64("amount", outcome.TotalAmountToPay),
		)
		metrics.TicketPurchases.WithLabelValues(metrics.ResultPaymentFailed).Inc()
		return fmt.Errorf("make payment for account %d: %w", accountID, err)
	}

	// The payment above is not refunded if the reservation fails.
	if err := s.seats.ReserveSeat(ctx, accountID, outcome.TotalSeatsToReserve); err != nil {
		s.log.Error("Failed to reserve seats after payment was taken",
			zap.Error(err),
			zap.Int64("account_id", accountID),
			zap.Int64("amount", outcome.TotalAmountToPay),
			zap.Int64("seats", outcome.TotalSeatsToReserve),
		)
		metrics.TicketPurchases.WithLabelValues(metrics.ResultReservationFailed).Inc()
		return fmt.Errorf("reserve seats for account %d: %w", accountID, err)
	}

	metrics.TicketPurchases.WithLabelValues(metrics.ResultAccepted).Inc()
	metrics.PurchaseAmount.Observe(float64(outcome.TotalAmountToPay))
	for _, req := range requests {
		metrics.TicketsSold.WithLabelValues(string(req.Type())).Add(float64(req.NoOfTickets()))
	}

	s.log.Info("Tickets purchased",
		zap.Int64("account_id", accountID),
		zap.Int("ticket_count", totalTickets),
		zap.Int64("amount", outcome.TotalAmountToPay),
		zap.Int64("seats", outcome.TotalSeatsToReserve),
	)

	return nil
}

// ==================== HELPER METHODS ====================

func (s *ticketService) reject(accountID int64, lineCount int, err *InvalidPurchaseError) error {
	s.log.Warn("Purchase rejected",
		zap.Int64("account_id", accountID),
		zap.Int("line_count", lineCount),
		zap.String("reason", string(err.Reason)),
	)

	switch err.Reason {
	case ReasonTooManyTickets:
		metrics.TicketPurchases.WithLabelValues(metrics.ResultTooManyTickets).Inc()
	case ReasonNoAdult:
		metrics.TicketPurchases.WithLabelValues(metrics.ResultNoAdult).Inc()
	}

	return err
}

// countTickets sums the quantities and reports whether the sum stays within
// maxTicketsPerPurchase. It stops at the first line that would pass the cap,
// so the running total never exceeds it and cannot wrap.
func countTickets(requests []entity.TicketTypeRequest) (int, bool) {
	total := 0
	for _, req := range requests {
		if req.NoOfTickets() > maxTicketsPerPurchase-total {
			return total, false
		}
		total += req.NoOfTickets()
	}
	return total, true
}

// hasAdultTicket needs an ADULT line that actually carries tickets; an
// ADULT line with quantity zero adds nobody to accompany the others.
func hasAdultTicket(requests []entity.TicketTypeRequest) bool {
	for _, req := range requests {
		if req.Type() == entity.TicketCategoryAdult && req.NoOfTickets() > 0 {
			return true
		}
	}
	return false
}

func calculateOutcome(requests []entity.TicketTypeRequest) entity.PurchaseOutcome {
	var outcome entity.PurchaseOutcome
	for _, req := range requests {
		count := int64(req.NoOfTickets())
		outcome.TotalAmountToPay += ticketPrices[req.Type()] * count
		if req.Type().OccupiesSeat() {
			outcome.TotalSeatsToReserve += count
		}
	}
	return outcome
}
