package usecase

import (
	"context"
	"fmt"
	"time"

	"ticket-purchase/internal/data/entity"
	"ticket-purchase/internal/data/repository"
	"ticket-purchase/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// PaymentGateway takes money from an account.
type PaymentGateway interface {
	MakePayment(ctx context.Context, accountID int64, amountToPay int64) error
}

// SeatReservation holds seats for an account.
type SeatReservation interface {
	ReserveSeat(ctx context.Context, accountID int64, totalSeatsToReserve int64) error
}

// ==================== POSTGRES LEDGER ====================

type ledgerPaymentGateway struct {
	repo repository.PaymentRepository
	log  *zap.Logger
}

// NewLedgerPaymentGateway records every payment as a row in the payment ledger.
func NewLedgerPaymentGateway(repo repository.PaymentRepository, log *zap.Logger) PaymentGateway {
	return &ledgerPaymentGateway{
		repo: repo,
		log:  log.With(zap.String("gateway", "payment")),
	}
}

func (g *ledgerPaymentGateway) MakePayment(ctx context.Context, accountID int64, amountToPay int64) error {
	id := uuid.New()
	now := time.Now()

	payment := &entity.Payment{
		BaseSimple: entity.BaseSimple{
			ID:        id,
			CreatedAt: now,
		},
		AccountID:      accountID,
		Amount:         amountToPay,
		TransactionRef: utils.GenerateTransactionRef(id, now),
	}

	if err := g.repo.Create(ctx, payment); err != nil {
		return fmt.Errorf("record payment: %w", err)
	}

	g.log.Info("Payment recorded",
		zap.String("payment_id", payment.ID.String()),
		zap.String("transaction_ref", payment.TransactionRef),
		zap.Int64("account_id", accountID),
		zap.Int64("amount", amountToPay),
	)
	return nil
}

type ledgerSeatReservation struct {
	repo repository.SeatReservationRepository
	log  *zap.Logger
}

func NewLedgerSeatReservation(repo repository.SeatReservationRepository, log *zap.Logger) SeatReservation {
	return &ledgerSeatReservation{
		repo: repo,
		log:  log.With(zap.String("gateway", "seat_reservation")),
	}
}

func (g *ledgerSeatReservation) ReserveSeat(ctx context.Context, accountID int64, totalSeatsToReserve int64) error {
	reservation := &entity.SeatReservation{
		BaseSimple: entity.BaseSimple{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
		},
		AccountID:  accountID,
		TotalSeats: totalSeatsToReserve,
	}

	if err := g.repo.Create(ctx, reservation); err != nil {
		return fmt.Errorf("record seat reservation: %w", err)
	}

	g.log.Info("Seats reserved",
		zap.String("reservation_id", reservation.ID.String()),
		zap.Int64("account_id", accountID),
		zap.Int64("seats", totalSeatsToReserve),
	)
	return nil
}
