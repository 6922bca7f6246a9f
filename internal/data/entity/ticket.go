package entity

import (
	"errors"
	"fmt"
	"strings"
)

type TicketCategory string

const (
	TicketCategoryInfant TicketCategory = "INFANT"
	TicketCategoryChild  TicketCategory = "CHILD"
	TicketCategoryAdult  TicketCategory = "ADULT"
)

var (
	ErrUnknownTicketCategory = errors.New("unknown ticket category")
	ErrNegativeTicketCount   = errors.New("ticket count must not be negative")
)

// ParseTicketCategory accepts the category name in any letter case.
func ParseTicketCategory(value string) (TicketCategory, error) {
	category := TicketCategory(strings.ToUpper(strings.TrimSpace(value)))
	switch category {
	case TicketCategoryInfant, TicketCategoryChild, TicketCategoryAdult:
		return category, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownTicketCategory, value)
	}
}

// OccupiesSeat reports whether a ticket of this category needs its own seat.
// Infants sit on an adult's lap.
func (c TicketCategory) OccupiesSeat() bool {
	return c != TicketCategoryInfant
}

// TicketTypeRequest is one line item of a purchase: a category and how many
// tickets of it. Values are immutable once built.
type TicketTypeRequest struct {
	ticketType  TicketCategory
	noOfTickets int
}

func NewTicketTypeRequest(ticketType TicketCategory, noOfTickets int) (TicketTypeRequest, error) {
	category, err := ParseTicketCategory(string(ticketType))
	if err != nil {
		return TicketTypeRequest{}, err
	}
	if noOfTickets < 0 {
		return TicketTypeRequest{}, fmt.Errorf("%w: %d", ErrNegativeTicketCount, noOfTickets)
	}

	return TicketTypeRequest{
		ticketType:  category,
		noOfTickets: noOfTickets,
	}, nil
}

func (r TicketTypeRequest) Type() TicketCategory {
	return r.ticketType
}

func (r TicketTypeRequest) NoOfTickets() int {
	return r.noOfTickets
}

// PurchaseOutcome holds the totals handed to the payment and seat services.
type PurchaseOutcome struct {
	TotalAmountToPay    int64
	TotalSeatsToReserve int64
}
