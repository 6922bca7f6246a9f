package wire

import (
	"ticket-purchase/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireTicket(r chi.Router, ticketHandler *adaptor.TicketHandler) {
	// POST /api/accounts/{accountID}/tickets - Purchase a batch of tickets
	r.Post("/api/accounts/{accountID}/tickets", ticketHandler.PurchaseTickets)
}
