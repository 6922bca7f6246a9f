package request

type TicketLineRequest struct {
	Type     string `json:"type" validate:"required,oneof=INFANT CHILD ADULT"`
	Quantity int    `json:"quantity" validate:"gte=0,lte=25"`
}

// PurchaseTicketsRequest only checks shape; purchase rules live in the ticket service.
type PurchaseTicketsRequest struct {
	Tickets []TicketLineRequest `json:"tickets" validate:"dive"`
}
