package adaptor

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"ticket-purchase/internal/data/entity"
	"ticket-purchase/internal/dto/request"
	"ticket-purchase/internal/usecase"
	"ticket-purchase/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type TicketHandler struct {
	service usecase.TicketService
	log     *zap.Logger
}

func NewTicketHandler(service usecase.TicketService, log *zap.Logger) *TicketHandler {
	return &TicketHandler{
		service: service,
		log:     log.With(zap.String("handler", "ticket")),
	}
}

// PurchaseTickets handles POST /api/accounts/{accountID}/tickets
func (h *TicketHandler) PurchaseTickets(w http.ResponseWriter, r *http.Request) {
	accountID, err := strconv.ParseInt(chi.URLParam(r, "accountID"), 10, 64)
	if err != nil {
		utils.ResponseBadRequest(w, "Account ID must be an integer", nil)
		return
	}

	var req request.PurchaseTicketsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	requests, err := toTicketTypeRequests(req.Tickets)
	if err != nil {
		utils.ResponseBadRequest(w, err.Error(), nil)
		return
	}

	if err := h.service.PurchaseTickets(r.Context(), accountID, requests); err != nil {
		h.handleServiceError(w, err, "purchase tickets")
		return
	}

	utils.ResponseSuccess(w, "success", nil)
}

func toTicketTypeRequests(lines []request.TicketLineRequest) ([]entity.TicketTypeRequest, error) {
	requests := make([]entity.TicketTypeRequest, 0, len(lines))
	for _, line := range lines {
		req, err := entity.NewTicketTypeRequest(entity.TicketCategory(line.Type), line.Quantity)
		if err != nil {
			return nil, err
		}
		requests = append(requests, req)
	}
	return requests, nil
}

// handleServiceError maps ticket service errors to HTTP responses
func (h *TicketHandler) handleServiceError(w http.ResponseWriter, err error, operation string) {
	var purchaseErr *usecase.InvalidPurchaseError

	switch {
	case errors.Is(err, usecase.ErrInvalidAccount):
		h.log.Warn("Invalid input for "+operation,
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseBadRequest(w, err.Error(), nil)

	case errors.As(err, &purchaseErr):
		h.log.Warn(operation+" rejected",
			zap.Error(err),
			zap.String("operation", operation),
			zap.String("reason", string(purchaseErr.Reason)))
		utils.ResponseUnprocessableEntity(w, purchaseErr.Message, map[string]string{
			"reason": string(purchaseErr.Reason),
		})

	default:
		h.log.Error("Failed to "+operation,
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseInternalError(w, "Internal server error")
	}
}
