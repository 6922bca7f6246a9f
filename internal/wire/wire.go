package wire

import (
	"net/http"

	"ticket-purchase/internal/adaptor"
	"ticket-purchase/internal/data/repository"
	"ticket-purchase/internal/queue"
	"ticket-purchase/internal/usecase"
	"ticket-purchase/pkg/middleware"
	"ticket-purchase/pkg/utils"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

// App holds the wired HTTP router
type App struct {
	Router *chi.Mux
}

// Wiring builds services and handlers. publisher is only used when seat
// reservations go through the broker and may be nil otherwise.
func Wiring(
	repo *repository.Repository,
	publisher *queue.SeatReservationPublisher,
	gatherer prometheus.Gatherer,
	config *utils.Config,
	logger *zap.Logger,
) *App {
	payment := usecase.NewLedgerPaymentGateway(repo.Payment, logger)
	seats := newSeatReservation(repo, publisher, config, logger)

	service := usecase.NewService(payment, seats, logger)
	handler := adaptor.NewHandler(service, logger)

	router := setupRouter(handler, gatherer, logger)

	return &App{
		Router: router,
	}
}

func newSeatReservation(
	repo *repository.Repository,
	publisher *queue.SeatReservationPublisher,
	config *utils.Config,
	logger *zap.Logger,
) usecase.SeatReservation {
	if config.Reservation.Driver == utils.SeatReservationDriverAMQP && publisher != nil {
		logger.Info("Seat reservations published to broker", zap.String("queue", config.Reservation.Queue))
		return publisher
	}

	logger.Info("Seat reservations recorded in database")
	return usecase.NewLedgerSeatReservation(repo.SeatReservation, logger)
}

func setupRouter(handler *adaptor.Handler, gatherer prometheus.Gatherer, logger *zap.Logger) *chi.Mux {
	r := chi.NewRouter()

	// Apply global middleware
	r.Use(chimiddleware.RequestID)
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Recover(logger))

	wireTicket(r, handler.Ticket)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))

	return r
}
