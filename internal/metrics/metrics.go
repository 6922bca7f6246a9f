package metrics

import "github.com/prometheus/client_golang/prometheus"

// Purchase results used as the "result" label.
const (
	ResultAccepted          = "accepted"
	ResultInvalidAccount    = "invalid_account"
	ResultTooManyTickets    = "too_many_tickets"
	ResultNoAdult           = "no_adult"
	ResultPaymentFailed     = "payment_failed"
	ResultReservationFailed = "reservation_failed"
)

var (
	TicketPurchases = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ticket_purchases_total",
			Help: "Number of ticket purchase attempts by result",
		},
		[]string{"result"},
	)

	TicketsSold = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "tickets_sold_total",
			Help: "Number of tickets sold by category",
		},
		[]string{"category"},
	)

	PurchaseAmount = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "ticket_purchase_amount",
			Help:    "Amount charged per accepted purchase",
			Buckets: []float64{0, 25, 50, 100, 200, 400, 625},
		},
	)
)

func Register(registerer prometheus.Registerer) {
	registerer.MustRegister(TicketPurchases, TicketsSold, PurchaseAmount)
}
