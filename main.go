// main.go
package main

import (
	"context"
	"log"
	"time"

	"ticket-purchase/cmd"
	"ticket-purchase/internal/data/repository"
	"ticket-purchase/internal/metrics"
	"ticket-purchase/internal/queue"
	"ticket-purchase/internal/wire"
	"ticket-purchase/pkg/database"
	"ticket-purchase/pkg/utils"

	"github.com/prometheus/client_golang/prometheus"
	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

func main() {
	// Load config
	config, err := utils.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize logger
	logger, err := utils.InitLogger(config.App.LogPath, config.App.Debug)
	if err != nil {
		log.Printf("Failed to init logger: %v. Using standard log.", err)
		logger, _ = zap.NewProduction()
	}
	defer logger.Sync()

	logger.Info("Starting application",
		zap.String("app", config.App.Name),
		zap.String("port", config.App.Port),
		zap.Bool("debug", config.App.Debug),
		zap.String("seat_reservation_driver", config.Reservation.Driver),
	)

	// Connect to database
	db, err := database.InitDB(context.Background(), config.Database)
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	logger.Info("Database connected successfully")

	if config.Database.Migrate {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		err := database.Migrate(ctx, db)
		cancel()
		if err != nil {
			logger.Fatal("Failed to migrate database", zap.Error(err))
		}
	}

	// Connect to broker only when seat reservations go through it
	var publisher *queue.SeatReservationPublisher
	if config.Reservation.Driver == utils.SeatReservationDriverAMQP {
		conn, err := amqp.Dial(config.Broker.URL)
		if err != nil {
			logger.Fatal("Failed to connect to broker", zap.Error(err))
		}
		defer conn.Close()

		publisher = queue.NewSeatReservationPublisher(queue.ConnectionOpener(conn), config.Reservation.Queue, logger)
		logger.Info("Broker connected successfully")
	}

	metrics.Register(prometheus.DefaultRegisterer)

	repos := repository.NewRepository(db, logger)

	app := wire.Wiring(repos, publisher, prometheus.DefaultGatherer, config, logger)

	logger.Info("Starting HTTP server", zap.String("port", config.App.Port))

	cmd.APIServer(app.Router, config.App.Port)
}
