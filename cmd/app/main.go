// @title Hotel Booking API
// @version 1.0
// @description Rooms, guests, bookings and invoices.
// @BasePath /
package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Domenick1991/hotelbooking/api"
	"github.com/Domenick1991/hotelbooking/config"
	"github.com/Domenick1991/hotelbooking/internal/bootstrap"
	"github.com/Domenick1991/hotelbooking/internal/cache"
	"github.com/Domenick1991/hotelbooking/internal/kafka"
	"github.com/Domenick1991/hotelbooking/internal/logging"
	"github.com/Domenick1991/hotelbooking/internal/password"
	"github.com/Domenick1991/hotelbooking/internal/repository"
	"github.com/Domenick1991/hotelbooking/internal/service/booking"
	"github.com/Domenick1991/hotelbooking/internal/service/invoice"
	"github.com/Domenick1991/hotelbooking/internal/service/room"
	"github.com/Domenick1991/hotelbooking/internal/service/user"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
)

func main() {
	cfg, err := config.LoadConfig(config.Path())
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := logging.New(cfg.Log, os.Stdout)
	slog.SetDefault(logger)
	gin.SetMode(gin.ReleaseMode)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	repos, closeStore := openStore(ctx, cfg.Database)
	defer closeStore()

	var roomOpts []room.RoomServiceOption
	if cfg.Redis.Addr != "" {
		redisCache := cache.NewRedisCache(cfg.Redis)
		defer redisCache.Close()
		if err := redisCache.Ping(ctx); err != nil {
			logger.Warn("redis unavailable, room cache disabled", "addr", cfg.Redis.Addr, "error", err)
		} else {
			roomOpts = append(roomOpts, room.WithCache(redisCache))
		}
	}

	var producer kafka.Publisher
	if len(cfg.Kafka.Brokers) > 0 {
		p := kafka.NewProducer(cfg.Kafka.Brokers)
		defer p.Close()
		checkCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
		if partitions, err := p.CheckConnection(checkCtx); err != nil {
			logger.Warn("kafka unavailable, events will fail to publish", "brokers", cfg.Kafka.Brokers, "error", err)
		} else {
			logger.Info("connected to kafka", "brokers", cfg.Kafka.Brokers, "partitions", partitions)
		}
		cancel()
		producer = p
	}

	roomService := room.NewRoomService(repos.Rooms, append(roomOpts, room.WithLogger(logger))...)
	userService := user.NewUserService(
		repos.Users,
		password.NewBcryptHasher(cfg.Password.BcryptCost),
		user.WithEvents(producer, cfg.Kafka.EventsTopic, cfg.Kafka.NotificationsTopic),
		user.WithLogger(logger),
	)
	bookingService := booking.NewBookingService(
		repos.Bookings,
		repos.Rooms,
		repos.Users,
		booking.WithEvents(producer, cfg.Kafka.EventsTopic, cfg.Kafka.NotificationsTopic),
		booking.WithLogger(logger),
	)
	invoiceService := invoice.NewInvoiceService(
		repos.Invoices,
		repos.Bookings,
		repos.Users,
		invoice.WithEvents(producer, cfg.Kafka.EventsTopic, cfg.Kafka.NotificationsTopic),
		invoice.WithLogger(logger),
	)

	router := api.NewRouter(cfg.HTTP, logger, api.Handlers{
		Rooms:    api.NewRoomHandler(roomService),
		Users:    api.NewUserHandler(userService),
		Bookings: api.NewBookingHandler(bookingService),
		Invoices: api.NewInvoiceHandler(invoiceService),
	})

	if err := bootstrap.Run(ctx, cfg.HTTP, router, logger); err != nil {
		log.Fatalf("server error: %v", err)
	}
}

func openStore(ctx context.Context, cfg config.DatabaseConfig) (repository.Repositories, func()) {
	if cfg.Driver == config.DriverMemory {
		slog.Info("using in-memory storage")
		return repository.NewMemoryRepositories(), func() {}
	}

	pool, err := pgxpool.New(ctx, cfg.DSN())
	if err != nil {
		log.Fatalf("connect postgres: %v", err)
	}
	if err := repository.EnsureSchema(ctx, pool); err != nil {
		pool.Close()
		log.Fatalf("ensure schema: %v", err)
	}
	return repository.NewPGRepositories(pool), pool.Close
}
