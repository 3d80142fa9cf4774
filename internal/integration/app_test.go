package integration_test

import (
	"log/slog"
	"os"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/metinatakli/cinema-tickets/internal/app"
	"github.com/metinatakli/cinema-tickets/internal/domain"
	"github.com/metinatakli/cinema-tickets/internal/payment"
	"github.com/metinatakli/cinema-tickets/internal/repository"
	"github.com/metinatakli/cinema-tickets/internal/service"
	appvalidator "github.com/metinatakli/cinema-tickets/internal/validator"
	"github.com/redis/go-redis/v9"
)

type TestApp struct {
	App                 *app.Application
	DB                  *pgxpool.Pool
	RedisClient         *redis.Client
	SeatReservationRepo domain.SeatReservationRepository
}

func newTestApp(cfg app.Config) (*TestApp, error) {
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	db, err := app.NewDatabasePool(cfg)
	if err != nil {
		return nil, err
	}

	redisClient, err := app.NewRedisClient(cfg)
	if err != nil {
		db.Close()
		return nil, err
	}

	var seatReservationRepo domain.SeatReservationRepository

	switch cfg.SeatStore {
	case app.SeatStoreRedis:
		seatReservationRepo = repository.NewRedisSeatReservationRepository(redisClient)
	default:
		seatReservationRepo = repository.NewPostgresSeatReservationRepository(db)
	}

	ticketService, err := service.NewTicketService(logger, payment.NewMockPaymentService(logger), seatReservationRepo)
	if err != nil {
		db.Close()
		redisClient.Close()
		return nil, err
	}

	application := app.NewApp(
		cfg,
		logger,
		appvalidator.NewValidator(),
		ticketService,
		seatReservationRepo,
	)

	return &TestApp{
		App:                 application,
		DB:                  db,
		RedisClient:         redisClient,
		SeatReservationRepo: seatReservationRepo,
	}, nil
}

func (a *TestApp) Close() {
	a.DB.Close()
	a.RedisClient.Close()
}
