package app

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/exaring/otelpgx"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-playground/validator/v10"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/metinatakli/cinema-tickets/api"
	"github.com/metinatakli/cinema-tickets/internal/domain"
	"github.com/metinatakli/cinema-tickets/internal/payment"
	"github.com/metinatakli/cinema-tickets/internal/repository"
	"github.com/metinatakli/cinema-tickets/internal/service"
	appvalidator "github.com/metinatakli/cinema-tickets/internal/validator"
	"github.com/metinatakli/cinema-tickets/internal/vcs"
	"github.com/redis/go-redis/extra/redisotel/v9"
	"github.com/redis/go-redis/v9"
	"github.com/riandyrn/otelchi"
	"github.com/stripe/stripe-go/v82"
	"go.opentelemetry.io/contrib/bridges/otelslog"
)

const serviceName = "cinema-tickets-api"

const (
	SeatStorePostgres = "postgres"
	SeatStoreRedis    = "redis"
)

var (
	version = vcs.Version()
)

var _ api.ServerInterface = (*Application)(nil)

type Application struct {
	config    Config
	logger    *slog.Logger
	validator *validator.Validate

	ticketService       *service.TicketService
	seatReservationRepo domain.SeatReservationRepository
}

type Config struct {
	Port             int
	Env              string
	SeatStore        string
	OtelCollectorUrl string
	DB               DBConfig
	Redis            RedisConfig
	Stripe           StripeConfig
}

type DBConfig struct {
	DSN          string
	MaxOpenConns int
	MaxIdleTime  time.Duration
}

type RedisConfig struct {
	URL          string
	MaxOpenConns int
	MaxIdleConns int
	MaxIdleTime  time.Duration
}

type StripeConfig struct {
	SecretKey string
	Currency  string
}

func NewApp(
	cfg Config,
	logger *slog.Logger,
	validator *validator.Validate,
	ticketService *service.TicketService,
	seatReservationRepo domain.SeatReservationRepository) *Application {

	return &Application{
		config:              cfg,
		logger:              logger,
		validator:           validator,
		ticketService:       ticketService,
		seatReservationRepo: seatReservationRepo,
	}
}

func Run() error {
	var cfg Config

	flag.IntVar(&cfg.Port, "port", 3000, "server port")
	flag.StringVar(&cfg.Env, "env", "dev", "Environment (dev|staging|prod)")
	flag.StringVar(&cfg.SeatStore, "seat-store", SeatStorePostgres, "Seat reservation store (postgres|redis)")
	flag.StringVar(&cfg.OtelCollectorUrl, "otel-collector-url", "", "OpenTelemetry collector gRPC endpoint")

	flag.StringVar(&cfg.DB.DSN, "db-dsn", "", "PostgreSQL DSN")
	flag.IntVar(&cfg.DB.MaxOpenConns, "db-max-open-conns", 25, "PostgreSQL max open connections")
	flag.DurationVar(&cfg.DB.MaxIdleTime, "db-max-idle-time", 15*time.Minute, "PostgreSQL max idle time for connections")

	flag.StringVar(&cfg.Redis.URL, "redis-url", "", "Redis URL")
	flag.IntVar(&cfg.Redis.MaxOpenConns, "redis-max-open-conns", 25, "Redis max open connections")
	flag.IntVar(&cfg.Redis.MaxIdleConns, "redis-max-idle-conns", 10, "Redis max idle connections")
	flag.DurationVar(&cfg.Redis.MaxIdleTime, "redis-max-idle-time", 2*time.Minute, "Redis max idle time for connections")

	flag.StringVar(&cfg.Stripe.SecretKey, "stripe-key", "", "Stripe secret key, payments are mocked when empty")
	flag.StringVar(&cfg.Stripe.Currency, "stripe-currency", "gbp", "Currency of ticket prices")

	displayVersion := flag.Bool("version", false, "Display version and exit")

	flag.Parse()

	if *displayVersion {
		fmt.Printf("Version:\t%s\n", version)
		os.Exit(0)
	}

	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	shutdownTelemetry, err := InitTelemetry(cfg, logger)
	if err != nil {
		return err
	}
	defer shutdownTelemetry(context.Background())

	if cfg.OtelCollectorUrl != "" {
		logger = slog.New(NewMultiHandler(logger.Handler(), otelslog.NewHandler(serviceName)))
	}

	seatReservationRepo, closeStore, err := newSeatReservationRepository(cfg)
	if err != nil {
		logger.Error("failed to initialize seat reservation store", "store", cfg.SeatStore, "error", err)
		return err
	}
	defer closeStore()

	var paymentService domain.PaymentService

	if cfg.Stripe.SecretKey != "" {
		stripe.Key = cfg.Stripe.SecretKey
		paymentService = payment.NewStripePaymentService(cfg.Stripe.Currency)
	} else {
		logger.Warn("stripe key not set, payments will be mocked")
		paymentService = payment.NewMockPaymentService(logger)
	}

	ticketService, err := service.NewTicketService(logger, paymentService, seatReservationRepo)
	if err != nil {
		return err
	}

	app := NewApp(cfg, logger, appvalidator.NewValidator(), ticketService, seatReservationRepo)

	return app.run()
}

func newSeatReservationRepository(cfg Config) (domain.SeatReservationRepository, func(), error) {
	switch cfg.SeatStore {
	case SeatStorePostgres:
		db, err := NewDatabasePool(cfg)
		if err != nil {
			return nil, nil, err
		}

		return repository.NewPostgresSeatReservationRepository(db), db.Close, nil
	case SeatStoreRedis:
		rdb, err := NewRedisClient(cfg)
		if err != nil {
			return nil, nil, err
		}

		return repository.NewRedisSeatReservationRepository(rdb), func() { rdb.Close() }, nil
	default:
		return nil, nil, fmt.Errorf("unknown seat store %q", cfg.SeatStore)
	}
}

func NewRedisClient(cfg Config) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:            cfg.Redis.URL,
		MaxIdleConns:    cfg.Redis.MaxIdleConns,
		MaxActiveConns:  cfg.Redis.MaxOpenConns,
		ConnMaxIdleTime: cfg.Redis.MaxIdleTime,
	})

	err := redisotel.InstrumentTracing(rdb)
	if err != nil {
		rdb.Close()
		return nil, err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	err = rdb.Ping(ctx).Err()
	if err != nil {
		rdb.Close()
		return nil, err
	}

	return rdb, nil
}

func NewDatabasePool(cfg Config) (*pgxpool.Pool, error) {
	config, err := pgxpool.ParseConfig(cfg.DB.DSN)
	if err != nil {
		return nil, err
	}

	config.MaxConnIdleTime = cfg.DB.MaxIdleTime
	config.MaxConns = int32(cfg.DB.MaxOpenConns)
	config.ConnConfig.Tracer = otelpgx.NewTracer()

	db, err := pgxpool.NewWithConfig(context.Background(), config)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	err = db.Ping(ctx)
	if err != nil {
		db.Close()
		return nil, err
	}

	return db, nil
}

func (app *Application) run() error {
	srv := &http.Server{
		Addr:         fmt.Sprintf("0.0.0.0:%d", app.config.Port),
		Handler:      app.Routes(),
		IdleTimeout:  time.Minute,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		ErrorLog:     slog.NewLogLogger(app.logger.Handler(), slog.LevelDebug),
	}

	shutdownError := make(chan error)

	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		s := <-quit

		app.logger.Info("shutting down server", "signal", s.String())

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		shutdownError <- srv.Shutdown(ctx)
	}()

	app.logger.Info("starting server", "addr", srv.Addr, "env", app.config.Env, "seat_store", app.config.SeatStore)

	err := srv.ListenAndServe()
	if !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	err = <-shutdownError
	if err != nil {
		return err
	}

	app.logger.Info("stopped server", "addr", srv.Addr)

	return nil
}

func (app *Application) Routes() http.Handler {
	r := chi.NewRouter()

	r.NotFound(app.notFoundResponse)
	r.MethodNotAllowed(app.methodNotAllowedResponse)

	r.Use(otelchi.Middleware(serviceName, otelchi.WithChiRoutes(r)))
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger)
	r.Use(app.requestLogger)
	r.Use(app.recoverPanic)

	return api.HandlerWithOptions(app, api.ChiServerOptions{
		BaseRouter:       r,
		ErrorHandlerFunc: app.invalidParamResponse,
	})
}
