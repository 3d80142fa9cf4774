package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/metinatakli/cinema-tickets/internal/domain"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
)

const instrumentationName = "github.com/metinatakli/cinema-tickets/internal/service"

// PurchaseAmountMetric is the histogram of amounts charged for accepted purchases.
const PurchaseAmountMetric = "ticket_purchase_amount"

const (
	outcomeAccepted = "accepted"
	outcomeRejected = "rejected"
	outcomeFailed   = "failed"
)

// TicketService validates and prices ticket purchases, then takes the payment
// and reserves the seats through the injected collaborators.
type TicketService struct {
	logger             *slog.Logger
	paymentService     domain.PaymentService
	reservationService domain.SeatReservationService

	tracer    trace.Tracer
	purchases metric.Int64Counter
	tickets   metric.Int64Counter
	amounts   metric.Int64Histogram
}

func NewTicketService(
	logger *slog.Logger,
	paymentService domain.PaymentService,
	reservationService domain.SeatReservationService) (*TicketService, error) {

	meter := otel.Meter(instrumentationName)

	purchases, err := meter.Int64Counter(
		"ticket_purchases",
		metric.WithDescription("Number of ticket purchase attempts by outcome"),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create purchases counter: %w", err)
	}

	tickets, err := meter.Int64Counter(
		"tickets_sold",
		metric.WithDescription("Number of tickets sold by ticket type"),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create tickets counter: %w", err)
	}

	amounts, err := meter.Int64Histogram(
		PurchaseAmountMetric,
		metric.WithDescription("Amount charged per accepted purchase"),
		metric.WithUnit("{currency_unit}"),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create purchase amount histogram: %w", err)
	}

	return &TicketService{
		logger:             logger,
		paymentService:     paymentService,
		reservationService: reservationService,
		tracer:             otel.Tracer(instrumentationName),
		purchases:          purchases,
		tickets:            tickets,
		amounts:            amounts,
	}, nil
}

// PurchaseTickets rejects the purchase with an *domain.InvalidPurchaseError
// when any business rule is broken. Payment and seat reservation are only
// attempted once every rule passes, payment first.
func (s *TicketService) PurchaseTickets(
	ctx context.Context,
	accountID int64,
	requests ...domain.TicketTypeRequest) error {

	ctx, span := s.tracer.Start(ctx, "TicketService.PurchaseTickets",
		trace.WithAttributes(attribute.Int64("account.id", accountID)))
	defer span.End()

	logger := s.logger.With("account_id", accountID)

	err := validatePurchase(accountID, requests)
	if err != nil {
		logger.Warn("ticket purchase rejected", "error", err)
		span.SetStatus(codes.Error, err.Error())
		s.recordOutcome(ctx, outcomeRejected)
		return err
	}

	totalAmount := domain.TotalAmount(requests)
	totalSeats := domain.TotalSeats(requests)

	span.SetAttributes(
		attribute.Int("purchase.amount", totalAmount),
		attribute.Int("purchase.seats", totalSeats),
	)

	err = s.paymentService.MakePayment(ctx, accountID, totalAmount)
	if err != nil {
		return s.fail(ctx, span, logger, fmt.Errorf("payment failed: %w", err))
	}

	err = s.reservationService.ReserveSeat(ctx, accountID, totalSeats)
	if err != nil {
		// payment has already been taken at this point
		return s.fail(ctx, span, logger, fmt.Errorf("seat reservation failed: %w", err))
	}

	for _, r := range requests {
		s.tickets.Add(ctx, int64(r.Quantity), metric.WithAttributes(attribute.String("ticket.type", r.Type.String())))
	}

	s.amounts.Record(ctx, int64(totalAmount))
	s.recordOutcome(ctx, outcomeAccepted)
	logger.Info("ticket purchase completed", "total_amount", totalAmount, "total_seats", totalSeats)

	return nil
}

func (s *TicketService) fail(ctx context.Context, span trace.Span, logger *slog.Logger, err error) error {
	logger.Error("ticket purchase failed", "error", err)
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
	s.recordOutcome(ctx, outcomeFailed)

	return err
}

func (s *TicketService) recordOutcome(ctx context.Context, outcome string) {
	s.purchases.Add(ctx, 1, metric.WithAttributes(attribute.String("outcome", outcome)))
}

func validatePurchase(accountID int64, requests []domain.TicketTypeRequest) error {
	if accountID <= 0 {
		return domain.NewInvalidPurchaseError("invalid account id")
	}

	if len(requests) == 0 {
		return domain.NewInvalidPurchaseError("no tickets requested")
	}

	for _, r := range requests {
		if !r.Type.Valid() {
			return domain.NewInvalidPurchaseError("unknown ticket type")
		}

		if r.Quantity <= 0 {
			return domain.NewInvalidPurchaseError("ticket quantity must be greater than zero")
		}
	}

	if domain.ExceedsMaxTickets(requests) {
		return domain.NewInvalidPurchaseError(
			fmt.Sprintf("maximum %d tickets allowed per purchase", domain.MaxTicketsPerPurchase))
	}

	hasAdult := false
	hasDependant := false

	for _, r := range requests {
		switch r.Type {
		case domain.Adult:
			hasAdult = true
		case domain.Child, domain.Infant:
			hasDependant = true
		}
	}

	if hasDependant && !hasAdult {
		return domain.NewInvalidPurchaseError("child and infant tickets require an adult ticket")
	}

	return nil
}
