package domain

import (
	"context"
	"strings"
)

const MaxTicketsPerPurchase = 25

type TicketType int

const (
	Adult TicketType = iota + 1
	Child
	Infant
)

var ticketTypeNames = map[TicketType]string{
	Adult:  "ADULT",
	Child:  "CHILD",
	Infant: "INFANT",
}

func ParseTicketType(s string) (TicketType, bool) {
	for t, name := range ticketTypeNames {
		if strings.EqualFold(s, name) {
			return t, true
		}
	}

	return 0, false
}

func (t TicketType) String() string {
	if name, ok := ticketTypeNames[t]; ok {
		return name
	}

	return "UNKNOWN"
}

func (t TicketType) Valid() bool {
	_, ok := ticketTypeNames[t]
	return ok
}

// Price returns the unit price of the ticket type in whole currency units.
func (t TicketType) Price() int {
	switch t {
	case Adult:
		return 25
	case Child:
		return 15
	case Infant:
		return 0
	default:
		return 0
	}
}

// OccupiesSeat reports whether a ticket of this type needs a seat of its own.
// Infants sit on an adult's lap.
func (t TicketType) OccupiesSeat() bool {
	switch t {
	case Adult, Child:
		return true
	default:
		return false
	}
}

type TicketTypeRequest struct {
	Type     TicketType
	Quantity int
}

func NewTicketTypeRequest(t TicketType, quantity int) TicketTypeRequest {
	return TicketTypeRequest{
		Type:     t,
		Quantity: quantity,
	}
}

func TotalTickets(requests []TicketTypeRequest) int {
	total := 0

	for _, r := range requests {
		total += r.Quantity
	}

	return total
}

// ExceedsMaxTickets reports whether the requested quantities add up to more
// than MaxTicketsPerPurchase. Summing stops at the ceiling so huge quantities
// cannot wrap the total around. Quantities are expected to be positive.
func ExceedsMaxTickets(requests []TicketTypeRequest) bool {
	remaining := MaxTicketsPerPurchase

	for _, r := range requests {
		if r.Quantity > remaining {
			return true
		}

		remaining -= r.Quantity
	}

	return false
}

func TotalAmount(requests []TicketTypeRequest) int {
	total := 0

	for _, r := range requests {
		total += r.Type.Price() * r.Quantity
	}

	return total
}

func TotalSeats(requests []TicketTypeRequest) int {
	total := 0

	for _, r := range requests {
		if r.Type.OccupiesSeat() {
			total += r.Quantity
		}
	}

	return total
}

type PaymentService interface {
	MakePayment(ctx context.Context, accountID int64, totalAmount int) error
}

type SeatReservationService interface {
	ReserveSeat(ctx context.Context, accountID int64, totalSeats int) error
}
