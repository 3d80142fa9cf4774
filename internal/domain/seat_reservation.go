package domain

import (
	"context"
	"time"
)

type SeatReservation struct {
	ID        int
	AccountID int64
	SeatCount int
	CreatedAt time.Time
}

type SeatReservationRepository interface {
	SeatReservationService
	GetByAccountId(ctx context.Context, accountID int64) ([]SeatReservation, error)
}
