package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/metinatakli/cinema-tickets/internal/domain"
	"github.com/redis/go-redis/v9"
)

type RedisSeatReservationRepository struct {
	client redis.UniversalClient
	now    func() time.Time
}

func NewRedisSeatReservationRepository(client redis.UniversalClient) *RedisSeatReservationRepository {
	return &RedisSeatReservationRepository{
		client: client,
		now:    time.Now,
	}
}

type redisSeatReservation struct {
	SeatCount int       `json:"seatCount"`
	CreatedAt time.Time `json:"createdAt"`
}

func seatCountKey(accountID int64) string {
	return fmt.Sprintf("seat_reservations:%d:seats", accountID)
}

func seatReservationsKey(accountID int64) string {
	return fmt.Sprintf("seat_reservations:%d", accountID)
}

// ReserveSeat keeps a running seat total per account next to the list of
// individual reservations. Both are written in a single MULTI/EXEC.
func (r *RedisSeatReservationRepository) ReserveSeat(ctx context.Context, accountID int64, totalSeats int) error {
	entry, err := json.Marshal(redisSeatReservation{
		SeatCount: totalSeats,
		CreatedAt: r.now().UTC(),
	})
	if err != nil {
		return err
	}

	pipe := r.client.TxPipeline()
	pipe.IncrBy(ctx, seatCountKey(accountID), int64(totalSeats))
	pipe.RPush(ctx, seatReservationsKey(accountID), string(entry))

	_, err = pipe.Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to store seat reservation: %w", err)
	}

	return nil
}

func (r *RedisSeatReservationRepository) GetByAccountId(
	ctx context.Context,
	accountID int64) ([]domain.SeatReservation, error) {

	entries, err := r.client.LRange(ctx, seatReservationsKey(accountID), 0, -1).Result()
	if err != nil {
		return nil, err
	}

	reservations := make([]domain.SeatReservation, len(entries))

	for i, v := range entries {
		var entry redisSeatReservation

		err = json.Unmarshal([]byte(v), &entry)
		if err != nil {
			return nil, fmt.Errorf("corrupt seat reservation entry for account %d: %w", accountID, err)
		}

		reservations[i] = domain.SeatReservation{
			ID:        i + 1,
			AccountID: accountID,
			SeatCount: entry.SeatCount,
			CreatedAt: entry.CreatedAt,
		}
	}

	return reservations, nil
}
