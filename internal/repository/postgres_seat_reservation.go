package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/metinatakli/cinema-tickets/internal/domain"
)

type PostgresSeatReservationRepository struct {
	db *pgxpool.Pool
}

func NewPostgresSeatReservationRepository(db *pgxpool.Pool) *PostgresSeatReservationRepository {
	return &PostgresSeatReservationRepository{
		db: db,
	}
}

func (p *PostgresSeatReservationRepository) ReserveSeat(ctx context.Context, accountID int64, totalSeats int) error {
	query := `
		INSERT INTO seat_reservations (account_id, seat_count)
		VALUES ($1, $2)
	`

	_, err := p.db.Exec(ctx, query, accountID, totalSeats)
	return err
}

func (p *PostgresSeatReservationRepository) GetByAccountId(
	ctx context.Context,
	accountID int64) ([]domain.SeatReservation, error) {

	query := `
		SELECT id, account_id, seat_count, created_at
		FROM seat_reservations
		WHERE account_id = $1
		ORDER BY created_at, id
	`

	rows, err := p.db.Query(ctx, query, accountID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	reservations := make([]domain.SeatReservation, 0)

	for rows.Next() {
		var reservation domain.SeatReservation

		err = rows.Scan(
			&reservation.ID,
			&reservation.AccountID,
			&reservation.SeatCount,
			&reservation.CreatedAt,
		)

		if err != nil {
			return nil, err
		}

		reservations = append(reservations, reservation)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return reservations, nil
}
