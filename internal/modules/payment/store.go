// README: Payment store backed by PostgreSQL.
package payment

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"citypass/internal/types"
)

type PgStore struct {
	db *pgxpool.Pool
}

func NewStore(db *pgxpool.Pool) *PgStore {
	return &PgStore{db: db}
}

func (s *PgStore) Create(ctx context.Context, p *Payment) error {
	_, err := s.db.Exec(ctx, `
		INSERT INTO payments (id, booking_id, amount, currency, method, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		string(p.ID),
		string(p.BookingID),
		p.Amount.Amount,
		p.Amount.Currency,
		string(p.Method),
		string(p.Status),
		p.CreatedAt,
	)
	return err
}

func (s *PgStore) GetByBooking(ctx context.Context, bookingID types.ID) (*Payment, error) {
	row := s.db.QueryRow(ctx, `
		SELECT id, booking_id, amount, currency, method, status, created_at
		FROM payments
		WHERE booking_id = $1
		ORDER BY created_at DESC
		LIMIT 1`, string(bookingID),
	)
	var p Payment
	err := row.Scan(&p.ID, &p.BookingID, &p.Amount.Amount, &p.Amount.Currency, &p.Method, &p.Status, &p.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}
