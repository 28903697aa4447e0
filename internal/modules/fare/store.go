// README: Fare tariff store backed by PostgreSQL.
package fare

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ErrNoTariff signals that no override tariff row exists.
var ErrNoTariff = errors.New("no tariff configured")

type Store struct {
	db *pgxpool.Pool
}

func NewStore(db *pgxpool.Pool) *Store {
	return &Store{db: db}
}

// GetTariff returns the most recently configured tariff override.
func (s *Store) GetTariff(ctx context.Context) (Tariff, error) {
	row := s.db.QueryRow(ctx, `
		SELECT base_fare, per_stop, round_trip_factor, currency
		FROM fare_tariffs
		ORDER BY created_at DESC
		LIMIT 1`)

	var t Tariff
	err := row.Scan(&t.BaseFare, &t.PerStop, &t.RoundTripFactor, &t.Currency)
	if errors.Is(err, pgx.ErrNoRows) {
		return Tariff{}, ErrNoTariff
	}
	if err != nil {
		return Tariff{}, err
	}
	return t, nil
}
