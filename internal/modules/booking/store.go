// README: Booking store backed by PostgreSQL (optimistic status CAS).
package booking

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"citypass/internal/modules/cart"
	"citypass/internal/types"
)

type PgStore struct {
	db *pgxpool.Pool
}

func NewStore(db *pgxpool.Pool) *PgStore {
	return &PgStore{db: db}
}

func (s *PgStore) Create(ctx context.Context, b *Booking) error {
	items, err := json.Marshal(b.Items)
	if err != nil {
		return fmt.Errorf("encode items: %w", err)
	}
	_, err = s.db.Exec(ctx, `
		INSERT INTO bookings (
			id, user_id, items, subtotal, convenience_fee, consultation_fee,
			total, currency, status, status_version, scheduled_at, created_at
		) VALUES (
			$1, $2, $3, $4, $5, $6,
			$7, $8, $9, $10, $11, $12
		)`,
		string(b.ID),
		string(b.UserID),
		items,
		b.Subtotal,
		b.ConvenienceFee,
		b.ConsultationFee,
		b.Total.Amount,
		b.Total.Currency,
		string(b.Status),
		b.StatusVersion,
		b.ScheduledAt,
		b.CreatedAt,
	)
	return err
}

func (s *PgStore) Get(ctx context.Context, id types.ID) (*Booking, error) {
	row := s.db.QueryRow(ctx, `
		SELECT id, user_id, items, subtotal, convenience_fee, consultation_fee,
		       total, currency, status, status_version, scheduled_at, created_at,
		       confirmed_at, started_at, completed_at, cancelled_at, cancel_reason
		FROM bookings
		WHERE id = $1`, string(id),
	)
	b, err := scanBooking(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return b, nil
}

func (s *PgStore) ListByUser(ctx context.Context, userID types.ID) ([]Booking, error) {
	rows, err := s.db.Query(ctx, `
		SELECT id, user_id, items, subtotal, convenience_fee, consultation_fee,
		       total, currency, status, status_version, scheduled_at, created_at,
		       confirmed_at, started_at, completed_at, cancelled_at, cancel_reason
		FROM bookings
		WHERE user_id = $1
		ORDER BY created_at DESC`, string(userID),
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Booking
	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *b)
	}
	return out, rows.Err()
}

func (s *PgStore) UpdateStatus(ctx context.Context, id types.ID, from, to Status, version int, reason *string) (bool, error) {
	tag, err := s.db.Exec(ctx, `
		UPDATE bookings
		SET status = $1,
		    status_version = status_version + 1,
		    cancel_reason = COALESCE($2, cancel_reason),
		    confirmed_at = CASE WHEN $1 = 'confirmed' THEN NOW() ELSE confirmed_at END,
		    started_at = CASE WHEN $1 = 'in_progress' THEN NOW() ELSE started_at END,
		    completed_at = CASE WHEN $1 = 'completed' THEN NOW() ELSE completed_at END,
		    cancelled_at = CASE WHEN $1 = 'cancelled' THEN NOW() ELSE cancelled_at END
		WHERE id = $3 AND status = $4 AND status_version = $5`,
		string(to),
		reason,
		string(id),
		string(from),
		version,
	)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() == 1, nil
}

func (s *PgStore) AppendEvent(ctx context.Context, e *Event) error {
	var actorID *string
	if e.ActorID != nil {
		v := string(*e.ActorID)
		actorID = &v
	}
	_, err := s.db.Exec(ctx, `
		INSERT INTO booking_state_events (
			booking_id, from_status, to_status, actor_type, actor_id, created_at
		) VALUES ($1, $2, $3, $4, $5, $6)`,
		string(e.BookingID),
		string(e.FromStatus),
		string(e.ToStatus),
		e.ActorType,
		actorID,
		e.CreatedAt,
	)
	return err
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanBooking(row rowScanner) (*Booking, error) {
	var b Booking
	var items []byte
	var scheduledAt, confirmedAt, startedAt, completedAt, cancelledAt sql.NullTime
	var cancelReason sql.NullString

	err := row.Scan(
		&b.ID, &b.UserID, &items, &b.Subtotal, &b.ConvenienceFee, &b.ConsultationFee,
		&b.Total.Amount, &b.Total.Currency, &b.Status, &b.StatusVersion, &scheduledAt, &b.CreatedAt,
		&confirmedAt, &startedAt, &completedAt, &cancelledAt, &cancelReason,
	)
	if err != nil {
		return nil, err
	}

	if len(items) > 0 {
		if err := json.Unmarshal(items, &b.Items); err != nil {
			return nil, fmt.Errorf("decode items: %w", err)
		}
	} else {
		b.Items = []cart.LineItem{}
	}
	b.ScheduledAt = toTimePtr(scheduledAt)
	b.ConfirmedAt = toTimePtr(confirmedAt)
	b.StartedAt = toTimePtr(startedAt)
	b.CompletedAt = toTimePtr(completedAt)
	b.CancelledAt = toTimePtr(cancelledAt)
	if cancelReason.Valid {
		b.CancelReason = &cancelReason.String
	}
	return &b, nil
}

func toTimePtr(v sql.NullTime) *time.Time {
	if !v.Valid {
		return nil
	}
	t := v.Time
	return &t
}
