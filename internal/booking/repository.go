package booking

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

var (
	ErrTrainerSlotTaken = errors.New("trainer is already booked at this time")
	ErrClientSlotTaken  = errors.New("client already has a booking at this time")
	ErrBookingNotFound  = errors.New("booking not found")
	ErrAlreadyCancelled = errors.New("booking has already been cancelled")
)

const pqUniqueViolation = "23505"

type repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

func (r *repository) BookedTimesForTrainer(ctx context.Context, trainerID int, day string) ([]string, error) {
	query := `
		SELECT booking_time::text
		FROM bookings
		WHERE trainer_id = $1
		AND UPPER(booking_day) = UPPER($2)
		AND status <> 'Cancelled'
	`

	var times []string
	err := r.db.SelectContext(ctx, &times, query, trainerID, day)
	if err != nil {
		return nil, err
	}

	return times, nil
}

func (r *repository) BookedTimesForClient(ctx context.Context, clientID int, day string) ([]string, error) {
	query := `
		SELECT booking_time::text
		FROM bookings
		WHERE client_id = $1
		AND UPPER(booking_day) = UPPER($2)
		AND status <> 'Cancelled'
	`

	var times []string
	err := r.db.SelectContext(ctx, &times, query, clientID, day)
	if err != nil {
		return nil, err
	}

	return times, nil
}

// CreateWithPayment runs the whole write sequence in one transaction so a
// booking-insert failure can never orphan a payment row. The partial unique
// indexes on (trainer, day, time) and (client, day, time) are the
// authoritative guard against two concurrent requests that both pass the
// in-transaction count.
func (r *repository) CreateWithPayment(ctx context.Context, clientID, trainerID int, day, bookingTime string, fee float64) (*Booking, *Payment, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, nil, err
	}
	defer tx.Rollback()

	countQuery := `
		SELECT COUNT(*)
		FROM bookings
		WHERE trainer_id = $1
		AND UPPER(booking_day) = UPPER($2)
		AND booking_time = $3
		AND status <> 'Cancelled'
	`

	var trainerConflicts int
	if err := tx.GetContext(ctx, &trainerConflicts, countQuery, trainerID, day, bookingTime); err != nil {
		return nil, nil, err
	}
	if trainerConflicts > 0 {
		return nil, nil, ErrTrainerSlotTaken
	}

	countQuery = `
		SELECT COUNT(*)
		FROM bookings
		WHERE client_id = $1
		AND UPPER(booking_day) = UPPER($2)
		AND booking_time = $3
		AND status <> 'Cancelled'
	`

	var clientConflicts int
	if err := tx.GetContext(ctx, &clientConflicts, countQuery, clientID, day, bookingTime); err != nil {
		return nil, nil, err
	}
	if clientConflicts > 0 {
		return nil, nil, ErrClientSlotTaken
	}

	var payment Payment
	err = tx.GetContext(ctx, &payment, `
		INSERT INTO payments (amount, payment_date)
		VALUES ($1, CURRENT_DATE)
		RETURNING id, amount, payment_date::text
	`, fee)
	if err != nil {
		return nil, nil, err
	}

	var booking Booking
	err = tx.GetContext(ctx, &booking, `
		INSERT INTO bookings (client_id, trainer_id, payment_id, booking_day, booking_time, status, status_update_time)
		VALUES ($1, $2, $3, $4, $5, 'Scheduled', NOW())
		RETURNING id, client_id, trainer_id, payment_id, booking_day, booking_time::text, status, status_update_time
	`, clientID, trainerID, payment.ID, day, bookingTime)
	if err != nil {
		return nil, nil, translateConflict(err)
	}

	if err := tx.Commit(); err != nil {
		return nil, nil, translateConflict(err)
	}

	return &booking, &payment, nil
}

// translateConflict maps a unique-violation raised by the partial indexes to
// the same conflict error a failed pre-check produces.
func translateConflict(err error) error {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == pqUniqueViolation {
		if pqErr.Constraint == "bookings_client_slot_idx" {
			return ErrClientSlotTaken
		}
		return ErrTrainerSlotTaken
	}
	return err
}

func (r *repository) GetByIDForClient(ctx context.Context, bookingID, clientID int) (*Booking, error) {
	query := `
		SELECT id, client_id, trainer_id, payment_id, booking_day, booking_time::text, status, status_update_time
		FROM bookings
		WHERE id = $1 AND client_id = $2
	`

	var booking Booking
	err := r.db.GetContext(ctx, &booking, query, bookingID, clientID)
	if err == sql.ErrNoRows {
		return nil, ErrBookingNotFound
	}
	if err != nil {
		return nil, err
	}

	return &booking, nil
}

func (r *repository) CancelScheduled(ctx context.Context, bookingID, clientID int) error {
	query := `
		UPDATE bookings
		SET status = 'Cancelled', status_update_time = NOW()
		WHERE id = $1 AND client_id = $2 AND status <> 'Cancelled'
	`

	result, err := r.db.ExecContext(ctx, query, bookingID, clientID)
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rowsAffected == 0 {
		return ErrAlreadyCancelled
	}

	return nil
}

func (r *repository) ListByTrainer(ctx context.Context, trainerID int) ([]Booking, error) {
	query := `
		SELECT id, client_id, trainer_id, payment_id, booking_day, booking_time::text, status, status_update_time
		FROM bookings
		WHERE trainer_id = $1
		ORDER BY booking_day, booking_time
	`

	var bookings []Booking
	err := r.db.SelectContext(ctx, &bookings, query, trainerID)
	if err != nil {
		return nil, err
	}

	return bookings, nil
}

func (r *repository) ListClientSessions(ctx context.Context, clientID int) ([]ClientSession, error) {
	query := `
		SELECT
			b.id,
			b.client_id,
			b.trainer_id,
			b.payment_id,
			b.booking_day,
			b.booking_time::text,
			b.status,
			b.status_update_time,
			t.name AS trainer_name,
			t.hourly_rate,
			p.amount AS payment_amount,
			p.payment_date::text AS payment_date
		FROM bookings b
		JOIN trainers t ON b.trainer_id = t.id
		JOIN payments p ON b.payment_id = p.id
		WHERE b.client_id = $1
		ORDER BY b.booking_day, b.booking_time
	`

	var sessions []ClientSession
	err := r.db.SelectContext(ctx, &sessions, query, clientID)
	if err != nil {
		return nil, err
	}

	return sessions, nil
}
