package facility

import (
	"context"

	"fitbook/internal/db"

	"github.com/jmoiron/sqlx"
)

type repository struct {
	db *sqlx.DB
}

func NewRepository(database *sqlx.DB) Repository {
	return &repository{db: database}
}

func (r *repository) List(ctx context.Context) ([]Facility, error) {
	query := `
		SELECT id, address, room_number, equipment_set
		FROM facilities
		ORDER BY address, room_number
	`

	var facilities []Facility
	err := r.db.SelectContext(ctx, &facilities, query)
	if err != nil {
		return nil, err
	}

	return facilities, nil
}

func (r *repository) Exists(ctx context.Context, id int) (bool, error) {
	return db.Exists(ctx, r.db,
		`SELECT EXISTS(SELECT 1 FROM facilities WHERE id = $1)`, id)
}

// RecordUsage inserts a usage row spanning [startTime, endTime) on the current
// date. Callers treat failures as best-effort; they must not affect the booking.
func (r *repository) RecordUsage(ctx context.Context, facilityID, bookingID, trainerID int, startTime, endTime string) (*Usage, error) {
	query := `
		INSERT INTO facility_usage (facility_id, booking_id, trainer_id, start_time, end_time, usage_date)
		VALUES ($1, $2, $3, $4, $5, CURRENT_DATE)
		RETURNING id, facility_id, booking_id, trainer_id, start_time, end_time, usage_date
	`

	var u Usage
	err := r.db.GetContext(ctx, &u, query, facilityID, bookingID, trainerID, startTime, endTime)
	if err != nil {
		return nil, err
	}

	return &u, nil
}
