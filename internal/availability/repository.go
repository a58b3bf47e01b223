package availability

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"
)

const (
	ActionCreated = "created"
	ActionUpdated = "updated"
)

var ErrNotSet = errors.New("trainer has not set availability")

type repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

// Set overwrites the trainer's availability row if one exists, otherwise
// inserts a new one. One logical row per trainer.
func (r *repository) Set(ctx context.Context, trainerID int, daysCsv string) (string, error) {
	var existingID int
	err := r.db.GetContext(ctx, &existingID,
		`SELECT id FROM trainer_availability WHERE trainer_id = $1`, trainerID)
	if err != nil && err != sql.ErrNoRows {
		return "", err
	}

	if err == nil {
		_, err = r.db.ExecContext(ctx,
			`UPDATE trainer_availability SET days_available = $1 WHERE trainer_id = $2`,
			daysCsv, trainerID)
		if err != nil {
			return "", err
		}
		return ActionUpdated, nil
	}

	_, err = r.db.ExecContext(ctx,
		`INSERT INTO trainer_availability (trainer_id, days_available) VALUES ($1, $2)`,
		trainerID, daysCsv)
	if err != nil {
		return "", err
	}
	return ActionCreated, nil
}

func (r *repository) GetByTrainer(ctx context.Context, trainerID int) (*TrainerAvailability, error) {
	query := `
		SELECT id, trainer_id, days_available
		FROM trainer_availability
		WHERE trainer_id = $1
	`

	var a TrainerAvailability
	err := r.db.GetContext(ctx, &a, query, trainerID)
	if err == sql.ErrNoRows {
		return nil, ErrNotSet
	}
	if err != nil {
		return nil, err
	}

	return &a, nil
}

// ListByTrainer returns the availability as a list for API uniformity; it
// holds 0 or 1 entries.
func (r *repository) ListByTrainer(ctx context.Context, trainerID int) ([]TrainerAvailability, error) {
	query := `
		SELECT id, trainer_id, days_available
		FROM trainer_availability
		WHERE trainer_id = $1
	`

	var list []TrainerAvailability
	err := r.db.SelectContext(ctx, &list, query, trainerID)
	if err != nil {
		return nil, err
	}

	return list, nil
}
