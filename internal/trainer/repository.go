package trainer

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"
)

var ErrTrainerNotFound = errors.New("trainer not found")

type repository struct {
	db *sqlx.DB
}

func NewRepository(db *sqlx.DB) Repository {
	return &repository{db: db}
}

// Search filters the catalog by certification keyword and rate ceiling.
func (r *repository) Search(ctx context.Context, specialty string, maxRate *float64) ([]Trainer, error) {
	query := `
		SELECT id, user_id, name, phone, hourly_rate, certifications
		FROM trainers
		WHERE 1=1
	`
	args := []interface{}{}
	n := 0

	if specialty != "" {
		n++
		query += " AND certifications ILIKE '%' || $1 || '%'"
		args = append(args, specialty)
	}

	if maxRate != nil {
		n++
		if n == 1 {
			query += " AND hourly_rate <= $1"
		} else {
			query += " AND hourly_rate <= $2"
		}
		args = append(args, *maxRate)
	}

	query += " ORDER BY name"

	var trainers []Trainer
	err := r.db.SelectContext(ctx, &trainers, query, args...)
	if err != nil {
		return nil, err
	}

	return trainers, nil
}

func (r *repository) GetByID(ctx context.Context, id int) (*Trainer, error) {
	query := `
		SELECT id, user_id, name, phone, hourly_rate, certifications
		FROM trainers
		WHERE id = $1
	`

	var t Trainer
	err := r.db.GetContext(ctx, &t, query, id)
	if err == sql.ErrNoRows {
		return nil, ErrTrainerNotFound
	}
	if err != nil {
		return nil, err
	}

	return &t, nil
}

func (r *repository) Create(ctx context.Context, userID int, name string, phone *string, hourlyRate float64, certifications *string) (*Trainer, error) {
	query := `
		INSERT INTO trainers (user_id, name, phone, hourly_rate, certifications)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, user_id, name, phone, hourly_rate, certifications
	`

	var t Trainer
	err := r.db.GetContext(ctx, &t, query, userID, name, phone, hourlyRate, certifications)
	if err != nil {
		return nil, err
	}

	return &t, nil
}

// ListCertifications returns the certification catalog in alphabetical order.
func (r *repository) ListCertifications(ctx context.Context) ([]string, error) {
	query := `SELECT name FROM certifications ORDER BY name`

	var names []string
	err := r.db.SelectContext(ctx, &names, query)
	if err != nil {
		return nil, err
	}

	return names, nil
}

// EnsureCertification adds a certification to the catalog if it is not
// already listed.
func (r *repository) EnsureCertification(ctx context.Context, name string) error {
	query := `INSERT INTO certifications (name) VALUES ($1) ON CONFLICT (name) DO NOTHING`

	_, err := r.db.ExecContext(ctx, query, name)
	return err
}
