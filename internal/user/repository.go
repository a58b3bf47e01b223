package user

import (
	"context"
	"database/sql"

	"fitbook/internal/db"

	"github.com/jmoiron/sqlx"
)

type repository struct {
	db *sqlx.DB
}

func NewRepository(database *sqlx.DB) Repository {
	return &repository{db: database}
}

func (r *repository) EmailExists(ctx context.Context, email string) (bool, error) {
	return db.Exists(ctx, r.db,
		`SELECT EXISTS(SELECT 1 FROM users WHERE email = $1)`, email)
}

func (r *repository) Create(ctx context.Context, email, passwordHash, role string) (*User, error) {
	query := `
		INSERT INTO users (email, password_hash, role)
		VALUES ($1, $2, $3)
		RETURNING id, email, password_hash, role, created_at
	`

	var u User
	err := r.db.GetContext(ctx, &u, query, email, passwordHash, role)
	if err != nil {
		return nil, err
	}

	return &u, nil
}

func (r *repository) FindByEmail(ctx context.Context, email string) (*User, error) {
	query := `
		SELECT id, email, password_hash, role, created_at
		FROM users
		WHERE email = $1
	`

	var u User
	err := r.db.GetContext(ctx, &u, query, email)
	if err != nil {
		return nil, err
	}

	return &u, nil
}

func (r *repository) CreateClientProfile(ctx context.Context, userID int, name, phone, cardNumber string) (int, error) {
	query := `
		INSERT INTO clients (user_id, name, phone, card_number)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`

	var id int
	err := r.db.GetContext(ctx, &id, query, userID, name, phone, cardNumber)
	if err != nil {
		return 0, err
	}

	return id, nil
}

func (r *repository) ClientIDForUser(ctx context.Context, userID int) (*int, error) {
	var id int
	err := r.db.GetContext(ctx, &id, `SELECT id FROM clients WHERE user_id = $1`, userID)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &id, nil
}

func (r *repository) TrainerIDForUser(ctx context.Context, userID int) (*int, error) {
	var id int
	err := r.db.GetContext(ctx, &id, `SELECT id FROM trainers WHERE user_id = $1`, userID)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &id, nil
}

func (r *repository) GetClientContact(ctx context.Context, clientID int) (*ClientContact, error) {
	query := `
		SELECT u.email, c.name
		FROM clients c
		JOIN users u ON c.user_id = u.id
		WHERE c.id = $1
	`

	var contact ClientContact
	err := r.db.GetContext(ctx, &contact, query, clientID)
	if err != nil {
		return nil, err
	}

	return &contact, nil
}
