package user

import "context"

type Repository interface {
	EmailExists(ctx context.Context, email string) (bool, error)
	Create(ctx context.Context, email, passwordHash, role string) (*User, error)
	FindByEmail(ctx context.Context, email string) (*User, error)
	CreateClientProfile(ctx context.Context, userID int, name, phone, cardNumber string) (int, error)
	ClientIDForUser(ctx context.Context, userID int) (*int, error)
	TrainerIDForUser(ctx context.Context, userID int) (*int, error)
	GetClientContact(ctx context.Context, clientID int) (*ClientContact, error)
}
