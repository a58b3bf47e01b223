package trainer

import "context"

type Repository interface {
	Search(ctx context.Context, specialty string, maxRate *float64) ([]Trainer, error)
	GetByID(ctx context.Context, id int) (*Trainer, error)
	Create(ctx context.Context, userID int, name string, phone *string, hourlyRate float64, certifications *string) (*Trainer, error)
	ListCertifications(ctx context.Context) ([]string, error)
	EnsureCertification(ctx context.Context, name string) error
}
