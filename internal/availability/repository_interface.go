package availability

import "context"

type Repository interface {
	Set(ctx context.Context, trainerID int, daysCsv string) (string, error)
	GetByTrainer(ctx context.Context, trainerID int) (*TrainerAvailability, error)
	ListByTrainer(ctx context.Context, trainerID int) ([]TrainerAvailability, error)
}
