package booking

import "context"

type Repository interface {
	// BookedTimesForTrainer returns the raw booking_time values of all
	// non-Cancelled bookings for (trainer, day), day matched case-insensitively.
	BookedTimesForTrainer(ctx context.Context, trainerID int, day string) ([]string, error)
	// BookedTimesForClient is the same lookup keyed by client, across all trainers.
	BookedTimesForClient(ctx context.Context, clientID int, day string) ([]string, error)

	// CreateWithPayment re-checks both conflict invariants and inserts the
	// payment and booking rows inside a single transaction. It returns
	// ErrTrainerSlotTaken or ErrClientSlotTaken on conflict, whether detected
	// by the in-transaction check or by the partial unique indexes at commit.
	CreateWithPayment(ctx context.Context, clientID, trainerID int, day, bookingTime string, fee float64) (*Booking, *Payment, error)

	// GetByIDForClient enforces the ownership check: the row must match both keys.
	GetByIDForClient(ctx context.Context, bookingID, clientID int) (*Booking, error)
	// CancelScheduled flips a non-Cancelled booking to Cancelled and refreshes
	// status_update_time. Returns ErrAlreadyCancelled if no row changed.
	CancelScheduled(ctx context.Context, bookingID, clientID int) error

	ListByTrainer(ctx context.Context, trainerID int) ([]Booking, error)
	ListClientSessions(ctx context.Context, clientID int) ([]ClientSession, error)
}
