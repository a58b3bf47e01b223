package facility

import "context"

type Repository interface {
	List(ctx context.Context) ([]Facility, error)
	Exists(ctx context.Context, id int) (bool, error)
	RecordUsage(ctx context.Context, facilityID, bookingID, trainerID int, startTime, endTime string) (*Usage, error)
}
