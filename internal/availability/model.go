package availability

// TrainerAvailability is the per-trainer record of weekdays accepting bookings.
// DaysAvailable is stored verbatim as a comma-separated list, e.g.
// "Monday, Wednesday, Friday". Day names are not validated; an unknown name
// simply never matches a slot lookup.
type TrainerAvailability struct {
	ID            int    `db:"id" json:"availabilityId"`
	TrainerID     int    `db:"trainer_id" json:"trainerId"`
	DaysAvailable string `db:"days_available" json:"daysAvailable"`
}

type SetAvailabilityRequest struct {
	TrainerID     int    `json:"trainerId" binding:"required,gt=0"`
	DaysAvailable string `json:"daysAvailable" binding:"required"`
}

type SetAvailabilityResponse struct {
	Success bool   `json:"success" example:"true"`
	Message string `json:"message" example:"Availability added successfully"`
	Action  string `json:"action" example:"created"`
}
