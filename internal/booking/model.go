package booking

import "time"

// Booking lifecycle statuses. Creation only ever writes Scheduled and
// cancellation only ever writes Cancelled; the remaining values are accepted
// in the column for forward compatibility with a trainer-confirmation flow.
const (
	StatusScheduled = "Scheduled"
	StatusPending   = "Pending"
	StatusConfirmed = "Confirmed"
	StatusCancelled = "Cancelled"
	StatusCompleted = "Completed"
)

type Booking struct {
	ID               int       `db:"id" json:"bookingId"`
	ClientID         int       `db:"client_id" json:"clientId"`
	TrainerID        int       `db:"trainer_id" json:"trainerId"`
	PaymentID        int       `db:"payment_id" json:"paymentId"`
	BookingDay       string    `db:"booking_day" json:"bookingDay"`
	BookingTime      string    `db:"booking_time" json:"bookingTime"`
	Status           string    `db:"status" json:"bookingStatus"`
	StatusUpdateTime time.Time `db:"status_update_time" json:"statusUpdateTime"`
}

// Payment is the simulated payment ledger row, created 1:1 with a booking.
type Payment struct {
	ID          int     `db:"id" json:"paymentId"`
	Amount      float64 `db:"amount" json:"amount"`
	PaymentDate string  `db:"payment_date" json:"paymentDate"`
}

// ClientSession is the client dashboard read model, joined with trainer and
// payment info.
type ClientSession struct {
	Booking
	TrainerName   string  `db:"trainer_name" json:"trainerName"`
	HourlyRate    float64 `db:"hourly_rate" json:"hourlyRate"`
	PaymentAmount float64 `db:"payment_amount" json:"paymentAmount"`
	PaymentDate   string  `db:"payment_date" json:"paymentDate"`
}

type CreateBookingRequest struct {
	ClientID    int    `json:"clientId"`
	TrainerID   int    `json:"trainerId"`
	BookingDay  string `json:"bookingDay"`
	BookingTime string `json:"bookingTime"`
	FacilityID  *int   `json:"facilityId,omitempty"`
}

type CreateBookingResponse struct {
	Success       bool    `json:"success" example:"true"`
	Message       string  `json:"message" example:"Booking created and payment processed successfully"`
	BookingID     int     `json:"bookingId" example:"12"`
	PaymentID     int     `json:"paymentId" example:"12"`
	TotalFee      float64 `json:"totalFee" example:"65"`
	PaymentStatus string  `json:"paymentStatus" example:"Completed"`
}

type CancelBookingRequest struct {
	ClientID int `json:"clientId"`
}

type CancelBookingResponse struct {
	Success   bool   `json:"success" example:"true"`
	Message   string `json:"message" example:"Booking cancelled successfully"`
	BookingID int    `json:"bookingId" example:"12"`
}
