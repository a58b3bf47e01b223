package trainer

type Trainer struct {
	ID             int     `db:"id" json:"trainerId"`
	UserID         *int    `db:"user_id" json:"userId,omitempty"`
	Name           string  `db:"name" json:"trainerName"`
	Phone          *string `db:"phone" json:"trainerPhone,omitempty"`
	HourlyRate     float64 `db:"hourly_rate" json:"hourlyRate"`
	Certifications *string `db:"certifications" json:"certifications,omitempty"`
}
