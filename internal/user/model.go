package user

import "time"

type User struct {
	ID           int       `db:"id" json:"userId"`
	Email        string    `db:"email" json:"email"`
	PasswordHash string    `db:"password_hash" json:"-"`
	Role         string    `db:"role" json:"role"`
	CreatedAt    time.Time `db:"created_at" json:"createdAt"`
}

// ClientContact is what the notification path needs to address a client.
type ClientContact struct {
	Email string `db:"email"`
	Name  string `db:"name"`
}

type RegisterRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
	Role     string `json:"role" binding:"required"`

	Name  string `json:"name"`
	Phone string `json:"phone"`

	// Client-only.
	CardNumber string `json:"cardNumber"`

	// Trainer-only.
	HourlyRate     float64 `json:"hourlyRate"`
	Certifications string  `json:"certifications"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// AuthResponse carries the identity the browser holds onto; there is no
// server-issued token, subsequent requests carry the plain IDs.
type AuthResponse struct {
	Success   bool   `json:"success"`
	User      *User  `json:"user,omitempty"`
	ClientID  *int   `json:"clientId,omitempty"`
	TrainerID *int   `json:"trainerId,omitempty"`
	Message   string `json:"message,omitempty"`
}
