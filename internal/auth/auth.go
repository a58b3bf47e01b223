package auth

import (
	"golang.org/x/crypto/bcrypt"
)

const (
	RoleClient  = "Client"
	RoleTrainer = "Trainer"
	RoleAdmin   = "Admin"
)

func HashPassword(password string) (string, error) {
	hashedBytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hashedBytes), nil
}

func CheckPassword(hashedPassword, plainPassword string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(plainPassword))
	return err == nil
}

func ValidRole(role string) bool {
	return role == RoleClient || role == RoleTrainer
}
