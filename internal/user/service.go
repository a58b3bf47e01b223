package user

import (
	"context"
	"errors"
	"strings"

	"fitbook/internal/auth"
	"fitbook/internal/logger"
	"fitbook/internal/trainer"
)

var (
	ErrEmailExists        = errors.New("email already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidRole        = errors.New("role must be Client or Trainer")
)

type Service interface {
	Register(ctx context.Context, req RegisterRequest) (*AuthResponse, error)
	Login(ctx context.Context, req LoginRequest) (*AuthResponse, error)
}

type service struct {
	repo        Repository
	trainerRepo trainer.Repository
}

func NewService(repo Repository, trainerRepo trainer.Repository) Service {
	return &service{
		repo:        repo,
		trainerRepo: trainerRepo,
	}
}

// Register creates the account row plus the role-specific profile row, and
// returns the identity object the client keeps for subsequent requests.
func (s *service) Register(ctx context.Context, req RegisterRequest) (*AuthResponse, error) {
	if !auth.ValidRole(req.Role) {
		return nil, ErrInvalidRole
	}

	exists, err := s.repo.EmailExists(ctx, req.Email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrEmailExists
	}

	passwordHash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	u, err := s.repo.Create(ctx, req.Email, passwordHash, req.Role)
	if err != nil {
		return nil, err
	}

	resp := &AuthResponse{
		Success: true,
		User:    u,
		Message: "Registration successful",
	}

	switch req.Role {
	case auth.RoleClient:
		clientID, err := s.repo.CreateClientProfile(ctx, u.ID, req.Name, req.Phone, req.CardNumber)
		if err != nil {
			return nil, err
		}
		resp.ClientID = &clientID
	case auth.RoleTrainer:
		var phone *string
		if req.Phone != "" {
			phone = &req.Phone
		}
		var certs *string
		if trimmed := strings.TrimSpace(req.Certifications); trimmed != "" {
			certs = &trimmed
			// Keep the catalog current, but never fail a registration over it.
			if err := s.trainerRepo.EnsureCertification(ctx, trimmed); err != nil {
				logger.Warn("Failed to record certification in catalog", "certification", trimmed, "error", err)
			}
		}
		t, err := s.trainerRepo.Create(ctx, u.ID, req.Name, phone, req.HourlyRate, certs)
		if err != nil {
			return nil, err
		}
		resp.TrainerID = &t.ID
	}

	return resp, nil
}

func (s *service) Login(ctx context.Context, req LoginRequest) (*AuthResponse, error) {
	u, err := s.repo.FindByEmail(ctx, req.Email)
	if err != nil {
		return nil, ErrInvalidCredentials
	}

	if !auth.CheckPassword(u.PasswordHash, req.Password) {
		return nil, ErrInvalidCredentials
	}

	clientID, err := s.repo.ClientIDForUser(ctx, u.ID)
	if err != nil {
		return nil, err
	}
	trainerID, err := s.repo.TrainerIDForUser(ctx, u.ID)
	if err != nil {
		return nil, err
	}

	return &AuthResponse{
		Success:   true,
		User:      u,
		ClientID:  clientID,
		TrainerID: trainerID,
		Message:   "Login successful",
	}, nil
}
