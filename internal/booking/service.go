package booking

import (
	"context"
	"fmt"

	"fitbook/internal/availability"
	"fitbook/internal/email"
	"fitbook/internal/facility"
	"fitbook/internal/logger"
	"fitbook/internal/metrics"
	"fitbook/internal/trainer"
	"fitbook/internal/user"
)

// ValidationError marks a request rejected before any write. Handlers map it
// to a 400 with the message as-is.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string {
	return e.Msg
}

type Service interface {
	ComputeSlots(ctx context.Context, trainerID int, day string, clientID int) (*SlotGrid, error)
	Create(ctx context.Context, req CreateBookingRequest) (*CreateBookingResponse, error)
	Cancel(ctx context.Context, bookingID, clientID int) error
	TrainerSessions(ctx context.Context, trainerID int) ([]Booking, error)
	ClientSessions(ctx context.Context, clientID int) ([]ClientSession, error)
}

type service struct {
	repo             Repository
	availabilityRepo availability.Repository
	trainerRepo      trainer.Repository
	facilityRepo     facility.Repository
	userRepo         user.Repository
	emailService     *email.Service
}

func NewService(
	repo Repository,
	availabilityRepo availability.Repository,
	trainerRepo trainer.Repository,
	facilityRepo facility.Repository,
	userRepo user.Repository,
	emailService *email.Service,
) Service {
	return &service{
		repo:             repo,
		availabilityRepo: availabilityRepo,
		trainerRepo:      trainerRepo,
		facilityRepo:     facilityRepo,
		userRepo:         userRepo,
		emailService:     emailService,
	}
}

// ComputeSlots derives the bookable grid for (trainer, day). When clientID is
// positive, the client's own bookings across all trainers are folded into the
// booked set so a client cannot double-book themselves.
func (s *service) ComputeSlots(ctx context.Context, trainerID int, day string, clientID int) (*SlotGrid, error) {
	avail, err := s.availabilityRepo.GetByTrainer(ctx, trainerID)
	if err == availability.ErrNotSet {
		metrics.RecordSlotComputation(false)
		return &SlotGrid{
			Available: false,
			Message:   "Trainer has not set availability",
			TimeSlots: []Slot{},
		}, nil
	}
	if err != nil {
		return nil, err
	}

	days := SplitDays(avail.DaysAvailable)
	storedDay, ok := MatchDay(days, day)
	if !ok {
		metrics.RecordSlotComputation(false)
		return &SlotGrid{
			Available: false,
			Message:   fmt.Sprintf("Trainer is not available on %s", day),
			TimeSlots: []Slot{},
		}, nil
	}

	trainerTimes, err := s.repo.BookedTimesForTrainer(ctx, trainerID, storedDay)
	if err != nil {
		return nil, err
	}

	times := trainerTimes
	if clientID > 0 {
		clientTimes, err := s.repo.BookedTimesForClient(ctx, clientID, storedDay)
		if err != nil {
			return nil, err
		}
		times = append(times, clientTimes...)
	}

	booked, skipped := BookedSet(times)
	for _, raw := range skipped {
		logger.Error("Skipping unparseable booking time", "trainer_id", trainerID, "day", storedDay, "value", raw)
	}

	metrics.RecordSlotComputation(true)
	return &SlotGrid{
		Available: true,
		Day:       day,
		TimeSlots: BuildGrid(booked),
	}, nil
}

// Create validates the request, re-checks both conflict invariants at write
// time, records the simulated payment and the booking atomically, then runs
// the best-effort side effects (facility usage, confirmation email).
func (s *service) Create(ctx context.Context, req CreateBookingRequest) (*CreateBookingResponse, error) {
	if req.ClientID <= 0 {
		return nil, &ValidationError{Msg: "Invalid client ID"}
	}
	if req.TrainerID <= 0 {
		return nil, &ValidationError{Msg: "Invalid trainer ID"}
	}
	if req.BookingDay == "" {
		return nil, &ValidationError{Msg: "Booking day is required"}
	}
	if req.BookingTime == "" {
		return nil, &ValidationError{Msg: "Booking time is required"}
	}

	bookingTime, err := ParseBookingTime(req.BookingTime)
	if err != nil {
		return nil, &ValidationError{Msg: err.Error()}
	}

	t, err := s.trainerRepo.GetByID(ctx, req.TrainerID)
	if err != nil {
		return nil, err
	}

	// Flat fee: sessions are always one hour.
	totalFee := t.HourlyRate

	b, p, err := s.repo.CreateWithPayment(ctx, req.ClientID, req.TrainerID, req.BookingDay, bookingTime, totalFee)
	if err != nil {
		switch err {
		case ErrTrainerSlotTaken:
			metrics.RecordBookingConflict("trainer")
		case ErrClientSlotTaken:
			metrics.RecordBookingConflict("client")
		}
		return nil, err
	}

	metrics.RecordBookingCreated()
	logger.Info("Booking created",
		"booking_id", b.ID,
		"client_id", req.ClientID,
		"trainer_id", req.TrainerID,
		"day", req.BookingDay,
		"time", bookingTime,
	)

	s.recordFacilityUsage(ctx, req, b.ID, bookingTime)
	s.sendConfirmation(ctx, req, t.Name)

	return &CreateBookingResponse{
		Success:       true,
		Message:       "Booking created and payment processed successfully",
		BookingID:     b.ID,
		PaymentID:     p.ID,
		TotalFee:      totalFee,
		PaymentStatus: "Completed",
	}, nil
}

// recordFacilityUsage is strictly best-effort: any failure is logged and
// swallowed, the booking already succeeded.
func (s *service) recordFacilityUsage(ctx context.Context, req CreateBookingRequest, bookingID int, bookingTime string) {
	if req.FacilityID == nil || *req.FacilityID <= 0 {
		return
	}

	exists, err := s.facilityRepo.Exists(ctx, *req.FacilityID)
	if err != nil {
		logger.Error("Facility existence check failed", "facility_id", *req.FacilityID, "error", err)
		return
	}
	if !exists {
		logger.Info("Facility does not exist, skipping usage record", "facility_id", *req.FacilityID)
		return
	}

	_, err = s.facilityRepo.RecordUsage(ctx, *req.FacilityID, bookingID, req.TrainerID, bookingTime, AddHour(bookingTime))
	if err != nil {
		logger.Error("Could not create facility usage record", "booking_id", bookingID, "error", err)
	}
}

func (s *service) sendConfirmation(ctx context.Context, req CreateBookingRequest, trainerName string) {
	if s.emailService == nil {
		return
	}

	contact, err := s.userRepo.GetClientContact(ctx, req.ClientID)
	if err != nil {
		logger.Error("Could not resolve client contact for confirmation", "client_id", req.ClientID, "error", err)
		return
	}

	if err := s.emailService.SendBookingConfirmation(ctx, contact.Email, contact.Name, trainerName, req.BookingDay, req.BookingTime); err != nil {
		logger.Error("Could not queue booking confirmation", "client_id", req.ClientID, "error", err)
	}
}

// Cancel flips a booking the client owns to Cancelled. It never deletes the
// row and never touches the payment.
func (s *service) Cancel(ctx context.Context, bookingID, clientID int) error {
	if clientID <= 0 {
		return &ValidationError{Msg: "Client ID is required"}
	}

	b, err := s.repo.GetByIDForClient(ctx, bookingID, clientID)
	if err != nil {
		return err
	}

	if b.Status == StatusCancelled {
		return ErrAlreadyCancelled
	}

	if err := s.repo.CancelScheduled(ctx, bookingID, clientID); err != nil {
		return err
	}

	metrics.RecordBookingCancellation()
	logger.Info("Booking cancelled", "booking_id", bookingID, "client_id", clientID)

	if s.emailService != nil {
		if contact, err := s.userRepo.GetClientContact(ctx, clientID); err == nil {
			if err := s.emailService.SendCancellation(ctx, contact.Email, contact.Name, b.BookingDay, b.BookingTime); err != nil {
				logger.Error("Could not queue cancellation notice", "booking_id", bookingID, "error", err)
			}
		}
	}

	return nil
}

func (s *service) TrainerSessions(ctx context.Context, trainerID int) ([]Booking, error) {
	return s.repo.ListByTrainer(ctx, trainerID)
}

func (s *service) ClientSessions(ctx context.Context, clientID int) ([]ClientSession, error) {
	return s.repo.ListClientSessions(ctx, clientID)
}
