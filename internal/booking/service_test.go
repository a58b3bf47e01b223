package booking

import (
	"context"
	"errors"
	"os"
	"testing"

	"fitbook/internal/availability"
	"fitbook/internal/facility"
	"fitbook/internal/logger"
	"fitbook/internal/trainer"
	"fitbook/internal/user"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	logger.Init()

	code := m.Run()
	os.Exit(code)
}

// Mock repositories
type MockBookingRepo struct{ mock.Mock }
type MockAvailabilityRepo struct{ mock.Mock }
type MockTrainerRepo struct{ mock.Mock }
type MockFacilityRepo struct{ mock.Mock }
type MockUserRepo struct{ mock.Mock }

func (m *MockBookingRepo) BookedTimesForTrainer(ctx context.Context, trainerID int, day string) ([]string, error) {
	args := m.Called(ctx, trainerID, day)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockBookingRepo) BookedTimesForClient(ctx context.Context, clientID int, day string) ([]string, error) {
	args := m.Called(ctx, clientID, day)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockBookingRepo) CreateWithPayment(ctx context.Context, clientID, trainerID int, day, bookingTime string, fee float64) (*Booking, *Payment, error) {
	args := m.Called(ctx, clientID, trainerID, day, bookingTime, fee)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	return args.Get(0).(*Booking), args.Get(1).(*Payment), args.Error(2)
}

func (m *MockBookingRepo) GetByIDForClient(ctx context.Context, bookingID, clientID int) (*Booking, error) {
	args := m.Called(ctx, bookingID, clientID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Booking), args.Error(1)
}

func (m *MockBookingRepo) CancelScheduled(ctx context.Context, bookingID, clientID int) error {
	return m.Called(ctx, bookingID, clientID).Error(0)
}

func (m *MockBookingRepo) ListByTrainer(ctx context.Context, trainerID int) ([]Booking, error) {
	args := m.Called(ctx, trainerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]Booking), args.Error(1)
}

func (m *MockBookingRepo) ListClientSessions(ctx context.Context, clientID int) ([]ClientSession, error) {
	args := m.Called(ctx, clientID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]ClientSession), args.Error(1)
}

func (m *MockAvailabilityRepo) Set(ctx context.Context, trainerID int, daysCsv string) (string, error) {
	args := m.Called(ctx, trainerID, daysCsv)
	return args.String(0), args.Error(1)
}

func (m *MockAvailabilityRepo) GetByTrainer(ctx context.Context, trainerID int) (*availability.TrainerAvailability, error) {
	args := m.Called(ctx, trainerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*availability.TrainerAvailability), args.Error(1)
}

func (m *MockAvailabilityRepo) ListByTrainer(ctx context.Context, trainerID int) ([]availability.TrainerAvailability, error) {
	args := m.Called(ctx, trainerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]availability.TrainerAvailability), args.Error(1)
}

func (m *MockTrainerRepo) Search(ctx context.Context, specialty string, maxRate *float64) ([]trainer.Trainer, error) {
	args := m.Called(ctx, specialty, maxRate)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]trainer.Trainer), args.Error(1)
}

func (m *MockTrainerRepo) GetByID(ctx context.Context, id int) (*trainer.Trainer, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*trainer.Trainer), args.Error(1)
}

func (m *MockTrainerRepo) Create(ctx context.Context, userID int, name string, phone *string, hourlyRate float64, certifications *string) (*trainer.Trainer, error) {
	args := m.Called(ctx, userID, name, phone, hourlyRate, certifications)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*trainer.Trainer), args.Error(1)
}

func (m *MockTrainerRepo) ListCertifications(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockTrainerRepo) EnsureCertification(ctx context.Context, name string) error {
	args := m.Called(ctx, name)
	return args.Error(0)
}

func (m *MockFacilityRepo) List(ctx context.Context) ([]facility.Facility, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]facility.Facility), args.Error(1)
}

func (m *MockFacilityRepo) Exists(ctx context.Context, id int) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *MockFacilityRepo) RecordUsage(ctx context.Context, facilityID, bookingID, trainerID int, startTime, endTime string) (*facility.Usage, error) {
	args := m.Called(ctx, facilityID, bookingID, trainerID, startTime, endTime)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*facility.Usage), args.Error(1)
}

func (m *MockUserRepo) EmailExists(ctx context.Context, email string) (bool, error) {
	args := m.Called(ctx, email)
	return args.Bool(0), args.Error(1)
}

func (m *MockUserRepo) Create(ctx context.Context, email, passwordHash, role string) (*user.User, error) {
	args := m.Called(ctx, email, passwordHash, role)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*user.User), args.Error(1)
}

func (m *MockUserRepo) FindByEmail(ctx context.Context, email string) (*user.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*user.User), args.Error(1)
}

func (m *MockUserRepo) CreateClientProfile(ctx context.Context, userID int, name, phone, cardNumber string) (int, error) {
	args := m.Called(ctx, userID, name, phone, cardNumber)
	return args.Int(0), args.Error(1)
}

func (m *MockUserRepo) ClientIDForUser(ctx context.Context, userID int) (*int, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*int), args.Error(1)
}

func (m *MockUserRepo) TrainerIDForUser(ctx context.Context, userID int) (*int, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*int), args.Error(1)
}

func (m *MockUserRepo) GetClientContact(ctx context.Context, clientID int) (*user.ClientContact, error) {
	args := m.Called(ctx, clientID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*user.ClientContact), args.Error(1)
}

type serviceMocks struct {
	bookingRepo  *MockBookingRepo
	availRepo    *MockAvailabilityRepo
	trainerRepo  *MockTrainerRepo
	facilityRepo *MockFacilityRepo
	userRepo     *MockUserRepo
}

func newTestService() (Service, *serviceMocks) {
	m := &serviceMocks{
		bookingRepo:  new(MockBookingRepo),
		availRepo:    new(MockAvailabilityRepo),
		trainerRepo:  new(MockTrainerRepo),
		facilityRepo: new(MockFacilityRepo),
		userRepo:     new(MockUserRepo),
	}
	svc := NewService(m.bookingRepo, m.availRepo, m.trainerRepo, m.facilityRepo, m.userRepo, nil)
	return svc, m
}

func TestComputeSlots_NoAvailability(t *testing.T) {
	svc, m := newTestService()
	ctx := context.Background()

	m.availRepo.On("GetByTrainer", ctx, 5).Return(nil, availability.ErrNotSet)

	grid, err := svc.ComputeSlots(ctx, 5, "Monday", 0)
	require.NoError(t, err)
	assert.False(t, grid.Available)
	assert.Equal(t, "Trainer has not set availability", grid.Message)
	assert.Empty(t, grid.TimeSlots)
}

func TestComputeSlots_DayNotAvailable(t *testing.T) {
	svc, m := newTestService()
	ctx := context.Background()

	m.availRepo.On("GetByTrainer", ctx, 5).Return(&availability.TrainerAvailability{
		ID: 1, TrainerID: 5, DaysAvailable: "Monday, Wednesday",
	}, nil)

	grid, err := svc.ComputeSlots(ctx, 5, "Tuesday", 0)
	require.NoError(t, err)
	assert.False(t, grid.Available)
	assert.Equal(t, "Trainer is not available on Tuesday", grid.Message)
	assert.Empty(t, grid.TimeSlots)
}

func TestComputeSlots_CaseInsensitiveDayMatch(t *testing.T) {
	svc, m := newTestService()
	ctx := context.Background()

	m.availRepo.On("GetByTrainer", ctx, 5).Return(&availability.TrainerAvailability{
		ID: 1, TrainerID: 5, DaysAvailable: "Monday, Wednesday",
	}, nil)
	// The ledger query uses the stored casing, not the requested one.
	m.bookingRepo.On("BookedTimesForTrainer", ctx, 5, "Monday").Return([]string{}, nil)

	grid, err := svc.ComputeSlots(ctx, 5, "monday", 0)
	require.NoError(t, err)
	assert.True(t, grid.Available)
	assert.Equal(t, "monday", grid.Day)
	require.Len(t, grid.TimeSlots, 19)
	for _, s := range grid.TimeSlots {
		assert.True(t, s.IsAvailable)
	}
	m.bookingRepo.AssertExpectations(t)
}

func TestComputeSlots_TrainerBookingsMarked(t *testing.T) {
	svc, m := newTestService()
	ctx := context.Background()

	m.availRepo.On("GetByTrainer", ctx, 5).Return(&availability.TrainerAvailability{
		ID: 1, TrainerID: 5, DaysAvailable: "Monday",
	}, nil)
	m.bookingRepo.On("BookedTimesForTrainer", ctx, 5, "Monday").Return([]string{"14:00:00", "bogus"}, nil)

	grid, err := svc.ComputeSlots(ctx, 5, "Monday", 0)
	require.NoError(t, err)
	require.True(t, grid.Available)

	for _, s := range grid.TimeSlots {
		if s.Time == "14:00" {
			assert.True(t, s.IsBooked)
		} else {
			assert.False(t, s.IsBooked, "slot %s", s.Time)
		}
	}
}

func TestComputeSlots_ClientBookingsUnioned(t *testing.T) {
	svc, m := newTestService()
	ctx := context.Background()

	m.availRepo.On("GetByTrainer", ctx, 5).Return(&availability.TrainerAvailability{
		ID: 1, TrainerID: 5, DaysAvailable: "Monday",
	}, nil)
	m.bookingRepo.On("BookedTimesForTrainer", ctx, 5, "Monday").Return([]string{"14:00:00"}, nil)
	// The client has a 9 AM session with a different trainer the same day.
	m.bookingRepo.On("BookedTimesForClient", ctx, 1, "Monday").Return([]string{"09:00:00"}, nil)

	grid, err := svc.ComputeSlots(ctx, 5, "Monday", 1)
	require.NoError(t, err)

	booked := map[string]bool{}
	for _, s := range grid.TimeSlots {
		if s.IsBooked {
			booked[s.Time] = true
		}
	}
	assert.Equal(t, map[string]bool{"14:00": true, "09:00": true}, booked)
}

func TestCreate_Validation(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	cases := []struct {
		name string
		req  CreateBookingRequest
		want string
	}{
		{"missing client", CreateBookingRequest{TrainerID: 5, BookingDay: "Monday", BookingTime: "14:00"}, "Invalid client ID"},
		{"missing trainer", CreateBookingRequest{ClientID: 1, BookingDay: "Monday", BookingTime: "14:00"}, "Invalid trainer ID"},
		{"missing day", CreateBookingRequest{ClientID: 1, TrainerID: 5, BookingTime: "14:00"}, "Booking day is required"},
		{"missing time", CreateBookingRequest{ClientID: 1, TrainerID: 5, BookingDay: "Monday"}, "Booking time is required"},
		{"bad time", CreateBookingRequest{ClientID: 1, TrainerID: 5, BookingDay: "Monday", BookingTime: "noon"}, "Invalid booking time"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.Create(ctx, tc.req)
			var vErr *ValidationError
			require.ErrorAs(t, err, &vErr)
			assert.Contains(t, vErr.Msg, tc.want)
		})
	}
}

func TestCreate_TrainerNotFound(t *testing.T) {
	svc, m := newTestService()
	ctx := context.Background()

	m.trainerRepo.On("GetByID", ctx, 5).Return(nil, trainer.ErrTrainerNotFound)

	_, err := svc.Create(ctx, CreateBookingRequest{
		ClientID: 1, TrainerID: 5, BookingDay: "Monday", BookingTime: "14:00",
	})
	assert.ErrorIs(t, err, trainer.ErrTrainerNotFound)
}

func TestCreate_TrainerConflict(t *testing.T) {
	svc, m := newTestService()
	ctx := context.Background()

	m.trainerRepo.On("GetByID", ctx, 5).Return(&trainer.Trainer{ID: 5, Name: "Alex Smith", HourlyRate: 65}, nil)
	m.bookingRepo.On("CreateWithPayment", ctx, 2, 5, "Monday", "14:00:00", 65.0).
		Return(nil, nil, ErrTrainerSlotTaken)

	_, err := svc.Create(ctx, CreateBookingRequest{
		ClientID: 2, TrainerID: 5, BookingDay: "Monday", BookingTime: "14:00:00",
	})
	assert.ErrorIs(t, err, ErrTrainerSlotTaken)
}

func TestCreate_Success(t *testing.T) {
	svc, m := newTestService()
	ctx := context.Background()

	m.trainerRepo.On("GetByID", ctx, 5).Return(&trainer.Trainer{ID: 5, Name: "Alex Smith", HourlyRate: 65}, nil)
	m.bookingRepo.On("CreateWithPayment", ctx, 1, 5, "Monday", "14:00:00", 65.0).
		Return(&Booking{ID: 12, ClientID: 1, TrainerID: 5, PaymentID: 8}, &Payment{ID: 8, Amount: 65}, nil)

	resp, err := svc.Create(ctx, CreateBookingRequest{
		ClientID: 1, TrainerID: 5, BookingDay: "Monday", BookingTime: "14:00",
	})
	require.NoError(t, err)
	assert.True(t, resp.Success)
	assert.Equal(t, 12, resp.BookingID)
	assert.Equal(t, 8, resp.PaymentID)
	assert.Equal(t, 65.0, resp.TotalFee)
	assert.Equal(t, "Completed", resp.PaymentStatus)
}

func TestCreate_NormalizesShortTimeForm(t *testing.T) {
	svc, m := newTestService()
	ctx := context.Background()

	m.trainerRepo.On("GetByID", ctx, 5).Return(&trainer.Trainer{ID: 5, HourlyRate: 50}, nil)
	// "14:00" must reach the ledger as the canonical "14:00:00" so exact-match
	// conflict checks treat both request forms identically.
	m.bookingRepo.On("CreateWithPayment", ctx, 1, 5, "Monday", "14:00:00", 50.0).
		Return(&Booking{ID: 1, PaymentID: 1}, &Payment{ID: 1, Amount: 50}, nil)

	_, err := svc.Create(ctx, CreateBookingRequest{
		ClientID: 1, TrainerID: 5, BookingDay: "Monday", BookingTime: "14:00",
	})
	require.NoError(t, err)
	m.bookingRepo.AssertExpectations(t)
}

func TestCreate_FacilityFailureSwallowed(t *testing.T) {
	svc, m := newTestService()
	ctx := context.Background()
	facilityID := 3

	m.trainerRepo.On("GetByID", ctx, 5).Return(&trainer.Trainer{ID: 5, HourlyRate: 65}, nil)
	m.bookingRepo.On("CreateWithPayment", ctx, 1, 5, "Monday", "14:00:00", 65.0).
		Return(&Booking{ID: 12, PaymentID: 8}, &Payment{ID: 8, Amount: 65}, nil)
	m.facilityRepo.On("Exists", ctx, 3).Return(true, nil)
	m.facilityRepo.On("RecordUsage", ctx, 3, 12, 5, "14:00:00", "15:00:00").
		Return(nil, errors.New("facility_usage insert failed"))

	resp, err := svc.Create(ctx, CreateBookingRequest{
		ClientID: 1, TrainerID: 5, BookingDay: "Monday", BookingTime: "14:00", FacilityID: &facilityID,
	})
	require.NoError(t, err)
	assert.True(t, resp.Success)
	m.facilityRepo.AssertExpectations(t)
}

func TestCreate_NonexistentFacilitySkipped(t *testing.T) {
	svc, m := newTestService()
	ctx := context.Background()
	facilityID := 99

	m.trainerRepo.On("GetByID", ctx, 5).Return(&trainer.Trainer{ID: 5, HourlyRate: 65}, nil)
	m.bookingRepo.On("CreateWithPayment", ctx, 1, 5, "Monday", "14:00:00", 65.0).
		Return(&Booking{ID: 12, PaymentID: 8}, &Payment{ID: 8, Amount: 65}, nil)
	m.facilityRepo.On("Exists", ctx, 99).Return(false, nil)

	resp, err := svc.Create(ctx, CreateBookingRequest{
		ClientID: 1, TrainerID: 5, BookingDay: "Monday", BookingTime: "14:00", FacilityID: &facilityID,
	})
	require.NoError(t, err)
	assert.True(t, resp.Success)
	m.facilityRepo.AssertNotCalled(t, "RecordUsage", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestCancel_OwnershipMismatch(t *testing.T) {
	svc, m := newTestService()
	ctx := context.Background()

	m.bookingRepo.On("GetByIDForClient", ctx, 12, 2).Return(nil, ErrBookingNotFound)

	err := svc.Cancel(ctx, 12, 2)
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestCancel_AlreadyCancelled(t *testing.T) {
	svc, m := newTestService()
	ctx := context.Background()

	m.bookingRepo.On("GetByIDForClient", ctx, 12, 1).Return(&Booking{
		ID: 12, ClientID: 1, Status: StatusCancelled,
	}, nil)

	err := svc.Cancel(ctx, 12, 1)
	assert.ErrorIs(t, err, ErrAlreadyCancelled)
	m.bookingRepo.AssertNotCalled(t, "CancelScheduled", mock.Anything, mock.Anything, mock.Anything)
}

func TestCancel_Success(t *testing.T) {
	svc, m := newTestService()
	ctx := context.Background()

	m.bookingRepo.On("GetByIDForClient", ctx, 12, 1).Return(&Booking{
		ID: 12, ClientID: 1, Status: StatusScheduled, BookingDay: "Monday", BookingTime: "14:00:00",
	}, nil)
	m.bookingRepo.On("CancelScheduled", ctx, 12, 1).Return(nil)

	err := svc.Cancel(ctx, 12, 1)
	require.NoError(t, err)
	m.bookingRepo.AssertExpectations(t)
}
