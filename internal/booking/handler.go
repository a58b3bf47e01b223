package booking

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"fitbook/internal/api"
	"fitbook/internal/logger"
	"fitbook/internal/trainer"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{
		service: service,
	}
}

// GetAvailableSlots godoc
// @Summary      Available slots for a trainer on a day
// @Description  Derives the hourly 04:00-22:00 grid from the trainer's availability and existing non-cancelled bookings. Pass clientId to also exclude the client's own bookings across trainers.
// @Tags         bookings
// @Produce      json
// @Param        trainerID  path      int     true   "Trainer ID"
// @Param        day        path      string  true   "Weekday name, matched case-insensitively"
// @Param        clientId   query     int     false  "Requesting client ID"
// @Success      200        {object}  SlotGrid
// @Failure      400        {object}  api.ErrorResponse
// @Failure      500        {object}  api.ErrorResponse
// @Router       /bookings/available-slots/{trainerID}/{day} [get]
func (h *Handler) GetAvailableSlots(c *gin.Context) {
	trainerID, err := strconv.Atoi(c.Param("trainerID"))
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Invalid trainer ID"})
		return
	}

	day := c.Param("day")

	clientID := 0
	if raw := c.Query("clientId"); raw != "" {
		clientID, err = strconv.Atoi(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Invalid client ID"})
			return
		}
	}

	grid, err := h.service.ComputeSlots(c.Request.Context(), trainerID, day, clientID)
	if err != nil {
		logger.Error("Failed to compute slots", "trainer_id", trainerID, "day", day, "error", err)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "An error occurred while fetching available slots"})
		return
	}

	c.JSON(http.StatusOK, grid)
}

// CreateBooking godoc
// @Summary      Create a booking
// @Description  Books an hourly session, records the simulated payment, and optionally a facility usage.
// @Tags         bookings
// @Accept       json
// @Produce      json
// @Param        request  body      CreateBookingRequest  true  "Booking payload"
// @Success      200      {object}  CreateBookingResponse
// @Failure      400      {object}  api.ErrorResponse
// @Failure      404      {object}  api.ErrorResponse
// @Failure      409      {object}  api.ErrorResponse
// @Failure      500      {object}  api.ErrorResponse
// @Router       /bookings [post]
func (h *Handler) CreateBooking(c *gin.Context) {
	var req CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Request body is required"})
		return
	}

	resp, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		var vErr *ValidationError
		switch {
		case errors.As(err, &vErr):
			c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: vErr.Msg})
		case errors.Is(err, ErrTrainerSlotTaken):
			c.JSON(http.StatusConflict, api.ErrorResponse{
				Error: fmt.Sprintf("Trainer is already booked at %s on %s. Please select a different time.", req.BookingTime, req.BookingDay),
			})
		case errors.Is(err, ErrClientSlotTaken):
			c.JSON(http.StatusConflict, api.ErrorResponse{
				Error: fmt.Sprintf("You already have a booking at %s on %s. Please select a different time.", req.BookingTime, req.BookingDay),
			})
		case errors.Is(err, trainer.ErrTrainerNotFound):
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "Trainer not found"})
		default:
			logger.Error("Failed to create booking", "error", err)
			c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "An error occurred while creating booking"})
		}
		return
	}

	c.JSON(http.StatusOK, resp)
}

// CancelBooking godoc
// @Summary      Cancel a booking
// @Description  Flips the booking the client owns to Cancelled. The row is kept and the payment is not refunded.
// @Tags         bookings
// @Accept       json
// @Produce      json
// @Param        bookingID  path      int                   true  "Booking ID"
// @Param        request    body      CancelBookingRequest  true  "Cancelling client"
// @Success      200        {object}  CancelBookingResponse
// @Failure      400        {object}  api.ErrorResponse
// @Failure      404        {object}  api.ErrorResponse
// @Failure      500        {object}  api.ErrorResponse
// @Router       /bookings/{bookingID}/cancel [put]
func (h *Handler) CancelBooking(c *gin.Context) {
	bookingID, err := strconv.Atoi(c.Param("bookingID"))
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Invalid booking ID"})
		return
	}

	var req CancelBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.ClientID <= 0 {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Client ID is required"})
		return
	}

	err = h.service.Cancel(c.Request.Context(), bookingID, req.ClientID)
	if err != nil {
		var vErr *ValidationError
		switch {
		case errors.As(err, &vErr):
			c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: vErr.Msg})
		case errors.Is(err, ErrBookingNotFound):
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "Booking not found or you don't have permission to cancel this booking"})
		case errors.Is(err, ErrAlreadyCancelled):
			c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "This booking has already been cancelled"})
		default:
			logger.Error("Failed to cancel booking", "booking_id", bookingID, "error", err)
			c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "An error occurred while cancelling booking"})
		}
		return
	}

	c.JSON(http.StatusOK, CancelBookingResponse{
		Success:   true,
		Message:   "Booking cancelled successfully",
		BookingID: bookingID,
	})
}

// GetTrainerSessions godoc
// @Summary      Trainer session listing
// @Tags         bookings
// @Produce      json
// @Param        trainerID  path      int  true  "Trainer ID"
// @Success      200        {array}   Booking
// @Failure      400        {object}  api.ErrorResponse
// @Failure      500        {object}  api.ErrorResponse
// @Router       /bookings/sessions/{trainerID} [get]
func (h *Handler) GetTrainerSessions(c *gin.Context) {
	trainerID, err := strconv.Atoi(c.Param("trainerID"))
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Invalid trainer ID"})
		return
	}

	sessions, err := h.service.TrainerSessions(c.Request.Context(), trainerID)
	if err != nil {
		logger.Error("Failed to fetch trainer sessions", "trainer_id", trainerID, "error", err)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "An error occurred while fetching sessions"})
		return
	}

	if sessions == nil {
		sessions = []Booking{}
	}

	c.JSON(http.StatusOK, sessions)
}

// GetClientSessions godoc
// @Summary      Client session listing
// @Description  Bookings of a client joined with trainer and payment info.
// @Tags         bookings
// @Produce      json
// @Param        clientID  path      int  true  "Client ID"
// @Success      200       {array}   ClientSession
// @Failure      400       {object}  api.ErrorResponse
// @Failure      500       {object}  api.ErrorResponse
// @Router       /bookings/client/{clientID} [get]
func (h *Handler) GetClientSessions(c *gin.Context) {
	clientID, err := strconv.Atoi(c.Param("clientID"))
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Invalid client ID"})
		return
	}

	sessions, err := h.service.ClientSessions(c.Request.Context(), clientID)
	if err != nil {
		logger.Error("Failed to fetch client sessions", "client_id", clientID, "error", err)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "An error occurred while fetching client sessions"})
		return
	}

	if sessions == nil {
		sessions = []ClientSession{}
	}

	c.JSON(http.StatusOK, sessions)
}
