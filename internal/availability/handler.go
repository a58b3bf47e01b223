package availability

import (
	"net/http"
	"strconv"

	"fitbook/internal/api"
	"fitbook/internal/logger"
	"fitbook/internal/metrics"

	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"
)

type Handler struct {
	repo Repository
}

func NewHandler(db *sqlx.DB) *Handler {
	return &Handler{
		repo: NewRepository(db),
	}
}

// SetAvailability godoc
// @Summary      Set trainer availability
// @Description  Creates or overwrites the trainer's available weekdays.
// @Tags         availability
// @Accept       json
// @Produce      json
// @Param        request  body      SetAvailabilityRequest  true  "Availability payload"
// @Success      200      {object}  SetAvailabilityResponse
// @Failure      400      {object}  api.ValidationErrorResponse
// @Failure      500      {object}  api.ErrorResponse
// @Router       /availability [post]
func (h *Handler) SetAvailability(c *gin.Context) {
	var req SetAvailabilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.NewValidationErrorResponse(err))
		return
	}

	action, err := h.repo.Set(c.Request.Context(), req.TrainerID, req.DaysAvailable)
	if err != nil {
		logger.Error("Failed to set availability", "trainer_id", req.TrainerID, "error", err)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "An error occurred while setting availability"})
		return
	}

	metrics.RecordAvailabilityUpdate(action)

	message := "Availability added successfully"
	if action == ActionUpdated {
		message = "Availability updated successfully"
	}

	c.JSON(http.StatusOK, SetAvailabilityResponse{
		Success: true,
		Message: message,
		Action:  action,
	})
}

// GetAvailability godoc
// @Summary      Get trainer availability
// @Description  Returns the trainer's availability entries (0 or 1).
// @Tags         availability
// @Produce      json
// @Param        trainerID  path      int  true  "Trainer ID"
// @Success      200        {array}   TrainerAvailability
// @Failure      400        {object}  api.ErrorResponse
// @Failure      500        {object}  api.ErrorResponse
// @Router       /availability/{trainerID} [get]
func (h *Handler) GetAvailability(c *gin.Context) {
	trainerID, err := strconv.Atoi(c.Param("trainerID"))
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Invalid trainer ID"})
		return
	}

	list, err := h.repo.ListByTrainer(c.Request.Context(), trainerID)
	if err != nil {
		logger.Error("Failed to fetch availability", "trainer_id", trainerID, "error", err)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "An error occurred while fetching availability"})
		return
	}

	if list == nil {
		list = []TrainerAvailability{}
	}

	c.JSON(http.StatusOK, list)
}
