package trainer

import (
	"net/http"
	"strconv"

	"fitbook/internal/api"
	"fitbook/internal/logger"

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

// ListTrainers godoc
// @Summary      Search trainers
// @Description  Lists trainers, optionally filtered by specialty and maximum hourly rate.
// @Tags         trainers
// @Produce      json
// @Param        specialty  query     string  false  "Certification keyword"
// @Param        maxRate    query     number  false  "Maximum hourly rate"
// @Success      200        {array}   Trainer
// @Failure      400        {object}  api.ErrorResponse
// @Failure      500        {object}  api.ErrorResponse
// @Router       /trainers [get]
func (h *Handler) ListTrainers(c *gin.Context) {
	specialty := c.Query("specialty")

	var maxRate *float64
	if raw := c.Query("maxRate"); raw != "" {
		parsed, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Invalid maxRate value"})
			return
		}
		maxRate = &parsed
	}

	trainers, err := h.repo.Search(c.Request.Context(), specialty, maxRate)
	if err != nil {
		logger.Error("Failed to search trainers", "error", err)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "An error occurred while fetching trainers"})
		return
	}

	if trainers == nil {
		trainers = []Trainer{}
	}

	c.JSON(http.StatusOK, trainers)
}

// GetTrainer godoc
// @Summary      Get trainer
// @Tags         trainers
// @Produce      json
// @Param        trainerID  path      int  true  "Trainer ID"
// @Success      200        {object}  Trainer
// @Failure      400        {object}  api.ErrorResponse
// @Failure      404        {object}  api.ErrorResponse
// @Failure      500        {object}  api.ErrorResponse
// @Router       /trainers/{trainerID} [get]
func (h *Handler) GetTrainer(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("trainerID"))
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "Invalid trainer ID"})
		return
	}

	t, err := h.repo.GetByID(c.Request.Context(), id)
	if err != nil {
		if err == ErrTrainerNotFound {
			c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "Trainer not found"})
			return
		}
		logger.Error("Failed to fetch trainer", "trainer_id", id, "error", err)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "An error occurred while fetching trainer"})
		return
	}

	c.JSON(http.StatusOK, t)
}

// ListCertifications godoc
// @Summary      List certifications
// @Description  Returns the catalog of known trainer certifications.
// @Tags         trainers
// @Produce      json
// @Success      200  {array}   string
// @Failure      500  {object}  api.ErrorResponse
// @Router       /certifications [get]
func (h *Handler) ListCertifications(c *gin.Context) {
	certs, err := h.repo.ListCertifications(c.Request.Context())
	if err != nil {
		logger.Error("Failed to fetch certifications", "error", err)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "An error occurred while fetching certifications"})
		return
	}

	if certs == nil {
		certs = []string{}
	}

	c.JSON(http.StatusOK, certs)
}
