package facility

import (
	"net/http"

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

// ListFacilities godoc
// @Summary      List facilities
// @Tags         facilities
// @Produce      json
// @Success      200  {array}   Facility
// @Failure      500  {object}  api.ErrorResponse
// @Router       /facilities [get]
func (h *Handler) ListFacilities(c *gin.Context) {
	facilities, err := h.repo.List(c.Request.Context())
	if err != nil {
		logger.Error("Failed to fetch facilities", "error", err)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "An error occurred while fetching facilities"})
		return
	}

	if facilities == nil {
		facilities = []Facility{}
	}

	c.JSON(http.StatusOK, facilities)
}
