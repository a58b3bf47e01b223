package user

import (
	"net/http"

	"fitbook/internal/api"
	"fitbook/internal/logger"
	"fitbook/internal/trainer"

	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"
)

type Handler struct {
	service Service
}

func NewHandler(db *sqlx.DB) *Handler {
	return &Handler{
		service: NewService(NewRepository(db), trainer.NewRepository(db)),
	}
}

// Register godoc
// @Summary      Register new user
// @Description  Creates an account plus the client or trainer profile. No token is issued; the response carries the plain IDs.
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request  body      RegisterRequest  true  "Registration payload"
// @Success      201      {object}  AuthResponse
// @Failure      400      {object}  api.ValidationErrorResponse
// @Failure      409      {object}  api.ErrorResponse
// @Failure      500      {object}  api.ErrorResponse
// @Router       /auth/register [post]
func (h *Handler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.NewValidationErrorResponse(err))
		return
	}

	resp, err := h.service.Register(c.Request.Context(), req)
	if err != nil {
		switch err {
		case ErrInvalidRole:
			c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		case ErrEmailExists:
			c.JSON(http.StatusConflict, api.ErrorResponse{Error: "Email already registered"})
		default:
			logger.Error("Failed to register user", "error", err)
			c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Failed to create user"})
		}
		return
	}

	c.JSON(http.StatusCreated, resp)
}

// Login godoc
// @Summary      Log in
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request  body      LoginRequest  true  "Credentials"
// @Success      200      {object}  AuthResponse
// @Failure      400      {object}  api.ValidationErrorResponse
// @Failure      401      {object}  api.ErrorResponse
// @Failure      500      {object}  api.ErrorResponse
// @Router       /auth/login [post]
func (h *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.NewValidationErrorResponse(err))
		return
	}

	resp, err := h.service.Login(c.Request.Context(), req)
	if err != nil {
		if err == ErrInvalidCredentials {
			c.JSON(http.StatusUnauthorized, api.ErrorResponse{Error: "Invalid email or password"})
			return
		}
		logger.Error("Failed to log in user", "error", err)
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "Login failed"})
		return
	}

	c.JSON(http.StatusOK, resp)
}
