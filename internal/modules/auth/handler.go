package auth

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"bookingapi/internal/pkg/response"
)

// Handler manages all HTTP interactions for authentication
type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(public *gin.RouterGroup) {
	authGroup := public.Group("/auth")
	{
		authGroup.POST("/login", h.Login)
	}
}

// Login exchanges a username and password for a bearer token.
// @Summary		Log in
// @Description	Returns a JWT valid for one hour. The token subject is the user id.
// @Tags		Auth
// @Param		request	body	LoginRequest	true	"username and password"
// @Success		200	{object}	LoginResponse
// @Failure		400	{object}	map[string]interface{} "Body is not JSON"
// @Failure		401	{object}	map[string]interface{} "Invalid credentials"
// @Router		/auth/login [POST]
func (h *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.InvalidBody(c, nil)
		return
	}

	token, err := h.service.Login(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, ErrInvalidCredentials) {
			response.Error(c, http.StatusUnauthorized, "Invalid credentials")
			return
		}
		_ = c.Error(err)
		return
	}

	response.JSON(c, http.StatusOK, LoginResponse{Token: token})
}
