package booking

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"bookingapi/internal/pkg/response"
	"bookingapi/internal/pkg/validator"
	"bookingapi/internal/repository"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(public, protected *gin.RouterGroup) {
	bookings := public.Group("/bookings")
	{
		bookings.GET("", h.List)
		bookings.GET("/:id", h.Get)
	}

	mutations := protected.Group("/bookings")
	{
		mutations.POST("", h.Create)
		mutations.PUT("/:id", h.Update)
		mutations.DELETE("/:id", h.Delete)
	}
}

// List
// @Summary		List bookings
// @Tags		Bookings
// @Param		userId	query	string	false	"only bookings of this user"
// @Success		200	{array}	domain.Booking
// @Router		/bookings [GET]
func (h *Handler) List(c *gin.Context) {
	items, err := h.service.List(c.Request.Context(), repository.BookingFilters{UserID: c.Query("userId")})
	if err != nil {
		_ = c.Error(err)
		return
	}
	response.JSON(c, http.StatusOK, items)
}

// Create
// @Summary		Create a booking
// @Tags		Bookings
// @Security	BearerAuth
// @Param		request	body	CreateBookingRequest	true	"booking"
// @Success		201	{object}	domain.Booking
// @Failure		400	{object}	map[string]interface{} "invalid body or unknown user/property"
// @Failure		401	{object}	map[string]interface{}
// @Router		/bookings [POST]
func (h *Handler) Create(c *gin.Context) {
	var req CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.InvalidBody(c, nil)
		return
	}
	if errs := validator.Validate(req); errs != nil {
		response.InvalidBody(c, errs)
		return
	}

	b, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, ErrInvalidReference) {
			response.Error(c, http.StatusBadRequest, "Referenced record does not exist")
			return
		}
		_ = c.Error(err)
		return
	}
	response.JSON(c, http.StatusCreated, b)
}

func (h *Handler) Get(c *gin.Context) {
	b, err := h.service.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.fail(c, err)
		return
	}
	response.JSON(c, http.StatusOK, b)
}

func (h *Handler) Update(c *gin.Context) {
	var req UpdateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.InvalidBody(c, nil)
		return
	}
	if errs := validator.Validate(req); errs != nil {
		response.InvalidBody(c, errs)
		return
	}

	b, err := h.service.Update(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		if errors.Is(err, ErrInvalidDates) {
			response.Error(c, http.StatusBadRequest, "checkoutDate must be after checkinDate")
			return
		}
		h.fail(c, err)
		return
	}
	response.JSON(c, http.StatusOK, b)
}

func (h *Handler) Delete(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), c.Param("id")); err != nil {
		h.fail(c, err)
		return
	}
	response.NoContent(c)
}

func (h *Handler) fail(c *gin.Context, err error) {
	if errors.Is(err, ErrNotFound) {
		response.Error(c, http.StatusNotFound, "Booking not found")
		return
	}
	_ = c.Error(err)
}
