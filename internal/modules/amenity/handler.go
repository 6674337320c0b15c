package amenity

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"bookingapi/internal/pkg/response"
	"bookingapi/internal/pkg/validator"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(public, protected *gin.RouterGroup) {
	public.GET("/amenities", h.List)
	public.GET("/amenities/:id", h.Get)

	protected.POST("/amenities", h.Create)
	protected.PUT("/amenities/:id", h.Update)
	protected.DELETE("/amenities/:id", h.Delete)
}

func (h *Handler) List(c *gin.Context) {
	items, err := h.svc.List(c.Request.Context())
	if err != nil {
		_ = c.Error(err)
		return
	}
	response.JSON(c, http.StatusOK, items)
}

func (h *Handler) Create(c *gin.Context) {
	var req CreateAmenityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.InvalidBody(c, nil)
		return
	}
	if errs := validator.Validate(req); errs != nil {
		response.InvalidBody(c, errs)
		return
	}

	a, err := h.svc.Create(c.Request.Context(), req)
	if err != nil {
		_ = c.Error(err)
		return
	}
	response.JSON(c, http.StatusCreated, a)
}

func (h *Handler) Get(c *gin.Context) {
	a, err := h.svc.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.fail(c, err)
		return
	}
	response.JSON(c, http.StatusOK, a)
}

func (h *Handler) Update(c *gin.Context) {
	var req UpdateAmenityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.InvalidBody(c, nil)
		return
	}
	if errs := validator.Validate(req); errs != nil {
		response.InvalidBody(c, errs)
		return
	}

	a, err := h.svc.Update(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		h.fail(c, err)
		return
	}
	response.JSON(c, http.StatusOK, a)
}

func (h *Handler) Delete(c *gin.Context) {
	if err := h.svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		h.fail(c, err)
		return
	}
	response.NoContent(c)
}

func (h *Handler) fail(c *gin.Context, err error) {
	if errors.Is(err, ErrNotFound) {
		response.Error(c, http.StatusNotFound, "Amenity not found")
		return
	}
	_ = c.Error(err)
}
