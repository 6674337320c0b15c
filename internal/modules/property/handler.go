package property

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"bookingapi/internal/pkg/response"
	"bookingapi/internal/pkg/validator"
	"bookingapi/internal/repository"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(public, protected *gin.RouterGroup) {
	public.GET("/properties", h.List)
	public.GET("/properties/:id", h.Get)

	protected.POST("/properties", h.Create)
	protected.PUT("/properties/:id", h.Update)
	protected.DELETE("/properties/:id", h.Delete)
}

// List returns properties with amenities and reviews.
// @Summary		List properties
// @Description	All filters are optional and combine with AND.
// @Tags		Properties
// @Param		location		query	string	false	"part of the location"
// @Param		pricePerNight	query	number	false	"maximum price per night"
// @Param		amenities		query	string	false	"comma-separated amenity names, any of them"
// @Success		200	{array}		PropertyResponse
// @Failure		400	{object}	map[string]interface{} "pricePerNight is not a number"
// @Router		/properties [GET]
func (h *Handler) List(c *gin.Context) {
	filters := repository.PropertyFilters{
		Location:  c.Query("location"),
		Amenities: splitList(c.Query("amenities")),
	}
	if raw := c.Query("pricePerNight"); raw != "" {
		price, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			response.Error(c, http.StatusBadRequest, "Invalid pricePerNight")
			return
		}
		filters.MaxPrice = &price
	}

	props, err := h.svc.List(c.Request.Context(), filters)
	if err != nil {
		_ = c.Error(err)
		return
	}

	out := make([]PropertyResponse, 0, len(props))
	for i := range props {
		out = append(out, toResponse(&props[i]))
	}
	response.JSON(c, http.StatusOK, out)
}

// Create
// @Summary		Create a property
// @Tags		Properties
// @Security	BearerAuth
// @Param		request	body	CreatePropertyRequest	true	"property, amenity ids and image urls"
// @Success		201	{object}	PropertyDetailResponse
// @Failure		400	{object}	map[string]interface{} "invalid body or unknown host/amenity"
// @Failure		401	{object}	map[string]interface{}
// @Router		/properties [POST]
func (h *Handler) Create(c *gin.Context) {
	var req CreatePropertyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.InvalidBody(c, nil)
		return
	}
	if errs := validator.Validate(req); errs != nil {
		response.InvalidBody(c, errs)
		return
	}

	p, err := h.svc.Create(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, ErrInvalidReference) {
			response.Error(c, http.StatusBadRequest, "Referenced record does not exist")
			return
		}
		_ = c.Error(err)
		return
	}
	response.JSON(c, http.StatusCreated, toDetailResponse(p))
}

func (h *Handler) Get(c *gin.Context) {
	p, err := h.svc.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.fail(c, err)
		return
	}
	response.JSON(c, http.StatusOK, toDetailResponse(p))
}

func (h *Handler) Update(c *gin.Context) {
	var req UpdatePropertyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.InvalidBody(c, nil)
		return
	}
	if errs := validator.Validate(req); errs != nil {
		response.InvalidBody(c, errs)
		return
	}

	p, err := h.svc.Update(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		h.fail(c, err)
		return
	}
	response.JSON(c, http.StatusOK, toDetailResponse(p))
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
		response.Error(c, http.StatusNotFound, "Property not found")
		return
	}
	_ = c.Error(err)
}

// splitList turns "Wifi, Pool,," into [Wifi Pool].
func splitList(raw string) []string {
	if raw == "" {
		return nil
	}
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
