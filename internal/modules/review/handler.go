package review

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
	public.GET("/reviews", h.List)
	public.GET("/reviews/:id", h.Get)

	protected.POST("/reviews", h.Create)
	protected.PUT("/reviews/:id", h.Update)
	protected.DELETE("/reviews/:id", h.Delete)
}

// List returns every review with its user and property.
// @Summary		List reviews
// @Tags		Reviews
// @Success		200	{array}	domain.Review
// @Router		/reviews [GET]
func (h *Handler) List(c *gin.Context) {
	items, err := h.svc.List(c.Request.Context())
	if err != nil {
		_ = c.Error(err)
		return
	}
	response.JSON(c, http.StatusOK, items)
}

// Create
// @Summary		Write a review
// @Tags		Reviews
// @Security	BearerAuth
// @Param		request	body	CreateReviewRequest	true	"userId, propertyId, rating (0-5), comment"
// @Success		201	{object}	domain.Review
// @Failure		400	{object}	map[string]interface{} "invalid body or unknown user/property"
// @Failure		401	{object}	map[string]interface{}
// @Router		/reviews [POST]
func (h *Handler) Create(c *gin.Context) {
	var req CreateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.InvalidBody(c, nil)
		return
	}
	if errs := validator.Validate(req); errs != nil {
		response.InvalidBody(c, errs)
		return
	}

	rv, err := h.svc.Create(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, ErrInvalidReference) {
			response.Error(c, http.StatusBadRequest, "Referenced record does not exist")
			return
		}
		_ = c.Error(err)
		return
	}
	response.JSON(c, http.StatusCreated, rv)
}

func (h *Handler) Get(c *gin.Context) {
	rv, err := h.svc.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.fail(c, err)
		return
	}
	response.JSON(c, http.StatusOK, rv)
}

func (h *Handler) Update(c *gin.Context) {
	var req UpdateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.InvalidBody(c, nil)
		return
	}
	if errs := validator.Validate(req); errs != nil {
		response.InvalidBody(c, errs)
		return
	}

	rv, err := h.svc.Update(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		h.fail(c, err)
		return
	}
	response.JSON(c, http.StatusOK, rv)
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
		response.Error(c, http.StatusNotFound, "Review not found")
		return
	}
	_ = c.Error(err)
}
