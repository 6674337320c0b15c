package host

import (
	"errors"
	"net/http"

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
	public.GET("/hosts", h.List)
	public.GET("/hosts/:id", h.Get)

	protected.POST("/hosts", h.Create)
	protected.PUT("/hosts/:id", h.Update)
	protected.DELETE("/hosts/:id", h.Delete)
}

// List returns hosts with their listings.
// @Summary		List hosts
// @Tags		Hosts
// @Param		name	query	string	false	"part of the host name"
// @Success		200	{array}	HostResponse
// @Router		/hosts [GET]
func (h *Handler) List(c *gin.Context) {
	hosts, err := h.svc.List(c.Request.Context(), repository.HostFilters{Name: c.Query("name")})
	if err != nil {
		_ = c.Error(err)
		return
	}

	out := make([]HostResponse, 0, len(hosts))
	for i := range hosts {
		out = append(out, toResponse(&hosts[i]))
	}
	response.JSON(c, http.StatusOK, out)
}

func (h *Handler) Create(c *gin.Context) {
	var req CreateHostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.InvalidBody(c, nil)
		return
	}
	if errs := validator.Validate(req); errs != nil {
		response.InvalidBody(c, errs)
		return
	}

	host, err := h.svc.Create(c.Request.Context(), req)
	if err != nil {
		_ = c.Error(err)
		return
	}
	response.JSON(c, http.StatusCreated, toResponse(host))
}

func (h *Handler) Get(c *gin.Context) {
	host, err := h.svc.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.fail(c, err)
		return
	}
	response.JSON(c, http.StatusOK, toResponse(host))
}

func (h *Handler) Update(c *gin.Context) {
	var req UpdateHostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.InvalidBody(c, nil)
		return
	}
	if errs := validator.Validate(req); errs != nil {
		response.InvalidBody(c, errs)
		return
	}

	host, err := h.svc.Update(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		h.fail(c, err)
		return
	}
	response.JSON(c, http.StatusOK, toResponse(host))
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
		response.Error(c, http.StatusNotFound, "Host not found")
		return
	}
	_ = c.Error(err)
}
