package provider

import (
	"errors"
	"net/http"

	"localfix/internal/pkg/response"
	"localfix/internal/repository"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterPublicRoutes(rg *gin.RouterGroup) {
	rg.GET("/providers", h.List)
	rg.GET("/providers/:id", h.GetByID)
}

func (h *Handler) RegisterProtectedRoutes(rg *gin.RouterGroup) {
	rg.POST("/providers", h.Create)
	rg.PUT("/providers/:id", h.Update)
}

func (h *Handler) List(c *gin.Context) {
	f := repository.ProviderFilters{
		CategoryID: c.Query("categoryId"),
		Location:   c.Query("location"),
	}
	switch c.Query("isApproved") {
	case "true":
		v := true
		f.IsApproved = &v
	case "false":
		v := false
		f.IsApproved = &v
	}

	providers, err := h.service.List(c.Request.Context(), f)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load providers")
		return
	}
	response.Success(c, http.StatusOK, providers)
}

func (h *Handler) GetByID(c *gin.Context) {
	profile, err := h.service.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Provider not found")
		} else {
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load provider")
		}
		return
	}
	response.Success(c, http.StatusOK, profile)
}

func (h *Handler) Create(c *gin.Context) {
	var req CreateProviderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid provider data")
		return
	}

	p, err := h.service.Create(c.Request.Context(), c.GetString("user_id"), req)
	if err != nil {
		switch {
		case errors.Is(err, ErrConflict):
			response.Error(c, http.StatusConflict, "CONFLICT", "User already has a provider profile")
		case errors.Is(err, ErrUnknownCategory), errors.Is(err, ErrInvalidProfile):
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to create provider")
		}
		return
	}
	response.Success(c, http.StatusCreated, p)
}

func (h *Handler) Update(c *gin.Context) {
	var req UpdateProviderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid update data")
		return
	}

	p, err := h.service.Update(c.Request.Context(), c.GetString("user_id"), c.Param("id"), req)
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Provider not found")
		case errors.Is(err, ErrForbidden):
			response.Error(c, http.StatusForbidden, "FORBIDDEN", "Not authorized")
		case errors.Is(err, ErrUnknownCategory):
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to update provider")
		}
		return
	}
	response.Success(c, http.StatusOK, p)
}
