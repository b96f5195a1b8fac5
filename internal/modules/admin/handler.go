package admin

import (
	"errors"
	"net/http"

	"localfix/internal/modules/provider"
	"localfix/internal/modules/review"
	"localfix/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes expects rg to already carry the admin role guard.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/users", h.ListUsers)
	rg.GET("/providers", h.ListProviders)
	rg.PUT("/providers/:id/approve", h.ApproveProvider)
	rg.GET("/bookings", h.ListBookings)
	rg.DELETE("/reviews/:id", h.DeleteReview)
}

func (h *Handler) ListUsers(c *gin.Context) {
	users, err := h.service.ListUsers(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load users")
		return
	}
	response.Success(c, http.StatusOK, users)
}

func (h *Handler) ListProviders(c *gin.Context) {
	providers, err := h.service.ListProviders(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load providers")
		return
	}
	response.Success(c, http.StatusOK, providers)
}

func (h *Handler) ApproveProvider(c *gin.Context) {
	var req provider.ApproveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "isApproved is required")
		return
	}

	p, err := h.service.ApproveProvider(c.Request.Context(), c.Param("id"), *req.IsApproved)
	if err != nil {
		if errors.Is(err, provider.ErrNotFound) {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Provider not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to update provider")
		return
	}
	response.Success(c, http.StatusOK, p)
}

func (h *Handler) ListBookings(c *gin.Context) {
	rows, err := h.service.ListBookings(c.Request.Context(), c.Query("status"))
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load bookings")
		return
	}
	response.Success(c, http.StatusOK, rows)
}

func (h *Handler) DeleteReview(c *gin.Context) {
	if err := h.service.DeleteReview(c.Request.Context(), c.Param("id")); err != nil {
		if errors.Is(err, review.ErrNotFound) {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Review not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to delete review")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"deleted": true})
}
