package auth

import (
	"errors"
	"net/http"

	"localfix/internal/pkg/response"
	"localfix/internal/pkg/session"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type Handler struct {
	service      *Service
	sessions     *session.Manager
	cookieSecure bool
}

func NewHandler(service *Service, sessions *session.Manager, cookieSecure bool) *Handler {
	return &Handler{service: service, sessions: sessions, cookieSecure: cookieSecure}
}

func (h *Handler) RegisterPublicRoutes(rg *gin.RouterGroup) {
	rg.POST("/auth/register", h.Register)
	rg.POST("/auth/login", h.Login)
	rg.POST("/auth/admin-login", h.AdminLogin)
}

func (h *Handler) RegisterProtectedRoutes(rg *gin.RouterGroup) {
	rg.POST("/auth/logout", h.Logout)
	rg.GET("/auth/me", h.Me)
}

func (h *Handler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid user data")
		return
	}

	user, err := h.service.Register(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, ErrEmailTaken):
			response.Error(c, http.StatusBadRequest, "CONFLICT", "User already exists with this email")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to register")
		}
		return
	}

	if !h.establishSession(c, user.ID) {
		return
	}
	response.Success(c, http.StatusOK, user)
}

func (h *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid login data")
		return
	}

	user, err := h.service.Login(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidCredentials):
			response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Invalid credentials")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to log in")
		}
		return
	}

	if !h.establishSession(c, user.ID) {
		return
	}
	response.Success(c, http.StatusOK, user)
}

func (h *Handler) AdminLogin(c *gin.Context) {
	var req AdminLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid admin login data")
		return
	}

	admin, err := h.service.AdminLogin(c.Request.Context(), req.Password)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidAdminPassword):
			response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Invalid admin password")
		case errors.Is(err, ErrAdminNotFound):
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Admin user not found")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to log in")
		}
		return
	}

	if !h.establishSession(c, admin.ID) {
		return
	}
	response.Success(c, http.StatusOK, admin)
}

func (h *Handler) Logout(c *gin.Context) {
	token, err := c.Cookie(session.CookieName)
	if err == nil && token != "" {
		if err := h.sessions.Destroy(c.Request.Context(), token); err != nil {
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Could not log out")
			return
		}
	}

	c.SetCookie(session.CookieName, "", -1, "/", "", h.cookieSecure, true)
	response.Success(c, http.StatusOK, gin.H{"message": "Logged out successfully"})
}

func (h *Handler) Me(c *gin.Context) {
	user, err := h.service.Me(c.Request.Context(), c.GetString("user_id"))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "User not found")
		} else {
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to load user")
		}
		return
	}
	response.Success(c, http.StatusOK, user)
}

func (h *Handler) establishSession(c *gin.Context, userID string) bool {
	token, err := h.sessions.Issue(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to create session")
		return false
	}
	c.SetCookie(session.CookieName, token, int(h.sessions.TTL().Seconds()), "/", "", h.cookieSecure, true)
	return true
}
