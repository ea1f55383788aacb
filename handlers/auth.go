package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/caatpension/pension-api/internal/auth"
	"github.com/caatpension/pension-api/pkg/metrics"
	"github.com/caatpension/pension-api/pkg/middleware"
)

// LoginRequest is the staff login payload.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// AuthHandler exposes the staff auth flow: login, logout, verify.
type AuthHandler struct {
	svc *auth.Service
}

func NewAuthHandler(svc *auth.Service) *AuthHandler {
	return &AuthHandler{svc: svc}
}

// Register routes under /auth
func (h *AuthHandler) Register(rg *gin.RouterGroup) {
	a := rg.Group("/auth")
	a.POST("/login", h.Login)
	a.POST("/logout", middleware.RequireBearer(), h.Logout)
	a.GET("/verify", middleware.RequireBearer(), h.Verify)
}

// Login authenticates and returns a registered access token.
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	tok, err := h.svc.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		metrics.LoginAttempts.WithLabelValues("staff", "failure").Inc()
		fail(c, err)
		return
	}
	metrics.LoginAttempts.WithLabelValues("staff", "success").Inc()
	c.JSON(http.StatusOK, tok)
}

// Logout invalidates the presented token.
func (h *AuthHandler) Logout(c *gin.Context) {
	if err := h.svc.Logout(c.Request.Context(), middleware.BearerToken(c)); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Successfully logged out"})
}

// Verify reports whether the presented token is usable and returns its user.
// Failures answer 401 with {valid:false, error} rather than the plain error
// shape, matching what the frontend expects from this endpoint.
func (h *AuthHandler) Verify(c *gin.Context) {
	u, err := h.svc.Verify(c.Request.Context(), middleware.BearerToken(c))
	if err != nil {
		metrics.TokenVerifications.WithLabelValues("failure").Inc()
		c.JSON(http.StatusUnauthorized, gin.H{"valid": false, "error": err.Error()})
		return
	}
	metrics.TokenVerifications.WithLabelValues("success").Inc()
	c.JSON(http.StatusOK, gin.H{"valid": true, "user": u})
}
