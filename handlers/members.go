package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/caatpension/pension-api/internal/members"
	"github.com/caatpension/pension-api/internal/models"
	"github.com/caatpension/pension-api/pkg/metrics"
	"github.com/caatpension/pension-api/pkg/middleware"
)

// MembersHandler exposes member registration, member login and the
// token-protected profile/pension endpoints.
type MembersHandler struct {
	svc *members.Service
}

func NewMembersHandler(svc *members.Service) *MembersHandler {
	return &MembersHandler{svc: svc}
}

// Register routes under /members
func (h *MembersHandler) Register(rg *gin.RouterGroup) {
	m := rg.Group("/members")
	m.POST("/register", h.RegisterMember)
	m.POST("/login", h.Login)
	m.GET("/profile", middleware.RequireBearer(), h.Profile)
	m.PUT("/profile", middleware.RequireBearer(), h.UpdateProfile)
	m.GET("/pension-info", middleware.RequireBearer(), h.PensionInfo)
}

// RegisterMember creates a member account. Duplicate email answers 400.
func (h *MembersHandler) RegisterMember(c *gin.Context) {
	var req models.MemberCreate
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	m, err := h.svc.Register(req)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, m)
}

// Login authenticates a member. The issued token is not registered in any
// active set, so there is no member logout.
func (h *MembersHandler) Login(c *gin.Context) {
	var req models.MemberLogin
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	tok, err := h.svc.Login(req.Email, req.Password)
	if err != nil {
		metrics.LoginAttempts.WithLabelValues("member", "failure").Inc()
		fail(c, err)
		return
	}
	metrics.LoginAttempts.WithLabelValues("member", "success").Inc()
	c.JSON(http.StatusOK, gin.H{"access_token": tok, "token_type": "bearer"})
}

// Profile returns the authenticated member's record.
func (h *MembersHandler) Profile(c *gin.Context) {
	m, err := h.svc.ProfileByToken(middleware.BearerToken(c))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, m)
}

// UpdateProfile applies a partial update and returns the updated record.
func (h *MembersHandler) UpdateProfile(c *gin.Context) {
	var req models.MemberUpdate
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	m, err := h.svc.UpdateProfileByToken(middleware.BearerToken(c), req)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, m)
}

// PensionInfo returns the authenticated member's pension summary. A member
// without a pension record answers 404; token failures answer 401.
func (h *MembersHandler) PensionInfo(c *gin.Context) {
	p, err := h.svc.PensionInfoByToken(middleware.BearerToken(c))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}
