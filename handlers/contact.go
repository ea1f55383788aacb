package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/caatpension/pension-api/internal/contact"
	"github.com/caatpension/pension-api/internal/models"
	"github.com/caatpension/pension-api/pkg/metrics"
)

// ContactHandler exposes contact form submission and static contact info.
type ContactHandler struct {
	svc *contact.Service
}

func NewContactHandler(svc *contact.Service) *ContactHandler {
	return &ContactHandler{svc: svc}
}

// Register routes under /contact
func (h *ContactHandler) Register(rg *gin.RouterGroup) {
	ct := rg.Group("/contact")
	ct.POST("/submit", h.Submit)
	ct.GET("/info", h.Info)
}

// Submit accepts a contact form and returns a receipt with a reference
// number and response-time estimate.
func (h *ContactHandler) Submit(c *gin.Context) {
	var req models.ContactForm
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	receipt := h.svc.Submit(req)
	metrics.ContactSubmissions.Inc()
	c.JSON(http.StatusOK, receipt)
}

// Info answers GET /contact/info with static contact metadata.
func (h *ContactHandler) Info(c *gin.Context) {
	c.JSON(http.StatusOK, contact.Info())
}
