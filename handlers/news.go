package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/caatpension/pension-api/internal/news"
)

// NewsHandler exposes the read-only news queries.
type NewsHandler struct {
	svc *news.Service
}

func NewNewsHandler(svc *news.Service) *NewsHandler {
	return &NewsHandler{svc: svc}
}

// Register routes under /news
func (h *NewsHandler) Register(rg *gin.RouterGroup) {
	n := rg.Group("/news")
	n.GET("/", h.List)
	n.GET("/featured/latest", h.Featured)
	n.GET("/categories/", h.Categories)
	n.GET("/:id", h.ByID)
}

// intQuery parses an integer query parameter bounded to [min, max],
// falling back to def when absent. ok=false means the value was present but
// unparseable or out of range.
func intQuery(c *gin.Context, name string, def, min, max int) (int, bool) {
	raw := c.Query(name)
	if raw == "" {
		return def, true
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v < min || v > max {
		return 0, false
	}
	return v, true
}

// List answers GET /news/ with skip/limit/category query parameters.
func (h *NewsHandler) List(c *gin.Context) {
	skip, ok := intQuery(c, "skip", 0, 0, int(^uint(0)>>1))
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "skip must be a non-negative integer"})
		return
	}
	limit, ok := intQuery(c, "limit", 10, 1, 100)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "limit must be between 1 and 100"})
		return
	}
	c.JSON(http.StatusOK, h.svc.List(skip, limit, c.Query("category")))
}

// ByID answers GET /news/:id.
func (h *NewsHandler) ByID(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "article id must be an integer"})
		return
	}
	a, err := h.svc.ByID(id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Article not found"})
		return
	}
	c.JSON(http.StatusOK, a)
}

// Featured answers GET /news/featured/latest.
func (h *NewsHandler) Featured(c *gin.Context) {
	limit, ok := intQuery(c, "limit", 3, 1, 10)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "limit must be between 1 and 10"})
		return
	}
	c.JSON(http.StatusOK, h.svc.Featured(limit))
}

// Categories answers GET /news/categories/.
func (h *NewsHandler) Categories(c *gin.Context) {
	c.JSON(http.StatusOK, h.svc.Categories())
}
