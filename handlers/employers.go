package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/caatpension/pension-api/internal/employers"
)

// EmployersHandler exposes the read-only employer directory, service catalog
// and downloadable resources.
type EmployersHandler struct {
	svc *employers.Service
}

func NewEmployersHandler(svc *employers.Service) *EmployersHandler {
	return &EmployersHandler{svc: svc}
}

// Register routes under /employers
func (h *EmployersHandler) Register(rg *gin.RouterGroup) {
	e := rg.Group("/employers")
	e.GET("/", h.List)
	e.GET("/services/available", h.AvailableServices)
	e.GET("/resources/downloads", h.Resources)
	e.GET("/:id", h.ByID)
}

// List answers GET /employers/.
func (h *EmployersHandler) List(c *gin.Context) {
	c.JSON(http.StatusOK, h.svc.All())
}

// ByID answers GET /employers/:id.
func (h *EmployersHandler) ByID(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "employer id must be an integer"})
		return
	}
	e, err := h.svc.ByID(id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Employer not found"})
		return
	}
	c.JSON(http.StatusOK, e)
}

// AvailableServices answers GET /employers/services/available.
func (h *EmployersHandler) AvailableServices(c *gin.Context) {
	c.JSON(http.StatusOK, h.svc.AvailableServices())
}

// Resources answers GET /employers/resources/downloads with a static listing.
func (h *EmployersHandler) Resources(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"forms": []gin.H{
			{
				"title":        "New Employee Enrollment Form",
				"description":  "Form for enrolling new employees in the pension plan",
				"file_type":    "PDF",
				"download_url": "/downloads/new-employee-enrollment.pdf",
			},
			{
				"title":        "Payroll Remittance Form",
				"description":  "Monthly payroll remittance form",
				"file_type":    "PDF",
				"download_url": "/downloads/payroll-remittance.pdf",
			},
			{
				"title":        "Employee Termination Form",
				"description":  "Form for processing employee terminations",
				"file_type":    "PDF",
				"download_url": "/downloads/employee-termination.pdf",
			},
		},
		"guides": []gin.H{
			{
				"title":        "Employer Guide to CAAT Pension Plan",
				"description":  "Comprehensive guide for employers",
				"file_type":    "PDF",
				"download_url": "/downloads/employer-guide.pdf",
			},
			{
				"title":        "Payroll Processing Guide",
				"description":  "Step-by-step payroll processing instructions",
				"file_type":    "PDF",
				"download_url": "/downloads/payroll-guide.pdf",
			},
		},
	})
}
