package controllers

import (
	"net/http"
	"strconv"

	"github.com/ttra33507-star/c4web/models"
	"github.com/ttra33507-star/c4web/services"

	"github.com/gin-gonic/gin"
)

// ReportController handles HTTP requests for abuse/issue reports.
type ReportController struct {
	reports services.ReportService
}

// NewReportController creates a new ReportController.
func NewReportController(svc services.ReportService) *ReportController {
	return &ReportController{reports: svc}
}

// ListReports handles GET /api/reports
func (rc *ReportController) ListReports(c *gin.Context) {
	reports, svcErr := rc.reports.ListReports(c.Request.Context())
	if svcErr != nil {
		c.JSON(svcErr.StatusCode, gin.H{"error": svcErr.Message})
		return
	}

	c.JSON(http.StatusOK, gin.H{"reports": reports})
}

// CreateReport handles POST /api/reports
func (rc *ReportController) CreateReport(c *gin.Context) {
	var req models.CreateReportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request", "details": err.Error()})
		return
	}

	report, svcErr := rc.reports.CreateReport(c.Request.Context(), &req)
	if svcErr != nil {
		c.JSON(svcErr.StatusCode, gin.H{"error": svcErr.Message})
		return
	}

	c.JSON(http.StatusCreated, report)
}

// UpdateReport handles PATCH /api/reports/:id
func (rc *ReportController) UpdateReport(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid report ID"})
		return
	}

	var req models.UpdateReportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request", "details": err.Error()})
		return
	}

	report, svcErr := rc.reports.ResolveReport(c.Request.Context(), uint(id), req.Status)
	if svcErr != nil {
		c.JSON(svcErr.StatusCode, gin.H{"error": svcErr.Message})
		return
	}

	c.JSON(http.StatusOK, report)
}
