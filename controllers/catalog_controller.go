package controllers

import (
	"net/http"
	"strconv"

	"github.com/ttra33507-star/c4web/models"
	"github.com/ttra33507-star/c4web/services"

	"github.com/gin-gonic/gin"
)

// CatalogController handles HTTP requests for the service catalog.
type CatalogController struct {
	catalog services.CatalogService
}

// NewCatalogController creates a new CatalogController.
func NewCatalogController(svc services.CatalogService) *CatalogController {
	return &CatalogController{catalog: svc}
}

// ListServices handles GET /api/services
func (cc *CatalogController) ListServices(c *gin.Context) {
	items, svcErr := cc.catalog.ListServices(c.Request.Context())
	if svcErr != nil {
		c.JSON(svcErr.StatusCode, gin.H{"error": svcErr.Message})
		return
	}

	responses := make([]models.ServiceResponse, 0, len(items))
	for i := range items {
		responses = append(responses, models.NewServiceResponse(&items[i]))
	}
	c.JSON(http.StatusOK, gin.H{"services": responses})
}

// GetService handles GET /api/services/:id
func (cc *CatalogController) GetService(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid service ID"})
		return
	}

	service, svcErr := cc.catalog.GetService(c.Request.Context(), uint(id))
	if svcErr != nil {
		c.JSON(svcErr.StatusCode, gin.H{"error": svcErr.Message})
		return
	}

	c.JSON(http.StatusOK, models.NewServiceResponse(service))
}

// ListLicenses handles GET /api/licenses
func (cc *CatalogController) ListLicenses(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"licenses": cc.catalog.ListLicenses(c.Request.Context())})
}
