package controllers

import (
	"net/http"

	"github.com/ttra33507-star/c4web/models"
	"github.com/ttra33507-star/c4web/services"

	"github.com/gin-gonic/gin"
)

// UserController handles HTTP requests for customer records.
type UserController struct {
	users services.UserService
}

// NewUserController creates a new UserController.
func NewUserController(svc services.UserService) *UserController {
	return &UserController{users: svc}
}

// ListUsers handles GET /api/users
func (uc *UserController) ListUsers(c *gin.Context) {
	users, svcErr := uc.users.ListUsers(c.Request.Context())
	if svcErr != nil {
		c.JSON(svcErr.StatusCode, gin.H{"error": svcErr.Message})
		return
	}

	c.JSON(http.StatusOK, gin.H{"users": users})
}

// CreateUser handles POST /api/users. Posting an email that already exists
// returns the existing record rather than an error.
func (uc *UserController) CreateUser(c *gin.Context) {
	var req models.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request", "details": err.Error()})
		return
	}

	user, svcErr := uc.users.CreateUser(c.Request.Context(), &req)
	if svcErr != nil {
		c.JSON(svcErr.StatusCode, gin.H{"error": svcErr.Message})
		return
	}

	c.JSON(http.StatusCreated, user)
}
