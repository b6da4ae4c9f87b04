package services

import (
	"context"
	"errors"
	"strings"

	"github.com/ttra33507-star/c4web/models"
	"github.com/ttra33507-star/c4web/repository"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// UserService defines the interface for user business logic.
type UserService interface {
	ListUsers(ctx context.Context) ([]models.User, *ServiceError)
	CreateUser(ctx context.Context, req *models.CreateUserRequest) (*models.User, *ServiceError)
}

type userServiceImpl struct {
	repo   repository.UserRepository
	logger *zap.Logger
}

// NewUserService creates a new UserService.
func NewUserService(repo repository.UserRepository, logger *zap.Logger) UserService {
	return &userServiceImpl{repo: repo, logger: logger}
}

// ListUsers returns registered users sorted by recency.
func (s *userServiceImpl) ListUsers(ctx context.Context) ([]models.User, *ServiceError) {
	users, err := s.repo.FindAll(ctx)
	if err != nil {
		s.logger.Error("Failed to list users", zap.Error(err))
		return nil, &ServiceError{StatusCode: 500, Message: "Failed to list users"}
	}
	return users, nil
}

// CreateUser persists a user or returns the existing record for the same
// email. Emails are lowercased and trimmed before comparison.
func (s *userServiceImpl) CreateUser(ctx context.Context, req *models.CreateUserRequest) (*models.User, *ServiceError) {
	fullName := strings.TrimSpace(req.DisplayName())
	email := strings.ToLower(strings.TrimSpace(req.Email))
	if fullName == "" || email == "" {
		return nil, &ServiceError{StatusCode: 400, Message: "`fullName` and `email` are required"}
	}

	if existing, err := s.repo.FindByEmail(ctx, email); err == nil {
		return existing, nil
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		s.logger.Error("Failed to look up user", zap.String("email", email), zap.Error(err))
		return nil, &ServiceError{StatusCode: 500, Message: "Failed to create user"}
	}

	user := &models.User{
		FullName: fullName,
		Email:    email,
		Phone:    req.Phone,
		Company:  req.Company,
	}
	if err := s.repo.Create(ctx, user); err != nil {
		if strings.Contains(err.Error(), "duplicate") || strings.Contains(err.Error(), "UNIQUE") {
			// Lost a create race; the row now exists, return it.
			if existing, findErr := s.repo.FindByEmail(ctx, email); findErr == nil {
				return existing, nil
			}
		}
		s.logger.Error("Failed to create user", zap.String("email", email), zap.Error(err))
		return nil, &ServiceError{StatusCode: 500, Message: "Failed to create user"}
	}

	s.logger.Info("User created", zap.Uint("user_id", user.ID), zap.String("email", email))
	return user, nil
}
