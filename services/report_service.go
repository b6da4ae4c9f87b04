package services

import (
	"context"
	"errors"
	"time"

	"github.com/ttra33507-star/c4web/models"
	"github.com/ttra33507-star/c4web/repository"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// ReportService defines the interface for report business logic.
type ReportService interface {
	ListReports(ctx context.Context) ([]models.Report, *ServiceError)
	CreateReport(ctx context.Context, req *models.CreateReportRequest) (*models.Report, *ServiceError)
	ResolveReport(ctx context.Context, id uint, status string) (*models.Report, *ServiceError)
}

type reportServiceImpl struct {
	repo   repository.ReportRepository
	logger *zap.Logger
}

// NewReportService creates a new ReportService.
func NewReportService(repo repository.ReportRepository, logger *zap.Logger) ReportService {
	return &reportServiceImpl{repo: repo, logger: logger}
}

// ListReports returns reports sorted by latest activity.
func (s *reportServiceImpl) ListReports(ctx context.Context) ([]models.Report, *ServiceError) {
	reports, err := s.repo.FindAll(ctx)
	if err != nil {
		s.logger.Error("Failed to list reports", zap.Error(err))
		return nil, &ServiceError{StatusCode: 500, Message: "Failed to list reports"}
	}
	return reports, nil
}

// CreateReport captures a support or audit report.
func (s *reportServiceImpl) CreateReport(ctx context.Context, req *models.CreateReportRequest) (*models.Report, *ServiceError) {
	report := &models.Report{
		Title:    req.Title,
		Summary:  req.Summary,
		Category: req.Category,
		Status:   defaultString(req.Status, "open"),
		UserID:   req.UserID,
	}
	if err := s.repo.Create(ctx, report); err != nil {
		s.logger.Error("Failed to create report", zap.String("title", req.Title), zap.Error(err))
		return nil, &ServiceError{StatusCode: 500, Message: "Failed to create report"}
	}

	s.logger.Info("Report created", zap.Uint("report_id", report.ID), zap.String("status", report.Status))
	return report, nil
}

// ResolveReport updates a report's status, defaulting to "resolved", and
// stamps the time of the change.
func (s *reportServiceImpl) ResolveReport(ctx context.Context, id uint, status string) (*models.Report, *ServiceError) {
	report, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &ServiceError{StatusCode: 404, Message: "Report not found"}
		}
		s.logger.Error("Failed to load report", zap.Uint("report_id", id), zap.Error(err))
		return nil, &ServiceError{StatusCode: 500, Message: "Failed to update report"}
	}

	now := time.Now().UTC()
	report.Status = defaultString(status, "resolved")
	report.ResolvedAt = &now

	if err := s.repo.Update(ctx, report); err != nil {
		s.logger.Error("Failed to update report", zap.Uint("report_id", id), zap.Error(err))
		return nil, &ServiceError{StatusCode: 500, Message: "Failed to update report"}
	}

	s.logger.Info("Report status updated", zap.Uint("report_id", id), zap.String("status", report.Status))
	return report, nil
}
