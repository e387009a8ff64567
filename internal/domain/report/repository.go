package report

import (
	"context"

	"github.com/merseybathrooms/jobtracker/internal/domain/job"
	"github.com/merseybathrooms/jobtracker/internal/models"
)

type Repository interface {
	// CreateReportAndTransition inserts r and moves its job to next in a
	// single transaction. Fails with job_not_found or duplicate_report.
	CreateReportAndTransition(ctx context.Context, r *models.Report, next job.Status) error

	// GetReport returns the report with its job joined.
	GetReport(ctx context.Context, id string) (*models.Report, error)

	// ListReports returns reports newest-first with their jobs joined.
	ListReports(ctx context.Context) ([]models.Report, error)
}
