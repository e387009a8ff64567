package job

import (
	"context"

	"github.com/merseybathrooms/jobtracker/internal/models"
)

type ListFilter struct {
	Status Status
	// VisibleTo restricts the list to jobs assigned to this user or unassigned.
	VisibleTo     string
	ScheduledDate string
}

type Repository interface {
	CreateJob(ctx context.Context, j *models.Job) error

	// GetJob returns the job with its report joined (if any).
	GetJob(ctx context.Context, id string) (*models.Job, error)

	// ListJobs returns jobs newest-first, each with its report joined.
	ListJobs(ctx context.Context, f ListFilter) ([]models.Job, error)

	UserExists(ctx context.Context, id string, role string) (bool, error)
}
