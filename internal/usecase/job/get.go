package job

import (
	"context"

	domain "github.com/merseybathrooms/jobtracker/internal/domain/job"
	"github.com/merseybathrooms/jobtracker/internal/httperr"
	"github.com/merseybathrooms/jobtracker/internal/models"
)

type GetJob struct {
	repo domain.Repository
}

func NewGetJob(repo domain.Repository) *GetJob {
	return &GetJob{repo: repo}
}

// Execute returns the job with its report. Workers cannot see jobs that
// are assigned to somebody else; those look like missing jobs.
func (uc *GetJob) Execute(
	ctx context.Context,
	id string,
	viewerID string,
	viewerRole string,
) (*models.Job, error) {

	j, err := uc.repo.GetJob(ctx, id)
	if err != nil {
		return nil, err
	}

	if viewerRole == models.RoleWorker && j.AssignedToID != nil && *j.AssignedToID != viewerID {
		return nil, httperr.ErrBusiness(httperr.CodeJobNotFound)
	}

	return j, nil
}
