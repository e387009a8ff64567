package job

import (
	"context"

	domain "github.com/merseybathrooms/jobtracker/internal/domain/job"
	"github.com/merseybathrooms/jobtracker/internal/httperr"
	"github.com/merseybathrooms/jobtracker/internal/models"
	"github.com/merseybathrooms/jobtracker/internal/timezone"
	"github.com/merseybathrooms/jobtracker/internal/validators"
)

type ListJobsInput struct {
	Status string
	// Date is YYYY-MM-DD or "today" in the business timezone.
	Date string

	ViewerID   string
	ViewerRole string
}

type ListJobs struct {
	repo     domain.Repository
	timezone string
}

func NewListJobs(repo domain.Repository, tz string) *ListJobs {
	return &ListJobs{repo: repo, timezone: tz}
}

func (uc *ListJobs) Execute(
	ctx context.Context,
	in ListJobsInput,
) ([]models.Job, error) {

	var f domain.ListFilter

	if in.Status != "" {
		st, err := domain.ParseStatus(in.Status)
		if err != nil {
			return nil, err
		}
		f.Status = st
	}

	switch {
	case in.Date == "":
	case in.Date == "today":
		f.ScheduledDate = timezone.Today(uc.timezone)
	case validators.IsDate(in.Date):
		f.ScheduledDate = in.Date
	default:
		return nil, httperr.ErrBusinessMsg(httperr.CodeValidation, "date must be YYYY-MM-DD or today")
	}

	if in.ViewerRole == models.RoleWorker {
		f.VisibleTo = in.ViewerID
	}

	return uc.repo.ListJobs(ctx, f)
}
