package job

import (
	"context"
	"strings"

	"github.com/merseybathrooms/jobtracker/internal/audit"
	domain "github.com/merseybathrooms/jobtracker/internal/domain/job"
	"github.com/merseybathrooms/jobtracker/internal/httperr"
	"github.com/merseybathrooms/jobtracker/internal/models"
	"github.com/merseybathrooms/jobtracker/internal/validators"
)

// ======================================================
// INPUT
// ======================================================

type CreateJobInput struct {
	Address       string
	Postcode      string
	Problem       string
	CustomerPhone string

	ScheduledDate *string
	TimeFrom      *string
	TimeTo        *string

	CreatedBy  string
	AssignedTo *string
}

// ======================================================
// USE CASE
// ======================================================

type CreateJob struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewCreateJob(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *CreateJob {
	return &CreateJob{
		repo:  repo,
		audit: audit,
	}
}

func (uc *CreateJob) Execute(
	ctx context.Context,
	in CreateJobInput,
) (*models.Job, error) {

	// --------------------------------------------------
	// Required fields
	// --------------------------------------------------
	address := strings.TrimSpace(in.Address)
	postcode := strings.ToUpper(strings.TrimSpace(in.Postcode))
	problem := strings.TrimSpace(in.Problem)
	phone := strings.TrimSpace(in.CustomerPhone)

	switch {
	case address == "":
		return nil, httperr.ErrBusinessMsg(httperr.CodeValidation, "address is required")
	case postcode == "":
		return nil, httperr.ErrBusinessMsg(httperr.CodeValidation, "postcode is required")
	case problem == "":
		return nil, httperr.ErrBusinessMsg(httperr.CodeValidation, "problem is required")
	case phone == "":
		return nil, httperr.ErrBusinessMsg(httperr.CodeValidation, "customerPhone is required")
	}

	// --------------------------------------------------
	// Schedule
	// --------------------------------------------------
	date := trimmed(in.ScheduledDate)
	from := trimmed(in.TimeFrom)
	to := trimmed(in.TimeTo)

	if date != nil && !validators.IsDate(*date) {
		return nil, httperr.ErrBusinessMsg(httperr.CodeValidation, "scheduledDate must be YYYY-MM-DD")
	}
	if from != nil && !validators.IsClock(*from) {
		return nil, httperr.ErrBusinessMsg(httperr.CodeValidation, "timeFrom must be HH:MM")
	}
	if to != nil && !validators.IsClock(*to) {
		return nil, httperr.ErrBusinessMsg(httperr.CodeValidation, "timeTo must be HH:MM")
	}
	// HH:MM compares correctly as a string
	if from != nil && to != nil && *to < *from {
		return nil, httperr.ErrBusinessMsg(httperr.CodeValidation, "timeTo must not be before timeFrom")
	}

	// --------------------------------------------------
	// Assignee must be an existing worker
	// --------------------------------------------------
	assignee := trimmed(in.AssignedTo)
	if assignee != nil {
		ok, err := uc.repo.UserExists(ctx, *assignee, models.RoleWorker)
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, httperr.ErrBusinessMsg(httperr.CodeValidation, "assignedTo must be a worker")
		}
	}

	j := &models.Job{
		Address:       address,
		Postcode:      postcode,
		Problem:       problem,
		CustomerPhone: phone,
		Status:        string(domain.InitialStatus()),
		ScheduledDate: date,
		TimeFrom:      from,
		TimeTo:        to,
		AssignedToID:  assignee,
	}
	if in.CreatedBy != "" {
		j.CreatedByID = &in.CreatedBy
	}

	if err := uc.repo.CreateJob(ctx, j); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   j.CreatedByID,
		Action:   "job_created",
		Entity:   "job",
		EntityID: &j.ID,
		Metadata: map[string]any{"postcode": j.Postcode},
	})

	return j, nil
}

func trimmed(v *string) *string {
	if v == nil {
		return nil
	}
	t := strings.TrimSpace(*v)
	if t == "" {
		return nil
	}
	return &t
}
