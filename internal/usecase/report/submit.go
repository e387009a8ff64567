package report

import (
	"context"
	"errors"
	"path"
	"time"

	"github.com/google/uuid"

	"github.com/merseybathrooms/jobtracker/internal/audit"
	jobdomain "github.com/merseybathrooms/jobtracker/internal/domain/job"
	domain "github.com/merseybathrooms/jobtracker/internal/domain/report"
	"github.com/merseybathrooms/jobtracker/internal/httperr"
	"github.com/merseybathrooms/jobtracker/internal/models"
	"github.com/merseybathrooms/jobtracker/internal/storage"
)

type PhotoUploader interface {
	UploadBatch(ctx context.Context, prefix string, photos []storage.Photo) ([]storage.Uploaded, error)
	Discard(ctx context.Context, uploaded []storage.Uploaded) error
}

// ======================================================
// INPUT / OUTPUT
// ======================================================

type SubmitReportInput struct {
	domain.Submission
	Photos []storage.Photo

	SubmitterRole string
}

type SubmitReportResult struct {
	Report    *models.Report
	PhotoURLs []string
}

// ======================================================
// USE CASE
// ======================================================

type SubmitReport struct {
	jobs     jobdomain.Repository
	reports  domain.Repository
	uploader PhotoUploader
	audit    *audit.Dispatcher
}

func NewSubmitReport(
	jobs jobdomain.Repository,
	reports domain.Repository,
	uploader PhotoUploader,
	audit *audit.Dispatcher,
) *SubmitReport {
	return &SubmitReport{
		jobs:     jobs,
		reports:  reports,
		uploader: uploader,
		audit:    audit,
	}
}

func (uc *SubmitReport) Execute(
	ctx context.Context,
	in SubmitReportInput,
) (*SubmitReportResult, error) {

	// --------------------------------------------------
	// 1. Metadata
	// --------------------------------------------------
	sub := in.Submission
	sub.Normalize()
	if err := sub.Validate(); err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// 2. Job must exist and be open for a report. Checked before any
	//    upload so a rejected submission never touches the image host.
	// --------------------------------------------------
	j, err := uc.jobs.GetJob(ctx, sub.JobID)
	if err != nil {
		return nil, err
	}
	if in.SubmitterRole == models.RoleWorker && j.AssignedToID != nil && *j.AssignedToID != sub.SubmittedBy {
		return nil, httperr.ErrBusinessMsg(httperr.CodeForbidden, "job is assigned to another worker")
	}
	if j.Report != nil {
		return nil, httperr.ErrBusiness(httperr.CodeDuplicateReport)
	}
	if err := jobdomain.CanReport(jobdomain.Status(j.Status)); err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// 3. Photos (all or nothing). Keys live under the report id so a
	//    losing concurrent submission can only discard its own objects.
	// --------------------------------------------------
	reportID := uuid.NewString()
	uploaded, err := uc.uploader.UploadBatch(ctx, path.Join("reports", j.ID, reportID), in.Photos)
	if err != nil {
		return nil, err
	}
	urls := storage.URLs(uploaded)

	// --------------------------------------------------
	// 4. Report + status transition in one transaction
	// --------------------------------------------------
	rep := &models.Report{
		ID:               reportID,
		JobID:            j.ID,
		WorkSummary:      sub.WorkSummary,
		Photos:           urls,
		StartTime:        sub.StartTime,
		FinishTime:       sub.FinishTime,
		RequiresFollowUp: sub.RequiresFollowUp,
		Postponed:        sub.Postponed,
		PostponedDate:    sub.PostponedDate,
		PostponedReason:  sub.PostponedReason,
	}
	if sub.SubmittedBy != "" {
		rep.SubmittedByID = &sub.SubmittedBy
	}

	next := jobdomain.StatusAfterReport(sub.Postponed)
	if err := uc.reports.CreateReportAndTransition(ctx, rep, next); err != nil {
		cleanupCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 30*time.Second)
		defer cancel()
		if derr := uc.uploader.Discard(cleanupCtx, uploaded); derr != nil {
			return nil, httperr.Wrap(httperr.CodePartialWrite, errors.Join(err, derr))
		}
		return nil, err
	}

	// --------------------------------------------------
	// 5. Audit
	// --------------------------------------------------
	uc.audit.Dispatch(audit.Event{
		UserID:   rep.SubmittedByID,
		Action:   "report_submitted",
		Entity:   "report",
		EntityID: &rep.ID,
		Metadata: map[string]any{
			"jobId":     j.ID,
			"photos":    len(urls),
			"postponed": rep.Postponed,
			"status":    string(next),
		},
	})

	return &SubmitReportResult{Report: rep, PhotoURLs: urls}, nil
}
