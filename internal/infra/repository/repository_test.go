package repository

import (
	"context"
	"testing"

	"github.com/merseybathrooms/jobtracker/internal/domain/job"
	"github.com/merseybathrooms/jobtracker/internal/httperr"
	"github.com/merseybathrooms/jobtracker/internal/models"
	"github.com/merseybathrooms/jobtracker/internal/testutil"
)

func newJob(t *testing.T, repo *JobGormRepository) *models.Job {
	t.Helper()
	j := &models.Job{
		Address:       "1 Bold Street",
		Postcode:      "L1 4DS",
		Problem:       "Blocked drain",
		CustomerPhone: "0151 000 0000",
		Status:        string(job.StatusPending),
	}
	if err := repo.CreateJob(context.Background(), j); err != nil {
		t.Fatalf("create job: %v", err)
	}
	if j.ID == "" {
		t.Fatalf("job id should be assigned on create")
	}
	return j
}

func TestCreateReportAndTransition(t *testing.T) {
	gdb := testutil.NewDB(t)
	jobs := NewJobGormRepository(gdb)
	reports := NewReportGormRepository(gdb)
	ctx := context.Background()

	j := newJob(t, jobs)

	rep := &models.Report{JobID: j.ID, WorkSummary: []string{"Cleared trap"}, Photos: []string{}}
	if err := reports.CreateReportAndTransition(ctx, rep, job.StatusCompleted); err != nil {
		t.Fatalf("create report: %v", err)
	}

	got, err := jobs.GetJob(ctx, j.ID)
	if err != nil {
		t.Fatalf("get job: %v", err)
	}
	if got.Status != string(job.StatusCompleted) {
		t.Fatalf("status = %s, want COMPLETED", got.Status)
	}
	if got.Report == nil || got.Report.ID != rep.ID {
		t.Fatalf("job should carry its report")
	}

	again := &models.Report{JobID: j.ID, WorkSummary: []string{}, Photos: []string{}}
	err = reports.CreateReportAndTransition(ctx, again, job.StatusCompleted)
	if !httperr.IsBusiness(err, httperr.CodeDuplicateReport) {
		t.Fatalf("expected duplicate_report, got %v", err)
	}

	orphan := &models.Report{JobID: "missing", WorkSummary: []string{}, Photos: []string{}}
	err = reports.CreateReportAndTransition(ctx, orphan, job.StatusCompleted)
	if !httperr.IsBusiness(err, httperr.CodeJobNotFound) {
		t.Fatalf("expected job_not_found, got %v", err)
	}

	joined, err := reports.GetReport(ctx, rep.ID)
	if err != nil || joined.Job == nil || joined.Job.ID != j.ID {
		t.Fatalf("GetReport should join the job: %v", err)
	}
}

func TestUserRepository(t *testing.T) {
	gdb := testutil.NewDB(t)
	users := NewUserGormRepository(gdb)
	ctx := context.Background()

	u, err := users.FindByEmail(ctx, "nobody@test.com")
	if err != nil || u != nil {
		t.Fatalf("missing user should return nil, nil; got %v, %v", u, err)
	}

	created := &models.User{Email: "boss@test.com", Name: "Boss", PasswordHash: "x", Role: models.RoleBoss}
	if err := users.CreateUser(ctx, created); err != nil {
		t.Fatalf("create: %v", err)
	}

	dup := &models.User{Email: "boss@test.com", Name: "Other", PasswordHash: "y", Role: models.RoleWorker}
	if err := users.CreateUser(ctx, dup); !httperr.IsBusiness(err, httperr.CodeDuplicateUser) {
		t.Fatalf("expected duplicate_user, got %v", err)
	}

	if _, err := users.GetUser(ctx, "missing"); !httperr.IsBusiness(err, httperr.CodeUserNotFound) {
		t.Fatalf("expected user_not_found, got %v", err)
	}

	jobs := NewJobGormRepository(gdb)
	if ok, _ := jobs.UserExists(ctx, created.ID, models.RoleBoss); !ok {
		t.Fatalf("boss should exist with role boss")
	}
	if ok, _ := jobs.UserExists(ctx, created.ID, models.RoleWorker); ok {
		t.Fatalf("boss should not match role worker")
	}
}
