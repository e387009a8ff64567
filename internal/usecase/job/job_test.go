package job

import (
	"context"
	"testing"

	"github.com/merseybathrooms/jobtracker/internal/httperr"
	"github.com/merseybathrooms/jobtracker/internal/infra/repository"
	"github.com/merseybathrooms/jobtracker/internal/models"
	"github.com/merseybathrooms/jobtracker/internal/testutil"
)

func strp(s string) *string { return &s }

func validInput() CreateJobInput {
	return CreateJobInput{
		Address:       "18 Coronation Drive",
		Postcode:      "l23 3bn",
		Problem:       "Leaking tap",
		CustomerPhone: "+447000000000",
	}
}

func TestCreateJobStartsPendingAndIsRetrievable(t *testing.T) {
	gdb := testutil.NewDB(t)
	repo := repository.NewJobGormRepository(gdb)
	ctx := context.Background()

	created, err := NewCreateJob(repo, nil).Execute(ctx, validInput())
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if created.Status != "PENDING" {
		t.Fatalf("expected PENDING, got %s", created.Status)
	}
	if created.Postcode != "L23 3BN" {
		t.Fatalf("postcode should be upper-cased, got %q", created.Postcode)
	}

	got, err := NewGetJob(repo).Execute(ctx, created.ID, "", models.RoleBoss)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.ID != created.ID || got.Status != "PENDING" || got.Report != nil {
		t.Fatalf("unexpected job %+v", got)
	}
}

func TestCreateJobValidation(t *testing.T) {
	gdb := testutil.NewDB(t)
	repo := repository.NewJobGormRepository(gdb)
	boss := testutil.CreateUser(t, gdb, "boss@test.com", "password", models.RoleBoss)

	tests := []struct {
		name   string
		mutate func(*CreateJobInput)
	}{
		{"missing address", func(in *CreateJobInput) { in.Address = " " }},
		{"missing postcode", func(in *CreateJobInput) { in.Postcode = "" }},
		{"missing problem", func(in *CreateJobInput) { in.Problem = "" }},
		{"missing phone", func(in *CreateJobInput) { in.CustomerPhone = "" }},
		{"bad date", func(in *CreateJobInput) { in.ScheduledDate = strp("tomorrow") }},
		{"bad time", func(in *CreateJobInput) { in.TimeFrom = strp("9") }},
		{"reversed window", func(in *CreateJobInput) { in.TimeFrom, in.TimeTo = strp("14:00"), strp("09:00") }},
		{"unknown assignee", func(in *CreateJobInput) { in.AssignedTo = strp("nobody") }},
		{"boss as assignee", func(in *CreateJobInput) { in.AssignedTo = &boss.ID }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := validInput()
			tt.mutate(&in)
			_, err := NewCreateJob(repo, nil).Execute(context.Background(), in)
			if !httperr.IsBusiness(err, httperr.CodeValidation) {
				t.Fatalf("expected validation error, got %v", err)
			}
		})
	}
}

func TestGetJobNotFound(t *testing.T) {
	repo := repository.NewJobGormRepository(testutil.NewDB(t))
	_, err := NewGetJob(repo).Execute(context.Background(), "missing", "", models.RoleBoss)
	if !httperr.IsBusiness(err, httperr.CodeJobNotFound) {
		t.Fatalf("expected job_not_found, got %v", err)
	}
}

func TestListJobsNewestFirstAndWorkerVisibility(t *testing.T) {
	gdb := testutil.NewDB(t)
	repo := repository.NewJobGormRepository(gdb)
	ctx := context.Background()

	alice := testutil.CreateUser(t, gdb, "alice@test.com", "password", models.RoleWorker)
	bob := testutil.CreateUser(t, gdb, "bob@test.com", "password", models.RoleWorker)

	create := NewCreateJob(repo, nil)
	var ids []string
	for _, assignee := range []*string{nil, &alice.ID, &bob.ID} {
		in := validInput()
		in.AssignedTo = assignee
		in.ScheduledDate = strp("2025-01-10")
		j, err := create.Execute(ctx, in)
		if err != nil {
			t.Fatalf("create: %v", err)
		}
		ids = append(ids, j.ID)
	}

	list := NewListJobs(repo, "Europe/London")

	all, err := list.Execute(ctx, ListJobsInput{ViewerRole: models.RoleBoss})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("boss should see 3 jobs, got %d", len(all))
	}
	for i := 1; i < len(all); i++ {
		if all[i].CreatedAt.After(all[i-1].CreatedAt) {
			t.Fatalf("jobs are not newest-first")
		}
	}

	mine, err := list.Execute(ctx, ListJobsInput{ViewerRole: models.RoleWorker, ViewerID: alice.ID, Status: "PENDING"})
	if err != nil {
		t.Fatalf("list as worker: %v", err)
	}
	if len(mine) != 2 {
		t.Fatalf("alice should see the unassigned job and her own, got %d", len(mine))
	}
	for _, j := range mine {
		if j.ID == ids[2] {
			t.Fatalf("alice must not see bob's job")
		}
	}

	if _, err := NewGetJob(repo).Execute(ctx, ids[2], alice.ID, models.RoleWorker); !httperr.IsBusiness(err, httperr.CodeJobNotFound) {
		t.Fatalf("worker fetching another worker's job should get not found, got %v", err)
	}

	byDate, err := list.Execute(ctx, ListJobsInput{ViewerRole: models.RoleBoss, Date: "2025-01-11"})
	if err != nil {
		t.Fatalf("list by date: %v", err)
	}
	if len(byDate) != 0 {
		t.Fatalf("expected no jobs on 2025-01-11, got %d", len(byDate))
	}

	if _, err := list.Execute(ctx, ListJobsInput{Status: "DONE"}); !httperr.IsBusiness(err, httperr.CodeValidation) {
		t.Fatalf("unknown status filter should fail validation, got %v", err)
	}
	if _, err := list.Execute(ctx, ListJobsInput{Date: "someday"}); !httperr.IsBusiness(err, httperr.CodeValidation) {
		t.Fatalf("bad date filter should fail validation, got %v", err)
	}
}
