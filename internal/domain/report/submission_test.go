package report

import (
	"testing"

	"github.com/merseybathrooms/jobtracker/internal/httperr"
)

func strp(s string) *string { return &s }

func TestCleanSummary(t *testing.T) {
	got := CleanSummary([]string{"  Replaced washer ", "", "   ", "Tested flow"})
	if len(got) != 2 || got[0] != "Replaced washer" || got[1] != "Tested flow" {
		t.Fatalf("CleanSummary = %#v", got)
	}

	empty := CleanSummary(nil)
	if empty == nil || len(empty) != 0 {
		t.Fatalf("CleanSummary(nil) should be an empty, non-nil slice")
	}
}

func TestSubmissionNormalize(t *testing.T) {
	s := Submission{
		JobID:           "  job-1 ",
		WorkSummary:     []string{"a", " "},
		StartTime:       strp(" 09:00 "),
		FinishTime:      strp(""),
		PostponedReason: strp("   "),
	}
	s.Normalize()

	if s.JobID != "job-1" {
		t.Fatalf("JobID = %q", s.JobID)
	}
	if len(s.WorkSummary) != 1 {
		t.Fatalf("WorkSummary = %#v", s.WorkSummary)
	}
	if s.StartTime == nil || *s.StartTime != "09:00" {
		t.Fatalf("StartTime = %v", s.StartTime)
	}
	if s.FinishTime != nil || s.PostponedReason != nil {
		t.Fatalf("blank optionals should become nil")
	}
}

func TestSubmissionValidate(t *testing.T) {
	tests := []struct {
		name string
		sub  Submission
		ok   bool
	}{
		{"minimal", Submission{JobID: "j"}, true},
		{"missing job", Submission{}, false},
		{"bad start", Submission{JobID: "j", StartTime: strp("9am")}, false},
		{"bad finish", Submission{JobID: "j", FinishTime: strp("25:00")}, false},
		{"bad postponed date", Submission{JobID: "j", Postponed: true, PostponedDate: strp("10/01/2025")}, false},
		{"postponed", Submission{JobID: "j", Postponed: true, PostponedDate: strp("2025-01-10"), PostponedReason: strp("Part unavailable")}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.sub.Validate()
			if tt.ok && err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !tt.ok && !httperr.IsBusiness(err, httperr.CodeValidation) {
				t.Fatalf("expected validation error, got %v", err)
			}
		})
	}
}
