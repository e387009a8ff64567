package report

import (
	"strings"

	"github.com/merseybathrooms/jobtracker/internal/httperr"
	"github.com/merseybathrooms/jobtracker/internal/validators"
)

// Submission is the metadata part of a report; photos travel separately.
type Submission struct {
	JobID            string
	WorkSummary      []string
	StartTime        *string
	FinishTime       *string
	RequiresFollowUp bool
	Postponed        bool
	PostponedDate    *string
	PostponedReason  *string
	SubmittedBy      string
}

// CleanSummary trims every line and drops the blank ones. The result is
// never nil so it always serialises as a JSON array.
func CleanSummary(lines []string) []string {
	out := make([]string, 0, len(lines))
	for _, l := range lines {
		if l = strings.TrimSpace(l); l != "" {
			out = append(out, l)
		}
	}
	return out
}

// Normalize trims optional fields, turning empty strings into nil, and
// cleans the summary.
func (s *Submission) Normalize() {
	s.JobID = strings.TrimSpace(s.JobID)
	s.WorkSummary = CleanSummary(s.WorkSummary)
	s.StartTime = optional(s.StartTime)
	s.FinishTime = optional(s.FinishTime)
	s.PostponedDate = optional(s.PostponedDate)
	s.PostponedReason = optional(s.PostponedReason)
}

func (s *Submission) Validate() error {
	if s.JobID == "" {
		return httperr.ErrBusinessMsg(httperr.CodeValidation, "jobId is required")
	}
	if s.StartTime != nil && !validators.IsClock(*s.StartTime) {
		return httperr.ErrBusinessMsg(httperr.CodeValidation, "startTime must be HH:MM")
	}
	if s.FinishTime != nil && !validators.IsClock(*s.FinishTime) {
		return httperr.ErrBusinessMsg(httperr.CodeValidation, "finishTime must be HH:MM")
	}
	if s.PostponedDate != nil && !validators.IsDate(*s.PostponedDate) {
		return httperr.ErrBusinessMsg(httperr.CodeValidation, "postponedDate must be YYYY-MM-DD")
	}
	return nil
}

func optional(v *string) *string {
	if v == nil {
		return nil
	}
	t := strings.TrimSpace(*v)
	if t == "" {
		return nil
	}
	return &t
}
