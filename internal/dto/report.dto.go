package dto

import (
	"encoding/json"
	"strings"

	domain "github.com/merseybathrooms/jobtracker/internal/domain/report"
	"github.com/merseybathrooms/jobtracker/internal/httperr"
)

// ReportData is the JSON carried in the "data" field of a report
// submission form.
type ReportData struct {
	JobID            string   `json:"jobId"`
	WorkSummary      []string `json:"workSummary"`
	StartTime        *string  `json:"startTime"`
	FinishTime       *string  `json:"finishTime"`
	RequiresFollowUp bool     `json:"requiresFollowUp"`
	Postponed        bool     `json:"postponed"`
	PostponedDate    *string  `json:"postponedDate"`
	PostponedReason  *string  `json:"postponedReason"`
}

// ParseReportData decodes raw. An empty or malformed payload is a
// validation error.
func ParseReportData(raw string) (ReportData, error) {
	var d ReportData
	if strings.TrimSpace(raw) == "" {
		return d, httperr.ErrBusinessMsg(httperr.CodeValidation, "data field is required")
	}
	if err := json.Unmarshal([]byte(raw), &d); err != nil {
		return d, httperr.ErrBusinessMsg(httperr.CodeValidation, "data field must be valid JSON")
	}
	return d, nil
}

func (d ReportData) Submission(submittedBy string) domain.Submission {
	return domain.Submission{
		JobID:            d.JobID,
		WorkSummary:      d.WorkSummary,
		StartTime:        d.StartTime,
		FinishTime:       d.FinishTime,
		RequiresFollowUp: d.RequiresFollowUp,
		Postponed:        d.Postponed,
		PostponedDate:    d.PostponedDate,
		PostponedReason:  d.PostponedReason,
		SubmittedBy:      submittedBy,
	}
}
