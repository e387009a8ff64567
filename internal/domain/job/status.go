package job

import "github.com/merseybathrooms/jobtracker/internal/httperr"

// ===============================
// Job Status
// ===============================

type Status string

const (
	StatusPending    Status = "PENDING"
	StatusInProgress Status = "IN_PROGRESS"
	StatusCompleted  Status = "COMPLETED"
)

func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusInProgress, StatusCompleted:
		return true
	}
	return false
}

func ParseStatus(s string) (Status, error) {
	st := Status(s)
	if !st.Valid() {
		return "", httperr.ErrBusinessMsg(httperr.CodeValidation, "unknown job status")
	}
	return st, nil
}

func InitialStatus() Status {
	return StatusPending
}

// StatusAfterReport is the only transition rule in the system: a postponed
// report sends the job back to the pending queue, anything else closes it.
func StatusAfterReport(postponed bool) Status {
	if postponed {
		return StatusPending
	}
	return StatusCompleted
}

// CanReport checks whether a job in the given state may receive a report.
// Completed jobs already carry their report.
func CanReport(current Status) error {
	if current == StatusCompleted {
		return httperr.ErrBusiness(httperr.CodeDuplicateReport)
	}
	return nil
}
