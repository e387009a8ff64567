package job

import (
	"testing"

	"github.com/merseybathrooms/jobtracker/internal/httperr"
)

func TestStatusAfterReport(t *testing.T) {
	if got := StatusAfterReport(false); got != StatusCompleted {
		t.Fatalf("completed report should close the job, got %s", got)
	}
	if got := StatusAfterReport(true); got != StatusPending {
		t.Fatalf("postponed report should keep the job pending, got %s", got)
	}
}

func TestInitialStatus(t *testing.T) {
	if InitialStatus() != StatusPending {
		t.Fatalf("new jobs must start PENDING")
	}
}

func TestCanReport(t *testing.T) {
	if err := CanReport(StatusPending); err != nil {
		t.Fatalf("pending job should accept a report: %v", err)
	}
	if err := CanReport(StatusInProgress); err != nil {
		t.Fatalf("in-progress job should accept a report: %v", err)
	}
	if err := CanReport(StatusCompleted); !httperr.IsBusiness(err, httperr.CodeDuplicateReport) {
		t.Fatalf("completed job should reject a report, got %v", err)
	}
}

func TestParseStatus(t *testing.T) {
	for _, s := range []string{"PENDING", "IN_PROGRESS", "COMPLETED"} {
		if _, err := ParseStatus(s); err != nil {
			t.Fatalf("ParseStatus(%q): %v", s, err)
		}
	}
	if _, err := ParseStatus("pending"); !httperr.IsBusiness(err, httperr.CodeValidation) {
		t.Fatalf("lowercase status should be rejected, got %v", err)
	}
}
