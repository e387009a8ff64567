package timezone

import (
	"testing"
	"time"
)

func TestLocationFallsBackToDefault(t *testing.T) {
	if got := Location("Not/AZone").String(); got != DefaultTimezone {
		t.Fatalf("expected fallback to %s, got %s", DefaultTimezone, got)
	}
	if got := Location("UTC").String(); got != "UTC" {
		t.Fatalf("expected UTC, got %s", got)
	}
}

func TestToday(t *testing.T) {
	today := Today("UTC")
	if _, err := time.Parse(DateLayout, today); err != nil {
		t.Fatalf("Today returned %q: %v", today, err)
	}
}
