package validators

import "testing"

func TestNormalizeEmail(t *testing.T) {
	if got := NormalizeEmail("  Boss@Test.COM "); got != "boss@test.com" {
		t.Fatalf("NormalizeEmail = %q", got)
	}
}

func TestIsEmail(t *testing.T) {
	tests := map[string]bool{
		"worker@test.com":  true,
		"worker":           false,
		"":                 false,
		"Name <a@b.com>":   false,
		"a@b":              true,
		"two@@example.com": false,
	}
	for in, want := range tests {
		if got := IsEmail(in); got != want {
			t.Errorf("IsEmail(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestIsEmailDomainValidRejectsMalformed(t *testing.T) {
	for _, in := range []string{"nodomain", "trailing@"} {
		if IsEmailDomainValid(in) {
			t.Errorf("IsEmailDomainValid(%q) should be false", in)
		}
	}
}

func TestIsDateAndClock(t *testing.T) {
	if !IsDate("2025-01-10") || IsDate("10/01/2025") || IsDate("2025-13-01") {
		t.Fatalf("IsDate misbehaves")
	}
	if !IsClock("09:00") || !IsClock("23:59") || IsClock("9:00") || IsClock("24:00") || IsClock("noon") {
		t.Fatalf("IsClock misbehaves")
	}
}
