package insurance

import (
	"testing"
	"time"

	domainInsurance "fleet-maintenance-manager/internal/domain/insurance"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestClassifyPartition(t *testing.T) {
	today := date(2026, 8, 15)
	window := 30

	cases := []struct {
		name string
		end  time.Time
		want domainInsurance.Status
	}{
		{"day before today", date(2026, 8, 14), domainInsurance.StatusExpired},
		{"long past", date(2020, 1, 1), domainInsurance.StatusExpired},
		{"today", date(2026, 8, 15), domainInsurance.StatusExpiringSoon},
		{"inside window", date(2026, 9, 1), domainInsurance.StatusExpiringSoon},
		{"window boundary", date(2026, 9, 14), domainInsurance.StatusExpiringSoon},
		{"day past window", date(2026, 9, 15), domainInsurance.StatusValid},
		{"far future", date(2030, 1, 1), domainInsurance.StatusValid},
	}

	for _, tc := range cases {
		if got := Classify(tc.end, today, window); got != tc.want {
			t.Fatalf("%s: Classify(%v) = %s, want %s", tc.name, tc.end, got, tc.want)
		}
	}
}

func TestClassifyIgnoresTimeOfDay(t *testing.T) {
	today := time.Date(2026, 8, 15, 23, 59, 0, 0, time.UTC)
	end := time.Date(2026, 8, 15, 0, 1, 0, 0, time.UTC)

	// Same calendar day counts as not-yet-expired regardless of clock time.
	if got := Classify(end, today, 30); got != domainInsurance.StatusExpiringSoon {
		t.Fatalf("same-day policy classified %s, want %s", got, domainInsurance.StatusExpiringSoon)
	}
}

func TestClassifySmallWindow(t *testing.T) {
	today := date(2026, 8, 15)

	if got := Classify(date(2026, 8, 18), today, 5); got != domainInsurance.StatusExpiringSoon {
		t.Fatalf("end in 3 days with window 5 = %s, want expiring_soon", got)
	}
	if got := Classify(date(2026, 8, 21), today, 5); got != domainInsurance.StatusValid {
		t.Fatalf("end in 6 days with window 5 = %s, want valid", got)
	}
}

func TestClassifyDateString(t *testing.T) {
	today := date(2026, 8, 15)

	cases := []struct {
		in   string
		want domainInsurance.Status
	}{
		{"", domainInsurance.StatusUnknown},
		{"-", domainInsurance.StatusUnknown},
		{"not-a-date", domainInsurance.StatusUnknown},
		{"2026/08/20", domainInsurance.StatusUnknown},
		{"2026-08-10", domainInsurance.StatusExpired},
		{"2026-08-20", domainInsurance.StatusExpiringSoon},
		{"2027-01-01", domainInsurance.StatusValid},
		{"2027-01-01T00:00:00Z", domainInsurance.StatusValid},
	}

	for _, tc := range cases {
		if got := ClassifyDateString(tc.in, today, 30); got != tc.want {
			t.Fatalf("ClassifyDateString(%q) = %s, want %s", tc.in, got, tc.want)
		}
	}
}

func TestDaysUntilExpiry(t *testing.T) {
	today := date(2026, 8, 15)

	if got := DaysUntilExpiry(date(2026, 8, 20), today); got != 5 {
		t.Fatalf("DaysUntilExpiry = %d, want 5", got)
	}
	if got := DaysUntilExpiry(date(2026, 8, 15), today); got != 0 {
		t.Fatalf("DaysUntilExpiry same day = %d, want 0", got)
	}
	if got := DaysUntilExpiry(date(2026, 8, 10), today); got != -5 {
		t.Fatalf("DaysUntilExpiry past = %d, want -5", got)
	}
}
