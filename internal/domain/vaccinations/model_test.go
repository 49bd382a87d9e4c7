package vaccinations

import (
	"testing"
	"time"
)

func TestNextDueFrom_AddsIntervalDays(t *testing.T) {
	got, ok := NextDueFrom("2024-01-01", 180)
	if !ok {
		t.Fatalf("expected parseable date")
	}
	if got != "2024-06-29" {
		t.Fatalf("expected 2024-06-29, got %s", got)
	}
}

func TestNextDueFrom_YearInterval(t *testing.T) {
	got, ok := NextDueFrom("2024-03-15", 365)
	if !ok {
		t.Fatalf("expected parseable date")
	}
	if got != "2025-03-15" {
		t.Fatalf("expected 2025-03-15, got %s", got)
	}
}

func TestNextDueFrom_BadDate(t *testing.T) {
	if _, ok := NextDueFrom("pronto", 365); ok {
		t.Fatalf("expected ok=false for unparseable date")
	}
	if _, ok := NextDueFrom("", 365); ok {
		t.Fatalf("expected ok=false for empty date")
	}
}

func TestIsDue(t *testing.T) {
	today := time.Date(2026, 1, 15, 0, 0, 0, 0, time.UTC)

	cases := []struct {
		nextDue string
		want    bool
	}{
		{"2026-01-14", true},  // vencida ayer
		{"2026-01-15", true},  // vence hoy
		{"2026-01-16", false}, // vence mañana
		{"", false},           // sin fecha derivable, nunca vencida
		{"???", false},
	}
	for _, c := range cases {
		v := Vaccination{NextDue: c.nextDue}
		if got := v.IsDue(today); got != c.want {
			t.Fatalf("IsDue(%q) = %v, want %v", c.nextDue, got, c.want)
		}
	}
}
