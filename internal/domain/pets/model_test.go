package pets

import (
	"errors"
	"testing"
	"time"
)

func TestPet_Age_WholeYears(t *testing.T) {
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	p := Pet{Birthdate: "2020-01-01"}
	age, ok := p.Age(now)
	if !ok {
		t.Fatalf("expected parseable birthdate")
	}
	if age != 4 {
		t.Fatalf("expected age 4, got %d", age)
	}
}

func TestPet_Age_TruncatesPartialYear(t *testing.T) {
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	// 364 días no llegan a un año
	p := Pet{Birthdate: "2023-01-03"}
	age, ok := p.Age(now)
	if !ok || age != 0 {
		t.Fatalf("expected age 0, got %d (ok=%v)", age, ok)
	}
}

func TestPet_Age_FutureBirthdateClampsToZero(t *testing.T) {
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	p := Pet{Birthdate: "2025-06-01"}
	age, ok := p.Age(now)
	if !ok {
		t.Fatalf("expected parseable birthdate")
	}
	if age != 0 {
		t.Fatalf("expected clamped age 0, got %d", age)
	}
}

func TestPet_Age_UnparseableReportsUnknown(t *testing.T) {
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	for _, bad := range []string{"", "hace un tiempo", "01/02/2020", "2020-13-40"} {
		p := Pet{Birthdate: bad}
		if _, ok := p.Age(now); ok {
			t.Fatalf("expected unknown age for %q", bad)
		}
	}
}

func TestNormalizeContact_StripsFormatting(t *testing.T) {
	got, err := NormalizeContact(" (0917) 123-4567 ")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "09171234567" {
		t.Fatalf("expected 09171234567, got %q", got)
	}
}

func TestNormalizeContact_EmptyIsAbsent(t *testing.T) {
	got, err := NormalizeContact("   ")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "" {
		t.Fatalf("expected empty contact, got %q", got)
	}
}

func TestNormalizeContact_RejectsOutOfRange(t *testing.T) {
	for _, bad := range []string{"123", "12-34-56", "1234567890123456"} {
		if _, err := NormalizeContact(bad); !errors.Is(err, ErrInvalidContact) {
			t.Fatalf("expected ErrInvalidContact for %q, got %v", bad, err)
		}
	}
}
