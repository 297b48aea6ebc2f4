package utils

import (
	"testing"
	"time"
)

func TestParseMoney(t *testing.T) {
	cases := []struct {
		in      string
		want    int64
		wantErr bool
	}{
		{"1234.56", 123456, false},
		{"500", 50000, false},
		{" 0.01 ", 1, false},
		{"0", 0, false},
		{"-5", 0, true},
		{"abc", 0, true},
		{"", 0, true},
	}
	for _, tc := range cases {
		got, err := ParseMoney(tc.in)
		if tc.wantErr {
			if err == nil {
				t.Errorf("ParseMoney(%q) expected error, got %d", tc.in, got)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseMoney(%q): %v", tc.in, err)
			continue
		}
		if got != tc.want {
			t.Errorf("ParseMoney(%q) = %d, want %d", tc.in, got, tc.want)
		}
	}
}

func TestMoneyLocalized(t *testing.T) {
	en := NewPrinter("en-US")
	if got := Money(en, 123456); got != "1,234.56" {
		t.Errorf("Money(en-US, 123456) = %q, want 1,234.56", got)
	}
	if got := Money(en, 50); got != "0.50" {
		t.Errorf("Money(en-US, 50) = %q, want 0.50", got)
	}
}

func TestDateRoundTrip(t *testing.T) {
	parsed, err := ParseDate(" 2026-03-15 ")
	if err != nil {
		t.Fatalf("ParseDate: %v", err)
	}
	if got := Date(parsed); got != "2026-03-15" {
		t.Errorf("Date(ParseDate(...)) = %q, want 2026-03-15", got)
	}
	if _, err := ParseDate("15/03/2026"); err == nil {
		t.Error("expected error for non-ISO date")
	}
}

func TestDateTruncatesClock(t *testing.T) {
	stamp := time.Date(2026, 3, 15, 23, 59, 1, 0, time.UTC)
	if got := Date(stamp); got != "2026-03-15" {
		t.Errorf("Date = %q, want 2026-03-15", got)
	}
}
