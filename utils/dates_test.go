package utils

import (
	"testing"
	"time"
)

func TestLastNDates(t *testing.T) {
	anchor := time.Date(2024, 3, 1, 23, 30, 0, 0, time.Local)
	got := LastNDates(anchor, 3)
	want := []string{"2024-02-28", "2024-02-29", "2024-03-01"}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("dates[%d] = %s, want %s", i, got[i], want[i])
		}
	}
}

func TestShortWeekday(t *testing.T) {
	if got := ShortWeekday("2024-01-01"); got != "Mon" {
		t.Errorf("weekday = %s, want Mon", got)
	}
	if got := ShortWeekday("not-a-date"); got != "" {
		t.Errorf("weekday for garbage = %q, want empty", got)
	}
}

func TestValidDate(t *testing.T) {
	valid := []string{"2024-01-01", "1999-12-31"}
	invalid := []string{"", "2024-1-1", "2024-13-01", "2024-01-01T00:00:00Z", "yesterday"}
	for _, s := range valid {
		if !ValidDate(s) {
			t.Errorf("ValidDate(%q) = false, want true", s)
		}
	}
	for _, s := range invalid {
		if ValidDate(s) {
			t.Errorf("ValidDate(%q) = true, want false", s)
		}
	}
}
