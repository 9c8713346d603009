package usecase

import (
	"context"
	"fmt"
	"testing"
	"time"

	"main/model"
	"main/repository"
	"main/store"
)

func newStatsFixture(t *testing.T, clk *fakeClock) (*StatsService, *SessionsService) {
	t.Helper()
	repo, err := repository.NewSessionsRepo(context.Background(), store.NewMemoryStore())
	if err != nil {
		t.Fatal("failed to create repo:", err)
	}
	sessions := NewSessionsService(repo)
	return NewStatsService(sessions, clk), sessions
}

func TestStatsSpecExample(t *testing.T) {
	ctx := context.Background()
	clk := newFakeClock(time.Date(2024, 1, 2, 15, 0, 0, 0, time.Local))
	svc, sessions := newStatsFixture(t, clk)

	sessions.Append(ctx, model.StudySession{SessionID: "s1", Subject: "Math", DurationSeconds: 1800, Date: "2024-01-01"})
	sessions.Append(ctx, model.StudySession{SessionID: "s2", Subject: "Math", DurationSeconds: 600, Date: "2024-01-02"})

	report := svc.Report()

	if report.Overall.TotalHours != "0.7" {
		t.Errorf("total hours = %q, want \"0.7\"", report.Overall.TotalHours)
	}
	if report.Overall.Count != 2 {
		t.Errorf("count = %d, want 2", report.Overall.Count)
	}
	if report.Overall.AvgMinutes != 20 {
		t.Errorf("avg minutes = %d, want 20", report.Overall.AvgMinutes)
	}

	if len(report.Subjects) != 1 {
		t.Fatalf("expected one subject group, got %d", len(report.Subjects))
	}
	if report.Subjects[0].Name != "Math" || report.Subjects[0].Minutes != 40 {
		t.Errorf("by-subject gave %+v, want {Math 40}", report.Subjects[0])
	}
}

func TestStatsOverallEmptyLog(t *testing.T) {
	clk := newFakeClock(time.Date(2024, 1, 2, 15, 0, 0, 0, time.Local))
	svc, _ := newStatsFixture(t, clk)

	report := svc.Report()
	if report.Overall.TotalHours != "0.0" || report.Overall.Count != 0 || report.Overall.AvgMinutes != 0 {
		t.Errorf("empty log gave %+v", report.Overall)
	}
}

func TestStatsDailyLast7AlwaysSevenPoints(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2024, 1, 2, 15, 0, 0, 0, time.Local)
	clk := newFakeClock(now)
	svc, sessions := newStatsFixture(t, clk)

	t.Run("EmptyLog", func(t *testing.T) {
		daily := svc.DailyLast7(nil)
		if len(daily) != 7 {
			t.Fatalf("expected 7 points, got %d", len(daily))
		}
		for _, p := range daily {
			if p.Minutes != 0 {
				t.Errorf("empty log day %s has %d minutes", p.FullDate, p.Minutes)
			}
		}
	})

	sessions.Append(ctx, model.StudySession{SessionID: "s1", Subject: "Math", DurationSeconds: 1800, Date: "2024-01-01"})
	sessions.Append(ctx, model.StudySession{SessionID: "s2", Subject: "Math", DurationSeconds: 600, Date: "2024-01-02"})
	// Outside the window; must not appear.
	sessions.Append(ctx, model.StudySession{SessionID: "s3", Subject: "Math", DurationSeconds: 3600, Date: "2023-12-01"})

	daily := svc.DailyLast7(sessions.All())
	if len(daily) != 7 {
		t.Fatalf("expected 7 points, got %d", len(daily))
	}

	t.Run("OldestFirstEndingToday", func(t *testing.T) {
		if daily[6].FullDate != "2024-01-02" {
			t.Errorf("last point = %s, want today", daily[6].FullDate)
		}
		if daily[0].FullDate != "2023-12-27" {
			t.Errorf("first point = %s, want 2023-12-27", daily[0].FullDate)
		}
	})

	t.Run("WeekdayLabels", func(t *testing.T) {
		// 2024-01-01 was a Monday.
		if daily[5].Name != "Mon" {
			t.Errorf("label = %q, want \"Mon\"", daily[5].Name)
		}
		if daily[6].Name != "Tue" {
			t.Errorf("label = %q, want \"Tue\"", daily[6].Name)
		}
	})

	t.Run("TotalsMatchWindowFilter", func(t *testing.T) {
		total := 0
		for _, p := range daily {
			total += p.Minutes
		}
		if total != 40 {
			t.Errorf("window total = %d minutes, want 40", total)
		}
	})
}

func TestStatsBySubjectOrdering(t *testing.T) {
	ctx := context.Background()
	clk := newFakeClock(time.Date(2024, 1, 2, 15, 0, 0, 0, time.Local))
	svc, sessions := newStatsFixture(t, clk)

	sessions.Append(ctx, model.StudySession{SessionID: "s1", Subject: "History", DurationSeconds: 600, Date: "2024-01-02"})
	sessions.Append(ctx, model.StudySession{SessionID: "s2", Subject: "Math", DurationSeconds: 1800, Date: "2024-01-02"})
	sessions.Append(ctx, model.StudySession{SessionID: "s3", Subject: "Art", DurationSeconds: 600, Date: "2024-01-02"})

	subjects := svc.BySubject(sessions.All())
	if len(subjects) != 3 {
		t.Fatalf("expected 3 groups, got %d", len(subjects))
	}
	if subjects[0].Name != "Math" {
		t.Errorf("largest group first, got %q", subjects[0].Name)
	}
	// History and Art tie on 10 minutes: first-encounter order wins.
	if subjects[1].Name != "History" || subjects[2].Name != "Art" {
		t.Errorf("tie order = [%q, %q], want [History, Art]", subjects[1].Name, subjects[2].Name)
	}
}

func TestStatsBySubjectIsCaseSensitive(t *testing.T) {
	ctx := context.Background()
	clk := newFakeClock(time.Date(2024, 1, 2, 15, 0, 0, 0, time.Local))
	svc, sessions := newStatsFixture(t, clk)

	sessions.Append(ctx, model.StudySession{SessionID: "s1", Subject: "math", DurationSeconds: 600, Date: "2024-01-02"})
	sessions.Append(ctx, model.StudySession{SessionID: "s2", Subject: "Math", DurationSeconds: 600, Date: "2024-01-02"})

	if got := len(svc.BySubject(sessions.All())); got != 2 {
		t.Errorf("expected 2 case-sensitive groups, got %d", got)
	}
}

func TestStatsBySubjectMinutesCloseToTotal(t *testing.T) {
	ctx := context.Background()
	clk := newFakeClock(time.Date(2024, 1, 2, 15, 0, 0, 0, time.Local))
	svc, sessions := newStatsFixture(t, clk)

	// Per-group rounding may drift from the exact total by at most one
	// minute per group.
	totalSeconds := 0
	for i, seconds := range []int{90, 150, 45, 3601} {
		sessions.Append(ctx, model.StudySession{
			SessionID:       fmt.Sprintf("s%d", i),
			Subject:         fmt.Sprintf("Subject %d", i),
			DurationSeconds: seconds,
			Date:            "2024-01-02",
		})
		totalSeconds += seconds
	}

	subjects := svc.BySubject(sessions.All())
	sum := 0
	for _, s := range subjects {
		sum += s.Minutes
	}
	exact := float64(totalSeconds) / 60
	if diff := float64(sum) - exact; diff > float64(len(subjects)) || diff < -float64(len(subjects)) {
		t.Errorf("group minute sum %d drifts too far from %f", sum, exact)
	}
}
