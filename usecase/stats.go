package usecase

import (
	"math"
	"sort"
	"strconv"

	"main/model"
	"main/utils"
)

// StatsService derives analytics from the session log. Everything here is a
// pure computation over an immutable snapshot of the log.
type StatsService struct {
	sessions *SessionsService
	clock    utils.Clock
}

func NewStatsService(sessions *SessionsService, clock utils.Clock) *StatsService {
	return &StatsService{sessions: sessions, clock: clock}
}

func toMinutes(seconds int) int {
	return int(math.Round(float64(seconds) / 60))
}

// Overall summarizes the whole log: total hours with one decimal, session
// count, and average session minutes (0 for an empty log).
func (svc *StatsService) Overall(sessions []model.StudySession) model.OverallStats {
	totalSeconds := 0
	for _, s := range sessions {
		totalSeconds += s.DurationSeconds
	}

	stats := model.OverallStats{
		TotalHours: strconv.FormatFloat(float64(totalSeconds)/3600, 'f', 1, 64),
		Count:      len(sessions),
	}
	if len(sessions) > 0 {
		stats.AvgMinutes = int(math.Round(float64(totalSeconds) / float64(len(sessions)) / 60))
	}
	return stats
}

// DailyLast7 buckets the log into the seven local calendar days ending
// today. Exactly seven points come back, oldest first; empty days carry
// zero minutes rather than being absent.
func (svc *StatsService) DailyLast7(sessions []model.StudySession) []model.DailyPoint {
	dates := utils.LastNDates(svc.clock.Now(), 7)

	secondsByDate := make(map[string]int, len(dates))
	for _, s := range sessions {
		secondsByDate[s.Date] += s.DurationSeconds
	}

	points := make([]model.DailyPoint, len(dates))
	for i, date := range dates {
		points[i] = model.DailyPoint{
			Name:     utils.ShortWeekday(date),
			FullDate: date,
			Minutes:  toMinutes(secondsByDate[date]),
		}
	}
	return points
}

// BySubject groups the log by exact subject label, sums each group's
// duration, and orders descending by minutes. Ties keep the order subjects
// were first encountered in the log.
func (svc *StatsService) BySubject(sessions []model.StudySession) []model.SubjectStat {
	secondsBySubject := make(map[string]int)
	order := []string{}
	for _, s := range sessions {
		if _, seen := secondsBySubject[s.Subject]; !seen {
			order = append(order, s.Subject)
		}
		secondsBySubject[s.Subject] += s.DurationSeconds
	}

	stats := make([]model.SubjectStat, len(order))
	for i, subject := range order {
		stats[i] = model.SubjectStat{Name: subject, Minutes: toMinutes(secondsBySubject[subject])}
	}
	sort.SliceStable(stats, func(i, j int) bool {
		return stats[i].Minutes > stats[j].Minutes
	})
	return stats
}

// Report assembles the full analytics payload from one log snapshot.
func (svc *StatsService) Report() model.StatsReport {
	sessions := svc.sessions.All()
	return model.StatsReport{
		Overall:  svc.Overall(sessions),
		Daily:    svc.DailyLast7(sessions),
		Subjects: svc.BySubject(sessions),
	}
}
