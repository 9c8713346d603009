package model

// OverallStats summarizes the whole session log.
type OverallStats struct {
	TotalHours string `json:"total_hours"` // fixed 1-decimal string, e.g. "0.7"
	Count      int    `json:"count"`
	AvgMinutes int    `json:"avg_minutes"`
}

// DailyPoint is one bar of the last-7-days chart. Exactly seven points are
// produced, oldest first; days without sessions carry zero minutes.
type DailyPoint struct {
	Name     string `json:"name"` // short weekday label, e.g. "Mon"
	FullDate string `json:"full_date"`
	Minutes  int    `json:"minutes"`
}

// SubjectStat is total minutes for one subject, case-sensitive grouping.
type SubjectStat struct {
	Name    string `json:"name"`
	Minutes int    `json:"minutes"`
}

// StatsReport is the full analytics payload.
type StatsReport struct {
	Overall  OverallStats  `json:"overall"`
	Daily    []DailyPoint  `json:"daily"`
	Subjects []SubjectStat `json:"subjects"`
}
