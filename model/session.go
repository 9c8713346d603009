package model

// StudySession is one completed, saved focus-timer run. Sessions are
// immutable once logged; the session list is append-only.
type StudySession struct {
	SessionID       string `json:"id"`
	Subject         string `json:"subject"`
	DurationSeconds int    `json:"durationSeconds"`
	StartTime       string `json:"startTime"` // ISO-8601 instant of the save
	Date            string `json:"date"`      // local YYYY-MM-DD, used for bucketing
}
