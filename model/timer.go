package model

import "time"

// TimerPhase is the focus timer's lifecycle state.
type TimerPhase string

const (
	TimerIdle    TimerPhase = "idle"
	TimerRunning TimerPhase = "running"
	TimerPaused  TimerPhase = "paused"
)

// TimerSnapshot is the timer state as persisted and as served to clients.
// ElapsedSeconds is always derived from timestamp subtraction while running,
// never from accumulated ticks.
type TimerSnapshot struct {
	Phase          TimerPhase `json:"phase"`
	ElapsedSeconds int        `json:"elapsed_seconds"`
	Subject        string     `json:"subject"`
	LastPersist    time.Time  `json:"last_persist"`
}
