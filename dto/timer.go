package dto

import (
	"fmt"

	"main/model"
)

type TimerResponse struct {
	Phase          model.TimerPhase `json:"phase"`
	ElapsedSeconds int              `json:"elapsed_seconds"`
	Display        string           `json:"display"` // HH:MM:SS
	Subject        string           `json:"subject"`
}

func ToTimerResponse(snapshot model.TimerSnapshot) TimerResponse {
	return TimerResponse{
		Phase:          snapshot.Phase,
		ElapsedSeconds: snapshot.ElapsedSeconds,
		Display:        formatElapsed(snapshot.ElapsedSeconds),
		Subject:        snapshot.Subject,
	}
}

func formatElapsed(totalSeconds int) string {
	hours := totalSeconds / 3600
	minutes := (totalSeconds % 3600) / 60
	seconds := totalSeconds % 60
	return fmt.Sprintf("%02d:%02d:%02d", hours, minutes, seconds)
}
