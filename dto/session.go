package dto

import "main/model"

type SessionResponse struct {
	ID              string `json:"id"`
	Subject         string `json:"subject"`
	DurationSeconds int    `json:"duration_seconds"`
	StartTime       string `json:"start_time"`
	Date            string `json:"date"`
}

func ToSessionResponse(session *model.StudySession) SessionResponse {
	return SessionResponse{
		ID:              session.SessionID,
		Subject:         session.Subject,
		DurationSeconds: session.DurationSeconds,
		StartTime:       session.StartTime,
		Date:            session.Date,
	}
}

func ToSessionResponses(sessions []model.StudySession) []SessionResponse {
	responses := make([]SessionResponse, len(sessions))
	for i := range sessions {
		responses[i] = ToSessionResponse(&sessions[i])
	}
	return responses
}
