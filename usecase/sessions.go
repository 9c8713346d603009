package usecase

import (
	"context"

	"main/model"
	"main/repository"
)

// DefaultRecentSessions caps general recent-session queries. The advice
// prompt uses its own smaller window (adviceSessionWindow).
const DefaultRecentSessions = 20

// SessionsService is the append-only log of completed study sessions.
type SessionsService struct {
	repo *repository.SessionsRepo
}

func NewSessionsService(repo *repository.SessionsRepo) *SessionsService {
	return &SessionsService{repo: repo}
}

// Append records one finished session. Sessions are immutable afterwards.
func (svc *SessionsService) Append(ctx context.Context, session model.StudySession) error {
	return svc.repo.Append(ctx, session)
}

// All returns the whole log in append order.
func (svc *SessionsService) All() []model.StudySession {
	return svc.repo.All()
}

// Recent returns the last n sessions in chronological order; n <= 0 applies
// the default cap.
func (svc *SessionsService) Recent(n int) []model.StudySession {
	if n <= 0 {
		n = DefaultRecentSessions
	}
	return svc.repo.Recent(n)
}
