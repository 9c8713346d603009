package repository

import (
	"context"
	"encoding/json"
	"log"
	"sync"

	"main/model"
	"main/store"
	"main/utils"
)

// SessionsRepo is the append-only study session log, mirrored to the
// persistent store under the study_sessions key. Sessions are never edited,
// reordered or deduplicated after the fact.
type SessionsRepo struct {
	store    store.Store
	mu       sync.RWMutex
	sessions []model.StudySession
}

// NewSessionsRepo loads the persisted session log. An undecodable value
// resets the log to empty without affecting any other key.
func NewSessionsRepo(ctx context.Context, s store.Store) (*SessionsRepo, error) {
	timer := utils.TrackStoreOperation("read", store.KeySessions)
	defer timer.ObserveDuration()

	repo := &SessionsRepo{store: s, sessions: []model.StudySession{}}

	raw, ok, err := s.Get(ctx, store.KeySessions)
	if err != nil {
		return nil, err
	}
	if !ok {
		return repo, nil
	}

	var sessions []model.StudySession
	if err := json.Unmarshal([]byte(raw), &sessions); err != nil {
		utils.TrackError("storage", "sessions_decode_failed")
		log.Printf("Corrupt value under %s, starting with an empty session log: %v", store.KeySessions, err)
		return repo, nil
	}
	repo.sessions = sessions
	return repo, nil
}

// Append adds a completed session to the end of the log.
func (r *SessionsRepo) Append(ctx context.Context, session model.StudySession) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	timer := utils.TrackStoreOperation("write", store.KeySessions)
	defer timer.ObserveDuration()

	r.sessions = append(r.sessions, session)
	data, err := json.Marshal(r.sessions)
	if err != nil {
		return err
	}
	if err := r.store.Set(ctx, store.KeySessions, string(data)); err != nil {
		utils.TrackError("storage", "sessions_write_failed")
		return err
	}
	return nil
}

// All returns the full log in append order.
func (r *SessionsRepo) All() []model.StudySession {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]model.StudySession, len(r.sessions))
	copy(out, r.sessions)
	return out
}

// Recent returns the last n entries in chronological order. The final slice
// of the log, never the first.
func (r *SessionsRepo) Recent(n int) []model.StudySession {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if n <= 0 || n > len(r.sessions) {
		n = len(r.sessions)
	}
	out := make([]model.StudySession, n)
	copy(out, r.sessions[len(r.sessions)-n:])
	return out
}
