package store

import "context"

// Stable key contract. Every piece of persisted state lives under one of
// these keys; a decode failure for one key must never affect another.
const (
	KeySessions         = "study_sessions"
	KeyTodos            = "study_todos"
	KeyTimerSeconds     = "timer_seconds"
	KeyTimerRunning     = "timer_isActive"
	KeyTimerSubject     = "timer_subject"
	KeyTimerLastPersist = "timer_lastTimestamp"
)

// Store is the synchronous key/value persistence layer. Get reports whether
// the key existed; absence is not an error. Callers own serialization and
// must treat undecodable values as "no prior data".
type Store interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key string, value string) error
	Remove(ctx context.Context, key string) error
}
