package usecase

import (
	"context"
	"errors"
	"log"
	"strconv"
	"strings"
	"sync"
	"time"

	"main/model"
	"main/store"
	"main/utils"

	"github.com/google/uuid"
)

var (
	// ErrTimerNotPaused is returned when save is attempted outside Paused.
	ErrTimerNotPaused = errors.New("timer must be paused before saving")
	// ErrConfirmRequired is returned for sub-minute saves without an
	// explicit confirmation; the timer is left untouched.
	ErrConfirmRequired = errors.New("session is shorter than one minute, confirmation required")
)

// DefaultSubject is used when a session is saved with a blank subject.
const DefaultSubject = "General Study"

// minSessionSeconds is the threshold under which saving needs confirmation.
const minSessionSeconds = 60

// TimerService is the drift-corrected focus timer. Elapsed time is always
// floor(now - startInstant), never an accumulated tick count, so throttled
// or missed ticks cannot under-count. The four timer keys are persisted
// together on every state change, which lets a restarted process
// fast-forward a running timer from the last persist timestamp.
type TimerService struct {
	store    store.Store
	sessions *SessionsService
	clock    utils.Clock

	mu           sync.Mutex
	phase        model.TimerPhase
	elapsed      int       // frozen seconds; authoritative while not running
	startInstant time.Time // valid while running
	subject      string
}

// NewTimerService restores the persisted timer state. Each key decodes
// independently; a bad value falls back to that key's default. A timer that
// was running keeps running: the downtime since the last persist is added
// per elapsed = saved + max(0, floor((now-last)/1000)).
func NewTimerService(ctx context.Context, s store.Store, sessions *SessionsService, clock utils.Clock) *TimerService {
	svc := &TimerService{
		store:    s,
		sessions: sessions,
		clock:    clock,
		phase:    model.TimerIdle,
	}

	now := clock.Now()

	elapsed := 0
	if raw, ok, err := s.Get(ctx, store.KeyTimerSeconds); err == nil && ok {
		if n, err := strconv.Atoi(raw); err == nil && n >= 0 {
			elapsed = n
		}
	}

	running := false
	if raw, ok, err := s.Get(ctx, store.KeyTimerRunning); err == nil && ok {
		running = raw == "true"
	}

	lastPersist := now
	if raw, ok, err := s.Get(ctx, store.KeyTimerLastPersist); err == nil && ok {
		if ms, err := strconv.ParseInt(raw, 10, 64); err == nil {
			lastPersist = time.UnixMilli(ms)
		}
	}

	if raw, ok, err := s.Get(ctx, store.KeyTimerSubject); err == nil && ok {
		svc.subject = raw
	}

	if running {
		gap := int(now.Sub(lastPersist) / time.Second)
		if gap > 0 {
			elapsed += gap
		}
		svc.phase = model.TimerRunning
		svc.startInstant = now.Add(-time.Duration(elapsed) * time.Second)
		svc.elapsed = elapsed
		svc.persist(ctx, now)
	} else if elapsed > 0 {
		svc.phase = model.TimerPaused
		svc.elapsed = elapsed
	}

	return svc
}

// elapsedAt derives the current elapsed seconds. Callers hold the lock.
func (svc *TimerService) elapsedAt(now time.Time) int {
	if svc.phase != model.TimerRunning {
		return svc.elapsed
	}
	seconds := int(now.Sub(svc.startInstant) / time.Second)
	if seconds < 0 {
		return 0
	}
	return seconds
}

// persist writes all four timer keys together so reload reconciliation is
// always self-consistent. Callers hold the lock.
func (svc *TimerService) persist(ctx context.Context, now time.Time) {
	timer := utils.TrackStoreOperation("write", store.KeyTimerSeconds)
	defer timer.ObserveDuration()

	running := "false"
	if svc.phase == model.TimerRunning {
		running = "true"
	}

	writes := map[string]string{
		store.KeyTimerSeconds:     strconv.Itoa(svc.elapsedAt(now)),
		store.KeyTimerRunning:     running,
		store.KeyTimerSubject:     svc.subject,
		store.KeyTimerLastPersist: strconv.FormatInt(now.UnixMilli(), 10),
	}
	for key, value := range writes {
		if err := svc.store.Set(ctx, key, value); err != nil {
			utils.TrackError("storage", "timer_write_failed")
			log.Printf("Failed to persist %s: %v", key, err)
		}
	}
}

// clearKeys removes persisted timer keys. Callers hold the lock.
func (svc *TimerService) clearKeys(ctx context.Context, keys ...string) {
	for _, key := range keys {
		if err := svc.store.Remove(ctx, key); err != nil {
			utils.TrackError("storage", "timer_remove_failed")
			log.Printf("Failed to remove %s: %v", key, err)
		}
	}
}

// Snapshot reports the current state with elapsed derived from the clock.
func (svc *TimerService) Snapshot() model.TimerSnapshot {
	svc.mu.Lock()
	defer svc.mu.Unlock()

	now := svc.clock.Now()
	return model.TimerSnapshot{
		Phase:          svc.phase,
		ElapsedSeconds: svc.elapsedAt(now),
		Subject:        svc.subject,
		LastPersist:    now,
	}
}

// Start begins counting. From Paused it continues without a jump by
// recomputing startInstant = now - elapsed. Already running is a no-op.
func (svc *TimerService) Start(ctx context.Context) model.TimerSnapshot {
	svc.mu.Lock()
	defer svc.mu.Unlock()

	now := svc.clock.Now()
	if svc.phase != model.TimerRunning {
		svc.startInstant = now.Add(-time.Duration(svc.elapsed) * time.Second)
		svc.phase = model.TimerRunning
		svc.persist(ctx, now)
		utils.TrackTimerTransition("start")
	}
	return model.TimerSnapshot{Phase: svc.phase, ElapsedSeconds: svc.elapsedAt(now), Subject: svc.subject, LastPersist: now}
}

// Pause freezes elapsed at floor(now - startInstant). Not running is a no-op.
func (svc *TimerService) Pause(ctx context.Context) model.TimerSnapshot {
	svc.mu.Lock()
	defer svc.mu.Unlock()

	now := svc.clock.Now()
	if svc.phase == model.TimerRunning {
		svc.elapsed = svc.elapsedAt(now)
		svc.phase = model.TimerPaused
		svc.persist(ctx, now)
		utils.TrackTimerTransition("pause")
	}
	return model.TimerSnapshot{Phase: svc.phase, ElapsedSeconds: svc.elapsedAt(now), Subject: svc.subject, LastPersist: now}
}

// Resume is Start constrained to the Paused state.
func (svc *TimerService) Resume(ctx context.Context) model.TimerSnapshot {
	svc.mu.Lock()
	paused := svc.phase == model.TimerPaused
	svc.mu.Unlock()
	if !paused {
		return svc.Snapshot()
	}
	return svc.Start(ctx)
}

// Reset discards the elapsed time and the persisted running/elapsed keys.
// The subject draft survives so the same subject can be re-timed.
func (svc *TimerService) Reset(ctx context.Context) model.TimerSnapshot {
	svc.mu.Lock()
	defer svc.mu.Unlock()

	now := svc.clock.Now()
	svc.phase = model.TimerIdle
	svc.elapsed = 0
	svc.clearKeys(ctx, store.KeyTimerSeconds, store.KeyTimerRunning)
	utils.TrackTimerTransition("reset")
	return model.TimerSnapshot{Phase: svc.phase, ElapsedSeconds: 0, Subject: svc.subject, LastPersist: now}
}

// SetSubject updates the subject draft and re-persists the timer state.
func (svc *TimerService) SetSubject(ctx context.Context, subject string) model.TimerSnapshot {
	svc.mu.Lock()
	defer svc.mu.Unlock()

	now := svc.clock.Now()
	svc.subject = subject
	svc.persist(ctx, now)
	return model.TimerSnapshot{Phase: svc.phase, ElapsedSeconds: svc.elapsedAt(now), Subject: svc.subject, LastPersist: now}
}

// Save turns the paused timer into an immutable StudySession and hands it
// to the session log, then clears both the transient and persisted timer
// state including the subject. Saving under a minute needs confirm; a
// declined confirmation leaves the timer Paused and unchanged.
func (svc *TimerService) Save(ctx context.Context, confirm bool) (*model.StudySession, error) {
	svc.mu.Lock()
	defer svc.mu.Unlock()

	if svc.phase != model.TimerPaused {
		return nil, ErrTimerNotPaused
	}
	if svc.elapsed < minSessionSeconds && !confirm {
		return nil, ErrConfirmRequired
	}

	now := svc.clock.Now()
	subject := strings.TrimSpace(svc.subject)
	if subject == "" {
		subject = DefaultSubject
	}

	session := model.StudySession{
		SessionID:       uuid.New().String(),
		Subject:         subject,
		DurationSeconds: svc.elapsed,
		StartTime:       now.UTC().Format(time.RFC3339),
		Date:            utils.LocalDate(now),
	}
	if err := svc.sessions.Append(ctx, session); err != nil {
		return nil, err
	}

	svc.phase = model.TimerIdle
	svc.elapsed = 0
	svc.subject = ""
	svc.clearKeys(ctx, store.KeyTimerSeconds, store.KeyTimerRunning, store.KeyTimerSubject)
	utils.TrackTimerTransition("save")
	return &session, nil
}

// RunPersistLoop drives PersistRunning on the given interval until the
// context is cancelled. Nominal period is one second; it is a freshness
// aid, not a correctness requirement.
func (svc *TimerService) RunPersistLoop(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			svc.PersistRunning(ctx)
		case <-ctx.Done():
			return
		}
	}
}

// PersistRunning re-persists a running timer so the last-persist timestamp
// stays fresh for crash recovery. Called from the periodic tick; accuracy
// never depends on it. A non-running timer is left alone.
func (svc *TimerService) PersistRunning(ctx context.Context) {
	svc.mu.Lock()
	defer svc.mu.Unlock()

	if svc.phase != model.TimerRunning {
		return
	}
	svc.persist(ctx, svc.clock.Now())
}
