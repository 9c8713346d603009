package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"sync/atomic"

	"main/utils"
)

// adviceSessionWindow bounds the sessions summarized in the coaching
// prompt. Deliberately smaller than DefaultRecentSessions.
const adviceSessionWindow = 10

const (
	// FallbackAdvice is returned on any transport or decode failure.
	FallbackAdvice = "I'm having trouble connecting to your accountability network right now. Just focus on your next task!"
	// DefaultAdvice is returned when the model answers with no text.
	DefaultAdvice = "Keep pushing! You got this."
)

// ErrAdviceInFlight rejects an overlapping coaching request; the previous
// one must settle first.
var ErrAdviceInFlight = fmt.Errorf("a coaching request is already in flight")

// CoachClient generates coaching text from a prompt.
type CoachClient interface {
	GenerateAdvice(ctx context.Context, prompt string) (string, error)
}

// AdviceService builds a compact summary of recent activity and asks the
// coach for motivational text. Every failure path degrades to a fixed
// fallback string; callers never see a raw error. A boolean in-flight flag
// guards against re-entrant calls, not a queue.
type AdviceService struct {
	coach    CoachClient
	todos    *TodosService
	sessions *SessionsService
	clock    utils.Clock
	inFlight atomic.Bool
}

func NewAdviceService(coach CoachClient, todos *TodosService, sessions *SessionsService, clock utils.Clock) *AdviceService {
	return &AdviceService{coach: coach, todos: todos, sessions: sessions, clock: clock}
}

type sessionSummary struct {
	Subject string `json:"subject"`
	Minutes int    `json:"minutes"`
}

// buildPrompt summarizes pending/completed tasks and the recent sessions.
func (svc *AdviceService) buildPrompt() string {
	today := utils.LocalDate(svc.clock.Now())

	pending := 0
	completedToday := 0
	for _, todo := range svc.todos.All() {
		if !todo.Completed && todo.Date <= today {
			pending++
		}
		if todo.Completed && todo.Date == today {
			completedToday++
		}
	}

	recent := svc.sessions.Recent(adviceSessionWindow)
	summaries := make([]sessionSummary, len(recent))
	for i, s := range recent {
		summaries[i] = sessionSummary{Subject: s.Subject, Minutes: s.DurationSeconds / 60}
	}
	recentJSON, err := json.Marshal(summaries)
	if err != nil {
		recentJSON = []byte("[]")
	}

	return fmt.Sprintf(`You are a strict but encouraging study accountability partner.
Here is the user's recent data:
- Pending Tasks due today or overdue: %d
- Tasks completed today: %d
- Recent Study Sessions: %s

Analyze this data.
1. If they have studied well, congratulate them but remind them consistency is key.
2. If they have pending tasks or low study time, give them a "tough love" motivation to start right now.
3. Keep the response under 100 words.
4. Do not use markdown formatting like bolding, just plain text or simple bullet points.`,
		pending, completedToday, recentJSON)
}

// GetCoaching requests motivational text. While one request is in flight,
// further calls return ErrAdviceInFlight; that is the only error this
// method can return.
func (svc *AdviceService) GetCoaching(ctx context.Context) (string, error) {
	if !svc.inFlight.CompareAndSwap(false, true) {
		utils.TrackAdviceRequest("busy")
		return "", ErrAdviceInFlight
	}
	defer svc.inFlight.Store(false)

	advice, err := svc.coach.GenerateAdvice(ctx, svc.buildPrompt())
	if err != nil {
		utils.TrackAdviceRequest("fallback")
		log.Printf("Error getting coaching: %v", err)
		return FallbackAdvice, nil
	}
	if advice == "" {
		utils.TrackAdviceRequest("success")
		return DefaultAdvice, nil
	}
	utils.TrackAdviceRequest("success")
	return advice, nil
}
