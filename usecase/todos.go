package usecase

import (
	"context"
	"math"
	"strings"

	"main/model"
	"main/repository"
	"main/utils"

	"github.com/google/uuid"
)

// TodosService is the task registry: date-keyed to-do items with completion
// state. All mutations are user actions; absent ids are silent no-ops.
type TodosService struct {
	repo  *repository.TodosRepo
	clock utils.Clock
}

func NewTodosService(repo *repository.TodosRepo, clock utils.Clock) *TodosService {
	return &TodosService{repo: repo, clock: clock}
}

// Add appends a new task. Empty or whitespace-only text is a silent no-op
// and returns nil. A blank date defaults to the local today.
func (svc *TodosService) Add(ctx context.Context, text, date string) (*model.TodoItem, error) {
	if strings.TrimSpace(text) == "" {
		return nil, nil
	}
	if date == "" {
		date = utils.LocalDate(svc.clock.Now())
	}

	todo := model.TodoItem{
		TodoID:    uuid.New().String(),
		Text:      text,
		Completed: false,
		Date:      date,
		Priority:  model.PriorityMedium, // reserved, no mutation surface yet
	}
	if err := svc.repo.Append(ctx, todo); err != nil {
		return nil, err
	}
	return &todo, nil
}

// Toggle flips a task's completion flag. Absent ids report false.
func (svc *TodosService) Toggle(ctx context.Context, todoID string) (bool, error) {
	return svc.repo.Toggle(ctx, todoID)
}

// Remove deletes a task. Absent ids report false.
func (svc *TodosService) Remove(ctx context.Context, todoID string) (bool, error) {
	return svc.repo.Delete(ctx, todoID)
}

// ResolveDate maps a blank date onto the local today.
func (svc *TodosService) ResolveDate(date string) string {
	if date == "" {
		return utils.LocalDate(svc.clock.Now())
	}
	return date
}

// ListFor returns the tasks whose date equals the argument, in insertion
// order. A blank date means the local today.
func (svc *TodosService) ListFor(date string) []model.TodoItem {
	return svc.repo.ListByDate(svc.ResolveDate(date))
}

// All returns every task regardless of date.
func (svc *TodosService) All() []model.TodoItem {
	return svc.repo.All()
}

// CompletionRatio is the rounded completion percentage for one date,
// 0 when the date has no tasks.
func (svc *TodosService) CompletionRatio(date string) int {
	todos := svc.ListFor(date)
	if len(todos) == 0 {
		return 0
	}
	completed := 0
	for _, todo := range todos {
		if todo.Completed {
			completed++
		}
	}
	return int(math.Round(100 * float64(completed) / float64(len(todos))))
}
