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

// TodosRepo keeps the task list in memory and mirrors every mutation to the
// persistent store under the study_todos key.
type TodosRepo struct {
	store store.Store
	mu    sync.RWMutex
	todos []model.TodoItem
}

// NewTodosRepo loads the persisted task list. An undecodable value resets
// the list to empty; it never aborts startup and never touches other keys.
func NewTodosRepo(ctx context.Context, s store.Store) (*TodosRepo, error) {
	timer := utils.TrackStoreOperation("read", store.KeyTodos)
	defer timer.ObserveDuration()

	repo := &TodosRepo{store: s, todos: []model.TodoItem{}}

	raw, ok, err := s.Get(ctx, store.KeyTodos)
	if err != nil {
		return nil, err
	}
	if !ok {
		return repo, nil
	}

	var todos []model.TodoItem
	if err := json.Unmarshal([]byte(raw), &todos); err != nil {
		utils.TrackError("storage", "todos_decode_failed")
		log.Printf("Corrupt value under %s, starting with an empty task list: %v", store.KeyTodos, err)
		return repo, nil
	}
	repo.todos = todos
	return repo, nil
}

func (r *TodosRepo) persist(ctx context.Context) error {
	timer := utils.TrackStoreOperation("write", store.KeyTodos)
	defer timer.ObserveDuration()

	data, err := json.Marshal(r.todos)
	if err != nil {
		return err
	}
	if err := r.store.Set(ctx, store.KeyTodos, string(data)); err != nil {
		utils.TrackError("storage", "todos_write_failed")
		return err
	}
	return nil
}

// Append adds a task to the end of the list.
func (r *TodosRepo) Append(ctx context.Context, todo model.TodoItem) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.todos = append(r.todos, todo)
	return r.persist(ctx)
}

// Toggle flips the completion flag. Reports whether the id was present.
func (r *TodosRepo) Toggle(ctx context.Context, todoID string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.todos {
		if r.todos[i].TodoID == todoID {
			r.todos[i].Completed = !r.todos[i].Completed
			return true, r.persist(ctx)
		}
	}
	return false, nil
}

// Delete removes the task with the given id. Reports whether it was present.
func (r *TodosRepo) Delete(ctx context.Context, todoID string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.todos {
		if r.todos[i].TodoID == todoID {
			r.todos = append(r.todos[:i], r.todos[i+1:]...)
			return true, r.persist(ctx)
		}
	}
	return false, nil
}

// All returns the full task list in insertion order.
func (r *TodosRepo) All() []model.TodoItem {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]model.TodoItem, len(r.todos))
	copy(out, r.todos)
	return out
}

// ListByDate returns the tasks for one calendar date, insertion order kept.
func (r *TodosRepo) ListByDate(date string) []model.TodoItem {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := []model.TodoItem{}
	for _, todo := range r.todos {
		if todo.Date == date {
			out = append(out, todo)
		}
	}
	return out
}
