package dto

import "main/model"

type TodoResponse struct {
	ID        string         `json:"id"`
	Text      string         `json:"text"`
	Completed bool           `json:"completed"`
	Date      string         `json:"date"`
	Priority  model.Priority `json:"priority"`
}

// ProgressResponse reports daily completion for one date.
type ProgressResponse struct {
	Date     string `json:"date"`
	Progress int    `json:"progress"` // percentage, 0..100
}

func ToTodoResponse(todo *model.TodoItem) TodoResponse {
	return TodoResponse{
		ID:        todo.TodoID,
		Text:      todo.Text,
		Completed: todo.Completed,
		Date:      todo.Date,
		Priority:  todo.Priority,
	}
}

func ToTodoResponses(todos []model.TodoItem) []TodoResponse {
	responses := make([]TodoResponse, len(todos))
	for i := range todos {
		responses[i] = ToTodoResponse(&todos[i])
	}
	return responses
}
