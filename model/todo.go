package model

type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

// TodoItem is a single task on a calendar day. Display order follows
// insertion order; Date is the user's local calendar date (YYYY-MM-DD).
type TodoItem struct {
	TodoID    string   `json:"id"`
	Text      string   `json:"text"`
	Completed bool     `json:"completed"`
	Date      string   `json:"date"`
	Priority  Priority `json:"priority"`
}
