package handler

import (
	"main/dto"
	"main/usecase"
	"main/utils"

	"github.com/gin-gonic/gin"
)

type TodosHandler struct {
	service *usecase.TodosService
}

func NewTodosHandler(service *usecase.TodosService) *TodosHandler {
	return &TodosHandler{service: service}
}

func (h *TodosHandler) CreateTodo(c *gin.Context) {
	var req struct {
		Text string `json:"text"`
		Date string `json:"date" binding:"omitempty,dateformat"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	todo, err := h.service.Add(c.Request.Context(), req.Text, req.Date)
	if err != nil {
		utils.InternalError(c, err.Error())
		return
	}
	// Whitespace-only text is a silent no-op, not an error.
	if todo == nil {
		utils.Success(c, nil)
		return
	}
	utils.Created(c, dto.ToTodoResponse(todo))
}

func (h *TodosHandler) ListTodos(c *gin.Context) {
	date := c.Query("date")
	if date != "" && !utils.ValidDate(date) {
		utils.BadRequest(c, "Invalid date, expected YYYY-MM-DD")
		return
	}

	todos := h.service.ListFor(date)
	utils.Success(c, dto.ToTodoResponses(todos))
}

func (h *TodosHandler) ToggleTodo(c *gin.Context) {
	todoID := c.Param("id")
	if todoID == "" {
		utils.BadRequest(c, "Missing todo ID")
		return
	}

	found, err := h.service.Toggle(c.Request.Context(), todoID)
	if err != nil {
		utils.InternalError(c, err.Error())
		return
	}
	if !found {
		utils.NotFound(c, "Todo not found")
		return
	}
	utils.Success(c, gin.H{"toggled": todoID})
}

func (h *TodosHandler) DeleteTodo(c *gin.Context) {
	todoID := c.Param("id")
	if todoID == "" {
		utils.BadRequest(c, "Missing todo ID")
		return
	}

	found, err := h.service.Remove(c.Request.Context(), todoID)
	if err != nil {
		utils.InternalError(c, err.Error())
		return
	}
	if !found {
		utils.NotFound(c, "Todo not found")
		return
	}
	utils.Success(c, gin.H{"deleted": todoID})
}

func (h *TodosHandler) GetProgress(c *gin.Context) {
	date := c.Query("date")
	if date != "" && !utils.ValidDate(date) {
		utils.BadRequest(c, "Invalid date, expected YYYY-MM-DD")
		return
	}

	utils.Success(c, dto.ProgressResponse{
		Date:     h.service.ResolveDate(date),
		Progress: h.service.CompletionRatio(date),
	})
}
