package handler

import (
	"strconv"

	"main/dto"
	"main/usecase"
	"main/utils"

	"github.com/gin-gonic/gin"
)

type SessionsHandler struct {
	service *usecase.SessionsService
}

func NewSessionsHandler(service *usecase.SessionsService) *SessionsHandler {
	return &SessionsHandler{service: service}
}

// GetRecentSessions returns the last n sessions in chronological order,
// capped at the default window when no limit is given.
func (h *SessionsHandler) GetRecentSessions(c *gin.Context) {
	limit := 0
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			utils.BadRequest(c, "Invalid limit, expected a positive integer")
			return
		}
		limit = n
	}
	utils.Success(c, dto.ToSessionResponses(h.service.Recent(limit)))
}
