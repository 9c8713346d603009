package handler

import (
	"errors"

	"main/dto"
	"main/usecase"
	"main/utils"

	"github.com/gin-gonic/gin"
)

type TimerHandler struct {
	service *usecase.TimerService
}

func NewTimerHandler(service *usecase.TimerService) *TimerHandler {
	return &TimerHandler{service: service}
}

func (h *TimerHandler) GetTimer(c *gin.Context) {
	utils.Success(c, dto.ToTimerResponse(h.service.Snapshot()))
}

func (h *TimerHandler) StartTimer(c *gin.Context) {
	utils.Success(c, dto.ToTimerResponse(h.service.Start(c.Request.Context())))
}

func (h *TimerHandler) PauseTimer(c *gin.Context) {
	utils.Success(c, dto.ToTimerResponse(h.service.Pause(c.Request.Context())))
}

func (h *TimerHandler) ResumeTimer(c *gin.Context) {
	utils.Success(c, dto.ToTimerResponse(h.service.Resume(c.Request.Context())))
}

func (h *TimerHandler) ResetTimer(c *gin.Context) {
	utils.Success(c, dto.ToTimerResponse(h.service.Reset(c.Request.Context())))
}

func (h *TimerHandler) SetSubject(c *gin.Context) {
	var req struct {
		Subject string `json:"subject"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}
	utils.Success(c, dto.ToTimerResponse(h.service.SetSubject(c.Request.Context(), req.Subject)))
}

// SaveTimer logs the paused timer as a study session. Sessions under a
// minute need {"confirm": true}; without it the timer stays paused and the
// client is asked to confirm.
func (h *TimerHandler) SaveTimer(c *gin.Context) {
	var req struct {
		Confirm bool `json:"confirm"`
	}
	// An empty body means no confirmation.
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			utils.BadRequest(c, "Invalid request body: "+err.Error())
			return
		}
	}

	session, err := h.service.Save(c.Request.Context(), req.Confirm)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrConfirmRequired):
			utils.BadRequest(c, "Session is less than 1 minute. Repeat with confirm=true to save anyway.")
		case errors.Is(err, usecase.ErrTimerNotPaused):
			utils.Conflict(c, "Timer must be paused before saving")
		default:
			utils.InternalError(c, err.Error())
		}
		return
	}
	utils.Created(c, dto.ToSessionResponse(session))
}
