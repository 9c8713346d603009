package handler

import (
	"errors"

	"main/usecase"
	"main/utils"

	"github.com/gin-gonic/gin"
)

type AdviceHandler struct {
	service *usecase.AdviceService
}

func NewAdviceHandler(service *usecase.AdviceService) *AdviceHandler {
	return &AdviceHandler{service: service}
}

// GetAdvice asks the coach for motivational text. Only one request may be
// in flight; overlapping calls get 429 and should retry after the first
// settles. Transport failures surface as the fixed fallback text, never as
// an error response.
func (h *AdviceHandler) GetAdvice(c *gin.Context) {
	advice, err := h.service.GetCoaching(c.Request.Context())
	if err != nil {
		if errors.Is(err, usecase.ErrAdviceInFlight) {
			utils.TooManyRequests(c, "A coaching request is already in flight")
			return
		}
		utils.InternalError(c, err.Error())
		return
	}
	utils.Success(c, gin.H{"advice": advice})
}
