package handler

import (
	"github.com/gin-gonic/gin"

	"goalquest/usecase"
	"goalquest/utils"
)

type StatsHandler struct {
	service *usecase.StatsService
}

func NewStatsHandler(service *usecase.StatsService) *StatsHandler {
	return &StatsHandler{service: service}
}

func (h *StatsHandler) GetUserStats(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		utils.Unauthorized(c, "Missing user ID")
		return
	}

	stats, err := h.service.GetUserStats(c.Request.Context(), userID.(string))
	if err != nil {
		utils.InternalError(c, "Failed to compute statistics")
		return
	}
	if stats == nil {
		utils.NotFound(c, "User not found")
		return
	}

	utils.Success(c, stats)
}
