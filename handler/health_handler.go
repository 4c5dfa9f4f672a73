package handler

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"

	"goalquest/services"
	"goalquest/utils"
)

var startTime = time.Now()

// HealthHandler reports dependency reachability and basic host load.
func HealthHandler(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	mongoStatus := "ok"
	if err := utils.PingMongo(ctx); err != nil {
		mongoStatus = "unreachable"
	}

	redisStatus := "ok"
	if services.TokenBlacklist == nil || !services.TokenBlacklist.IsConnected() {
		redisStatus = "unreachable"
	}

	status := "healthy"
	if mongoStatus != "ok" {
		status = "degraded"
	}

	utils.Success(c, gin.H{
		"status": status,
		"uptime": time.Since(startTime).Round(time.Second).String(),
		"dependencies": gin.H{
			"mongodb": mongoStatus,
			"redis":   redisStatus,
		},
		"system": gin.H{
			"cpu_percent":    utils.GetCPUUsage(),
			"memory_percent": utils.GetMemoryUsage(),
		},
	})
}
