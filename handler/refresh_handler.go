package handler

import (
	"strings"

	"github.com/gin-gonic/gin"

	"goalquest/services"
	"goalquest/utils"
)

// RefreshTokenHandler exchanges a valid refresh token for a new token
// pair. The used refresh token is blacklisted so it cannot be replayed.
func RefreshTokenHandler(c *gin.Context) {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
		utils.Unauthorized(c, "Missing or invalid refresh token")
		return
	}
	refreshToken := strings.TrimPrefix(authHeader, "Bearer ")

	if services.IsTokenBlacklisted(refreshToken) {
		utils.TrackAuthAttempt("failure", "refresh_blacklisted")
		utils.Unauthorized(c, "Refresh token has been invalidated")
		return
	}

	userID, err := services.ValidateRefreshToken(refreshToken)
	if err != nil {
		utils.TrackAuthAttempt("failure", "refresh_invalid")
		utils.Unauthorized(c, "Invalid refresh token")
		return
	}

	newAccessToken, err := services.GenerateToken(userID)
	if err != nil {
		utils.TrackError("auth", "token_generation")
		utils.InternalError(c, "Failed to generate new access token")
		return
	}
	newRefreshToken, err := services.GenerateRefreshToken(userID)
	if err != nil {
		utils.TrackError("auth", "refresh_token_generation")
		utils.InternalError(c, "Failed to generate new refresh token")
		return
	}

	// Retire the old refresh token.
	if err := services.BlacklistTokens("", refreshToken); err != nil {
		utils.TrackError("auth", "blacklist_failed")
	}

	utils.TrackAuthAttempt("success", "refresh")
	utils.Success(c, gin.H{
		"token":   newAccessToken,
		"refresh": newRefreshToken,
	})
}
