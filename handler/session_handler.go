package handler

import (
	"github.com/gin-gonic/gin"

	"goalquest/dto"
	"goalquest/repository"
	"goalquest/utils"
)

func GetActiveSessions(c *gin.Context, sessionRepo *repository.SessionRepo) {
	userID, exists := c.Get("user_id")
	if !exists {
		utils.Unauthorized(c, "User not authenticated")
		return
	}

	sessions, err := sessionRepo.GetUserActiveSessions(userID.(string))
	if err != nil {
		utils.InternalError(c, "Failed to fetch sessions")
		return
	}

	utils.UpdateActiveSessions(float64(len(sessions)))

	currentSessionID, _ := c.Cookie("session_id")
	utils.Success(c, gin.H{
		"sessions": dto.ToSessionResponses(sessions, currentSessionID),
	})
}

// EndSessionHandler signs out one device. Users can only end their own
// sessions.
func EndSessionHandler(c *gin.Context, sessionRepo *repository.SessionRepo) {
	userID, exists := c.Get("user_id")
	if !exists {
		utils.Unauthorized(c, "User not authenticated")
		return
	}

	sessionID := c.Param("id")
	session, err := sessionRepo.GetSession(sessionID)
	if err != nil {
		utils.InternalError(c, "Failed to fetch session")
		return
	}
	if session == nil || session.UserID != userID.(string) {
		utils.NotFound(c, "Session not found")
		return
	}

	if err := sessionRepo.EndSession(sessionID); err != nil {
		utils.InternalError(c, "Failed to end session")
		return
	}

	if currentSessionID, err := c.Cookie("session_id"); err == nil && currentSessionID == sessionID {
		c.SetCookie("session_id", "", -1, "/", "", true, true)
	}

	utils.Success(c, gin.H{"message": "Session ended"})
}

func LogoutAllSessions(c *gin.Context, sessionRepo *repository.SessionRepo) {
	userID, exists := c.Get("user_id")
	if !exists {
		utils.Unauthorized(c, "User not authenticated")
		return
	}

	if err := sessionRepo.EndAllUserSessions(userID.(string)); err != nil {
		utils.InternalError(c, "Failed to end all sessions")
		return
	}

	c.SetCookie("session_id", "", -1, "/", "", true, true)
	utils.Success(c, gin.H{"message": "Successfully logged out of all sessions"})
}
