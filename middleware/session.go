package middleware

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"

	"goalquest/model"
	"goalquest/repository"
	"goalquest/utils"
)

const (
	sessionCookie     = "session_id"
	inactivityTimeout = 48 * time.Hour
)

// SessionMiddleware loads the caller's session from the cookie, expires
// inactive ones, and refreshes the activity timestamp. Requests without
// a valid session still pass through; token auth decides access.
func SessionMiddleware(sessionRepo *repository.SessionRepo) gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID, err := c.Cookie(sessionCookie)
		if err != nil {
			c.Next()
			return
		}

		session, err := sessionRepo.GetSession(sessionID)
		if err != nil || session == nil || !session.IsActive {
			c.SetCookie(sessionCookie, "", -1, "/", "", true, true)
			c.Next()
			return
		}

		if time.Since(session.LastActivityAt) > inactivityTimeout {
			session.IsActive = false
			if err := sessionRepo.UpdateSession(session); err != nil {
				utils.TrackError("database", "session_update_failed")
			}
			c.SetCookie(sessionCookie, "", -1, "/", "", true, true)
			c.Next()
			return
		}

		session.LastActivityAt = time.Now()
		if err := sessionRepo.UpdateSession(session); err != nil {
			utils.TrackError("database", "session_update_failed")
		}

		c.Set("session", session)
		c.Set("session_id", session.SessionID)
		c.Next()
	}
}

// CreateSession records a new device session for the user and sets the
// session cookie. The display name is derived from the user agent.
func CreateSession(c *gin.Context, userID string, sessionRepo *repository.SessionRepo) (*model.Session, error) {
	userAgent := c.Request.UserAgent()
	browser, os, device := utils.ParseUserAgent(userAgent)

	duration := utils.GetEnvAsDuration("SESSION_DURATION", 24*time.Hour)

	session := &model.Session{
		SessionID:      utils.NewID(),
		UserID:         userID,
		DisplayName:    utils.GenerateSessionName(userAgent),
		DeviceInfo:     fmt.Sprintf("%s on %s (%s)", browser, os, device),
		IPAddress:      c.ClientIP(),
		CreatedAt:      time.Now(),
		ExpiresAt:      time.Now().Add(duration),
		LastActivityAt: time.Now(),
		IsActive:       true,
	}

	if err := sessionRepo.CreateSession(session); err != nil {
		return nil, err
	}

	c.SetCookie(sessionCookie, session.SessionID, int(duration.Seconds()), "/", "", true, true)
	return session, nil
}
