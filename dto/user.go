package dto

import (
	"time"

	"goalquest/model"
)

type UserProfileResponse struct {
	UserID           string    `json:"user_id"`
	Username         string    `json:"username"`
	Email            string    `json:"email"`
	TwoFactorEnabled bool      `json:"two_factor_enabled"`
	CreatedAt        time.Time `json:"created_at"`
	LastActiveAt     time.Time `json:"last_active_at"`
}

func ToUserProfileResponse(user *model.User) UserProfileResponse {
	return UserProfileResponse{
		UserID:           user.UserID,
		Username:         user.Username,
		Email:            user.Email,
		TwoFactorEnabled: user.TwoFactorEnabled,
		CreatedAt:        user.CreatedAt,
		LastActiveAt:     user.LastActiveAt,
	}
}

type SessionResponse struct {
	SessionID      string    `json:"session_id"`
	DisplayName    string    `json:"display_name"`
	DeviceInfo     string    `json:"device_info"`
	IPAddress      string    `json:"ip_address"`
	CreatedAt      time.Time `json:"created_at"`
	ExpiresAt      time.Time `json:"expires_at"`
	LastActivityAt time.Time `json:"last_activity_at"`
	IsCurrent      bool      `json:"is_current"`
}

// ToSessionResponse marks the session matching currentSessionID so the
// client can highlight the device it is calling from.
func ToSessionResponse(session *model.Session, currentSessionID string) SessionResponse {
	return SessionResponse{
		SessionID:      session.SessionID,
		DisplayName:    session.DisplayName,
		DeviceInfo:     session.DeviceInfo,
		IPAddress:      session.IPAddress,
		CreatedAt:      session.CreatedAt,
		ExpiresAt:      session.ExpiresAt,
		LastActivityAt: session.LastActivityAt,
		IsCurrent:      session.SessionID == currentSessionID,
	}
}

func ToSessionResponses(sessions []*model.Session, currentSessionID string) []SessionResponse {
	responses := make([]SessionResponse, len(sessions))
	for i, session := range sessions {
		responses[i] = ToSessionResponse(session, currentSessionID)
	}
	return responses
}
