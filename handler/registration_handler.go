package handler

import (
	"github.com/gin-gonic/gin"

	"goalquest/model"
	"goalquest/services"
	"goalquest/usecase"
	"goalquest/utils"
)

func RegistrationHandler(c *gin.Context, usersService *usecase.UsersService) {
	var req model.RegistrationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.TrackAuthAttempt("failure", "registration_validation")
		utils.BadRequest(c, "Invalid request")
		return
	}

	user, err := usersService.Register(c.Request.Context(), &req)
	if err != nil {
		switch err {
		case usecase.ErrUsernameTaken:
			utils.Conflict(c, "Username already exists")
		case usecase.ErrEmailTaken:
			utils.Conflict(c, "Email already registered")
		default:
			utils.TrackError("auth", "registration_failed")
			utils.BadRequest(c, err.Error())
		}
		return
	}

	token, err := services.GenerateToken(user.UserID)
	if err != nil {
		utils.TrackError("auth", "token_generation")
		utils.InternalError(c, "Failed to generate token")
		return
	}

	refreshToken, err := services.GenerateRefreshToken(user.UserID)
	if err != nil {
		utils.TrackError("auth", "refresh_token_generation")
		utils.InternalError(c, "Failed to generate refresh token")
		return
	}

	utils.TrackAuthAttempt("success", "registration")
	utils.Created(c, gin.H{
		"message": "User registered successfully",
		"token":   token,
		"refresh": refreshToken,
		"user": gin.H{
			"id":       user.UserID,
			"username": user.Username,
			"email":    user.Email,
		},
	})
}
