package handler

import (
	"github.com/gin-gonic/gin"

	"goalquest/model"
	"goalquest/usecase"
	"goalquest/utils"
)

// ChangePasswordHandler rotates the account password. Every other
// active session is ended so stolen devices lose access.
func ChangePasswordHandler(c *gin.Context, usersService *usecase.UsersService) {
	userID, exists := c.Get("user_id")
	if !exists {
		utils.Unauthorized(c, "Unauthorized")
		return
	}

	var req model.ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request")
		return
	}

	currentSessionID, _ := c.Cookie("session_id")

	err := usersService.ChangePassword(c.Request.Context(), userID.(string), req.OldPassword, req.NewPassword, currentSessionID)
	if err != nil {
		switch err {
		case usecase.ErrUserNotFound:
			utils.NotFound(c, "User not found")
		case usecase.ErrWrongPassword:
			utils.Unauthorized(c, "Incorrect password")
		case usecase.ErrSamePassword:
			utils.BadRequest(c, err.Error())
		default:
			utils.BadRequest(c, err.Error())
		}
		return
	}

	utils.Success(c, gin.H{"message": "Password changed successfully"})
}
