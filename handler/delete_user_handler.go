package handler

import (
	"log"

	"github.com/gin-gonic/gin"

	"goalquest/usecase"
	"goalquest/utils"
)

// DeleteUserHandler removes the account and all its goals, tasks,
// blueprints, and sessions. The password is required as confirmation.
func DeleteUserHandler(c *gin.Context, usersService *usecase.UsersService) {
	userID, exists := c.Get("user_id")
	if !exists {
		utils.Unauthorized(c, "Missing or invalid token")
		return
	}

	var req struct {
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request")
		return
	}

	err := usersService.DeleteAccount(c.Request.Context(), userID.(string), req.Password)
	if err != nil {
		switch err {
		case usecase.ErrUserNotFound:
			utils.NotFound(c, "User not found")
		case usecase.ErrWrongPassword:
			utils.Unauthorized(c, "Incorrect password")
		default:
			log.Printf("Failed to delete user %s: %v", userID, err)
			utils.InternalError(c, "Failed to delete user")
		}
		return
	}

	c.SetCookie("session_id", "", -1, "/", "", true, true)
	log.Printf("User deleted successfully: %s", userID)
	utils.Success(c, gin.H{"message": "User deleted successfully"})
}
