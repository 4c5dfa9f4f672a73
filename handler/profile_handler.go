package handler

import (
	"github.com/gin-gonic/gin"

	"goalquest/dto"
	"goalquest/repository"
	"goalquest/utils"
)

func GetUserProfileHandler(c *gin.Context, userRepo *repository.UserRepo) {
	userID, exists := c.Get("user_id")
	if !exists {
		utils.Unauthorized(c, "Unauthorized")
		return
	}

	user, err := userRepo.FindUser(c.Request.Context(), userID.(string))
	if err != nil {
		utils.InternalError(c, "Could not fetch user details")
		return
	}
	if user == nil {
		utils.NotFound(c, "User not found")
		return
	}

	utils.Success(c, dto.ToUserProfileResponse(user))
}
