package handler

import (
	"github.com/gin-gonic/gin"

	"goalquest/repository"
	"goalquest/utils"
)

func ChangeEmailHandler(c *gin.Context, userRepo *repository.UserRepo) {
	userID, exists := c.Get("user_id")
	if !exists {
		utils.Unauthorized(c, "Unauthorized")
		return
	}

	var req struct {
		NewEmail string `json:"new_email" binding:"required,email"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request")
		return
	}

	existing, err := userRepo.FindUserByEmail(c.Request.Context(), req.NewEmail)
	if err != nil {
		utils.InternalError(c, "Could not verify email")
		return
	}
	if existing != nil && existing.UserID != userID.(string) {
		utils.Conflict(c, "Email already registered")
		return
	}

	if err := userRepo.UpdateEmail(c.Request.Context(), userID.(string), req.NewEmail); err != nil {
		utils.InternalError(c, "Failed to update email")
		return
	}

	utils.Success(c, gin.H{"message": "Email updated successfully"})
}
