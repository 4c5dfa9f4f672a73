package handler

import (
	"bytes"
	"encoding/base64"
	"image/png"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/pquerna/otp/totp"

	"goalquest/repository"
	"goalquest/utils"
)

type Enable2FAResponse struct {
	Secret string `json:"secret"`
	QRCode string `json:"qr_code"`
}

// Generate2FASecretHandler creates a new TOTP secret and returns it with
// a QR code for authenticator apps. Nothing is stored until the user
// confirms a valid code via Enable2FAHandler.
func Generate2FASecretHandler(c *gin.Context, userRepo *repository.UserRepo) {
	userID, exists := c.Get("user_id")
	if !exists {
		utils.Unauthorized(c, "Missing or invalid token")
		return
	}

	user, err := userRepo.FindUser(c.Request.Context(), userID.(string))
	if err != nil || user == nil {
		utils.InternalError(c, "Failed to fetch user")
		return
	}
	if user.TwoFactorEnabled {
		utils.BadRequest(c, "2FA is already enabled")
		return
	}

	key, err := totp.Generate(totp.GenerateOpts{
		Issuer:      "GoalQuest",
		AccountName: user.Email,
	})
	if err != nil {
		utils.InternalError(c, "Failed to generate 2FA secret")
		return
	}

	var buf bytes.Buffer
	img, err := key.Image(200, 200)
	if err != nil {
		utils.InternalError(c, "Failed to generate QR code")
		return
	}
	if err := png.Encode(&buf, img); err != nil {
		utils.InternalError(c, "Failed to encode QR code")
		return
	}

	utils.Success(c, Enable2FAResponse{
		Secret: key.Secret(),
		QRCode: "data:image/png;base64," + base64.StdEncoding.EncodeToString(buf.Bytes()),
	})
}

// Enable2FAHandler turns on 2FA after verifying one code against the
// pending secret, and hands out single-use recovery codes.
func Enable2FAHandler(c *gin.Context, userRepo *repository.UserRepo) {
	var req struct {
		Secret string `json:"secret" binding:"required"`
		Code   string `json:"code" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request")
		return
	}

	userID, _ := c.Get("user_id")
	user, err := userRepo.FindUser(c.Request.Context(), userID.(string))
	if err != nil || user == nil {
		utils.InternalError(c, "Failed to fetch user")
		return
	}
	if user.TwoFactorEnabled {
		utils.BadRequest(c, "2FA is already enabled")
		return
	}

	if !totp.Validate(req.Code, req.Secret) {
		utils.BadRequest(c, "Invalid 2FA code")
		return
	}

	recoveryCodes, err := utils.GenerateRecoveryCodes()
	if err != nil {
		utils.InternalError(c, "Failed to generate recovery codes")
		return
	}
	hashedCodes := utils.HashRecoveryCodes(recoveryCodes)

	if err := userRepo.UpdateTwoFactor(c.Request.Context(), userID.(string), req.Secret, true, hashedCodes); err != nil {
		utils.InternalError(c, "Failed to enable 2FA")
		return
	}

	utils.Success(c, gin.H{
		"message":        "2FA enabled successfully",
		"recovery_codes": recoveryCodes,
		"warning":        "Save these recovery codes securely. They will not be shown again.",
	})
}

func Verify2FAHandler(c *gin.Context, userRepo *repository.UserRepo) {
	var req struct {
		Code string `json:"code" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request")
		return
	}

	userID, _ := c.Get("user_id")
	user, err := userRepo.FindUser(c.Request.Context(), userID.(string))
	if err != nil || user == nil {
		utils.InternalError(c, "Failed to fetch user")
		return
	}
	if !user.TwoFactorEnabled {
		utils.BadRequest(c, "2FA is not enabled")
		return
	}

	if !totp.Validate(req.Code, user.TwoFactorSecret) {
		utils.Unauthorized(c, "Invalid 2FA code")
		return
	}

	utils.Success(c, gin.H{"message": "2FA code valid"})
}

func Disable2FAHandler(c *gin.Context, userRepo *repository.UserRepo) {
	var req struct {
		Code string `json:"code" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request")
		return
	}

	userID, _ := c.Get("user_id")
	user, err := userRepo.FindUser(c.Request.Context(), userID.(string))
	if err != nil || user == nil {
		utils.InternalError(c, "Failed to fetch user")
		return
	}
	if !user.TwoFactorEnabled {
		utils.BadRequest(c, "2FA is not enabled")
		return
	}

	if !totp.Validate(req.Code, user.TwoFactorSecret) {
		utils.Unauthorized(c, "Invalid 2FA code")
		return
	}

	if err := userRepo.UpdateTwoFactor(c.Request.Context(), userID.(string), "", false, []string{}); err != nil {
		utils.InternalError(c, "Failed to disable 2FA")
		return
	}

	utils.Success(c, gin.H{"message": "2FA disabled successfully"})
}

// UseRecoveryCodeHandler burns one recovery code to get past a lost
// authenticator. Codes are stored hashed and removed once used.
func UseRecoveryCodeHandler(c *gin.Context, userRepo *repository.UserRepo) {
	var req struct {
		RecoveryCode string `json:"recovery_code" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request")
		return
	}

	userID, _ := c.Get("user_id")
	user, err := userRepo.FindUser(c.Request.Context(), userID.(string))
	if err != nil || user == nil {
		utils.InternalError(c, "Failed to fetch user")
		return
	}

	// Normalize to the XXXX-XXXX form the codes were issued in.
	code := strings.ToUpper(strings.ReplaceAll(req.RecoveryCode, "-", ""))
	if len(code) == utils.RecoveryCodeLength {
		code = code[:4] + "-" + code[4:]
	}
	hashedCode := utils.HashRecoveryCodes([]string{code})[0]

	found := false
	remaining := make([]string, 0, len(user.RecoveryCodes))
	for _, stored := range user.RecoveryCodes {
		if stored == hashedCode && !found {
			found = true
			continue
		}
		remaining = append(remaining, stored)
	}
	if !found {
		utils.Unauthorized(c, "Invalid recovery code")
		return
	}

	if err := userRepo.UpdateTwoFactor(c.Request.Context(), userID.(string), user.TwoFactorSecret, true, remaining); err != nil {
		utils.InternalError(c, "Failed to update recovery codes")
		return
	}

	utils.Success(c, gin.H{
		"message":         "Recovery code accepted",
		"remaining_codes": len(remaining),
		"warning":         "Please set up a new authenticator app as soon as possible",
	})
}
