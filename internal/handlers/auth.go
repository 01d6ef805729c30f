package handlers

import (
	"errors"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"clinic-registry-server/internal/config"
	"clinic-registry-server/internal/middleware"
	"clinic-registry-server/internal/models"
	"clinic-registry-server/internal/utils"
)

// AuthHandler handles authentication-related requests.
type AuthHandler struct {
	DB     *gorm.DB
	Cfg    *config.Config
	Logger *logrus.Entry
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(db *gorm.DB, cfg *config.Config, logger *logrus.Entry) *AuthHandler {
	return &AuthHandler{DB: db, Cfg: cfg, Logger: logger}
}

// LoginRequest represents the request body for user login.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse represents the response body for successful login.
type LoginResponse struct {
	AccessToken  string               `json:"access_token"`
	RefreshToken string               `json:"refresh_token"`
	User         models.UserSanitized `json:"user"`
}

// Login handles user login.
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}

	var user models.User
	if err := h.DB.Preload("Role").Where("email = ?", req.Email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.Unauthorized(c, "Invalid email or password")
		} else {
			respondStorageError(c, h.Logger, err, "")
		}
		return
	}

	if !user.CheckPassword(req.Password) {
		utils.Unauthorized(c, "Invalid email or password")
		return
	}

	if !user.IsActive {
		utils.Unauthorized(c, "Account is deactivated")
		return
	}

	accessToken, refreshTokenString, err := utils.GenerateTokens(&user, h.Cfg)
	if err != nil {
		respondStorageError(c, h.Logger, err, "")
		return
	}

	// Store refresh token in DB
	refreshToken := models.RefreshToken{
		UserID:    user.ID,
		Token:     refreshTokenString,
		ExpiresAt: time.Now().Add(time.Duration(h.Cfg.JWTRefreshExpirationHours) * time.Hour),
		IsRevoked: false,
	}
	if err := h.DB.Create(&refreshToken).Error; err != nil {
		respondStorageError(c, h.Logger, err, "")
		return
	}

	// Set refresh token as HTTP-only cookie
	c.SetCookie(
		"refresh_token",
		refreshTokenString,
		h.Cfg.JWTRefreshExpirationHours*60*60,
		"/",
		"",
		h.Cfg.Environment != "development",
		true,
	)

	utils.Success(c, "Login successful", LoginResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshTokenString,
		User:         user.Sanitize(),
	})
}

// RefreshTokenRequest represents the request body for token refresh.
type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}

// RefreshTokenResponse represents the response body for successful token refresh.
type RefreshTokenResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

// RefreshToken handles refreshing an access token using a refresh token.
func (h *AuthHandler) RefreshToken(c *gin.Context) {
	// First try to get the refresh token from HTTP-only cookie
	refreshTokenFromCookie, err := c.Cookie("refresh_token")

	// If no cookie, fall back to request body
	if err != nil || refreshTokenFromCookie == "" {
		var req RefreshTokenRequest
		if !utils.BindAndValidate(c, &req) {
			return
		}
		refreshTokenFromCookie = req.RefreshToken
	}

	claims, err := utils.ValidateToken(refreshTokenFromCookie, h.Cfg.JWTRefreshSecret)
	if err != nil {
		utils.Unauthorized(c, "Invalid refresh token")
		return
	}

	// Check if refresh token is revoked or still valid in DB
	var storedToken models.RefreshToken
	err = h.DB.Where("token = ? AND user_id = ? AND is_revoked = ? AND expires_at > ?",
		refreshTokenFromCookie, claims.UserID, false, time.Now()).First(&storedToken).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.Unauthorized(c, "Refresh token not found, expired, or revoked")
		} else {
			respondStorageError(c, h.Logger, err, "")
		}
		return
	}

	var user models.User
	if err := h.DB.Preload("Role").First(&user, claims.UserID).Error; err != nil {
		respondStorageError(c, h.Logger, err, "")
		return
	}

	// Refresh token rotation: revoke the old token before issuing a
	// new pair.
	storedToken.IsRevoked = true
	if err := h.DB.Save(&storedToken).Error; err != nil {
		respondStorageError(c, h.Logger, err, "")
		return
	}

	newAccessToken, newRefreshTokenString, err := utils.GenerateTokens(&user, h.Cfg)
	if err != nil {
		respondStorageError(c, h.Logger, err, "")
		return
	}

	newRefreshToken := models.RefreshToken{
		UserID:    user.ID,
		Token:     newRefreshTokenString,
		ExpiresAt: time.Now().Add(time.Duration(h.Cfg.JWTRefreshExpirationHours) * time.Hour),
		IsRevoked: false,
	}
	if err := h.DB.Create(&newRefreshToken).Error; err != nil {
		respondStorageError(c, h.Logger, err, "")
		return
	}

	c.SetCookie(
		"refresh_token",
		newRefreshTokenString,
		h.Cfg.JWTRefreshExpirationHours*60*60,
		"/",
		"",
		h.Cfg.Environment != "development",
		true,
	)

	utils.Success(c, "Access token refreshed successfully", RefreshTokenResponse{
		AccessToken:  newAccessToken,
		RefreshToken: newRefreshTokenString,
	})
}

// LogoutRequest represents the request body for user logout.
type LogoutRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}

// Logout handles user logout by revoking the refresh token.
func (h *AuthHandler) Logout(c *gin.Context) {
	var req LogoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request payload: "+err.Error())
		return
	}

	if req.RefreshToken == "" {
		utils.BadRequest(c, "Refresh token is required")
		return
	}

	var storedToken models.RefreshToken
	if err := h.DB.Where("token = ? AND is_revoked = ?", req.RefreshToken, false).First(&storedToken).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			// Token not found or already revoked, which is acceptable for logout.
			utils.Success(c, "Logout successful (token not found or already invalid).", nil)
		} else {
			respondStorageError(c, h.Logger, err, "")
		}
		return
	}

	storedToken.IsRevoked = true
	storedToken.ExpiresAt = time.Now()
	if err := h.DB.Save(&storedToken).Error; err != nil {
		respondStorageError(c, h.Logger, err, "")
		return
	}

	// Clear the refresh token cookie
	c.SetCookie(
		"refresh_token",
		"",
		-1,
		"/",
		"",
		h.Cfg.Environment != "development",
		true,
	)

	utils.Success(c, "Logout successful. Refresh token has been invalidated.", nil)
}

// GetProfile handles fetching the currently authenticated user's profile.
func (h *AuthHandler) GetProfile(c *gin.Context) {
	userID, exists := middleware.GetUserIDFromContext(c)
	if !exists {
		utils.Unauthorized(c, "User not authenticated")
		return
	}

	var user models.User
	if err := h.DB.Preload("Role").First(&user, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.NotFound(c, "User profile not found")
		} else {
			respondStorageError(c, h.Logger, err, "")
		}
		return
	}

	utils.Success(c, "Profile fetched successfully", user.Sanitize())
}

// UpdateProfileRequest represents the request body for updating the
// caller's profile. Email and role are managed elsewhere.
type UpdateProfileRequest struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

// UpdateProfile handles updating the currently authenticated user's profile.
func (h *AuthHandler) UpdateProfile(c *gin.Context) {
	userID, exists := middleware.GetUserIDFromContext(c)
	if !exists {
		utils.Unauthorized(c, "User not authenticated")
		return
	}

	var req UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request payload: "+err.Error())
		return
	}

	var user models.User
	if err := h.DB.Preload("Role").First(&user, userID).Error; err != nil {
		utils.NotFound(c, "User not found")
		return
	}

	if req.FirstName != "" {
		user.FirstName = req.FirstName
	}
	if req.LastName != "" {
		user.LastName = req.LastName
	}

	if err := h.DB.Save(&user).Error; err != nil {
		respondStorageError(c, h.Logger, err, "")
		return
	}

	utils.Success(c, "Profile updated successfully", user.Sanitize())
}
