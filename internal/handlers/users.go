package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"clinic-registry-server/internal/models"
	"clinic-registry-server/internal/registry"
	"clinic-registry-server/internal/utils"
)

// UserHandler handles account management (admin operations).
type UserHandler struct {
	DB      *gorm.DB
	Service registry.Service
	Logger  *logrus.Entry
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(db *gorm.DB, service registry.Service, logger *logrus.Entry) *UserHandler {
	return &UserHandler{DB: db, Service: service, Logger: logger}
}

// CreateUser handles creating a bare account with an embedded role
// payload (admin).
func (h *UserHandler) CreateUser(c *gin.Context) {
	var payload registry.AccountPayload
	if !utils.BindAndValidate(c, &payload) {
		return
	}

	user, err := h.Service.CreateAccount(payload)
	if err != nil {
		respondServiceError(c, h.Logger, err)
		return
	}
	utils.Created(c, "User created successfully", user.Sanitize())
}

// GetUsers handles fetching all users (admin).
func (h *UserHandler) GetUsers(c *gin.Context) {
	var users []models.User
	if err := h.DB.Preload("Role").Find(&users).Error; err != nil {
		respondStorageError(c, h.Logger, err, "")
		return
	}

	sanitized := make([]models.UserSanitized, len(users))
	for i := range users {
		sanitized[i] = users[i].Sanitize()
	}
	utils.Success(c, "Users fetched successfully", sanitized)
}

// GetUserByID handles fetching a single user by ID (admin).
func (h *UserHandler) GetUserByID(c *gin.Context) {
	var user models.User
	if err := h.DB.Preload("Role").First(&user, "id = ?", c.Param("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.NotFound(c, "User not found")
		} else {
			respondStorageError(c, h.Logger, err, "")
		}
		return
	}
	utils.Success(c, "User fetched successfully", user.Sanitize())
}

// UpdateUserRequest represents the request body for updating a user.
// The role is deliberately absent: role changes go through the
// dedicated UpdateUserRole endpoint only.
type UpdateUserRequest struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email,omitempty"`
}

// UpdateUser handles updating a user's name and email (admin).
func (h *UserHandler) UpdateUser(c *gin.Context) {
	var req UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request payload: "+err.Error())
		return
	}

	var user models.User
	if err := h.DB.Preload("Role").First(&user, "id = ?", c.Param("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.NotFound(c, "User not found")
		} else {
			respondStorageError(c, h.Logger, err, "")
		}
		return
	}

	if req.FirstName != "" {
		user.FirstName = req.FirstName
	}
	if req.LastName != "" {
		user.LastName = req.LastName
	}
	if req.Email != "" && req.Email != user.Email {
		var existing models.User
		if err := h.DB.Where("email = ? AND id != ?", req.Email, user.ID).First(&existing).Error; err == nil {
			utils.BadRequest(c, registry.ErrDuplicateEmail.Error())
			return
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			respondStorageError(c, h.Logger, err, "")
			return
		}
		user.Email = req.Email
	}

	if err := h.DB.Save(&user).Error; err != nil {
		if registry.IsDuplicate(err) {
			utils.BadRequest(c, registry.ErrDuplicateEmail.Error())
			return
		}
		respondStorageError(c, h.Logger, err, "")
		return
	}
	utils.Success(c, "User updated successfully", user.Sanitize())
}

// UpdateUserRoleRequest represents the request body for the audited
// role-change endpoint.
type UpdateUserRoleRequest struct {
	Role registry.RolePayload `json:"role" binding:"required"`
}

// UpdateUserRole reassigns a user's role through the creation
// service so the change is validated and logged.
func (h *UserHandler) UpdateUserRole(c *gin.Context) {
	var req UpdateUserRoleRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}

	id, ok := parseID(c.Param("id"))
	if !ok {
		utils.BadRequest(c, "Invalid user id")
		return
	}

	user, err := h.Service.ChangeUserRole(id, req.Role.Name)
	if err != nil {
		respondServiceError(c, h.Logger, err)
		return
	}
	utils.Success(c, "User role updated successfully", user.Sanitize())
}

// DeleteUser handles deleting a user by ID (admin). Profile rows go
// with the account through the FK cascade; the delete is rejected
// while reports still reference the user's profile.
func (h *UserHandler) DeleteUser(c *gin.Context) {
	var user models.User
	if err := h.DB.First(&user, "id = ?", c.Param("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.NotFound(c, "User not found")
		} else {
			respondStorageError(c, h.Logger, err, "")
		}
		return
	}

	if err := h.DB.Delete(&user).Error; err != nil {
		respondStorageError(c, h.Logger, err, "User's profile is still referenced by reports")
		return
	}
	utils.Success(c, "User deleted successfully", nil)
}
