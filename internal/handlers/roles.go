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

// RoleHandler handles role reference rows.
type RoleHandler struct {
	DB      *gorm.DB
	Service registry.Service
	Logger  *logrus.Entry
}

// NewRoleHandler creates a new RoleHandler.
func NewRoleHandler(db *gorm.DB, service registry.Service, logger *logrus.Entry) *RoleHandler {
	return &RoleHandler{DB: db, Service: service, Logger: logger}
}

// RoleRequest represents the request body for creating a role.
type RoleRequest struct {
	Name string `json:"name" binding:"required"`
}

// CreateRole finds-or-creates a role by name; posting an existing
// name returns the existing row rather than a duplicate.
func (h *RoleHandler) CreateRole(c *gin.Context) {
	var req RoleRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}

	role, err := h.Service.ResolveRole(req.Name)
	if err != nil {
		respondServiceError(c, h.Logger, err)
		return
	}
	utils.Created(c, "Role resolved successfully", role)
}

// GetRoles handles fetching all roles.
func (h *RoleHandler) GetRoles(c *gin.Context) {
	var roles []models.Role
	if err := h.DB.Find(&roles).Error; err != nil {
		respondStorageError(c, h.Logger, err, "")
		return
	}
	utils.Success(c, "Roles fetched successfully", roles)
}

// GetRoleByID handles fetching a single role by ID.
func (h *RoleHandler) GetRoleByID(c *gin.Context) {
	var role models.Role
	if err := h.DB.First(&role, "id = ?", c.Param("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.NotFound(c, "Role not found")
		} else {
			respondStorageError(c, h.Logger, err, "")
		}
		return
	}
	utils.Success(c, "Role fetched successfully", role)
}

// DeleteRole deletes a role. The FK RESTRICT rejects the delete while
// any account still holds the role.
func (h *RoleHandler) DeleteRole(c *gin.Context) {
	var role models.Role
	if err := h.DB.First(&role, "id = ?", c.Param("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.NotFound(c, "Role not found")
		} else {
			respondStorageError(c, h.Logger, err, "")
		}
		return
	}

	if err := h.DB.Delete(&role).Error; err != nil {
		respondStorageError(c, h.Logger, err, "Role is still referenced by accounts")
		return
	}
	utils.Success(c, "Role deleted successfully", nil)
}
