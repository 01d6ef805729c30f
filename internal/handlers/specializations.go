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

// SpecializationHandler handles specialization reference rows.
type SpecializationHandler struct {
	DB      *gorm.DB
	Service registry.Service
	Logger  *logrus.Entry
}

// NewSpecializationHandler creates a new SpecializationHandler.
func NewSpecializationHandler(db *gorm.DB, service registry.Service, logger *logrus.Entry) *SpecializationHandler {
	return &SpecializationHandler{DB: db, Service: service, Logger: logger}
}

// SpecializationRequest represents the request body for creating a
// specialization.
type SpecializationRequest struct {
	Name string `json:"name" binding:"required"`
}

// CreateSpecialization finds-or-creates a specialization by name.
func (h *SpecializationHandler) CreateSpecialization(c *gin.Context) {
	var req SpecializationRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}

	spec, err := h.Service.ResolveSpecialization(req.Name)
	if err != nil {
		respondServiceError(c, h.Logger, err)
		return
	}
	utils.Created(c, "Specialization resolved successfully", spec)
}

// GetSpecializations handles fetching all specializations.
func (h *SpecializationHandler) GetSpecializations(c *gin.Context) {
	var specs []models.Specialization
	if err := h.DB.Find(&specs).Error; err != nil {
		respondStorageError(c, h.Logger, err, "")
		return
	}
	utils.Success(c, "Specializations fetched successfully", specs)
}

// GetSpecializationByID handles fetching a single specialization by ID.
func (h *SpecializationHandler) GetSpecializationByID(c *gin.Context) {
	var spec models.Specialization
	if err := h.DB.First(&spec, "id = ?", c.Param("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.NotFound(c, "Specialization not found")
		} else {
			respondStorageError(c, h.Logger, err, "")
		}
		return
	}
	utils.Success(c, "Specialization fetched successfully", spec)
}

// DeleteSpecialization deletes a specialization; rejected while any
// specialist still references it.
func (h *SpecializationHandler) DeleteSpecialization(c *gin.Context) {
	var spec models.Specialization
	if err := h.DB.First(&spec, "id = ?", c.Param("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.NotFound(c, "Specialization not found")
		} else {
			respondStorageError(c, h.Logger, err, "")
		}
		return
	}

	if err := h.DB.Delete(&spec).Error; err != nil {
		respondStorageError(c, h.Logger, err, "Specialization is still referenced by specialists")
		return
	}
	utils.Success(c, "Specialization deleted successfully", nil)
}
