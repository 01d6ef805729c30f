package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"clinic-registry-server/internal/models"
	"clinic-registry-server/internal/registry"
	"clinic-registry-server/internal/utils"
	"clinic-registry-server/internal/validation"
)

// SpecialistHandler handles specialist-related requests.
type SpecialistHandler struct {
	DB      *gorm.DB
	Service registry.Service
	Logger  *logrus.Entry
}

// NewSpecialistHandler creates a new SpecialistHandler.
func NewSpecialistHandler(db *gorm.DB, service registry.Service, logger *logrus.Entry) *SpecialistHandler {
	return &SpecialistHandler{DB: db, Service: service, Logger: logger}
}

// CreateSpecialist handles the nested creation of an account, its
// specialization reference and the specialist profile.
func (h *SpecialistHandler) CreateSpecialist(c *gin.Context) {
	var payload registry.SpecialistPayload
	if !utils.BindAndValidate(c, &payload) {
		return
	}

	specialist, err := h.Service.CreateSpecialist(payload)
	if err != nil {
		respondServiceError(c, h.Logger, err)
		return
	}

	utils.Created(c, "Specialist created successfully", specialist.Sanitized())
}

// GetSpecialists handles fetching all specialists.
func (h *SpecialistHandler) GetSpecialists(c *gin.Context) {
	var specialists []models.Specialist
	if err := h.DB.Preload("User.Role").Preload("Specialization").Find(&specialists).Error; err != nil {
		respondStorageError(c, h.Logger, err, "")
		return
	}

	sanitized := make([]models.SpecialistSanitized, len(specialists))
	for i := range specialists {
		sanitized[i] = specialists[i].Sanitized()
	}
	utils.Success(c, "Specialists fetched successfully", sanitized)
}

// GetSpecialistByID handles fetching a single specialist by ID.
func (h *SpecialistHandler) GetSpecialistByID(c *gin.Context) {
	var specialist models.Specialist
	err := h.DB.Preload("User.Role").Preload("Specialization").First(&specialist, "id = ?", c.Param("id")).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.NotFound(c, "Specialist not found")
		} else {
			respondStorageError(c, h.Logger, err, "")
		}
		return
	}
	utils.Success(c, "Specialist fetched successfully", specialist.Sanitized())
}

// UpdateSpecialistRequest represents the request body for updating a
// specialist profile. The specialization, if present, is resolved
// against the closed specialization set.
type UpdateSpecialistRequest struct {
	Phone          string                          `json:"phone"`
	DateOfBirth    string                          `json:"date_of_birth"`
	Specialization *registry.SpecializationPayload `json:"specialization"`
}

// UpdateSpecialist handles updating a specialist's profile fields.
func (h *SpecialistHandler) UpdateSpecialist(c *gin.Context) {
	var req UpdateSpecialistRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request payload: "+err.Error())
		return
	}

	var specialist models.Specialist
	err := h.DB.Preload("User.Role").Preload("Specialization").First(&specialist, "id = ?", c.Param("id")).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.NotFound(c, "Specialist not found")
		} else {
			respondStorageError(c, h.Logger, err, "")
		}
		return
	}

	fieldErrs := registry.FieldErrors{}
	if req.Phone != "" {
		phone, err := validation.Phone(req.Phone)
		if err != nil {
			fieldErrs.Add("phone", err)
		} else {
			specialist.Phone = phone
		}
	}
	if req.DateOfBirth != "" {
		dob, err := validation.Date(req.DateOfBirth)
		if err != nil {
			fieldErrs.Add("date_of_birth", err)
		} else {
			specialist.DateOfBirth = dob
		}
	}
	if len(fieldErrs) > 0 {
		utils.ValidationFailed(c, fieldErrs)
		return
	}

	if req.Specialization != nil {
		spec, err := h.Service.ResolveSpecialization(req.Specialization.Name)
		if err != nil {
			respondServiceError(c, h.Logger, err)
			return
		}
		specialist.SpecializationID = spec.ID
		specialist.Specialization = *spec
	}

	if err := h.DB.Save(&specialist).Error; err != nil {
		respondStorageError(c, h.Logger, err, "")
		return
	}
	utils.Success(c, "Specialist updated successfully", specialist.Sanitized())
}

// DeleteSpecialist deletes a specialist through its owning account,
// mirroring the patient deletion policy.
func (h *SpecialistHandler) DeleteSpecialist(c *gin.Context) {
	var specialist models.Specialist
	if err := h.DB.First(&specialist, "id = ?", c.Param("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.NotFound(c, "Specialist not found")
		} else {
			respondStorageError(c, h.Logger, err, "")
		}
		return
	}

	if err := h.DB.Delete(&models.User{}, specialist.UserID).Error; err != nil {
		respondStorageError(c, h.Logger, err, "Specialist is still referenced by reports")
		return
	}
	utils.Success(c, "Specialist deleted successfully", nil)
}
