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

// PatientHandler handles patient-related requests.
type PatientHandler struct {
	DB      *gorm.DB
	Service registry.Service
	Logger  *logrus.Entry
}

// NewPatientHandler creates a new PatientHandler.
func NewPatientHandler(db *gorm.DB, service registry.Service, logger *logrus.Entry) *PatientHandler {
	return &PatientHandler{DB: db, Service: service, Logger: logger}
}

// CreatePatient handles the nested creation of an account and its
// patient profile in one transaction.
func (h *PatientHandler) CreatePatient(c *gin.Context) {
	var payload registry.PatientPayload
	if !utils.BindAndValidate(c, &payload) {
		return
	}

	patient, err := h.Service.CreatePatient(payload)
	if err != nil {
		respondServiceError(c, h.Logger, err)
		return
	}

	utils.Created(c, "Patient created successfully", patient.Sanitized())
}

// GetPatients handles fetching all patients.
func (h *PatientHandler) GetPatients(c *gin.Context) {
	var patients []models.Patient
	if err := h.DB.Preload("User.Role").Find(&patients).Error; err != nil {
		respondStorageError(c, h.Logger, err, "")
		return
	}

	sanitized := make([]models.PatientSanitized, len(patients))
	for i := range patients {
		sanitized[i] = patients[i].Sanitized()
	}
	utils.Success(c, "Patients fetched successfully", sanitized)
}

// GetPatientByID handles fetching a single patient by ID.
func (h *PatientHandler) GetPatientByID(c *gin.Context) {
	var patient models.Patient
	if err := h.DB.Preload("User.Role").First(&patient, "id = ?", c.Param("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.NotFound(c, "Patient not found")
		} else {
			respondStorageError(c, h.Logger, err, "")
		}
		return
	}
	utils.Success(c, "Patient fetched successfully", patient.Sanitized())
}

// UpdatePatientRequest represents the request body for updating a
// patient profile. Account fields and role are managed through the
// user endpoints.
type UpdatePatientRequest struct {
	Phone       string `json:"phone"`
	DateOfBirth string `json:"date_of_birth"`
	Address     string `json:"address"`
}

// UpdatePatient handles updating a patient's profile fields.
func (h *PatientHandler) UpdatePatient(c *gin.Context) {
	var req UpdatePatientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request payload: "+err.Error())
		return
	}

	var patient models.Patient
	if err := h.DB.Preload("User.Role").First(&patient, "id = ?", c.Param("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.NotFound(c, "Patient not found")
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
			patient.Phone = phone
		}
	}
	if req.DateOfBirth != "" {
		dob, err := validation.Date(req.DateOfBirth)
		if err != nil {
			fieldErrs.Add("date_of_birth", err)
		} else {
			patient.DateOfBirth = dob
		}
	}
	if len(fieldErrs) > 0 {
		utils.ValidationFailed(c, fieldErrs)
		return
	}
	if req.Address != "" {
		patient.Address = req.Address
	}

	if err := h.DB.Save(&patient).Error; err != nil {
		if registry.IsDuplicate(err) {
			utils.BadRequest(c, registry.ErrDuplicatePhone.Error())
			return
		}
		respondStorageError(c, h.Logger, err, "")
		return
	}
	utils.Success(c, "Patient updated successfully", patient.Sanitized())
}

// DeletePatient deletes a patient by deleting its owning account; the
// profile row goes with it through the FK cascade. The delete is
// rejected while reports still reference the patient.
func (h *PatientHandler) DeletePatient(c *gin.Context) {
	var patient models.Patient
	if err := h.DB.First(&patient, "id = ?", c.Param("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.NotFound(c, "Patient not found")
		} else {
			respondStorageError(c, h.Logger, err, "")
		}
		return
	}

	if err := h.DB.Delete(&models.User{}, patient.UserID).Error; err != nil {
		respondStorageError(c, h.Logger, err, "Patient is still referenced by reports")
		return
	}
	utils.Success(c, "Patient deleted successfully", nil)
}
