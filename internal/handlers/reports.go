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

// ReportHandler handles report-related requests.
type ReportHandler struct {
	DB      *gorm.DB
	Service registry.Service
	Logger  *logrus.Entry
}

// NewReportHandler creates a new ReportHandler.
func NewReportHandler(db *gorm.DB, service registry.Service, logger *logrus.Entry) *ReportHandler {
	return &ReportHandler{DB: db, Service: service, Logger: logger}
}

// CreateReport handles the nested creation of a full report graph:
// patient, specialist, disorder and the report row, all or nothing.
func (h *ReportHandler) CreateReport(c *gin.Context) {
	var payload registry.ReportPayload
	if !utils.BindAndValidate(c, &payload) {
		return
	}

	report, err := h.Service.CreateReport(payload)
	if err != nil {
		respondServiceError(c, h.Logger, err)
		return
	}

	utils.Created(c, "Report created successfully", report.Sanitized())
}

func (h *ReportHandler) reportQuery() *gorm.DB {
	return h.DB.
		Preload("Patient.User.Role").
		Preload("Specialist.User.Role").
		Preload("Specialist.Specialization").
		Preload("Disorder")
}

// GetReports handles fetching all reports with their full graphs.
func (h *ReportHandler) GetReports(c *gin.Context) {
	var reports []models.Report
	if err := h.reportQuery().Find(&reports).Error; err != nil {
		respondStorageError(c, h.Logger, err, "")
		return
	}

	sanitized := make([]models.ReportSanitized, len(reports))
	for i := range reports {
		sanitized[i] = reports[i].Sanitized()
	}
	utils.Success(c, "Reports fetched successfully", sanitized)
}

// GetReportByID handles fetching a single report by ID.
func (h *ReportHandler) GetReportByID(c *gin.Context) {
	var report models.Report
	if err := h.reportQuery().First(&report, "reports.id = ?", c.Param("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.NotFound(c, "Report not found")
		} else {
			respondStorageError(c, h.Logger, err, "")
		}
		return
	}
	utils.Success(c, "Report fetched successfully", report.Sanitized())
}

// UpdateReportRequest represents the request body for updating a
// report. Only the diagnosis text is mutable; the referenced rows and
// date_created are fixed at creation time.
type UpdateReportRequest struct {
	Diagnosis string `json:"diagnosis" binding:"required"`
}

// UpdateReport handles updating a report's diagnosis.
func (h *ReportHandler) UpdateReport(c *gin.Context) {
	var req UpdateReportRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}

	var report models.Report
	if err := h.reportQuery().First(&report, "reports.id = ?", c.Param("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.NotFound(c, "Report not found")
		} else {
			respondStorageError(c, h.Logger, err, "")
		}
		return
	}

	report.Diagnosis = req.Diagnosis
	if err := h.DB.Model(&report).Update("diagnosis", req.Diagnosis).Error; err != nil {
		respondStorageError(c, h.Logger, err, "")
		return
	}
	utils.Success(c, "Report updated successfully", report.Sanitized())
}

// DeleteReport handles deleting a report.
func (h *ReportHandler) DeleteReport(c *gin.Context) {
	var report models.Report
	if err := h.DB.First(&report, "id = ?", c.Param("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.NotFound(c, "Report not found")
		} else {
			respondStorageError(c, h.Logger, err, "")
		}
		return
	}

	if err := h.DB.Delete(&report).Error; err != nil {
		respondStorageError(c, h.Logger, err, "")
		return
	}
	utils.Success(c, "Report deleted successfully", nil)
}
