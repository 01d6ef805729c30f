package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"clinic-registry-server/internal/models"
	"clinic-registry-server/internal/utils"
)

// DisorderHandler handles disorder CRUD.
type DisorderHandler struct {
	DB     *gorm.DB
	Logger *logrus.Entry
}

// NewDisorderHandler creates a new DisorderHandler.
func NewDisorderHandler(db *gorm.DB, logger *logrus.Entry) *DisorderHandler {
	return &DisorderHandler{DB: db, Logger: logger}
}

// DisorderRequest represents the request body for creating or
// updating a disorder.
type DisorderRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
}

// CreateDisorder handles creating a disorder.
func (h *DisorderHandler) CreateDisorder(c *gin.Context) {
	var req DisorderRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}

	disorder := models.Disorder{Name: req.Name, Description: req.Description}
	if err := h.DB.Create(&disorder).Error; err != nil {
		respondStorageError(c, h.Logger, err, "")
		return
	}
	utils.Created(c, "Disorder created successfully", disorder)
}

// GetDisorders handles fetching all disorders.
func (h *DisorderHandler) GetDisorders(c *gin.Context) {
	var disorders []models.Disorder
	if err := h.DB.Find(&disorders).Error; err != nil {
		respondStorageError(c, h.Logger, err, "")
		return
	}
	utils.Success(c, "Disorders fetched successfully", disorders)
}

// GetDisorderByID handles fetching a single disorder by ID.
func (h *DisorderHandler) GetDisorderByID(c *gin.Context) {
	var disorder models.Disorder
	if err := h.DB.First(&disorder, "id = ?", c.Param("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.NotFound(c, "Disorder not found")
		} else {
			respondStorageError(c, h.Logger, err, "")
		}
		return
	}
	utils.Success(c, "Disorder fetched successfully", disorder)
}

// UpdateDisorderRequest represents the request body for a partial
// disorder update.
type UpdateDisorderRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// UpdateDisorder handles updating a disorder.
func (h *DisorderHandler) UpdateDisorder(c *gin.Context) {
	var req UpdateDisorderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request payload: "+err.Error())
		return
	}

	var disorder models.Disorder
	if err := h.DB.First(&disorder, "id = ?", c.Param("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.NotFound(c, "Disorder not found")
		} else {
			respondStorageError(c, h.Logger, err, "")
		}
		return
	}

	if req.Name != "" {
		disorder.Name = req.Name
	}
	if req.Description != "" {
		disorder.Description = req.Description
	}

	if err := h.DB.Save(&disorder).Error; err != nil {
		respondStorageError(c, h.Logger, err, "")
		return
	}
	utils.Success(c, "Disorder updated successfully", disorder)
}

// DeleteDisorder deletes a disorder; rejected while any report still
// references it.
func (h *DisorderHandler) DeleteDisorder(c *gin.Context) {
	var disorder models.Disorder
	if err := h.DB.First(&disorder, "id = ?", c.Param("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.NotFound(c, "Disorder not found")
		} else {
			respondStorageError(c, h.Logger, err, "")
		}
		return
	}

	if err := h.DB.Delete(&disorder).Error; err != nil {
		respondStorageError(c, h.Logger, err, "Disorder is still referenced by reports")
		return
	}
	utils.Success(c, "Disorder deleted successfully", nil)
}
