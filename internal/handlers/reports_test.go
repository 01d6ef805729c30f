package handlers

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"clinic-registry-server/internal/models"
	"clinic-registry-server/internal/registry"
	"clinic-registry-server/internal/validation"
)

func newReportRouter(service registry.Service) *gin.Engine {
	gin.SetMode(gin.TestMode)
	handler := NewReportHandler(nil, service, testLogger())
	router := gin.New()
	router.POST("/reports", handler.CreateReport)
	return router
}

func reportRequestBody() map[string]interface{} {
	specialistUser := map[string]interface{}{
		"first_name":       "Omar",
		"last_name":        "Said",
		"username":         "omar.s",
		"email":            "omar@example.com",
		"password":         "cloudy2day",
		"confirm_password": "cloudy2day",
		"role":             map[string]interface{}{"name": "specialist"},
	}
	return map[string]interface{}{
		"patient": patientRequestBody(),
		"specialist": map[string]interface{}{
			"user":           specialistUser,
			"specialization": map[string]interface{}{"name": "dentist"},
			"phone":          "0198765432",
			"date_of_birth":  "1985-11-30",
		},
		"disorder": map[string]interface{}{
			"name":        "bruxism",
			"description": "involuntary grinding of the teeth",
		},
		"diagnosis": "mild, night guard recommended",
	}
}

func TestCreateReportReturns201(t *testing.T) {
	service := &mockService{
		CreateReportFunc: func(payload registry.ReportPayload) (*models.Report, error) {
			return &models.Report{
				BaseModel:   models.BaseModel{ID: 10},
				Patient:     models.Patient{BaseModel: models.BaseModel{ID: 1}, Phone: "0712345678"},
				Specialist:  models.Specialist{BaseModel: models.BaseModel{ID: 2}},
				Disorder:    models.Disorder{BaseModel: models.BaseModel{ID: 3}, Name: "bruxism"},
				Diagnosis:   payload.Diagnosis,
				DateCreated: time.Now(),
			}, nil
		},
	}
	router := newReportRouter(service)

	recorder := postJSON(t, router, "/reports", reportRequestBody())
	assert.Equal(t, http.StatusCreated, recorder.Code)

	var response struct {
		Data models.ReportSanitized `json:"data"`
	}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &response))
	assert.Equal(t, "bruxism", response.Data.Disorder.Name)
	assert.Equal(t, "mild, night guard recommended", response.Data.Diagnosis)
}

func TestCreateReportNestedFieldErrorsReturn400(t *testing.T) {
	service := &mockService{
		CreateReportFunc: func(payload registry.ReportPayload) (*models.Report, error) {
			errs := registry.FieldErrors{}
			errs.Add("patient.phone", validation.ErrInvalidPhone)
			errs.Add("specialist.phone", validation.ErrInvalidPhone)
			return nil, errs
		},
	}
	router := newReportRouter(service)

	body := reportRequestBody()
	recorder := postJSON(t, router, "/reports", body)

	assert.Equal(t, http.StatusBadRequest, recorder.Code)

	var response struct {
		Errors map[string][]string `json:"errors"`
	}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &response))
	assert.Contains(t, response.Errors, "patient.phone")
	assert.Contains(t, response.Errors, "specialist.phone")
}
