package handlers

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"clinic-registry-server/internal/models"
	"clinic-registry-server/internal/registry"
	"clinic-registry-server/internal/validation"
)

func testLogger() *logrus.Entry {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logrus.NewEntry(logger)
}

func newPatientRouter(service registry.Service) *gin.Engine {
	gin.SetMode(gin.TestMode)
	handler := NewPatientHandler(nil, service, testLogger())
	router := gin.New()
	router.POST("/patients", handler.CreatePatient)
	return router
}

func postJSON(t *testing.T, router *gin.Engine, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	payload, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)
	return recorder
}

func patientRequestBody() map[string]interface{} {
	return map[string]interface{}{
		"user": map[string]interface{}{
			"first_name":       "Amira",
			"last_name":        "Hassan",
			"username":         "amira.h",
			"email":            "amira@example.com",
			"password":         "sunny1day",
			"confirm_password": "sunny1day",
			"role":             map[string]interface{}{"name": "Patient"},
		},
		"phone":         "0712345678",
		"date_of_birth": "1991-04-02",
		"address":       "12 Nile St",
	}
}

func TestCreatePatientReturns201(t *testing.T) {
	var got registry.PatientPayload
	service := &mockService{
		CreatePatientFunc: func(payload registry.PatientPayload) (*models.Patient, error) {
			got = payload
			return &models.Patient{
				BaseModel: models.BaseModel{ID: 1},
				UserID:    2,
				User: models.User{
					BaseModel: models.BaseModel{ID: 2},
					Email:     "amira@example.com",
					Username:  "amira.h",
					Role:      models.Role{BaseModel: models.BaseModel{ID: 3}, Name: "patient"},
				},
				Phone:       "0712345678",
				DateOfBirth: time.Date(1991, 4, 2, 0, 0, 0, 0, time.UTC),
				Address:     "12 Nile St",
			}, nil
		},
	}
	router := newPatientRouter(service)

	recorder := postJSON(t, router, "/patients", patientRequestBody())
	assert.Equal(t, http.StatusCreated, recorder.Code)

	// The raw role name reaches the service untouched; normalization
	// is the pipeline's job.
	assert.Equal(t, "Patient", got.User.Role.Name)

	var response struct {
		Data models.PatientSanitized `json:"data"`
	}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &response))
	assert.Equal(t, "patient", response.Data.User.Role.Name)
	assert.Equal(t, "0712345678", response.Data.Phone)
	// The password hash must never appear in the response.
	assert.NotContains(t, recorder.Body.String(), "password")
}

func TestCreatePatientFieldErrorsReturn400(t *testing.T) {
	service := &mockService{
		CreatePatientFunc: func(payload registry.PatientPayload) (*models.Patient, error) {
			errs := registry.FieldErrors{}
			errs.Add("phone", validation.ErrInvalidPhone)
			return nil, errs
		},
	}
	router := newPatientRouter(service)

	body := patientRequestBody()
	body["phone"] = "12345"
	recorder := postJSON(t, router, "/patients", body)

	assert.Equal(t, http.StatusBadRequest, recorder.Code)

	var response struct {
		Errors map[string][]string `json:"errors"`
	}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &response))
	require.Contains(t, response.Errors, "phone")
	assert.Contains(t, response.Errors["phone"][0], "phone")
}

func TestCreatePatientRoleMismatchReturns400(t *testing.T) {
	service := &mockService{
		CreatePatientFunc: func(payload registry.PatientPayload) (*models.Patient, error) {
			return nil, registry.ErrRoleMismatch
		},
	}
	router := newPatientRouter(service)

	body := patientRequestBody()
	recorder := postJSON(t, router, "/patients", body)
	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}

func TestCreatePatientDuplicateEmailReturns400(t *testing.T) {
	service := &mockService{
		CreatePatientFunc: func(payload registry.PatientPayload) (*models.Patient, error) {
			return nil, registry.ErrDuplicateEmail
		},
	}
	router := newPatientRouter(service)

	recorder := postJSON(t, router, "/patients", patientRequestBody())
	assert.Equal(t, http.StatusBadRequest, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "email already in use")
}

func TestCreatePatientStorageErrorReturns500(t *testing.T) {
	service := &mockService{
		CreatePatientFunc: func(payload registry.PatientPayload) (*models.Patient, error) {
			return nil, assert.AnError
		},
	}
	router := newPatientRouter(service)

	recorder := postJSON(t, router, "/patients", patientRequestBody())
	assert.Equal(t, http.StatusInternalServerError, recorder.Code)
	// Raw storage errors never reach the caller.
	assert.NotContains(t, recorder.Body.String(), assert.AnError.Error())
}

func TestCreatePatientMissingBodyReturns400(t *testing.T) {
	router := newPatientRouter(&mockService{})

	req := httptest.NewRequest(http.MethodPost, "/patients", bytes.NewReader([]byte("{}")))
	req.Header.Set("Content-Type", "application/json")
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}
