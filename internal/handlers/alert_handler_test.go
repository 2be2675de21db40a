package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/demohealth/privacy-governance-api/internal/dao"
	"github.com/demohealth/privacy-governance-api/internal/models"
	"github.com/demohealth/privacy-governance-api/internal/service"
	"github.com/demohealth/privacy-governance-api/internal/service/mocks"
)

func setupAlertRouter(alerts *mocks.MockAlertStore) *gin.Engine {
	gin.SetMode(gin.TestMode)

	handler := NewAlertHandler(service.NewAlertService(alerts, newTestLogger()))

	router := gin.New()
	router.GET("/alerts", handler.ListAlerts)
	router.PATCH("/alerts/:alertId/resolve", handler.ResolveAlert)
	return router
}

// TestResolveAlertEndpoint tests the 200 response for a known alert
func TestResolveAlertEndpoint(t *testing.T) {
	alerts := new(mocks.MockAlertStore)
	router := setupAlertRouter(alerts)

	alerts.On("GetByID", mock.Anything, int64(5)).Return(&models.Alert{ID: 5}, nil)
	alerts.On("MarkResolved", mock.Anything, int64(5)).Return(nil)

	req := httptest.NewRequest(http.MethodPatch, "/alerts/5/resolve", nil)
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	assert.Equal(t, http.StatusOK, recorder.Code)

	var body map[string]interface{}
	assert.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
	assert.Equal(t, "Alert resolved", body["message"])
	assert.Equal(t, float64(5), body["alert_id"])
}

// TestResolveAlertEndpointNotFound tests the 404 response for an unknown alert
func TestResolveAlertEndpointNotFound(t *testing.T) {
	alerts := new(mocks.MockAlertStore)
	router := setupAlertRouter(alerts)

	alerts.On("GetByID", mock.Anything, int64(99)).Return(nil, dao.ErrAlertNotFound)

	req := httptest.NewRequest(http.MethodPatch, "/alerts/99/resolve", nil)
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	assert.Equal(t, http.StatusNotFound, recorder.Code)
}

// TestResolveAlertEndpointBadID tests the 400 response for a non-numeric id
func TestResolveAlertEndpointBadID(t *testing.T) {
	alerts := new(mocks.MockAlertStore)
	router := setupAlertRouter(alerts)

	req := httptest.NewRequest(http.MethodPatch, "/alerts/abc/resolve", nil)
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
	alerts.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
}

// TestListAlertsEndpoint tests listing with the unresolved filter
func TestListAlertsEndpoint(t *testing.T) {
	alerts := new(mocks.MockAlertStore)
	router := setupAlertRouter(alerts)

	alerts.On("List", mock.Anything, 5, true).Return([]models.Alert{{ID: 8}}, nil)

	req := httptest.NewRequest(http.MethodGet, "/alerts?limit=5&unresolved_only=true", nil)
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	assert.Equal(t, http.StatusOK, recorder.Code)

	var body []models.Alert
	assert.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
	assert.Len(t, body, 1)
	assert.Equal(t, int64(8), body[0].ID)
}
