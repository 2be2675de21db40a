package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/demohealth/privacy-governance-api/internal/models"
	"github.com/demohealth/privacy-governance-api/internal/service"
	"github.com/demohealth/privacy-governance-api/internal/service/mocks"
)

func setupLogsRouter(accessLogs *mocks.MockAccessLogStore) *gin.Engine {
	gin.SetMode(gin.TestMode)

	handler := NewMetricsHandler(service.NewMetricsService(accessLogs, new(mocks.MockAlertStore)))

	router := gin.New()
	router.GET("/logs", handler.ListLogs)
	return router
}

func withinWindow(since time.Time, minutes int) bool {
	expected := time.Now().UTC().Add(-time.Duration(minutes) * time.Minute)
	diff := since.Sub(expected)
	return diff > -2*time.Second && diff < 2*time.Second
}

// TestListLogsDefaultWindow tests that omitting since_minutes applies the 24-hour cutoff
func TestListLogsDefaultWindow(t *testing.T) {
	accessLogs := new(mocks.MockAccessLogStore)
	router := setupLogsRouter(accessLogs)

	accessLogs.On("List", mock.Anything, mock.MatchedBy(func(filter *models.AccessLogFilter) bool {
		return !filter.Since.IsZero() &&
			withinWindow(filter.Since, service.DefaultSinceMinutes) &&
			filter.Limit == 100
	})).Return([]models.AccessLog{}, nil)

	req := httptest.NewRequest(http.MethodGet, "/logs", nil)
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	assert.Equal(t, http.StatusOK, recorder.Code)
	accessLogs.AssertExpectations(t)
}

// TestListLogsExplicitWindow tests that since_minutes narrows the cutoff
func TestListLogsExplicitWindow(t *testing.T) {
	accessLogs := new(mocks.MockAccessLogStore)
	router := setupLogsRouter(accessLogs)

	userID := int64(1)
	accessLogs.On("List", mock.Anything, mock.MatchedBy(func(filter *models.AccessLogFilter) bool {
		return withinWindow(filter.Since, 60) &&
			filter.UserID != nil && *filter.UserID == userID &&
			filter.Action == "view" &&
			filter.Limit == 25
	})).Return([]models.AccessLog{}, nil)

	req := httptest.NewRequest(http.MethodGet, "/logs?since_minutes=60&user_id=1&action=view&limit=25", nil)
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	assert.Equal(t, http.StatusOK, recorder.Code)
	accessLogs.AssertExpectations(t)
}

// TestListLogsBadSinceMinutes tests the 400 response for a malformed window
func TestListLogsBadSinceMinutes(t *testing.T) {
	accessLogs := new(mocks.MockAccessLogStore)
	router := setupLogsRouter(accessLogs)

	req := httptest.NewRequest(http.MethodGet, "/logs?since_minutes=-5", nil)
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
	accessLogs.AssertNotCalled(t, "List", mock.Anything, mock.Anything)
}
