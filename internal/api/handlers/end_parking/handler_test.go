package end_parking

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/parqr/parqr-backend/internal/api/middleware"
	"github.com/parqr/parqr-backend/internal/service/parking"
	"github.com/parqr/parqr-backend/internal/service/parking/models"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type stubParkingService struct {
	resp *models.SessionResponse
	err  error

	gotSessionID int64
	gotUserID    int64
}

func (s *stubParkingService) End(_ context.Context, sessionID, userID int64) (*models.SessionResponse, error) {
	s.gotSessionID = sessionID
	s.gotUserID = userID
	return s.resp, s.err
}

func doRequest(t *testing.T, svc *stubParkingService, userID, body string) *httptest.ResponseRecorder {
	t.Helper()

	handler := NewHandler(svc, nopLogger{})
	req := httptest.NewRequest(http.MethodPost, "/api/v01/parking/end", strings.NewReader(body))
	if userID != "" {
		req.Header.Set("X-User-ID", userID)
	}
	rec := httptest.NewRecorder()

	middleware.Auth(http.HandlerFunc(handler.Handle)).ServeHTTP(rec, req)
	return rec
}

func TestHandle_EndsSession(t *testing.T) {
	end := time.Date(2026, 8, 23, 14, 0, 0, 0, time.UTC)
	svc := &stubParkingService{
		resp: &models.SessionResponse{ID: 1, UserID: 42, CarID: 7, EndTime: &end},
	}

	rec := doRequest(t, svc, "42", `{"sessionId": 1}`)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, int64(1), svc.gotSessionID)
	assert.Equal(t, int64(42), svc.gotUserID)

	var resp models.SessionResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, int64(1), resp.ID)
	require.NotNil(t, resp.EndTime)
	assert.Equal(t, end, resp.EndTime.UTC())
}

func TestHandle_MissingAuthHeader(t *testing.T) {
	rec := doRequest(t, &stubParkingService{}, "", `{"sessionId": 1}`)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestHandle_InvalidBody(t *testing.T) {
	rec := doRequest(t, &stubParkingService{}, "42", `not json`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandle_InvalidSessionID(t *testing.T) {
	rec := doRequest(t, &stubParkingService{}, "42", `{"sessionId": 0}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandle_SessionNotFound(t *testing.T) {
	svc := &stubParkingService{err: parking.ErrSessionNotFound}
	rec := doRequest(t, svc, "42", `{"sessionId": 1}`)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHandle_SessionAlreadyEnded(t *testing.T) {
	svc := &stubParkingService{err: parking.ErrSessionAlreadyEnded}
	rec := doRequest(t, svc, "42", `{"sessionId": 1}`)
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestHandle_InternalError(t *testing.T) {
	svc := &stubParkingService{err: parking.ErrInternal}
	rec := doRequest(t, svc, "42", `{"sessionId": 1}`)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
