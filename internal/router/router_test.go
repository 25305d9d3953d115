package router

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/SathilaT2001/ceylon-serenity-resort/internal/auth"
	"github.com/SathilaT2001/ceylon-serenity-resort/internal/database"
	"github.com/SathilaT2001/ceylon-serenity-resort/internal/handlers"
	"github.com/SathilaT2001/ceylon-serenity-resort/internal/service/mocks"
	"github.com/SathilaT2001/ceylon-serenity-resort/internal/ws"
)

const testSecret = "router-test-secret"

func newTestRouter(t *testing.T) (http.Handler, *mocks.MockService) {
	t.Helper()

	mockSvc := new(mocks.MockService)
	h := handlers.NewHandler(mockSvc, zap.NewNop())
	hub := ws.NewHub(zap.NewNop())

	r := NewRouter(h, hub, zap.NewNop(), Config{JWTSecret: testSecret})

	return r, mockSvc
}

func TestRouter_HealthCheck(t *testing.T) {
	r, _ := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()

	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRouter_AdminRoutesRequireToken(t *testing.T) {
	r, mockSvc := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/admin/guests", nil)
	rec := httptest.NewRecorder()

	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	mockSvc.AssertNotCalled(t, "ListGuests", mock.Anything)
}

func TestRouter_AdminRoutesAcceptStaffToken(t *testing.T) {
	r, mockSvc := newTestRouter(t)

	mockSvc.On("ListGuests", mock.Anything).Return([]database.Guest{}, nil)

	token, err := auth.Token(testSecret, "kamala", auth.RoleAdmin, time.Hour)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/api/admin/guests", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()

	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	mockSvc.AssertExpectations(t)
}

func TestRouter_PublicRoutesNeedNoToken(t *testing.T) {
	r, mockSvc := newTestRouter(t)

	mockSvc.On("RoomTypes", mock.Anything).Return(nil)

	req := httptest.NewRequest(http.MethodGet, "/api/room-types", nil)
	rec := httptest.NewRecorder()

	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRouter_CORSPreflight(t *testing.T) {
	r, _ := newTestRouter(t)

	req := httptest.NewRequest(http.MethodOptions, "/api/reservations", nil)
	rec := httptest.NewRecorder()

	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
	assert.Contains(t, rec.Header().Get("Access-Control-Allow-Headers"), "Authorization")
}
