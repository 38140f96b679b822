package routes

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	miniredis "github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/medonline/consultation-scheduler/internal/config"
	"github.com/medonline/consultation-scheduler/internal/infra/records"
	"github.com/medonline/consultation-scheduler/internal/models"
	"github.com/medonline/consultation-scheduler/internal/store"
)

const testSecret = "test-secret"

type testAPI struct {
	router *gin.Engine
	repo   *records.RecordsRepository
}

func newTestAPI(t *testing.T) *testAPI {
	t.Helper()
	gin.SetMode(gin.TestMode)

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	st := store.NewRedisStoreWithClient(client)

	cfg := &config.Config{JWTSecret: testSecret}
	router := gin.New()
	RegisterRoutes(router, st, cfg)

	return &testAPI{
		router: router,
		repo:   records.NewRecordsRepository(st),
	}
}

func (a *testAPI) token(t *testing.T, userID, role string) string {
	t.Helper()
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":  userID,
		"role": role,
		"exp":  time.Now().Add(time.Hour).Unix(),
	})
	signed, err := tok.SignedString([]byte(testSecret))
	require.NoError(t, err)
	return signed
}

func (a *testAPI) do(
	t *testing.T,
	method, path, token string,
	body any,
) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, path, &buf)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	a.router.ServeHTTP(rec, req)
	return rec
}

func (a *testAPI) seedDoctor(t *testing.T, doctorID string) {
	t.Helper()
	ctx := context.Background()

	require.NoError(t, a.repo.SaveProfile(ctx, models.Profile{
		UserID:         doctorID,
		Type:           models.RoleDoctor,
		Name:           "Anna",
		Surname:        "Nowak",
		Specialization: "cardiology",
		Email:          doctorID + "@example.com",
	}))
	require.NoError(t, a.repo.SaveAvailability(ctx, doctorID, models.Availability{
		Key:        "av-1",
		Type:       models.AvailabilityCyclic,
		DaysOfWeek: []string{"Tuesday"},
		TimeSlots:  []models.TimeSlot{{StartTime: "08:00", EndTime: "15:00"}},
	}))
}

// ======================================================
// AUTH
// ======================================================

func TestLogin(t *testing.T) {
	api := newTestAPI(t)

	hash, err := bcrypt.GenerateFromPassword([]byte("sw0rdfish"), bcrypt.DefaultCost)
	require.NoError(t, err)
	require.NoError(t, api.repo.SaveProfile(context.Background(), models.Profile{
		UserID:       "pat-1",
		Type:         models.RolePatient,
		Name:         "Jan",
		Email:        "jan@example.com",
		PasswordHash: string(hash),
	}))

	rec := api.do(t, http.MethodPost, "/api/auth/login", "", gin.H{
		"email": "Jan@Example.com", "password": "sw0rdfish",
	})
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Token string `json:"token"`
		User  struct {
			UserID string `json:"user_id"`
		} `json:"user"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, "pat-1", resp.User.UserID)

	// The issued token opens the secured surface.
	rec = api.do(t, http.MethodGet, "/api/me", resp.Token, nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = api.do(t, http.MethodPost, "/api/auth/login", "", gin.H{
		"email": "jan@example.com", "password": "wrong",
	})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestSecuredRoutesRequireToken(t *testing.T) {
	api := newTestAPI(t)

	rec := api.do(t, http.MethodGet, "/api/me", "", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = api.do(t, http.MethodGet, "/api/me", "garbage", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRoleGuards(t *testing.T) {
	api := newTestAPI(t)
	patientToken := api.token(t, "pat-1", models.RolePatient)
	doctorToken := api.token(t, "doc-1", models.RoleDoctor)

	// A patient cannot manage availability.
	rec := api.do(t, http.MethodGet, "/api/me/availability", patientToken, nil)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	// A doctor cannot book consultations.
	rec = api.do(t, http.MethodPost, "/api/appointments", doctorToken, gin.H{
		"doctor_id": "doc-2", "date": "2024-02-06", "time": "09:00",
		"length": 30, "type": models.TypeRegular,
	})
	assert.Equal(t, http.StatusForbidden, rec.Code)

	// Neither reaches the admin surface.
	rec = api.do(t, http.MethodDelete, "/api/admin/doctors/doc-1", patientToken, nil)
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

// ======================================================
// BOOKING FLOW
// ======================================================

func TestBookingFlow(t *testing.T) {
	api := newTestAPI(t)
	api.seedDoctor(t, "doc-1")
	patientToken := api.token(t, "pat-1", models.RolePatient)

	// The calendar shows the Tuesday slot as open.
	rec := api.do(t, http.MethodGet,
		"/api/doctors/doc-1/calendar?date=2024-02-06&start_hour=8&hours_per_page=4",
		patientToken, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var view struct {
		Days []struct {
			Date  string `json:"date"`
			Slots []struct {
				Time   string `json:"time"`
				Status string `json:"status"`
			} `json:"slots"`
		} `json:"days"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &view))
	require.Len(t, view.Days, 7)
	assert.Equal(t, "2024-02-05", view.Days[0].Date)
	assert.Equal(t, "available", view.Days[1].Slots[2].Status) // Tuesday 09:00

	// Book it.
	rec = api.do(t, http.MethodPost, "/api/appointments", patientToken, gin.H{
		"doctor_id": "doc-1", "date": "2024-02-06", "time": "09:00",
		"length": 60, "type": models.TypeRegular, "description": "checkup",
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	var ap models.Appointment
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &ap))
	assert.Equal(t, 200, ap.Price)

	// A second patient now sees the slot as unavailable.
	otherToken := api.token(t, "pat-2", models.RolePatient)
	rec = api.do(t, http.MethodPost, "/api/appointments", otherToken, gin.H{
		"doctor_id": "doc-1", "date": "2024-02-06", "time": "09:00",
		"length": 30, "type": models.TypeRegular,
	})
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "slot_unavailable")

	// The booking patient can cancel.
	rec = api.do(t, http.MethodDelete, "/api/appointments/"+ap.AppointmentID, patientToken, nil)
	assert.Equal(t, http.StatusOK, rec.Code)
}

// ======================================================
// ABSENCE CONFLICT
// ======================================================

func TestAbsenceConflictReturns409(t *testing.T) {
	api := newTestAPI(t)
	api.seedDoctor(t, "doc-1")
	doctorToken := api.token(t, "doc-1", models.RoleDoctor)
	patientToken := api.token(t, "pat-1", models.RolePatient)

	rec := api.do(t, http.MethodPost, "/api/appointments", patientToken, gin.H{
		"doctor_id": "doc-1", "date": "2024-02-06", "time": "09:00",
		"length": 30, "type": models.TypeRegular,
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = api.do(t, http.MethodPost, "/api/me/absences", doctorToken, gin.H{
		"date": "2024-02-06", "reason": "conference",
	})
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Contains(t, rec.Body.String(), "absence_conflict_consultations_cancelled")

	// The consultation is gone and the absence list is still empty.
	list, err := api.repo.ListAppointments(context.Background(), "pat-1")
	require.NoError(t, err)
	assert.Empty(t, list)

	rec = api.do(t, http.MethodGet, "/api/me/absences", doctorToken, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"total":0`)
}

// ======================================================
// DIRECTORY
// ======================================================

func TestDoctorsDirectory(t *testing.T) {
	api := newTestAPI(t)
	api.seedDoctor(t, "doc-1")
	patientToken := api.token(t, "pat-1", models.RolePatient)

	rec := api.do(t, http.MethodGet, "/api/doctors", patientToken, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "cardiology")
	assert.Contains(t, rec.Body.String(), `"total":1`)
}
