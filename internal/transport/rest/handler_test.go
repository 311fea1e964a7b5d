package rest

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"masgolf/config"
	"masgolf/internal/domain"
	"masgolf/internal/service"
)

type fakeAvailability struct {
	next        *domain.NextAvailable
	times       *domain.AvailableTimes
	err         error
	gotDuration int
	gotFrom     *time.Time
}

func (f *fakeAvailability) Today() time.Time { return time.Date(2026, 10, 15, 0, 0, 0, 0, time.UTC) }

func (f *fakeAvailability) ParseDate(value string) (time.Time, error) {
	d, err := time.Parse(domain.DateLayout, value)
	if err != nil {
		return time.Time{}, domain.ErrInvalidInput
	}
	return d, nil
}

func (f *fakeAvailability) ComputeAvailableSlots(context.Context, time.Time, int, domain.BookingSettings) ([]string, error) {
	return nil, f.err
}

func (f *fakeAvailability) AvailableTimes(_ context.Context, _ time.Time, duration int) (*domain.AvailableTimes, error) {
	f.gotDuration = duration
	return f.times, f.err
}

func (f *fakeAvailability) FindNextAvailableDate(_ context.Context, duration int, from *time.Time) (*domain.NextAvailable, error) {
	f.gotDuration = duration
	f.gotFrom = from
	return f.next, f.err
}

type fakeBookings struct {
	created *domain.Booking
	err     error
	filter  domain.BookingFilter
}

func (f *fakeBookings) Create(_ context.Context, dto domain.CreateBookingDTO) (*domain.Booking, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &domain.Booking{ID: 1, Name: dto.Name, Time: dto.Time, Status: domain.BookingStatusPending}, nil
}

func (f *fakeBookings) GetByID(context.Context, int64) (*domain.Booking, error) {
	return nil, domain.ErrNotFound
}

func (f *fakeBookings) List(_ context.Context, filter domain.BookingFilter) ([]domain.Booking, int, error) {
	f.filter = filter
	return []domain.Booking{{ID: 1}}, 41, f.err
}

func (f *fakeBookings) UpdateStatus(context.Context, int64, domain.BookingStatus) error {
	return f.err
}

type fakeSettings struct{}

func (fakeSettings) Get(context.Context) (domain.BookingSettings, error) {
	return domain.DefaultBookingSettings(), nil
}

func (fakeSettings) Update(_ context.Context, dto domain.UpdateBookingSettingsDTO) (domain.BookingSettings, error) {
	if dto.MinAdvanceHours != nil && *dto.MinAdvanceHours > 720 {
		return domain.BookingSettings{}, domain.ErrInvalidInput
	}
	return domain.DefaultBookingSettings(), nil
}

type fakeAuth struct {
	role string
}

func (f fakeAuth) Login(context.Context, domain.LoginRequest, string, string) (*domain.Tokens, error) {
	return nil, domain.ErrInvalidCredentials
}

func (f fakeAuth) RefreshTokens(context.Context, string, string, string) (*domain.Tokens, error) {
	return nil, domain.ErrInvalidToken
}

func (f fakeAuth) Logout(context.Context, string) error { return nil }

func (f fakeAuth) ParseToken(_ context.Context, token string) (string, string, error) {
	if token != "valid" {
		return "", "", domain.ErrInvalidToken
	}
	return "admin", f.role, nil
}

type fakePinger struct{ err error }

func (p fakePinger) Ping(context.Context) error { return p.err }

func newTestRouter(services *service.Services, db Pinger) *gin.Engine {
	gin.SetMode(gin.TestMode)
	cfg := &config.Config{Version: "test", Booking: config.BookingConfig{ContactPhone: "080-028-8888"}}
	router := gin.New()
	NewHandler(services, zap.NewNop(), cfg, db, nil).InitRoutes(router)
	return router
}

func do(router http.Handler, method, target, body, token string) *httptest.ResponseRecorder {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestNextAvailable_Found(t *testing.T) {
	availability := &fakeAvailability{next: &domain.NextAvailable{
		Date:           "2026-10-16",
		AvailableTimes: []string{"09:00", "14:00"},
		FormattedDate:  "2026년 10월 16일 (금)",
	}}
	router := newTestRouter(&service.Services{Availability: availability}, nil)

	w := do(router, http.MethodGet, "/api/bookings/next-available?duration=90&from_date=2026-10-16", "", "")
	require.Equal(t, http.StatusOK, w.Code)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "2026-10-16", body["date"])
	assert.Equal(t, []interface{}{"09:00", "14:00"}, body["available_times"])
	assert.Equal(t, "2026년 10월 16일 (금)", body["formatted_date"])
	assert.Equal(t, 90, availability.gotDuration)
	require.NotNil(t, availability.gotFrom)
	assert.Equal(t, "2026-10-16", availability.gotFrom.Format(domain.DateLayout))
}

func TestNextAvailable_DefaultsDurationAndStart(t *testing.T) {
	availability := &fakeAvailability{next: &domain.NextAvailable{Date: "2026-10-16", AvailableTimes: []string{"09:00"}}}
	router := newTestRouter(&service.Services{Availability: availability}, nil)

	w := do(router, http.MethodGet, "/api/bookings/next-available", "", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Zero(t, availability.gotDuration)
	assert.Nil(t, availability.gotFrom)
}

func TestNextAvailable_NotFound(t *testing.T) {
	router := newTestRouter(&service.Services{Availability: &fakeAvailability{err: domain.ErrNoAvailableDate}}, nil)

	w := do(router, http.MethodGet, "/api/bookings/next-available", "", "")
	require.Equal(t, http.StatusNotFound, w.Code)

	var body storefrontError
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "no_available_date", body.Error)
	assert.Contains(t, body.Message, "080-028-8888")
}

func TestNextAvailable_InfrastructureError(t *testing.T) {
	router := newTestRouter(&service.Services{Availability: &fakeAvailability{err: errors.New("connection refused")}}, nil)

	w := do(router, http.MethodGet, "/api/bookings/next-available", "", "")
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.NotContains(t, w.Body.String(), "connection refused")
}

func TestNextAvailable_BadParams(t *testing.T) {
	router := newTestRouter(&service.Services{Availability: &fakeAvailability{}}, nil)

	for _, target := range []string{
		"/api/bookings/next-available?duration=abc",
		"/api/bookings/next-available?duration=0",
		"/api/bookings/next-available?duration=600",
		"/api/bookings/next-available?from_date=16-10-2026",
	} {
		w := do(router, http.MethodGet, target, "", "")
		assert.Equal(t, http.StatusBadRequest, w.Code, target)
	}
}

func TestAvailableTimes(t *testing.T) {
	availability := &fakeAvailability{times: &domain.AvailableTimes{Date: "2026-10-19", Duration: 60, AvailableTimes: []string{}}}
	router := newTestRouter(&service.Services{Availability: availability}, nil)

	w := do(router, http.MethodGet, "/api/bookings/available-times?date=2026-10-19", "", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"date":"2026-10-19","duration":60,"available_times":[]}`, w.Body.String())

	w = do(router, http.MethodGet, "/api/bookings/available-times", "", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreateBooking(t *testing.T) {
	body := `{"name":"김민수","phone":"010-1234-5678","date":"2026-10-19","time":"09:00"}`

	router := newTestRouter(&service.Services{Booking: &fakeBookings{}}, nil)
	w := do(router, http.MethodPost, "/api/bookings", body, "")
	assert.Equal(t, http.StatusCreated, w.Code)

	router = newTestRouter(&service.Services{Booking: &fakeBookings{err: domain.ErrSlotUnavailable}}, nil)
	w = do(router, http.MethodPost, "/api/bookings", body, "")
	assert.Equal(t, http.StatusConflict, w.Code)

	router = newTestRouter(&service.Services{Booking: &fakeBookings{err: domain.ErrInvalidInput}}, nil)
	w = do(router, http.MethodPost, "/api/bookings", body, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = do(router, http.MethodPost, "/api/bookings", `{"name":"김민수"}`, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAdminRoutes_RequireAdminToken(t *testing.T) {
	services := &service.Services{Settings: fakeSettings{}, Auth: fakeAuth{role: domain.AdminRole}}
	router := newTestRouter(services, nil)

	assert.Equal(t, http.StatusUnauthorized, do(router, http.MethodGet, "/api/admin/settings", "", "").Code)
	assert.Equal(t, http.StatusUnauthorized, do(router, http.MethodGet, "/api/admin/settings", "", "forged").Code)
	assert.Equal(t, http.StatusOK, do(router, http.MethodGet, "/api/admin/settings", "", "valid").Code)

	router = newTestRouter(&service.Services{Settings: fakeSettings{}, Auth: fakeAuth{role: "viewer"}}, nil)
	assert.Equal(t, http.StatusForbidden, do(router, http.MethodGet, "/api/admin/settings", "", "valid").Code)
}

func TestUpdateSettings_InvalidInput(t *testing.T) {
	router := newTestRouter(&service.Services{Settings: fakeSettings{}, Auth: fakeAuth{role: domain.AdminRole}}, nil)

	w := do(router, http.MethodPut, "/api/admin/settings", `{"min_advance_hours":1000}`, "valid")
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = do(router, http.MethodPut, "/api/admin/settings", `{"min_advance_hours":-1}`, "valid")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestLogin_InvalidCredentials(t *testing.T) {
	router := newTestRouter(&service.Services{Auth: fakeAuth{}}, nil)

	w := do(router, http.MethodPost, "/api/admin/auth/login", `{"login":"admin","password":"nope"}`, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestListBookings_Pagination(t *testing.T) {
	bookings := &fakeBookings{}
	router := newTestRouter(&service.Services{Booking: bookings, Availability: &fakeAvailability{}, Auth: fakeAuth{role: domain.AdminRole}}, nil)

	w := do(router, http.MethodGet, "/api/admin/bookings?date=2026-10-19&status=pending,confirmed&limit=20&offset=40", "", "valid")
	require.Equal(t, http.StatusOK, w.Code)

	var body paginatedResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, 3, body.Page)
	assert.Equal(t, 3, body.TotalPages)
	assert.Equal(t, []domain.BookingStatus{domain.BookingStatusPending, domain.BookingStatusConfirmed}, bookings.filter.Statuses)
	require.NotNil(t, bookings.filter.Date)
}

func TestGetBooking_NotFound(t *testing.T) {
	router := newTestRouter(&service.Services{Booking: &fakeBookings{}, Auth: fakeAuth{role: domain.AdminRole}}, nil)

	assert.Equal(t, http.StatusNotFound, do(router, http.MethodGet, "/api/admin/bookings/5", "", "valid").Code)
	assert.Equal(t, http.StatusBadRequest, do(router, http.MethodGet, "/api/admin/bookings/abc", "", "valid").Code)
}

func TestUpdateBookingStatus_TakenSlotIsConflict(t *testing.T) {
	router := newTestRouter(&service.Services{
		Booking: &fakeBookings{err: domain.ErrSlotUnavailable},
		Auth:    fakeAuth{role: domain.AdminRole},
	}, nil)

	w := do(router, http.MethodPut, "/api/admin/bookings/5/status", `{"status":"confirmed"}`, "valid")
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestSnapshot_NotConfigured(t *testing.T) {
	router := newTestRouter(&service.Services{Auth: fakeAuth{role: domain.AdminRole}}, nil)

	assert.Equal(t, http.StatusServiceUnavailable, do(router, http.MethodPost, "/api/admin/snapshot", "", "valid").Code)
}

func TestHealthz(t *testing.T) {
	router := newTestRouter(&service.Services{}, fakePinger{})
	assert.Equal(t, http.StatusOK, do(router, http.MethodGet, "/healthz", "", "").Code)

	router = newTestRouter(&service.Services{}, fakePinger{err: errors.New("down")})
	assert.Equal(t, http.StatusServiceUnavailable, do(router, http.MethodGet, "/healthz", "", "").Code)
}

func TestCORSPreflight(t *testing.T) {
	router := newTestRouter(&service.Services{}, nil)

	w := do(router, http.MethodOptions, "/api/bookings/next-available", "", "")
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
}
