package bookings

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"courtdesk/internal/shared/utils/response"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubService struct {
	detail     *DetailResponse
	err        error
	gotBooking string
	gotProduct int
	gotDelta   int
}

func (s *stubService) GetDetail(_ context.Context, _, bookingID string) (*DetailResponse, error) {
	s.gotBooking = bookingID
	return s.detail, s.err
}

func (s *stubService) AdjustProduct(_ context.Context, _, bookingID string, productID, delta int) (*DetailResponse, error) {
	s.gotBooking = bookingID
	s.gotProduct = productID
	s.gotDelta = delta
	return s.detail, s.err
}

func (s *stubService) TogglePayment(_ context.Context, _, bookingID string) (*DetailResponse, error) {
	s.gotBooking = bookingID
	return s.detail, s.err
}

func setupRouter(svc Service) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	controller := NewController(svc)
	SetupBookingRoutes(router.Group(""), controller)
	return router
}

func decodeEnvelope(t *testing.T, body string) response.StandardApiResponse {
	t.Helper()
	var env response.StandardApiResponse
	require.NoError(t, json.Unmarshal([]byte(body), &env))
	return env
}

func TestGetDetailEndpoint_Success(t *testing.T) {
	svc := &stubService{detail: &DetailResponse{BookingID: "b-1"}}
	router := setupRouter(svc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/bookings/b-1", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "b-1", svc.gotBooking)

	env := decodeEnvelope(t, w.Body.String())
	assert.Equal(t, "success", env.Status)
}

func TestGetDetailEndpoint_NotFound(t *testing.T) {
	svc := &stubService{err: ErrBookingNotFound}
	router := setupRouter(svc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/bookings/missing", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	env := decodeEnvelope(t, w.Body.String())
	assert.Equal(t, "error", env.Status)
}

func TestAdjustProductEndpoint(t *testing.T) {
	svc := &stubService{detail: &DetailResponse{BookingID: "b-1"}}
	router := setupRouter(svc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/bookings/b-1/products",
		strings.NewReader(`{"product_id":2,"delta":-1}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 2, svc.gotProduct)
	assert.Equal(t, -1, svc.gotDelta)
}

func TestAdjustProductEndpoint_MissingFields(t *testing.T) {
	router := setupRouter(&stubService{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/bookings/b-1/products",
		strings.NewReader(`{"product_id":2}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestTogglePaymentEndpoint(t *testing.T) {
	svc := &stubService{detail: &DetailResponse{BookingID: "b-1", PaymentStatus: PaymentStatusPaid}}
	router := setupRouter(svc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/bookings/b-1/payment/toggle", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "b-1", svc.gotBooking)
}
