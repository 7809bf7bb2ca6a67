package create_booking

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-VenueBookingService/internal/api/middleware"
	createBooking "github.com/m04kA/SMC-VenueBookingService/internal/usecase/create_booking"
)

type fakeUseCase struct {
	got  *createBooking.Request
	resp *createBooking.Response
	err  error
}

func (f *fakeUseCase) Execute(_ context.Context, req *createBooking.Request) (*createBooking.Response, error) {
	f.got = req
	return f.resp, f.err
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

const validBody = `{"venueId":1,"date":"2026-06-10","startTime":"14:00","endTime":"16:00","setupTime":1,"breakdownTime":0.5}`

func serve(uc *fakeUseCase, body string) *httptest.ResponseRecorder {
	h := middleware.Auth(http.HandlerFunc(NewHandler(uc, nopLogger{}).Handle))
	req := httptest.NewRequest(http.MethodPost, "/api/v1/bookings", strings.NewReader(body))
	req.Header.Set(middleware.HeaderUserID, "42")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestHandle_Created(t *testing.T) {
	uc := &fakeUseCase{resp: &createBooking.Response{
		ID:               100,
		VenueID:          1,
		UserID:           42,
		Date:             time.Date(2026, 6, 10, 0, 0, 0, 0, time.UTC),
		SetupMinutes:     60,
		BreakdownMinutes: 30,
		Status:           "pending",
	}}

	rec := serve(uc, validBody)
	require.Equal(t, http.StatusCreated, rec.Code)

	require.NotNil(t, uc.got)
	assert.Equal(t, int64(42), uc.got.UserID)
	assert.Equal(t, 60, uc.got.SetupMinutes)
	assert.Equal(t, 30, uc.got.BreakdownMinutes)
	assert.Equal(t, "14:00", uc.got.StartTime.String())

	var body BookingResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, int64(100), body.ID)
	assert.Equal(t, "2026-06-10", body.Date)
	assert.Equal(t, 1.0, body.SetupTime)
	assert.Equal(t, 0.5, body.BreakdownTime)
}

func TestHandle_Conflict(t *testing.T) {
	uc := &fakeUseCase{err: &createBooking.ConflictError{BookingIDs: []int64{3, 5}}}

	rec := serve(uc, validBody)
	assert.Equal(t, http.StatusConflict, rec.Code)

	var body struct {
		ConflictingBookingIDs []int64 `json:"conflictingBookingIds"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, []int64{3, 5}, body.ConflictingBookingIDs)
}

func TestHandle_Errors(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		err        error
		wantStatus int
	}{
		{name: "bad json", body: `{`, wantStatus: http.StatusBadRequest},
		{name: "bad date", body: strings.Replace(validBody, "2026-06-10", "10.06.2026", 1), wantStatus: http.StatusBadRequest},
		{name: "bad time", body: strings.Replace(validBody, `"14:00"`, `"2pm"`, 1), wantStatus: http.StatusBadRequest},
		{name: "venue not found", body: validBody, err: createBooking.ErrVenueNotFound, wantStatus: http.StatusNotFound},
		{name: "invalid input", body: validBody, err: fmt.Errorf("%w: end before start", createBooking.ErrInvalidInput), wantStatus: http.StatusBadRequest},
		{name: "outside hours", body: validBody, err: createBooking.ErrOutsideOperatingHours, wantStatus: http.StatusBadRequest},
		{name: "too far", body: validBody, err: createBooking.ErrDateTooFarInFuture, wantStatus: http.StatusBadRequest},
		{name: "internal", body: validBody, err: createBooking.ErrInternal, wantStatus: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := serve(&fakeUseCase{err: tt.err}, tt.body)
			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestToUseCaseRequest_NegativeBuffersKeepSign(t *testing.T) {
	req := &CreateBookingRequest{VenueID: 1, Date: "2026-06-10", StartTime: "14:00", EndTime: "16:00", SetupTime: -1, BreakdownTime: -0.5}

	got, err := req.ToUseCaseRequest(42)
	require.NoError(t, err)
	assert.Equal(t, -60, got.SetupMinutes)
	assert.Equal(t, -30, got.BreakdownMinutes)
}

func TestToUseCaseRequest_SignedTimeRejected(t *testing.T) {
	req := &CreateBookingRequest{VenueID: 1, Date: "2026-06-10", StartTime: "+9:30", EndTime: "16:00"}

	_, err := req.ToUseCaseRequest(42)
	assert.ErrorIs(t, err, errInvalidTime)
}
