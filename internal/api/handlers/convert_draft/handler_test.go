package convert_draft

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-VenueBookingService/internal/api/middleware"
	"github.com/m04kA/SMC-VenueBookingService/internal/service/drafts"
	"github.com/m04kA/SMC-VenueBookingService/internal/service/drafts/models"
)

type fakeService struct {
	gotDraft, gotUser int64
	resp              *models.ConvertResponse
	err               error
}

func (f *fakeService) Convert(_ context.Context, draftID, userID int64) (*models.ConvertResponse, error) {
	f.gotDraft, f.gotUser = draftID, userID
	return f.resp, f.err
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func serve(svc *fakeService, draft string) *httptest.ResponseRecorder {
	r := mux.NewRouter()
	r.Use(middleware.Auth)
	r.HandleFunc("/drafts/{draftId}/convert", NewHandler(svc, nopLogger{}).Handle)

	req := httptest.NewRequest(http.MethodPost, "/drafts/"+draft+"/convert", nil)
	req.Header.Set(middleware.HeaderUserID, "42")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestHandle_ConvertedWithWarning(t *testing.T) {
	svc := &fakeService{resp: &models.ConvertResponse{
		Booking: models.DraftResponse{ID: 101, Status: "confirmed"},
		Warnings: []models.Warning{
			{Code: models.WarningDraftCleanupFailed, Message: "draft cleanup failed"},
		},
	}}

	rec := serve(svc, "10")
	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, int64(10), svc.gotDraft)
	assert.Equal(t, int64(42), svc.gotUser)

	var body models.ConvertResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, int64(101), body.Booking.ID)
	require.Len(t, body.Warnings, 1)
	assert.Equal(t, "DraftCleanupFailed", body.Warnings[0].Code)
}

func TestHandle_Errors(t *testing.T) {
	tests := []struct {
		name       string
		draft      string
		err        error
		wantStatus int
	}{
		{name: "bad id", draft: "abc", wantStatus: http.StatusBadRequest},
		{name: "conflict", draft: "10", err: &drafts.ConflictError{BookingIDs: []int64{4}}, wantStatus: http.StatusConflict},
		{name: "already converted", draft: "10", err: drafts.ErrAlreadyConverted, wantStatus: http.StatusConflict},
		{name: "not found", draft: "10", err: drafts.ErrDraftNotFound, wantStatus: http.StatusNotFound},
		{name: "foreign draft", draft: "10", err: drafts.ErrAccessDenied, wantStatus: http.StatusForbidden},
		{name: "not a draft", draft: "10", err: drafts.ErrNotDraft, wantStatus: http.StatusUnprocessableEntity},
		{name: "internal", draft: "10", err: drafts.ErrInternal, wantStatus: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := serve(&fakeService{err: tt.err}, tt.draft)
			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}
