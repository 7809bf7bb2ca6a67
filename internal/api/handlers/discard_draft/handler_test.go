package discard_draft

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"

	"github.com/m04kA/SMC-VenueBookingService/internal/api/middleware"
	"github.com/m04kA/SMC-VenueBookingService/internal/service/drafts"
)

type fakeService struct {
	err error
}

func (f *fakeService) Discard(context.Context, int64, int64) error { return f.err }

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func serve(svc *fakeService) *httptest.ResponseRecorder {
	r := mux.NewRouter()
	r.Use(middleware.Auth)
	r.HandleFunc("/drafts/{draftId}", NewHandler(svc, nopLogger{}).Handle)

	req := httptest.NewRequest(http.MethodDelete, "/drafts/10", nil)
	req.Header.Set(middleware.HeaderUserID, "42")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestHandle(t *testing.T) {
	assert.Equal(t, http.StatusNoContent, serve(&fakeService{}).Code)
	assert.Equal(t, http.StatusForbidden, serve(&fakeService{err: drafts.ErrAccessDenied}).Code)
	assert.Equal(t, http.StatusUnprocessableEntity, serve(&fakeService{err: drafts.ErrNotDraft}).Code)
	assert.Equal(t, http.StatusInternalServerError, serve(&fakeService{err: drafts.ErrInternal}).Code)
}
