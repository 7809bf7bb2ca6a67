package get_venue

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"

	"github.com/m04kA/SMC-VenueBookingService/internal/service/venues"
	"github.com/m04kA/SMC-VenueBookingService/internal/service/venues/models"
)

type fakeService struct {
	err error
}

func (f *fakeService) GetVenue(_ context.Context, id int64) (*models.VenueResponse, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &models.VenueResponse{ID: id, Name: "Main Hall", Pricing: []models.PricingRuleResponse{}}, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func serve(svc *fakeService, id string) *httptest.ResponseRecorder {
	r := mux.NewRouter()
	r.HandleFunc("/venues/{venueId}", NewHandler(svc, nopLogger{}).Handle)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/venues/"+id, nil))
	return rec
}

func TestHandle(t *testing.T) {
	rec := serve(&fakeService{}, "3")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"name":"Main Hall"`)

	assert.Equal(t, http.StatusBadRequest, serve(&fakeService{}, "x").Code)
	assert.Equal(t, http.StatusNotFound, serve(&fakeService{err: venues.ErrVenueNotFound}, "3").Code)
	assert.Equal(t, http.StatusInternalServerError, serve(&fakeService{err: venues.ErrInternal}, "3").Code)
}
