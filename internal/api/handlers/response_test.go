package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRespondError(t *testing.T) {
	rec := httptest.NewRecorder()
	RespondNotFound(rec, "площадка не найдена")

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var body ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, 404, body.Code)
	assert.Equal(t, "площадка не найдена", body.Message)
}

func TestRespondConflict_NilIDs(t *testing.T) {
	rec := httptest.NewRecorder()
	RespondConflict(rec, "конфликт", nil)

	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.JSONEq(t, `{"code":409,"message":"конфликт","conflictingBookingIds":[]}`, rec.Body.String())
}

func TestRespondJSON_NilBody(t *testing.T) {
	rec := httptest.NewRecorder()
	RespondJSON(rec, http.StatusOK, nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, rec.Body.String())
}

func TestDecodeJSON(t *testing.T) {
	var dst struct {
		Name string `json:"name"`
	}

	r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"name":"hall"}`))
	require.NoError(t, DecodeJSON(r, &dst))
	assert.Equal(t, "hall", dst.Name)

	r = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"unknown":1}`))
	assert.Error(t, DecodeJSON(r, &dst))
}
