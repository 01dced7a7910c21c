package utils_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"crm/src/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHTTPErrorConstructors(t *testing.T) {
	tests := []struct {
		err  error
		code int
	}{
		{utils.BadRequest("bad"), http.StatusBadRequest},
		{utils.NotFound("missing"), http.StatusNotFound},
		{utils.Conflict("taken"), http.StatusConflict},
		{utils.UnprocessableEntity("invalid"), http.StatusUnprocessableEntity},
		{utils.InternalServerError("boom"), http.StatusInternalServerError},
		{utils.ServiceUnavailable("down"), http.StatusServiceUnavailable},
	}

	for _, tt := range tests {
		var httpErr *utils.HTTPError
		require.True(t, errors.As(tt.err, &httpErr))
		assert.Equal(t, tt.code, httpErr.Code)
		assert.Equal(t, httpErr.Message, tt.err.Error())
	}
}

func TestWriteError(t *testing.T) {
	rec := httptest.NewRecorder()
	utils.WriteError(rec, utils.NotFound("account 7 not found"))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "account 7 not found", body["error"])
}

func TestWriteErrorHidesUnknownErrors(t *testing.T) {
	rec := httptest.NewRecorder()
	utils.WriteError(rec, errors.New("pq: password authentication failed"))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "Internal Server Error", body["error"])
}
