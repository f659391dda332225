package httpx

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJSON(t *testing.T) {
	w := httptest.NewRecorder()
	JSON(w, http.StatusOK, []string{"a", "b"})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
	assert.JSONEq(t, `["a", "b"]`, w.Body.String())
}

func TestJSONError_Envelope(t *testing.T) {
	w := httptest.NewRecorder()
	JSONError(w, http.StatusBadRequest, "title is required", "")

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var raw map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &raw))
	assert.Equal(t, float64(http.StatusBadRequest), raw["statusCode"])
	assert.Equal(t, "title is required", raw["message"])

	// empty details are omitted from the payload
	_, ok := raw["details"]
	assert.False(t, ok)
}

func TestJSONError_Details(t *testing.T) {
	w := httptest.NewRecorder()
	JSONError(w, http.StatusInternalServerError, "oops", "trace goes here")

	var envelope ErrorBody
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
	assert.Equal(t, "trace goes here", envelope.Details)
}
