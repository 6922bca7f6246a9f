package utils

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResponseUnprocessableEntity(t *testing.T) {
	rec := httptest.NewRecorder()

	ResponseUnprocessableEntity(rec, "adult ticket must be purchased", map[string]string{"reason": "NO_ADULT"})

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var body Response
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	assert.False(t, body.Status)
	assert.Equal(t, "adult ticket must be purchased", body.Message)
	assert.Equal(t, map[string]any{"reason": "NO_ADULT"}, body.Errors)
}
