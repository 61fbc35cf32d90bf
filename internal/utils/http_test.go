package utils

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/go-auth-service/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteJSON_Success(t *testing.T) {
	rec := httptest.NewRecorder()

	n, err := WriteJSON(rec, map[string]string{"status": "ok"}, http.StatusCreated)
	require.NoError(t, err)
	assert.Positive(t, n)

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

func TestWriteJSON_MarshalError(t *testing.T) {
	rec := httptest.NewRecorder()

	// channels are not JSON-serializable
	_, err := WriteJSON(rec, make(chan int), http.StatusOK)
	require.Error(t, err)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

// TestWriteJSON_UserOmitsPasswordHash verifies the central serialization
// invariant: a user written to a response never carries its password hash.
func TestWriteJSON_UserOmitsPasswordHash(t *testing.T) {
	rec := httptest.NewRecorder()

	user := models.User{
		UserID:       7,
		Email:        "a@x.com",
		PasswordHash: "$2a$10$secret-hash",
	}

	_, err := WriteJSON(rec, user, http.StatusOK)
	require.NoError(t, err)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &entry))
	assert.NotContains(t, entry, "password_hash")
	assert.NotContains(t, rec.Body.String(), "secret-hash")
}
