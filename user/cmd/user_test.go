package cmd

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/organicstore/storefront/internal/store"
)

func TestAttachUserServiceMountsRoutes(t *testing.T) {
	c, cancel := context.WithCancel(context.Background())
	defer cancel()

	router := mux.NewRouter()
	AttachUserService(c, router, store.NewMemoryKV(), time.Second)

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/users/current", nil))
	assert.Equal(t, http.StatusNotFound, recorder.Code)

	birthDate := time.Now().AddDate(-30, 0, 0).Format(time.DateOnly)
	payload := `{
		"username": "ana",
		"email": "ana@example.com",
		"password": "Secreto123",
		"confirm_password": "Secreto123",
		"phone": "3001234567",
		"birth_date": "` + birthDate + `"
	}`
	recorder = httptest.NewRecorder()
	router.ServeHTTP(
		recorder,
		httptest.NewRequest(http.MethodPost, "/users/register", strings.NewReader(payload)),
	)

	assert.Equal(t, http.StatusCreated, recorder.Code)
	body := map[string]interface{}{}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
	assert.Equal(t, "success", body["status"])

	recorder = httptest.NewRecorder()
	router.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/users/current", nil))
	assert.Equal(t, http.StatusOK, recorder.Code)
}
