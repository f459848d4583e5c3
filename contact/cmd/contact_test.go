package cmd

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/organicstore/storefront/internal/config"
)

func TestAttachContactServiceMountsRoutes(t *testing.T) {
	c := context.Background()
	webhook := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer webhook.Close()

	router := mux.NewRouter()
	AttachContactService(c, router, config.Contact{WebhookURL: webhook.URL})

	recorder := httptest.NewRecorder()
	router.ServeHTTP(
		recorder,
		httptest.NewRequest(http.MethodPost, "/contact", strings.NewReader(`{"name":"Ana"}`)),
	)
	assert.Equal(t, http.StatusBadRequest, recorder.Code)

	payload := `{
		"name": "Ana",
		"email": "ana@example.com",
		"message": "¿Tienen lechuga crespa esta semana?"
	}`
	recorder = httptest.NewRecorder()
	router.ServeHTTP(
		recorder,
		httptest.NewRequest(http.MethodPost, "/contact", strings.NewReader(payload)),
	)

	assert.Equal(t, http.StatusAccepted, recorder.Code)
	body := map[string]interface{}{}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
	assert.Equal(t, "success", body["status"])
}
