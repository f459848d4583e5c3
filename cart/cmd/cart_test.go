package cmd

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/organicstore/storefront/internal/store"
)

func TestAttachCartServiceMountsRoutes(t *testing.T) {
	c := context.Background()
	router := mux.NewRouter()
	AttachCartService(c, router, store.NewMemoryKV(), "573225054512")

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/carts", nil))

	assert.Equal(t, http.StatusOK, recorder.Code)
	body := map[string]interface{}{}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
	assert.Equal(t, "success", body["status"])
}
