package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jwebster45206/modern-world/pkg/catalog"
)

func TestCatalogHandler(t *testing.T) {
	handler := NewCatalogHandler(testLogger())

	w := httptest.NewRecorder()
	handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/catalog", nil))
	require.Equal(t, http.StatusOK, w.Code)

	var resp CatalogResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	assert.Equal(t, catalog.StartingDate, resp.StartingDate)
	assert.Len(t, resp.Roles, len(catalog.Roles()))
	assert.Len(t, resp.Technologies, len(catalog.Technologies()))
	assert.Len(t, resp.Ministries, len(catalog.DefaultMinistries()))
}

func TestCatalogHandler_MethodNotAllowed(t *testing.T) {
	handler := NewCatalogHandler(testLogger())

	w := httptest.NewRecorder()
	handler.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/v1/catalog", nil))
	assert.Equal(t, http.StatusMethodNotAllowed, w.Code)
}
