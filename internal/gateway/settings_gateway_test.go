package gateway

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/moonheart/banana-slides/internal/models"
)

func TestHTTPSettingsGateway_Fetch_FillsAbsentFieldsWithDefaults(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/settings/", r.URL.Path)
		assert.NotEmpty(t, r.Header.Get("X-Request-ID"))

		w.Header().Set("Content-Type", "application/json")
		io.WriteString(w, `{"success":true,"data":{"ai_provider_format":"openai","api_base_url":"https://x","max_description_workers":3}}`)
	}))
	defer server.Close()

	gw := NewHTTPSettingsGateway(server.URL)
	settings, err := gw.Fetch(t.Context())
	assert.NoError(t, err)
	assert.Equal(t, models.ProviderOpenAI, settings.ProviderFormat)
	assert.Equal(t, "https://x", settings.APIBaseURL)
	assert.Equal(t, 0, settings.APIKeyLength)
	assert.Equal(t, models.Resolution2K, settings.ImageResolution)
	assert.Equal(t, "16:9", settings.ImageAspectRatio)
	assert.Equal(t, 3, settings.MaxDescriptionWorkers)
	assert.Equal(t, 8, settings.MaxImageWorkers)
}

func TestHTTPSettingsGateway_Update_OmitsAbsentCredential(t *testing.T) {
	var body map[string]any
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/api/settings/", r.URL.Path)
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))

		io.WriteString(w, `{"success":true,"data":{},"message":"Settings updated successfully"}`)
	}))
	defer server.Close()

	gw := NewHTTPSettingsGateway(server.URL)
	_, err := gw.Update(t.Context(), models.SettingsUpdate{
		ProviderFormat:        models.ProviderGemini,
		APIBaseURL:            "",
		ImageResolution:       models.Resolution2K,
		ImageAspectRatio:      "16:9",
		MaxDescriptionWorkers: 5,
		MaxImageWorkers:       8,
	})
	assert.NoError(t, err)

	_, hasKey := body["api_key"]
	assert.False(t, hasKey, "blank credential must not appear in the payload at all")

	// Empty base URL is an explicit clear signal and must still be sent.
	baseURL, hasBaseURL := body["api_base_url"]
	assert.True(t, hasBaseURL)
	assert.Equal(t, "", baseURL)
}

func TestHTTPSettingsGateway_Update_SendsTypedCredentialVerbatim(t *testing.T) {
	var body map[string]any
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		io.WriteString(w, `{"success":true,"data":{"api_key_length":6}}`)
	}))
	defer server.Close()

	key := "sk-123"
	gw := NewHTTPSettingsGateway(server.URL)
	settings, err := gw.Update(t.Context(), models.SettingsUpdate{
		ProviderFormat:        models.ProviderOpenAI,
		ImageResolution:       models.Resolution2K,
		ImageAspectRatio:      "16:9",
		MaxDescriptionWorkers: 5,
		MaxImageWorkers:       8,
		APIKey:                &key,
	})
	assert.NoError(t, err)
	assert.Equal(t, "sk-123", body["api_key"])
	assert.Equal(t, 6, settings.APIKeyLength)
}

func TestHTTPSettingsGateway_SurfacesStructuredErrors(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		io.WriteString(w, `{"success":false,"error":{"code":"UPDATE_SETTINGS_ERROR","message":"Max image workers must be between 1 and 20"}}`)
	}))
	defer server.Close()

	gw := NewHTTPSettingsGateway(server.URL)
	_, err := gw.Update(t.Context(), models.SettingsUpdate{})
	assert.Error(t, err)

	var apiErr *APIError
	assert.True(t, errors.As(err, &apiErr))
	assert.Equal(t, "UPDATE_SETTINGS_ERROR", apiErr.Code)
	assert.Equal(t, "Max image workers must be between 1 and 20", apiErr.Message)
}

func TestHTTPSettingsGateway_ErrorWithoutDetailFallsBackToStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		io.WriteString(w, `{"success":false}`)
	}))
	defer server.Close()

	gw := NewHTTPSettingsGateway(server.URL)
	_, err := gw.Fetch(t.Context())
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "500")
}

func TestHTTPSettingsGateway_Reset_PostsToResetEndpoint(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/settings/reset", r.URL.Path)
		io.WriteString(w, `{"success":true,"data":{"ai_provider_format":"gemini"},"message":"Settings reset to defaults"}`)
	}))
	defer server.Close()

	gw := NewHTTPSettingsGateway(server.URL)
	settings, err := gw.Reset(t.Context())
	assert.NoError(t, err)
	assert.Equal(t, models.ProviderGemini, settings.ProviderFormat)
	assert.Equal(t, models.DefaultDescriptionWorkers, settings.MaxDescriptionWorkers)
}
