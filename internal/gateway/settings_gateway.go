package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/moonheart/banana-slides/internal/models"
)

// SettingsGateway is the request/response contract against the backend's
// settings record.
type SettingsGateway interface {
	// Fetch reads the current configuration.
	Fetch(ctx context.Context) (*models.RemoteSettings, error)
	// Update writes the given payload and returns the stored record.
	Update(ctx context.Context, update models.SettingsUpdate) (*models.RemoteSettings, error)
	// Reset restores environment defaults server-side. For the openai
	// provider format the backend re-derives base URL and key from its
	// OPENAI_* environment, otherwise from GOOGLE_*.
	Reset(ctx context.Context) (*models.RemoteSettings, error)
}

// HTTPSettingsGateway talks to the backend's /api/settings endpoints.
type HTTPSettingsGateway struct {
	baseURL string
	client  *http.Client
}

func NewHTTPSettingsGateway(baseURL string) *HTTPSettingsGateway {
	return &HTTPSettingsGateway{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{},
	}
}

func (g *HTTPSettingsGateway) Fetch(ctx context.Context) (*models.RemoteSettings, error) {
	return g.roundTrip(ctx, http.MethodGet, "/api/settings/", nil)
}

func (g *HTTPSettingsGateway) Update(ctx context.Context, update models.SettingsUpdate) (*models.RemoteSettings, error) {
	body, err := json.Marshal(update)
	if err != nil {
		return nil, fmt.Errorf("encode settings update: %w", err)
	}
	return g.roundTrip(ctx, http.MethodPut, "/api/settings/", body)
}

func (g *HTTPSettingsGateway) Reset(ctx context.Context) (*models.RemoteSettings, error) {
	return g.roundTrip(ctx, http.MethodPost, "/api/settings/reset", nil)
}

// envelope is the backend's uniform response wrapper.
type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Message string          `json:"message"`
	Error   *APIError       `json:"error"`
}

// settingsPayload uses pointers so fields the backend omits can be told
// apart from zero values and filled with documented defaults.
type settingsPayload struct {
	ProviderFormat        *string `json:"ai_provider_format"`
	APIBaseURL            *string `json:"api_base_url"`
	APIKeyLength          *int    `json:"api_key_length"`
	ImageResolution       *string `json:"image_resolution"`
	ImageAspectRatio      *string `json:"image_aspect_ratio"`
	MaxDescriptionWorkers *int    `json:"max_description_workers"`
	MaxImageWorkers       *int    `json:"max_image_workers"`
}

func (p settingsPayload) toModel() models.RemoteSettings {
	settings := models.DefaultRemoteSettings()
	if p.ProviderFormat != nil {
		settings.ProviderFormat = models.ProviderFormat(*p.ProviderFormat)
	}
	if p.APIBaseURL != nil {
		settings.APIBaseURL = *p.APIBaseURL
	}
	if p.APIKeyLength != nil {
		settings.APIKeyLength = *p.APIKeyLength
	}
	if p.ImageResolution != nil {
		settings.ImageResolution = models.ImageResolution(*p.ImageResolution)
	}
	if p.ImageAspectRatio != nil {
		settings.ImageAspectRatio = *p.ImageAspectRatio
	}
	if p.MaxDescriptionWorkers != nil {
		settings.MaxDescriptionWorkers = *p.MaxDescriptionWorkers
	}
	if p.MaxImageWorkers != nil {
		settings.MaxImageWorkers = *p.MaxImageWorkers
	}
	return settings
}

func (g *HTTPSettingsGateway) roundTrip(ctx context.Context, method, path string, body []byte) (*models.RemoteSettings, error) {
	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}

	req, err := http.NewRequestWithContext(ctx, method, g.baseURL+path, reader)
	if err != nil {
		return nil, fmt.Errorf("build settings request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", uuid.NewString())
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := g.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("settings request failed: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read settings response: %w", err)
	}

	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return nil, fmt.Errorf("decode settings response (status %d): %w", resp.StatusCode, err)
	}

	if resp.StatusCode >= http.StatusBadRequest || !env.Success {
		if env.Error != nil && env.Error.Message != "" {
			return nil, env.Error
		}
		return nil, fmt.Errorf("settings request rejected with status %d", resp.StatusCode)
	}

	var payload settingsPayload
	if err := json.Unmarshal(env.Data, &payload); err != nil {
		return nil, fmt.Errorf("decode settings record: %w", err)
	}

	settings := payload.toModel()
	return &settings, nil
}
