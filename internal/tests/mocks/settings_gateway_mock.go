package mocks

import (
	"context"

	"github.com/moonheart/banana-slides/internal/models"
)

type SettingsGatewayMock struct {
	FetchFunc  func(ctx context.Context) (*models.RemoteSettings, error)
	UpdateFunc func(ctx context.Context, update models.SettingsUpdate) (*models.RemoteSettings, error)
	ResetFunc  func(ctx context.Context) (*models.RemoteSettings, error)
}

func (m *SettingsGatewayMock) Fetch(ctx context.Context) (*models.RemoteSettings, error) {
	if m.FetchFunc != nil {
		return m.FetchFunc(ctx)
	}
	settings := models.DefaultRemoteSettings()
	return &settings, nil
}

func (m *SettingsGatewayMock) Update(ctx context.Context, update models.SettingsUpdate) (*models.RemoteSettings, error) {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, update)
	}
	settings := models.DefaultRemoteSettings()
	return &settings, nil
}

func (m *SettingsGatewayMock) Reset(ctx context.Context) (*models.RemoteSettings, error) {
	if m.ResetFunc != nil {
		return m.ResetFunc(ctx)
	}
	settings := models.DefaultRemoteSettings()
	return &settings, nil
}
