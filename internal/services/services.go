package services

import (
	"gorm.io/gorm"

	"github.com/moonheart/banana-slides/internal/gateway"
	"github.com/moonheart/banana-slides/internal/repositories"
)

// Services aggregates the backend services bound to the frontend.
type Services struct {
	Settings SettingsSyncService
}

// NewServices wires repositories backed by db with the remote gateway.
func NewServices(db *gorm.DB, gw gateway.SettingsGateway) *Services {
	preferences := repositories.NewPreferenceRepository(db)

	return &Services{
		Settings: NewSettingsSyncService(gw, preferences, NewDialogResetConfirmer()),
	}
}
