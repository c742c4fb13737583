package repositories

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/moonheart/banana-slides/internal/models"
)

// PreferenceRepository persists device-local choices. Nothing in here is
// ever sent to the backend.
type PreferenceRepository interface {
	// GetOutputLanguage returns the stored code, or "" when the user
	// never made an explicit choice.
	GetOutputLanguage(ctx context.Context) (string, error)
	SetOutputLanguage(ctx context.Context, code string) error
}

type preferenceRepository struct {
	db *gorm.DB
}

func NewPreferenceRepository(db *gorm.DB) PreferenceRepository {
	return &preferenceRepository{db: db}
}

func (r *preferenceRepository) GetOutputLanguage(ctx context.Context) (string, error) {
	var pref models.Preference
	if err := r.db.WithContext(ctx).First(&pref, 1).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", nil
		}
		return "", err
	}
	return pref.OutputLanguage, nil
}

func (r *preferenceRepository) SetOutputLanguage(ctx context.Context, code string) error {
	pref := models.Preference{
		ID:             1, // single-row table
		OutputLanguage: code,
		UpdatedAt:      time.Now(),
	}
	return r.db.WithContext(ctx).Save(&pref).Error
}
