package models

import "time"

// LanguageAuto is the sentinel choice meaning "follow the service-side
// default instead of forcing a language".
const LanguageAuto = "auto"

// Preference holds device-local choices that never travel to the backend.
type Preference struct {
	ID             uint   `gorm:"primaryKey"` // single-row table (ID=1)
	OutputLanguage string `gorm:"size:16;not null;default:''"`
	UpdatedAt      time.Time
}

// OutputLanguage pairs a language code with its display label.
type OutputLanguage struct {
	Code  string `json:"code"`
	Label string `json:"label"`
}

// SupportedOutputLanguages lists the choices offered by the language
// selector, auto sentinel first.
func SupportedOutputLanguages() []OutputLanguage {
	return []OutputLanguage{
		{Code: LanguageAuto, Label: "Auto"},
		{Code: "zh", Label: "中文"},
		{Code: "en", Label: "English"},
		{Code: "ja", Label: "日本語"},
		{Code: "ko", Label: "한국어"},
		{Code: "fr", Label: "Français"},
		{Code: "de", Label: "Deutsch"},
		{Code: "es", Label: "Español"},
	}
}

// IsSupportedOutputLanguage reports whether code is an offered choice.
func IsSupportedOutputLanguage(code string) bool {
	for _, lang := range SupportedOutputLanguages() {
		if lang.Code == code {
			return true
		}
	}
	return false
}
