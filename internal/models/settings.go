package models

import (
	"strconv"
	"strings"
)

// ProviderFormat selects how the backend shapes generation requests.
type ProviderFormat string

// ImageResolution is the output resolution class for generated images.
type ImageResolution string

const (
	ProviderOpenAI ProviderFormat = "openai"
	ProviderGemini ProviderFormat = "gemini"

	Resolution1K ImageResolution = "1K"
	Resolution2K ImageResolution = "2K"
	Resolution4K ImageResolution = "4K"
)

// Defaults applied whenever the backend omits a field from a settings
// response. The same values back the numeric-input fallback rule.
const (
	DefaultImageAspectRatio   = "16:9"
	DefaultDescriptionWorkers = 5
	DefaultImageWorkers       = 8
	MinWorkers                = 1
	MaxWorkers                = 20
)

const (
	DefaultProviderFormat  = ProviderGemini
	DefaultImageResolution = Resolution2K
)

// RemoteSettings is the authoritative mirror of the server-held
// configuration record. It is replaced wholesale by confirmed gateway
// responses and never mutated locally in between.
//
// The raw credential is never part of this record; the backend only
// reports the length of whatever key it currently stores.
type RemoteSettings struct {
	ProviderFormat        ProviderFormat  `json:"aiProviderFormat"`
	APIBaseURL            string          `json:"apiBaseUrl"`
	APIKeyLength          int             `json:"apiKeyLength"`
	ImageResolution       ImageResolution `json:"imageResolution"`
	ImageAspectRatio      string          `json:"imageAspectRatio"`
	MaxDescriptionWorkers int             `json:"maxDescriptionWorkers"`
	MaxImageWorkers       int             `json:"maxImageWorkers"`
}

// DefaultRemoteSettings returns a record with every documented default,
// used as the pre-load mirror and as the base for absent response fields.
func DefaultRemoteSettings() RemoteSettings {
	return RemoteSettings{
		ProviderFormat:        DefaultProviderFormat,
		ImageResolution:       DefaultImageResolution,
		ImageAspectRatio:      DefaultImageAspectRatio,
		MaxDescriptionWorkers: DefaultDescriptionWorkers,
		MaxImageWorkers:       DefaultImageWorkers,
	}
}

// APIKeyStored reports whether the backend currently holds a credential.
func (r RemoteSettings) APIKeyStored() bool {
	return r.APIKeyLength > 0
}

// DraftSettings is the user-editable working copy. APIKey carries
// write-only intent: empty means "leave the stored credential alone",
// non-empty means "replace it with this value". A previously stored key
// is never present here.
type DraftSettings struct {
	ProviderFormat        ProviderFormat  `json:"aiProviderFormat"`
	APIBaseURL            string          `json:"apiBaseUrl"`
	APIKey                string          `json:"apiKey"`
	ImageResolution       ImageResolution `json:"imageResolution"`
	ImageAspectRatio      string          `json:"imageAspectRatio"`
	MaxDescriptionWorkers int             `json:"maxDescriptionWorkers"`
	MaxImageWorkers       int             `json:"maxImageWorkers"`
}

// DeriveDraft builds a fresh draft from the mirror. Every field is copied
// verbatim except the credential, which always starts out blank.
func DeriveDraft(remote RemoteSettings) DraftSettings {
	return DraftSettings{
		ProviderFormat:        remote.ProviderFormat,
		APIBaseURL:            remote.APIBaseURL,
		APIKey:                "",
		ImageResolution:       remote.ImageResolution,
		ImageAspectRatio:      remote.ImageAspectRatio,
		MaxDescriptionWorkers: remote.MaxDescriptionWorkers,
		MaxImageWorkers:       remote.MaxImageWorkers,
	}
}

// DraftInput is the raw form state as submitted by the frontend. Worker
// counts arrive as free-form input strings and are coerced on apply.
type DraftInput struct {
	ProviderFormat        string `json:"aiProviderFormat"`
	APIBaseURL            string `json:"apiBaseUrl"`
	APIKey                string `json:"apiKey"`
	ImageResolution       string `json:"imageResolution"`
	ImageAspectRatio      string `json:"imageAspectRatio"`
	MaxDescriptionWorkers string `json:"maxDescriptionWorkers"`
	MaxImageWorkers       string `json:"maxImageWorkers"`
}

// Normalize converts form input into a draft. Unparseable or empty worker
// counts fall back to the documented default rather than propagating a
// non-numeric value; parsed values are clamped to the supported range.
// All other fields pass through verbatim, server-side validation owns the
// rest.
func (in DraftInput) Normalize() DraftSettings {
	return DraftSettings{
		ProviderFormat:        ProviderFormat(in.ProviderFormat),
		APIBaseURL:            in.APIBaseURL,
		APIKey:                in.APIKey,
		ImageResolution:       ImageResolution(in.ImageResolution),
		ImageAspectRatio:      in.ImageAspectRatio,
		MaxDescriptionWorkers: CoerceWorkerCount(in.MaxDescriptionWorkers, DefaultDescriptionWorkers),
		MaxImageWorkers:       CoerceWorkerCount(in.MaxImageWorkers, DefaultImageWorkers),
	}
}

// CoerceWorkerCount parses a worker-count input field. Anything that is
// not a number yields fallback; numbers are clamped to [MinWorkers,
// MaxWorkers].
func CoerceWorkerCount(raw string, fallback int) int {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return fallback
	}
	if n < MinWorkers {
		return MinWorkers
	}
	if n > MaxWorkers {
		return MaxWorkers
	}
	return n
}

// SettingsUpdate is the body of a settings write. Every non-credential
// field is always sent, empty strings included: the backend treats an
// explicit empty value as "clear the override". APIKey is a true
// optional — nil marshals to no key at all, which the backend reads as
// "preserve the stored credential".
type SettingsUpdate struct {
	ProviderFormat        ProviderFormat  `json:"ai_provider_format"`
	APIBaseURL            string          `json:"api_base_url"`
	ImageResolution       ImageResolution `json:"image_resolution"`
	ImageAspectRatio      string          `json:"image_aspect_ratio"`
	MaxDescriptionWorkers int             `json:"max_description_workers"`
	MaxImageWorkers       int             `json:"max_image_workers"`
	APIKey                *string         `json:"api_key,omitempty"`
}

// UpdateFromDraft constructs the write payload for a draft. The
// credential is attached only when the user actually typed a replacement.
func UpdateFromDraft(draft DraftSettings) SettingsUpdate {
	update := SettingsUpdate{
		ProviderFormat:        draft.ProviderFormat,
		APIBaseURL:            draft.APIBaseURL,
		ImageResolution:       draft.ImageResolution,
		ImageAspectRatio:      draft.ImageAspectRatio,
		MaxDescriptionWorkers: draft.MaxDescriptionWorkers,
		MaxImageWorkers:       draft.MaxImageWorkers,
	}
	if draft.APIKey != "" {
		key := draft.APIKey
		update.APIKey = &key
	}
	return update
}
