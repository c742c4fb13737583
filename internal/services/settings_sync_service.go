package services

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/moonheart/banana-slides/internal/events"
	"github.com/moonheart/banana-slides/internal/gateway"
	"github.com/moonheart/banana-slides/internal/models"
	"github.com/moonheart/banana-slides/internal/repositories"
)

// SettingsView is the frontend-facing snapshot of synchronizer state:
// the editable draft, what little the mirror reveals about the stored
// credential, the device-local output language, and the current phase.
type SettingsView struct {
	Draft          models.DraftSettings `json:"draft"`
	APIKeyLength   int                  `json:"apiKeyLength"`
	APIKeyStored   bool                 `json:"apiKeyStored"`
	OutputLanguage string               `json:"outputLanguage"`
	State          SyncState            `json:"state"`
}

// SettingsSyncService owns the authoritative mirror of the remote
// configuration record and the editable draft derived from it.
//
// The mirror changes only when a gateway call resolves successfully; the
// draft changes on user edits and is re-derived (credential blanked)
// whenever the mirror is replaced. The output-language preference never
// touches the gateway at all.
type SettingsSyncService interface {
	Startup(ctx context.Context)
	State() SyncState
	View() *SettingsView
	Load() (*SettingsView, error)
	ApplyDraft(input models.DraftInput) *SettingsView
	Save() (*SettingsView, error)
	Reset() (*SettingsView, error)
	SetOutputLanguage(code string) (*SettingsView, error)
	SupportedOutputLanguages() []models.OutputLanguage
}

type settingsSyncService struct {
	context     context.Context
	gateway     gateway.SettingsGateway
	preferences repositories.PreferenceRepository
	confirmer   ResetConfirmer
	machine     *syncStateMachine

	mu             sync.Mutex
	mirror         models.RemoteSettings
	draft          models.DraftSettings
	outputLanguage string
}

func NewSettingsSyncService(gw gateway.SettingsGateway, preferences repositories.PreferenceRepository, confirmer ResetConfirmer) SettingsSyncService {
	mirror := models.DefaultRemoteSettings()
	s := &settingsSyncService{
		gateway:     gw,
		preferences: preferences,
		confirmer:   confirmer,
		mirror:      mirror,
		draft:       models.DeriveDraft(mirror),
	}
	s.machine = newSyncStateMachine(func(state SyncState) {
		events.EmitState(s.ctx(), string(state))
	})
	return s
}

// Startup saves the runtime context and reads the stored language
// preference once. The preference is only written again on explicit user
// action.
func (s *settingsSyncService) Startup(ctx context.Context) {
	s.context = ctx

	code, err := s.preferences.GetOutputLanguage(ctx)
	if err != nil {
		events.Emit(ctx, events.TopicSettingsNotice, events.NewWarn("Failed to read language preference: "+err.Error()))
		return
	}
	s.mu.Lock()
	s.outputLanguage = code
	s.mu.Unlock()
}

func (s *settingsSyncService) ctx() context.Context {
	if s.context != nil {
		return s.context
	}
	return context.Background()
}

func (s *settingsSyncService) State() SyncState {
	return s.machine.Current()
}

func (s *settingsSyncService) View() *SettingsView {
	s.mu.Lock()
	defer s.mu.Unlock()
	return &SettingsView{
		Draft:          s.draft,
		APIKeyLength:   s.mirror.APIKeyLength,
		APIKeyStored:   s.mirror.APIKeyStored(),
		OutputLanguage: s.outputLanguage,
		State:          s.machine.Current(),
	}
}

// replaceMirror installs a confirmed gateway response and re-derives the
// draft from it, discarding in-progress edits and blanking the
// credential.
func (s *settingsSyncService) replaceMirror(remote models.RemoteSettings) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.mirror = remote
	s.draft = models.DeriveDraft(remote)
}

// Load fetches the remote record and rebuilds mirror and draft. On
// failure both keep their prior values.
func (s *settingsSyncService) Load() (*SettingsView, error) {
	if err := s.machine.begin(StateLoading); err != nil {
		return s.View(), err
	}
	defer s.machine.finish()

	remote, err := s.gateway.Fetch(s.ctx())
	if err != nil {
		events.Emit(s.ctx(), events.TopicSettingsNotice, events.NewError("Failed to load settings: "+gatewayMessage(err)))
		return s.View(), fmt.Errorf("load settings: %w", err)
	}

	s.replaceMirror(*remote)
	return s.View(), nil
}

// ApplyDraft replaces the draft with normalized form input. Nothing is
// sent anywhere until Save.
func (s *settingsSyncService) ApplyDraft(input models.DraftInput) *SettingsView {
	draft := input.Normalize()
	s.mu.Lock()
	s.draft = draft
	s.mu.Unlock()
	return s.View()
}

// Save writes the draft to the backend. The payload always carries every
// non-credential field, empty strings included; the credential rides
// along only when the user typed a replacement. On success the mirror is
// replaced and the draft re-derived, so a submitted key is never
// redisplayed. On failure the draft is left exactly as the user had it.
func (s *settingsSyncService) Save() (*SettingsView, error) {
	if err := s.machine.begin(StateSaving); err != nil {
		return s.View(), err
	}
	defer s.machine.finish()

	s.mu.Lock()
	update := models.UpdateFromDraft(s.draft)
	s.mu.Unlock()

	remote, err := s.gateway.Update(s.ctx(), update)
	if err != nil {
		events.Emit(s.ctx(), events.TopicSettingsNotice, events.NewError("Failed to save settings: "+gatewayMessage(err)))
		return s.View(), fmt.Errorf("save settings: %w", err)
	}

	s.replaceMirror(*remote)
	events.Emit(s.ctx(), events.TopicSettingsNotice, events.NewSuccess("Settings saved"))
	return s.View(), nil
}

// Reset asks for confirmation, then has the backend restore environment
// defaults. Declining issues no gateway call and changes nothing.
func (s *settingsSyncService) Reset() (*SettingsView, error) {
	confirmed, err := s.confirmer.ConfirmReset(s.ctx())
	if err != nil {
		return s.View(), fmt.Errorf("confirm reset: %w", err)
	}
	if !confirmed {
		return s.View(), nil
	}

	if err := s.machine.begin(StateResetting); err != nil {
		return s.View(), err
	}
	defer s.machine.finish()

	remote, err := s.gateway.Reset(s.ctx())
	if err != nil {
		events.Emit(s.ctx(), events.TopicSettingsNotice, events.NewError("Failed to reset settings: "+gatewayMessage(err)))
		return s.View(), fmt.Errorf("reset settings: %w", err)
	}

	s.replaceMirror(*remote)
	events.Emit(s.ctx(), events.TopicSettingsNotice, events.NewSuccess("Settings reset to defaults"))
	return s.View(), nil
}

// SetOutputLanguage persists the choice on the device and updates the
// held copy. No remote call, no confirmation.
func (s *settingsSyncService) SetOutputLanguage(code string) (*SettingsView, error) {
	if !models.IsSupportedOutputLanguage(code) {
		return s.View(), fmt.Errorf("unsupported output language %q", code)
	}

	if err := s.preferences.SetOutputLanguage(s.ctx(), code); err != nil {
		events.Emit(s.ctx(), events.TopicSettingsNotice, events.NewError("Failed to store language preference: "+err.Error()))
		return s.View(), fmt.Errorf("store output language: %w", err)
	}

	s.mu.Lock()
	s.outputLanguage = code
	s.mu.Unlock()

	events.Emit(s.ctx(), events.TopicSettingsNotice, events.NewSuccess("Output language set to "+outputLanguageLabel(code)))
	return s.View(), nil
}

func (s *settingsSyncService) SupportedOutputLanguages() []models.OutputLanguage {
	return models.SupportedOutputLanguages()
}

func outputLanguageLabel(code string) string {
	for _, lang := range models.SupportedOutputLanguages() {
		if lang.Code == code {
			return lang.Label
		}
	}
	return code
}

// gatewayMessage prefers the backend's structured error detail and falls
// back to the plain error text.
func gatewayMessage(err error) string {
	var apiErr *gateway.APIError
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message
	}
	return err.Error()
}
