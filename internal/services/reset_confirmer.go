package services

import (
	"context"

	"github.com/wailsapp/wails/v2/pkg/runtime"
)

// ResetConfirmer obtains an explicit user decision before a destructive
// reset. Injected so the synchronizer stays testable without a UI.
type ResetConfirmer interface {
	ConfirmReset(ctx context.Context) (bool, error)
}

// DialogResetConfirmer asks through a native blocking dialog.
type DialogResetConfirmer struct{}

func NewDialogResetConfirmer() *DialogResetConfirmer {
	return &DialogResetConfirmer{}
}

func (c *DialogResetConfirmer) ConfirmReset(ctx context.Context) (bool, error) {
	choice, err := runtime.MessageDialog(ctx, runtime.MessageDialogOptions{
		Type:          runtime.QuestionDialog,
		Title:         "Reset settings",
		Message:       "Reset all settings to their environment defaults? Custom values, including any stored API key, will be lost. This cannot be undone.",
		Buttons:       []string{"Reset", "Cancel"},
		DefaultButton: "Cancel",
		CancelButton:  "Cancel",
	})
	if err != nil {
		return false, err
	}
	return choice == "Reset", nil
}
