package events

import (
	"time"

	"github.com/google/uuid"
)

type NoticeType string

const (
	NoticeInfo    NoticeType = "info"
	NoticeWarn    NoticeType = "warn"
	NoticeSuccess NoticeType = "success"
	NoticeError   NoticeType = "error"
)

// Topics the frontend subscribes to.
const (
	// TopicSettingsNotice carries transient toast payloads.
	TopicSettingsNotice = "events:settings:notice"
	// TopicSettingsState announces synchronizer busy-state changes so the
	// UI can drive per-action indicators without polling.
	TopicSettingsState = "events:settings:state"
)

// Notice is a transient user-facing message emitted by backend services.
type Notice struct {
	ID        string            `json:"id"`
	Type      NoticeType        `json:"type"`
	Message   string            `json:"message"`
	Timestamp time.Time         `json:"timestamp"`
	Metadata  map[string]string `json:"metadata,omitempty"`
}

func newNotice(noticeType NoticeType, message string) Notice {
	return Notice{
		ID:        uuid.NewString(),
		Type:      noticeType,
		Message:   message,
		Timestamp: time.Now(),
	}
}

// NewInfo creates an info Notice.
func NewInfo(message string) Notice {
	return newNotice(NoticeInfo, message)
}

// NewWarn creates a warn Notice.
func NewWarn(message string) Notice {
	return newNotice(NoticeWarn, message)
}

// NewError creates an error Notice.
func NewError(message string) Notice {
	return newNotice(NoticeError, message)
}

// NewSuccess creates a success Notice.
func NewSuccess(message string) Notice {
	return newNotice(NoticeSuccess, message)
}
