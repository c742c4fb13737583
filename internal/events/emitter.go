package events

import (
	"context"

	"github.com/wailsapp/wails/v2/pkg/runtime"
)

// Emit publishes a notice to the frontend. It defaults to a no-op so
// services can emit freely before the wails runtime is up and inside unit
// tests.
var Emit = func(ctx context.Context, name string, notice Notice) {}

// EnableRuntimeEmitter routes notices through the wails event bridge and
// the runtime logger. Called once the runtime context exists.
func EnableRuntimeEmitter() {
	Emit = func(ctx context.Context, name string, notice Notice) {
		if notice.Type == NoticeSuccess || notice.Type == NoticeError {
			runtime.EventsEmit(ctx, name, notice)
		}

		logRuntimeNotice(ctx, name, notice)
	}
}

// SetCustomEmitter replaces the emitter, typically with a test recorder.
// Passing nil restores the no-op emitter.
func SetCustomEmitter(f func(ctx context.Context, name string, notice Notice)) {
	if f == nil {
		Emit = func(context.Context, string, Notice) {}
		return
	}
	Emit = f
}

// EmitState publishes a synchronizer busy-state change.
var EmitState = func(ctx context.Context, state string) {}

// EnableRuntimeStateEmitter routes state changes through the wails event
// bridge.
func EnableRuntimeStateEmitter() {
	EmitState = func(ctx context.Context, state string) {
		runtime.EventsEmit(ctx, TopicSettingsState, state)
	}
}
