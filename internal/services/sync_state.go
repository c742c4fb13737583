package services

import (
	"errors"
	"sync"
)

// SyncState is the synchronizer's current phase. Exactly one remote
// operation can be in flight at a time.
type SyncState string

const (
	StateIdle      SyncState = "idle"
	StateLoading   SyncState = "loading"
	StateSaving    SyncState = "saving"
	StateResetting SyncState = "resetting"
)

// ErrSyncBusy rejects an operation started while another one has not
// resolved yet.
var ErrSyncBusy = errors.New("another settings operation is in flight")

// syncStateMachine guards transitions between Idle and the three busy
// states. onChange fires outside the lock on every transition.
type syncStateMachine struct {
	mu       sync.Mutex
	state    SyncState
	onChange func(SyncState)
}

func newSyncStateMachine(onChange func(SyncState)) *syncStateMachine {
	return &syncStateMachine{state: StateIdle, onChange: onChange}
}

func (m *syncStateMachine) Current() SyncState {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state
}

// begin moves Idle to next and rejects everything else with ErrSyncBusy.
func (m *syncStateMachine) begin(next SyncState) error {
	m.mu.Lock()
	if m.state != StateIdle {
		m.mu.Unlock()
		return ErrSyncBusy
	}
	m.state = next
	m.mu.Unlock()

	if m.onChange != nil {
		m.onChange(next)
	}
	return nil
}

// finish returns to Idle regardless of how the operation ended.
func (m *syncStateMachine) finish() {
	m.mu.Lock()
	m.state = StateIdle
	m.mu.Unlock()

	if m.onChange != nil {
		m.onChange(StateIdle)
	}
}
