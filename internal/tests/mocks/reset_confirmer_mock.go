package mocks

import "context"

type ResetConfirmerMock struct {
	ConfirmResetFunc func(ctx context.Context) (bool, error)
}

func (m *ResetConfirmerMock) ConfirmReset(ctx context.Context) (bool, error) {
	if m.ConfirmResetFunc != nil {
		return m.ConfirmResetFunc(ctx)
	}
	return true, nil
}
