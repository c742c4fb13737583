package mocks

import "context"

type PreferenceRepositoryMock struct {
	GetOutputLanguageFunc func(ctx context.Context) (string, error)
	SetOutputLanguageFunc func(ctx context.Context, code string) error
}

func (m *PreferenceRepositoryMock) GetOutputLanguage(ctx context.Context) (string, error) {
	if m.GetOutputLanguageFunc != nil {
		return m.GetOutputLanguageFunc(ctx)
	}
	return "", nil
}

func (m *PreferenceRepositoryMock) SetOutputLanguage(ctx context.Context, code string) error {
	if m.SetOutputLanguageFunc != nil {
		return m.SetOutputLanguageFunc(ctx, code)
	}
	return nil
}
