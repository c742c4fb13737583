package unit_tests

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/moonheart/banana-slides/internal/models"
)

func TestDraftInput_Normalize_CoercesWorkerCounts(t *testing.T) {
	cases := []struct {
		name        string
		description string
		image       string
		wantDesc    int
		wantImage   int
	}{
		{name: "valid numbers pass through", description: "3", image: "12", wantDesc: 3, wantImage: 12},
		{name: "non-numeric falls back to defaults", description: "many", image: "lots", wantDesc: 5, wantImage: 8},
		{name: "empty falls back to defaults", description: "", image: "", wantDesc: 5, wantImage: 8},
		{name: "surrounding whitespace is tolerated", description: " 4 ", image: " 6 ", wantDesc: 4, wantImage: 6},
		{name: "values clamp to supported range", description: "0", image: "50", wantDesc: 1, wantImage: 20},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			draft := models.DraftInput{
				MaxDescriptionWorkers: tc.description,
				MaxImageWorkers:       tc.image,
			}.Normalize()
			assert.Equal(t, tc.wantDesc, draft.MaxDescriptionWorkers)
			assert.Equal(t, tc.wantImage, draft.MaxImageWorkers)
		})
	}
}

func TestUpdateFromDraft_CredentialPresence(t *testing.T) {
	draft := models.DeriveDraft(models.DefaultRemoteSettings())
	update := models.UpdateFromDraft(draft)
	assert.Nil(t, update.APIKey)

	draft.APIKey = "sk-123"
	update = models.UpdateFromDraft(draft)
	assert.NotNil(t, update.APIKey)
	assert.Equal(t, "sk-123", *update.APIKey)
}

func TestDeriveDraft_MasksCredential(t *testing.T) {
	remote := models.DefaultRemoteSettings()
	remote.APIKeyLength = 40

	draft := models.DeriveDraft(remote)
	assert.Equal(t, "", draft.APIKey)
	assert.Equal(t, remote.APIBaseURL, draft.APIBaseURL)
	assert.True(t, remote.APIKeyStored())
}
