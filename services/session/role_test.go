package session

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFeaturesForParticipant(t *testing.T) {
	features := FeaturesFor(RoleParticipant)
	assert.False(t, features.Recording)
	assert.False(t, features.Livestreaming)
	assert.False(t, features.Transcription)
	assert.True(t, features.ScreenSharing, "screen sharing is open to every role")
}

func TestFeaturesForModerator(t *testing.T) {
	features := FeaturesFor(RoleModerator)
	assert.True(t, features.Recording)
	assert.True(t, features.Livestreaming)
	assert.True(t, features.Transcription)
	assert.True(t, features.ScreenSharing)
}
