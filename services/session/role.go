package session

// Role is a capability grant inside a conferencing room, not a display label.
// It is decided by the caller (tutor vs student) before issuance; the issuer
// embeds it verbatim and never upgrades it.
type Role string

const (
	RoleParticipant Role = "participant"
	RoleModerator   Role = "moderator"
)

// FeatureSet is the feature switchboard embedded in a room token. The
// conferencing backend reads it as context.features.* and enforces it; this
// is the entire authorization surface we expose to that system.
type FeatureSet struct {
	Recording     bool `json:"recording"`
	Livestreaming bool `json:"livestreaming"`
	Transcription bool `json:"transcription"`
	ScreenSharing bool `json:"screen-sharing"`
}

// FeaturesFor maps a role to its feature set. Recording, livestreaming and
// transcription are moderator-only; screen sharing is open to any role.
func FeaturesFor(role Role) FeatureSet {
	mod := role == RoleModerator
	return FeatureSet{
		Recording:     mod,
		Livestreaming: mod,
		Transcription: mod,
		ScreenSharing: true,
	}
}
