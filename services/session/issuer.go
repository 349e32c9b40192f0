package session

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt"

	"tutorly/models"
)

// Token policy defaults, overridable through IssuerConfig.
const (
	// DefaultTokenTTL bounds how long an issued room token stays valid.
	DefaultTokenTTL = 2 * time.Hour
	// DefaultClockSkew backdates nbf to absorb clock drift between this
	// process and the conferencing backend's verifier.
	DefaultClockSkew = 10 * time.Second
)

// IssuerConfig is the deployment configuration for room token signing.
// AppID, Secret and Domain come from the environment; they are never
// hard-coded and the secret has no fallback.
type IssuerConfig struct {
	AppID     string
	Secret    string
	Domain    string
	TokenTTL  time.Duration
	ClockSkew time.Duration
}

// Issuer mints signed, time-bounded entry credentials for conferencing
// rooms. It is stateless; every call produces a fresh token and nothing is
// cached or revocable afterwards. Safe for concurrent use.
type Issuer struct {
	appID  string
	secret []byte
	domain string
	ttl    time.Duration
	skew   time.Duration
	clock  Clock
}

// NewIssuer builds an Issuer or fails on incomplete signing configuration.
// A missing secret is a startup error: the process must refuse to issue
// credentials rather than sign with a default.
func NewIssuer(cfg IssuerConfig, clock Clock) (*Issuer, error) {
	if cfg.Secret == "" {
		return nil, errors.New("session issuer: signing secret is not configured")
	}
	if cfg.AppID == "" {
		return nil, errors.New("session issuer: application identifier is not configured")
	}
	if cfg.Domain == "" {
		return nil, errors.New("session issuer: conferencing domain is not configured")
	}
	if cfg.TokenTTL <= 0 {
		cfg.TokenTTL = DefaultTokenTTL
	}
	if cfg.ClockSkew <= 0 {
		cfg.ClockSkew = DefaultClockSkew
	}
	if clock == nil {
		clock = SystemClock{}
	}
	return &Issuer{
		appID:  cfg.AppID,
		secret: []byte(cfg.Secret),
		domain: cfg.Domain,
		ttl:    cfg.TokenTTL,
		skew:   cfg.ClockSkew,
		clock:  clock,
	}, nil
}

// Domain returns the conferencing domain tokens are redeemed against.
func (i *Issuer) Domain() string {
	return i.domain
}

// Issue signs an HS256 entry token for one subject into one room. The claim
// shape (iss, aud, sub=room, context.user.*, context.features.*) is a wire
// contract with the conferencing backend; renaming or re-nesting anything
// here breaks verification on their side.
func (i *Issuer) Issue(subject models.Identity, room string, role Role) (*models.MeetingCredential, error) {
	if subject.ID == "" {
		return nil, newAccessError(CodeInvalidInput, "credential subject has no id")
	}
	if room == "" {
		return nil, newAccessError(CodeInvalidInput, "credential room is empty")
	}

	now := i.clock.Now()
	expires := now.Add(i.ttl)
	features := FeaturesFor(role)

	user := map[string]any{
		"id":        subject.ID,
		"name":      subject.Name,
		"email":     subject.Email,
		"moderator": role == RoleModerator,
	}
	if subject.AvatarURL != "" {
		user["avatar"] = subject.AvatarURL
	}

	claims := jwt.MapClaims{
		"iss": i.appID,
		"aud": i.domain,
		"sub": room,
		"iat": now.Unix(),
		"nbf": now.Add(-i.skew).Unix(),
		"exp": expires.Unix(),
		"context": map[string]any{
			"user": user,
			"features": map[string]bool{
				"recording":      features.Recording,
				"livestreaming":  features.Livestreaming,
				"transcription":  features.Transcription,
				"screen-sharing": features.ScreenSharing,
			},
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(i.secret)
	if err != nil {
		return nil, err
	}

	return &models.MeetingCredential{
		Token:     signed,
		Room:      room,
		Domain:    i.domain,
		Role:      string(role),
		IssuedAt:  now,
		ExpiresAt: expires,
	}, nil
}
