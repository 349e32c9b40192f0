package utils

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"time"

	"github.com/golang-jwt/jwt"

	"tutorly/config"
	"tutorly/models"
)

func appSecret() []byte {
	return []byte(config.AppConfig.JWTSecret)
}

// GenerateAppToken creates a signed web-app session token carrying the
// user's identity claims. This is the token the middleware resolves; it is
// unrelated to the room tokens minted by the session issuer.
func GenerateAppToken(identity models.Identity, duration time.Duration) (string, error) {
	claims := jwt.MapClaims{
		"sub":   identity.ID,
		"name":  identity.Name,
		"email": identity.Email,
		"iat":   time.Now().Unix(),
		"exp":   time.Now().Add(duration).Unix(),
	}
	if identity.AvatarURL != "" {
		claims["avatar"] = identity.AvatarURL
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(appSecret())
}

// HashToken computes a SHA-256 hash of the token string.
func HashToken(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}

// ValidateToken parses and validates a token string and returns the token if valid.
func ValidateToken(tokenString string) (*jwt.Token, error) {
	return jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		// Ensure that the token's signing method is HMAC.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return appSecret(), nil
	})
}

// ExtractIdentityFromToken extracts the identity claims from a valid app
// token string.
func ExtractIdentityFromToken(tokenString string) (*models.Identity, error) {
	token, err := ValidateToken(tokenString)
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid token")
	}

	sub, ok := claims["sub"].(string)
	if !ok || sub == "" {
		return nil, errors.New("token does not contain a valid 'sub' claim")
	}

	identity := &models.Identity{ID: sub}
	if name, ok := claims["name"].(string); ok {
		identity.Name = name
	}
	if email, ok := claims["email"].(string); ok {
		identity.Email = email
	}
	if avatar, ok := claims["avatar"].(string); ok {
		identity.AvatarURL = avatar
	}
	return identity, nil
}
