package models

import "time"

// MeetingCredential is a freshly minted, signed entry pass for one
// conferencing room. It is never persisted; every join attempt gets a new
// one and expiry is the only lifecycle event.
type MeetingCredential struct {
	Token     string    `json:"token"`
	Room      string    `json:"room"`
	Domain    string    `json:"domain"`
	Role      string    `json:"role"`
	IssuedAt  time.Time `json:"issuedAt"`
	ExpiresAt time.Time `json:"expiresAt"`
}
