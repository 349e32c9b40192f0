package models

// Identity is the resolved caller identity the session handlers trust.
// Resolution (token validation, user lookup) happens in middleware; by the
// time a service sees an Identity it is assumed authentic.
type Identity struct {
	ID        string `bson:"id" json:"id"`
	Name      string `bson:"name" json:"name"`
	Email     string `bson:"email" json:"email"`
	AvatarURL string `bson:"avatar_url,omitempty" json:"avatarUrl,omitempty"`
}
