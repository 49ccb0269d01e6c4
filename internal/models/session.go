package models

import "time"

// Session is a server-side login session. The token is the opaque
// identifier carried (signed) in the client cookie; the user identity
// never leaves the server.
type Session struct {
	Token     string    `json:"-"`
	UserID    string    `json:"userId"`
	CreatedAt time.Time `json:"createdAt"`
	ExpiresAt time.Time `json:"expiresAt"`
}
