package models

import "time"

// Like records a user's endorsement of a message. Unique per
// (user, message) pair.
type Like struct {
	UserID    string    `json:"userId"`
	MessageID string    `json:"messageId"`
	CreatedAt time.Time `json:"createdAt"`
}
