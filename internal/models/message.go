package models

import "time"

// MaxMessageLength is the upper bound on warble text, matching the
// database CHECK constraint.
const MaxMessageLength = 140

// Message represents a single warble posted by a user.
type Message struct {
	ID        string    `json:"id"`
	UserID    string    `json:"userId"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"createdAt"`

	// Author fields joined on read for rendering.
	AuthorUsername string `json:"authorUsername,omitempty"`
	AuthorImageURL string `json:"authorImageUrl,omitempty"`
	LikeCount      int    `json:"likeCount"`
}
