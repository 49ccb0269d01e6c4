package models

import "time"

// Follow is a directed edge in the social graph: the follower receives
// the followed user's messages in their feed. The pair is unique and
// self-loops are rejected; mutual follows are two distinct edges.
type Follow struct {
	FollowerID string    `json:"followerId"`
	FollowedID string    `json:"followedId"`
	CreatedAt  time.Time `json:"createdAt"`
}
