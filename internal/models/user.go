package models

import "time"

// Default images applied at signup when none is provided.
const (
	DefaultImageURL       = "/static/images/default-pic.png"
	DefaultHeaderImageURL = "/static/images/warbler-hero.jpg"
)

// User represents a user account in the system.
type User struct {
	ID             string    `json:"id"`
	Username       string    `json:"username"`
	Email          string    `json:"email"`
	PasswordHash   string    `json:"-"` // Never expose this to the client
	ImageURL       string    `json:"imageUrl"`
	HeaderImageURL string    `json:"headerImageUrl"`
	Bio            string    `json:"bio"`
	Location       string    `json:"location"`
	CreatedAt      time.Time `json:"createdAt"`
}
