package services

import (
	"database/sql"

	"github.com/isdelr/warbler-be/internal/models"
)

// FollowServiceProvider defines the interface for the follow graph.
type FollowServiceProvider interface {
	Follow(followerID, followedID string) error
	Unfollow(followerID, followedID string) error
	IsFollowing(followerID, followedID string) (bool, error)
	GetFollowing(userID string) ([]models.User, error)
	GetFollowers(userID string) ([]models.User, error)
	Counts(userID string) (following int, followers int, err error)
}

// FollowService manages directed follow edges between users.
type FollowService struct {
	db *sql.DB
}

// NewFollowService creates a new FollowService.
func NewFollowService(db *sql.DB) *FollowService {
	return &FollowService{db: db}
}

// Follow adds a directed edge from follower to followed. Re-following
// an already followed user is a no-op; following yourself is rejected.
func (s *FollowService) Follow(followerID, followedID string) error {
	if followerID == followedID {
		return ErrSelfFollow
	}

	// Fail with a clean not-found instead of a FK violation.
	if _, err := (&UserService{db: s.db}).GetUserByID(followedID); err != nil {
		return err
	}

	_, err := s.db.Exec(
		"INSERT OR IGNORE INTO follows(follower_id, followed_id) VALUES(?, ?)",
		followerID, followedID)
	return err
}

// Unfollow removes the edge. Removing a missing edge is a no-op, so a
// follow/unfollow pair always restores the prior graph state.
func (s *FollowService) Unfollow(followerID, followedID string) error {
	_, err := s.db.Exec(
		"DELETE FROM follows WHERE follower_id = ? AND followed_id = ?",
		followerID, followedID)
	return err
}

// IsFollowing reports whether the edge follower→followed exists.
func (s *FollowService) IsFollowing(followerID, followedID string) (bool, error) {
	var count int
	err := s.db.QueryRow(
		"SELECT COUNT(*) FROM follows WHERE follower_id = ? AND followed_id = ?",
		followerID, followedID).Scan(&count)
	return count > 0, err
}

// GetFollowing returns the users this user follows.
func (s *FollowService) GetFollowing(userID string) ([]models.User, error) {
	return s.queryUsers(
		"SELECT "+prefixedUserColumns+" FROM users u INNER JOIN follows f ON f.followed_id = u.id WHERE f.follower_id = ? ORDER BY f.created_at DESC",
		userID)
}

// GetFollowers returns the users following this user.
func (s *FollowService) GetFollowers(userID string) ([]models.User, error) {
	return s.queryUsers(
		"SELECT "+prefixedUserColumns+" FROM users u INNER JOIN follows f ON f.follower_id = u.id WHERE f.followed_id = ? ORDER BY f.created_at DESC",
		userID)
}

// Counts returns how many users this user follows and is followed by.
func (s *FollowService) Counts(userID string) (int, int, error) {
	var following, followers int
	if err := s.db.QueryRow(
		"SELECT COUNT(*) FROM follows WHERE follower_id = ?", userID).Scan(&following); err != nil {
		return 0, 0, err
	}
	if err := s.db.QueryRow(
		"SELECT COUNT(*) FROM follows WHERE followed_id = ?", userID).Scan(&followers); err != nil {
		return 0, 0, err
	}
	return following, followers, nil
}

const prefixedUserColumns = "u.id, u.username, u.email, u.password_hash, u.image_url, u.header_image_url, u.bio, u.location, u.created_at"

func (s *FollowService) queryUsers(query string, args ...any) ([]models.User, error) {
	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var users []models.User
	for rows.Next() {
		user, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		users = append(users, user)
	}
	return users, rows.Err()
}
