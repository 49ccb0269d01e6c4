package services

import (
	"database/sql"
	"strings"

	"github.com/google/uuid"
	"github.com/isdelr/warbler-be/internal/models"
)

// MessageServiceProvider defines the interface for message services.
type MessageServiceProvider interface {
	CreateMessage(userID, text string) (models.Message, error)
	GetMessage(id string) (models.Message, error)
	DeleteMessage(id, requesterID string) error
	GetFeed(userID string, limit int) ([]models.Message, error)
	GetRecent(limit int) ([]models.Message, error)
	GetByUser(userID string, limit int) ([]models.Message, error)
	LikeMessage(userID, messageID string) error
	UnlikeMessage(userID, messageID string) error
	IsLiked(userID, messageID string) (bool, error)
	GetLikedBy(userID string) ([]models.Message, error)
}

// MessageService provides business logic for warbles and likes.
type MessageService struct {
	db *sql.DB
}

// NewMessageService creates a new MessageService.
func NewMessageService(db *sql.DB) *MessageService {
	return &MessageService{db: db}
}

const messageSelect = `
	SELECT m.id, m.user_id, m.text, m.created_at, u.username, u.image_url,
	       (SELECT COUNT(*) FROM likes l WHERE l.message_id = m.id)
	FROM messages m INNER JOIN users u ON u.id = m.user_id`

func (s *MessageService) queryMessages(query string, args ...any) ([]models.Message, error) {
	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var messages []models.Message
	for rows.Next() {
		var m models.Message
		if err := rows.Scan(&m.ID, &m.UserID, &m.Text, &m.CreatedAt,
			&m.AuthorUsername, &m.AuthorImageURL, &m.LikeCount); err != nil {
			return nil, err
		}
		messages = append(messages, m)
	}
	return messages, rows.Err()
}

// CreateMessage posts a new warble for a user.
func (s *MessageService) CreateMessage(userID, text string) (models.Message, error) {
	text = strings.TrimSpace(text)
	if text == "" || len([]rune(text)) > models.MaxMessageLength {
		return models.Message{}, ErrTextLength
	}

	id := uuid.New().String()
	if _, err := s.db.Exec(
		"INSERT INTO messages(id, user_id, text) VALUES(?, ?, ?)",
		id, userID, text); err != nil {
		return models.Message{}, err
	}
	return s.GetMessage(id)
}

// GetMessage retrieves a single message with its author fields.
func (s *MessageService) GetMessage(id string) (models.Message, error) {
	messages, err := s.queryMessages(messageSelect+" WHERE m.id = ?", id)
	if err != nil {
		return models.Message{}, err
	}
	if len(messages) == 0 {
		return models.Message{}, ErrNotFound
	}
	return messages[0], nil
}

// DeleteMessage removes a message. Only the author may delete it.
func (s *MessageService) DeleteMessage(id, requesterID string) error {
	var ownerID string
	err := s.db.QueryRow("SELECT user_id FROM messages WHERE id = ?", id).Scan(&ownerID)
	if err != nil {
		if err == sql.ErrNoRows {
			return ErrNotFound
		}
		return err
	}
	if ownerID != requesterID {
		return ErrForbidden
	}

	_, err = s.db.Exec("DELETE FROM messages WHERE id = ?", id)
	return err
}

// GetFeed returns the newest messages posted by the user and everyone
// they follow.
func (s *MessageService) GetFeed(userID string, limit int) ([]models.Message, error) {
	return s.queryMessages(messageSelect+`
		WHERE m.user_id = ?
		   OR m.user_id IN (SELECT followed_id FROM follows WHERE follower_id = ?)
		ORDER BY m.created_at DESC LIMIT ?`,
		userID, userID, limit)
}

// GetRecent returns the newest messages across all users.
func (s *MessageService) GetRecent(limit int) ([]models.Message, error) {
	return s.queryMessages(messageSelect+" ORDER BY m.created_at DESC LIMIT ?", limit)
}

// GetByUser returns a single user's messages, newest first.
func (s *MessageService) GetByUser(userID string, limit int) ([]models.Message, error) {
	return s.queryMessages(messageSelect+" WHERE m.user_id = ? ORDER BY m.created_at DESC LIMIT ?",
		userID, limit)
}

// LikeMessage records a like. Liking the same message twice is a no-op;
// the (user, message) pair stays unique.
func (s *MessageService) LikeMessage(userID, messageID string) error {
	if _, err := s.GetMessage(messageID); err != nil {
		return err
	}
	_, err := s.db.Exec(
		"INSERT OR IGNORE INTO likes(user_id, message_id) VALUES(?, ?)",
		userID, messageID)
	return err
}

// UnlikeMessage removes a like. Removing a missing like is a no-op.
func (s *MessageService) UnlikeMessage(userID, messageID string) error {
	_, err := s.db.Exec(
		"DELETE FROM likes WHERE user_id = ? AND message_id = ?",
		userID, messageID)
	return err
}

// IsLiked reports whether the user has liked the message.
func (s *MessageService) IsLiked(userID, messageID string) (bool, error) {
	var count int
	err := s.db.QueryRow(
		"SELECT COUNT(*) FROM likes WHERE user_id = ? AND message_id = ?",
		userID, messageID).Scan(&count)
	return count > 0, err
}

// GetLikedBy returns the messages a user has liked, newest like first.
func (s *MessageService) GetLikedBy(userID string) ([]models.Message, error) {
	return s.queryMessages(messageSelect+`
		INNER JOIN likes l2 ON l2.message_id = m.id
		WHERE l2.user_id = ? ORDER BY l2.created_at DESC`,
		userID)
}
