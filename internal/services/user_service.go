package services

import (
	"database/sql"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/isdelr/warbler-be/internal/models"
	"golang.org/x/crypto/bcrypt"
)

// UserServiceProvider defines the interface for user services.
type UserServiceProvider interface {
	CreateUser(username, email, password, imageURL string) (models.User, error)
	AuthenticateUser(username, password string) (models.User, error)
	GetUserByID(id string) (models.User, error)
	GetUserByUsername(username string) (models.User, error)
	SearchUsers(query string) ([]models.User, error)
	UpdateProfile(id string, p ProfileUpdate) (models.User, error)
	UpdatePassword(id, currentPassword, newPassword string) error
	DeleteUser(id string) error
}

// ProfileUpdate carries the editable profile fields.
type ProfileUpdate struct {
	Username       string
	Email          string
	ImageURL       string
	HeaderImageURL string
	Bio            string
	Location       string
}

// UserService provides business logic for user accounts.
type UserService struct {
	db *sql.DB
}

// NewUserService creates a new UserService.
func NewUserService(db *sql.DB) *UserService {
	return &UserService{db: db}
}

const userColumns = "id, username, email, password_hash, image_url, header_image_url, bio, location, created_at"

func scanUser(row interface{ Scan(...any) error }) (models.User, error) {
	var u models.User
	err := row.Scan(&u.ID, &u.Username, &u.Email, &u.PasswordHash,
		&u.ImageURL, &u.HeaderImageURL, &u.Bio, &u.Location, &u.CreatedAt)
	return u, err
}

// GetUserByID retrieves a single user by their ID.
func (s *UserService) GetUserByID(id string) (models.User, error) {
	row := s.db.QueryRow("SELECT "+userColumns+" FROM users WHERE id = ?", id)
	user, err := scanUser(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return models.User{}, ErrNotFound
		}
		return models.User{}, err
	}
	return user, nil
}

// GetUserByUsername retrieves a single user by their username.
func (s *UserService) GetUserByUsername(username string) (models.User, error) {
	row := s.db.QueryRow("SELECT "+userColumns+" FROM users WHERE username = ?", username)
	user, err := scanUser(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return models.User{}, ErrNotFound
		}
		return models.User{}, err
	}
	return user, nil
}

// SearchUsers returns users whose username contains the query string,
// or all users when the query is empty.
func (s *UserService) SearchUsers(query string) ([]models.User, error) {
	rows, err := s.db.Query(
		"SELECT "+userColumns+" FROM users WHERE username LIKE ? ORDER BY username",
		"%"+query+"%")
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

// CreateUser creates a new user, hashing their password. Blank image
// URLs fall back to the defaults.
func (s *UserService) CreateUser(username, email, password, imageURL string) (models.User, error) {
	username = strings.TrimSpace(username)
	email = strings.TrimSpace(email)
	if username == "" || email == "" || password == "" {
		return models.User{}, fmt.Errorf("%w: username, email and password are required", ErrValidation)
	}

	taken, err := s.credentialsTaken(username, email)
	if err != nil {
		return models.User{}, err
	}
	if taken {
		return models.User{}, ErrDuplicate
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return models.User{}, fmt.Errorf("failed to hash password: %w", err)
	}

	if imageURL == "" {
		imageURL = models.DefaultImageURL
	}

	user := models.User{
		ID:             uuid.New().String(),
		Username:       username,
		Email:          email,
		PasswordHash:   string(hashedPassword),
		ImageURL:       imageURL,
		HeaderImageURL: models.DefaultHeaderImageURL,
	}

	stmt, err := s.db.Prepare("INSERT INTO users(id, username, email, password_hash, image_url, header_image_url) VALUES(?, ?, ?, ?, ?, ?)")
	if err != nil {
		return models.User{}, err
	}
	defer stmt.Close()

	if _, err = stmt.Exec(user.ID, user.Username, user.Email, user.PasswordHash, user.ImageURL, user.HeaderImageURL); err != nil {
		// The unique indexes are the last line of defense against a
		// concurrent signup with the same username/email.
		if strings.Contains(err.Error(), "UNIQUE constraint failed") {
			return models.User{}, ErrDuplicate
		}
		return models.User{}, err
	}

	return s.GetUserByID(user.ID)
}

func (s *UserService) credentialsTaken(username, email string) (bool, error) {
	var count int
	err := s.db.QueryRow(
		"SELECT COUNT(*) FROM users WHERE username = ? OR email = ?",
		username, email).Scan(&count)
	return count > 0, err
}

// AuthenticateUser verifies a user's credentials. Unknown usernames and
// wrong passwords return the same error.
func (s *UserService) AuthenticateUser(username, password string) (models.User, error) {
	user, err := s.GetUserByUsername(username)
	if err != nil {
		if err == ErrNotFound {
			return models.User{}, ErrInvalidCredentials
		}
		return models.User{}, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return models.User{}, ErrInvalidCredentials
	}

	return user, nil
}

// UpdateProfile updates a user's profile fields.
func (s *UserService) UpdateProfile(id string, p ProfileUpdate) (models.User, error) {
	if _, err := s.GetUserByID(id); err != nil {
		return models.User{}, err
	}

	if p.ImageURL == "" {
		p.ImageURL = models.DefaultImageURL
	}
	if p.HeaderImageURL == "" {
		p.HeaderImageURL = models.DefaultHeaderImageURL
	}

	stmt, err := s.db.Prepare("UPDATE users SET username = ?, email = ?, image_url = ?, header_image_url = ?, bio = ?, location = ? WHERE id = ?")
	if err != nil {
		return models.User{}, err
	}
	defer stmt.Close()

	if _, err = stmt.Exec(p.Username, p.Email, p.ImageURL, p.HeaderImageURL, p.Bio, p.Location, id); err != nil {
		if strings.Contains(err.Error(), "UNIQUE constraint failed") {
			return models.User{}, ErrDuplicate
		}
		return models.User{}, err
	}
	return s.GetUserByID(id)
}

// UpdatePassword verifies the current password, then hashes and sets a
// new password for a user.
func (s *UserService) UpdatePassword(id, currentPassword, newPassword string) error {
	user, err := s.GetUserByID(id)
	if err != nil {
		return err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(currentPassword)); err != nil {
		return ErrInvalidCredentials
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash new password: %w", err)
	}

	_, err = s.db.Exec("UPDATE users SET password_hash = ? WHERE id = ?", string(hashedPassword), id)
	return err
}

// DeleteUser removes a user. Their messages, follow edges, likes and
// sessions go with them via cascading deletes.
func (s *UserService) DeleteUser(id string) error {
	res, err := s.db.Exec("DELETE FROM users WHERE id = ?", id)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return ErrNotFound
	}
	return nil
}
