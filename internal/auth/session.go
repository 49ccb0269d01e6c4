package auth

import (
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/isdelr/warbler-be/internal/models"
)

// CookieName is the session cookie set on login.
const CookieName = "warbler_session"

// ErrNoSession is returned when a request carries no usable session.
var ErrNoSession = errors.New("no active session")

// SessionService maps clients to logged-in users. Identity lives in a
// server-side sessions table; the cookie only carries the opaque
// session token, wrapped in a signed JWT so it cannot be forged or
// tampered with client-side.
type SessionService struct {
	db     *sql.DB
	secret []byte
	ttl    time.Duration
	secure bool
}

// NewSessionService creates a new SessionService. secure controls the
// cookie's Secure flag and should be true in production.
func NewSessionService(db *sql.DB, secret string, ttl time.Duration, secure bool) *SessionService {
	return &SessionService{db: db, secret: []byte(secret), ttl: ttl, secure: secure}
}

type sessionClaims struct {
	SessionToken string `json:"sessionToken"`
	jwt.RegisteredClaims
}

// Establish creates a server-side session for the user and sets the
// session cookie on the response.
func (s *SessionService) Establish(w http.ResponseWriter, user models.User) error {
	session := models.Session{
		Token:     uuid.New().String(),
		UserID:    user.ID,
		ExpiresAt: time.Now().Add(s.ttl),
	}

	if _, err := s.db.Exec(
		"INSERT INTO sessions(token, user_id, expires_at) VALUES(?, ?, ?)",
		session.Token, session.UserID, session.ExpiresAt); err != nil {
		return err
	}

	signed, err := s.signToken(session.Token, session.ExpiresAt)
	if err != nil {
		return err
	}

	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    signed,
		Expires:  session.ExpiresAt,
		HttpOnly: true,
		Secure:   s.secure,
		SameSite: http.SameSiteLaxMode,
		Path:     "/",
	})
	return nil
}

// Resolve returns the user behind the request's session cookie. A
// missing cookie, a bad signature, an expired or unknown session, or a
// stale user id all resolve to ErrNoSession: the caller treats the
// request as anonymous.
func (s *SessionService) Resolve(r *http.Request) (models.User, error) {
	cookie, err := r.Cookie(CookieName)
	if err != nil {
		return models.User{}, ErrNoSession
	}

	token, err := s.verifyToken(cookie.Value)
	if err != nil {
		return models.User{}, ErrNoSession
	}

	var user models.User
	row := s.db.QueryRow(`
		SELECT u.id, u.username, u.email, u.password_hash, u.image_url,
		       u.header_image_url, u.bio, u.location, u.created_at
		FROM users u
		INNER JOIN sessions s ON s.user_id = u.id
		WHERE s.token = ? AND s.expires_at > ?`,
		token, time.Now())
	err = row.Scan(&user.ID, &user.Username, &user.Email, &user.PasswordHash,
		&user.ImageURL, &user.HeaderImageURL, &user.Bio, &user.Location, &user.CreatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return models.User{}, ErrNoSession
		}
		return models.User{}, err
	}
	return user, nil
}

// End deletes the server-side session and expires the cookie. Safe to
// call for anonymous clients.
func (s *SessionService) End(w http.ResponseWriter, r *http.Request) error {
	if cookie, err := r.Cookie(CookieName); err == nil {
		if token, err := s.verifyToken(cookie.Value); err == nil {
			if _, err := s.db.Exec("DELETE FROM sessions WHERE token = ?", token); err != nil {
				return err
			}
		}
	}

	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    "",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   s.secure,
		SameSite: http.SameSiteLaxMode,
		Path:     "/",
	})
	return nil
}

// Sweep deletes expired session rows and returns how many were removed.
func (s *SessionService) Sweep() (int64, error) {
	res, err := s.db.Exec("DELETE FROM sessions WHERE expires_at <= ?", time.Now())
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

func (s *SessionService) signToken(token string, expiresAt time.Time) (string, error) {
	claims := &sessionClaims{
		SessionToken: token,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
}

func (s *SessionService) verifyToken(signed string) (string, error) {
	claims := &sessionClaims{}
	parsed, err := jwt.ParseWithClaims(signed, claims, func(t *jwt.Token) (interface{}, error) {
		return s.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return "", err
	}
	if !parsed.Valid || claims.SessionToken == "" {
		return "", fmt.Errorf("invalid session cookie")
	}
	return claims.SessionToken, nil
}
