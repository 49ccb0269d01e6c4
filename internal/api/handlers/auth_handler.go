package handlers

import (
	"errors"
	"net/http"

	"github.com/isdelr/warbler-be/internal/auth"
	"github.com/isdelr/warbler-be/internal/monitoring"
	"github.com/isdelr/warbler-be/internal/services"
	"github.com/isdelr/warbler-be/web"
	"github.com/rs/zerolog/log"
)

// AuthHandler handles signup, login and logout.
type AuthHandler struct {
	users    services.UserServiceProvider
	sessions *auth.SessionService
	renderer *web.Renderer
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(users services.UserServiceProvider, sessions *auth.SessionService, renderer *web.Renderer) *AuthHandler {
	return &AuthHandler{users: users, sessions: sessions, renderer: renderer}
}

// SignupForm renders the signup page.
func (h *AuthHandler) SignupForm(w http.ResponseWriter, r *http.Request) {
	h.renderSignup(w, r, http.StatusOK, "", "", "", "")
}

// Signup handles new user registration and logs the new user in.
func (h *AuthHandler) Signup(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.renderSignup(w, r, http.StatusBadRequest, "Invalid form submission.", "", "", "")
		return
	}

	username := r.PostFormValue("username")
	email := r.PostFormValue("email")
	password := r.PostFormValue("password")
	imageURL := r.PostFormValue("image_url")

	user, err := h.users.CreateUser(username, email, password, imageURL)
	if err != nil {
		if errors.Is(err, services.ErrDuplicate) || errors.Is(err, services.ErrValidation) {
			h.renderSignup(w, r, http.StatusBadRequest, err.Error(), username, email, imageURL)
			return
		}
		log.Error().Err(err).Str("username", username).Msg("Failed to create user")
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	if err := h.sessions.Establish(w, user); err != nil {
		log.Error().Err(err).Str("user_id", user.ID).Msg("Failed to establish session after signup")
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	monitoring.SignupSuccess.Inc()
	http.Redirect(w, r, "/", http.StatusFound)
}

// LoginForm renders the login page.
func (h *AuthHandler) LoginForm(w http.ResponseWriter, r *http.Request) {
	h.renderLogin(w, r, http.StatusOK, "", "")
}

// Login authenticates the user and establishes a session.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.renderLogin(w, r, http.StatusBadRequest, "Invalid form submission.", "")
		return
	}

	username := r.PostFormValue("username")
	password := r.PostFormValue("password")

	user, err := h.users.AuthenticateUser(username, password)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			monitoring.LoginFailure.Inc()
			log.Warn().Str("username", username).Msg("Failed authentication attempt")
			h.renderLogin(w, r, http.StatusUnauthorized, "Invalid credentials.", username)
			return
		}
		log.Error().Err(err).Str("username", username).Msg("Authentication error")
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	if err := h.sessions.Establish(w, user); err != nil {
		log.Error().Err(err).Str("user_id", user.ID).Msg("Failed to establish session")
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	monitoring.LoginSuccess.Inc()
	http.Redirect(w, r, "/", http.StatusFound)
}

// Logout ends the session and returns the client to the landing page.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	if err := h.sessions.End(w, r); err != nil {
		log.Error().Err(err).Msg("Failed to end session")
	}
	http.Redirect(w, r, "/", http.StatusFound)
}

func (h *AuthHandler) renderSignup(w http.ResponseWriter, r *http.Request, status int, errMsg, username, email, imageURL string) {
	h.renderer.Render(w, status, "signup.html", web.Page{
		CurrentUser: auth.CurrentUser(r.Context()),
		Error:       errMsg,
		Data: map[string]any{
			"Username": username,
			"Email":    email,
			"ImageURL": imageURL,
		},
	})
}

func (h *AuthHandler) renderLogin(w http.ResponseWriter, r *http.Request, status int, errMsg, username string) {
	h.renderer.Render(w, status, "login.html", web.Page{
		CurrentUser: auth.CurrentUser(r.Context()),
		Error:       errMsg,
		Data:        map[string]any{"Username": username},
	})
}
