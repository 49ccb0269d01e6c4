package handlers

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/isdelr/warbler-be/internal/auth"
	"github.com/isdelr/warbler-be/internal/models"
	"github.com/isdelr/warbler-be/internal/services"
	"github.com/isdelr/warbler-be/web"
	"github.com/rs/zerolog/log"
)

// Messages shown per profile page.
const profileMessageLimit = 100

// UserHandler handles profile pages and the follow graph.
type UserHandler struct {
	users    services.UserServiceProvider
	follows  services.FollowServiceProvider
	messages services.MessageServiceProvider
	sessions *auth.SessionService
	renderer *web.Renderer
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(users services.UserServiceProvider, follows services.FollowServiceProvider, messages services.MessageServiceProvider, sessions *auth.SessionService, renderer *web.Renderer) *UserHandler {
	return &UserHandler{users: users, follows: follows, messages: messages, sessions: sessions, renderer: renderer}
}

// Index lists users, optionally filtered by the ?q= search query.
func (h *UserHandler) Index(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")
	users, err := h.users.SearchUsers(query)
	if err != nil {
		log.Error().Err(err).Str("query", query).Msg("Failed to search users")
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	h.renderer.Render(w, http.StatusOK, "users_index.html", web.Page{
		CurrentUser: auth.CurrentUser(r.Context()),
		Data:        map[string]any{"Users": users, "Query": query},
	})
}

// Show renders a user's profile with their messages and counts.
func (h *UserHandler) Show(w http.ResponseWriter, r *http.Request) {
	user, ok := h.lookupUser(w, r)
	if !ok {
		return
	}

	messages, err := h.messages.GetByUser(user.ID, profileMessageLimit)
	if err != nil {
		log.Error().Err(err).Str("user_id", user.ID).Msg("Failed to load user messages")
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	following, followers, err := h.follows.Counts(user.ID)
	if err != nil {
		log.Error().Err(err).Str("user_id", user.ID).Msg("Failed to load follow counts")
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	isFollowing := false
	if current := auth.CurrentUser(r.Context()); current != nil && current.ID != user.ID {
		isFollowing, err = h.follows.IsFollowing(current.ID, user.ID)
		if err != nil {
			log.Error().Err(err).Str("user_id", user.ID).Msg("Failed to check follow state")
			http.Error(w, "Internal server error", http.StatusInternalServerError)
			return
		}
	}

	h.renderer.Render(w, http.StatusOK, "users_show.html", web.Page{
		CurrentUser: auth.CurrentUser(r.Context()),
		Data: map[string]any{
			"User":           user,
			"Messages":       messages,
			"FollowingCount": following,
			"FollowerCount":  followers,
			"IsFollowing":    isFollowing,
		},
	})
}

// Following lists the users this user follows.
func (h *UserHandler) Following(w http.ResponseWriter, r *http.Request) {
	h.renderUserList(w, r, "following.html", h.follows.GetFollowing)
}

// Followers lists the users following this user.
func (h *UserHandler) Followers(w http.ResponseWriter, r *http.Request) {
	h.renderUserList(w, r, "followers.html", h.follows.GetFollowers)
}

// Likes lists the messages a user has liked.
func (h *UserHandler) Likes(w http.ResponseWriter, r *http.Request) {
	user, ok := h.lookupUser(w, r)
	if !ok {
		return
	}

	messages, err := h.messages.GetLikedBy(user.ID)
	if err != nil {
		log.Error().Err(err).Str("user_id", user.ID).Msg("Failed to load liked messages")
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	h.renderer.Render(w, http.StatusOK, "likes.html", web.Page{
		CurrentUser: auth.CurrentUser(r.Context()),
		Data:        map[string]any{"User": user, "Messages": messages},
	})
}

// Follow adds the current user as a follower of the target user.
func (h *UserHandler) Follow(w http.ResponseWriter, r *http.Request) {
	current := auth.CurrentUser(r.Context())
	targetID := chi.URLParam(r, "id")

	if err := h.follows.Follow(current.ID, targetID); err != nil {
		switch {
		case errors.Is(err, services.ErrNotFound):
			h.notFound(w, r)
		case errors.Is(err, services.ErrSelfFollow):
			http.Redirect(w, r, "/users/"+targetID, http.StatusFound)
		default:
			log.Error().Err(err).Str("target_id", targetID).Msg("Failed to follow user")
			http.Error(w, "Internal server error", http.StatusInternalServerError)
		}
		return
	}
	http.Redirect(w, r, "/users/"+targetID, http.StatusFound)
}

// Unfollow removes the current user's follow edge to the target user.
func (h *UserHandler) Unfollow(w http.ResponseWriter, r *http.Request) {
	current := auth.CurrentUser(r.Context())
	targetID := chi.URLParam(r, "id")

	if err := h.follows.Unfollow(current.ID, targetID); err != nil {
		log.Error().Err(err).Str("target_id", targetID).Msg("Failed to unfollow user")
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}
	http.Redirect(w, r, "/users/"+targetID, http.StatusFound)
}

// EditForm renders the edit page for the current user's own profile.
func (h *UserHandler) EditForm(w http.ResponseWriter, r *http.Request) {
	current := auth.CurrentUser(r.Context())
	h.renderEdit(w, r, http.StatusOK, "", *current)
}

// Edit applies profile changes after confirming the user's password.
func (h *UserHandler) Edit(w http.ResponseWriter, r *http.Request) {
	current := auth.CurrentUser(r.Context())
	if err := r.ParseForm(); err != nil {
		h.renderEdit(w, r, http.StatusBadRequest, "Invalid form submission.", *current)
		return
	}

	// Profile edits are password-gated.
	if _, err := h.users.AuthenticateUser(current.Username, r.PostFormValue("password")); err != nil {
		h.renderEdit(w, r, http.StatusUnauthorized, "Wrong password, please try again.", *current)
		return
	}

	update := services.ProfileUpdate{
		Username:       r.PostFormValue("username"),
		Email:          r.PostFormValue("email"),
		ImageURL:       r.PostFormValue("image_url"),
		HeaderImageURL: r.PostFormValue("header_image_url"),
		Bio:            r.PostFormValue("bio"),
		Location:       r.PostFormValue("location"),
	}

	user, err := h.users.UpdateProfile(current.ID, update)
	if err != nil {
		if errors.Is(err, services.ErrDuplicate) {
			h.renderEdit(w, r, http.StatusBadRequest, err.Error(), *current)
			return
		}
		log.Error().Err(err).Str("user_id", current.ID).Msg("Failed to update profile")
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	http.Redirect(w, r, "/users/"+user.ID, http.StatusFound)
}

// Delete removes the current user's account and ends their session.
func (h *UserHandler) Delete(w http.ResponseWriter, r *http.Request) {
	current := auth.CurrentUser(r.Context())

	if err := h.sessions.End(w, r); err != nil {
		log.Error().Err(err).Str("user_id", current.ID).Msg("Failed to end session before delete")
	}

	if err := h.users.DeleteUser(current.ID); err != nil {
		log.Error().Err(err).Str("user_id", current.ID).Msg("Failed to delete user")
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	http.Redirect(w, r, "/signup", http.StatusFound)
}

func (h *UserHandler) lookupUser(w http.ResponseWriter, r *http.Request) (models.User, bool) {
	id := chi.URLParam(r, "id")
	user, err := h.users.GetUserByID(id)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			h.notFound(w, r)
		} else {
			log.Error().Err(err).Str("user_id", id).Msg("Failed to load user")
			http.Error(w, "Internal server error", http.StatusInternalServerError)
		}
		return models.User{}, false
	}
	return user, true
}

func (h *UserHandler) renderUserList(w http.ResponseWriter, r *http.Request, template string, list func(string) ([]models.User, error)) {
	user, ok := h.lookupUser(w, r)
	if !ok {
		return
	}

	users, err := list(user.ID)
	if err != nil {
		log.Error().Err(err).Str("user_id", user.ID).Msg("Failed to load user list")
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	h.renderer.Render(w, http.StatusOK, template, web.Page{
		CurrentUser: auth.CurrentUser(r.Context()),
		Data:        map[string]any{"User": user, "Users": users},
	})
}

func (h *UserHandler) renderEdit(w http.ResponseWriter, r *http.Request, status int, errMsg string, user models.User) {
	h.renderer.Render(w, status, "edit_profile.html", web.Page{
		CurrentUser: auth.CurrentUser(r.Context()),
		Error:       errMsg,
		Data:        map[string]any{"User": user},
	})
}

func (h *UserHandler) notFound(w http.ResponseWriter, r *http.Request) {
	h.renderer.Render(w, http.StatusNotFound, "not_found.html", web.Page{
		CurrentUser: auth.CurrentUser(r.Context()),
	})
}
