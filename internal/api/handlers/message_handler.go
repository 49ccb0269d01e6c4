package handlers

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/isdelr/warbler-be/internal/auth"
	"github.com/isdelr/warbler-be/internal/monitoring"
	"github.com/isdelr/warbler-be/internal/services"
	"github.com/isdelr/warbler-be/internal/websocket"
	"github.com/isdelr/warbler-be/web"
	"github.com/rs/zerolog/log"
)

// Messages shown on the home feed.
const feedLimit = 100

// MessageHandler handles the home feed, warbles and likes.
type MessageHandler struct {
	messages services.MessageServiceProvider
	renderer *web.Renderer
	hub      *websocket.Hub
}

// NewMessageHandler creates a new MessageHandler.
func NewMessageHandler(messages services.MessageServiceProvider, renderer *web.Renderer, hub *websocket.Hub) *MessageHandler {
	return &MessageHandler{messages: messages, renderer: renderer, hub: hub}
}

// Home renders the personal feed for logged-in users and the global
// timeline behind the landing page for anonymous visitors.
func (h *MessageHandler) Home(w http.ResponseWriter, r *http.Request) {
	current := auth.CurrentUser(r.Context())

	if current == nil {
		messages, err := h.messages.GetRecent(feedLimit)
		if err != nil {
			log.Error().Err(err).Msg("Failed to load recent messages")
			http.Error(w, "Internal server error", http.StatusInternalServerError)
			return
		}
		h.renderer.Render(w, http.StatusOK, "home_anon.html", web.Page{
			Data: map[string]any{"Messages": messages},
		})
		return
	}

	messages, err := h.messages.GetFeed(current.ID, feedLimit)
	if err != nil {
		log.Error().Err(err).Str("user_id", current.ID).Msg("Failed to load feed")
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}
	h.renderer.Render(w, http.StatusOK, "home.html", web.Page{
		CurrentUser: current,
		Data:        map[string]any{"Messages": messages},
	})
}

// NewForm renders the standalone new-warble page.
func (h *MessageHandler) NewForm(w http.ResponseWriter, r *http.Request) {
	h.renderer.Render(w, http.StatusOK, "message_new.html", web.Page{
		CurrentUser: auth.CurrentUser(r.Context()),
		Data:        map[string]any{"Text": ""},
	})
}

// Create posts a new warble for the current user.
func (h *MessageHandler) Create(w http.ResponseWriter, r *http.Request) {
	current := auth.CurrentUser(r.Context())
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Invalid form submission", http.StatusBadRequest)
		return
	}
	text := r.PostFormValue("text")

	message, err := h.messages.CreateMessage(current.ID, text)
	if err != nil {
		if errors.Is(err, services.ErrTextLength) {
			h.renderer.Render(w, http.StatusBadRequest, "message_new.html", web.Page{
				CurrentUser: current,
				Error:       err.Error(),
				Data:        map[string]any{"Text": text},
			})
			return
		}
		log.Error().Err(err).Str("user_id", current.ID).Msg("Failed to create message")
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	monitoring.MessagesPosted.Inc()
	if h.hub != nil {
		go h.hub.BroadcastNewMessage(message)
	}
	http.Redirect(w, r, "/users/"+current.ID, http.StatusFound)
}

// Show renders a single warble.
func (h *MessageHandler) Show(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	message, err := h.messages.GetMessage(id)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			h.renderer.Render(w, http.StatusNotFound, "not_found.html", web.Page{
				CurrentUser: auth.CurrentUser(r.Context()),
			})
			return
		}
		log.Error().Err(err).Str("message_id", id).Msg("Failed to load message")
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	h.renderer.Render(w, http.StatusOK, "message_show.html", web.Page{
		CurrentUser: auth.CurrentUser(r.Context()),
		Data:        map[string]any{"Message": message},
	})
}

// Delete removes one of the current user's own warbles.
func (h *MessageHandler) Delete(w http.ResponseWriter, r *http.Request) {
	current := auth.CurrentUser(r.Context())
	id := chi.URLParam(r, "id")

	if err := h.messages.DeleteMessage(id, current.ID); err != nil {
		switch {
		case errors.Is(err, services.ErrNotFound):
			h.renderer.Render(w, http.StatusNotFound, "not_found.html", web.Page{CurrentUser: current})
		case errors.Is(err, services.ErrForbidden):
			http.Error(w, "Access unauthorized", http.StatusForbidden)
		default:
			log.Error().Err(err).Str("message_id", id).Msg("Failed to delete message")
			http.Error(w, "Internal server error", http.StatusInternalServerError)
		}
		return
	}
	http.Redirect(w, r, "/users/"+current.ID, http.StatusFound)
}

// ToggleLike likes the message, or unlikes it when already liked.
func (h *MessageHandler) ToggleLike(w http.ResponseWriter, r *http.Request) {
	current := auth.CurrentUser(r.Context())
	id := chi.URLParam(r, "id")

	liked, err := h.messages.IsLiked(current.ID, id)
	if err != nil {
		log.Error().Err(err).Str("message_id", id).Msg("Failed to check like state")
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	if liked {
		err = h.messages.UnlikeMessage(current.ID, id)
	} else {
		err = h.messages.LikeMessage(current.ID, id)
	}
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			h.renderer.Render(w, http.StatusNotFound, "not_found.html", web.Page{CurrentUser: current})
			return
		}
		log.Error().Err(err).Str("message_id", id).Msg("Failed to toggle like")
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	// Send the user back to where they clicked when we can.
	if ref := r.Referer(); ref != "" {
		http.Redirect(w, r, ref, http.StatusFound)
		return
	}
	http.Redirect(w, r, "/", http.StatusFound)
}
