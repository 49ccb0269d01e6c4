package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/isdelr/warbler-be/internal/api/handlers"
	"github.com/isdelr/warbler-be/internal/auth"
	"github.com/isdelr/warbler-be/internal/monitoring"
	"github.com/isdelr/warbler-be/internal/services"
	"github.com/isdelr/warbler-be/internal/websocket"
	"github.com/isdelr/warbler-be/web"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// NewRouter creates and configures the Chi router.
func NewRouter(
	sessions *auth.SessionService,
	users services.UserServiceProvider,
	follows services.FollowServiceProvider,
	messages services.MessageServiceProvider,
	hub *websocket.Hub,
	renderer *web.Renderer,
) *chi.Mux {
	r := chi.NewRouter()

	// Basic middleware stack
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(monitoring.InstrumentHandler)

	// CORS configuration for development
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:3000"},
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	// Resolve the current user before any route-specific logic runs.
	r.Use(sessions.Middleware)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(users, sessions, renderer)
	userHandler := handlers.NewUserHandler(users, follows, messages, sessions, renderer)
	messageHandler := handlers.NewMessageHandler(messages, renderer, hub)
	wsHandler := handlers.NewWebSocketHandler(hub)

	r.Get("/", messageHandler.Home)

	r.Get("/signup", authHandler.SignupForm)
	r.Post("/signup", authHandler.Signup)
	r.Get("/login", authHandler.LoginForm)
	r.Post("/login", authHandler.Login)
	// The original app also accepts GET /logout from a plain link.
	r.Get("/logout", authHandler.Logout)
	r.Post("/logout", authHandler.Logout)

	r.Route("/users", func(r chi.Router) {
		r.Get("/", userHandler.Index)
		r.Get("/profile", auth.RequireLogin(userHandler.EditForm))
		r.Post("/profile", auth.RequireLogin(userHandler.Edit))
		r.Post("/delete", auth.RequireLogin(userHandler.Delete))
		r.Post("/follow/{id}", auth.RequireLogin(userHandler.Follow))
		r.Post("/stop-following/{id}", auth.RequireLogin(userHandler.Unfollow))
		r.Route("/{id}", func(r chi.Router) {
			r.Get("/", userHandler.Show)
			r.Get("/following", userHandler.Following)
			r.Get("/followers", userHandler.Followers)
			r.Get("/likes", userHandler.Likes)
		})
	})

	r.Route("/messages", func(r chi.Router) {
		r.Get("/new", auth.RequireLogin(messageHandler.NewForm))
		r.Post("/new", auth.RequireLogin(messageHandler.Create))
		r.Get("/{id}", messageHandler.Show)
		r.Post("/{id}/delete", auth.RequireLogin(messageHandler.Delete))
		r.Post("/{id}/like", auth.RequireLogin(messageHandler.ToggleLike))
	})

	// Live feed socket
	r.Get("/ws", wsHandler.Serve)

	// Embedded stylesheet and default images
	r.Handle("/static/*", web.StaticHandler())

	// Metrics endpoint
	r.Handle("/metrics", promhttp.Handler())

	r.NotFound(func(w http.ResponseWriter, req *http.Request) {
		renderer.Render(w, http.StatusNotFound, "not_found.html", web.Page{
			CurrentUser: auth.CurrentUser(req.Context()),
		})
	})

	return r
}
