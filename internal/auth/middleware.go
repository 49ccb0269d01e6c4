package auth

import (
	"context"
	"net/http"

	"github.com/isdelr/warbler-be/internal/models"
)

type contextKey string

// userKey is the context key for the resolved current user.
const userKey = contextKey("currentUser")

// Middleware resolves the current user before any route-specific logic
// runs and stores it in the request context. Anonymous requests pass
// through with no user set.
func (s *SessionService) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if user, err := s.Resolve(r); err == nil {
			r = r.WithContext(context.WithValue(r.Context(), userKey, &user))
		}
		next.ServeHTTP(w, r)
	})
}

// CurrentUser returns the logged-in user for this request, or nil for
// anonymous requests.
func CurrentUser(ctx context.Context) *models.User {
	user, _ := ctx.Value(userKey).(*models.User)
	return user
}

// WithUser returns a context carrying the given user. Used by tests
// and by handlers that act immediately after login.
func WithUser(ctx context.Context, user *models.User) context.Context {
	return context.WithValue(ctx, userKey, user)
}

// RequireLogin redirects anonymous requests to the landing page, the
// way the HTML app signals "access unauthorized".
func RequireLogin(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if CurrentUser(r.Context()) == nil {
			http.Redirect(w, r, "/", http.StatusFound)
			return
		}
		next(w, r)
	}
}
