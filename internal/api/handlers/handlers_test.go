package handlers

import (
	"database/sql"
	"net/http"
	"net/http/httptest"
	"net/url"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/isdelr/warbler-be/internal/auth"
	"github.com/isdelr/warbler-be/internal/database"
	"github.com/isdelr/warbler-be/internal/models"
	"github.com/isdelr/warbler-be/internal/services"
	"github.com/isdelr/warbler-be/web"
)

type mockUserService struct {
	createUserFn        func(username, email, password, imageURL string) (models.User, error)
	authenticateUserFn  func(username, password string) (models.User, error)
	getUserByIDFn       func(id string) (models.User, error)
	getUserByUsernameFn func(username string) (models.User, error)
	searchUsersFn       func(query string) ([]models.User, error)
	updateProfileFn     func(id string, p services.ProfileUpdate) (models.User, error)
	updatePasswordFn    func(id, currentPassword, newPassword string) error
	deleteUserFn        func(id string) error
}

func (m *mockUserService) CreateUser(username, email, password, imageURL string) (models.User, error) {
	if m.createUserFn != nil {
		return m.createUserFn(username, email, password, imageURL)
	}
	return models.User{}, nil
}

func (m *mockUserService) AuthenticateUser(username, password string) (models.User, error) {
	if m.authenticateUserFn != nil {
		return m.authenticateUserFn(username, password)
	}
	return models.User{}, nil
}

func (m *mockUserService) GetUserByID(id string) (models.User, error) {
	if m.getUserByIDFn != nil {
		return m.getUserByIDFn(id)
	}
	return models.User{}, nil
}

func (m *mockUserService) GetUserByUsername(username string) (models.User, error) {
	if m.getUserByUsernameFn != nil {
		return m.getUserByUsernameFn(username)
	}
	return models.User{}, nil
}

func (m *mockUserService) SearchUsers(query string) ([]models.User, error) {
	if m.searchUsersFn != nil {
		return m.searchUsersFn(query)
	}
	return nil, nil
}

func (m *mockUserService) UpdateProfile(id string, p services.ProfileUpdate) (models.User, error) {
	if m.updateProfileFn != nil {
		return m.updateProfileFn(id, p)
	}
	return models.User{}, nil
}

func (m *mockUserService) UpdatePassword(id, currentPassword, newPassword string) error {
	if m.updatePasswordFn != nil {
		return m.updatePasswordFn(id, currentPassword, newPassword)
	}
	return nil
}

func (m *mockUserService) DeleteUser(id string) error {
	if m.deleteUserFn != nil {
		return m.deleteUserFn(id)
	}
	return nil
}

type mockMessageService struct {
	createMessageFn func(userID, text string) (models.Message, error)
	getMessageFn    func(id string) (models.Message, error)
	deleteMessageFn func(id, requesterID string) error
	getFeedFn       func(userID string, limit int) ([]models.Message, error)
	getRecentFn     func(limit int) ([]models.Message, error)
	getByUserFn     func(userID string, limit int) ([]models.Message, error)
	likeMessageFn   func(userID, messageID string) error
	unlikeMessageFn func(userID, messageID string) error
	isLikedFn       func(userID, messageID string) (bool, error)
	getLikedByFn    func(userID string) ([]models.Message, error)
}

func (m *mockMessageService) CreateMessage(userID, text string) (models.Message, error) {
	if m.createMessageFn != nil {
		return m.createMessageFn(userID, text)
	}
	return models.Message{}, nil
}

func (m *mockMessageService) GetMessage(id string) (models.Message, error) {
	if m.getMessageFn != nil {
		return m.getMessageFn(id)
	}
	return models.Message{}, nil
}

func (m *mockMessageService) DeleteMessage(id, requesterID string) error {
	if m.deleteMessageFn != nil {
		return m.deleteMessageFn(id, requesterID)
	}
	return nil
}

func (m *mockMessageService) GetFeed(userID string, limit int) ([]models.Message, error) {
	if m.getFeedFn != nil {
		return m.getFeedFn(userID, limit)
	}
	return nil, nil
}

func (m *mockMessageService) GetRecent(limit int) ([]models.Message, error) {
	if m.getRecentFn != nil {
		return m.getRecentFn(limit)
	}
	return nil, nil
}

func (m *mockMessageService) GetByUser(userID string, limit int) ([]models.Message, error) {
	if m.getByUserFn != nil {
		return m.getByUserFn(userID, limit)
	}
	return nil, nil
}

func (m *mockMessageService) LikeMessage(userID, messageID string) error {
	if m.likeMessageFn != nil {
		return m.likeMessageFn(userID, messageID)
	}
	return nil
}

func (m *mockMessageService) UnlikeMessage(userID, messageID string) error {
	if m.unlikeMessageFn != nil {
		return m.unlikeMessageFn(userID, messageID)
	}
	return nil
}

func (m *mockMessageService) IsLiked(userID, messageID string) (bool, error) {
	if m.isLikedFn != nil {
		return m.isLikedFn(userID, messageID)
	}
	return false, nil
}

func (m *mockMessageService) GetLikedBy(userID string) ([]models.Message, error) {
	if m.getLikedByFn != nil {
		return m.getLikedByFn(userID)
	}
	return nil, nil
}

type mockFollowService struct {
	followFn       func(followerID, followedID string) error
	unfollowFn     func(followerID, followedID string) error
	isFollowingFn  func(followerID, followedID string) (bool, error)
	getFollowingFn func(userID string) ([]models.User, error)
	getFollowersFn func(userID string) ([]models.User, error)
	countsFn       func(userID string) (int, int, error)
}

func (m *mockFollowService) Follow(followerID, followedID string) error {
	if m.followFn != nil {
		return m.followFn(followerID, followedID)
	}
	return nil
}

func (m *mockFollowService) Unfollow(followerID, followedID string) error {
	if m.unfollowFn != nil {
		return m.unfollowFn(followerID, followedID)
	}
	return nil
}

func (m *mockFollowService) IsFollowing(followerID, followedID string) (bool, error) {
	if m.isFollowingFn != nil {
		return m.isFollowingFn(followerID, followedID)
	}
	return false, nil
}

func (m *mockFollowService) GetFollowing(userID string) ([]models.User, error) {
	if m.getFollowingFn != nil {
		return m.getFollowingFn(userID)
	}
	return nil, nil
}

func (m *mockFollowService) GetFollowers(userID string) ([]models.User, error) {
	if m.getFollowersFn != nil {
		return m.getFollowersFn(userID)
	}
	return nil, nil
}

func (m *mockFollowService) Counts(userID string) (int, int, error) {
	if m.countsFn != nil {
		return m.countsFn(userID)
	}
	return 0, 0, nil
}

func newTestRenderer(t *testing.T) *web.Renderer {
	t.Helper()
	renderer, err := web.NewRenderer()
	if err != nil {
		t.Fatalf("failed to parse templates: %v", err)
	}
	return renderer
}

// newTestSessions backs the session service with a real migrated
// sqlite database; identity rows must exist for sessions to reference.
func newTestSessions(t *testing.T) (*auth.SessionService, *sql.DB) {
	t.Helper()

	db, err := database.New(filepath.Join(t.TempDir(), "warbler_test.db"))
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	if err := database.Migrate(db); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}
	return auth.NewSessionService(db, "test-secret", time.Hour, false), db
}

func insertUserRow(t *testing.T, db *sql.DB, user models.User) {
	t.Helper()
	_, err := db.Exec("INSERT INTO users(id, username, email, password_hash) VALUES(?, ?, ?, ?)",
		user.ID, user.Username, user.Email, "x")
	if err != nil {
		t.Fatalf("failed to insert user row: %v", err)
	}
}

func formRequest(target string, form url.Values) *http.Request {
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return req
}

func asUser(req *http.Request, user *models.User) *http.Request {
	return req.WithContext(auth.WithUser(req.Context(), user))
}

func sessionCookie(rec *httptest.ResponseRecorder) *http.Cookie {
	for _, c := range rec.Result().Cookies() {
		if c.Name == auth.CookieName {
			return c
		}
	}
	return nil
}

func TestSignupHandler_Success(t *testing.T) {
	sessions, db := newTestSessions(t)
	alice := models.User{ID: "u1", Username: "alice", Email: "alice@example.com"}

	users := &mockUserService{
		createUserFn: func(username, email, password, imageURL string) (models.User, error) {
			if username != "alice" || email != "alice@example.com" || password != "secret1" {
				t.Fatalf("unexpected signup values: %s %s %s", username, email, password)
			}
			insertUserRow(t, db, alice)
			return alice, nil
		},
	}

	handler := NewAuthHandler(users, sessions, newTestRenderer(t))
	rec := httptest.NewRecorder()
	handler.Signup(rec, formRequest("/signup", url.Values{
		"username": {"alice"},
		"email":    {"alice@example.com"},
		"password": {"secret1"},
	}))

	if rec.Code != http.StatusFound || rec.Header().Get("Location") != "/" {
		t.Fatalf("expected redirect to /, got %d %q", rec.Code, rec.Header().Get("Location"))
	}
	if sessionCookie(rec) == nil {
		t.Fatal("expected a session cookie after signup")
	}
}

func TestSignupHandler_Duplicate(t *testing.T) {
	sessions, _ := newTestSessions(t)
	users := &mockUserService{
		createUserFn: func(username, email, password, imageURL string) (models.User, error) {
			return models.User{}, services.ErrDuplicate
		},
	}

	handler := NewAuthHandler(users, sessions, newTestRenderer(t))
	rec := httptest.NewRecorder()
	handler.Signup(rec, formRequest("/signup", url.Values{
		"username": {"alice"},
		"email":    {"alice@example.com"},
		"password": {"secret1"},
	}))

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "already taken") {
		t.Fatalf("expected the form error in the page, got: %s", rec.Body.String())
	}
	if sessionCookie(rec) != nil {
		t.Fatal("no session may be established on failed signup")
	}
}

func TestLoginHandler_Success(t *testing.T) {
	sessions, db := newTestSessions(t)
	alice := models.User{ID: "u1", Username: "alice", Email: "alice@example.com"}
	insertUserRow(t, db, alice)

	users := &mockUserService{
		authenticateUserFn: func(username, password string) (models.User, error) {
			if username != "alice" || password != "secret1" {
				t.Fatalf("unexpected credentials: %s %s", username, password)
			}
			return alice, nil
		},
	}

	handler := NewAuthHandler(users, sessions, newTestRenderer(t))
	rec := httptest.NewRecorder()
	handler.Login(rec, formRequest("/login", url.Values{
		"username": {"alice"},
		"password": {"secret1"},
	}))

	if rec.Code != http.StatusFound || rec.Header().Get("Location") != "/" {
		t.Fatalf("expected redirect to /, got %d %q", rec.Code, rec.Header().Get("Location"))
	}
	if sessionCookie(rec) == nil {
		t.Fatal("expected a session cookie after login")
	}
}

func TestLoginHandler_InvalidCredentials(t *testing.T) {
	sessions, _ := newTestSessions(t)
	users := &mockUserService{
		authenticateUserFn: func(username, password string) (models.User, error) {
			return models.User{}, services.ErrInvalidCredentials
		},
	}

	handler := NewAuthHandler(users, sessions, newTestRenderer(t))
	rec := httptest.NewRecorder()
	handler.Login(rec, formRequest("/login", url.Values{
		"username": {"alice"},
		"password": {"wrong"},
	}))

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "Invalid credentials") {
		t.Fatalf("expected the form error in the page, got: %s", rec.Body.String())
	}
	if sessionCookie(rec) != nil {
		t.Fatal("no session may be established on failed login")
	}
}

func TestLogoutHandler(t *testing.T) {
	sessions, db := newTestSessions(t)
	alice := models.User{ID: "u1", Username: "alice", Email: "alice@example.com"}
	insertUserRow(t, db, alice)

	loginRec := httptest.NewRecorder()
	if err := sessions.Establish(loginRec, alice); err != nil {
		t.Fatalf("establish failed: %v", err)
	}

	handler := NewAuthHandler(&mockUserService{}, sessions, newTestRenderer(t))
	req := httptest.NewRequest(http.MethodPost, "/logout", nil)
	req.AddCookie(loginRec.Result().Cookies()[0])
	rec := httptest.NewRecorder()
	handler.Logout(rec, req)

	if rec.Code != http.StatusFound || rec.Header().Get("Location") != "/" {
		t.Fatalf("expected redirect to /, got %d %q", rec.Code, rec.Header().Get("Location"))
	}
	cookie := sessionCookie(rec)
	if cookie == nil || cookie.MaxAge != -1 {
		t.Fatalf("expected an expiring session cookie, got %v", cookie)
	}

	// The old cookie no longer resolves on the next request.
	next := httptest.NewRequest(http.MethodGet, "/", nil)
	next.AddCookie(loginRec.Result().Cookies()[0])
	if _, err := sessions.Resolve(next); err == nil {
		t.Fatal("expected anonymous resolution after logout")
	}
}

func TestHomeHandler_Anonymous(t *testing.T) {
	messages := &mockMessageService{
		getRecentFn: func(limit int) ([]models.Message, error) {
			return []models.Message{{ID: "m1", Text: "hello world", AuthorUsername: "alice"}}, nil
		},
	}

	handler := NewMessageHandler(messages, newTestRenderer(t), nil)
	rec := httptest.NewRecorder()
	handler.Home(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	body := rec.Body.String()
	if !strings.Contains(body, "New to Warbler?") {
		t.Errorf("expected the landing pitch for anonymous visitors")
	}
	if !strings.Contains(body, "hello world") {
		t.Errorf("expected the global timeline on the landing page")
	}
}

func TestHomeHandler_LoggedInFeed(t *testing.T) {
	alice := &models.User{ID: "u1", Username: "alice"}
	var requestedID string
	messages := &mockMessageService{
		getFeedFn: func(userID string, limit int) ([]models.Message, error) {
			requestedID = userID
			return []models.Message{{ID: "m1", Text: "from a followed user", AuthorUsername: "bob"}}, nil
		},
	}

	handler := NewMessageHandler(messages, newTestRenderer(t), nil)
	rec := httptest.NewRecorder()
	handler.Home(rec, asUser(httptest.NewRequest(http.MethodGet, "/", nil), alice))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if requestedID != "u1" {
		t.Fatalf("feed requested for wrong user: %q", requestedID)
	}
	if !strings.Contains(rec.Body.String(), "from a followed user") {
		t.Errorf("expected feed messages in the page")
	}
}

func TestCreateMessageHandler(t *testing.T) {
	alice := &models.User{ID: "u1", Username: "alice"}
	messages := &mockMessageService{
		createMessageFn: func(userID, text string) (models.Message, error) {
			if userID != "u1" || text != "hello" {
				t.Fatalf("unexpected create args: %s %q", userID, text)
			}
			return models.Message{ID: "m1", UserID: userID, Text: text}, nil
		},
	}

	handler := NewMessageHandler(messages, newTestRenderer(t), nil)
	rec := httptest.NewRecorder()
	handler.Create(rec, asUser(formRequest("/messages/new", url.Values{"text": {"hello"}}), alice))

	if rec.Code != http.StatusFound || rec.Header().Get("Location") != "/users/u1" {
		t.Fatalf("expected redirect to profile, got %d %q", rec.Code, rec.Header().Get("Location"))
	}
}

func TestCreateMessageHandler_TooLong(t *testing.T) {
	alice := &models.User{ID: "u1", Username: "alice"}
	messages := &mockMessageService{
		createMessageFn: func(userID, text string) (models.Message, error) {
			return models.Message{}, services.ErrTextLength
		},
	}

	handler := NewMessageHandler(messages, newTestRenderer(t), nil)
	rec := httptest.NewRecorder()
	handler.Create(rec, asUser(formRequest("/messages/new", url.Values{"text": {strings.Repeat("x", 200)}}), alice))

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "140") {
		t.Errorf("expected the length error in the page")
	}
}

func TestDeleteMessageHandler_Forbidden(t *testing.T) {
	bob := &models.User{ID: "u2", Username: "bob"}
	messages := &mockMessageService{
		deleteMessageFn: func(id, requesterID string) error {
			return services.ErrForbidden
		},
	}

	r := chi.NewRouter()
	handler := NewMessageHandler(messages, newTestRenderer(t), nil)
	r.Post("/messages/{id}/delete", handler.Delete)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, asUser(formRequest("/messages/m1/delete", url.Values{}), bob))

	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403 for another user's message, got %d", rec.Code)
	}
}

func TestShowMessageHandler_NotFound(t *testing.T) {
	messages := &mockMessageService{
		getMessageFn: func(id string) (models.Message, error) {
			return models.Message{}, services.ErrNotFound
		},
	}

	r := chi.NewRouter()
	handler := NewMessageHandler(messages, newTestRenderer(t), nil)
	r.Get("/messages/{id}", handler.Show)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/messages/missing", nil))

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "Page not found") {
		t.Errorf("expected the rendered 404 page")
	}
}

func TestToggleLikeHandler(t *testing.T) {
	bob := &models.User{ID: "u2", Username: "bob"}

	var liked, unliked bool
	messages := &mockMessageService{
		isLikedFn: func(userID, messageID string) (bool, error) { return true, nil },
		likeMessageFn: func(userID, messageID string) error {
			liked = true
			return nil
		},
		unlikeMessageFn: func(userID, messageID string) error {
			if userID != "u2" || messageID != "m1" {
				t.Fatalf("unexpected unlike args: %s %s", userID, messageID)
			}
			unliked = true
			return nil
		},
	}

	r := chi.NewRouter()
	handler := NewMessageHandler(messages, newTestRenderer(t), nil)
	r.Post("/messages/{id}/like", handler.ToggleLike)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, asUser(formRequest("/messages/m1/like", url.Values{}), bob))

	if rec.Code != http.StatusFound {
		t.Fatalf("expected redirect, got %d", rec.Code)
	}
	if liked || !unliked {
		t.Fatalf("expected an already-liked message to be unliked (liked=%v unliked=%v)", liked, unliked)
	}
}

func TestFollowHandler(t *testing.T) {
	sessions, _ := newTestSessions(t)
	alice := &models.User{ID: "u1", Username: "alice"}

	var gotFollower, gotFollowed string
	follows := &mockFollowService{
		followFn: func(followerID, followedID string) error {
			gotFollower, gotFollowed = followerID, followedID
			return nil
		},
	}

	r := chi.NewRouter()
	handler := NewUserHandler(&mockUserService{}, follows, &mockMessageService{}, sessions, newTestRenderer(t))
	r.Post("/users/follow/{id}", handler.Follow)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, asUser(formRequest("/users/follow/u2", url.Values{}), alice))

	if rec.Code != http.StatusFound || rec.Header().Get("Location") != "/users/u2" {
		t.Fatalf("expected redirect to target profile, got %d %q", rec.Code, rec.Header().Get("Location"))
	}
	if gotFollower != "u1" || gotFollowed != "u2" {
		t.Fatalf("follow called with %s→%s", gotFollower, gotFollowed)
	}
}

func TestUserShowHandler(t *testing.T) {
	sessions, _ := newTestSessions(t)
	bob := models.User{ID: "u2", Username: "bob", Bio: "just a bird"}

	users := &mockUserService{
		getUserByIDFn: func(id string) (models.User, error) {
			if id != "u2" {
				return models.User{}, services.ErrNotFound
			}
			return bob, nil
		},
	}
	messages := &mockMessageService{
		getByUserFn: func(userID string, limit int) ([]models.Message, error) {
			return []models.Message{{ID: "m1", UserID: "u2", Text: "chirp", AuthorUsername: "bob"}}, nil
		},
	}
	follows := &mockFollowService{
		countsFn: func(userID string) (int, int, error) { return 3, 7, nil },
	}

	r := chi.NewRouter()
	handler := NewUserHandler(users, follows, messages, sessions, newTestRenderer(t))
	r.Get("/users/{id}", handler.Show)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/users/u2", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	body := rec.Body.String()
	for _, want := range []string{"@bob", "chirp", "3 Following", "7 Followers"} {
		if !strings.Contains(body, want) {
			t.Errorf("profile page missing %q", want)
		}
	}
}

func TestUserShowHandler_NotFound(t *testing.T) {
	sessions, _ := newTestSessions(t)
	users := &mockUserService{
		getUserByIDFn: func(id string) (models.User, error) {
			return models.User{}, services.ErrNotFound
		},
	}

	r := chi.NewRouter()
	handler := NewUserHandler(users, &mockFollowService{}, &mockMessageService{}, sessions, newTestRenderer(t))
	r.Get("/users/{id}", handler.Show)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/users/ghost", nil))

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}

func TestEditProfileHandler_WrongPassword(t *testing.T) {
	sessions, _ := newTestSessions(t)
	alice := &models.User{ID: "u1", Username: "alice"}

	var updated bool
	users := &mockUserService{
		authenticateUserFn: func(username, password string) (models.User, error) {
			return models.User{}, services.ErrInvalidCredentials
		},
		updateProfileFn: func(id string, p services.ProfileUpdate) (models.User, error) {
			updated = true
			return models.User{}, nil
		},
	}

	handler := NewUserHandler(users, &mockFollowService{}, &mockMessageService{}, sessions, newTestRenderer(t))
	rec := httptest.NewRecorder()
	handler.Edit(rec, asUser(formRequest("/users/profile", url.Values{
		"username": {"alice"},
		"email":    {"alice@example.com"},
		"password": {"wrong"},
	}), alice))

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 for wrong confirmation password, got %d", rec.Code)
	}
	if updated {
		t.Fatal("profile must not change without the correct password")
	}
}

func TestEditProfileHandler_Success(t *testing.T) {
	sessions, _ := newTestSessions(t)
	alice := &models.User{ID: "u1", Username: "alice"}

	users := &mockUserService{
		authenticateUserFn: func(username, password string) (models.User, error) {
			return *alice, nil
		},
		updateProfileFn: func(id string, p services.ProfileUpdate) (models.User, error) {
			if id != "u1" || p.Bio != "new bio" {
				t.Fatalf("unexpected update: %s %+v", id, p)
			}
			return models.User{ID: "u1", Username: p.Username}, nil
		},
	}

	handler := NewUserHandler(users, &mockFollowService{}, &mockMessageService{}, sessions, newTestRenderer(t))
	rec := httptest.NewRecorder()
	handler.Edit(rec, asUser(formRequest("/users/profile", url.Values{
		"username": {"alice"},
		"email":    {"alice@example.com"},
		"bio":      {"new bio"},
		"password": {"secret1"},
	}), alice))

	if rec.Code != http.StatusFound || rec.Header().Get("Location") != "/users/u1" {
		t.Fatalf("expected redirect to profile, got %d %q", rec.Code, rec.Header().Get("Location"))
	}
}
