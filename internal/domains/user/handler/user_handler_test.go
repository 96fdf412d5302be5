package handler

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DaSparky/daham-blogsite/internal/config"
	"github.com/DaSparky/daham-blogsite/internal/domains/user"
	"github.com/DaSparky/daham-blogsite/internal/infrastructure/session"
	"github.com/DaSparky/daham-blogsite/internal/shared/middleware"
	"github.com/DaSparky/daham-blogsite/internal/shared/render"
)

// memSessions is an in-memory session.Store for handler tests.
type memSessions struct {
	users   map[string]int64
	flashes map[string][]string
	nextID  int
}

func newMemSessions() *memSessions {
	return &memSessions{users: map[string]int64{}, flashes: map[string][]string{}}
}

func (m *memSessions) Create(ctx context.Context) (string, error) {
	m.nextID++
	token := "tok-" + strconv.Itoa(m.nextID)
	m.users[token] = 0
	return token, nil
}

func (m *memSessions) SetUser(ctx context.Context, token string, userID int64) error {
	if _, ok := m.users[token]; !ok {
		return session.ErrSessionNotFound
	}
	m.users[token] = userID
	return nil
}

func (m *memSessions) ClearUser(ctx context.Context, token string) error {
	return m.SetUser(ctx, token, 0)
}

func (m *memSessions) UserID(ctx context.Context, token string) (int64, error) {
	id, ok := m.users[token]
	if !ok {
		return 0, session.ErrSessionNotFound
	}
	return id, nil
}

func (m *memSessions) Destroy(ctx context.Context, token string) error {
	delete(m.users, token)
	delete(m.flashes, token)
	return nil
}

func (m *memSessions) AddFlash(ctx context.Context, token, message string) error {
	m.flashes[token] = append(m.flashes[token], message)
	return nil
}

func (m *memSessions) PopFlashes(ctx context.Context, token string) ([]string, error) {
	out := m.flashes[token]
	delete(m.flashes, token)
	return out, nil
}

func (m *memSessions) Ping(ctx context.Context) error { return nil }

// stubUserService returns canned outcomes for the auth flows.
type stubUserService struct {
	registered  *user.User
	registerErr error
	loggedIn    *user.User
	loginErr    error
}

func (s *stubUserService) Register(ctx context.Context, form user.RegisterForm) (*user.User, error) {
	if s.registerErr != nil {
		return nil, s.registerErr
	}
	return s.registered, nil
}

func (s *stubUserService) Login(ctx context.Context, form user.LoginForm) (*user.User, error) {
	if s.loginErr != nil {
		return nil, s.loginErr
	}
	return s.loggedIn, nil
}

func (s *stubUserService) GetByID(ctx context.Context, id int64) (*user.User, error) {
	return nil, errors.New("not implemented")
}

func newAuthRouter(store *memSessions, svc user.Service) *gin.Engine {
	gin.SetMode(gin.TestMode)
	renderer := render.New(store, 1)
	h := NewUserHandler(svc, store, renderer)

	r := gin.New()
	r.Use(middleware.Session(store, config.SessionConfig{
		CookieName: "blog_session",
		TTLHours:   1,
	}))
	r.POST("/register", h.Register)
	r.POST("/login", h.Login)
	return r
}

func postForm(r *gin.Engine, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRegisterAutoLogin(t *testing.T) {
	store := newMemSessions()
	r := newAuthRouter(store, &stubUserService{
		registered: &user.User{ID: 7, Name: "Alice", Email: "a@x.com"},
	})

	w := postForm(r, "/register", "name=Alice&email=a%40x.com&password=pass1")

	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/", w.Header().Get("Location"))

	// Registration binds the new identity to the session immediately.
	id, err := store.UserID(context.Background(), "tok-1")
	require.NoError(t, err)
	assert.Equal(t, int64(7), id)
}

func TestRegisterDuplicateEmailRedirectsToLogin(t *testing.T) {
	store := newMemSessions()
	r := newAuthRouter(store, &stubUserService{
		registerErr: user.ErrEmailAlreadyExists,
	})

	w := postForm(r, "/register", "name=Alice&email=a%40x.com&password=pass1")

	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/login", w.Header().Get("Location"))

	flashes, err := store.PopFlashes(context.Background(), "tok-1")
	require.NoError(t, err)
	assert.Equal(t, []string{"This Email is already registered!, Try Login instead."}, flashes)

	// No identity established.
	id, err := store.UserID(context.Background(), "tok-1")
	require.NoError(t, err)
	assert.Equal(t, int64(0), id)
}

func TestLoginWrongPasswordKeepsSessionAnonymous(t *testing.T) {
	store := newMemSessions()
	r := newAuthRouter(store, &stubUserService{
		loginErr: user.ErrWrongPassword,
	})

	w := postForm(r, "/login", "email=a%40x.com&password=wrong")

	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/login", w.Header().Get("Location"))

	flashes, err := store.PopFlashes(context.Background(), "tok-1")
	require.NoError(t, err)
	assert.Equal(t, []string{"Wrong Password, Try again!"}, flashes)

	id, err := store.UserID(context.Background(), "tok-1")
	require.NoError(t, err)
	assert.Equal(t, int64(0), id)
}
