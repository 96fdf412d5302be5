package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DaSparky/daham-blogsite/internal/domains/user"
	"github.com/DaSparky/daham-blogsite/internal/infrastructure/session"
)

// memSessions is an in-memory session.Store for middleware tests.
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

// stubUserService serves GetByID from a fixed map.
type stubUserService struct {
	users map[int64]*user.User
}

func (s *stubUserService) Register(ctx context.Context, form user.RegisterForm) (*user.User, error) {
	return nil, errors.New("not implemented")
}

func (s *stubUserService) Login(ctx context.Context, form user.LoginForm) (*user.User, error) {
	return nil, errors.New("not implemented")
}

func (s *stubUserService) GetByID(ctx context.Context, id int64) (*user.User, error) {
	u, ok := s.users[id]
	if !ok {
		return nil, user.ErrUserNotFound
	}
	return u, nil
}

func seedIdentity(u *user.User) gin.HandlerFunc {
	return func(c *gin.Context) {
		if u != nil {
			c.Set(ctxCurrentUser, u)
		}
		c.Next()
	}
}

func TestRequireAdmin(t *testing.T) {
	gin.SetMode(gin.TestMode)
	const adminID = int64(1)

	cases := []struct {
		name string
		user *user.User
		want int
	}{
		{name: "anonymous", user: nil, want: http.StatusForbidden},
		{name: "non-admin", user: &user.User{ID: 2}, want: http.StatusForbidden},
		{name: "admin", user: &user.User{ID: 1}, want: http.StatusOK},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := gin.New()
			r.GET("/new-post", seedIdentity(tc.user), RequireAdmin(adminID), func(c *gin.Context) {
				c.String(http.StatusOK, "ok")
			})

			w := httptest.NewRecorder()
			r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/new-post", nil))
			assert.Equal(t, tc.want, w.Code)
		})
	}
}

func TestRequireAuthRedirectsAnonymous(t *testing.T) {
	gin.SetMode(gin.TestMode)
	store := newMemSessions()
	token, err := store.Create(context.Background())
	require.NoError(t, err)

	r := gin.New()
	r.GET("/contact", func(c *gin.Context) {
		c.Set(ctxSessionToken, token)
		c.Next()
	}, RequireAuth(store), func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/contact", nil))

	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/login", w.Header().Get("Location"))

	flashes, err := store.PopFlashes(context.Background(), token)
	require.NoError(t, err)
	assert.NotEmpty(t, flashes)
}

func TestRequireAuthPassesAuthenticated(t *testing.T) {
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.GET("/contact", seedIdentity(&user.User{ID: 5}), RequireAuth(newMemSessions()), func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/contact", nil))
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestLoadUser(t *testing.T) {
	gin.SetMode(gin.TestMode)
	store := newMemSessions()
	users := &stubUserService{users: map[int64]*user.User{
		5: {ID: 5, Name: "Alice", Email: "a@x.com"},
	}}

	token, err := store.Create(context.Background())
	require.NoError(t, err)
	require.NoError(t, store.SetUser(context.Background(), token, 5))

	var seen *user.User
	r := gin.New()
	r.GET("/", func(c *gin.Context) {
		c.Set(ctxSessionToken, token)
		c.Next()
	}, LoadUser(store, users), func(c *gin.Context) {
		seen = CurrentUser(c)
		c.String(http.StatusOK, "ok")
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

	require.NotNil(t, seen)
	assert.Equal(t, "Alice", seen.Name)
}

func TestLoadUserStaleSession(t *testing.T) {
	gin.SetMode(gin.TestMode)
	store := newMemSessions()
	users := &stubUserService{users: map[int64]*user.User{}}

	token, err := store.Create(context.Background())
	require.NoError(t, err)
	// Session points at a user that no longer exists.
	require.NoError(t, store.SetUser(context.Background(), token, 99))

	var seen *user.User
	r := gin.New()
	r.GET("/", func(c *gin.Context) {
		c.Set(ctxSessionToken, token)
		c.Next()
	}, LoadUser(store, users), func(c *gin.Context) {
		seen = CurrentUser(c)
		c.String(http.StatusOK, "ok")
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Nil(t, seen)

	// Stale binding is detached so the next request skips the lookup.
	id, err := store.UserID(context.Background(), token)
	require.NoError(t, err)
	assert.Equal(t, int64(0), id)
}
