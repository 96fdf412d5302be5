package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/DaSparky/daham-blogsite/internal/domains/user"
)

type fakeUserRepo struct {
	users  map[int64]*user.User
	nextID int64
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[int64]*user.User{}}
}

func (f *fakeUserRepo) Create(ctx context.Context, u *user.User) (int64, error) {
	for _, existing := range f.users {
		if existing.Email == u.Email {
			return 0, user.ErrEmailAlreadyExists
		}
	}
	f.nextID++
	u.ID = f.nextID
	cp := *u
	f.users[u.ID] = &cp
	return u.ID, nil
}

func (f *fakeUserRepo) FindByID(ctx context.Context, id int64) (*user.User, error) {
	u, ok := f.users[id]
	if !ok {
		return nil, user.ErrUserNotFound
	}
	cp := *u
	return &cp, nil
}

func (f *fakeUserRepo) FindByEmail(ctx context.Context, email string) (*user.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, user.ErrUserNotFound
}

func (f *fakeUserRepo) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	_, err := f.FindByEmail(ctx, email)
	return err == nil, nil
}

func TestRegister(t *testing.T) {
	ctx := context.Background()
	repo := newFakeUserRepo()
	svc := NewUserService(repo)

	u, err := svc.Register(ctx, user.RegisterForm{
		Name: "Alice", Email: "a@x.com", Password: "pass1",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), u.ID)
	assert.Equal(t, "Alice", u.Name)

	// Password must be stored hashed, never plaintext.
	assert.NotEqual(t, "pass1", u.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte("pass1")))
}

func TestRegisterDuplicateEmail(t *testing.T) {
	ctx := context.Background()
	repo := newFakeUserRepo()
	svc := NewUserService(repo)

	_, err := svc.Register(ctx, user.RegisterForm{
		Name: "Alice", Email: "a@x.com", Password: "pass1",
	})
	require.NoError(t, err)

	_, err = svc.Register(ctx, user.RegisterForm{
		Name: "Mallory", Email: "a@x.com", Password: "other",
	})
	assert.ErrorIs(t, err, user.ErrEmailAlreadyExists)

	// The duplicate attempt must not create a second row.
	assert.Len(t, repo.users, 1)
}

func TestRegisterValidation(t *testing.T) {
	svc := NewUserService(newFakeUserRepo())

	_, err := svc.Register(context.Background(), user.RegisterForm{
		Name: "Alice", Email: "not-an-email", Password: "pass1",
	})
	assert.Error(t, err)

	_, err = svc.Register(context.Background(), user.RegisterForm{
		Name: "Alice", Email: "a@x.com", Password: "abc", // below minimum length
	})
	assert.Error(t, err)
}

func TestLogin(t *testing.T) {
	ctx := context.Background()
	repo := newFakeUserRepo()
	svc := NewUserService(repo)

	registered, err := svc.Register(ctx, user.RegisterForm{
		Name: "Alice", Email: "a@x.com", Password: "pass1",
	})
	require.NoError(t, err)

	u, err := svc.Login(ctx, user.LoginForm{Email: "a@x.com", Password: "pass1"})
	require.NoError(t, err)
	assert.Equal(t, registered.ID, u.ID)
}

func TestLoginUnknownEmail(t *testing.T) {
	svc := NewUserService(newFakeUserRepo())

	_, err := svc.Login(context.Background(), user.LoginForm{
		Email: "nobody@x.com", Password: "pass1",
	})
	assert.ErrorIs(t, err, user.ErrInvalidEmail)
}

func TestLoginWrongPassword(t *testing.T) {
	ctx := context.Background()
	svc := NewUserService(newFakeUserRepo())

	_, err := svc.Register(ctx, user.RegisterForm{
		Name: "Alice", Email: "a@x.com", Password: "pass1",
	})
	require.NoError(t, err)

	_, err = svc.Login(ctx, user.LoginForm{Email: "a@x.com", Password: "wrong"})
	assert.ErrorIs(t, err, user.ErrWrongPassword)
}
