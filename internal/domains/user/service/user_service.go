package service

import (
	"context"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/DaSparky/daham-blogsite/internal/domains/user"
)

type userService struct {
	repo user.Repository
}

func NewUserService(repo user.Repository) user.Service {
	return &userService{repo: repo}
}

// Register creates a new user. The duplicate check runs before the
// insert so "already registered" is an explicit outcome, not a
// constraint-violation surprise.
func (s *userService) Register(ctx context.Context, form user.RegisterForm) (*user.User, error) {
	if err := form.Validate(); err != nil {
		return nil, err
	}

	exists, err := s.repo.ExistsByEmail(ctx, form.Email)
	if err != nil {
		return nil, fmt.Errorf("check email exists: %w", err)
	}
	if exists {
		return nil, user.ErrEmailAlreadyExists
	}

	// bcrypt cost 12: slow enough to hurt brute force, fast enough
	// for an interactive signup.
	hash, err := bcrypt.GenerateFromPassword([]byte(form.Password), 12)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	newUser := &user.User{
		Email:        form.Email,
		Name:         form.Name,
		PasswordHash: string(hash),
	}

	if _, err := s.repo.Create(ctx, newUser); err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}

	return newUser, nil
}

// Login distinguishes unknown email from wrong password because the
// login page surfaces the two as different notices.
func (s *userService) Login(ctx context.Context, form user.LoginForm) (*user.User, error) {
	if err := form.Validate(); err != nil {
		return nil, err
	}

	u, err := s.repo.FindByEmail(ctx, form.Email)
	if err != nil {
		if err == user.ErrUserNotFound {
			return nil, user.ErrInvalidEmail
		}
		return nil, fmt.Errorf("find user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(form.Password)); err != nil {
		return nil, user.ErrWrongPassword
	}

	return u, nil
}

func (s *userService) GetByID(ctx context.Context, id int64) (*user.User, error) {
	return s.repo.FindByID(ctx, id)
}
