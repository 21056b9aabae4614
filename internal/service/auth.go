package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/inkwell-app/inkwell-server/internal/apierrors"
	"github.com/inkwell-app/inkwell-server/internal/logger"
	"github.com/inkwell-app/inkwell-server/internal/model"
)

// Auth handles registration, login, and current-user lookup.
type Auth struct {
	userStore    model.UserStore
	tokenManager model.TokenManager
	logger       *logger.Logger
}

func NewAuth(userStore model.UserStore, tokenManager model.TokenManager, logger *logger.Logger) *Auth {
	return &Auth{
		userStore:    userStore,
		tokenManager: tokenManager,
		logger:       logger,
	}
}

// Register creates a new account and returns it with a fresh session
// token. Email and username must both be unused.
func (a *Auth) Register(ctx context.Context, username, email, password string) (model.User, string, error) {
	a.logger.Debug("Auth service: starting user registration", "email", email)

	_, err := a.userStore.GetByEmail(ctx, email)
	if err == nil {
		a.logger.Info("Auth service: email already registered", "email", email)
		return model.User{}, "", apierrors.NewErrEmailTaken(email)
	}
	if !errors.Is(err, model.ErrNotFound) {
		return model.User{}, "", fmt.Errorf("failed to get user by email: %w", err)
	}

	_, err = a.userStore.GetByUsername(ctx, username)
	if err == nil {
		a.logger.Info("Auth service: username already taken", "username", username)
		return model.User{}, "", apierrors.NewErrUsernameTaken(username)
	}
	if !errors.Is(err, model.ErrNotFound) {
		return model.User{}, "", fmt.Errorf("failed to get user by username: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return model.User{}, "", fmt.Errorf("failed to hash password: %w", err)
	}

	now := time.Now()
	user := model.User{
		ID:           model.NewID(),
		Username:     username,
		Email:        email,
		PasswordHash: string(hash),
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	saved, err := a.userStore.Create(ctx, user)
	if err != nil {
		if errors.Is(err, model.ErrConflict) {
			return model.User{}, "", apierrors.NewErrUserExists()
		}
		return model.User{}, "", fmt.Errorf("failed to create user: %w", err)
	}

	tokenString, err := a.tokenManager.Generate(saved.ID)
	if err != nil {
		return model.User{}, "", fmt.Errorf("failed to issue token: %w", err)
	}

	a.logger.Info("Auth service: user registered", "user_id", saved.ID)

	return saved, tokenString, nil
}

// Login verifies credentials and returns the user with a fresh session
// token. Unknown emails and wrong passwords are indistinguishable to
// the caller.
func (a *Auth) Login(ctx context.Context, email, password string) (model.User, string, error) {
	user, err := a.userStore.GetByEmail(ctx, email)
	if errors.Is(err, model.ErrNotFound) {
		return model.User{}, "", apierrors.NewErrInvalidCredentials()
	}
	if err != nil {
		return model.User{}, "", fmt.Errorf("failed to get user by email: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		a.logger.Info("Auth service: password mismatch", "email", email)
		return model.User{}, "", apierrors.NewErrInvalidCredentials()
	}

	tokenString, err := a.tokenManager.Generate(user.ID)
	if err != nil {
		return model.User{}, "", fmt.Errorf("failed to issue token: %w", err)
	}

	a.logger.Info("Auth service: user logged in", "user_id", user.ID)

	return user, tokenString, nil
}

// GetUser returns the account behind an authenticated session.
func (a *Auth) GetUser(ctx context.Context, id model.ID) (model.User, error) {
	user, err := a.userStore.GetByID(ctx, id)
	if errors.Is(err, model.ErrNotFound) {
		return model.User{}, apierrors.NewErrUserNotFound()
	}
	if err != nil {
		return model.User{}, fmt.Errorf("failed to get user by id: %w", err)
	}

	return user, nil
}
