package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/inkwell-app/inkwell-server/internal/apierrors"
	"github.com/inkwell-app/inkwell-server/internal/mocks"
	"github.com/inkwell-app/inkwell-server/internal/model"
	"github.com/inkwell-app/inkwell-server/internal/testutil"
)

func TestAuth_Register_Success(t *testing.T) {
	ctx := context.Background()
	userStore := &mocks.UserStore{}
	tokMan := &mocks.TokenManager{}
	log := testutil.MakeNoopLogger()

	userStore.On("GetByEmail", mock.Anything, "new@user.com").Return(model.User{}, model.ErrNotFound)
	userStore.On("GetByUsername", mock.Anything, "newuser").Return(model.User{}, model.ErrNotFound)
	userStore.On("Create", mock.Anything, mock.MatchedBy(func(u model.User) bool {
		return u.Username == "newuser" && u.Email == "new@user.com" && !u.ID.IsZero()
	})).Return(func(_ context.Context, u model.User) model.User { return u }, nil)
	tokMan.On("Generate", mock.Anything).Return("token123", nil)

	a := NewAuth(userStore, tokMan, log)

	user, token, err := a.Register(ctx, "newuser", "new@user.com", "password1")
	require.NoError(t, err)
	assert.Equal(t, "token123", token)
	assert.Equal(t, "newuser", user.Username)
	assert.False(t, user.ID.IsZero())

	// stored hash must verify against the original password
	require.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("password1")))
	userStore.AssertExpectations(t)
}

func TestAuth_Register_EmailTaken(t *testing.T) {
	ctx := context.Background()
	userStore := &mocks.UserStore{}
	tokMan := &mocks.TokenManager{}
	log := testutil.MakeNoopLogger()

	userStore.On("GetByEmail", mock.Anything, "taken@user.com").Return(model.User{ID: model.NewID()}, nil)

	a := NewAuth(userStore, tokMan, log)

	_, _, err := a.Register(ctx, "newuser", "taken@user.com", "password1")
	require.Error(t, err)

	var apiErr *apierrors.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, 400, apiErr.HTTPCode)
	assert.Contains(t, apiErr.Message, "already registered")
	userStore.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestAuth_Register_UsernameTaken(t *testing.T) {
	ctx := context.Background()
	userStore := &mocks.UserStore{}
	tokMan := &mocks.TokenManager{}
	log := testutil.MakeNoopLogger()

	userStore.On("GetByEmail", mock.Anything, "new@user.com").Return(model.User{}, model.ErrNotFound)
	userStore.On("GetByUsername", mock.Anything, "taken").Return(model.User{ID: model.NewID()}, nil)

	a := NewAuth(userStore, tokMan, log)

	_, _, err := a.Register(ctx, "taken", "new@user.com", "password1")
	require.Error(t, err)

	var apiErr *apierrors.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, 400, apiErr.HTTPCode)
	assert.Contains(t, apiErr.Message, "already taken")
}

func TestAuth_Register_ConflictOnInsert(t *testing.T) {
	ctx := context.Background()
	userStore := &mocks.UserStore{}
	tokMan := &mocks.TokenManager{}
	log := testutil.MakeNoopLogger()

	userStore.On("GetByEmail", mock.Anything, mock.Anything).Return(model.User{}, model.ErrNotFound)
	userStore.On("GetByUsername", mock.Anything, mock.Anything).Return(model.User{}, model.ErrNotFound)
	userStore.On("Create", mock.Anything, mock.Anything).Return(model.User{}, model.ErrConflict)

	a := NewAuth(userStore, tokMan, log)

	_, _, err := a.Register(ctx, "racer", "race@user.com", "password1")
	require.Error(t, err)

	var apiErr *apierrors.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, 400, apiErr.HTTPCode)
}

func TestAuth_Login_Success(t *testing.T) {
	ctx := context.Background()
	userStore := &mocks.UserStore{}
	tokMan := &mocks.TokenManager{}
	log := testutil.MakeNoopLogger()

	hash, err := bcrypt.GenerateFromPassword([]byte("password1"), bcrypt.MinCost)
	require.NoError(t, err)

	userID := model.NewID()
	userStore.On("GetByEmail", mock.Anything, "user@example.com").Return(model.User{
		ID:           userID,
		Email:        "user@example.com",
		PasswordHash: string(hash),
	}, nil)
	tokMan.On("Generate", userID).Return("token123", nil)

	a := NewAuth(userStore, tokMan, log)

	user, token, err := a.Login(ctx, "user@example.com", "password1")
	require.NoError(t, err)
	assert.Equal(t, "token123", token)
	assert.Equal(t, userID, user.ID)
}

func TestAuth_Login_UnknownEmail(t *testing.T) {
	ctx := context.Background()
	userStore := &mocks.UserStore{}
	tokMan := &mocks.TokenManager{}
	log := testutil.MakeNoopLogger()

	userStore.On("GetByEmail", mock.Anything, "ghost@user.com").Return(model.User{}, model.ErrNotFound)

	a := NewAuth(userStore, tokMan, log)

	_, _, err := a.Login(ctx, "ghost@user.com", "password1")
	require.Error(t, err)

	var apiErr *apierrors.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, 401, apiErr.HTTPCode)
	assert.Equal(t, "invalid credentials", apiErr.Message)
}

func TestAuth_Login_WrongPassword(t *testing.T) {
	ctx := context.Background()
	userStore := &mocks.UserStore{}
	tokMan := &mocks.TokenManager{}
	log := testutil.MakeNoopLogger()

	hash, err := bcrypt.GenerateFromPassword([]byte("correct"), bcrypt.MinCost)
	require.NoError(t, err)

	userStore.On("GetByEmail", mock.Anything, "user@example.com").Return(model.User{
		ID:           model.NewID(),
		PasswordHash: string(hash),
	}, nil)

	a := NewAuth(userStore, tokMan, log)

	_, _, err = a.Login(ctx, "user@example.com", "wrong")
	require.Error(t, err)

	var apiErr *apierrors.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, 401, apiErr.HTTPCode)
	assert.Equal(t, "invalid credentials", apiErr.Message)
	tokMan.AssertNotCalled(t, "Generate", mock.Anything)
}

func TestAuth_GetUser_Success(t *testing.T) {
	ctx := context.Background()
	userStore := &mocks.UserStore{}
	tokMan := &mocks.TokenManager{}
	log := testutil.MakeNoopLogger()

	userID := model.NewID()
	userStore.On("GetByID", mock.Anything, userID).Return(model.User{ID: userID, Username: "me"}, nil)

	a := NewAuth(userStore, tokMan, log)

	user, err := a.GetUser(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, "me", user.Username)
}

func TestAuth_GetUser_NotFound(t *testing.T) {
	ctx := context.Background()
	userStore := &mocks.UserStore{}
	tokMan := &mocks.TokenManager{}
	log := testutil.MakeNoopLogger()

	userStore.On("GetByID", mock.Anything, mock.Anything).Return(model.User{}, model.ErrNotFound)

	a := NewAuth(userStore, tokMan, log)

	_, err := a.GetUser(ctx, model.NewID())
	require.Error(t, err)

	var apiErr *apierrors.APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, 401, apiErr.HTTPCode)
}

func TestAuth_GetUser_StorageError(t *testing.T) {
	ctx := context.Background()
	userStore := &mocks.UserStore{}
	tokMan := &mocks.TokenManager{}
	log := testutil.MakeNoopLogger()

	userStore.On("GetByID", mock.Anything, mock.Anything).Return(model.User{}, errors.New("connection reset"))

	a := NewAuth(userStore, tokMan, log)

	_, err := a.GetUser(ctx, model.NewID())
	require.Error(t, err)

	var apiErr *apierrors.APIError
	assert.False(t, errors.As(err, &apiErr))
}
