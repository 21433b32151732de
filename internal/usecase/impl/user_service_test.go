package impl

import (
	"context"
	"testing"

	"moviedb/internal/domain/entity"
	domainerrors "moviedb/internal/domain/errors"
	"moviedb/internal/domain/repository"
	"moviedb/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestUserService_Register(t *testing.T) {
	f := createTestUserService(t)
	ctx := context.Background()

	f.hasher.On("Hash", "secret").Return("$2a$10$hashed", nil)
	f.userRepo.On("Create", mock.Anything, mock.MatchedBy(func(user *entity.User) bool {
		// The persisted record carries the hash, never the plaintext.
		return user.Email == "a@b.com" &&
			user.Gender == "male" &&
			user.Role == "user" &&
			user.PasswordHash == "$2a$10$hashed"
	})).Return(nil)

	err := f.service.Register(ctx, &usecase.RegisterInput{
		Email:    "a@b.com",
		Gender:   "male",
		Password: "secret",
		Role:     "user",
	})
	assert.NoError(t, err)
}

func TestUserService_Register_HashFailure(t *testing.T) {
	f := createTestUserService(t)

	f.hasher.On("Hash", "secret").Return("", errors.New("bcrypt failure"))

	err := f.service.Register(context.Background(), &usecase.RegisterInput{
		Email:    "a@b.com",
		Password: "secret",
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrInternal))
}

func TestUserService_Register_PersistenceFailure(t *testing.T) {
	f := createTestUserService(t)

	f.hasher.On("Hash", "secret").Return("$2a$10$hashed", nil)
	f.userRepo.On("Create", mock.Anything, mock.Anything).
		Return(domainerrors.NewDatabaseExecuteError(errors.New("connection refused"), "failed to create user"))

	err := f.service.Register(context.Background(), &usecase.RegisterInput{
		Email:    "a@b.com",
		Password: "secret",
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrInternal))
}

func TestUserService_Login(t *testing.T) {
	f := createTestUserService(t)

	stored := &entity.User{
		Email:        "a@b.com",
		PasswordHash: "$2a$10$hashed",
		Role:         "admin",
	}
	f.userRepo.On("FindByEmail", mock.Anything, "a@b.com").Return(stored, nil)
	f.hasher.On("Check", "secret", "$2a$10$hashed").Return(true)
	f.tokenService.On("GenerateToken", "a@b.com", "admin").Return("signed-token", nil)

	output, err := f.service.Login(context.Background(), &usecase.LoginInput{
		Email:    "a@b.com",
		Password: "secret",
	})
	require.NoError(t, err)
	assert.Equal(t, "signed-token", output.Token)
}

func TestUserService_Login_UserNotFound(t *testing.T) {
	f := createTestUserService(t)

	f.userRepo.On("FindByEmail", mock.Anything, "missing@b.com").
		Return(nil, repository.ErrUserNotFound)

	output, err := f.service.Login(context.Background(), &usecase.LoginInput{
		Email:    "missing@b.com",
		Password: "secret",
	})
	require.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrUserNotFound))
}

func TestUserService_Login_WrongPassword(t *testing.T) {
	f := createTestUserService(t)

	stored := &entity.User{Email: "a@b.com", PasswordHash: "$2a$10$hashed"}
	f.userRepo.On("FindByEmail", mock.Anything, "a@b.com").Return(stored, nil)
	f.hasher.On("Check", "wrong", "$2a$10$hashed").Return(false)

	// No GenerateToken expectation: a failed comparison must never issue a token.
	output, err := f.service.Login(context.Background(), &usecase.LoginInput{
		Email:    "a@b.com",
		Password: "wrong",
	})
	require.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidPassword))
}

func TestUserService_ListUsers(t *testing.T) {
	f := createTestUserService(t)

	stored := []*entity.User{
		{Email: "a@b.com", Gender: "male", Role: "user", PasswordHash: "$2a$10$one"},
		{Email: "c@d.com", Gender: "female", Role: "admin", PasswordHash: "$2a$10$two"},
	}
	f.userRepo.On("List", mock.Anything, 10, 10).Return(stored, nil)

	outputs, err := f.service.ListUsers(context.Background(), 2, 10)
	require.NoError(t, err)
	require.Len(t, outputs, 2)
	assert.Equal(t, "a@b.com", outputs[0].Email)
	assert.Equal(t, "admin", outputs[1].Role)
}

func TestUserService_ListUsers_DefaultsForInvalidPage(t *testing.T) {
	f := createTestUserService(t)

	f.userRepo.On("List", mock.Anything, 0, 10).Return([]*entity.User{}, nil)

	outputs, err := f.service.ListUsers(context.Background(), 0, 0)
	require.NoError(t, err)
	assert.Empty(t, outputs)
}
