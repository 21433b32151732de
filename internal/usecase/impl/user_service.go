package impl

import (
	"context"
	"log/slog"

	deliverycontext "moviedb/internal/delivery/context"
	"moviedb/internal/domain/entity"
	domainerrors "moviedb/internal/domain/errors"
	"moviedb/internal/domain/repository"
	"moviedb/internal/domain/service"
	"moviedb/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// userService implements the UserUsecase interface.
type userService struct {
	userRepo     repository.UserRepository
	hasher       service.PasswordHasher
	tokenService service.TokenService
	logger       *slog.Logger
}

// UserServiceParams holds dependencies for userService, injected by Fx.
type UserServiceParams struct {
	fx.In

	UserRepo     repository.UserRepository
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	Logger       *slog.Logger
}

// NewUserService is the constructor for userService. It receives all dependencies as interfaces.
func NewUserService(params UserServiceParams) usecase.UserUsecase {
	return &userService{
		userRepo:     params.UserRepo,
		hasher:       params.Hasher,
		tokenService: params.TokenService,
		logger:       params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *userService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Register hashes the password and persists a new user record.
// The plaintext never leaves this function.
func (srv *userService) Register(ctx context.Context, input *usecase.RegisterInput) error {
	srv.log(ctx).Debug("Starting registration", slog.String("email", input.Email))

	hashedPassword, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.log(ctx).Error("Failed to hash password during registration", slog.Any("error", err))

		return errors.Wrap(domainerrors.ErrInternal, "failed to hash password during registration")
	}

	newUser := &entity.User{
		Email:        input.Email,
		Gender:       input.Gender,
		PasswordHash: hashedPassword,
		Role:         input.Role,
	}

	if err := srv.userRepo.Create(ctx, newUser); err != nil {
		srv.log(ctx).Error("Failed to create user during registration", slog.String("email", input.Email), slog.Any("error", err))

		return errors.Wrap(err, "failed to create user during registration")
	}

	srv.log(ctx).Debug("Registration completed", slog.Any("userID", newUser.ID))

	return nil
}

// Login verifies credentials and issues a signed bearer token.
func (srv *userService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error) {
	srv.log(ctx).Debug("Starting user login", slog.String("email", input.Email))

	user, err := srv.userRepo.FindByEmail(ctx, input.Email)
	if err != nil {
		srv.log(ctx).Warn("Login failed", slog.String("email", input.Email), slog.Any("error", err))

		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, errors.Wrap(domainerrors.ErrUserNotFound, "login failed")
		}

		return nil, errors.Wrap(err, "failed to load user for login")
	}

	// Check password outside any transaction (bcrypt is CPU-bound).
	if !srv.hasher.Check(input.Password, user.PasswordHash) {
		srv.log(ctx).Warn("Login failed", slog.String("email", input.Email), slog.Any("error", domainerrors.ErrInvalidPassword))

		return nil, errors.Wrap(domainerrors.ErrInvalidPassword, "login failed")
	}

	token, err := srv.tokenService.GenerateToken(user.Email, user.Role)
	if err != nil {
		srv.log(ctx).Error("Failed to generate token during login", slog.String("email", input.Email), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to generate token during login")
	}

	srv.log(ctx).Debug("User logged in successfully", slog.Any("userID", user.ID))

	return &usecase.LoginOutput{Token: token}, nil
}

// ListUsers returns one page of users without their password hashes.
func (srv *userService) ListUsers(ctx context.Context, page, limit int) ([]*usecase.UserOutput, error) {
	offset, limit := normalizePage(page, limit)

	users, err := srv.userRepo.List(ctx, offset, limit)
	if err != nil {
		srv.log(ctx).Error("Failed to list users", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to list users")
	}

	outputs := make([]*usecase.UserOutput, 0, len(users))
	for _, user := range users {
		outputs = append(outputs, &usecase.UserOutput{
			ID:        user.ID,
			Email:     user.Email,
			Gender:    user.Gender,
			Role:      user.Role,
			CreatedAt: user.CreatedAt,
		})
	}

	return outputs, nil
}
