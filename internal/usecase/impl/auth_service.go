// Package impl contains the application-specific business rules implementations.
package impl

import (
	"context"
	"log/slog"

	deliverycontext "savor/internal/delivery/context"
	"savor/internal/domain/entity"
	domainerrors "savor/internal/domain/errors"
	"savor/internal/domain/repository"
	"savor/internal/domain/service"
	"savor/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// authService implements the AuthUsecase interface.
type authService struct {
	userRepo repository.UserRepository
	hasher   service.SecretHasher
	tokens   service.TokenService
	logger   *slog.Logger
}

// NewAuthService is the constructor for authService.
func NewAuthService(
	userRepo repository.UserRepository,
	hasher service.SecretHasher,
	tokens service.TokenService,
	logger *slog.Logger,
) usecase.AuthUsecase {
	return &authService{
		userRepo: userRepo,
		hasher:   hasher,
		tokens:   tokens,
		logger:   logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *authService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// SignUp registers a new account with a USER role.
func (srv *authService) SignUp(ctx context.Context, input usecase.SignUpInput) (*usecase.CreatedUserSummary, error) {
	srv.log(ctx).Info("Signing up user", slog.String("email", input.Email))

	if input.Password != input.ConfirmPassword {
		return nil, domainerrors.ErrInvalidInput.WrapMessage("passwords do not match")
	}

	// Reject duplicate emails before touching the hasher.
	_, err := srv.userRepo.FindByEmail(ctx, input.Email)
	if err == nil {
		return nil, domainerrors.ErrUserAlreadyExists.WrapMessage("email already registered")
	}
	if !errors.Is(err, repository.ErrUserNotFound) {
		srv.log(ctx).Error("Failed to check existing user", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to check existing user")
	}

	passwordHash, err := srv.hasher.Hash(input.Password)
	if err != nil {
		return nil, errors.Wrap(err, "failed to hash password")
	}

	// The initial refresh-token hash is seeded with the password hash. It can
	// never verify against a real refresh token, so a fresh account still has
	// to log in before it can refresh.
	initialRtHash := passwordHash
	user := &entity.User{
		Email:            input.Email,
		UserName:         input.UserName,
		PasswordHash:     passwordHash,
		RefreshTokenHash: &initialRtHash,
		Role:             entity.RoleUser,
	}

	if err := srv.userRepo.Create(ctx, user); err != nil {
		srv.log(ctx).Error("Failed to create user", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to create user")
	}

	srv.log(ctx).Info("User signed up", slog.Any("user_id", user.ID))

	return &usecase.CreatedUserSummary{
		UserName: user.UserName,
		Email:    user.Email,
		Role:     user.Role.String(),
	}, nil
}

// LogIn verifies the credentials and starts a session by persisting the hash
// of the freshly issued refresh token.
func (srv *authService) LogIn(ctx context.Context, email, password string) (*usecase.LogInOutput, error) {
	srv.log(ctx).Info("Logging in user", slog.String("email", email))

	user, err := srv.userRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound.WrapMessage("no account for email")
		}

		return nil, errors.Wrap(err, "failed to find user")
	}

	if !srv.hasher.Verify(user.PasswordHash, password) {
		return nil, domainerrors.ErrForbidden.WrapMessage("password mismatch")
	}

	tokens, err := srv.tokens.GenerateTokenPair(user.ID, user.Email)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate tokens")
	}

	updated, err := srv.storeRefreshTokenHash(ctx, user.ID, tokens.RefreshToken)
	if err != nil {
		srv.log(ctx).Error("Failed to store refresh token hash", slog.Any("error", err), slog.Any("user_id", user.ID))

		return nil, err
	}

	srv.log(ctx).Info("User logged in", slog.Any("user_id", user.ID))

	return &usecase.LogInOutput{
		Tokens: tokens,
		User:   updated.Sanitized(),
	}, nil
}

// RefreshTokens rotates the token pair and returns it together with the
// sanitized user record. Every failure in this flow, from a missing user to a
// stale hash, is collapsed into the opaque InternalError so callers learn
// nothing about why the refresh was rejected.
func (srv *authService) RefreshTokens(ctx context.Context, userID uuid.UUID, refreshToken string) (*usecase.RefreshOutput, error) {
	srv.log(ctx).Info("Refreshing tokens", slog.Any("user_id", userID))

	output, err := srv.rotateTokens(ctx, userID, refreshToken)
	if err != nil {
		srv.log(ctx).Warn("Refresh rejected", slog.Any("error", err), slog.Any("user_id", userID))

		return nil, domainerrors.ErrInternalError.WrapMessage("refresh failed")
	}

	srv.log(ctx).Info("Tokens refreshed", slog.Any("user_id", userID))

	return output, nil
}

func (srv *authService) rotateTokens(ctx context.Context, userID uuid.UUID, refreshToken string) (*usecase.RefreshOutput, error) {
	user, err := srv.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find user")
	}

	if user.RefreshTokenHash == nil {
		return nil, errors.New("no active session")
	}
	if !srv.hasher.Verify(*user.RefreshTokenHash, refreshToken) {
		return nil, errors.New("refresh token mismatch")
	}

	tokens, err := srv.tokens.GenerateTokenPair(user.ID, user.Email)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate tokens")
	}

	updated, err := srv.storeRefreshTokenHash(ctx, user.ID, tokens.RefreshToken)
	if err != nil {
		return nil, err
	}

	return &usecase.RefreshOutput{
		Tokens: tokens,
		User:   updated.Sanitized(),
	}, nil
}

// UpdatePassword replaces the stored password hash after verifying the old
// password. An unknown user maps to Forbidden, not NotFound, so the endpoint
// never confirms which IDs exist. The refresh-token hash is left untouched.
func (srv *authService) UpdatePassword(ctx context.Context, userID uuid.UUID, oldPassword, newPassword string) error {
	srv.log(ctx).Info("Updating password", slog.Any("user_id", userID))

	user, err := srv.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return domainerrors.ErrForbidden.WrapMessage("access denied")
		}

		return errors.Wrap(err, "failed to find user")
	}

	if !srv.hasher.Verify(user.PasswordHash, oldPassword) {
		return domainerrors.ErrForbidden.WrapMessage("password mismatch")
	}

	newHash, err := srv.hasher.Hash(newPassword)
	if err != nil {
		return errors.Wrap(err, "failed to hash new password")
	}

	if _, err := srv.userRepo.UpdateField(ctx, user.ID, repository.FieldPasswordHash, &newHash); err != nil {
		srv.log(ctx).Error("Failed to persist new password hash", slog.Any("error", err), slog.Any("user_id", userID))

		return errors.Wrap(err, "failed to update password")
	}

	srv.log(ctx).Info("Password updated", slog.Any("user_id", userID))

	return nil
}

// LogOut clears the stored refresh-token hash. A user who is already logged
// out gets a success without a write.
func (srv *authService) LogOut(ctx context.Context, userID uuid.UUID) error {
	srv.log(ctx).Info("Logging out user", slog.Any("user_id", userID))

	user, err := srv.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return domainerrors.ErrUserNotFound.WrapMessage("user not found")
		}

		return errors.Wrap(err, "failed to find user")
	}

	if !user.HasActiveSession() {
		return nil
	}

	if _, err := srv.userRepo.UpdateField(ctx, user.ID, repository.FieldRefreshTokenHash, nil); err != nil {
		srv.log(ctx).Error("Failed to clear refresh token hash", slog.Any("error", err), slog.Any("user_id", userID))

		return errors.Wrap(err, "failed to log out")
	}

	srv.log(ctx).Info("User logged out", slog.Any("user_id", userID))

	return nil
}

// storeRefreshTokenHash hashes the raw refresh token and overwrites the stored
// hash, returning the updated record.
func (srv *authService) storeRefreshTokenHash(ctx context.Context, userID uuid.UUID, refreshToken string) (*entity.User, error) {
	rtHash, err := srv.hasher.Hash(refreshToken)
	if err != nil {
		return nil, errors.Wrap(err, "failed to hash refresh token")
	}

	updated, err := srv.userRepo.UpdateField(ctx, userID, repository.FieldRefreshTokenHash, &rtHash)
	if err != nil {
		return nil, errors.Wrap(err, "failed to store refresh token hash")
	}

	return updated, nil
}
