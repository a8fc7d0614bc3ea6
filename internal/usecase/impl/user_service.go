package impl

import (
	"context"
	"log/slog"

	deliverycontext "savor/internal/delivery/context"
	"savor/internal/domain/entity"
	domainerrors "savor/internal/domain/errors"
	"savor/internal/domain/repository"
	"savor/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// userService implements the UserUsecase interface.
type userService struct {
	userRepo repository.UserRepository
	logger   *slog.Logger
}

// NewUserService is the constructor for userService.
func NewUserService(userRepo repository.UserRepository, logger *slog.Logger) usecase.UserUsecase {
	return &userService{
		userRepo: userRepo,
		logger:   logger,
	}
}

func (srv *userService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// UpdateProfile applies a partial edit to the user's profile. Credential
// fields are out of reach here; the password flow owns those.
func (srv *userService) UpdateProfile(ctx context.Context, userID uuid.UUID, update usecase.ProfileUpdate) (*entity.User, error) {
	srv.log(ctx).Info("Updating profile", slog.Any("user_id", userID))

	if _, err := srv.userRepo.FindByID(ctx, userID); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound.WrapMessage("user not found")
		}

		return nil, errors.Wrap(err, "failed to find user")
	}

	updated, err := srv.userRepo.UpdateProfile(ctx, userID, repository.UserProfilePatch{
		UserName: update.UserName,
		Email:    update.Email,
	})
	if err != nil {
		srv.log(ctx).Error("Failed to update profile", slog.Any("error", err), slog.Any("user_id", userID))

		return nil, errors.Wrap(err, "failed to update profile")
	}

	srv.log(ctx).Info("Profile updated", slog.Any("user_id", userID))

	return updated.Sanitized(), nil
}

// FetchUserByEmail looks up a user by email. The returned record never
// carries secret material.
func (srv *userService) FetchUserByEmail(ctx context.Context, email string) (*entity.User, error) {
	user, err := srv.userRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound.WrapMessage("no account for email")
		}

		return nil, errors.Wrap(err, "failed to find user by email")
	}

	return user.Sanitized(), nil
}
