// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"

	"savor/internal/domain/entity"
	domainerrors "savor/internal/domain/errors"
	"savor/internal/domain/repository"
	"savor/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// userRepository implements the repository.UserRepository interface using GORM.
type userRepository struct {
	db *gorm.DB
}

// NewUserRepository is the constructor for userRepository.
// It returns the repository as a repository.UserRepository interface, adhering to dependency inversion.
func NewUserRepository(db *gorm.DB) repository.UserRepository {
	return &userRepository{db: db}
}

// FindByEmail retrieves a single user by their email address.
func (repo *userRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	var userM model.UserModel
	if err := repo.db.WithContext(ctx).Where("email = ?", email).First(&userM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user by email")
	}

	return toUserDomain(&userM), nil
}

// FindByID retrieves a single user by their unique ID.
func (repo *userRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	var userM model.UserModel
	if err := repo.db.WithContext(ctx).Where("id = ?", id).First(&userM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user by id")
	}

	return toUserDomain(&userM), nil
}

// Create persists a new user entity to the database.
func (repo *userRepository) Create(ctx context.Context, user *entity.User) error {
	userM := fromUserDomain(user)

	if err := repo.db.WithContext(ctx).Create(userM).Error; err != nil {
		// Convert PostgreSQL errors to domain errors
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrUserAlreadyExists.WrapMessage("email already exists")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrUserCreationFailed.WrapMessage("missing required user information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create user")
	}

	// Update the user entity with the generated ID and timestamps
	user.ID = userM.ID
	user.CreatedAt = userM.CreatedAt
	user.UpdatedAt = userM.UpdatedAt

	return nil
}

// UpdateField overwrites a single credential column and returns the updated
// record. Only the password-hash and refresh-token-hash columns are accepted.
func (repo *userRepository) UpdateField(ctx context.Context, id uuid.UUID, field string, value *string) (*entity.User, error) {
	switch field {
	case repository.FieldPasswordHash, repository.FieldRefreshTokenHash:
	default:
		return nil, errors.Errorf("unsupported user field: %s", field)
	}

	result := repo.db.WithContext(ctx).
		Model(&model.UserModel{}).
		Where("id = ?", id).
		Update(field, value)
	if result.Error != nil {
		return nil, errors.Wrapf(result.Error, "failed to update user %s", field)
	}
	if result.RowsAffected == 0 {
		return nil, repository.ErrUserNotFound
	}

	return repo.FindByID(ctx, id)
}

// UpdateProfile applies a partial profile edit and returns the updated record.
func (repo *userRepository) UpdateProfile(ctx context.Context, id uuid.UUID, patch repository.UserProfilePatch) (*entity.User, error) {
	updates := map[string]any{}
	if patch.UserName != nil {
		updates["user_name"] = *patch.UserName
	}
	if patch.Email != nil {
		updates["email"] = *patch.Email
	}

	if len(updates) == 0 {
		return repo.FindByID(ctx, id)
	}

	result := repo.db.WithContext(ctx).
		Model(&model.UserModel{}).
		Where("id = ?", id).
		Updates(updates)
	if result.Error != nil {
		if isUniqueConstraintViolation(result.Error) {
			return nil, domainerrors.ErrUserAlreadyExists.WrapMessage("email already exists")
		}

		return nil, errors.Wrap(result.Error, "failed to update user profile")
	}
	if result.RowsAffected == 0 {
		return nil, repository.ErrUserNotFound
	}

	return repo.FindByID(ctx, id)
}

// --- Mapper Functions ---
// These helpers convert between domain entities and persistence models.

// toUserDomain converts a GORM UserModel to a domain User entity.
func toUserDomain(data *model.UserModel) *entity.User {
	if data == nil {
		return nil
	}

	return &entity.User{
		ID:               data.ID,
		Email:            data.Email,
		UserName:         data.UserName,
		PasswordHash:     data.PasswordHash,
		RefreshTokenHash: data.RefreshTokenHash,
		Role:             entity.Role(data.Role),
		CreatedAt:        data.CreatedAt,
		UpdatedAt:        data.UpdatedAt,
	}
}

// fromUserDomain converts a domain User entity to a GORM UserModel for persistence.
func fromUserDomain(data *entity.User) *model.UserModel {
	if data == nil {
		return nil
	}

	return &model.UserModel{
		ID:               data.ID,
		Email:            data.Email,
		UserName:         data.UserName,
		PasswordHash:     data.PasswordHash,
		RefreshTokenHash: data.RefreshTokenHash,
		Role:             data.Role.String(),
	}
}
