package service

import (
	"context"
	"fmt"

	"bookshelf/internal/logger"
	"bookshelf/internal/store"
	"bookshelf/internal/validators"
	"bookshelf/models"
)

// userService is the concrete implementation of UserService. It exposes
// profile reads and partial updates over a UserRepository.
type userService struct {
	userRepository store.UserRepository
	validator      validators.Validator
	logger         *logger.Logger
}

// NewUserService constructs a UserService wired to the given UserRepository.
func NewUserService(userRepository store.UserRepository, logger *logger.Logger) UserService {
	return &userService{
		userRepository: userRepository,
		validator:      validators.NewUserValidator(),
		logger:         logger,
	}
}

// Me returns the profile of the authenticated user.
func (u *userService) Me(ctx context.Context, userID int64) (models.User, error) {
	log := logger.FromContext(ctx)

	foundUser, err := u.userRepository.FindUserByID(ctx, userID)
	if err != nil {
		log.Err(err).Int64("user_id", userID).Msg("user search by id failed")
		return models.User{}, fmt.Errorf("user search by id failed: %w", err)
	}

	return foundUser, nil
}

// Update applies a partial profile update and returns the updated record.
//
// Returns ErrInvalidDataProvided when a provided field fails validation
// (e.g. a malformed email), or a wrapped storage error when the new email
// is already taken by another account.
func (u *userService) Update(ctx context.Context, userID int64, update models.UserUpdate) (models.User, error) {
	log := logger.FromContext(ctx)

	if err := u.validator.Validate(ctx, update); err != nil {
		log.Error().Int64("user_id", userID).Msg("invalid profile update provided")
		return models.User{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	updatedUser, err := u.userRepository.UpdateUser(ctx, userID, update)
	if err != nil {
		log.Err(err).Int64("user_id", userID).Msg("profile update ended with error")
		return models.User{}, fmt.Errorf("profile update ended with error: %w", err)
	}

	return updatedUser, nil
}
