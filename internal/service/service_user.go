package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-blog-api/internal/logger"
	"github.com/MKhiriev/go-blog-api/internal/store"
	"github.com/MKhiriev/go-blog-api/internal/utils"
	"github.com/MKhiriev/go-blog-api/models"
)

type userService struct {
	userRepository      store.UserRepository
	followRepository    store.FollowRepository
	savedPostRepository store.SavedPostRepository

	hasher *utils.PasswordHasher

	logger *logger.Logger
}

func NewUserService(
	userRepository store.UserRepository,
	followRepository store.FollowRepository,
	savedPostRepository store.SavedPostRepository,
	hasher *utils.PasswordHasher,
	logger *logger.Logger,
) UserService {
	return &userService{
		userRepository:      userRepository,
		followRepository:    followRepository,
		savedPostRepository: savedPostRepository,
		hasher:              hasher,
		logger:              logger,
	}
}

// GetProfile returns the caller's own account. The password hash never
// leaves the service.
func (u *userService) GetProfile(ctx context.Context, caller models.Caller) (models.User, error) {
	user, err := u.userRepository.FindUserByID(ctx, caller.UserID)
	if err != nil {
		if errors.Is(err, store.ErrNoUserWasFound) {
			return models.User{}, fmt.Errorf("%w: %w", ErrUserNotFound, err)
		}
		logger.FromContext(ctx).Err(err).
			Str("func", "userService.GetProfile").
			Str("user_id", caller.UserID).
			Msg("error getting user profile")
		return models.User{}, err
	}

	user.Password = ""
	return user, nil
}

// UpdateProfile applies the provided fields to the caller's account.
// A new password is re-hashed before it is stored.
func (u *userService) UpdateProfile(ctx context.Context, caller models.Caller, input models.UpdateUserInput) error {
	log := logger.FromContext(ctx)

	update := input.ToUserUpdate(caller.UserID)
	if update.Password != nil {
		hash, err := u.hasher.Hash(*update.Password)
		if err != nil {
			log.Err(err).Str("func", "userService.UpdateProfile").Msg("password hashing failed")
			return err
		}
		update.Password = &hash
	}

	if err := u.userRepository.UpdateUser(ctx, update); err != nil {
		switch {
		case errors.Is(err, store.ErrUserAlreadyExists):
			return fmt.Errorf("%w: %w", ErrUsernameTaken, err)
		case errors.Is(err, store.ErrNoUserWasFound):
			return fmt.Errorf("%w: %w", ErrUserNotFound, err)
		default:
			log.Err(err).Str("func", "userService.UpdateProfile").Str("user_id", caller.UserID).Msg("error updating user")
			return err
		}
	}

	return nil
}

// Follow makes the caller follow the user with the given username.
// Following someone twice is not an error.
func (u *userService) Follow(ctx context.Context, caller models.Caller, input models.FollowInput) error {
	target, err := u.resolveUsername(ctx, input.Username)
	if err != nil {
		return err
	}

	if target.UserID == caller.UserID {
		return ErrSelfFollow
	}

	err = u.followRepository.CreateFollow(ctx, models.Follow{
		FollowerUserID:  caller.UserID,
		FollowingUserID: target.UserID,
	})
	switch {
	case err == nil:
		return nil
	case errors.Is(err, store.ErrSelfFollow):
		return ErrSelfFollow
	case errors.Is(err, store.ErrNoUserWasFound):
		return fmt.Errorf("%w: %w", ErrUserNotFound, err)
	default:
		return err
	}
}

// Unfollow removes the caller's edge to the user with the given username.
// Unfollowing someone who is not followed is not an error.
func (u *userService) Unfollow(ctx context.Context, caller models.Caller, input models.FollowInput) error {
	log := logger.FromContext(ctx)

	target, err := u.resolveUsername(ctx, input.Username)
	if err != nil {
		return err
	}

	removed, err := u.followRepository.DeleteFollow(ctx, models.Follow{
		FollowerUserID:  caller.UserID,
		FollowingUserID: target.UserID,
	})
	if err != nil {
		log.Err(err).Str("func", "userService.Unfollow").Str("user_id", caller.UserID).Msg("error deleting follow")
		return err
	}

	log.Debug().Int64("removed", removed).Str("following_user_id", target.UserID).Msg("unfollowed")
	return nil
}

func (u *userService) ListFollowers(ctx context.Context, caller models.Caller) ([]models.Follower, error) {
	return u.followRepository.ListFollowers(ctx, caller.UserID)
}

func (u *userService) ListFollowing(ctx context.Context, caller models.Caller) ([]models.Following, error) {
	return u.followRepository.ListFollowing(ctx, caller.UserID)
}

// SavePost bookmarks a post for the caller.
func (u *userService) SavePost(ctx context.Context, caller models.Caller, input models.SavePostInput) error {
	err := u.savedPostRepository.SavePost(ctx, models.SavedPost{UserID: caller.UserID, PostID: input.PostID})
	switch {
	case err == nil:
		return nil
	case errors.Is(err, store.ErrPostNotFound):
		return ErrPostNotFound
	case errors.Is(err, store.ErrInvalidIdentifier):
		return fmt.Errorf("%w: %w", ErrInvalidPostID, err)
	default:
		return err
	}
}

// ListSavedPosts returns the posts bookmarked by userID.
func (u *userService) ListSavedPosts(ctx context.Context, userID string) ([]models.Post, error) {
	if !utils.IsValidUUID(userID) {
		return nil, ErrInvalidUserID
	}

	posts, err := u.savedPostRepository.ListSavedPosts(ctx, userID)
	if err != nil {
		if errors.Is(err, store.ErrInvalidIdentifier) {
			return nil, fmt.Errorf("%w: %w", ErrInvalidUserID, err)
		}
		return nil, err
	}

	return posts, nil
}

func (u *userService) resolveUsername(ctx context.Context, username string) (models.User, error) {
	target, err := u.userRepository.FindUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, store.ErrNoUserWasFound) {
			return models.User{}, fmt.Errorf("%w: %w", ErrUserNotFound, err)
		}
		logger.FromContext(ctx).Err(err).
			Str("func", "userService.resolveUsername").
			Str("username", username).
			Msg("error resolving username")
		return models.User{}, err
	}

	return target, nil
}
