package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-blog-api/internal/logger"
	"github.com/MKhiriev/go-blog-api/models"
)

// followRepository is the PostgreSQL-backed implementation of [FollowRepository].
type followRepository struct {
	*DB
	logger *logger.Logger
}

// NewFollowRepository constructs a [FollowRepository].
func NewFollowRepository(db *DB, logger *logger.Logger) FollowRepository {
	return &followRepository{
		DB:     db,
		logger: logger,
	}
}

// CreateFollow inserts the edge. Re-following is a no-op thanks to the
// composite primary key; a self edge is rejected with [ErrSelfFollow].
func (f *followRepository) CreateFollow(ctx context.Context, follow models.Follow) error {
	log := logger.FromContext(ctx)

	if _, err := f.DB.ExecContext(ctx, createFollow, follow.FollowerUserID, follow.FollowingUserID); err != nil {
		log.Err(err).
			Str("func", "followRepository.CreateFollow").
			Str("follower_user_id", follow.FollowerUserID).
			Str("following_user_id", follow.FollowingUserID).
			Str("pg_code", postgresError(err)).
			Msg("failed to create follow")

		switch f.classify(err) {
		case CheckViolation:
			return ErrSelfFollow
		case ForeignKeyViolation:
			return fmt.Errorf("%w: %w", ErrNoUserWasFound, err)
		default:
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}
	}

	return nil
}

// DeleteFollow removes the edge and reports how many rows went away.
func (f *followRepository) DeleteFollow(ctx context.Context, follow models.Follow) (int64, error) {
	log := logger.FromContext(ctx)

	res, err := f.DB.ExecContext(ctx, deleteFollow, follow.FollowerUserID, follow.FollowingUserID)
	if err != nil {
		log.Err(err).
			Str("func", "followRepository.DeleteFollow").
			Str("follower_user_id", follow.FollowerUserID).
			Str("following_user_id", follow.FollowingUserID).
			Msg("failed to delete follow")
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return affected, nil
}

// ListFollowers returns the users following userID.
func (f *followRepository) ListFollowers(ctx context.Context, userID string) ([]models.Follower, error) {
	ids, err := f.listIDs(ctx, "followRepository.ListFollowers", listFollowers, userID)
	if err != nil {
		return nil, err
	}

	followers := make([]models.Follower, 0, len(ids))
	for _, id := range ids {
		followers = append(followers, models.Follower{FollowerUserID: id})
	}
	return followers, nil
}

// ListFollowing returns the users followed by userID.
func (f *followRepository) ListFollowing(ctx context.Context, userID string) ([]models.Following, error) {
	ids, err := f.listIDs(ctx, "followRepository.ListFollowing", listFollowing, userID)
	if err != nil {
		return nil, err
	}

	following := make([]models.Following, 0, len(ids))
	for _, id := range ids {
		following = append(following, models.Following{FollowingUserID: id})
	}
	return following, nil
}

func (f *followRepository) listIDs(ctx context.Context, funcName, query, userID string) ([]string, error) {
	log := logger.FromContext(ctx)

	rows, err := f.DB.QueryContext(ctx, query, userID)
	if err != nil {
		log.Err(err).Str("func", funcName).Str("user_id", userID).Msg("failed to execute query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	ids := make([]string, 0)
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			log.Err(err).Str("func", funcName).Msg("failed to scan row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		ids = append(ids, id)
	}

	if err := rows.Err(); err != nil {
		log.Err(err).Str("func", funcName).Msg("rows iteration error")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return ids, nil
}
