package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/MKhiriev/go-blog-api/internal/logger"
	"github.com/MKhiriev/go-blog-api/models"
	"github.com/Masterminds/squirrel"
)

// savedPostRepository is the PostgreSQL-backed implementation of
// [SavedPostRepository].
type savedPostRepository struct {
	*DB
	logger *logger.Logger
}

// NewSavedPostRepository constructs a [SavedPostRepository].
func NewSavedPostRepository(db *DB, logger *logger.Logger) SavedPostRepository {
	return &savedPostRepository{
		DB:     db,
		logger: logger,
	}
}

// SavePost bookmarks a post for a user. Saving twice is a no-op.
// A missing post is reported as [ErrPostNotFound].
func (s *savedPostRepository) SavePost(ctx context.Context, saved models.SavedPost) error {
	log := logger.FromContext(ctx)

	if _, err := s.DB.ExecContext(ctx, savePost, saved.UserID, saved.PostID); err != nil {
		log.Err(err).
			Str("func", "savedPostRepository.SavePost").
			Str("user_id", saved.UserID).
			Str("post_id", saved.PostID).
			Str("pg_code", postgresError(err)).
			Msg("failed to save post")

		switch s.classify(err) {
		case ForeignKeyViolation:
			return ErrPostNotFound
		case InvalidTextRepresentation:
			return fmt.Errorf("%w: %w", ErrInvalidIdentifier, err)
		default:
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}
	}

	return nil
}

// ListSavedPosts returns the full records of every post saved by userID.
//
// The saved identifiers and the posts are read in one repeatable-read
// transaction so both statements see the same snapshot.
func (s *savedPostRepository) ListSavedPosts(ctx context.Context, userID string) ([]models.Post, error) {
	log := logger.FromContext(ctx)

	var posts []models.Post
	err := s.WithTx(ctx, &sql.TxOptions{Isolation: sql.LevelRepeatableRead, ReadOnly: true}, func(tx *sql.Tx) error {
		ids, err := savedPostIDs(ctx, tx, userID)
		if err != nil {
			return err
		}
		if len(ids) == 0 {
			posts = []models.Post{}
			return nil
		}

		posts, err = postsByIDs(ctx, tx, ids)
		return err
	})
	if err != nil {
		log.Err(err).
			Str("func", "savedPostRepository.ListSavedPosts").
			Str("user_id", userID).
			Msg("failed to list saved posts")

		if s.classify(err) == InvalidTextRepresentation {
			return nil, fmt.Errorf("%w: %w", ErrInvalidIdentifier, err)
		}
		return nil, err
	}

	return posts, nil
}

func savedPostIDs(ctx context.Context, tx *sql.Tx, userID string) ([]string, error) {
	rows, err := tx.QueryContext(ctx, listSavedPostIDs, userID)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	ids := make([]string, 0)
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return ids, nil
}

func postsByIDs(ctx context.Context, tx *sql.Tx, ids []string) ([]models.Post, error) {
	query, args, err := psql.
		Select(postColumns...).
		From("posts").
		Where(squirrel.Eq{"post_id": ids}).
		OrderBy("created_at DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := tx.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	posts := make([]models.Post, 0, len(ids))
	for rows.Next() {
		var post models.Post
		if err := rows.Scan(
			&post.PostID,
			&post.Title,
			&post.Content,
			&post.ImageURL,
			&post.UserID,
			&post.CreatedAt,
			&post.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		posts = append(posts, post)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return posts, nil
}
