package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-blog-api/internal/logger"
	"github.com/MKhiriev/go-blog-api/models"
)

// postRepository is the PostgreSQL-backed implementation of [PostRepository].
type postRepository struct {
	*DB
	logger *logger.Logger
}

// NewPostRepository constructs a [PostRepository] backed by the provided
// database connection and logger.
func NewPostRepository(db *DB, logger *logger.Logger) PostRepository {
	return &postRepository{
		DB:     db,
		logger: logger,
	}
}

// CreatePost inserts a post and returns it with its timestamps.
func (p *postRepository) CreatePost(ctx context.Context, post models.Post) (models.Post, error) {
	log := logger.FromContext(ctx)

	row := p.DB.QueryRowContext(ctx, createPost, post.PostID, post.Title, post.Content, post.ImageURL, post.UserID)

	var created models.Post
	err := row.Scan(
		&created.PostID,
		&created.Title,
		&created.Content,
		&created.ImageURL,
		&created.UserID,
		&created.CreatedAt,
		&created.UpdatedAt,
	)
	if err != nil {
		log.Err(err).
			Str("func", "postRepository.CreatePost").
			Str("user_id", post.UserID).
			Str("pg_code", postgresError(err)).
			Msg("failed to create post")

		if p.classify(err) == ForeignKeyViolation {
			return models.Post{}, fmt.Errorf("%w: %w", ErrNoUserWasFound, err)
		}
		return models.Post{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return created, nil
}

// UpdatePost sets title and content of the post matched by both post id and
// owner, bumping updated_at. A post owned by someone else is simply not
// matched; the caller decides what zero affected rows means.
func (p *postRepository) UpdatePost(ctx context.Context, update models.PostUpdate) (int64, error) {
	log := logger.FromContext(ctx)

	res, err := p.DB.ExecContext(ctx, updatePost, update.Title, update.Content, update.PostID, update.UserID)
	if err != nil {
		log.Err(err).
			Str("func", "postRepository.UpdatePost").
			Str("post_id", update.PostID).
			Str("pg_code", postgresError(err)).
			Msg("failed to update post")

		if p.classify(err) == InvalidTextRepresentation {
			return 0, fmt.Errorf("%w: %w", ErrInvalidIdentifier, err)
		}
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return affected, nil
}

// GetPostByID returns the single post view joined with its author's username.
//
// Error handling:
//   - no row → [ErrPostNotFound].
//   - malformed id (22P02) → [ErrInvalidIdentifier].
//   - anything else → wrapped [ErrExecutingQuery].
func (p *postRepository) GetPostByID(ctx context.Context, postID string) (models.PostDetails, error) {
	log := logger.FromContext(ctx)

	var post models.PostDetails
	err := p.DB.QueryRowContext(ctx, getPostByID, postID).Scan(
		&post.PostID,
		&post.Title,
		&post.Content,
		&post.User.Username,
		&post.CreatedAt,
	)
	switch {
	case err == nil:
		return post, nil
	case errors.Is(err, sql.ErrNoRows):
		return models.PostDetails{}, ErrPostNotFound
	case p.classify(err) == InvalidTextRepresentation:
		return models.PostDetails{}, fmt.Errorf("%w: %w", ErrInvalidIdentifier, err)
	default:
		log.Err(err).
			Str("func", "postRepository.GetPostByID").
			Str("post_id", postID).
			Msg("failed to get post")
		return models.PostDetails{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
}

// ListPosts returns every post joined with its author's display name,
// newest first.
func (p *postRepository) ListPosts(ctx context.Context) ([]models.PostSummary, error) {
	log := logger.FromContext(ctx)

	rows, err := p.DB.QueryContext(ctx, listPosts)
	if err != nil {
		log.Err(err).Str("func", "postRepository.ListPosts").Msg("failed to execute query for listing posts")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	posts := make([]models.PostSummary, 0, 50)
	for rows.Next() {
		var post models.PostSummary
		if err := rows.Scan(
			&post.Content,
			&post.Title,
			&post.PostID,
			&post.User.Name,
			&post.CreatedAt,
			&post.UpdatedAt,
		); err != nil {
			log.Err(err).Str("func", "postRepository.ListPosts").Msg("failed to scan post row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		posts = append(posts, post)
	}

	if err := rows.Err(); err != nil {
		log.Err(err).Str("func", "postRepository.ListPosts").Msg("rows iteration error")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return posts, nil
}
