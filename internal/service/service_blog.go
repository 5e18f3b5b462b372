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

type blogService struct {
	postRepository store.PostRepository
	idGenerator    *utils.UUIDGenerator

	logger *logger.Logger
}

func NewBlogService(postRepository store.PostRepository, idGenerator *utils.UUIDGenerator, logger *logger.Logger) BlogService {
	return &blogService{
		postRepository: postRepository,
		idGenerator:    idGenerator,
		logger:         logger,
	}
}

// CreatePost stores a post owned by the caller and returns its id.
func (b *blogService) CreatePost(ctx context.Context, caller models.Caller, input models.CreateBlogInput) (string, error) {
	post, err := b.postRepository.CreatePost(ctx, models.Post{
		PostID:   b.idGenerator.Generate(),
		Title:    input.Title,
		Content:  input.Content,
		ImageURL: input.ImageURL,
		UserID:   caller.UserID,
	})
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "blogService.CreatePost").
			Str("user_id", caller.UserID).
			Msg("error creating post")
		return "", err
	}

	return post.PostID, nil
}

// UpdatePost changes title and content of a post owned by the caller.
//
// A post that does not exist or belongs to someone else is left untouched
// and no error is returned.
func (b *blogService) UpdatePost(ctx context.Context, caller models.Caller, input models.UpdateBlogInput) error {
	log := logger.FromContext(ctx)

	affected, err := b.postRepository.UpdatePost(ctx, models.PostUpdate{
		PostID:  input.ID,
		UserID:  caller.UserID,
		Title:   input.Title,
		Content: input.Content,
	})
	if err != nil {
		if errors.Is(err, store.ErrInvalidIdentifier) {
			return fmt.Errorf("%w: %w", ErrInvalidPostID, err)
		}
		log.Err(err).Str("func", "blogService.UpdatePost").Str("post_id", input.ID).Msg("error updating post")
		return err
	}

	if affected == 0 {
		log.Debug().
			Str("post_id", input.ID).
			Str("user_id", caller.UserID).
			Msg("post update matched no rows")
	}

	return nil
}

// GetPost returns a single post with its author's username.
func (b *blogService) GetPost(ctx context.Context, postID string) (models.PostDetails, error) {
	if !utils.IsValidUUID(postID) {
		return models.PostDetails{}, ErrInvalidPostID
	}

	post, err := b.postRepository.GetPostByID(ctx, postID)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrPostNotFound):
			return models.PostDetails{}, ErrPostNotFound
		case errors.Is(err, store.ErrInvalidIdentifier):
			return models.PostDetails{}, fmt.Errorf("%w: %w", ErrInvalidPostID, err)
		default:
			logger.FromContext(ctx).Err(err).Str("func", "blogService.GetPost").Str("post_id", postID).Msg("error getting post")
			return models.PostDetails{}, err
		}
	}

	return post, nil
}

// ListPosts returns every post, newest first.
func (b *blogService) ListPosts(ctx context.Context) ([]models.PostSummary, error) {
	return b.postRepository.ListPosts(ctx)
}
