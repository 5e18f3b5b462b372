package store

import (
	"context"

	"github.com/MKhiriev/go-blog-api/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// UserRepository persists user accounts.
type UserRepository interface {
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	FindUserByEmail(ctx context.Context, email string) (models.User, error)
	FindUserByID(ctx context.Context, userID string) (models.User, error)
	FindUserByUsername(ctx context.Context, username string) (models.User, error)
	UpdateUser(ctx context.Context, update models.UserUpdate) error
}

// PostRepository persists blog posts.
type PostRepository interface {
	CreatePost(ctx context.Context, post models.Post) (models.Post, error)
	// UpdatePost returns the number of rows matched by post id and owner.
	UpdatePost(ctx context.Context, update models.PostUpdate) (int64, error)
	GetPostByID(ctx context.Context, postID string) (models.PostDetails, error)
	ListPosts(ctx context.Context) ([]models.PostSummary, error)
}

// FollowRepository persists follow edges between users.
type FollowRepository interface {
	CreateFollow(ctx context.Context, follow models.Follow) error
	// DeleteFollow returns the number of removed edges.
	DeleteFollow(ctx context.Context, follow models.Follow) (int64, error)
	ListFollowers(ctx context.Context, userID string) ([]models.Follower, error)
	ListFollowing(ctx context.Context, userID string) ([]models.Following, error)
}

// SavedPostRepository persists posts bookmarked by users.
type SavedPostRepository interface {
	SavePost(ctx context.Context, saved models.SavedPost) error
	ListSavedPosts(ctx context.Context, userID string) ([]models.Post, error)
}

// HealthChecker reports whether the storage backend is reachable.
type HealthChecker interface {
	PingContext(ctx context.Context) error
}
