package service

import (
	"context"

	"github.com/MKhiriev/go-blog-api/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

type AuthService interface {
	Signup(ctx context.Context, input models.SignupInput) (models.User, error)
	Signin(ctx context.Context, input models.SigninInput) (models.User, error)
	CreateToken(ctx context.Context, user models.User) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

type UserService interface {
	GetProfile(ctx context.Context, caller models.Caller) (models.User, error)
	UpdateProfile(ctx context.Context, caller models.Caller, input models.UpdateUserInput) error

	Follow(ctx context.Context, caller models.Caller, input models.FollowInput) error
	Unfollow(ctx context.Context, caller models.Caller, input models.FollowInput) error
	ListFollowers(ctx context.Context, caller models.Caller) ([]models.Follower, error)
	ListFollowing(ctx context.Context, caller models.Caller) ([]models.Following, error)

	SavePost(ctx context.Context, caller models.Caller, input models.SavePostInput) error
	ListSavedPosts(ctx context.Context, userID string) ([]models.Post, error)
}

type BlogService interface {
	CreatePost(ctx context.Context, caller models.Caller, input models.CreateBlogInput) (string, error)
	UpdatePost(ctx context.Context, caller models.Caller, input models.UpdateBlogInput) error
	GetPost(ctx context.Context, postID string) (models.PostDetails, error)
	ListPosts(ctx context.Context) ([]models.PostSummary, error)
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
	GetBuildInfo(ctx context.Context) models.AppBuildInfo
	CheckHealth(ctx context.Context) error
}
