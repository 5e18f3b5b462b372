package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-blog-api/internal/validators"
	"github.com/MKhiriev/go-blog-api/models"
)

// AuthServiceWrapper, UserServiceWrapper and BlogServiceWrapper define
// middleware composition for the corresponding services. Implementations
// wrap an existing service to add behavior such as input validation.
type AuthServiceWrapper interface {
	Wrap(AuthService) AuthService
}

type UserServiceWrapper interface {
	Wrap(UserService) UserService
}

type BlogServiceWrapper interface {
	Wrap(BlogService) BlogService
}

// AuthValidationService checks signup and signin payloads before they reach
// the wrapped AuthService.
type AuthValidationService struct {
	inner     AuthService
	validator validators.Validator
}

func NewAuthValidationService(validator validators.Validator) AuthServiceWrapper {
	return &AuthValidationService{validator: validator}
}

func (v *AuthValidationService) Signup(ctx context.Context, input models.SignupInput) (models.User, error) {
	if err := v.validator.Validate(ctx, input); err != nil {
		return models.User{}, fmt.Errorf("error validating signup input: %w", err)
	}
	return v.inner.Signup(ctx, input)
}

func (v *AuthValidationService) Signin(ctx context.Context, input models.SigninInput) (models.User, error) {
	if err := v.validator.Validate(ctx, input); err != nil {
		return models.User{}, fmt.Errorf("error validating signin input: %w", err)
	}
	return v.inner.Signin(ctx, input)
}

func (v *AuthValidationService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	return v.inner.CreateToken(ctx, user)
}

func (v *AuthValidationService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	return v.inner.ParseToken(ctx, tokenString)
}

func (v *AuthValidationService) Wrap(inner AuthService) AuthService {
	v.inner = inner
	return v
}

// UserValidationService checks profile, follow and save payloads.
type UserValidationService struct {
	inner     UserService
	validator validators.Validator
}

func NewUserValidationService(validator validators.Validator) UserServiceWrapper {
	return &UserValidationService{validator: validator}
}

func (v *UserValidationService) GetProfile(ctx context.Context, caller models.Caller) (models.User, error) {
	return v.inner.GetProfile(ctx, caller)
}

func (v *UserValidationService) UpdateProfile(ctx context.Context, caller models.Caller, input models.UpdateUserInput) error {
	if err := v.validator.Validate(ctx, input); err != nil {
		return fmt.Errorf("error validating user update: %w", err)
	}
	return v.inner.UpdateProfile(ctx, caller, input)
}

func (v *UserValidationService) Follow(ctx context.Context, caller models.Caller, input models.FollowInput) error {
	if err := v.validator.Validate(ctx, input); err != nil {
		return fmt.Errorf("error validating follow input: %w", err)
	}
	return v.inner.Follow(ctx, caller, input)
}

func (v *UserValidationService) Unfollow(ctx context.Context, caller models.Caller, input models.FollowInput) error {
	if err := v.validator.Validate(ctx, input); err != nil {
		return fmt.Errorf("error validating unfollow input: %w", err)
	}
	return v.inner.Unfollow(ctx, caller, input)
}

func (v *UserValidationService) ListFollowers(ctx context.Context, caller models.Caller) ([]models.Follower, error) {
	return v.inner.ListFollowers(ctx, caller)
}

func (v *UserValidationService) ListFollowing(ctx context.Context, caller models.Caller) ([]models.Following, error) {
	return v.inner.ListFollowing(ctx, caller)
}

func (v *UserValidationService) SavePost(ctx context.Context, caller models.Caller, input models.SavePostInput) error {
	if err := v.validator.Validate(ctx, input); err != nil {
		return fmt.Errorf("error validating saved post input: %w", err)
	}
	return v.inner.SavePost(ctx, caller, input)
}

func (v *UserValidationService) ListSavedPosts(ctx context.Context, userID string) ([]models.Post, error) {
	return v.inner.ListSavedPosts(ctx, userID)
}

func (v *UserValidationService) Wrap(inner UserService) UserService {
	v.inner = inner
	return v
}

// BlogValidationService checks post payloads.
type BlogValidationService struct {
	inner     BlogService
	validator validators.Validator
}

func NewBlogValidationService(validator validators.Validator) BlogServiceWrapper {
	return &BlogValidationService{validator: validator}
}

func (v *BlogValidationService) CreatePost(ctx context.Context, caller models.Caller, input models.CreateBlogInput) (string, error) {
	if err := v.validator.Validate(ctx, input); err != nil {
		return "", fmt.Errorf("error validating post before saving: %w", err)
	}
	return v.inner.CreatePost(ctx, caller, input)
}

func (v *BlogValidationService) UpdatePost(ctx context.Context, caller models.Caller, input models.UpdateBlogInput) error {
	if err := v.validator.Validate(ctx, input); err != nil {
		return fmt.Errorf("error validating post update: %w", err)
	}
	return v.inner.UpdatePost(ctx, caller, input)
}

func (v *BlogValidationService) GetPost(ctx context.Context, postID string) (models.PostDetails, error) {
	return v.inner.GetPost(ctx, postID)
}

func (v *BlogValidationService) ListPosts(ctx context.Context) ([]models.PostSummary, error) {
	return v.inner.ListPosts(ctx)
}

func (v *BlogValidationService) Wrap(inner BlogService) BlogService {
	v.inner = inner
	return v
}
