// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter is a Go client for the blog HTTP API.
//
// [NewHTTPBlogAdapter] returns a [BlogAPI] backed by resty. Non-2xx
// responses are mapped to the sentinel errors of this package so callers can
// use [errors.Is] (e.g. [ErrInvalidInput] for 411, [ErrConflict] for 409).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-blog-api/models"
)

// BlogAPI is the client side of the blog HTTP API.
//
// Signup and Signin store the returned token; every authenticated call
// sends it as a bearer token afterwards.
type BlogAPI interface {
	SetToken(token string)
	Token() string

	Signup(ctx context.Context, input models.SignupInput) (models.AuthResponse, error)
	Signin(ctx context.Context, input models.SigninInput) (models.AuthResponse, error)

	GetProfile(ctx context.Context) (models.User, error)
	UpdateProfile(ctx context.Context, input models.UpdateUserInput) error

	Follow(ctx context.Context, username string) error
	Unfollow(ctx context.Context, username string) error
	ListFollowers(ctx context.Context) ([]models.Follower, error)
	ListFollowing(ctx context.Context) ([]models.Following, error)

	// SavePost bookmarks postID for the current user.
	SavePost(ctx context.Context, postID string) error

	// ListSavedPosts lists the posts saved by userID. An empty userID lists
	// the posts of the token owner.
	ListSavedPosts(ctx context.Context, userID string) ([]models.Post, error)

	CreatePost(ctx context.Context, input models.CreateBlogInput) (string, error)
	UpdatePost(ctx context.Context, input models.UpdateBlogInput) error
	GetPost(ctx context.Context, postID string) (models.PostDetails, error)
	ListPosts(ctx context.Context) ([]models.PostSummary, error)

	Version(ctx context.Context) (string, error)
	Health(ctx context.Context) error
}
