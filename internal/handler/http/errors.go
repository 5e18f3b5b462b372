// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Sentinel errors used by the authentication middleware when parsing the
// "Authorization" HTTP header. Callers can match against them with [errors.Is].
var (
	// ErrEmptyAuthorizationHeader is returned by the auth middleware when the
	// incoming request does not include an "Authorization" header at all.
	ErrEmptyAuthorizationHeader = errors.New("empty `Authorization` header")

	// ErrNoCallerInContext is logged when a protected handler runs without
	// an identity bound by the auth middleware.
	ErrNoCallerInContext = errors.New("no caller identity in request context")

	// ErrNoUserIDForSavedPosts is returned when the saved posts listing gets
	// neither a user_id query parameter nor a valid bearer token.
	ErrNoUserIDForSavedPosts = errors.New("user_id is required")
)

const (
	msgUnauthorized       = "unauthorized"
	msgNotFound           = "not found"
	msgInternalError      = "an error occurred"
	msgFetchingPostFailed = "error while fetching blog post"
)
