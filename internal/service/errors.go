package service

import "errors"

var (
	ErrSignupFailed       = errors.New("error while signing up")
	ErrInvalidCredentials = errors.New("user not found or incorrect credentials")

	ErrTokenCreationFailed     = errors.New("token creation failed")
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")

	ErrUserNotFound  = errors.New("user not found")
	ErrUsernameTaken = errors.New("email or username is already taken")
	ErrSelfFollow    = errors.New("cannot follow yourself")
	ErrInvalidUserID = errors.New("invalid user id")

	ErrPostNotFound  = errors.New("post not found")
	ErrInvalidPostID = errors.New("invalid post id")

	ErrVersionIsNotSpecified = errors.New("version is not specified")
)
