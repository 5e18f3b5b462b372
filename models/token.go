package models

import (
	"github.com/golang-jwt/jwt/v5"
)

// TokenClaims is the claim set of a session token.
//
// UserID mirrors the "sub" claim under the "user_id" key so that clients
// decoding the payload find the identifier where they expect it.
type TokenClaims struct {
	UserID string `json:"user_id"`
	jwt.RegisteredClaims
}

// Token wraps a JWT token with convenience accessors for authentication flows.
//
// SignedString holds the compact serialized form of the token
// (header.payload.signature) ready to be returned to the client.
//
// UserID is the identifier extracted from a verified token. It is only
// populated by parsing, never trusted from an unverified source.
type Token struct {
	// Token is the underlying JWT token used for signing and claim inspection.
	*jwt.Token `json:"-"`

	// SignedString is the compact JWS representation of the token.
	SignedString string `json:"-"`

	// UserID is the owner identifier extracted from the "sub" claim.
	UserID string `json:"-"`
}

// String returns the compact JWS serialization of the token.
// It implements the [fmt.Stringer] interface.
func (t *Token) String() string {
	return t.SignedString
}

// Caller is the identity of the authenticated user performing a request.
// It is resolved once by the auth middleware and handed to handlers explicitly.
type Caller struct {
	UserID string
}
