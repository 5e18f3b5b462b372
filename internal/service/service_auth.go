package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-blog-api/internal/config"
	"github.com/MKhiriev/go-blog-api/internal/logger"
	"github.com/MKhiriev/go-blog-api/internal/store"
	"github.com/MKhiriev/go-blog-api/internal/utils"
	"github.com/MKhiriev/go-blog-api/models"
)

// signinPlaceholderPassword is the source of authService.dummyHash.
const signinPlaceholderPassword = "go-blog-api signin placeholder"

type passwordHasher interface {
	Hash(password string) (string, error)
	Compare(hash, password string) error
}

// authService is the concrete implementation of AuthService.
// It handles account creation, credential verification and the JWT
// lifecycle, using a UserRepository for persistence and bcrypt for
// password hashing.
type authService struct {
	userRepository store.UserRepository

	hasher      passwordHasher
	idGenerator *utils.UUIDGenerator

	// dummyHash is a bcrypt hash at the configured cost, compared on the
	// unknown email path of Signin.
	dummyHash string

	// tokenSignKey is the HMAC secret used to sign and verify JWT tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued JWT.
	// Tokens whose issuer does not match this value are rejected during parsing.
	tokenIssuer string

	tokenDuration time.Duration

	logger *logger.Logger
}

// NewAuthService constructs a new AuthService wired to the given UserRepository
// and populated with token parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only after
// construction.
func NewAuthService(
	userRepository store.UserRepository,
	hasher *utils.PasswordHasher,
	idGenerator *utils.UUIDGenerator,
	cfg config.App,
	logger *logger.Logger,
) AuthService {
	dummyHash, err := hasher.Hash(signinPlaceholderPassword)
	if err != nil {
		logger.Err(err).Str("func", "NewAuthService").Msg("error hashing signin placeholder")
	}

	return &authService{
		userRepository: userRepository,
		hasher:         hasher,
		idGenerator:    idGenerator,
		dummyHash:      dummyHash,
		tokenSignKey:   cfg.TokenSignKey,
		tokenIssuer:    cfg.TokenIssuer,
		tokenDuration:  cfg.TokenDuration,
		logger:         logger,
	}
}

// Signup creates a new account with a freshly generated id and a bcrypt
// hash of the supplied password.
//
// Any failure, including a taken email or username, is reported as
// ErrSignupFailed wrapping the cause.
func (a *authService) Signup(ctx context.Context, input models.SignupInput) (models.User, error) {
	log := logger.FromContext(ctx)

	hash, err := a.hasher.Hash(input.Password)
	if err != nil {
		log.Err(err).Str("func", "authService.Signup").Msg("password hashing failed")
		return models.User{}, fmt.Errorf("%w: %w", ErrSignupFailed, err)
	}

	user := models.User{
		UserID:   a.idGenerator.Generate(),
		Email:    input.Email,
		Username: input.Username,
		Password: hash,
		Name:     input.Name,
	}

	created, err := a.userRepository.CreateUser(ctx, user)
	if err != nil {
		log.Err(err).
			Str("func", "authService.Signup").
			Str("email", input.Email).
			Str("username", input.Username).
			Msg("user creation ended with error")
		return models.User{}, fmt.Errorf("%w: %w", ErrSignupFailed, err)
	}

	return created, nil
}

// Signin looks the account up by email and verifies the password.
//
// An unknown email still runs one bcrypt comparison against dummyHash, so the
// response time does not reveal whether the account exists.
//
// Returns the stored user or:
//   - ErrInvalidCredentials if no account has that email or the password
//     does not match.
//   - A wrapped storage error on any other repository failure.
func (a *authService) Signin(ctx context.Context, input models.SigninInput) (models.User, error) {
	log := logger.FromContext(ctx)

	foundUser, err := a.userRepository.FindUserByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, store.ErrNoUserWasFound) {
			_ = a.hasher.Compare(a.dummyHash, input.Password)
			log.Debug().Str("email", input.Email).Msg("no user with such email")
			return models.User{}, ErrInvalidCredentials
		}
		log.Err(err).Str("func", "authService.Signin").Msg("user search by email failed")
		return models.User{}, fmt.Errorf("user search by email failed: %w", err)
	}

	if err = a.hasher.Compare(foundUser.Password, input.Password); err != nil {
		log.Debug().Str("user_id", foundUser.UserID).Msg("wrong password")
		return models.User{}, fmt.Errorf("%w: %w", ErrInvalidCredentials, err)
	}

	return foundUser, nil
}

// CreateToken issues a signed JWT for the given user.
//
// The token is signed with the configured tokenSignKey, carries the configured
// tokenIssuer as the "iss" claim, and expires after tokenDuration.
func (a *authService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	token, err := utils.GenerateJWTToken(a.tokenIssuer, user.UserID, a.tokenDuration, a.tokenSignKey)
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

// ParseToken validates and parses a raw JWT string.
//
// Any validation failure (expired, wrong issuer, wrong algorithm, malformed)
// is normalised to ErrTokenIsExpiredOrInvalid so that callers do not need to
// inspect low-level JWT errors.
func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer)
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenIsExpiredOrInvalid, err)
	}

	return token, nil
}
