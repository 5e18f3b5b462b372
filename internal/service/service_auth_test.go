package service

import (
	"context"
	"encoding/base64"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/MKhiriev/go-blog-api/internal/config"
	"github.com/MKhiriev/go-blog-api/internal/logger"
	"github.com/MKhiriev/go-blog-api/internal/mock"
	"github.com/MKhiriev/go-blog-api/internal/store"
	"github.com/MKhiriev/go-blog-api/internal/utils"
	"github.com/MKhiriev/go-blog-api/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"
)

var testAppConfig = config.App{
	TokenSignKey:  "test-sign-key",
	TokenIssuer:   "go-blog-api-test",
	TokenDuration: time.Hour,
}

// newTestAuthSvc — helper building authService over a mocked UserRepository.
func newTestAuthSvc(t *testing.T, ctrl *gomock.Controller) (*authService, *mock.MockUserRepository) {
	t.Helper()
	mockRepo := mock.NewMockUserRepository(ctrl)

	svc := NewAuthService(
		mockRepo,
		utils.NewPasswordHasher(bcrypt.MinCost),
		utils.NewUUIDGenerator(),
		testAppConfig,
		logger.Nop(),
	).(*authService)

	return svc, mockRepo
}

// ── Signup ───────────────────────────────────────────────────────────────────

func TestAuthService_Signup_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, mockRepo := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	name := "Alice"
	input := models.SignupInput{Email: "a@x.com", Username: "alice", Password: "secret1", Name: &name}

	mockRepo.EXPECT().CreateUser(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, u models.User) (models.User, error) {
			assert.True(t, utils.IsValidUUID(u.UserID), "user id must be a generated uuid")
			assert.Equal(t, "a@x.com", u.Email)
			assert.Equal(t, "alice", u.Username)
			assert.NotEqual(t, "secret1", u.Password, "password must not be stored in plain text")
			assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(u.Password), []byte("secret1")))
			require.NotNil(t, u.Name)
			assert.Equal(t, "Alice", *u.Name)
			return u, nil
		},
	)

	user, err := svc.Signup(ctx, input)
	require.NoError(t, err)
	assert.Equal(t, "alice", user.Username)
	assert.NotEmpty(t, user.UserID)
}

func TestAuthService_Signup_DuplicateUser(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, mockRepo := newTestAuthSvc(t, ctrl)

	mockRepo.EXPECT().CreateUser(gomock.Any(), gomock.Any()).Return(models.User{}, store.ErrUserAlreadyExists)

	_, err := svc.Signup(context.Background(), models.SignupInput{Email: "a@x.com", Username: "alice", Password: "secret1"})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrSignupFailed)
	assert.ErrorIs(t, err, store.ErrUserAlreadyExists)
}

func TestAuthService_Signup_StoreFault(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, mockRepo := newTestAuthSvc(t, ctrl)

	mockRepo.EXPECT().CreateUser(gomock.Any(), gomock.Any()).Return(models.User{}, errors.New("connection refused"))

	_, err := svc.Signup(context.Background(), models.SignupInput{Email: "a@x.com", Username: "alice", Password: "secret1"})
	assert.ErrorIs(t, err, ErrSignupFailed)
}

// ── Signin ───────────────────────────────────────────────────────────────────

func TestAuthService_Signin_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, mockRepo := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	hash, err := svc.hasher.Hash("secret1")
	require.NoError(t, err)

	stored := models.User{UserID: "u-1", Email: "a@x.com", Username: "alice", Password: hash}
	mockRepo.EXPECT().FindUserByEmail(ctx, "a@x.com").Return(stored, nil)

	user, err := svc.Signin(ctx, models.SigninInput{Email: "a@x.com", Password: "secret1"})
	require.NoError(t, err)
	assert.Equal(t, "u-1", user.UserID)
	assert.Equal(t, "alice", user.Username)
}

func TestAuthService_Signin_WrongPassword(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, mockRepo := newTestAuthSvc(t, ctrl)

	hash, err := svc.hasher.Hash("secret1")
	require.NoError(t, err)

	mockRepo.EXPECT().FindUserByEmail(gomock.Any(), "a@x.com").
		Return(models.User{UserID: "u-1", Password: hash}, nil)

	_, err = svc.Signin(context.Background(), models.SigninInput{Email: "a@x.com", Password: "wrong-one"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
	assert.ErrorIs(t, err, utils.ErrPasswordMismatch)
}

func TestAuthService_Signin_UnknownEmail(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, mockRepo := newTestAuthSvc(t, ctrl)

	mockRepo.EXPECT().FindUserByEmail(gomock.Any(), "ghost@x.com").Return(models.User{}, store.ErrNoUserWasFound)

	_, err := svc.Signin(context.Background(), models.SigninInput{Email: "ghost@x.com", Password: "secret1"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

// recordingHasher records the hashes handed to Compare.
type recordingHasher struct {
	*utils.PasswordHasher
	compared []string
}

func (h *recordingHasher) Compare(hash, password string) error {
	h.compared = append(h.compared, hash)
	return h.PasswordHasher.Compare(hash, password)
}

func TestAuthService_Signin_UnknownEmailStillComparesPassword(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, mockRepo := newTestAuthSvc(t, ctrl)

	hasher := &recordingHasher{PasswordHasher: utils.NewPasswordHasher(bcrypt.MinCost)}
	svc.hasher = hasher

	mockRepo.EXPECT().FindUserByEmail(gomock.Any(), "ghost@x.com").Return(models.User{}, store.ErrNoUserWasFound)

	_, err := svc.Signin(context.Background(), models.SigninInput{Email: "ghost@x.com", Password: "secret1"})

	assert.ErrorIs(t, err, ErrInvalidCredentials)
	require.Len(t, hasher.compared, 1, "unknown email must cost one bcrypt comparison")
	assert.Equal(t, svc.dummyHash, hasher.compared[0])
}

func TestNewAuthService_DummyHashUsesConfiguredCost(t *testing.T) {
	const cost = bcrypt.MinCost + 1

	svc := NewAuthService(
		mock.NewMockUserRepository(gomock.NewController(t)),
		utils.NewPasswordHasher(cost),
		utils.NewUUIDGenerator(),
		testAppConfig,
		logger.Nop(),
	).(*authService)

	got, err := bcrypt.Cost([]byte(svc.dummyHash))
	require.NoError(t, err)
	assert.Equal(t, cost, got)
}

func TestAuthService_Signin_StoreFault(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, mockRepo := newTestAuthSvc(t, ctrl)

	mockRepo.EXPECT().FindUserByEmail(gomock.Any(), gomock.Any()).Return(models.User{}, store.ErrExecutingQuery)

	_, err := svc.Signin(context.Background(), models.SigninInput{Email: "a@x.com", Password: "secret1"})
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrInvalidCredentials)
	assert.ErrorIs(t, err, store.ErrExecutingQuery)
}

// ── Tokens ───────────────────────────────────────────────────────────────────

func TestAuthService_TokenRoundTrip(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, _ := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	token, err := svc.CreateToken(ctx, models.User{UserID: "u-42"})
	require.NoError(t, err)
	require.NotEmpty(t, token.SignedString)

	parsed, err := svc.ParseToken(ctx, token.SignedString)
	require.NoError(t, err)
	assert.Equal(t, "u-42", parsed.UserID)
}

func TestAuthService_CreateToken_EmptyUserID(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, _ := newTestAuthSvc(t, ctrl)

	_, err := svc.CreateToken(context.Background(), models.User{})
	assert.ErrorIs(t, err, ErrTokenCreationFailed)
}

func TestAuthService_ParseToken_ForeignSecret(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, _ := newTestAuthSvc(t, ctrl)

	foreign, err := utils.GenerateJWTToken(testAppConfig.TokenIssuer, "u-42", time.Hour, "another-key")
	require.NoError(t, err)

	_, err = svc.ParseToken(context.Background(), foreign.SignedString)
	assert.ErrorIs(t, err, ErrTokenIsExpiredOrInvalid)
}

func TestAuthService_ParseToken_AlteredPayload(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, _ := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	token, err := svc.CreateToken(ctx, models.User{UserID: "u-1"})
	require.NoError(t, err)

	parts := strings.Split(token.SignedString, ".")
	require.Len(t, parts, 3)

	payload, err := base64.RawURLEncoding.DecodeString(parts[1])
	require.NoError(t, err)
	altered := strings.ReplaceAll(string(payload), `"u-1"`, `"u-2"`)
	require.NotEqual(t, string(payload), altered)
	parts[1] = base64.RawURLEncoding.EncodeToString([]byte(altered))

	_, err = svc.ParseToken(ctx, strings.Join(parts, "."))
	assert.ErrorIs(t, err, ErrTokenIsExpiredOrInvalid)
}

func TestAuthService_ParseToken_Garbage(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, _ := newTestAuthSvc(t, ctrl)

	_, err := svc.ParseToken(context.Background(), "not.a.token")
	assert.ErrorIs(t, err, ErrTokenIsExpiredOrInvalid)
}
